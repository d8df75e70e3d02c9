package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vote is unique per (user_id, poll_option_id), enforced by a compound index
// on the votes collection.
type Vote struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       string             `bson:"user_id" json:"userId"`
	PollOptionID primitive.ObjectID `bson:"poll_option_id" json:"pollOptionId"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

type OptionResult struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int64  `json:"votes"`
}

// PollResults is the derived tally snapshot for one poll. It is never stored,
// every broadcast recomputes it from the votes collection.
type PollResults struct {
	PollID  string         `json:"pollId"`
	Options []OptionResult `json:"options"`
}
