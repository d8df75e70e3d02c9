package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Poll struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Question    string             `bson:"question" json:"question"`
	IsPublished bool               `bson:"is_published" json:"isPublished"`
	CreatorID   string             `bson:"creator_id" json:"creatorId"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// PollOption keeps its creation position so tallies always come back in the
// order the options were defined, regardless of vote counts.
type PollOption struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PollID   primitive.ObjectID `bson:"poll_id" json:"pollId"`
	Text     string             `bson:"text" json:"text"`
	Position int                `bson:"position" json:"-"`
}
