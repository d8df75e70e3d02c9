package models

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Question    string   `json:"question"`
	IsPublished bool     `json:"isPublished"`
	CreatorID   string   `json:"creatorId"`
	Options     []string `json:"options"`
}

type CastVoteRequest struct {
	UserID       string `json:"userId"`
	PollOptionID string `json:"pollOptionId"`
}
