package repository

import (
	"context"
	"fmt"

	"polling-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type VoteRepository interface {
	// CreateVote inserts one vote. It returns models.ErrDuplicateVote when the
	// unique (user_id, poll_option_id) index rejects the write.
	CreateVote(ctx context.Context, vote *models.Vote) (primitive.ObjectID, error)
	CountVotesForOption(ctx context.Context, optionID primitive.ObjectID) (int64, error)
}

type voteRepository struct {
	collection *mongo.Collection
}

func NewVoteRepository(collection *mongo.Collection) VoteRepository {
	return &voteRepository{
		collection: collection,
	}
}

func (r *voteRepository) CreateVote(ctx context.Context, vote *models.Vote) (primitive.ObjectID, error) {

	res, err := r.collection.InsertOne(ctx, vote)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, models.ErrDuplicateVote
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return insertedID, nil
}

func (r *voteRepository) CountVotesForOption(ctx context.Context, optionID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"poll_option_id": optionID})
}
