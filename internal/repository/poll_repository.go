package repository

import (
	"context"
	"fmt"

	"polling-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PollRepository interface {
	CreatePoll(ctx context.Context, poll *models.Poll) (primitive.ObjectID, error)
	GetPollByID(ctx context.Context, pollID primitive.ObjectID) (*models.Poll, error)
	// GetAllPolls returns polls newest first.
	GetAllPolls(ctx context.Context) ([]*models.Poll, error)
}

type pollRepository struct {
	collection *mongo.Collection
}

func NewPollRepository(collection *mongo.Collection) PollRepository {
	return &pollRepository{
		collection: collection,
	}
}

func (r *pollRepository) CreatePoll(ctx context.Context, poll *models.Poll) (primitive.ObjectID, error) {

	res, err := r.collection.InsertOne(ctx, poll)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return insertedID, nil
}

func (r *pollRepository) GetPollByID(ctx context.Context, pollID primitive.ObjectID) (*models.Poll, error) {

	var poll models.Poll

	filter := bson.M{"_id": pollID}

	err := r.collection.FindOne(ctx, filter).Decode(&poll)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrPollNotFound
		}
		return nil, err
	}

	return &poll, nil
}

func (r *pollRepository) GetAllPolls(ctx context.Context) ([]*models.Poll, error) {

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var polls []*models.Poll
	if err := cursor.All(ctx, &polls); err != nil {
		return nil, err
	}

	return polls, nil
}
