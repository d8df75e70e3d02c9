package repository

import (
	"context"

	"polling-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OptionRepository interface {
	InsertOptions(ctx context.Context, opts []*models.PollOption) error
	GetOptionByID(ctx context.Context, optionID primitive.ObjectID) (*models.PollOption, error)
	// GetOptionsForPoll returns the poll's options in creation order.
	GetOptionsForPoll(ctx context.Context, pollID primitive.ObjectID) ([]*models.PollOption, error)
}

type optionRepository struct {
	collection *mongo.Collection
}

func NewOptionRepository(collection *mongo.Collection) OptionRepository {
	return &optionRepository{
		collection: collection,
	}
}

func (r *optionRepository) InsertOptions(ctx context.Context, opts []*models.PollOption) error {

	docs := make([]interface{}, 0, len(opts))
	for _, opt := range opts {
		docs = append(docs, opt)
	}

	res, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return err
	}

	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			opts[i].ID = oid
		}
	}

	return nil
}

func (r *optionRepository) GetOptionByID(ctx context.Context, optionID primitive.ObjectID) (*models.PollOption, error) {

	var option models.PollOption

	filter := bson.M{"_id": optionID}

	err := r.collection.FindOne(ctx, filter).Decode(&option)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrOptionNotFound
		}
		return nil, err
	}

	return &option, nil
}

func (r *optionRepository) GetOptionsForPoll(ctx context.Context, pollID primitive.ObjectID) ([]*models.PollOption, error) {

	filter := bson.M{"poll_id": pollID}
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []*models.PollOption
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}
