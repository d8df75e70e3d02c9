package service

import (
	"context"
	"time"

	"polling-service/internal/models"
	"polling-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PollService interface {
	CreatePoll(ctx context.Context, req *models.CreatePollRequest) (*models.PollWithOptions, error)
	GetAllPolls(ctx context.Context) ([]*models.PollWithOptions, error)
	GetPollDetail(ctx context.Context, pollID string) (*models.PollDetail, error)
}

type pollService struct {
	pollRepository   repository.PollRepository
	optionRepository repository.OptionRepository
	userRepository   repository.UserRepository
	resultService    ResultService
}

func NewPollService(pollRepository repository.PollRepository,
	optionRepository repository.OptionRepository,
	userRepository repository.UserRepository,
	resultService ResultService) PollService {

	return &pollService{
		pollRepository:   pollRepository,
		optionRepository: optionRepository,
		userRepository:   userRepository,
		resultService:    resultService,
	}
}

func (s *pollService) CreatePoll(ctx context.Context, req *models.CreatePollRequest) (*models.PollWithOptions, error) {

	creatorID, err := primitive.ObjectIDFromHex(req.CreatorID)
	if err != nil {
		return nil, models.ErrUserNotFound
	}

	if _, err := s.userRepository.GetUserByID(ctx, creatorID); err != nil {
		return nil, err
	}

	poll := &models.Poll{
		Question:    req.Question,
		IsPublished: req.IsPublished,
		CreatorID:   req.CreatorID,
		CreatedAt:   time.Now(),
	}

	pollID, err := s.pollRepository.CreatePoll(ctx, poll)
	if err != nil {
		return nil, err
	}
	poll.ID = pollID

	options := make([]*models.PollOption, 0, len(req.Options))
	for i, text := range req.Options {
		options = append(options, &models.PollOption{
			PollID:   pollID,
			Text:     text,
			Position: i,
		})
	}

	if err := s.optionRepository.InsertOptions(ctx, options); err != nil {
		return nil, err
	}

	return &models.PollWithOptions{
		Poll:    poll,
		Options: options,
	}, nil
}

func (s *pollService) GetAllPolls(ctx context.Context) ([]*models.PollWithOptions, error) {

	polls, err := s.pollRepository.GetAllPolls(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*models.PollWithOptions, 0, len(polls))
	for _, poll := range polls {
		options, err := s.optionRepository.GetOptionsForPoll(ctx, poll.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &models.PollWithOptions{
			Poll:    poll,
			Options: options,
		})
	}

	return result, nil
}

// GetPollDetail returns the poll with per-option vote counts. This is the
// pull path a live-feed client uses after connect or reconnect; the feed
// itself never backfills missed messages.
func (s *pollService) GetPollDetail(ctx context.Context, pollID string) (*models.PollDetail, error) {

	objectPollID, err := primitive.ObjectIDFromHex(pollID)
	if err != nil {
		return nil, models.ErrPollNotFound
	}

	poll, err := s.pollRepository.GetPollByID(ctx, objectPollID)
	if err != nil {
		return nil, err
	}

	results, err := s.resultService.ComputeResults(ctx, pollID)
	if err != nil {
		return nil, err
	}

	return &models.PollDetail{
		Poll:    poll,
		Options: results.Options,
	}, nil
}
