package service

import (
	"context"

	"polling-service/internal/models"
	"polling-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ResultService interface {
	// ComputeResults recounts every option of the poll from the votes
	// collection. No counts are cached between calls.
	ComputeResults(ctx context.Context, pollID string) (*models.PollResults, error)
}

type resultService struct {
	optionRepository repository.OptionRepository
	voteRepository   repository.VoteRepository
}

func NewResultService(optionRepository repository.OptionRepository, voteRepository repository.VoteRepository) ResultService {
	return &resultService{
		optionRepository: optionRepository,
		voteRepository:   voteRepository,
	}
}

func (s *resultService) ComputeResults(ctx context.Context, pollID string) (*models.PollResults, error) {

	objectPollID, err := primitive.ObjectIDFromHex(pollID)
	if err != nil {
		return nil, models.ErrPollNotFound
	}

	options, err := s.optionRepository.GetOptionsForPoll(ctx, objectPollID)
	if err != nil {
		return nil, err
	}

	results := &models.PollResults{
		PollID:  pollID,
		Options: make([]models.OptionResult, 0, len(options)),
	}

	for _, option := range options {
		count, err := s.voteRepository.CountVotesForOption(ctx, option.ID)
		if err != nil {
			return nil, err
		}
		results.Options = append(results.Options, models.OptionResult{
			ID:    option.ID.Hex(),
			Text:  option.Text,
			Votes: count,
		})
	}

	return results, nil
}
