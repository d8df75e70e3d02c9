package service

import (
	"context"
	"time"

	"polling-service/internal/models"
	"polling-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Broadcaster queues a recompute-and-push cycle for one poll. Queueing must
// not block; delivery happens after CastVote has already returned.
type Broadcaster interface {
	QueueBroadcast(pollID string)
}

type VoteService interface {
	CastVote(ctx context.Context, req *models.CastVoteRequest) error
}

type voteService struct {
	voteRepository   repository.VoteRepository
	optionRepository repository.OptionRepository
	broadcaster      Broadcaster
}

func NewVoteService(voteRepository repository.VoteRepository,
	optionRepository repository.OptionRepository,
	broadcaster Broadcaster) VoteService {

	return &voteService{
		voteRepository:   voteRepository,
		optionRepository: optionRepository,
		broadcaster:      broadcaster,
	}
}

// CastVote checks the option exists, writes the vote to the ledger and queues
// exactly one broadcast for the option's poll. It returns
// models.ErrOptionNotFound for an unknown option and models.ErrDuplicateVote
// when the user already voted for it; neither leaves a durable write behind.
func (s *voteService) CastVote(ctx context.Context, req *models.CastVoteRequest) error {

	optionID, err := primitive.ObjectIDFromHex(req.PollOptionID)
	if err != nil {
		return models.ErrOptionNotFound
	}

	option, err := s.optionRepository.GetOptionByID(ctx, optionID)
	if err != nil {
		return err
	}

	vote := &models.Vote{
		UserID:       req.UserID,
		PollOptionID: option.ID,
		CreatedAt:    time.Now(),
	}

	if _, err := s.voteRepository.CreateVote(ctx, vote); err != nil {
		return err
	}

	s.broadcaster.QueueBroadcast(option.PollID.Hex())

	return nil
}
