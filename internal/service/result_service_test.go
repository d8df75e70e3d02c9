package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"polling-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestComputeResultsOrderAndCounts(t *testing.T) {
	voteRepo := newFakeVoteRepo()
	optionRepo := newFakeOptionRepo()
	svc := NewResultService(optionRepo, voteRepo)

	pollID := primitive.NewObjectID()
	red := &models.PollOption{PollID: pollID, Text: "Red", Position: 0}
	blue := &models.PollOption{PollID: pollID, Text: "Blue", Position: 1}
	green := &models.PollOption{PollID: pollID, Text: "Green", Position: 2}

	// Insert out of creation order; results must still sort by position.
	if err := optionRepo.InsertOptions(context.Background(), []*models.PollOption{green, red, blue}); err != nil {
		t.Fatalf("Failed to insert options: %v", err)
	}

	castVote := func(user string, option *models.PollOption) {
		t.Helper()
		_, err := voteRepo.CreateVote(context.Background(), &models.Vote{
			UserID:       user,
			PollOptionID: option.ID,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			t.Fatalf("Failed to insert vote: %v", err)
		}
	}
	castVote("user-a", red)
	castVote("user-b", red)
	castVote("user-a", blue)

	results, err := svc.ComputeResults(context.Background(), pollID.Hex())
	if err != nil {
		t.Fatalf("ComputeResults failed: %v", err)
	}

	if results.PollID != pollID.Hex() {
		t.Errorf("PollID = %s, want %s", results.PollID, pollID.Hex())
	}

	want := []struct {
		text  string
		votes int64
	}{
		{"Red", 2},
		{"Blue", 1},
		{"Green", 0},
	}

	if len(results.Options) != len(want) {
		t.Fatalf("Expected %d options, got %d", len(want), len(results.Options))
	}
	for i, w := range want {
		if results.Options[i].Text != w.text {
			t.Errorf("Option %d text = %s, want %s (creation order must hold)", i, results.Options[i].Text, w.text)
		}
		if results.Options[i].Votes != w.votes {
			t.Errorf("Option %s votes = %d, want %d", w.text, results.Options[i].Votes, w.votes)
		}
	}
}

func TestComputeResultsEmptyPoll(t *testing.T) {
	svc := NewResultService(newFakeOptionRepo(), newFakeVoteRepo())

	results, err := svc.ComputeResults(context.Background(), primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("ComputeResults failed: %v", err)
	}

	if len(results.Options) != 0 {
		t.Errorf("Expected no options, got %d", len(results.Options))
	}
}

func TestComputeResultsInvalidPollID(t *testing.T) {
	svc := NewResultService(newFakeOptionRepo(), newFakeVoteRepo())

	_, err := svc.ComputeResults(context.Background(), "not-an-object-id")
	if !errors.Is(err, models.ErrPollNotFound) {
		t.Fatalf("Expected ErrPollNotFound, got %v", err)
	}
}
