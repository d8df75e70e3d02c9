package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"polling-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newPollFixture(t *testing.T) (PollService, *fakeUserRepo, *fakeVoteRepo, *fakeOptionRepo) {
	t.Helper()

	pollRepo := newFakePollRepo()
	optionRepo := newFakeOptionRepo()
	userRepo := newFakeUserRepo()
	voteRepo := newFakeVoteRepo()
	resultSvc := NewResultService(optionRepo, voteRepo)

	return NewPollService(pollRepo, optionRepo, userRepo, resultSvc), userRepo, voteRepo, optionRepo
}

func createTestUser(t *testing.T, userRepo *fakeUserRepo) *models.User {
	t.Helper()
	user := &models.User{Name: "Alice", Email: "alice@example.com", CreatedAt: time.Now()}
	id, err := userRepo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	user.ID = id
	return user
}

func TestCreatePollAssignsPositions(t *testing.T) {
	svc, userRepo, _, _ := newPollFixture(t)
	user := createTestUser(t, userRepo)

	poll, err := svc.CreatePoll(context.Background(), &models.CreatePollRequest{
		Question:  "Best color?",
		CreatorID: user.ID.Hex(),
		Options:   []string{"Red", "Blue", "Green"},
	})
	if err != nil {
		t.Fatalf("CreatePoll failed: %v", err)
	}

	if len(poll.Options) != 3 {
		t.Fatalf("Expected 3 options, got %d", len(poll.Options))
	}
	for i, opt := range poll.Options {
		if opt.Position != i {
			t.Errorf("Option %q position = %d, want %d", opt.Text, opt.Position, i)
		}
		if opt.PollID != poll.Poll.ID {
			t.Errorf("Option %q not linked to poll", opt.Text)
		}
		if opt.ID.IsZero() {
			t.Errorf("Option %q has no id", opt.Text)
		}
	}
}

func TestCreatePollUnknownCreator(t *testing.T) {
	svc, _, _, _ := newPollFixture(t)

	_, err := svc.CreatePoll(context.Background(), &models.CreatePollRequest{
		Question:  "Best color?",
		CreatorID: primitive.NewObjectID().Hex(),
		Options:   []string{"Red", "Blue"},
	})
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestGetPollDetailIncludesCounts(t *testing.T) {
	svc, userRepo, voteRepo, _ := newPollFixture(t)
	user := createTestUser(t, userRepo)

	poll, err := svc.CreatePoll(context.Background(), &models.CreatePollRequest{
		Question:  "Best color?",
		CreatorID: user.ID.Hex(),
		Options:   []string{"Red", "Blue"},
	})
	if err != nil {
		t.Fatalf("CreatePoll failed: %v", err)
	}

	_, err = voteRepo.CreateVote(context.Background(), &models.Vote{
		UserID:       user.ID.Hex(),
		PollOptionID: poll.Options[0].ID,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("Failed to insert vote: %v", err)
	}

	detail, err := svc.GetPollDetail(context.Background(), poll.Poll.ID.Hex())
	if err != nil {
		t.Fatalf("GetPollDetail failed: %v", err)
	}

	if detail.Poll.Question != "Best color?" {
		t.Errorf("Question = %q", detail.Poll.Question)
	}
	if len(detail.Options) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(detail.Options))
	}
	if detail.Options[0].Text != "Red" || detail.Options[0].Votes != 1 {
		t.Errorf("First option = %+v, want Red with 1 vote", detail.Options[0])
	}
	if detail.Options[1].Text != "Blue" || detail.Options[1].Votes != 0 {
		t.Errorf("Second option = %+v, want Blue with 0 votes", detail.Options[1])
	}
}

func TestGetPollDetailNotFound(t *testing.T) {
	svc, _, _, _ := newPollFixture(t)

	_, err := svc.GetPollDetail(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, models.ErrPollNotFound) {
		t.Fatalf("Expected ErrPollNotFound, got %v", err)
	}

	_, err = svc.GetPollDetail(context.Background(), "bogus")
	if !errors.Is(err, models.ErrPollNotFound) {
		t.Fatalf("Expected ErrPollNotFound for malformed id, got %v", err)
	}
}
