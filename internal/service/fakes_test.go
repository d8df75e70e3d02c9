package service

import (
	"context"
	"sort"
	"sync"

	"polling-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes honoring the same contracts as the Mongo
// implementations, including the sentinel errors at the ledger boundary.

type fakeOptionRepo struct {
	mu      sync.RWMutex
	options map[primitive.ObjectID]*models.PollOption
}

func newFakeOptionRepo() *fakeOptionRepo {
	return &fakeOptionRepo{options: make(map[primitive.ObjectID]*models.PollOption)}
}

func (f *fakeOptionRepo) InsertOptions(ctx context.Context, opts []*models.PollOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, opt := range opts {
		if opt.ID.IsZero() {
			opt.ID = primitive.NewObjectID()
		}
		f.options[opt.ID] = opt
	}
	return nil
}

func (f *fakeOptionRepo) GetOptionByID(ctx context.Context, optionID primitive.ObjectID) (*models.PollOption, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	option, ok := f.options[optionID]
	if !ok {
		return nil, models.ErrOptionNotFound
	}
	return option, nil
}

func (f *fakeOptionRepo) GetOptionsForPoll(ctx context.Context, pollID primitive.ObjectID) ([]*models.PollOption, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var result []*models.PollOption
	for _, opt := range f.options {
		if opt.PollID == pollID {
			result = append(result, opt)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result, nil
}

type fakeVoteRepo struct {
	mu      sync.RWMutex
	votes   map[string]*models.Vote
	failErr error
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]*models.Vote)}
}

func voteKey(userID string, optionID primitive.ObjectID) string {
	return userID + "/" + optionID.Hex()
}

func (f *fakeVoteRepo) CreateVote(ctx context.Context, vote *models.Vote) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return primitive.NilObjectID, f.failErr
	}
	key := voteKey(vote.UserID, vote.PollOptionID)
	if _, exists := f.votes[key]; exists {
		return primitive.NilObjectID, models.ErrDuplicateVote
	}
	vote.ID = primitive.NewObjectID()
	f.votes[key] = vote
	return vote.ID, nil
}

func (f *fakeVoteRepo) CountVotesForOption(ctx context.Context, optionID primitive.ObjectID) (int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var count int64
	for _, vote := range f.votes {
		if vote.PollOptionID == optionID {
			count++
		}
	}
	return count, nil
}

type fakePollRepo struct {
	mu    sync.RWMutex
	polls map[primitive.ObjectID]*models.Poll
}

func newFakePollRepo() *fakePollRepo {
	return &fakePollRepo{polls: make(map[primitive.ObjectID]*models.Poll)}
}

func (f *fakePollRepo) CreatePoll(ctx context.Context, poll *models.Poll) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	poll.ID = primitive.NewObjectID()
	f.polls[poll.ID] = poll
	return poll.ID, nil
}

func (f *fakePollRepo) GetPollByID(ctx context.Context, pollID primitive.ObjectID) (*models.Poll, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	poll, ok := f.polls[pollID]
	if !ok {
		return nil, models.ErrPollNotFound
	}
	return poll, nil
}

func (f *fakePollRepo) GetAllPolls(ctx context.Context) ([]*models.Poll, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var polls []*models.Poll
	for _, poll := range f.polls {
		polls = append(polls, poll)
	}
	sort.Slice(polls, func(i, j int) bool { return polls[i].CreatedAt.After(polls[j].CreatedAt) })
	return polls, nil
}

type fakeUserRepo struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return primitive.NilObjectID, models.ErrEmailTaken
		}
	}
	user.ID = primitive.NewObjectID()
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	user, ok := f.users[userID]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var users []*models.User
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

type fakeBroadcaster struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeBroadcaster) QueueBroadcast(pollID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, pollID)
}

func (f *fakeBroadcaster) broadcasts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
