// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinora/internal/catalog/film"
	"github.com/taibuivan/kinora/internal/platform/apperr"
	"github.com/taibuivan/kinora/internal/social/feed"
	"github.com/taibuivan/kinora/internal/users/user"
	"github.com/taibuivan/kinora/pkg/date"
)

type stubRepository struct {
	users   map[int]user.User
	friends map[int][]int
	edges   [][2]int
}

func (s *stubRepository) ListUsers(_ context.Context) ([]user.User, error) { return nil, nil }

func (s *stubRepository) GetUserByID(_ context.Context, id int) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return &u, nil
}

func (s *stubRepository) UserExists(_ context.Context, id int) (bool, error) {
	_, ok := s.users[id]
	return ok, nil
}

func (s *stubRepository) CreateUser(_ context.Context, u *user.User) error {
	u.ID = len(s.users) + 1
	return nil
}

func (s *stubRepository) UpdateUser(_ context.Context, _ *user.User) error { return nil }
func (s *stubRepository) DeleteUser(_ context.Context, _ int) error        { return nil }

func (s *stubRepository) AddFriend(_ context.Context, userID, friendID int) error {
	s.edges = append(s.edges, [2]int{userID, friendID})
	return nil
}

func (s *stubRepository) RemoveFriend(_ context.Context, _, _ int) error { return nil }

func (s *stubRepository) ListFriends(_ context.Context, userID int) ([]user.User, error) {
	friends := make([]user.User, 0)
	for _, id := range s.friends[userID] {
		friends = append(friends, s.users[id])
	}
	return friends, nil
}

func (s *stubRepository) CommonFriends(_ context.Context, _, _ int) ([]user.User, error) {
	return nil, nil
}

type stubRecommender struct {
	films []*film.Film
}

func (s *stubRecommender) Recommend(_ context.Context, _ int) ([]*film.Film, error) {
	return s.films, nil
}

type stubFeedReader struct {
	events []feed.Event
}

func (s *stubFeedReader) Feed(_ context.Context, _ int) ([]feed.Event, error) {
	return s.events, nil
}

type stubRecorder struct {
	events []feed.Event
}

func (s *stubRecorder) Record(_ context.Context, event feed.Event) error {
	s.events = append(s.events, event)
	return nil
}

func newTestService(repo *stubRepository) (*user.Service, *stubRecorder) {
	recorder := &stubRecorder{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	service := user.NewService(repo, &stubRecommender{}, &stubFeedReader{}, recorder, logger)
	return service, recorder
}

func validUser() *user.User {
	return &user.User{
		Email:    "viewer@kinora.app",
		Login:    "viewer",
		Birthday: date.New(1990, time.June, 15),
	}
}

// # Profile Validation

func TestService_CreateUser_NameFallsBackToLogin(t *testing.T) {
	service, _ := newTestService(&stubRepository{users: map[int]user.User{}})

	u := validUser()
	created, err := service.CreateUser(context.Background(), u)
	require.NoError(t, err)

	assert.Equal(t, "viewer", created.Name)
	assert.NotZero(t, created.ID)
}

func TestService_CreateUser_Validation(t *testing.T) {
	service, _ := newTestService(&stubRepository{users: map[int]user.User{}})

	tests := []struct {
		name   string
		mutate func(*user.User)
	}{
		{"missing_email", func(u *user.User) { u.Email = "" }},
		{"malformed_email", func(u *user.User) { u.Email = "not-an-email" }},
		{"missing_login", func(u *user.User) { u.Login = "" }},
		{"login_with_spaces", func(u *user.User) { u.Login = "two words" }},
		{"future_birthday", func(u *user.User) { u.Birthday = date.New(2203, time.January, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(u)

			_, err := service.CreateUser(context.Background(), u)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

// # Friendships

func TestService_AddFriend_OneDirectional(t *testing.T) {
	repo := &stubRepository{
		users:   map[int]user.User{1: {ID: 1}, 2: {ID: 2}},
		friends: map[int][]int{1: {2}},
	}
	service, recorder := newTestService(repo)

	require.NoError(t, service.AddFriend(context.Background(), 1, 2))

	// Exactly one directed edge, no mirror row.
	require.Len(t, repo.edges, 1)
	assert.Equal(t, [2]int{1, 2}, repo.edges[0])

	friends, err := service.ListFriends(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, 2, friends[0].ID)

	friends, err = service.ListFriends(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, friends)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, feed.EventTypeFriend, recorder.events[0].EventType)
	assert.Equal(t, feed.OperationAdd, recorder.events[0].Operation)
}

func TestService_AddFriend_UnknownUsers(t *testing.T) {
	repo := &stubRepository{users: map[int]user.User{1: {ID: 1}}}
	service, recorder := newTestService(repo)

	err := service.AddFriend(context.Background(), 1, 99)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	err = service.AddFriend(context.Background(), 99, 1)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	assert.Empty(t, recorder.events)
}

func TestService_AddFriend_Self(t *testing.T) {
	repo := &stubRepository{users: map[int]user.User{1: {ID: 1}}}
	service, _ := newTestService(repo)

	err := service.AddFriend(context.Background(), 1, 1)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

// # Cross-Domain Views

func TestService_Recommendations_UnknownUser(t *testing.T) {
	service, _ := newTestService(&stubRepository{users: map[int]user.User{}})

	_, err := service.Recommendations(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestService_Feed_UnknownUser(t *testing.T) {
	service, _ := newTestService(&stubRepository{users: map[int]user.User{}})

	_, err := service.Feed(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
