// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"log/slog"

	"github.com/taibuivan/kinora/internal/catalog/film"
	"github.com/taibuivan/kinora/internal/platform/apperr"
	"github.com/taibuivan/kinora/internal/platform/validate"
	"github.com/taibuivan/kinora/internal/social/feed"
)

// Recommender supplies personalized film suggestions for a user. The film
// domain implements it.
type Recommender interface {
	Recommend(ctx context.Context, userID int) ([]*film.Film, error)
}

// FeedReader returns a user's activity feed. The feed domain implements it.
type FeedReader interface {
	Feed(ctx context.Context, userID int) ([]feed.Event, error)
}

// Service implements user profile CRUD and the friendship graph.
type Service struct {
	repo        Repository
	recommender Recommender
	feedReader  FeedReader
	events      feed.Recorder
	logger      *slog.Logger
}

func NewService(repo Repository, recommender Recommender, feedReader FeedReader, events feed.Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		recommender: recommender,
		feedReader:  feedReader,
		events:      events,
		logger:      logger,
	}
}

// # Profiles

func (service *Service) ListUsers(ctx context.Context) ([]User, error) {
	return service.repo.ListUsers(ctx)
}

func (service *Service) GetUser(ctx context.Context, id int) (*User, error) {
	return service.repo.GetUserByID(ctx, id)
}

func (service *Service) CreateUser(ctx context.Context, u *User) (*User, error) {
	u.Normalize()
	if err := service.validateUser(u); err != nil {
		return nil, err
	}

	if err := service.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "user_created", slog.Int("user_id", u.ID))
	return u, nil
}

func (service *Service) UpdateUser(ctx context.Context, u *User) (*User, error) {
	u.Normalize()
	if err := service.validateUser(u); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "user_updated", slog.Int("user_id", u.ID))
	return u, nil
}

func (service *Service) DeleteUser(ctx context.Context, id int) error {
	if err := service.repo.DeleteUser(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "user_deleted", slog.Int("user_id", id))
	return nil
}

// # Friendships
//
// Friendships are directed: adding a friend makes the target visible in the
// caller's friend list only. The reverse edge requires the other user's own
// request.

// AddFriend creates a directed friendship edge and records a feed event.
func (service *Service) AddFriend(ctx context.Context, userID, friendID int) error {
	if userID == friendID {
		return apperr.ValidationError("Cannot befriend yourself", apperr.FieldError{
			Field:   "friendId",
			Message: "Must differ from the user ID",
		})
	}

	if err := service.requireUsers(ctx, userID, friendID); err != nil {
		return err
	}

	if err := service.repo.AddFriend(ctx, userID, friendID); err != nil {
		return err
	}

	return service.events.Record(ctx, feed.NewEvent(userID, friendID, feed.EventTypeFriend, feed.OperationAdd))
}

// RemoveFriend removes a directed friendship edge and records a feed event.
// Removing a non-existent edge succeeds silently.
func (service *Service) RemoveFriend(ctx context.Context, userID, friendID int) error {
	if err := service.requireUsers(ctx, userID, friendID); err != nil {
		return err
	}

	if err := service.repo.RemoveFriend(ctx, userID, friendID); err != nil {
		return err
	}

	return service.events.Record(ctx, feed.NewEvent(userID, friendID, feed.EventTypeFriend, feed.OperationRemove))
}

func (service *Service) ListFriends(ctx context.Context, userID int) ([]User, error) {
	if err := service.requireUsers(ctx, userID); err != nil {
		return nil, err
	}
	return service.repo.ListFriends(ctx, userID)
}

func (service *Service) CommonFriends(ctx context.Context, userID, otherID int) ([]User, error) {
	if err := service.requireUsers(ctx, userID, otherID); err != nil {
		return nil, err
	}
	return service.repo.CommonFriends(ctx, userID, otherID)
}

// # Cross-Domain Views

// Recommendations delegates to the film domain's collaborative filter.
func (service *Service) Recommendations(ctx context.Context, userID int) ([]*film.Film, error) {
	if err := service.requireUsers(ctx, userID); err != nil {
		return nil, err
	}
	return service.recommender.Recommend(ctx, userID)
}

// Feed returns the user's activity feed, oldest first.
func (service *Service) Feed(ctx context.Context, userID int) ([]feed.Event, error) {
	if err := service.requireUsers(ctx, userID); err != nil {
		return nil, err
	}
	return service.feedReader.Feed(ctx, userID)
}

// # Internals

// requireUsers fails with NotFound on the first ID without an account.
// Friendship and feed endpoints report unknown users as 404, not as a
// constraint violation.
func (service *Service) requireUsers(ctx context.Context, ids ...int) error {
	for _, id := range ids {
		exists, err := service.repo.UserExists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("User")
		}
	}
	return nil
}

func (service *Service) validateUser(u *User) error {
	v := &validate.Validator{}
	return v.
		Required("email", u.Email).
		Email("email", u.Email).
		Required("login", u.Login).
		NoSpaces("login", u.Login).
		NotFuture("birthday", u.Birthday.Time).
		Err()
}
