// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"log/slog"

	"github.com/taibuivan/kinora/internal/platform/validate"
	"github.com/taibuivan/kinora/internal/social/feed"
)

// Service implements review CRUD and usefulness voting.
type Service struct {
	repo   Repository
	events feed.Recorder
	logger *slog.Logger
}

func NewService(repo Repository, events feed.Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

// # CRUD

func (service *Service) GetReview(ctx context.Context, id int) (*Review, error) {
	return service.repo.GetReviewByID(ctx, id)
}

func (service *Service) ListReviews(ctx context.Context, filmID *int, count int) ([]Review, error) {
	v := &validate.Validator{}
	if err := v.Positive("count", count).Err(); err != nil {
		return nil, err
	}
	return service.repo.ListReviews(ctx, filmID, count)
}

// CreateReview persists a review and lands it in the author's feed.
func (service *Service) CreateReview(ctx context.Context, r *Review) (*Review, error) {
	if err := service.validateReview(r); err != nil {
		return nil, err
	}

	if err := service.repo.CreateReview(ctx, r); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "review_created",
		slog.Int("review_id", r.ID),
		slog.Int("film_id", r.FilmID),
	)

	if err := service.events.Record(ctx, feed.NewEvent(r.UserID, r.ID, feed.EventTypeReview, feed.OperationAdd)); err != nil {
		return nil, err
	}
	return service.repo.GetReviewByID(ctx, r.ID)
}

// UpdateReview replaces content and verdict. The feed event carries the
// stored author, not whatever the payload claims.
func (service *Service) UpdateReview(ctx context.Context, r *Review) (*Review, error) {
	if err := service.validateReview(r); err != nil {
		return nil, err
	}

	stored, err := service.repo.GetReviewByID(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	if err := service.repo.UpdateReview(ctx, r); err != nil {
		return nil, err
	}

	if err := service.events.Record(ctx, feed.NewEvent(stored.UserID, stored.ID, feed.EventTypeReview, feed.OperationUpdate)); err != nil {
		return nil, err
	}
	return service.repo.GetReviewByID(ctx, r.ID)
}

func (service *Service) DeleteReview(ctx context.Context, id int) error {
	stored, err := service.repo.GetReviewByID(ctx, id)
	if err != nil {
		return err
	}

	if err := service.repo.DeleteReview(ctx, id); err != nil {
		return err
	}

	return service.events.Record(ctx, feed.NewEvent(stored.UserID, stored.ID, feed.EventTypeReview, feed.OperationRemove))
}

// # Usefulness Votes

func (service *Service) AddVote(ctx context.Context, reviewID, userID int, isUseful bool) error {
	return service.repo.SetVote(ctx, reviewID, userID, isUseful)
}

func (service *Service) RemoveVote(ctx context.Context, reviewID, userID int, isUseful bool) error {
	return service.repo.RemoveVote(ctx, reviewID, userID, isUseful)
}

// # Internals

func (service *Service) validateReview(r *Review) error {
	v := &validate.Validator{}
	return v.
		Required("content", r.Content).
		Custom("is_positive", r.IsPositive == nil, "Verdict is required").
		Positive("user_id", r.UserID).
		Positive("film_id", r.FilmID).
		Err()
}
