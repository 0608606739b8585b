// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinora/internal/platform/apperr"
	"github.com/taibuivan/kinora/internal/social/feed"
	"github.com/taibuivan/kinora/internal/social/review"
)

type stubRepository struct {
	reviews map[int]review.Review
	nextID  int

	gotFilmID *int
	gotCount  int
}

func (s *stubRepository) GetReviewByID(_ context.Context, id int) (*review.Review, error) {
	r, ok := s.reviews[id]
	if !ok {
		return nil, apperr.NotFound("Review")
	}
	return &r, nil
}

func (s *stubRepository) ListReviews(_ context.Context, filmID *int, count int) ([]review.Review, error) {
	s.gotFilmID = filmID
	s.gotCount = count
	return nil, nil
}

func (s *stubRepository) CreateReview(_ context.Context, r *review.Review) error {
	s.nextID++
	r.ID = s.nextID
	s.reviews[r.ID] = *r
	return nil
}

func (s *stubRepository) UpdateReview(_ context.Context, r *review.Review) error {
	stored, ok := s.reviews[r.ID]
	if !ok {
		return apperr.NotFound("Review")
	}
	stored.Content = r.Content
	stored.IsPositive = r.IsPositive
	s.reviews[r.ID] = stored
	return nil
}

func (s *stubRepository) DeleteReview(_ context.Context, id int) error {
	delete(s.reviews, id)
	return nil
}

func (s *stubRepository) SetVote(_ context.Context, _, _ int, _ bool) error    { return nil }
func (s *stubRepository) RemoveVote(_ context.Context, _, _ int, _ bool) error { return nil }

type stubRecorder struct {
	events []feed.Event
}

func (s *stubRecorder) Record(_ context.Context, event feed.Event) error {
	s.events = append(s.events, event)
	return nil
}

func newTestService() (*review.Service, *stubRepository, *stubRecorder) {
	repo := &stubRepository{reviews: map[int]review.Review{}}
	recorder := &stubRecorder{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return review.NewService(repo, recorder, logger), repo, recorder
}

func boolPtr(b bool) *bool { return &b }

func validReview() *review.Review {
	return &review.Review{
		Content:    "A sprawling, patient picture.",
		IsPositive: boolPtr(true),
		UserID:     3,
		FilmID:     7,
	}
}

func TestService_CreateReview_Validation(t *testing.T) {
	service, _, recorder := newTestService()

	tests := []struct {
		name   string
		mutate func(*review.Review)
	}{
		{"missing_content", func(r *review.Review) { r.Content = "" }},
		{"missing_verdict", func(r *review.Review) { r.IsPositive = nil }},
		{"missing_user", func(r *review.Review) { r.UserID = 0 }},
		{"missing_film", func(r *review.Review) { r.FilmID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReview()
			tt.mutate(r)

			_, err := service.CreateReview(context.Background(), r)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}

	assert.Empty(t, recorder.events)
}

/*
TestService_ReviewLifecycle_FeedEvents walks create, update, delete and
verifies every step lands in the author's feed.
*/
func TestService_ReviewLifecycle_FeedEvents(t *testing.T) {
	service, _, recorder := newTestService()

	created, err := service.CreateReview(context.Background(), validReview())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	created.Content = "On rewatch, even better."
	_, err = service.UpdateReview(context.Background(), created)
	require.NoError(t, err)

	require.NoError(t, service.DeleteReview(context.Background(), created.ID))

	require.Len(t, recorder.events, 3)
	for _, event := range recorder.events {
		assert.Equal(t, feed.EventTypeReview, event.EventType)
		assert.Equal(t, 3, event.UserID)
		assert.Equal(t, created.ID, event.EntityID)
	}
	assert.Equal(t, feed.OperationAdd, recorder.events[0].Operation)
	assert.Equal(t, feed.OperationUpdate, recorder.events[1].Operation)
	assert.Equal(t, feed.OperationRemove, recorder.events[2].Operation)
}

func TestService_DeleteReview_Unknown(t *testing.T) {
	service, _, recorder := newTestService()

	err := service.DeleteReview(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Empty(t, recorder.events)
}

func TestService_ListReviews_ForwardsFilter(t *testing.T) {
	service, repo, _ := newTestService()

	filmID := 7
	_, err := service.ListReviews(context.Background(), &filmID, 5)
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilmID)
	assert.Equal(t, 7, *repo.gotFilmID)
	assert.Equal(t, 5, repo.gotCount)
}

func TestService_ListReviews_InvalidCount(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.ListReviews(context.Background(), nil, 0)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
