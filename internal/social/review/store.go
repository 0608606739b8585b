// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import "context"

// Repository is the storage contract of the review domain.
type Repository interface {
	GetReviewByID(ctx context.Context, id int) (*Review, error)
	// ListReviews returns up to count reviews, most useful first. A nil
	// filmID spans the whole catalogue.
	ListReviews(ctx context.Context, filmID *int, count int) ([]Review, error)

	CreateReview(ctx context.Context, r *Review) error
	// UpdateReview replaces content and verdict only; authorship and the
	// reviewed film are immutable.
	UpdateReview(ctx context.Context, r *Review) error
	DeleteReview(ctx context.Context, id int) error

	// # Usefulness votes

	// SetVote records or replaces the user's vote on a review.
	SetVote(ctx context.Context, reviewID, userID int, isUseful bool) error
	// RemoveVote withdraws the user's vote if it matches isUseful.
	RemoveVote(ctx context.Context, reviewID, userID int, isUseful bool) error
}
