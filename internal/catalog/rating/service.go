// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rating

import (
	"context"
	"log/slog"

	"github.com/taibuivan/kinora/internal/catalog/refcache"
)

// Service serves MPA rating reference data through the snapshot cache.
type Service struct {
	repo   Repository
	cache  *refcache.Cache
	logger *slog.Logger
}

func NewService(repo Repository, cache *refcache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListRatings returns all MPA ratings, reading through the reference cache.
func (service *Service) ListRatings(ctx context.Context) ([]Rating, error) {
	var cached []Rating
	if service.cache.Get(ctx, refcache.KindRatings, &cached) {
		return cached, nil
	}

	ratings, err := service.repo.ListRatings(ctx)
	if err != nil {
		return nil, err
	}

	service.cache.Set(ctx, refcache.KindRatings, ratings)
	return ratings, nil
}

// GetRating returns a single MPA rating by ID.
func (service *Service) GetRating(ctx context.Context, id int) (*Rating, error) {
	return service.repo.GetRatingByID(ctx, id)
}
