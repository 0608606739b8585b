// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"context"
	"log/slog"

	"github.com/taibuivan/kinora/internal/catalog/refcache"
)

// Service serves genre reference data through the snapshot cache.
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

// ListGenres returns all genres, reading through the reference cache.
func (service *Service) ListGenres(ctx context.Context) ([]Genre, error) {
	var cached []Genre
	if service.cache.Get(ctx, refcache.KindGenres, &cached) {
		return cached, nil
	}

	genres, err := service.repo.ListGenres(ctx)
	if err != nil {
		return nil, err
	}

	service.cache.Set(ctx, refcache.KindGenres, genres)
	return genres, nil
}

// GetGenre returns a single genre by ID.
//
// Single-entity lookups bypass the cache: the snapshot is a list keyed by
// kind, and scanning it here would save one indexed primary-key query at
// most.
func (service *Service) GetGenre(ctx context.Context, id int) (*Genre, error) {
	return service.repo.GetGenreByID(ctx, id)
}
