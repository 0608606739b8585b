// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package director

import (
	"context"
	"log/slog"

	"github.com/taibuivan/kinora/internal/catalog/refcache"
	"github.com/taibuivan/kinora/internal/platform/validate"
)

// Service manages director reference data. Reads go through the snapshot
// cache; each mutation explicitly invalidates the directors snapshot.
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

// ListDirectors returns all directors, reading through the reference cache.
func (service *Service) ListDirectors(ctx context.Context) ([]Director, error) {
	var cached []Director
	if service.cache.Get(ctx, refcache.KindDirectors, &cached) {
		return cached, nil
	}

	directors, err := service.repo.ListDirectors(ctx)
	if err != nil {
		return nil, err
	}

	service.cache.Set(ctx, refcache.KindDirectors, directors)
	return directors, nil
}

// GetDirector returns a single director by ID.
func (service *Service) GetDirector(ctx context.Context, id int) (*Director, error) {
	return service.repo.GetDirectorByID(ctx, id)
}

// CreateDirector persists a new director and invalidates the snapshot.
func (service *Service) CreateDirector(ctx context.Context, d *Director) (*Director, error) {
	v := &validate.Validator{}
	if err := v.Required("name", d.Name).MaxLen("name", d.Name, 255).Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateDirector(ctx, d); err != nil {
		return nil, err
	}

	if err := service.cache.Invalidate(ctx, refcache.KindDirectors); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "director_created", slog.Int("director_id", d.ID))
	return d, nil
}

// UpdateDirector renames a director and invalidates the snapshot.
func (service *Service) UpdateDirector(ctx context.Context, d *Director) (*Director, error) {
	v := &validate.Validator{}
	if err := v.Required("name", d.Name).MaxLen("name", d.Name, 255).Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateDirector(ctx, d); err != nil {
		return nil, err
	}

	if err := service.cache.Invalidate(ctx, refcache.KindDirectors); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "director_updated", slog.Int("director_id", d.ID))
	return d, nil
}

// DeleteDirector removes a director and invalidates the snapshot.
// Film associations are removed by the schema's cascade rule.
func (service *Service) DeleteDirector(ctx context.Context, id int) error {
	if err := service.repo.DeleteDirector(ctx, id); err != nil {
		return err
	}

	if err := service.cache.Invalidate(ctx, refcache.KindDirectors); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "director_deleted", slog.Int("director_id", id))
	return nil
}
