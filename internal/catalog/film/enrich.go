// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Aggregator turns batches of raw film rows into fully enriched film
// aggregates in a bounded number of queries: one per relation kind,
// regardless of batch size.
//
// # Consistency
//
// The four relation queries run concurrently on separate pooled
// connections, not inside one snapshot. A like or genre assignment committed
// mid-flight may be visible to one relation query and not another.
type Aggregator struct {
	store RelationStore
}

// NewAggregator constructs a bulk relational aggregator.
func NewAggregator(store RelationStore) *Aggregator {
	return &Aggregator{store: store}
}

// Enrich attaches genres, directors, rating, and likes to every film in the
// batch, in place, preserving input order.
//
// An empty batch returns immediately without touching storage: an IN/ANY
// predicate over zero IDs is never issued. On any storage failure the whole
// batch fails; films are never returned partially enriched.
func (aggregator *Aggregator) Enrich(ctx context.Context, films []*Film) error {
	if len(films) == 0 {
		return nil
	}

	filmIDs := make([]int, 0, len(films))
	for _, f := range films {
		filmIDs = append(filmIDs, f.ID)
	}

	var (
		genres    map[int][]Genre
		directors map[int][]Director
		ratings   map[int]Rating
		likes     map[int][]int
	)

	// The four relation reads are independent; fan them out and merge only
	// after all have completed.
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		genres, err = aggregator.store.GenresByFilmIDs(groupCtx, filmIDs)
		return err
	})
	group.Go(func() error {
		var err error
		directors, err = aggregator.store.DirectorsByFilmIDs(groupCtx, filmIDs)
		return err
	})
	group.Go(func() error {
		var err error
		ratings, err = aggregator.store.RatingByFilmIDs(groupCtx, filmIDs)
		return err
	})
	group.Go(func() error {
		var err error
		likes, err = aggregator.store.LikesByFilmIDs(groupCtx, filmIDs)
		return err
	})

	if err := group.Wait(); err != nil {
		return err
	}

	for _, f := range films {
		f.Genres = orEmpty(genres[f.ID])
		f.Directors = orEmpty(directors[f.ID])
		f.Likes = orEmpty(likes[f.ID])

		if r, ok := ratings[f.ID]; ok {
			rating := r
			f.Rating = &rating
		} else {
			f.Rating = nil
		}
	}

	return nil
}

// orEmpty maps a missing relation set to an empty one, never nil.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return make([]T, 0)
	}
	return s
}
