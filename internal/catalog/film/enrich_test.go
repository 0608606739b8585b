// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinora/internal/catalog/film"
	"github.com/taibuivan/kinora/pkg/date"
)

// stubRelationStore serves canned relation maps and counts every query it
// receives.
type stubRelationStore struct {
	genres    map[int][]film.Genre
	directors map[int][]film.Director
	ratings   map[int]film.Rating
	likes     map[int][]int

	queryCount atomic.Int64
	failWith   error
}

func (s *stubRelationStore) GenresByFilmIDs(_ context.Context, _ []int) (map[int][]film.Genre, error) {
	s.queryCount.Add(1)
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.genres, nil
}

func (s *stubRelationStore) DirectorsByFilmIDs(_ context.Context, _ []int) (map[int][]film.Director, error) {
	s.queryCount.Add(1)
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.directors, nil
}

func (s *stubRelationStore) RatingByFilmIDs(_ context.Context, _ []int) (map[int]film.Rating, error) {
	s.queryCount.Add(1)
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.ratings, nil
}

func (s *stubRelationStore) LikesByFilmIDs(_ context.Context, _ []int) (map[int][]int, error) {
	s.queryCount.Add(1)
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.likes, nil
}

func rawFilm(id int, title string) *film.Film {
	return &film.Film{
		ID:          id,
		Title:       title,
		ReleaseDate: date.New(2020, time.January, 1),
		Duration:    120,
	}
}

/*
TestAggregator_EmptyBatch verifies that enriching zero films issues zero
storage queries.
*/
func TestAggregator_EmptyBatch(t *testing.T) {
	store := &stubRelationStore{}
	aggregator := film.NewAggregator(store)

	require.NoError(t, aggregator.Enrich(context.Background(), nil))
	require.NoError(t, aggregator.Enrich(context.Background(), []*film.Film{}))

	assert.Equal(t, int64(0), store.queryCount.Load())
}

/*
TestAggregator_Enrich checks the merge of all four relation kinds and the
preservation of input order.
*/
func TestAggregator_Enrich(t *testing.T) {
	store := &stubRelationStore{
		genres: map[int][]film.Genre{
			1: {{ID: 1, Name: "Comedy"}, {ID: 2, Name: "Drama"}},
		},
		directors: map[int][]film.Director{
			2: {{ID: 7, Name: "Agnès Varda"}},
		},
		ratings: map[int]film.Rating{
			1: {ID: 3, Name: "PG-13"},
		},
		likes: map[int][]int{
			1: {10, 20},
			2: {30},
		},
	}
	aggregator := film.NewAggregator(store)

	films := []*film.Film{rawFilm(2, "Cleo"), rawFilm(1, "Playtime"), rawFilm(3, "Unliked")}
	require.NoError(t, aggregator.Enrich(context.Background(), films))

	// One query per relation kind, independent of batch size.
	assert.Equal(t, int64(4), store.queryCount.Load())

	// Input order survives enrichment.
	assert.Equal(t, []int{2, 1, 3}, []int{films[0].ID, films[1].ID, films[2].ID})

	playtime := films[1]
	assert.Len(t, playtime.Genres, 2)
	assert.Equal(t, []int{10, 20}, playtime.Likes)
	require.NotNil(t, playtime.Rating)
	assert.Equal(t, "PG-13", playtime.Rating.Name)

	cleo := films[0]
	require.Len(t, cleo.Directors, 1)
	assert.Equal(t, "Agnès Varda", cleo.Directors[0].Name)
	assert.Nil(t, cleo.Rating)
}

/*
TestAggregator_NeverNilSets verifies that films without relation rows get
empty sets, not nil.
*/
func TestAggregator_NeverNilSets(t *testing.T) {
	aggregator := film.NewAggregator(&stubRelationStore{})

	films := []*film.Film{rawFilm(42, "Orphan")}
	require.NoError(t, aggregator.Enrich(context.Background(), films))

	orphan := films[0]
	assert.NotNil(t, orphan.Genres)
	assert.NotNil(t, orphan.Directors)
	assert.NotNil(t, orphan.Likes)
	assert.Empty(t, orphan.Genres)
	assert.Empty(t, orphan.Directors)
	assert.Empty(t, orphan.Likes)
	assert.Nil(t, orphan.Rating)
}

/*
TestAggregator_FailureIsAtomic checks that a failing relation query fails the
whole batch.
*/
func TestAggregator_FailureIsAtomic(t *testing.T) {
	boom := errors.New("connection reset")
	aggregator := film.NewAggregator(&stubRelationStore{failWith: boom})

	films := []*film.Film{rawFilm(1, "Doomed")}
	err := aggregator.Enrich(context.Background(), films)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
