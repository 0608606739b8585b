// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import "context"

// RelationStore is the bulk relation contract consumed by [Aggregator].
//
// Every method takes a batch of film IDs and returns a mapping keyed by film
// ID, resolved in a single query. Film IDs with no rows are simply absent
// from the result map; the aggregator turns absence into empty sets.
type RelationStore interface {
	GenresByFilmIDs(ctx context.Context, filmIDs []int) (map[int][]Genre, error)
	DirectorsByFilmIDs(ctx context.Context, filmIDs []int) (map[int][]Director, error)
	RatingByFilmIDs(ctx context.Context, filmIDs []int) (map[int]Rating, error)
	LikesByFilmIDs(ctx context.Context, filmIDs []int) (map[int][]int, error)
}

// Repository is the full storage contract of the film domain.
type Repository interface {
	RelationStore

	// # Raw scalar rows

	ListFilms(ctx context.Context) ([]*Film, error)
	GetFilmByID(ctx context.Context, id int) (*Film, error)
	// RawFilmsByIDs returns scalar rows for the given IDs, preserving the
	// order of the input slice. Unknown IDs are silently skipped.
	RawFilmsByIDs(ctx context.Context, ids []int) ([]*Film, error)

	// # Mutation

	CreateFilm(ctx context.Context, f *Film) error
	UpdateFilm(ctx context.Context, f *Film) error
	DeleteFilm(ctx context.Context, id int) error
	AddLike(ctx context.Context, filmID, userID int) error
	RemoveLike(ctx context.Context, filmID, userID int) error

	// # Ranking, recommendation & search contracts

	// LikeCounts returns the distinct-user like count for every film
	// satisfying the optional genre and release-year filters. Films with
	// zero likes are included with count 0.
	LikeCounts(ctx context.Context, genreID, year *int) (map[int]int, error)
	// LikedFilmIDs returns the set of film IDs the user has liked.
	LikedFilmIDs(ctx context.Context, userID int) (map[int]struct{}, error)
	// OverlapCounts returns, for every other user sharing at least one
	// liked film with userID, the size of the shared-like overlap.
	OverlapCounts(ctx context.Context, userID int) (map[int]int, error)
	// FilmIDsMatchingText returns IDs of films whose folded title and/or
	// director name contains the folded query, ordered by like count
	// descending then film ID ascending.
	FilmIDsMatchingText(ctx context.Context, foldedQuery string, byTitle, byDirector bool) ([]int, error)
	// CommonFilmIDs returns IDs of films liked by both users, ordered by
	// like count descending then film ID ascending.
	CommonFilmIDs(ctx context.Context, userID, friendID int) ([]int, error)
	// FilmIDsByDirector returns the director's films ordered by release
	// year or by like count, per sortBy.
	FilmIDsByDirector(ctx context.Context, directorID int, sortBy string) ([]int, error)
	DirectorExists(ctx context.Context, directorID int) (bool, error)
}
