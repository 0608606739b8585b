// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"context"
	"log/slog"
	"sort"

	"github.com/taibuivan/kinora/internal/platform/apperr"
	"github.com/taibuivan/kinora/internal/platform/constants"
	"github.com/taibuivan/kinora/internal/platform/validate"
	"github.com/taibuivan/kinora/internal/social/feed"
	"github.com/taibuivan/kinora/pkg/fold"
)

// Service implements the film catalogue operations: CRUD, likes, popularity
// ranking, search, and collaborative recommendations.
type Service struct {
	repo       Repository
	aggregator *Aggregator
	events     feed.Recorder
	logger     *slog.Logger
}

func NewService(repo Repository, aggregator *Aggregator, events feed.Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		aggregator: aggregator,
		events:     events,
		logger:     logger,
	}
}

// # CRUD

// ListFilms returns every film, fully enriched.
func (service *Service) ListFilms(ctx context.Context) ([]*Film, error) {
	films, err := service.repo.ListFilms(ctx)
	if err != nil {
		return nil, err
	}

	if err := service.aggregator.Enrich(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

// GetFilm returns a single enriched film.
func (service *Service) GetFilm(ctx context.Context, id int) (*Film, error) {
	f, err := service.repo.GetFilmByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := service.aggregator.Enrich(ctx, []*Film{f}); err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFilm validates and persists a new film with its relation sets, then
// returns the enriched aggregate.
func (service *Service) CreateFilm(ctx context.Context, f *Film) (*Film, error) {
	if err := service.validateFilm(f); err != nil {
		return nil, err
	}

	if err := service.repo.CreateFilm(ctx, f); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "film_created", slog.Int("film_id", f.ID))
	return service.GetFilm(ctx, f.ID)
}

// UpdateFilm validates and replaces a film's scalar fields and relation sets,
// then returns the enriched aggregate.
func (service *Service) UpdateFilm(ctx context.Context, f *Film) (*Film, error) {
	if err := service.validateFilm(f); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateFilm(ctx, f); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "film_updated", slog.Int("film_id", f.ID))
	return service.GetFilm(ctx, f.ID)
}

// DeleteFilm removes a film; likes, genre and director links cascade.
func (service *Service) DeleteFilm(ctx context.Context, id int) error {
	if err := service.repo.DeleteFilm(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "film_deleted", slog.Int("film_id", id))
	return nil
}

// # Likes

// AddLike records that a user liked a film and appends a feed event.
// Liking the same film twice is a no-op, not an error.
func (service *Service) AddLike(ctx context.Context, filmID, userID int) error {
	if err := service.repo.AddLike(ctx, filmID, userID); err != nil {
		return err
	}

	return service.events.Record(ctx, feed.NewEvent(userID, filmID, feed.EventTypeLike, feed.OperationAdd))
}

// RemoveLike removes a user's like and appends a feed event.
func (service *Service) RemoveLike(ctx context.Context, filmID, userID int) error {
	if err := service.repo.RemoveLike(ctx, filmID, userID); err != nil {
		return err
	}

	return service.events.Record(ctx, feed.NewEvent(userID, filmID, feed.EventTypeLike, feed.OperationRemove))
}

// # Popularity Ranking

// Popular returns up to count films ordered by the number of distinct users
// who liked them, optionally restricted to a genre and/or a release year
// (AND semantics when both are set).
//
// Ties are broken by ascending film ID so repeated calls over identical data
// return identical rankings. Films with zero likes are valid results.
func (service *Service) Popular(ctx context.Context, count int, genreID, year *int) ([]*Film, error) {
	v := &validate.Validator{}
	if err := v.Positive("count", count).Err(); err != nil {
		return nil, err
	}

	counts, err := service.repo.LikeCounts(ctx, genreID, year)
	if err != nil {
		return nil, err
	}

	rankedIDs := rankByCount(counts)
	if len(rankedIDs) > count {
		rankedIDs = rankedIDs[:count]
	}

	return service.enrichedByIDs(ctx, rankedIDs)
}

// # Similarity Recommendations

// Recommend returns films liked by the user's nearest neighbor — the other
// user sharing the most liked films — that the user has not liked yet.
//
// A user with no likes, or with no overlap with anyone, gets an empty list.
// Neighbor ties are broken by the lowest user ID.
func (service *Service) Recommend(ctx context.Context, userID int) ([]*Film, error) {
	liked, err := service.repo.LikedFilmIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(liked) == 0 {
		return make([]*Film, 0), nil
	}

	overlaps, err := service.repo.OverlapCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	neighborID, found := bestNeighbor(overlaps)
	if !found {
		return make([]*Film, 0), nil
	}

	neighborLiked, err := service.repo.LikedFilmIDs(ctx, neighborID)
	if err != nil {
		return nil, err
	}

	candidateIDs := make([]int, 0, len(neighborLiked))
	for filmID := range neighborLiked {
		if _, alreadyLiked := liked[filmID]; !alreadyLiked {
			candidateIDs = append(candidateIDs, filmID)
		}
	}
	sort.Ints(candidateIDs)

	return service.enrichedByIDs(ctx, candidateIDs)
}

// # Search

// Search returns films whose title and/or director name contains the query,
// case- and accent-insensitively, ordered by like count descending.
//
// query must not be blank; by must name at least one of "title" and
// "director". Unknown by entries are ignored, matching lenient
// query-parameter parsing elsewhere in the API.
func (service *Service) Search(ctx context.Context, query string, by []string) ([]*Film, error) {
	byTitle, byDirector := false, false
	for _, field := range by {
		switch field {
		case SearchByTitle:
			byTitle = true
		case SearchByDirector:
			byDirector = true
		}
	}

	if !byTitle && !byDirector {
		return nil, apperr.ValidationError("Search requires at least one field", apperr.FieldError{
			Field:   "by",
			Message: "Must contain 'title' and/or 'director'",
		})
	}

	folded := fold.Casefold(query)
	if folded == "" {
		return nil, apperr.ValidationError("Search requires a query", apperr.FieldError{
			Field:   "query",
			Message: "Must not be blank",
		})
	}

	matchedIDs, err := service.repo.FilmIDsMatchingText(ctx, folded, byTitle, byDirector)
	if err != nil {
		return nil, err
	}

	return service.enrichedByIDs(ctx, matchedIDs)
}

// # Shared Catalogue Views

// CommonFilms returns films two users both liked, most popular first.
func (service *Service) CommonFilms(ctx context.Context, userID, friendID int) ([]*Film, error) {
	commonIDs, err := service.repo.CommonFilmIDs(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}

	return service.enrichedByIDs(ctx, commonIDs)
}

// FilmsByDirector returns a director's films sorted by release year or by
// like count.
func (service *Service) FilmsByDirector(ctx context.Context, directorID int, sortBy string) ([]*Film, error) {
	v := &validate.Validator{}
	if err := v.OneOf("sortBy", sortBy, SortByYear, SortByLikes).Err(); err != nil {
		return nil, err
	}

	exists, err := service.repo.DirectorExists(ctx, directorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Director")
	}

	ids, err := service.repo.FilmIDsByDirector(ctx, directorID, sortBy)
	if err != nil {
		return nil, err
	}

	return service.enrichedByIDs(ctx, ids)
}

// # Internals

// enrichedByIDs loads raw rows for an ordered ID list and enriches them.
func (service *Service) enrichedByIDs(ctx context.Context, ids []int) ([]*Film, error) {
	if len(ids) == 0 {
		return make([]*Film, 0), nil
	}

	films, err := service.repo.RawFilmsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if err := service.aggregator.Enrich(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

func (service *Service) validateFilm(f *Film) error {
	v := &validate.Validator{}
	return v.
		Required("title", f.Title).
		MaxLen("description", f.Description, constants.MaxFilmDescriptionLen).
		NotBefore("release_date", f.ReleaseDate.Time, EarliestReleaseDate.Time).
		Positive("duration", f.Duration).
		Err()
}

// rankByCount orders film IDs by like count descending, then film ID
// ascending as the deterministic tie-break.
func rankByCount(counts map[int]int) []int {
	ids := make([]int, 0, len(counts))
	for filmID := range counts {
		ids = append(ids, filmID)
	}

	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	return ids
}

// bestNeighbor picks the user with the largest overlap; ties resolve to the
// lowest user ID. found is false when the overlap map is empty.
func bestNeighbor(overlaps map[int]int) (neighborID int, found bool) {
	bestCount := 0
	for userID, count := range overlaps {
		if count > bestCount || (count == bestCount && found && userID < neighborID) {
			neighborID = userID
			bestCount = count
			found = true
		}
	}
	return neighborID, found
}
