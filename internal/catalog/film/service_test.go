// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinora/internal/catalog/film"
	"github.com/taibuivan/kinora/internal/platform/apperr"
	"github.com/taibuivan/kinora/internal/social/feed"
	"github.com/taibuivan/kinora/pkg/date"
)

// stubRepository fakes the full film storage contract on top of canned maps,
// recording the arguments of the discovery queries.
type stubRepository struct {
	stubRelationStore

	likeCounts   map[int]int
	likedByUser  map[int]map[int]struct{}
	overlaps     map[int]int
	searchIDs    []int
	commonIDs    []int
	directorIDs  []int
	hasDirector  bool
	overlapCalls int

	gotGenreID *int
	gotYear    *int
	gotQuery   string
	gotByTitle bool
	gotByDir   bool
	gotSortBy  string
}

func (s *stubRepository) ListFilms(_ context.Context) ([]*film.Film, error) { return nil, nil }

func (s *stubRepository) GetFilmByID(_ context.Context, id int) (*film.Film, error) {
	return rawFilm(id, fmt.Sprintf("Film %d", id)), nil
}

func (s *stubRepository) RawFilmsByIDs(_ context.Context, ids []int) ([]*film.Film, error) {
	films := make([]*film.Film, 0, len(ids))
	for _, id := range ids {
		films = append(films, rawFilm(id, fmt.Sprintf("Film %d", id)))
	}
	return films, nil
}

func (s *stubRepository) CreateFilm(_ context.Context, f *film.Film) error {
	f.ID = 1
	return nil
}

func (s *stubRepository) UpdateFilm(_ context.Context, _ *film.Film) error { return nil }
func (s *stubRepository) DeleteFilm(_ context.Context, _ int) error        { return nil }
func (s *stubRepository) AddLike(_ context.Context, _, _ int) error        { return nil }
func (s *stubRepository) RemoveLike(_ context.Context, _, _ int) error     { return nil }

func (s *stubRepository) LikeCounts(_ context.Context, genreID, year *int) (map[int]int, error) {
	s.gotGenreID = genreID
	s.gotYear = year
	return s.likeCounts, nil
}

func (s *stubRepository) LikedFilmIDs(_ context.Context, userID int) (map[int]struct{}, error) {
	return s.likedByUser[userID], nil
}

func (s *stubRepository) OverlapCounts(_ context.Context, _ int) (map[int]int, error) {
	s.overlapCalls++
	return s.overlaps, nil
}

func (s *stubRepository) FilmIDsMatchingText(_ context.Context, foldedQuery string, byTitle, byDirector bool) ([]int, error) {
	s.gotQuery = foldedQuery
	s.gotByTitle = byTitle
	s.gotByDir = byDirector
	return s.searchIDs, nil
}

func (s *stubRepository) CommonFilmIDs(_ context.Context, _, _ int) ([]int, error) {
	return s.commonIDs, nil
}

func (s *stubRepository) FilmIDsByDirector(_ context.Context, _ int, sortBy string) ([]int, error) {
	s.gotSortBy = sortBy
	return s.directorIDs, nil
}

func (s *stubRepository) DirectorExists(_ context.Context, _ int) (bool, error) {
	return s.hasDirector, nil
}

// stubRecorder captures feed events instead of persisting them.
type stubRecorder struct {
	events []feed.Event
}

func (s *stubRecorder) Record(_ context.Context, event feed.Event) error {
	s.events = append(s.events, event)
	return nil
}

func newTestService(repo *stubRepository) (*film.Service, *stubRecorder) {
	recorder := &stubRecorder{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return film.NewService(repo, film.NewAggregator(repo), recorder, logger), recorder
}

func filmIDs(films []*film.Film) []int {
	ids := make([]int, 0, len(films))
	for _, f := range films {
		ids = append(ids, f.ID)
	}
	return ids
}

// # Popularity

/*
TestService_Popular_Ordering checks like-count descending order with
ascending film ID as the tie-break.
*/
func TestService_Popular_Ordering(t *testing.T) {
	repo := &stubRepository{likeCounts: map[int]int{1: 5, 2: 5, 3: 9, 4: 0}}
	service, _ := newTestService(repo)

	films, err := service.Popular(context.Background(), 10, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 1, 2, 4}, filmIDs(films))
}

func TestService_Popular_Truncation(t *testing.T) {
	repo := &stubRepository{likeCounts: map[int]int{1: 5, 2: 5, 3: 9, 4: 0}}
	service, _ := newTestService(repo)

	films, err := service.Popular(context.Background(), 2, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 1}, filmIDs(films))
}

func TestService_Popular_InvalidCount(t *testing.T) {
	service, _ := newTestService(&stubRepository{})

	for _, count := range []int{0, -3} {
		_, err := service.Popular(context.Background(), count, nil, nil)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	}
}

func TestService_Popular_ForwardsFilters(t *testing.T) {
	repo := &stubRepository{likeCounts: map[int]int{}}
	service, _ := newTestService(repo)

	genreID, year := 2, 1999
	_, err := service.Popular(context.Background(), 10, &genreID, &year)
	require.NoError(t, err)

	require.NotNil(t, repo.gotGenreID)
	require.NotNil(t, repo.gotYear)
	assert.Equal(t, 2, *repo.gotGenreID)
	assert.Equal(t, 1999, *repo.gotYear)
}

// # Recommendations

func TestService_Recommend_NoLikes(t *testing.T) {
	repo := &stubRepository{likedByUser: map[int]map[int]struct{}{}}
	service, _ := newTestService(repo)

	films, err := service.Recommend(context.Background(), 1)
	require.NoError(t, err)

	assert.NotNil(t, films)
	assert.Empty(t, films)
	// Without any likes there is nothing to correlate.
	assert.Equal(t, 0, repo.overlapCalls)
}

func TestService_Recommend_NoOverlap(t *testing.T) {
	repo := &stubRepository{
		likedByUser: map[int]map[int]struct{}{1: {10: {}}},
		overlaps:    map[int]int{},
	}
	service, _ := newTestService(repo)

	films, err := service.Recommend(context.Background(), 1)
	require.NoError(t, err)

	assert.NotNil(t, films)
	assert.Empty(t, films)
}

/*
TestService_Recommend_NearestNeighbor verifies that the neighbor's unseen
likes come back, the shared ones filtered out.
*/
func TestService_Recommend_NearestNeighbor(t *testing.T) {
	repo := &stubRepository{
		likedByUser: map[int]map[int]struct{}{
			1: {10: {}, 20: {}},
			5: {10: {}, 20: {}, 30: {}, 40: {}},
		},
		overlaps: map[int]int{5: 2, 9: 1},
	}
	service, _ := newTestService(repo)

	films, err := service.Recommend(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []int{30, 40}, filmIDs(films))
}

/*
TestService_Recommend_TieBreak checks that equal overlaps resolve to the
lowest user ID.
*/
func TestService_Recommend_TieBreak(t *testing.T) {
	repo := &stubRepository{
		likedByUser: map[int]map[int]struct{}{
			1: {10: {}},
			3: {10: {}, 77: {}},
			8: {10: {}, 99: {}},
		},
		overlaps: map[int]int{8: 1, 3: 1},
	}
	service, _ := newTestService(repo)

	films, err := service.Recommend(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []int{77}, filmIDs(films))
}

// # Search

func TestService_Search_RequiresField(t *testing.T) {
	service, _ := newTestService(&stubRepository{})

	for _, by := range [][]string{nil, {}, {"year"}} {
		_, err := service.Search(context.Background(), "crad", by)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	}
}

func TestService_Search_RequiresQuery(t *testing.T) {
	repo := &stubRepository{searchIDs: []int{1}}
	service, _ := newTestService(repo)

	for _, query := range []string{"", "   ", "\t"} {
		_, err := service.Search(context.Background(), query, []string{"title"})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	}

	// A blank query never reaches storage.
	assert.False(t, repo.gotByTitle)
}

func TestService_Search_FoldsQuery(t *testing.T) {
	repo := &stubRepository{searchIDs: []int{2, 1}}
	service, _ := newTestService(repo)

	films, err := service.Search(context.Background(), "  LÉON ", []string{"director", "title"})
	require.NoError(t, err)

	assert.Equal(t, "leon", repo.gotQuery)
	assert.True(t, repo.gotByTitle)
	assert.True(t, repo.gotByDir)
	// Store ranking order passes through untouched.
	assert.Equal(t, []int{2, 1}, filmIDs(films))
}

// # Director Listings

func TestService_FilmsByDirector(t *testing.T) {
	repo := &stubRepository{hasDirector: true, directorIDs: []int{4, 2, 9}}
	service, _ := newTestService(repo)

	films, err := service.FilmsByDirector(context.Background(), 1, film.SortByYear)
	require.NoError(t, err)

	assert.Equal(t, film.SortByYear, repo.gotSortBy)
	assert.Equal(t, []int{4, 2, 9}, filmIDs(films))
}

func TestService_FilmsByDirector_UnknownDirector(t *testing.T) {
	service, _ := newTestService(&stubRepository{hasDirector: false})

	_, err := service.FilmsByDirector(context.Background(), 404, film.SortByLikes)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestService_FilmsByDirector_InvalidSort(t *testing.T) {
	service, _ := newTestService(&stubRepository{hasDirector: true})

	_, err := service.FilmsByDirector(context.Background(), 1, "rating")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

// # Likes & Feed

func TestService_Likes_RecordFeedEvents(t *testing.T) {
	service, recorder := newTestService(&stubRepository{})

	require.NoError(t, service.AddLike(context.Background(), 7, 3))
	require.NoError(t, service.RemoveLike(context.Background(), 7, 3))

	require.Len(t, recorder.events, 2)
	assert.Equal(t, feed.EventTypeLike, recorder.events[0].EventType)
	assert.Equal(t, feed.OperationAdd, recorder.events[0].Operation)
	assert.Equal(t, 3, recorder.events[0].UserID)
	assert.Equal(t, 7, recorder.events[0].EntityID)
	assert.Equal(t, feed.OperationRemove, recorder.events[1].Operation)
}

// # Validation

func TestService_CreateFilm_Validation(t *testing.T) {
	service, _ := newTestService(&stubRepository{})

	tests := []struct {
		name string
		film *film.Film
	}{
		{"empty_title", &film.Film{Title: "", ReleaseDate: date.New(2020, time.March, 1), Duration: 90}},
		{"too_early_release", &film.Film{Title: "Prehistory", ReleaseDate: date.New(1895, time.December, 27), Duration: 90}},
		{"zero_duration", &film.Film{Title: "Still", ReleaseDate: date.New(2020, time.March, 1), Duration: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateFilm(context.Background(), tt.film)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

func TestService_CreateFilm_EarliestDateAllowed(t *testing.T) {
	service, _ := newTestService(&stubRepository{})

	f := &film.Film{Title: "First Show", ReleaseDate: film.EarliestReleaseDate, Duration: 1}
	created, err := service.CreateFilm(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}
