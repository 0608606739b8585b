// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/kinora/internal/platform/database/schema"
	"github.com/taibuivan/kinora/internal/platform/dberr"
)

// # Bulk Relation Queries
//
// Each method resolves one relation kind for a whole batch of films in a
// single round-trip. The aggregator fans these out concurrently, so none of
// them may assume ordering across film IDs.

func (repository *PostgresRepository) GenresByFilmIDs(ctx context.Context, filmIDs []int) (map[int][]Genre, error) {
	query := fmt.Sprintf(`
		SELECT fg.%s, g.%s, g.%s
		FROM %s fg
		JOIN %s g ON g.%s = fg.%s
		WHERE fg.%s = ANY($1)
		ORDER BY g.%s ASC;
	`,
		schema.FilmGenre.FilmID, schema.Genre.ID, schema.Genre.Name,
		schema.FilmGenre.Table,
		schema.Genre.Table, schema.Genre.ID, schema.FilmGenre.GenreID,
		schema.FilmGenre.FilmID,
		schema.Genre.ID,
	)

	rows, err := repository.db.Query(ctx, query, filmIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "genres_by_film_ids")
	}
	defer rows.Close()

	result := make(map[int][]Genre)
	for rows.Next() {
		var filmID int
		var g Genre
		if err := rows.Scan(&filmID, &g.ID, &g.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_film_genre")
		}
		result[filmID] = append(result[filmID], g)
	}

	return result, dberr.Wrap(rows.Err(), "genres_by_film_ids_rows")
}

func (repository *PostgresRepository) DirectorsByFilmIDs(ctx context.Context, filmIDs []int) (map[int][]Director, error) {
	query := fmt.Sprintf(`
		SELECT fd.%s, d.%s, d.%s
		FROM %s fd
		JOIN %s d ON d.%s = fd.%s
		WHERE fd.%s = ANY($1)
		ORDER BY d.%s ASC;
	`,
		schema.FilmDirector.FilmID, schema.Director.ID, schema.Director.Name,
		schema.FilmDirector.Table,
		schema.Director.Table, schema.Director.ID, schema.FilmDirector.DirectorID,
		schema.FilmDirector.FilmID,
		schema.Director.ID,
	)

	rows, err := repository.db.Query(ctx, query, filmIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "directors_by_film_ids")
	}
	defer rows.Close()

	result := make(map[int][]Director)
	for rows.Next() {
		var filmID int
		var d Director
		if err := rows.Scan(&filmID, &d.ID, &d.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_film_director")
		}
		result[filmID] = append(result[filmID], d)
	}

	return result, dberr.Wrap(rows.Err(), "directors_by_film_ids_rows")
}

func (repository *PostgresRepository) RatingByFilmIDs(ctx context.Context, filmIDs []int) (map[int]Rating, error) {
	query := fmt.Sprintf(`
		SELECT f.%s, r.%s, r.%s
		FROM %s f
		JOIN %s r ON r.%s = f.%s
		WHERE f.%s = ANY($1);
	`,
		schema.Film.ID, schema.Rating.ID, schema.Rating.Name,
		schema.Film.Table,
		schema.Rating.Table, schema.Rating.ID, schema.Film.RatingID,
		schema.Film.ID,
	)

	rows, err := repository.db.Query(ctx, query, filmIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "ratings_by_film_ids")
	}
	defer rows.Close()

	result := make(map[int]Rating)
	for rows.Next() {
		var filmID int
		var r Rating
		if err := rows.Scan(&filmID, &r.ID, &r.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_film_rating")
		}
		result[filmID] = r
	}

	return result, dberr.Wrap(rows.Err(), "ratings_by_film_ids_rows")
}

func (repository *PostgresRepository) LikesByFilmIDs(ctx context.Context, filmIDs []int) (map[int][]int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s ASC;
	`,
		schema.FilmLike.FilmID, schema.FilmLike.UserID,
		schema.FilmLike.Table,
		schema.FilmLike.FilmID,
		schema.FilmLike.UserID,
	)

	rows, err := repository.db.Query(ctx, query, filmIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "likes_by_film_ids")
	}
	defer rows.Close()

	result := make(map[int][]int)
	for rows.Next() {
		var filmID, userID int
		if err := rows.Scan(&filmID, &userID); err != nil {
			return nil, dberr.Wrap(err, "scan_film_like")
		}
		result[filmID] = append(result[filmID], userID)
	}

	return result, dberr.Wrap(rows.Err(), "likes_by_film_ids_rows")
}

// # Ranking & Recommendation Queries

func (repository *PostgresRepository) LikeCounts(ctx context.Context, genreID, year *int) (map[int]int, error) {
	// NULL-tolerant filters: an unset parameter disables its clause, so one
	// query serves all four filter combinations.
	query := fmt.Sprintf(`
		SELECT f.%[1]s, COUNT(DISTINCT l.%[5]s)
		FROM %[2]s f
		LEFT JOIN %[4]s l ON l.%[6]s = f.%[1]s
		WHERE ($1::int IS NULL OR EXISTS (
			SELECT 1 FROM %[7]s fg
			WHERE fg.%[8]s = f.%[1]s AND fg.%[9]s = $1
		))
		AND ($2::int IS NULL OR EXTRACT(YEAR FROM f.%[3]s) = $2)
		GROUP BY f.%[1]s;
	`,
		schema.Film.ID,
		schema.Film.Table,
		schema.Film.ReleaseDate,
		schema.FilmLike.Table,
		schema.FilmLike.UserID,
		schema.FilmLike.FilmID,
		schema.FilmGenre.Table,
		schema.FilmGenre.FilmID,
		schema.FilmGenre.GenreID,
	)

	rows, err := repository.db.Query(ctx, query, genreID, year)
	if err != nil {
		return nil, dberr.Wrap(err, "like_counts")
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var filmID, count int
		if err := rows.Scan(&filmID, &count); err != nil {
			return nil, dberr.Wrap(err, "scan_like_count")
		}
		counts[filmID] = count
	}

	return counts, dberr.Wrap(rows.Err(), "like_counts_rows")
}

func (repository *PostgresRepository) LikedFilmIDs(ctx context.Context, userID int) (map[int]struct{}, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.FilmLike.FilmID,
		schema.FilmLike.Table,
		schema.FilmLike.UserID,
	)

	rows, err := repository.db.Query(ctx, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "liked_film_ids")
	}
	defer rows.Close()

	liked := make(map[int]struct{})
	for rows.Next() {
		var filmID int
		if err := rows.Scan(&filmID); err != nil {
			return nil, dberr.Wrap(err, "scan_liked_film_id")
		}
		liked[filmID] = struct{}{}
	}

	return liked, dberr.Wrap(rows.Err(), "liked_film_ids_rows")
}

func (repository *PostgresRepository) OverlapCounts(ctx context.Context, userID int) (map[int]int, error) {
	// Self-join on the like table: each row pairs one of the user's likes
	// with another user who liked the same film.
	query := fmt.Sprintf(`
		SELECT other.%[2]s, COUNT(*)
		FROM %[1]s mine
		JOIN %[1]s other ON other.%[3]s = mine.%[3]s AND other.%[2]s <> mine.%[2]s
		WHERE mine.%[2]s = $1
		GROUP BY other.%[2]s;
	`,
		schema.FilmLike.Table,
		schema.FilmLike.UserID,
		schema.FilmLike.FilmID,
	)

	rows, err := repository.db.Query(ctx, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "overlap_counts")
	}
	defer rows.Close()

	overlaps := make(map[int]int)
	for rows.Next() {
		var otherUserID, count int
		if err := rows.Scan(&otherUserID, &count); err != nil {
			return nil, dberr.Wrap(err, "scan_overlap_count")
		}
		overlaps[otherUserID] = count
	}

	return overlaps, dberr.Wrap(rows.Err(), "overlap_counts_rows")
}

// # Search & Shared Views

func (repository *PostgresRepository) FilmIDsMatchingText(ctx context.Context, foldedQuery string, byTitle, byDirector bool) ([]int, error) {
	// The query arrives already case-folded; unaccent keeps the database
	// side symmetric with pkg/fold for accented titles and names.
	conditions := make([]string, 0, 2)
	if byTitle {
		conditions = append(conditions, fmt.Sprintf(
			"unaccent(LOWER(f.%s)) LIKE '%%' || $1 || '%%'",
			schema.Film.Title,
		))
	}
	if byDirector {
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM %s fd
			JOIN %s d ON d.%s = fd.%s
			WHERE fd.%s = f.%s AND unaccent(LOWER(d.%s)) LIKE '%%' || $1 || '%%'
		)`,
			schema.FilmDirector.Table,
			schema.Director.Table, schema.Director.ID, schema.FilmDirector.DirectorID,
			schema.FilmDirector.FilmID, schema.Film.ID,
			schema.Director.Name,
		))
	}

	query := fmt.Sprintf(`
		SELECT f.%[1]s
		FROM %[2]s f
		LEFT JOIN %[3]s l ON l.%[4]s = f.%[1]s
		WHERE %[6]s
		GROUP BY f.%[1]s
		ORDER BY COUNT(DISTINCT l.%[5]s) DESC, f.%[1]s ASC;
	`,
		schema.Film.ID,
		schema.Film.Table,
		schema.FilmLike.Table,
		schema.FilmLike.FilmID,
		schema.FilmLike.UserID,
		strings.Join(conditions, " OR "),
	)

	return repository.queryFilmIDs(ctx, "search_films", query, foldedQuery)
}

func (repository *PostgresRepository) CommonFilmIDs(ctx context.Context, userID, friendID int) ([]int, error) {
	query := fmt.Sprintf(`
		SELECT mine.%[2]s
		FROM %[1]s mine
		JOIN %[1]s theirs ON theirs.%[2]s = mine.%[2]s AND theirs.%[3]s = $2
		LEFT JOIN %[1]s everyone ON everyone.%[2]s = mine.%[2]s
		WHERE mine.%[3]s = $1
		GROUP BY mine.%[2]s
		ORDER BY COUNT(DISTINCT everyone.%[3]s) DESC, mine.%[2]s ASC;
	`,
		schema.FilmLike.Table,
		schema.FilmLike.FilmID,
		schema.FilmLike.UserID,
	)

	return repository.queryFilmIDs(ctx, "common_films", query, userID, friendID)
}

func (repository *PostgresRepository) FilmIDsByDirector(ctx context.Context, directorID int, sortBy string) ([]int, error) {
	orderBy := fmt.Sprintf("EXTRACT(YEAR FROM f.%s) ASC, f.%s ASC", schema.Film.ReleaseDate, schema.Film.ID)
	if sortBy == SortByLikes {
		orderBy = fmt.Sprintf("COUNT(DISTINCT l.%s) DESC, f.%s ASC", schema.FilmLike.UserID, schema.Film.ID)
	}

	query := fmt.Sprintf(`
		SELECT f.%[1]s
		FROM %[2]s f
		JOIN %[5]s fd ON fd.%[6]s = f.%[1]s
		LEFT JOIN %[3]s l ON l.%[4]s = f.%[1]s
		WHERE fd.%[7]s = $1
		GROUP BY f.%[1]s
		ORDER BY %[8]s;
	`,
		schema.Film.ID,
		schema.Film.Table,
		schema.FilmLike.Table,
		schema.FilmLike.FilmID,
		schema.FilmDirector.Table,
		schema.FilmDirector.FilmID,
		schema.FilmDirector.DirectorID,
		orderBy,
	)

	return repository.queryFilmIDs(ctx, "films_by_director", query, directorID)
}

func (repository *PostgresRepository) DirectorExists(ctx context.Context, directorID int) (bool, error) {
	query := fmt.Sprintf(
		"SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1);",
		schema.Director.Table, schema.Director.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(ctx, query, directorID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "director_exists")
	}
	return exists, nil
}

// queryFilmIDs runs a single-column film ID query preserving row order.
func (repository *PostgresRepository) queryFilmIDs(ctx context.Context, action, query string, args ...any) ([]int, error) {
	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		ids = append(ids, id)
	}

	return ids, dberr.Wrap(rows.Err(), action)
}
