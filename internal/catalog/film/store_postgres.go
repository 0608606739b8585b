// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kinora/internal/platform/apperr"
	"github.com/taibuivan/kinora/internal/platform/database/schema"
	"github.com/taibuivan/kinora/internal/platform/dberr"
)

// PostgresRepository implements [Repository] over a pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// filmColumns is the scalar projection shared by every film SELECT.
func filmColumns(alias string) string {
	return fmt.Sprintf("%[1]s.%[2]s, %[1]s.%[3]s, %[1]s.%[4]s, %[1]s.%[5]s, %[1]s.%[6]s, %[1]s.%[7]s",
		alias,
		schema.Film.ID,
		schema.Film.Title,
		schema.Film.Description,
		schema.Film.ReleaseDate,
		schema.Film.Duration,
		schema.Film.RatingID,
	)
}

func scanFilm(row pgx.Row) (*Film, error) {
	var f Film
	err := row.Scan(&f.ID, &f.Title, &f.Description, &f.ReleaseDate.Time, &f.Duration, &f.RatingID)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (repository *PostgresRepository) ListFilms(ctx context.Context) ([]*Film, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s f
		ORDER BY f.%s ASC;
	`,
		filmColumns("f"),
		schema.Film.Table,
		schema.Film.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_films")
	}
	defer rows.Close()

	films := make([]*Film, 0)
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_film")
		}
		films = append(films, f)
	}

	return films, dberr.Wrap(rows.Err(), "list_films_rows")
}

func (repository *PostgresRepository) GetFilmByID(ctx context.Context, id int) (*Film, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s f
		WHERE f.%s = $1;
	`,
		filmColumns("f"),
		schema.Film.Table,
		schema.Film.ID,
	)

	f, err := scanFilm(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Film")
		}
		return nil, dberr.Wrap(err, "get_film")
	}
	return f, nil
}

func (repository *PostgresRepository) RawFilmsByIDs(ctx context.Context, ids []int) ([]*Film, error) {
	if len(ids) == 0 {
		return make([]*Film, 0), nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s f
		WHERE f.%s = ANY($1);
	`,
		filmColumns("f"),
		schema.Film.Table,
		schema.Film.ID,
	)

	rows, err := repository.db.Query(ctx, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "films_by_ids")
	}
	defer rows.Close()

	byID := make(map[int]*Film, len(ids))
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_film")
		}
		byID[f.ID] = f
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "films_by_ids_rows")
	}

	// The database returns rows in arbitrary order; callers pass IDs
	// already ranked, so restore the input order here.
	films := make([]*Film, 0, len(ids))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			films = append(films, f)
		}
	}

	return films, nil
}

func (repository *PostgresRepository) CreateFilm(ctx context.Context, f *Film) error {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_create_film")
	}
	defer transaction.Rollback(ctx)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s;
	`,
		schema.Film.Table,
		schema.Film.Title, schema.Film.Description, schema.Film.ReleaseDate, schema.Film.Duration, schema.Film.RatingID,
		schema.Film.ID,
	)

	err = transaction.QueryRow(ctx, query,
		f.Title,
		f.Description,
		f.ReleaseDate.Time,
		f.Duration,
		f.RatingID,
	).Scan(&f.ID)
	if err != nil {
		return dberr.Wrap(err, "insert_film")
	}

	if err := repository.replaceJunctions(ctx, transaction, f); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(ctx), "commit_create_film")
}

func (repository *PostgresRepository) UpdateFilm(ctx context.Context, f *Film) error {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_update_film")
	}
	defer transaction.Rollback(ctx)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1;
	`,
		schema.Film.Table,
		schema.Film.Title, schema.Film.Description, schema.Film.ReleaseDate, schema.Film.Duration, schema.Film.RatingID,
		schema.Film.ID,
	)

	tag, err := transaction.Exec(ctx, query,
		f.ID,
		f.Title,
		f.Description,
		f.ReleaseDate.Time,
		f.Duration,
		f.RatingID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_film")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Film")
	}

	if err := repository.replaceJunctions(ctx, transaction, f); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(ctx), "commit_update_film")
}

// replaceJunctions rewrites the genre and director junction rows so the
// stored sets mirror the input sets exactly.
func (repository *PostgresRepository) replaceJunctions(ctx context.Context, transaction pgx.Tx, f *Film) error {
	err := repository.replaceJunction(ctx, transaction,
		schema.FilmGenre.Table, schema.FilmGenre.FilmID, schema.FilmGenre.GenreID,
		f.ID, f.GenreIDs)
	if err != nil {
		return err
	}

	return repository.replaceJunction(ctx, transaction,
		schema.FilmDirector.Table, schema.FilmDirector.FilmID, schema.FilmDirector.DirectorID,
		f.ID, f.DirectorIDs)
}

func (repository *PostgresRepository) replaceJunction(ctx context.Context, transaction pgx.Tx, table, filmColumn, refColumn string, filmID int, refIDs []int) error {
	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1;", table, filmColumn)
	if _, err := transaction.Exec(ctx, deleteQuery, filmID); err != nil {
		return dberr.Wrap(err, "clear_junction")
	}

	if len(refIDs) == 0 {
		return nil
	}

	// unnest + DISTINCT keeps duplicate IDs in the request from tripping
	// the junction's primary key.
	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT DISTINCT $1, ref FROM unnest($2::int[]) AS ref;
	`, table, filmColumn, refColumn)

	_, err := transaction.Exec(ctx, insertQuery, filmID, refIDs)
	return dberr.Wrap(err, "fill_junction")
}

func (repository *PostgresRepository) DeleteFilm(ctx context.Context, id int) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1;", schema.Film.Table, schema.Film.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_film")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Film")
	}
	return nil
}

// # Likes

func (repository *PostgresRepository) AddLike(ctx context.Context, filmID, userID int) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s, %s) DO NOTHING;
	`,
		schema.FilmLike.Table,
		schema.FilmLike.FilmID, schema.FilmLike.UserID,
		schema.FilmLike.FilmID, schema.FilmLike.UserID,
	)

	_, err := repository.db.Exec(ctx, query, filmID, userID)
	return dberr.Wrap(err, "add_like")
}

func (repository *PostgresRepository) RemoveLike(ctx context.Context, filmID, userID int) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2;
	`,
		schema.FilmLike.Table,
		schema.FilmLike.FilmID, schema.FilmLike.UserID,
	)

	_, err := repository.db.Exec(ctx, query, filmID, userID)
	return dberr.Wrap(err, "remove_like")
}
