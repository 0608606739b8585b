package director

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

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListDirectors(ctx context.Context) ([]Director, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.Director.ID,
		schema.Director.Name,
		schema.Director.Table,
		schema.Director.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_directors")
	}
	defer rows.Close()

	directors := make([]Director, 0)
	for rows.Next() {
		var d Director
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_director")
		}
		directors = append(directors, d)
	}

	return directors, dberr.Wrap(rows.Err(), "list_directors_rows")
}

func (repository *PostgresRepository) GetDirectorByID(ctx context.Context, id int) (*Director, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.Director.ID,
		schema.Director.Name,
		schema.Director.Table,
		schema.Director.ID,
	)

	d := &Director{}
	err := repository.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Director")
		}
		return nil, dberr.Wrap(err, "get_director")
	}
	return d, nil
}

func (repository *PostgresRepository) CreateDirector(ctx context.Context, d *Director) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1)
		RETURNING %s;
	`,
		schema.Director.Table,
		schema.Director.Name,
		schema.Director.ID,
	)

	err := repository.db.QueryRow(ctx, query, d.Name).Scan(&d.ID)
	return dberr.Wrap(err, "create_director")
}

func (repository *PostgresRepository) UpdateDirector(ctx context.Context, d *Director) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1
		WHERE %s = $2;
	`,
		schema.Director.Table,
		schema.Director.Name,
		schema.Director.ID,
	)

	tag, err := repository.db.Exec(ctx, query, d.Name, d.ID)
	if err != nil {
		return dberr.Wrap(err, "update_director")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Director")
	}
	return nil
}

func (repository *PostgresRepository) DeleteDirector(ctx context.Context, id int) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1;
	`,
		schema.Director.Table,
		schema.Director.ID,
	)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_director")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Director")
	}
	return nil
}
