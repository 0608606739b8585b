package rating

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

func (repository *PostgresRepository) ListRatings(ctx context.Context) ([]Rating, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.Rating.ID,
		schema.Rating.Name,
		schema.Rating.Table,
		schema.Rating.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_ratings")
	}
	defer rows.Close()

	ratings := make([]Rating, 0)
	for rows.Next() {
		var r Rating
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_rating")
		}
		ratings = append(ratings, r)
	}

	return ratings, dberr.Wrap(rows.Err(), "list_ratings_rows")
}

func (repository *PostgresRepository) GetRatingByID(ctx context.Context, id int) (*Rating, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.Rating.ID,
		schema.Rating.Name,
		schema.Rating.Table,
		schema.Rating.ID,
	)

	r := &Rating{}
	err := repository.db.QueryRow(ctx, query, id).Scan(&r.ID, &r.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Rating")
		}
		return nil, dberr.Wrap(err, "get_rating")
	}
	return r, nil
}
