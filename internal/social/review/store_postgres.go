// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

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

// usefulExpr computes the running usefulness score from the vote rows joined
// under alias v.
func usefulExpr() string {
	return fmt.Sprintf("COALESCE(SUM(CASE WHEN v.%s THEN 1 ELSE -1 END), 0)", schema.ReviewVote.IsUseful)
}

func reviewQuery(where, orderLimit string) string {
	return fmt.Sprintf(`
		SELECT r.%[1]s, r.%[2]s, r.%[3]s, r.%[4]s, r.%[5]s, %[8]s
		FROM %[6]s r
		LEFT JOIN %[7]s v ON v.%[9]s = r.%[1]s
		%[10]s
		GROUP BY r.%[1]s
		%[11]s;
	`,
		schema.Review.ID,
		schema.Review.Content,
		schema.Review.IsPositive,
		schema.Review.UserID,
		schema.Review.FilmID,
		schema.Review.Table,
		schema.ReviewVote.Table,
		usefulExpr(),
		schema.ReviewVote.ReviewID,
		where,
		orderLimit,
	)
}

func scanReview(row pgx.Row) (*Review, error) {
	var r Review
	err := row.Scan(&r.ID, &r.Content, &r.IsPositive, &r.UserID, &r.FilmID, &r.Useful)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (repository *PostgresRepository) GetReviewByID(ctx context.Context, id int) (*Review, error) {
	query := reviewQuery(
		fmt.Sprintf("WHERE r.%s = $1", schema.Review.ID),
		"",
	)

	r, err := scanReview(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Review")
		}
		return nil, dberr.Wrap(err, "get_review")
	}
	return r, nil
}

func (repository *PostgresRepository) ListReviews(ctx context.Context, filmID *int, count int) ([]Review, error) {
	// NULL film filter spans all films, mirroring the popularity query.
	query := reviewQuery(
		fmt.Sprintf("WHERE ($1::int IS NULL OR r.%s = $1)", schema.Review.FilmID),
		fmt.Sprintf("ORDER BY %s DESC, r.%s ASC LIMIT $2", usefulExpr(), schema.Review.ID),
	)

	rows, err := repository.db.Query(ctx, query, filmID, count)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	reviews := make([]Review, 0)
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, *r)
	}

	return reviews, dberr.Wrap(rows.Err(), "list_reviews_rows")
}

func (repository *PostgresRepository) CreateReview(ctx context.Context, r *Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s;
	`,
		schema.Review.Table,
		schema.Review.Content, schema.Review.IsPositive, schema.Review.UserID, schema.Review.FilmID,
		schema.Review.ID,
	)

	err := repository.db.QueryRow(ctx, query, r.Content, r.IsPositive, r.UserID, r.FilmID).Scan(&r.ID)
	return dberr.Wrap(err, "create_review")
}

func (repository *PostgresRepository) UpdateReview(ctx context.Context, r *Review) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1;
	`,
		schema.Review.Table,
		schema.Review.Content, schema.Review.IsPositive, schema.Review.UpdatedAt,
		schema.Review.ID,
	)

	tag, err := repository.db.Exec(ctx, query, r.ID, r.Content, r.IsPositive)
	if err != nil {
		return dberr.Wrap(err, "update_review")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Review")
	}
	return nil
}

func (repository *PostgresRepository) DeleteReview(ctx context.Context, id int) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1;", schema.Review.Table, schema.Review.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_review")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Review")
	}
	return nil
}

// # Usefulness Votes

func (repository *PostgresRepository) SetVote(ctx context.Context, reviewID, userID int, isUseful bool) error {
	// A user flipping sides replaces their previous vote.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s;
	`,
		schema.ReviewVote.Table,
		schema.ReviewVote.ReviewID, schema.ReviewVote.UserID, schema.ReviewVote.IsUseful,
		schema.ReviewVote.ReviewID, schema.ReviewVote.UserID,
		schema.ReviewVote.IsUseful, schema.ReviewVote.IsUseful,
	)

	_, err := repository.db.Exec(ctx, query, reviewID, userID, isUseful)
	return dberr.Wrap(err, "set_review_vote")
}

func (repository *PostgresRepository) RemoveVote(ctx context.Context, reviewID, userID int, isUseful bool) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2 AND %s = $3;
	`,
		schema.ReviewVote.Table,
		schema.ReviewVote.ReviewID, schema.ReviewVote.UserID, schema.ReviewVote.IsUseful,
	)

	_, err := repository.db.Exec(ctx, query, reviewID, userID, isUseful)
	return dberr.Wrap(err, "remove_review_vote")
}
