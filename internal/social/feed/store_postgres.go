// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kinora/internal/platform/database/schema"
	"github.com/taibuivan/kinora/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed event store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) InsertEvent(ctx context.Context, event Event) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, to_timestamp($5 / 1000.0));
	`,
		schema.Event.Table,
		schema.Event.UserID,
		schema.Event.EntityID,
		schema.Event.EventType,
		schema.Event.Operation,
		schema.Event.CreatedAt,
	)

	_, err := repository.db.Exec(ctx, query,
		event.UserID,
		event.EntityID,
		string(event.EventType),
		string(event.Operation),
		event.Timestamp,
	)
	return dberr.Wrap(err, "insert_event")
}

func (repository *PostgresRepository) EventsByUser(ctx context.Context, userID int) ([]Event, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, (EXTRACT(EPOCH FROM %s) * 1000)::bigint
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC;
	`,
		schema.Event.ID,
		schema.Event.UserID,
		schema.Event.EntityID,
		schema.Event.EventType,
		schema.Event.Operation,
		schema.Event.CreatedAt,
		schema.Event.Table,
		schema.Event.UserID,
		schema.Event.CreatedAt, schema.Event.ID,
	)

	rows, err := repository.db.Query(ctx, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "events_by_user")
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		var e Event
		var eventType, operation string
		if err := rows.Scan(&e.ID, &e.UserID, &e.EntityID, &eventType, &operation, &e.Timestamp); err != nil {
			return nil, dberr.Wrap(err, "scan_event")
		}
		e.EventType = EventType(eventType)
		e.Operation = Operation(operation)
		events = append(events, e)
	}

	return events, dberr.Wrap(rows.Err(), "events_by_user_rows")
}
