// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

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

func userColumns(alias string) string {
	return fmt.Sprintf("%[1]s.%[2]s, %[1]s.%[3]s, %[1]s.%[4]s, %[1]s.%[5]s, %[1]s.%[6]s",
		alias,
		schema.UserAccount.ID,
		schema.UserAccount.Email,
		schema.UserAccount.Login,
		schema.UserAccount.Name,
		schema.UserAccount.Birthday,
	)
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &u.Birthday.Time)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (repository *PostgresRepository) ListUsers(ctx context.Context) ([]User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s u
		ORDER BY u.%s ASC;
	`,
		userColumns("u"),
		schema.UserAccount.Table,
		schema.UserAccount.ID,
	)

	return repository.queryUsers(ctx, "list_users", query)
}

func (repository *PostgresRepository) GetUserByID(ctx context.Context, id int) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s u
		WHERE u.%s = $1;
	`,
		userColumns("u"),
		schema.UserAccount.Table,
		schema.UserAccount.ID,
	)

	u, err := scanUser(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, dberr.Wrap(err, "get_user")
	}
	return u, nil
}

func (repository *PostgresRepository) UserExists(ctx context.Context, id int) (bool, error) {
	query := fmt.Sprintf(
		"SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1);",
		schema.UserAccount.Table, schema.UserAccount.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "user_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateUser(ctx context.Context, u *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s;
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Email, schema.UserAccount.Login, schema.UserAccount.Name, schema.UserAccount.Birthday,
		schema.UserAccount.ID,
	)

	err := repository.db.QueryRow(ctx, query, u.Email, u.Login, u.Name, u.Birthday.Time).Scan(&u.ID)
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) UpdateUser(ctx context.Context, u *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1;
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Email, schema.UserAccount.Login, schema.UserAccount.Name, schema.UserAccount.Birthday,
		schema.UserAccount.ID,
	)

	tag, err := repository.db.Exec(ctx, query, u.ID, u.Email, u.Login, u.Name, u.Birthday.Time)
	if err != nil {
		return dberr.Wrap(err, "update_user")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}
	return nil
}

func (repository *PostgresRepository) DeleteUser(ctx context.Context, id int) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1;", schema.UserAccount.Table, schema.UserAccount.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}
	return nil
}

// # Friendship Graph

func (repository *PostgresRepository) AddFriend(ctx context.Context, userID, friendID int) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s, %s) DO NOTHING;
	`,
		schema.Friendship.Table,
		schema.Friendship.UserID, schema.Friendship.FriendID,
		schema.Friendship.UserID, schema.Friendship.FriendID,
	)

	_, err := repository.db.Exec(ctx, query, userID, friendID)
	return dberr.Wrap(err, "add_friend")
}

func (repository *PostgresRepository) RemoveFriend(ctx context.Context, userID, friendID int) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2;
	`,
		schema.Friendship.Table,
		schema.Friendship.UserID, schema.Friendship.FriendID,
	)

	_, err := repository.db.Exec(ctx, query, userID, friendID)
	return dberr.Wrap(err, "remove_friend")
}

func (repository *PostgresRepository) ListFriends(ctx context.Context, userID int) ([]User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s f
		JOIN %s u ON u.%s = f.%s
		WHERE f.%s = $1
		ORDER BY u.%s ASC;
	`,
		userColumns("u"),
		schema.Friendship.Table,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.Friendship.FriendID,
		schema.Friendship.UserID,
		schema.UserAccount.ID,
	)

	return repository.queryUsers(ctx, "list_friends", query, userID)
}

func (repository *PostgresRepository) CommonFriends(ctx context.Context, userID, otherID int) ([]User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s mine
		JOIN %s theirs ON theirs.%s = mine.%s AND theirs.%s = $2
		JOIN %s u ON u.%s = mine.%s
		WHERE mine.%s = $1
		ORDER BY u.%s ASC;
	`,
		userColumns("u"),
		schema.Friendship.Table,
		schema.Friendship.Table, schema.Friendship.FriendID, schema.Friendship.FriendID, schema.Friendship.UserID,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.Friendship.FriendID,
		schema.Friendship.UserID,
		schema.UserAccount.ID,
	)

	return repository.queryUsers(ctx, "common_friends", query, userID, otherID)
}

func (repository *PostgresRepository) queryUsers(ctx context.Context, action, query string, args ...any) ([]User, error) {
	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, dberr.Wrap(err, action)
		}
		users = append(users, *u)
	}

	return users, dberr.Wrap(rows.Err(), action)
}
