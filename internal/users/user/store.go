// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import "context"

// Repository is the storage contract of the user domain.
type Repository interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUserByID(ctx context.Context, id int) (*User, error)
	UserExists(ctx context.Context, id int) (bool, error)

	CreateUser(ctx context.Context, u *User) error
	UpdateUser(ctx context.Context, u *User) error
	DeleteUser(ctx context.Context, id int) error

	// # Friendship graph

	AddFriend(ctx context.Context, userID, friendID int) error
	RemoveFriend(ctx context.Context, userID, friendID int) error
	// ListFriends returns the users that userID follows, ordered by ID.
	ListFriends(ctx context.Context, userID int) ([]User, error)
	// CommonFriends returns users followed by both userID and otherID,
	// ordered by ID.
	CommonFriends(ctx context.Context, userID, otherID int) ([]User, error)
}
