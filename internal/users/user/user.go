// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package user handles viewer profiles and the social graph around them.

It provides CRUD over user accounts, one-directional friendships, mutual
friend resolution, the per-user activity feed, and the entry point into
film recommendations.

# Architecture

  - Entities: User.
  - Friendships: Directed edges; adding a friend never requires consent
    from the other side.
  - Collaborators: Recommendations come from the film domain, the feed
    from the social domain; both are consumed through narrow interfaces.
*/
package user

import (
	"strings"

	"github.com/taibuivan/kinora/pkg/date"
)

// # Domain Entities

// User is a viewer profile.
//
// Name is display-only and optional; a blank name falls back to the login.
type User struct {
	ID       int       `json:"id"`
	Email    string    `json:"email"`
	Login    string    `json:"login"`
	Name     string    `json:"name"`
	Birthday date.Date `json:"birthday"`
}

// Normalize applies field fallbacks prior to validation and persistence.
func (u *User) Normalize() {
	u.Email = strings.TrimSpace(u.Email)
	u.Login = strings.TrimSpace(u.Login)
	u.Name = strings.TrimSpace(u.Name)

	if u.Name == "" {
		u.Name = u.Login
	}
}
