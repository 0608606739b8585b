// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package director

import "context"

type Repository interface {
	ListDirectors(ctx context.Context) ([]Director, error)
	GetDirectorByID(ctx context.Context, id int) (*Director, error)
	CreateDirector(ctx context.Context, d *Director) error
	UpdateDirector(ctx context.Context, d *Director) error
	DeleteDirector(ctx context.Context, id int) error
}
