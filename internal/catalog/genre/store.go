// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import "context"

type Repository interface {
	ListGenres(ctx context.Context) ([]Genre, error)
	GetGenreByID(ctx context.Context, id int) (*Genre, error)
}
