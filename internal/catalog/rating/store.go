// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rating

import "context"

type Repository interface {
	ListRatings(ctx context.Context) ([]Rating, error)
	GetRatingByID(ctx context.Context, id int) (*Rating, error)
}
