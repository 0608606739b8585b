// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feed

import "context"

// Repository persists and retrieves activity events.
type Repository interface {
	InsertEvent(ctx context.Context, event Event) error
	EventsByUser(ctx context.Context, userID int) ([]Event, error)
}
