// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feed

import (
	"context"
	"log/slog"
)

// Recorder is the write-side contract consumed by the film, user, and review
// services. Keeping it narrow lets tests substitute a no-op recorder.
type Recorder interface {
	Record(ctx context.Context, event Event) error
}

// Service coordinates event recording and feed retrieval.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record appends an event to the actor's feed.
func (service *Service) Record(ctx context.Context, event Event) error {
	if err := service.repo.InsertEvent(ctx, event); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "feed_event_recorded",
		slog.Int("user_id", event.UserID),
		slog.Int("entity_id", event.EntityID),
		slog.String("event_type", string(event.EventType)),
		slog.String("operation", string(event.Operation)),
	)
	return nil
}

// Feed returns the chronological activity feed of a user.
func (service *Service) Feed(ctx context.Context, userID int) ([]Event, error) {
	return service.repo.EventsByUser(ctx, userID)
}
