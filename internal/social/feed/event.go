// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package feed records and serves the per-user activity feed.

Every socially visible action (liking a film, adding a friend, posting a
review) is appended as an immutable event. A user's feed is the chronological
list of events produced by that user.
*/
package feed

import "time"

// EventType classifies which kind of entity an event refers to.
type EventType string

const (
	EventTypeLike   EventType = "LIKE"
	EventTypeFriend EventType = "FRIEND"
	EventTypeReview EventType = "REVIEW"
)

// Operation describes what happened to the entity.
type Operation string

const (
	OperationAdd    Operation = "ADD"
	OperationRemove Operation = "REMOVE"
	OperationUpdate Operation = "UPDATE"
)

// Event is a single immutable entry in a user's activity feed.
type Event struct {
	ID        int       `json:"event_id"`
	UserID    int       `json:"user_id"`
	EntityID  int       `json:"entity_id"`
	EventType EventType `json:"event_type"`
	Operation Operation `json:"operation"`
	// Timestamp is the event creation time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// NewEvent builds an event stamped with the current time.
func NewEvent(userID, entityID int, eventType EventType, operation Operation) Event {
	return Event{
		UserID:    userID,
		EntityID:  entityID,
		EventType: eventType,
		Operation: operation,
		Timestamp: time.Now().UnixMilli(),
	}
}
