package schema

// EventTable represents the 'social.event' table (per-user activity feed)
type EventTable struct {
	Table     string
	ID        string
	UserID    string
	EntityID  string
	EventType string
	Operation string
	CreatedAt string
}

// Event is the schema definition for social.event
var Event = EventTable{
	Table:     "social.event",
	ID:        "id",
	UserID:    "userid",
	EntityID:  "entityid",
	EventType: "eventtype",
	Operation: "operation",
	CreatedAt: "createdat",
}
