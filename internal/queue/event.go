// Package queue defines message payloads exchanged over the message broker
// and a fire-and-forget publisher for them.
package queue

// CatalogChangedEvent is published after a successful mutating operation
// in any of the catalogue apps.  It carries enough information for
// downstream consumers to log or trigger analytics without querying the
// primary store.
type CatalogChangedEvent struct {
	App        string `json:"app"`         // "books", "cafes" or "movies"
	Entity     string `json:"entity"`      // entity type that changed
	Action     string `json:"action"`      // "created", "updated" or "deleted"
	EntityID   int64  `json:"entity_id"`   // surrogate key of the row
	Title      string `json:"title"`       // human-readable identifier (title/name)
	OccurredAt string `json:"occurred_at"` // RFC3339 UTC timestamp
}
