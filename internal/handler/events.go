package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"webapps/internal/queue"
)

// publishChange emits a catalogue change event after a successful mutation.
// Publishing is best-effort: it runs inside the request but its outcome
// never influences the HTTP response, and it is a no-op when no broker is
// configured.
func publishChange(c echo.Context, app, entity, action string, id int64, title string) {
	_ = queue.PublishCatalogChanged(c.Request().Context(), queue.CatalogChangedEvent{
		App:        app,
		Entity:     entity,
		Action:     action,
		EntityID:   id,
		Title:      title,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}
