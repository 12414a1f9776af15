package echo

import (
	"github.com/labstack/echo/v4"

	"github.com/chrisospina/contact-manager/internal/realtime"
)

type EventsHandler struct {
	hub *realtime.Hub
}

func NewEventsHandler(hub *realtime.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream subscribes the caller to the contacts-changed feed for the lifetime
// of the request.
func (h *EventsHandler) Stream(c echo.Context) error {
	client := h.hub.Register()
	defer h.hub.CloseClient(client)

	h.hub.ServeHTTP(c.Response(), c.Request(), client)
	return nil
}
