package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, contactHandler *ContactHandler, eventsHandler *EventsHandler) {
	server.GET("/api/v1/contacts", contactHandler.ListContacts)
	server.POST("/api/v1/contacts", contactHandler.SaveContact)
	server.GET("/api/v1/contacts/events", eventsHandler.Stream)
	server.GET("/api/v1/contacts/:id", contactHandler.GetContact)
	server.DELETE("/api/v1/contacts/:id", contactHandler.DeleteContact)
}
