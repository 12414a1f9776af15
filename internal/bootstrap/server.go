package bootstrap

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	app "github.com/chrisospina/contact-manager/internal/application/contact"
	"github.com/chrisospina/contact-manager/internal/infrastructure/repository"
	httpecho "github.com/chrisospina/contact-manager/internal/interfaces/http/echo"
	"github.com/chrisospina/contact-manager/internal/realtime"
)

func NewHTTPServer(db *gorm.DB, hub *realtime.Hub, notifier app.ChangeNotifier) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("1M"))

	contactRepo := repository.NewContactRepository(db)
	saveContact := app.NewSaveContact(contactRepo, notifier)
	deleteContact := app.NewDeleteContact(contactRepo, notifier)
	getContact := app.NewGetContact(contactRepo)
	listContacts := app.NewListContacts(contactRepo)

	contactHandler := httpecho.NewContactHandler(saveContact, deleteContact, getContact, listContacts)
	eventsHandler := httpecho.NewEventsHandler(hub)

	httpecho.RegisterRoutes(server, contactHandler, eventsHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
