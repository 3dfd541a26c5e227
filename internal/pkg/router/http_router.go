package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkpress/inkpress/app/controllers"
	"github.com/inkpress/inkpress/internal/pkg/middleware"
	"github.com/inkpress/inkpress/internal/pkg/session"
)

type HttpRouter struct {
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Resolve the actor for every request before anything else runs.
	app.Use(middleware.UserContextMiddleware)

	// Wire controllers to the stores.
	controllers.InitializeControllers()

	h.registerPublicRoutes(app)
	h.registerFormRoutes(app)
	h.registerAdminRoutes(app)
}
