package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkpress/inkpress/app/controllers"
	"github.com/inkpress/inkpress/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Published content, readable by anyone. The single post page lives with
	// the form routes so its comment form gets a CSRF token.
	app.Get("/", controllers.HandleHome)
	app.Get("/categories", controllers.HandleCategoryIndex)
	app.Get("/category/:slug", controllers.HandleCategoryShow)

	// Auth
	app.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)
}
