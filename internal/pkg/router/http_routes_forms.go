package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/inkpress/inkpress/app/controllers"
	"github.com/inkpress/inkpress/internal/pkg/env"
	"github.com/inkpress/inkpress/internal/pkg/middleware"
)

func csrfConfig() csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
	}
}

func (h HttpRouter) registerFormRoutes(app *fiber.App) {
	group := app.Group("", csrf.New(csrfConfig()))

	group.Get("/login", controllers.HandleAuthLogin)
	group.Post("/login", controllers.HandleAuthLogin)
	group.Get("/register", controllers.HandleAuthRegister)
	group.Post("/register", controllers.HandleAuthRegister)

	group.Get("/post/:slug", controllers.HandlePostShow)
	group.Post("/post/:slug/comment", middleware.RequireAuth, controllers.HandleCommentCreate)
}
