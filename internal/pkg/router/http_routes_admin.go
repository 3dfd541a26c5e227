package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/inkpress/inkpress/app/controllers"
	"github.com/inkpress/inkpress/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", csrf.New(csrfConfig()), middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleAdminDashboard)

	// Post management
	adminGroup.Get("/posts", controllers.HandleAdminPosts)
	adminGroup.Get("/posts/create", controllers.HandleAdminPostCreate)
	adminGroup.Post("/posts/store", controllers.HandleAdminPostStore)
	adminGroup.Get("/posts/edit/:id", controllers.HandleAdminPostEdit)
	adminGroup.Post("/posts/update/:id", controllers.HandleAdminPostUpdate)
	adminGroup.Post("/posts/delete/:id", controllers.HandleAdminPostDelete)

	// Category management
	adminGroup.Get("/categories", controllers.HandleAdminCategories)
	adminGroup.Get("/categories/create", controllers.HandleAdminCategoryCreate)
	adminGroup.Post("/categories/store", controllers.HandleAdminCategoryStore)
	adminGroup.Get("/categories/edit/:id", controllers.HandleAdminCategoryEdit)
	adminGroup.Post("/categories/update/:id", controllers.HandleAdminCategoryUpdate)
	adminGroup.Post("/categories/delete/:id", controllers.HandleAdminCategoryDelete)

	// Comment moderation
	adminGroup.Get("/comments", controllers.HandleAdminComments)
	adminGroup.Post("/comments/delete/:id", controllers.HandleAdminCommentDelete)

	// User management
	adminGroup.Get("/users", controllers.HandleAdminUsers)
	adminGroup.Post("/users/promote/:id", controllers.HandleAdminUserPromote)
	adminGroup.Post("/users/demote/:id", controllers.HandleAdminUserDemote)
	adminGroup.Post("/users/delete/:id", controllers.HandleAdminUserDelete)
}
