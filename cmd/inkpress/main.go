package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/inkpress/inkpress/app/repository"
	"github.com/inkpress/inkpress/app/services"
	"github.com/inkpress/inkpress/internal/pkg/cache"
	"github.com/inkpress/inkpress/internal/pkg/database"
	"github.com/inkpress/inkpress/internal/pkg/env"
	"github.com/inkpress/inkpress/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	repository.InitializeFactory(database.GetDB())

	// Bootstrap: seed the default admin exactly once per startup.
	identity := services.NewIdentityService(repository.GetGlobalRepositories())
	if err := identity.SeedDefaultAdmin(); err != nil {
		log.Fatalf("failed to seed default admin: %v", err)
	}

	engine := html.New("./views", ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(recover.New(), logger.New())
	app.Static("/", "./public/assets")

	// ROUTER
	router.InstallRouter(app)

	return app
}
