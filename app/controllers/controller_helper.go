package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/inkpress/inkpress/app/repository"
	"github.com/inkpress/inkpress/app/services"
	"github.com/inkpress/inkpress/internal/pkg/policy"
	"github.com/inkpress/inkpress/internal/pkg/usercontext"
)

var svc *services.Services

// InitializeControllers wires the controllers to the stores. Must run after
// the repository factory is initialized.
func InitializeControllers() {
	svc = services.NewServices(repository.GetGlobalRepositories())
}

// SetServices swaps the store bundle; used by tests.
func SetServices(s *services.Services) {
	svc = s
}

// render merges the request's user context and flash message into the bind
// map and renders the view inside the main layout.
func render(c *fiber.Ctx, view string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	ctx := usercontext.GetUserContext(c)
	bind["UserContext"] = ctx
	bind["IsLoggedIn"] = ctx.IsLoggedIn
	bind["IsAdmin"] = ctx.IsAdmin
	bind["Flash"] = flash.Get(c)
	if token, ok := c.Locals("csrf").(string); ok {
		bind["CSRFToken"] = token
	}

	return c.Render(view, bind, "layouts/main")
}

// paramUint parses a numeric route parameter.
func paramUint(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// pageQuery returns the 1-based page number from the query string.
func pageQuery(c *fiber.Ctx) int {
	return c.QueryInt("page", 1)
}

// formCategoryIDs parses the multi-select category id list.
func formCategoryIDs(c *fiber.Ctx) []uint {
	var ids []uint
	args := c.Context().PostArgs().PeekMulti("categories")
	for _, raw := range args {
		v := strings.TrimSpace(string(raw))
		if v == "" {
			continue
		}
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			ids = append(ids, uint(id))
		}
	}
	return ids
}

// flashError redirects with a danger flash describing the store failure.
func flashError(c *fiber.Ctx, err error, target string) error {
	fm := fiber.Map{
		"type":    "danger",
		"message": errorMessage(err),
	}
	return flash.WithError(c, fm).Redirect(target)
}

// flashSuccess redirects with a success flash.
func flashSuccess(c *fiber.Ctx, message, target string) error {
	fm := fiber.Map{
		"type":    "success",
		"message": message,
	}
	return flash.WithSuccess(c, fm).Redirect(target)
}

// errorMessage maps store failures onto the human-readable status messages the
// templates display.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return "Not found"
	case errors.Is(err, services.ErrDuplicateUsername):
		return "Username already exists"
	case errors.Is(err, services.ErrDuplicateEmail):
		return "Email already registered"
	case errors.Is(err, services.ErrDuplicateCategoryName):
		return "A category with this name already exists"
	case errors.Is(err, services.ErrDuplicateSlug):
		return "A post or category with this title already exists"
	case errors.Is(err, services.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, services.ErrValidationFailed):
		return "Please check your input and try again"
	case errors.Is(err, policy.ErrNotAuthenticated):
		return "Please log in to do that"
	case errors.Is(err, policy.ErrInsufficientRole):
		return "You do not have permission to do that"
	default:
		return "Something went wrong"
	}
}
