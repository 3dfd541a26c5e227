package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/inkpress/inkpress/internal/pkg/usercontext"
)

// HandleAdminUsers renders the paginated user management list.
func HandleAdminUsers(c *fiber.Ctx) error {
	users, err := svc.Identity.ListUsers(pageQuery(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load users")
	}

	return render(c, "admin/users", fiber.Map{
		"Title": "Manage Users",
		"Users": users,
	})
}

// HandleAdminUserPromote grants a user the admin role.
func HandleAdminUserPromote(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := svc.Identity.Promote(usercontext.Actor(c), id); err != nil {
		return flashError(c, err, "/admin/users")
	}

	return flashSuccess(c, "User promoted to admin", "/admin/users")
}

// HandleAdminUserDemote revokes a user's admin role.
func HandleAdminUserDemote(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := svc.Identity.Demote(usercontext.Actor(c), id); err != nil {
		return flashError(c, err, "/admin/users")
	}

	return flashSuccess(c, "Admin role revoked", "/admin/users")
}

// HandleAdminUserDelete removes a user and everything the user authored.
func HandleAdminUserDelete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	actor := usercontext.Actor(c)
	if id == actor.UserID {
		fm := fiber.Map{"type": "danger", "message": "You cannot delete your own account"}
		return flash.WithError(c, fm).Redirect("/admin/users")
	}

	if err := svc.Identity.DeleteUser(actor, id); err != nil {
		return flashError(c, err, "/admin/users")
	}

	return flashSuccess(c, "User deleted successfully!", "/admin/users")
}
