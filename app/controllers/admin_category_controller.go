package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkpress/inkpress/internal/pkg/usercontext"
)

// HandleAdminCategories renders the paginated category management list.
func HandleAdminCategories(c *fiber.Ctx) error {
	categories, err := svc.Taxonomy.ListCategories(pageQuery(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load categories")
	}

	return render(c, "admin/categories", fiber.Map{
		"Title":      "Manage Categories",
		"Categories": categories,
	})
}

// HandleAdminCategoryCreate renders the category creation form.
func HandleAdminCategoryCreate(c *fiber.Ctx) error {
	return render(c, "admin/category_form", fiber.Map{
		"Title":  "Create Category",
		"Action": "/admin/categories/store",
	})
}

// HandleAdminCategoryStore creates a category.
func HandleAdminCategoryStore(c *fiber.Ctx) error {
	actor := usercontext.Actor(c)

	_, err := svc.Taxonomy.CreateCategory(actor, c.FormValue("name"), c.FormValue("description"))
	if err != nil {
		return flashError(c, err, "/admin/categories/create")
	}

	return flashSuccess(c, "Category created successfully!", "/admin/categories")
}

// HandleAdminCategoryEdit renders the edit form for a category.
func HandleAdminCategoryEdit(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	category, err := svc.Taxonomy.GetByID(id)
	if err != nil {
		return fiber.ErrNotFound
	}

	return render(c, "admin/category_form", fiber.Map{
		"Title":    "Edit Category",
		"Action":   "/admin/categories/update/" + c.Params("id"),
		"Category": category,
	})
}

// HandleAdminCategoryUpdate renames a category; the slug is re-derived.
func HandleAdminCategoryUpdate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}
	actor := usercontext.Actor(c)

	_, err = svc.Taxonomy.RenameCategory(actor, id, c.FormValue("name"), c.FormValue("description"))
	if err != nil {
		return flashError(c, err, "/admin/categories/edit/"+c.Params("id"))
	}

	return flashSuccess(c, "Category updated successfully!", "/admin/categories")
}

// HandleAdminCategoryDelete deletes a category; its posts are detached, not
// deleted.
func HandleAdminCategoryDelete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := svc.Taxonomy.DeleteCategory(usercontext.Actor(c), id); err != nil {
		return flashError(c, err, "/admin/categories")
	}

	return flashSuccess(c, "Category deleted successfully!", "/admin/categories")
}
