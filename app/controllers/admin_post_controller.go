package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkpress/inkpress/internal/pkg/usercontext"
)

// HandleAdminPosts renders the paginated post management list, drafts
// included.
func HandleAdminPosts(c *fiber.Ctx) error {
	posts, err := svc.Content.ListAll(pageQuery(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load posts")
	}

	return render(c, "admin/posts", fiber.Map{
		"Title": "Manage Posts",
		"Posts": posts,
	})
}

// HandleAdminPostCreate renders the post creation form.
func HandleAdminPostCreate(c *fiber.Ctx) error {
	categories, err := svc.Taxonomy.AllCategories()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load categories")
	}

	return render(c, "admin/post_form", fiber.Map{
		"Title":      "Create Post",
		"Action":     "/admin/posts/store",
		"Categories": categories,
		"Selected":   map[uint]bool{},
	})
}

// HandleAdminPostStore creates a post authored by the acting admin.
func HandleAdminPostStore(c *fiber.Ctx) error {
	actor := usercontext.Actor(c)

	_, err := svc.Content.CreatePost(actor, c.FormValue("title"), c.FormValue("content"), formCategoryIDs(c))
	if err != nil {
		return flashError(c, err, "/admin/posts/create")
	}

	return flashSuccess(c, "Post created successfully!", "/admin/posts")
}

// HandleAdminPostEdit renders the edit form for a post.
func HandleAdminPostEdit(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	post, err := svc.Content.GetByID(id)
	if err != nil {
		return fiber.ErrNotFound
	}

	categories, err := svc.Taxonomy.AllCategories()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load categories")
	}

	selected := make(map[uint]bool, len(post.Categories))
	for _, cat := range post.Categories {
		selected[cat.ID] = true
	}

	return render(c, "admin/post_form", fiber.Map{
		"Title":      "Edit Post",
		"Action":     "/admin/posts/update/" + c.Params("id"),
		"Post":       post,
		"Categories": categories,
		"Selected":   selected,
	})
}

// HandleAdminPostUpdate applies an edit; the category set is fully replaced.
func HandleAdminPostUpdate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}
	actor := usercontext.Actor(c)
	published := c.FormValue("published") != ""

	_, err = svc.Content.EditPost(actor, id, c.FormValue("title"), c.FormValue("content"), published, formCategoryIDs(c))
	if err != nil {
		return flashError(c, err, "/admin/posts/edit/"+c.Params("id"))
	}

	return flashSuccess(c, "Post updated successfully!", "/admin/posts")
}

// HandleAdminPostDelete deletes a post and cascades to its comments.
func HandleAdminPostDelete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := svc.Content.DeletePost(usercontext.Actor(c), id); err != nil {
		return flashError(c, err, "/admin/posts")
	}

	return flashSuccess(c, "Post deleted successfully!", "/admin/posts")
}
