package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkpress/inkpress/internal/pkg/usercontext"
)

// HandleHome renders the published post listing, newest first.
func HandleHome(c *fiber.Ctx) error {
	posts, err := svc.Content.ListPublished(pageQuery(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load posts")
	}

	return render(c, "index", fiber.Map{
		"Title": "Home",
		"Posts": posts,
	})
}

// HandlePostShow renders a single published post with its paginated comments.
// Unpublished posts 404 here, including via direct link.
func HandlePostShow(c *fiber.Ctx) error {
	post, err := svc.Content.GetBySlug(c.Params("slug"))
	if err != nil {
		return fiber.ErrNotFound
	}

	comments, err := svc.Discussion.ListForPost(post.ID, pageQuery(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load comments")
	}

	return render(c, "post", fiber.Map{
		"Title":    post.Title,
		"Post":     post,
		"Comments": comments,
	})
}

// HandleCommentCreate attaches a comment by the logged-in user to a post.
func HandleCommentCreate(c *fiber.Ctx) error {
	postSlug := c.Params("slug")
	actor := usercontext.Actor(c)

	if _, err := svc.Discussion.AddComment(actor, postSlug, c.FormValue("content")); err != nil {
		return flashError(c, err, "/post/"+postSlug)
	}

	return flashSuccess(c, "Comment posted successfully!", "/post/"+postSlug)
}

// HandleCategoryShow renders the published posts of one category.
func HandleCategoryShow(c *fiber.Ctx) error {
	category, posts, err := svc.Taxonomy.ListPosts(c.Params("slug"), pageQuery(c))
	if err != nil {
		return fiber.ErrNotFound
	}

	return render(c, "category", fiber.Map{
		"Title":    category.Name,
		"Category": category,
		"Posts":    posts,
	})
}

// HandleCategoryIndex renders all categories.
func HandleCategoryIndex(c *fiber.Ctx) error {
	categories, err := svc.Taxonomy.ListCategories(pageQuery(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load categories")
	}

	return render(c, "categories", fiber.Map{
		"Title":      "Categories",
		"Categories": categories,
	})
}
