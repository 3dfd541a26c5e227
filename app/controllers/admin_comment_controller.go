package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkpress/inkpress/internal/pkg/usercontext"
)

// HandleAdminComments renders the paginated comment moderation list.
func HandleAdminComments(c *fiber.Ctx) error {
	comments, err := svc.Discussion.ListAll(pageQuery(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load comments")
	}

	return render(c, "admin/comments", fiber.Map{
		"Title":    "Manage Comments",
		"Comments": comments,
	})
}

// HandleAdminCommentDelete removes a comment.
func HandleAdminCommentDelete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := svc.Discussion.DeleteComment(usercontext.Actor(c), id); err != nil {
		return flashError(c, err, "/admin/comments")
	}

	return flashSuccess(c, "Comment deleted successfully!", "/admin/comments")
}
