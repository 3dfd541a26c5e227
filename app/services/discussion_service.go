package services

import (
	"github.com/inkpress/inkpress/app/models"
	"github.com/inkpress/inkpress/app/repository"
	"github.com/inkpress/inkpress/internal/pkg/pagination"
	"github.com/inkpress/inkpress/internal/pkg/policy"
)

// DiscussionService owns comments attached to posts.
type DiscussionService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

// NewDiscussionService creates a new discussion service instance
func NewDiscussionService(repos *repository.Repositories) *DiscussionService {
	return &DiscussionService{comments: repos.Comment, posts: repos.Post}
}

// AddComment attaches a comment by the actor to a published post. The target
// must exist and be published; any authenticated user may comment.
func (s *DiscussionService) AddComment(actor policy.Actor, postSlug, content string) (*models.Comment, error) {
	if err := policy.Decide(actor, policy.ActionCreateComment); err != nil {
		return nil, err
	}

	post, err := s.posts.GetPublishedBySlug(postSlug)
	if err != nil {
		return nil, notFoundOr(err)
	}

	comment := &models.Comment{
		Content: content,
		UserID:  actor.UserID,
		PostID:  post.ID,
	}
	if err := comment.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. Admin-only moderation; comments have no
// edit operation.
func (s *DiscussionService) DeleteComment(actor policy.Actor, commentID uint) error {
	if err := policy.Decide(actor, policy.ActionDeleteComment); err != nil {
		return err
	}

	if err := s.comments.Delete(commentID); err != nil {
		return notFoundOr(err)
	}
	return nil
}

// ListForPost returns a page of a post's comments, newest first.
func (s *DiscussionService) ListForPost(postID uint, page int) (pagination.Page[models.Comment], error) {
	size := pagination.CommentPageSize

	total, err := s.comments.CountByPost(postID)
	if err != nil {
		return pagination.Page[models.Comment]{}, err
	}

	comments, err := s.comments.GetByPost(postID, pagination.Offset(page, size), size)
	if err != nil {
		return pagination.Page[models.Comment]{}, err
	}

	return pagination.New(comments, page, size, total), nil
}

// ListAll returns a page of all comments, newest first, for moderation.
func (s *DiscussionService) ListAll(page int) (pagination.Page[models.Comment], error) {
	size := pagination.CommentPageSize

	total, err := s.comments.Count()
	if err != nil {
		return pagination.Page[models.Comment]{}, err
	}

	comments, err := s.comments.GetAll(pagination.Offset(page, size), size)
	if err != nil {
		return pagination.Page[models.Comment]{}, err
	}

	return pagination.New(comments, page, size, total), nil
}

// RecentComments returns the most recently created comments.
func (s *DiscussionService) RecentComments(limit int) ([]models.Comment, error) {
	return s.comments.Recent(limit)
}

// CountComments returns the total number of comments.
func (s *DiscussionService) CountComments() (int64, error) {
	return s.comments.Count()
}
