package services

import (
	"github.com/inkpress/inkpress/app/models"
	"github.com/inkpress/inkpress/app/repository"
	"github.com/inkpress/inkpress/internal/pkg/pagination"
	"github.com/inkpress/inkpress/internal/pkg/policy"
	"github.com/inkpress/inkpress/internal/pkg/slug"
)

// ContentService owns post records, their authorship link, publication state
// and category associations.
type ContentService struct {
	posts      repository.PostRepository
	categories repository.CategoryRepository
}

// NewContentService creates a new content service instance
func NewContentService(repos *repository.Repositories) *ContentService {
	return &ContentService{posts: repos.Post, categories: repos.Category}
}

// CreatePost derives the slug from the title and inserts a published post
// authored by the actor. Unknown category ids are silently filtered.
// Admin-only.
func (s *ContentService) CreatePost(actor policy.Actor, title, content string, categoryIDs []uint) (*models.Post, error) {
	if err := policy.Decide(actor, policy.ActionCreatePost); err != nil {
		return nil, err
	}

	categories, err := s.categories.GetByIDs(categoryIDs)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:      title,
		Slug:       slug.Make(title),
		Content:    content,
		UserID:     actor.UserID,
		Published:  true,
		Categories: categories,
	}
	if err := post.Validate(); err != nil {
		return nil, invalid(err)
	}

	if taken, err := s.posts.SlugExists(post.Slug); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateSlug
	}

	if err := s.posts.Create(post); err != nil {
		return nil, duplicateOr(err, ErrDuplicateSlug)
	}
	return post, nil
}

// EditPost updates title, content and publication state, and fully replaces
// the category association set; an empty id list clears all associations. The
// slug is re-derived only when the title changed, and re-checked excluding the
// post itself. The author never changes. Admin-only.
func (s *ContentService) EditPost(actor policy.Actor, postID uint, title, content string, published bool, categoryIDs []uint) (*models.Post, error) {
	if err := policy.Decide(actor, policy.ActionEditPost); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if title != post.Title {
		newSlug := slug.Make(title)
		if taken, err := s.posts.SlugExistsExceptID(newSlug, postID); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrDuplicateSlug
		}
		post.Slug = newSlug
	}

	post.Title = title
	post.Content = content
	post.Published = published
	if err := post.Validate(); err != nil {
		return nil, invalid(err)
	}

	categories, err := s.categories.GetByIDs(categoryIDs)
	if err != nil {
		return nil, err
	}

	if err := s.posts.Update(post, categories); err != nil {
		return nil, duplicateOr(err, ErrDuplicateSlug)
	}
	post.Categories = categories
	return post, nil
}

// DeletePost removes a post, cascading to its comments and its category
// association rows. Admin-only.
func (s *ContentService) DeletePost(actor policy.Actor, postID uint) error {
	if err := policy.Decide(actor, policy.ActionDeletePost); err != nil {
		return err
	}

	if err := s.posts.DeleteCascade(postID); err != nil {
		return notFoundOr(err)
	}
	return nil
}

// ListPublished returns a page of published posts, newest first.
func (s *ContentService) ListPublished(page int) (pagination.Page[models.Post], error) {
	size := pagination.PostPageSize

	total, err := s.posts.CountPublished()
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}

	posts, err := s.posts.GetPublished(pagination.Offset(page, size), size)
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}

	return pagination.New(posts, page, size, total), nil
}

// ListAll returns a page of all posts regardless of publication state, for
// the moderation panel.
func (s *ContentService) ListAll(page int) (pagination.Page[models.Post], error) {
	size := pagination.PostPageSize

	total, err := s.posts.Count()
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}

	posts, err := s.posts.GetAll(pagination.Offset(page, size), size)
	if err != nil {
		return pagination.Page[models.Post]{}, err
	}

	return pagination.New(posts, page, size, total), nil
}

// GetBySlug retrieves a published post by its slug. Unpublished posts are
// invisible to this read path, whoever asks.
func (s *ContentService) GetBySlug(postSlug string) (*models.Post, error) {
	post, err := s.posts.GetPublishedBySlug(postSlug)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return post, nil
}

// GetByID retrieves a post by id regardless of state, for the edit form.
func (s *ContentService) GetByID(id uint) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return post, nil
}

// RecentPosts returns the most recently created posts.
func (s *ContentService) RecentPosts(limit int) ([]models.Post, error) {
	return s.posts.Recent(limit)
}

// CountPosts returns the total number of posts.
func (s *ContentService) CountPosts() (int64, error) {
	return s.posts.Count()
}
