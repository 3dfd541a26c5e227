package services

import (
	"github.com/inkpress/inkpress/app/models"
	"github.com/inkpress/inkpress/app/repository"
	"github.com/inkpress/inkpress/internal/pkg/pagination"
	"github.com/inkpress/inkpress/internal/pkg/policy"
	"github.com/inkpress/inkpress/internal/pkg/slug"
)

// TaxonomyService owns category records and their slug invariants.
type TaxonomyService struct {
	categories repository.CategoryRepository
	posts      repository.PostRepository
}

// NewTaxonomyService creates a new taxonomy service instance
func NewTaxonomyService(repos *repository.Repositories) *TaxonomyService {
	return &TaxonomyService{categories: repos.Category, posts: repos.Post}
}

// CreateCategory derives the slug from the name and inserts. Admin-only.
func (s *TaxonomyService) CreateCategory(actor policy.Actor, name, description string) (*models.Category, error) {
	if err := policy.Decide(actor, policy.ActionCreateCategory); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        name,
		Slug:        slug.Make(name),
		Description: description,
	}
	if err := category.Validate(); err != nil {
		return nil, invalid(err)
	}

	if taken, err := s.categories.NameExists(name); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateCategoryName
	}
	if taken, err := s.categories.SlugExists(category.Slug); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateSlug
	}

	if err := s.categories.Create(category); err != nil {
		return nil, duplicateOr(err, ErrDuplicateSlug)
	}
	return category, nil
}

// RenameCategory re-derives the slug from the new name and re-checks
// uniqueness excluding the category itself. Admin-only.
func (s *TaxonomyService) RenameCategory(actor policy.Actor, id uint, newName, newDescription string) (*models.Category, error) {
	if err := policy.Decide(actor, policy.ActionEditCategory); err != nil {
		return nil, err
	}

	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	category.Name = newName
	category.Slug = slug.Make(newName)
	category.Description = newDescription
	if err := category.Validate(); err != nil {
		return nil, invalid(err)
	}

	if taken, err := s.categories.NameExistsExceptID(newName, id); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateCategoryName
	}
	if taken, err := s.categories.SlugExistsExceptID(category.Slug, id); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateSlug
	}

	if err := s.categories.Update(category); err != nil {
		return nil, duplicateOr(err, ErrDuplicateSlug)
	}
	return category, nil
}

// DeleteCategory removes a category and detaches it from its posts; the posts
// themselves survive. Admin-only.
func (s *TaxonomyService) DeleteCategory(actor policy.Actor, id uint) error {
	if err := policy.Decide(actor, policy.ActionDeleteCategory); err != nil {
		return err
	}

	if err := s.categories.DeleteCascade(id); err != nil {
		return notFoundOr(err)
	}
	return nil
}

// GetBySlug retrieves a category by its slug.
func (s *TaxonomyService) GetBySlug(categorySlug string) (*models.Category, error) {
	category, err := s.categories.GetBySlug(categorySlug)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return category, nil
}

// GetByID retrieves a category by id.
func (s *TaxonomyService) GetByID(id uint) (*models.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return category, nil
}

// AllCategories returns every category ordered by name, for form choices.
func (s *TaxonomyService) AllCategories() ([]models.Category, error) {
	return s.categories.GetAll()
}

// ListCategories returns a page of categories ordered by name.
func (s *TaxonomyService) ListCategories(page int) (pagination.Page[models.Category], error) {
	size := pagination.CategoryPageSize

	total, err := s.categories.Count()
	if err != nil {
		return pagination.Page[models.Category]{}, err
	}

	categories, err := s.categories.List(pagination.Offset(page, size), size)
	if err != nil {
		return pagination.Page[models.Category]{}, err
	}

	return pagination.New(categories, page, size, total), nil
}

// ListPosts returns a page of published posts in the category, newest first.
func (s *TaxonomyService) ListPosts(categorySlug string, page int) (*models.Category, pagination.Page[models.Post], error) {
	category, err := s.GetBySlug(categorySlug)
	if err != nil {
		return nil, pagination.Page[models.Post]{}, err
	}

	size := pagination.PostPageSize

	total, err := s.posts.CountPublishedByCategory(category.ID)
	if err != nil {
		return nil, pagination.Page[models.Post]{}, err
	}

	posts, err := s.posts.GetPublishedByCategory(category.ID, pagination.Offset(page, size), size)
	if err != nil {
		return nil, pagination.Page[models.Post]{}, err
	}

	return category, pagination.New(posts, page, size, total), nil
}

// CountCategories returns the total number of categories.
func (s *TaxonomyService) CountCategories() (int64, error) {
	return s.categories.Count()
}
