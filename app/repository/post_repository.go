package repository

import (
	"github.com/inkpress/inkpress/app/models"
	"gorm.io/gorm"
)

// postRepository implements the PostRepository interface
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository instance
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post together with its category associations
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post by its ID regardless of publication state
func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").Preload("Categories").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPublishedBySlug retrieves a published post by its slug. Unpublished
// posts are invisible here, including via direct link.
func (r *postRepository) GetPublishedBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").Preload("Categories").
		Where("slug = ? AND published = ?", slug, true).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPublished retrieves published posts with pagination, newest first
func (r *postRepository) GetPublished(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").Preload("Categories").Where("published = ?", true).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// CountPublished returns the number of published posts
func (r *postRepository) CountPublished() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("published = ?", true).Count(&count).Error
	return count, err
}

// GetPublishedByCategory retrieves published posts in a category, newest first
func (r *postRepository) GetPublishedByCategory(categoryID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").Preload("Categories").
		Joins("JOIN post_categories ON post_categories.post_id = posts.id").
		Where("post_categories.category_id = ? AND posts.published = ?", categoryID, true).
		Order("posts.created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// CountPublishedByCategory returns the number of published posts in a category
func (r *postRepository) CountPublishedByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).
		Joins("JOIN post_categories ON post_categories.post_id = posts.id").
		Where("post_categories.category_id = ? AND posts.published = ?", categoryID, true).
		Count(&count).Error
	return count, err
}

// GetAll retrieves all posts with pagination, newest first
func (r *postRepository) GetAll(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").Preload("Categories").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// Count returns the total number of posts
func (r *postRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

// Recent retrieves the most recently created posts
func (r *postRepository) Recent(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// Update saves the post and fully replaces its category association set in one
// transaction. An empty category slice clears all associations.
func (r *postRepository) Update(post *models.Post, categories []models.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Save(post).Error; err != nil {
			return err
		}
		return tx.Model(post).Association("Categories").Replace(categories)
	})
}

// DeleteCascade removes a post, its comments and its category association
// rows. Categories themselves are kept.
func (r *postRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_categories WHERE post_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// SlugExists checks if a slug already exists
func (r *postRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *postRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}
