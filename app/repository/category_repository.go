package repository

import (
	"github.com/inkpress/inkpress/app/models"
	"gorm.io/gorm"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category in the database
func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// GetByID retrieves a category by its ID
func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetBySlug retrieves a category by its slug
func (r *categoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByIDs retrieves the categories matching the given ids. Unknown ids are
// silently filtered, so the result may be shorter than the input.
func (r *categoryRepository) GetByIDs(ids []uint) ([]models.Category, error) {
	var categories []models.Category
	if len(ids) == 0 {
		return categories, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&categories).Error
	return categories, err
}

// GetAll retrieves all categories ordered by name
func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// List retrieves categories with pagination, ordered by name
func (r *categoryRepository) List(offset, limit int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Offset(offset).Limit(limit).Find(&categories).Error
	return categories, err
}

// Update updates an existing category in the database
func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// DeleteCascade removes a category and its association rows. The posts that
// referenced it stay untouched.
func (r *categoryRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_categories WHERE category_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Count returns the total number of categories
func (r *categoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}

// NameExists checks if a category name already exists
func (r *categoryRepository) NameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// NameExistsExceptID checks if a name exists excluding a specific ID
func (r *categoryRepository) NameExistsExceptID(name string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("name = ? AND id != ?", name, id).Count(&count).Error
	return count > 0, err
}

// SlugExists checks if a slug already exists
func (r *categoryRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *categoryRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}
