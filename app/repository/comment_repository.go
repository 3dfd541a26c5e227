package repository

import (
	"github.com/inkpress/inkpress/app/models"
	"gorm.io/gorm"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment in the database
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("User").Preload("Post").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByPost retrieves a post's comments with pagination, newest first
func (r *commentRepository) GetByPost(postID uint, offset, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").Where("post_id = ?", postID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&comments).Error
	return comments, err
}

// CountByPost returns the number of comments on a post
func (r *commentRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// GetAll retrieves all comments with pagination, newest first
func (r *commentRepository) GetAll(offset, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").Preload("Post").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&comments).Error
	return comments, err
}

// Count returns the total number of comments
func (r *commentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Count(&count).Error
	return count, err
}

// Recent retrieves the most recently created comments
func (r *commentRepository) Recent(limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").Preload("Post").
		Order("created_at DESC").Limit(limit).Find(&comments).Error
	return comments, err
}

// Delete removes a comment by its ID
func (r *commentRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
