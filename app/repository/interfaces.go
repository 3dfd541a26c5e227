package repository

import (
	"github.com/inkpress/inkpress/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
	DeleteCascade(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
}

// CategoryRepository defines the interface for category-related database operations
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	GetByIDs(ids []uint) ([]models.Category, error)
	GetAll() ([]models.Category, error)
	List(offset, limit int) ([]models.Category, error)
	Update(category *models.Category) error
	DeleteCascade(id uint) error
	Count() (int64, error)
	NameExists(name string) (bool, error)
	NameExistsExceptID(name string, id uint) (bool, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// PostRepository defines the interface for post-related database operations
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetPublishedBySlug(slug string) (*models.Post, error)
	GetPublished(offset, limit int) ([]models.Post, error)
	CountPublished() (int64, error)
	GetPublishedByCategory(categoryID uint, offset, limit int) ([]models.Post, error)
	CountPublishedByCategory(categoryID uint) (int64, error)
	GetAll(offset, limit int) ([]models.Post, error)
	Count() (int64, error)
	Recent(limit int) ([]models.Post, error)
	Update(post *models.Post, categories []models.Category) error
	DeleteCascade(id uint) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// CommentRepository defines the interface for comment-related database operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	GetByPost(postID uint, offset, limit int) ([]models.Comment, error)
	CountByPost(postID uint) (int64, error)
	GetAll(offset, limit int) ([]models.Comment, error)
	Count() (int64, error)
	Recent(limit int) ([]models.Comment, error)
	Delete(id uint) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	User     UserRepository
	Category CategoryRepository
	Post     PostRepository
	Comment  CommentRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Category: NewCategoryRepository(db),
		Post:     NewPostRepository(db),
		Comment:  NewCommentRepository(db),
	}
}
