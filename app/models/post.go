package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(200)" json:"title" validate:"required,min=5,max=200"`
	Slug      string    `gorm:"uniqueIndex;type:varchar(200)" json:"slug" validate:"required"`
	Content   string    `gorm:"type:text" json:"content" validate:"required,min=10"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Published bool      `gorm:"default:true;index" json:"published"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Categories []Category `gorm:"many2many:post_categories;" json:"categories,omitempty"`
	Comments   []Comment  `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (p *Post) Validate() error {
	v := validator.New()

	return v.Struct(p)
}
