package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;type:varchar(100)" json:"name" validate:"required,min=2,max=100"`
	Slug        string    `gorm:"uniqueIndex;type:varchar(100)" json:"slug" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Posts []Post `gorm:"many2many:post_categories;" json:"posts,omitempty"`
}

func (c *Category) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
