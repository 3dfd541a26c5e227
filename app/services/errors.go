package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Typed failures returned by the stores. The web layer matches on these with
// errors.Is and decides presentation; nothing here is retried.
var (
	ErrNotFound              = errors.New("not found")
	ErrDuplicateUsername     = errors.New("username already taken")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrDuplicateSlug         = errors.New("slug already in use")
	ErrDuplicateCategoryName = errors.New("category name already in use")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrValidationFailed      = errors.New("validation failed")
)

// notFoundOr maps gorm's record-not-found onto the store taxonomy and passes
// every other datastore failure through untouched.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// duplicateOr maps a unique-constraint violation raised by the datastore at
// insert/update time onto the given typed duplicate error, so a lost
// check-then-insert race surfaces the same way as a pre-check hit.
func duplicateOr(err, dup error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return dup
	}
	return err
}

// invalid wraps a validator failure so callers can match ErrValidationFailed.
func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrValidationFailed, err)
}
