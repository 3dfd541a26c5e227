package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/inkpress/inkpress/app/models"
	"github.com/inkpress/inkpress/app/repository"
	"github.com/inkpress/inkpress/internal/pkg/env"
	"github.com/inkpress/inkpress/internal/pkg/pagination"
	"github.com/inkpress/inkpress/internal/pkg/policy"
)

const defaultAdminPassword = "admin123"

// IdentityService owns user records, credential verification and role
// classification.
type IdentityService struct {
	users repository.UserRepository
}

// NewIdentityService creates a new identity service instance
func NewIdentityService(repos *repository.Repositories) *IdentityService {
	return &IdentityService{users: repos.User}
}

// Register creates a new user with the USER role. The raw password is hashed
// before it is stored and never persisted or logged.
func (s *IdentityService) Register(username, email, password string) (*models.User, error) {
	if taken, err := s.users.UsernameExists(username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateUsername
	}
	if taken, err := s.users.EmailExists(email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateEmail
	}

	user, err := models.NewUser(username, email, password)
	if err != nil {
		return nil, invalid(err)
	}

	if err := s.users.Create(user); err != nil {
		// A concurrent registration may win the race between the pre-check
		// and the insert; the unique constraint reports it either way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if taken, checkErr := s.users.UsernameExists(username); checkErr == nil && taken {
				return nil, ErrDuplicateUsername
			}
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

// VerifyCredentials returns the user when username and password match. Unknown
// usernames and wrong passwords are indistinguishable from the outside.
func (s *IdentityService) VerifyCredentials(username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// SeedDefaultAdmin creates the bootstrap admin account if no user with the
// configured admin username exists yet. Idempotent; runs once per startup.
func (s *IdentityService) SeedDefaultAdmin() error {
	username := env.GetEnv("ADMIN_USER", "admin")
	password := env.GetEnv("ADMIN_PASSWORD", defaultAdminPassword)
	email := env.GetEnv("ADMIN_EMAIL", "admin@example.com")

	if exists, err := s.users.UsernameExists(username); err != nil {
		return err
	} else if exists {
		return nil
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     models.ROLE_ADMIN,
	}
	if err := admin.Validate(); err != nil {
		return invalid(err)
	}
	if err := s.users.Create(admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Another instance seeded first.
			return nil
		}
		return err
	}

	if password == defaultAdminPassword {
		log.Printf("WARNING: default admin account %q uses the well-known bootstrap password, set ADMIN_PASSWORD", username)
	} else {
		log.Printf("Default admin account %q created", username)
	}
	return nil
}

// GetByID retrieves a user by id.
func (s *IdentityService) GetByID(id uint) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return user, nil
}

// Promote grants the admin role. Admin-only.
func (s *IdentityService) Promote(actor policy.Actor, userID uint) error {
	return s.setRole(actor, userID, models.ROLE_ADMIN)
}

// Demote revokes the admin role. Admin-only.
func (s *IdentityService) Demote(actor policy.Actor, userID uint) error {
	return s.setRole(actor, userID, models.ROLE_USER)
}

func (s *IdentityService) setRole(actor policy.Actor, userID uint, role string) error {
	if err := policy.Decide(actor, policy.ActionManageUsers); err != nil {
		return err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return notFoundOr(err)
	}

	user.Role = role
	return s.users.Update(user)
}

// ChangePassword replaces a user's credential. Admin-only, as the moderation
// panel is the only caller.
func (s *IdentityService) ChangePassword(actor policy.Actor, userID uint, newPassword string) error {
	if err := policy.Decide(actor, policy.ActionManageUsers); err != nil {
		return err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return notFoundOr(err)
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	return s.users.Update(user)
}

// DeleteUser removes a user and cascades to every post and comment the user
// authored. Admin-only.
func (s *IdentityService) DeleteUser(actor policy.Actor, userID uint) error {
	if err := policy.Decide(actor, policy.ActionManageUsers); err != nil {
		return err
	}

	if err := s.users.DeleteCascade(userID); err != nil {
		return notFoundOr(err)
	}
	return nil
}

// ListUsers returns a page of users, newest first.
func (s *IdentityService) ListUsers(page int) (pagination.Page[models.User], error) {
	size := pagination.UserPageSize

	total, err := s.users.Count()
	if err != nil {
		return pagination.Page[models.User]{}, err
	}

	users, err := s.users.List(pagination.Offset(page, size), size)
	if err != nil {
		return pagination.Page[models.User]{}, err
	}

	return pagination.New(users, page, size, total), nil
}

// CountUsers returns the total number of users.
func (s *IdentityService) CountUsers() (int64, error) {
	return s.users.Count()
}
