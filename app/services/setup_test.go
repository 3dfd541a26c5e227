package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkpress/inkpress/app/models"
	"github.com/inkpress/inkpress/app/repository"
	"github.com/inkpress/inkpress/internal/pkg/database"
	"github.com/inkpress/inkpress/internal/pkg/policy"
)

// newTestServices opens a per-test in-memory database, migrates the schema
// and wires the full service stack over it.
func newTestServices(t *testing.T) (*Services, *repository.Repositories) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repos := repository.NewRepositories(db)
	return NewServices(repos), repos
}

// seedAdmin registers a user, flips it to the admin role and returns the
// matching actor.
func seedAdmin(t *testing.T, svc *Services, repos *repository.Repositories) policy.Actor {
	t.Helper()

	user, err := svc.Identity.Register("root", "root@example.com", "rootsecret")
	require.NoError(t, err)

	user.Role = models.ROLE_ADMIN
	require.NoError(t, repos.User.Update(user))

	return policy.ForUser(user.ID, true)
}

// seedUser registers a regular user and returns it with the matching actor.
func seedUser(t *testing.T, svc *Services, username string) (*models.User, policy.Actor) {
	t.Helper()

	user, err := svc.Identity.Register(username, username+"@example.com", "password1")
	require.NoError(t, err)

	return user, policy.ForUser(user.ID, false)
}
