package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/inkpress/app/models"
	"github.com/inkpress/inkpress/internal/pkg/policy"
)

func TestRegister(t *testing.T) {
	svc, _ := newTestServices(t)

	user, err := svc.Identity.Register("alice", "alice@example.com", "wonderland")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, models.ROLE_USER, user.Role)
	assert.NotEqual(t, "wonderland", user.Password)
	assert.True(t, user.CheckPassword("wonderland"))
	assert.False(t, user.IsAdmin())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Identity.Register("alice", "alice@example.com", "wonderland")
	require.NoError(t, err)

	_, err = svc.Identity.Register("alice", "other@example.com", "different")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Identity.Register("alice", "alice@example.com", "wonderland")
	require.NoError(t, err)

	_, err = svc.Identity.Register("bob", "alice@example.com", "different")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestServices(t)

	// Username below the 3-character minimum.
	_, err := svc.Identity.Register("ab", "ab@example.com", "password1")
	assert.ErrorIs(t, err, ErrValidationFailed)

	// Not an email address.
	_, err = svc.Identity.Register("charlie", "not-an-email", "password1")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestVerifyCredentials(t *testing.T) {
	svc, _ := newTestServices(t)

	registered, err := svc.Identity.Register("alice", "alice@example.com", "wonderland")
	require.NoError(t, err)

	user, err := svc.Identity.VerifyCredentials("alice", "wonderland")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.Identity.VerifyCredentials("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown usernames fail the same way as wrong passwords.
	_, err = svc.Identity.VerifyCredentials("nobody", "wonderland")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSeedDefaultAdmin(t *testing.T) {
	svc, _ := newTestServices(t)

	require.NoError(t, svc.Identity.SeedDefaultAdmin())

	admin, err := svc.Identity.VerifyCredentials("admin", "admin123")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	// Seeding again is a no-op.
	require.NoError(t, svc.Identity.SeedDefaultAdmin())

	total, err := svc.Identity.CountUsers()
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestPromoteAndDemote(t *testing.T) {
	svc, repos := newTestServices(t)
	admin := seedAdmin(t, svc, repos)
	user, userActor := seedUser(t, svc, "alice")

	require.NoError(t, svc.Identity.Promote(admin, user.ID))
	promoted, err := svc.Identity.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ROLE_ADMIN, promoted.Role)

	require.NoError(t, svc.Identity.Demote(admin, user.ID))
	demoted, err := svc.Identity.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ROLE_USER, demoted.Role)

	// Regular users cannot manage roles.
	assert.ErrorIs(t, svc.Identity.Promote(userActor, user.ID), policy.ErrInsufficientRole)
	assert.ErrorIs(t, svc.Identity.Promote(policy.Anonymous(), user.ID), policy.ErrNotAuthenticated)
}

func TestChangePassword(t *testing.T) {
	svc, repos := newTestServices(t)
	admin := seedAdmin(t, svc, repos)
	user, _ := seedUser(t, svc, "alice")

	require.NoError(t, svc.Identity.ChangePassword(admin, user.ID, "newsecret"))

	_, err := svc.Identity.VerifyCredentials("alice", "password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Identity.VerifyCredentials("alice", "newsecret")
	assert.NoError(t, err)
}

func TestDeleteUserCascades(t *testing.T) {
	svc, repos := newTestServices(t)
	admin := seedAdmin(t, svc, repos)
	alice, aliceActor := seedUser(t, svc, "alice")

	category, err := svc.Taxonomy.CreateCategory(admin, "Tech", "")
	require.NoError(t, err)

	// Alice authors a post via a temporary admin grant, plus a comment on the
	// admin's own post.
	require.NoError(t, svc.Identity.Promote(admin, alice.ID))
	alicePost, err := svc.Content.CreatePost(policy.ForUser(alice.ID, true), "Alice Writes", "Authored by alice before removal.", []uint{category.ID})
	require.NoError(t, err)
	require.NoError(t, svc.Identity.Demote(admin, alice.ID))

	adminPost, err := svc.Content.CreatePost(admin, "Admin Writes", "This post stays behind.", nil)
	require.NoError(t, err)

	_, err = svc.Discussion.AddComment(aliceActor, adminPost.Slug, "A comment from alice.")
	require.NoError(t, err)
	_, err = svc.Discussion.AddComment(admin, alicePost.Slug, "A comment on the doomed post.")
	require.NoError(t, err)

	require.NoError(t, svc.Identity.DeleteUser(admin, alice.ID))

	_, err = svc.Identity.GetByID(alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Alice's post is gone along with every comment on it.
	_, err = svc.Content.GetBySlug(alicePost.Slug)
	assert.ErrorIs(t, err, ErrNotFound)

	comments, err := svc.Discussion.CountComments()
	require.NoError(t, err)
	assert.EqualValues(t, 0, comments)

	// The admin's post and the category survive.
	_, err = svc.Content.GetBySlug(adminPost.Slug)
	assert.NoError(t, err)
	_, err = svc.Taxonomy.GetBySlug(category.Slug)
	assert.NoError(t, err)
}

func TestDeleteUserNotFound(t *testing.T) {
	svc, repos := newTestServices(t)
	admin := seedAdmin(t, svc, repos)

	assert.ErrorIs(t, svc.Identity.DeleteUser(admin, 9999), ErrNotFound)
}

func TestListUsers(t *testing.T) {
	svc, repos := newTestServices(t)
	seedAdmin(t, svc, repos)
	seedUser(t, svc, "alice")
	seedUser(t, svc, "bob")

	page, err := svc.Identity.ListUsers(1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalCount)
	assert.Len(t, page.Items, 3)
	assert.False(t, page.HasNext())
}
