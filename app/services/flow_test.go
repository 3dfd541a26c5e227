package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/inkpress/internal/pkg/policy"
)

// TestReaderToCommenterFlow walks the whole visitor journey: browse, register,
// log in, comment, and bounce off the admin-only surfaces.
func TestReaderToCommenterFlow(t *testing.T) {
	svc, repos := newTestServices(t)
	admin := seedAdmin(t, svc, repos)

	tech, err := svc.Taxonomy.CreateCategory(admin, "Tech News", "")
	require.NoError(t, err)
	post, err := svc.Content.CreatePost(admin, "Welcome Aboard", "An introduction to the site.", []uint{tech.ID})
	require.NoError(t, err)

	// Anonymous browsing works.
	home, err := svc.Content.ListPublished(1)
	require.NoError(t, err)
	require.Len(t, home.Items, 1)

	found, err := svc.Content.GetBySlug("welcome-aboard")
	require.NoError(t, err)
	assert.Equal(t, post.ID, found.ID)

	category, inCategory, err := svc.Taxonomy.ListPosts("tech-news", 1)
	require.NoError(t, err)
	assert.Equal(t, tech.ID, category.ID)
	assert.Len(t, inCategory.Items, 1)

	// Anonymous commenting does not.
	_, err = svc.Discussion.AddComment(policy.Anonymous(), post.Slug, "Drive-by comment.")
	assert.ErrorIs(t, err, policy.ErrNotAuthenticated)

	// Alice signs up and logs in.
	alice, err := svc.Identity.Register("alice", "alice@example.com", "wonderland")
	require.NoError(t, err)
	verified, err := svc.Identity.VerifyCredentials("alice", "wonderland")
	require.NoError(t, err)
	actor := policy.ForUser(verified.ID, verified.IsAdmin())

	comment, err := svc.Discussion.AddComment(actor, post.Slug, "Great first post!")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, comment.UserID)

	thread, err := svc.Discussion.ListForPost(post.ID, 1)
	require.NoError(t, err)
	require.Len(t, thread.Items, 1)
	assert.Equal(t, "Great first post!", thread.Items[0].Content)

	// The authoring surfaces stay closed to her.
	_, err = svc.Content.CreatePost(actor, "Alice Writes", "She is not allowed to publish.", nil)
	assert.ErrorIs(t, err, policy.ErrInsufficientRole)
	_, err = svc.Taxonomy.CreateCategory(actor, "Alice Corner", "")
	assert.ErrorIs(t, err, policy.ErrInsufficientRole)
	assert.ErrorIs(t, svc.Content.DeletePost(actor, post.ID), policy.ErrInsufficientRole)
}
