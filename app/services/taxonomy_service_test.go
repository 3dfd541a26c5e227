package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/inkpress/internal/pkg/policy"
)

func TestCreateCategory(t *testing.T) {
	svc, repos := newTestServices(t)
	admin := seedAdmin(t, svc, repos)

	category, err := svc.Taxonomy.CreateCategory(admin, "Tech News", "All things technical")
	require.NoError(t, err)

	assert.NotZero(t, category.ID)
	assert.Equal(t, "tech-news", category.Slug)

	found, err := svc.Taxonomy.GetBySlug("tech-news")
	require.NoError(t, err)
	assert.Equal(t, "Tech News", found.Name)
}

func TestCreateCategoryDuplicates(t *testing.T) {
	svc, repos := newTestServices(t)
	admin := seedAdmin(t, svc, repos)

	_, err := svc.Taxonomy.CreateCategory(admin, "Tech News", "")
	require.NoError(t, err)

	_, err = svc.Taxonomy.CreateCategory(admin, "Tech News", "")
	assert.ErrorIs(t, err, ErrDuplicateCategoryName)

	// A different name that collapses to the same slug.
	_, err = svc.Taxonomy.CreateCategory(admin, "Tech  News", "")
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestCreateCategoryDenied(t *testing.T) {
	svc, _ := newTestServices(t)
	_, userActor := seedUser(t, svc, "alice")

	_, err := svc.Taxonomy.CreateCategory(policy.Anonymous(), "Tech", "")
	assert.ErrorIs(t, err, policy.ErrNotAuthenticated)

	_, err = svc.Taxonomy.CreateCategory(userActor, "Tech", "")
	assert.ErrorIs(t, err, policy.ErrInsufficientRole)
}

func TestRenameCategory(t *testing.T) {
	svc, repos := newTestServices(t)
	admin := seedAdmin(t, svc, repos)

	category, err := svc.Taxonomy.CreateCategory(admin, "Tech News", "")
	require.NoError(t, err)

	renamed, err := svc.Taxonomy.RenameCategory(admin, category.ID, "Science Corner", "Peer reviewed")
	require.NoError(t, err)
	assert.Equal(t, "science-corner", renamed.Slug)
	assert.Equal(t, "Peer reviewed", renamed.Description)

	// The old slug no longer resolves.
	_, err = svc.Taxonomy.GetBySlug("tech-news")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRenameCategoryConflicts(t *testing.T) {
	svc, repos := newTestServices(t)
	admin := seedAdmin(t, svc, repos)

	first, err := svc.Taxonomy.CreateCategory(admin, "Tech News", "")
	require.NoError(t, err)
	_, err = svc.Taxonomy.CreateCategory(admin, "Science", "")
	require.NoError(t, err)

	_, err = svc.Taxonomy.RenameCategory(admin, first.ID, "Science", "")
	assert.ErrorIs(t, err, ErrDuplicateCategoryName)

	// Renaming to its own current name is not a conflict.
	_, err = svc.Taxonomy.RenameCategory(admin, first.ID, "Tech News", "updated")
	assert.NoError(t, err)
}

func TestDeleteCategoryDetachesPosts(t *testing.T) {
	svc, repos := newTestServices(t)
	admin := seedAdmin(t, svc, repos)

	category, err := svc.Taxonomy.CreateCategory(admin, "Tech", "")
	require.NoError(t, err)

	post, err := svc.Content.CreatePost(admin, "Still Standing", "The post outlives its category.", []uint{category.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Taxonomy.DeleteCategory(admin, category.ID))

	_, err = svc.Taxonomy.GetBySlug("tech")
	assert.ErrorIs(t, err, ErrNotFound)

	survivor, err := svc.Content.GetBySlug(post.Slug)
	require.NoError(t, err)
	assert.Empty(t, survivor.Categories)
}

func TestListPostsByCategory(t *testing.T) {
	svc, repos := newTestServices(t)
	admin := seedAdmin(t, svc, repos)

	tech, err := svc.Taxonomy.CreateCategory(admin, "Tech", "")
	require.NoError(t, err)
	other, err := svc.Taxonomy.CreateCategory(admin, "Other", "")
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		_, err := svc.Content.CreatePost(admin, fmt.Sprintf("Tech Post %02d", i), "Categorized content body.", []uint{tech.ID})
		require.NoError(t, err)
	}
	_, err = svc.Content.CreatePost(admin, "Unrelated Post", "Lives in the other category.", []uint{other.ID})
	require.NoError(t, err)

	category, page, err := svc.Taxonomy.ListPosts("tech", 1)
	require.NoError(t, err)
	assert.Equal(t, tech.ID, category.ID)
	assert.EqualValues(t, 12, page.TotalCount)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 2, page.TotalPages)

	_, second, err := svc.Taxonomy.ListPosts("tech", 2)
	require.NoError(t, err)
	assert.Len(t, second.Items, 2)

	_, _, err = svc.Taxonomy.ListPosts("missing", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCategoriesOrderedByName(t *testing.T) {
	svc, repos := newTestServices(t)
	admin := seedAdmin(t, svc, repos)

	for _, name := range []string{"Zoology", "Art", "Music"} {
		_, err := svc.Taxonomy.CreateCategory(admin, name, "")
		require.NoError(t, err)
	}

	page, err := svc.Taxonomy.ListCategories(1)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Art", page.Items[0].Name)
	assert.Equal(t, "Music", page.Items[1].Name)
	assert.Equal(t, "Zoology", page.Items[2].Name)
}
