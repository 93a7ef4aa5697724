package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/util"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CRUD(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	created, err := e.categories.CreateCategory(ctx, &dto.CategoryFormDTO{Name: "  News "})
	require.NoError(t, err)
	assert.Equal(t, "News", created.Name)
	assert.Zero(t, created.PostsCount)

	// 名称不要求唯一
	_, err = e.categories.CreateCategory(ctx, &dto.CategoryFormDTO{Name: "News"})
	require.NoError(t, err)

	_, err = e.categories.CreateCategory(ctx, &dto.CategoryFormDTO{Name: " "})
	assert.Equal(t, map[string]string{"name": util.KindRequired}, fieldKinds(t, err))
	_, err = e.categories.CreateCategory(ctx, &dto.CategoryFormDTO{Name: strings.Repeat("x", 256)})
	assert.Equal(t, map[string]string{"name": util.KindMaxLength}, fieldKinds(t, err))

	updated, err := e.categories.UpdateCategory(ctx, created.ID, &dto.CategoryFormDTO{Name: "Updates"})
	require.NoError(t, err)
	assert.Equal(t, "Updates", updated.Name)

	_, err = e.categories.UpdateCategory(ctx, 9999, &dto.CategoryFormDTO{Name: "Nope"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	_, err = e.categories.GetCategory(ctx, 9999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryService_DeleteKeepsPosts(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t, "News")
	amy := e.author(t, "Amy")
	post, err := e.posts.CreatePost(ctx, postForm(cat, "kept-post", amy))
	require.NoError(t, err)

	require.NoError(t, e.categories.DeleteCategory(ctx, cat))
	require.NoError(t, e.categories.DeleteCategory(ctx, cat))

	viewed, err := e.categories.GetCategory(ctx, cat)
	require.NoError(t, err)
	assert.True(t, viewed.Trashed)
	assert.Equal(t, int64(1), viewed.PostsCount)

	got, err := e.posts.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, got.Trashed)
	require.NotNil(t, got.Category)
	assert.Equal(t, "News", got.Category.Name)
	assert.True(t, got.Category.Trashed)

	_, err = e.categories.UpdateCategory(ctx, cat, &dto.CategoryFormDTO{Name: "Edited"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	restored, err := e.categories.RestoreCategory(ctx, cat)
	require.NoError(t, err)
	assert.False(t, restored.Trashed)

	restored, err = e.categories.RestoreCategory(ctx, cat)
	require.NoError(t, err)
	assert.False(t, restored.Trashed)
}

func TestCategoryService_List(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.category(t, "Tech")
	arts := e.category(t, "Arts")
	e.category(t, "Music")

	page, err := e.categories.ListCategories(ctx, &dto.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, "Arts", page.List[0].Name)

	page, err = e.categories.ListCategories(ctx, &dto.ListQuery{Sort: "name", Direction: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "Tech", page.List[0].Name)

	page, err = e.categories.ListCategories(ctx, &dto.ListQuery{Search: "us"})
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.Equal(t, "Music", page.List[0].Name)

	affected, err := e.categories.BulkDeleteCategories(ctx, []uint64{arts, arts})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	page, err = e.categories.ListCategories(ctx, &dto.ListQuery{Trashed: "only"})
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.True(t, page.List[0].Trashed)

	_, err = e.categories.ListCategories(ctx, &dto.ListQuery{Columns: map[string]string{"posts_count": "1"}})
	assert.ErrorIs(t, err, ErrColumnNotAllowed)
}

func TestAuthorService(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	created, err := e.authors.CreateAuthor(ctx, &dto.AuthorFormDTO{Name: " Ada "})
	require.NoError(t, err)
	assert.Equal(t, "Ada", created.Name)

	_, err = e.authors.CreateAuthor(ctx, &dto.AuthorFormDTO{})
	assert.Equal(t, map[string]string{"name": util.KindRequired}, fieldKinds(t, err))

	list, err := e.authors.ListAuthors(ctx, "ad")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}
