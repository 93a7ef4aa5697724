package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryPostService_CreateUsesParent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t, "News")

	post, err := e.categoryPosts.CreatePost(ctx, cat, relationForm("child-post"))
	require.NoError(t, err)
	assert.Equal(t, cat, post.CategoryID)
	assert.Empty(t, post.Authors)

	_, err = e.categoryPosts.CreatePost(ctx, cat+100, relationForm("orphan"))
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = e.categoryPosts.CreatePost(ctx, cat, relationForm("child-post"))
	assert.Equal(t, map[string]string{"slug": util.KindDuplicate}, fieldKinds(t, err))

	_, err = e.categoryPosts.CreatePost(ctx, cat, &dto.RelationPostDTO{})
	assert.Len(t, fieldKinds(t, err), 6)
}

func TestCategoryPostService_UpdateKeepsCategoryAndAuthors(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	news := e.category(t, "News")
	tech := e.category(t, "Tech")
	amy := e.author(t, "Amy")

	created, err := e.posts.CreatePost(ctx, postForm(news, "with-author", amy))
	require.NoError(t, err)

	form := relationForm("edited")
	form.Published = true
	updated, err := e.categoryPosts.UpdatePost(ctx, news, created.ID, form)
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Slug)
	assert.True(t, updated.Published)
	assert.Equal(t, news, updated.CategoryID)
	require.Len(t, updated.Authors, 1)
	assert.Equal(t, amy, updated.Authors[0].ID)

	// 文章不属于该分类
	_, err = e.categoryPosts.UpdatePost(ctx, tech, created.ID, relationForm("moved"))
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.ErrorIs(t, e.categoryPosts.SetPublished(ctx, tech, created.ID, false), ErrPostNotFound)
}

func TestCategoryPostService_ListAndDeleteAreScoped(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	news := e.category(t, "News")
	tech := e.category(t, "Tech")

	a, err := e.categoryPosts.CreatePost(ctx, news, relationForm("news-a"))
	require.NoError(t, err)
	b, err := e.categoryPosts.CreatePost(ctx, news, relationForm("news-b"))
	require.NoError(t, err)
	c, err := e.categoryPosts.CreatePost(ctx, tech, relationForm("tech-c"))
	require.NoError(t, err)

	page, err := e.categoryPosts.ListPosts(ctx, news, &dto.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	page, err = e.categoryPosts.ListPosts(ctx, news, &dto.ListQuery{Columns: map[string]string{"slug": "-b"}})
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.Equal(t, b.ID, page.List[0].ID)

	require.NoError(t, e.categoryPosts.SetPublished(ctx, news, a.ID, true))
	page, err = e.categoryPosts.ListPosts(ctx, news, &dto.ListQuery{Columns: map[string]string{"published": "true"}})
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.Equal(t, a.ID, page.List[0].ID)

	_, err = e.categoryPosts.ListPosts(ctx, news, &dto.ListQuery{Sort: "title"})
	assert.ErrorIs(t, err, ErrColumnNotAllowed)
	_, err = e.categoryPosts.ListPosts(ctx, news, &dto.ListQuery{Search: "news"})
	require.NoError(t, err)

	affected, err := e.categoryPosts.BulkDeletePosts(ctx, news, []uint64{a.ID, c.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	require.NoError(t, e.categoryPosts.DeletePost(ctx, news, c.ID))
	got, err := e.posts.GetPost(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, got.Trashed)

	// 列表不显示已删除的文章
	page, err = e.categoryPosts.ListPosts(ctx, news, &dto.ListQuery{Trashed: "with"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	require.NoError(t, e.categories.DeleteCategory(ctx, news))
	_, err = e.categoryPosts.ListPosts(ctx, news, &dto.ListQuery{})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryPostService_GlobalSearch(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	news := e.category(t, "News")

	alpha, err := e.categoryPosts.CreatePost(ctx, news, relationForm("alpha-post"))
	require.NoError(t, err)
	_, err = e.categoryPosts.CreatePost(ctx, news, relationForm("beta-post"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		search string
		total  int64
	}{
		{name: "MatchesSlug", search: "alpha", total: 1},
		{name: "MatchesTitle", search: "Post beta", total: 1},
		{name: "MatchesBoth", search: "-post", total: 2},
		{name: "NoMatch", search: "gamma", total: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := e.categoryPosts.ListPosts(ctx, news, &dto.ListQuery{Search: tt.search})
			require.NoError(t, err)
			assert.Equal(t, tt.total, page.Total)
		})
	}

	page, err := e.categoryPosts.ListPosts(ctx, news, &dto.ListQuery{Search: "alpha"})
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.Equal(t, alpha.ID, page.List[0].ID)
}
