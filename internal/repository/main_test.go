package repository

import (
	"Folio/internal/model"
	"Folio/internal/pkg/database"
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库每个连接独立
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	db         *gorm.DB
	posts      PostRepo
	categories CategoryRepo
	authors    AuthorRepo
}

func newFixture(t *testing.T) *fixture {
	db := newTestDB(t)
	return &fixture{
		db:         db,
		posts:      NewPostRepository(db),
		categories: NewCategoryRepository(db),
		authors:    NewAuthorRepository(db),
	}
}

func (f *fixture) category(t *testing.T, name string) *model.Category {
	t.Helper()
	c := &model.Category{Name: name}
	require.NoError(t, f.categories.CreateCategory(context.Background(), c))
	return c
}

func (f *fixture) author(t *testing.T, name string) *model.Author {
	t.Helper()
	a := &model.Author{Name: name}
	require.NoError(t, f.authors.CreateAuthor(context.Background(), a))
	return a
}

func (f *fixture) post(t *testing.T, categoryID uint64, slug string, mutate func(p *model.Post), authorIDs ...uint64) *model.Post {
	t.Helper()
	p := &model.Post{
		Title:      "Title " + slug,
		Slug:       slug,
		Color:      "#000000",
		Content:    "content",
		Thumbnail:  "thumbnails/" + slug + ".png",
		Tags:       model.StringSet{"go"},
		CategoryID: categoryID,
	}
	if mutate != nil {
		mutate(p)
	}
	require.NoError(t, f.posts.CreatePost(context.Background(), p, authorIDs))
	return p
}

func postIDs(posts []*model.Post) []uint64 {
	ids := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}
