package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/model"
	"Folio/internal/pkg/database"
	"Folio/internal/repository"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memoryStore 内存对象存储
type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryStore(keys ...string) *memoryStore {
	s := &memoryStore{objects: make(map[string][]byte)}
	for _, k := range keys {
		s.objects[k] = []byte("img")
	}
	return s
}

func (s *memoryStore) Put(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectName] = data
	return nil
}

func (s *memoryStore) Exists(_ context.Context, objectName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[objectName]
	return ok, nil
}

func (s *memoryStore) Remove(_ context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectName)
	return nil
}

func (s *memoryStore) PublicURL(objectName string) string {
	return "http://cdn.test/public/" + objectName
}

// memoryRegistry 内存临时文件登记
type memoryRegistry struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemoryRegistry() *memoryRegistry {
	return &memoryRegistry{items: make(map[string]string)}
}

func (r *memoryRegistry) Register(_ context.Context, objectName, meta string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[objectName] = meta
	return nil
}

func (r *memoryRegistry) Release(_ context.Context, objectNames ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range objectNames {
		delete(r.items, n)
	}
	return nil
}

func (r *memoryRegistry) All(context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make(map[string]string, len(r.items))
	for k, v := range r.items {
		res[k] = v
	}
	return res, nil
}

const (
	thumbA = "thumbnails/2026/01/01/a.png"
	thumbB = "thumbnails/2026/01/01/b.png"
)

type env struct {
	db            *gorm.DB
	store         *memoryStore
	registry      *memoryRegistry
	postRepo      repository.PostRepo
	categoryRepo  repository.CategoryRepo
	authorRepo    repository.AuthorRepo
	posts         PostService
	categoryPosts CategoryPostService
	categories    CategoryService
	authors       AuthorService
	media         MediaService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := database.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	e := &env{
		db:           db,
		store:        newMemoryStore(thumbA, thumbB),
		registry:     newMemoryRegistry(),
		postRepo:     repository.NewPostRepository(db),
		categoryRepo: repository.NewCategoryRepository(db),
		authorRepo:   repository.NewAuthorRepository(db),
	}
	e.posts = NewPostService(e.postRepo, e.categoryRepo, e.authorRepo, e.store, e.registry)
	e.categoryPosts = NewCategoryPostService(e.postRepo, e.categoryRepo, e.authorRepo, e.store, e.registry)
	e.categories = NewCategoryService(e.categoryRepo)
	e.authors = NewAuthorService(e.authorRepo)
	e.media = NewMediaService(e.store, e.registry, e.postRepo)
	return e
}

func (e *env) category(t *testing.T, name string) uint64 {
	t.Helper()
	c := &model.Category{Name: name}
	require.NoError(t, e.categoryRepo.CreateCategory(context.Background(), c))
	return c.ID
}

func (e *env) author(t *testing.T, name string) uint64 {
	t.Helper()
	a := &model.Author{Name: name}
	require.NoError(t, e.authorRepo.CreateAuthor(context.Background(), a))
	return a.ID
}

func postForm(categoryID uint64, slug string, authors ...uint64) *dto.PostFormDTO {
	return &dto.PostFormDTO{
		Title:      "Post " + slug,
		Slug:       slug,
		Color:      "#336699",
		CategoryID: categoryID,
		Content:    "# Hello",
		Thumbnail:  thumbA,
		Tags:       []string{"go", "gorm"},
		Authors:    authors,
	}
}

func relationForm(slug string) *dto.RelationPostDTO {
	return &dto.RelationPostDTO{
		Title:     "Post " + slug,
		Slug:      slug,
		Color:     "#336699",
		Content:   "# Hello",
		Thumbnail: thumbA,
		Tags:      []string{"go"},
	}
}

// fieldKinds 校验错误按字段汇总
func fieldKinds(t *testing.T, err error) map[string]string {
	t.Helper()
	ve, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T: %v", err, err)
	res := make(map[string]string, len(ve.Errors))
	for _, fe := range ve.Errors {
		res[fe.Field] = fe.Kind
	}
	return res
}
