package repository

import (
	"Folio/internal/model"
	"Folio/internal/pkg/util"
	"context"
	"strings"

	"gorm.io/gorm"
)

type AuthorRepo interface {
	CreateAuthor(ctx context.Context, author *model.Author) error
	ListAuthors(ctx context.Context, search string) ([]*model.Author, error)
	FindAuthors(ctx context.Context, ids []uint64) ([]*model.Author, error)
}

type AuthorRepoImpl struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepo {
	return &AuthorRepoImpl{
		db: db,
	}
}

func (s AuthorRepoImpl) CreateAuthor(ctx context.Context, author *model.Author) error {
	return translateError(s.db.WithContext(ctx).Create(author).Error, "create author")
}

func (s AuthorRepoImpl) ListAuthors(ctx context.Context, search string) ([]*model.Author, error) {
	tx := s.db.WithContext(ctx).Order("name ASC").Order("id ASC")
	if search = strings.TrimSpace(search); search != "" {
		tx = tx.Where("name LIKE ? ESCAPE '!'", "%"+util.EscapeLike(search)+"%")
	}
	var authors []*model.Author
	if err := tx.Find(&authors).Error; err != nil {
		return nil, translateError(err, "list authors")
	}
	return authors, nil
}

// FindAuthors 按 id 批量读取，存在缺失时返回 *ReferenceError
func (s AuthorRepoImpl) FindAuthors(ctx context.Context, ids []uint64) ([]*model.Author, error) {
	if len(ids) == 0 {
		return []*model.Author{}, nil
	}

	var authors []*model.Author
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&authors).Error; err != nil {
		return nil, translateError(err, "find authors")
	}

	found := make(map[uint64]struct{}, len(authors))
	for _, a := range authors {
		found[a.ID] = struct{}{}
	}
	var missing []uint64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &ReferenceError{Field: "authors", IDs: missing}
	}
	return authors, nil
}
