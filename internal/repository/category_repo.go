package repository

import (
	"Folio/internal/model"
	"Folio/internal/pkg/consts"
	"Folio/internal/pkg/util"
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryFilter 分类列表查询条件
type CategoryFilter struct {
	Search  string
	Columns map[string]string
	Trashed string
	Sort    string
	Desc    bool
	Offset  int
	Limit   int
}

const postsCountExpr = "(SELECT COUNT(*) FROM posts WHERE posts.category_id = categories.id AND posts.deleted_at = 0)"

var categorySortColumns = map[string]string{
	"id":          "categories.id",
	"name":        "categories.name",
	"posts_count": "posts_count",
	"created_at":  "categories.created_at",
	"updated_at":  "categories.updated_at",
}

type CategoryRepo interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, id uint64, name string) error
	GetCategory(ctx context.Context, id uint64, withTrashed bool) (*model.CategoryWithCount, error)
	ListCategories(ctx context.Context, filter *CategoryFilter) ([]*model.CategoryWithCount, int64, error)
	ListOptions(ctx context.Context) ([]*model.Category, error)
	DeleteCategories(ctx context.Context, ids []uint64) (int64, error)
	RestoreCategory(ctx context.Context, id uint64) (bool, error)
}

type CategoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepo {
	return &CategoryRepoImpl{
		db: db,
	}
}

func (s CategoryRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error
	return translateError(err, "create category")
}

func (s CategoryRepoImpl) UpdateCategory(ctx context.Context, id uint64, name string) error {
	err := s.db.WithContext(ctx).Model(&model.Category{ID: id}).Update("name", name).Error
	return translateError(err, "update category")
}

func (s CategoryRepoImpl) GetCategory(ctx context.Context, id uint64, withTrashed bool) (*model.CategoryWithCount, error) {
	tx := s.withCount(s.db.WithContext(ctx))
	if withTrashed {
		tx = tx.Unscoped()
	}

	var rows []*model.CategoryWithCount
	if err := tx.Where("categories.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, translateError(err, "get category")
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (s CategoryRepoImpl) withCount(tx *gorm.DB) *gorm.DB {
	return tx.Model(&model.Category{}).Select("categories.*, " + postsCountExpr + " AS posts_count")
}

func (s CategoryRepoImpl) ListCategories(ctx context.Context, filter *CategoryFilter) ([]*model.CategoryWithCount, int64, error) {
	countTx, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err = countTx.Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "count categories")
	}
	if total == 0 {
		return []*model.CategoryWithCount{}, 0, nil
	}

	listTx, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sortExpr := "categories.name"
	if filter.Sort != "" {
		var ok bool
		if sortExpr, ok = categorySortColumns[filter.Sort]; !ok {
			return nil, 0, ErrUnknownColumn
		}
	}
	listTx = s.withCount(listTx).Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: sortExpr, Raw: true}, Desc: filter.Desc},
		{Column: clause.Column{Name: "categories.id", Raw: true}, Desc: filter.Desc},
	}})
	if filter.Limit > 0 {
		listTx = listTx.Offset(filter.Offset).Limit(filter.Limit)
	}

	var rows []*model.CategoryWithCount
	if err = listTx.Scan(&rows).Error; err != nil {
		return nil, 0, translateError(err, "list categories")
	}
	return rows, total, nil
}

func (s CategoryRepoImpl) filtered(ctx context.Context, filter *CategoryFilter) (*gorm.DB, error) {
	tx := s.db.WithContext(ctx).Model(&model.Category{})

	switch filter.Trashed {
	case consts.TrashedWith:
		tx = tx.Unscoped()
	case consts.TrashedOnly:
		tx = tx.Unscoped().Where("categories.deleted_at <> 0")
	}

	for name, term := range filter.Columns {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if name != "name" {
			return nil, ErrUnknownColumn
		}
		tx = tx.Where("categories.name LIKE ? ESCAPE '!'", "%"+util.EscapeLike(term)+"%")
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		tx = tx.Where("categories.name LIKE ? ESCAPE '!'", "%"+util.EscapeLike(search)+"%")
	}
	return tx, nil
}

// ListOptions 未删除分类，供筛选器与表单下拉使用
func (s CategoryRepoImpl) ListOptions(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	err := s.db.WithContext(ctx).
		Select("id", "name").
		Order("name ASC").
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, translateError(err, "list category options")
	}
	return categories, nil
}

// DeleteCategories 软删除，已删除或不存在的记录不受影响
func (s CategoryRepoImpl) DeleteCategories(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Category{})
	if res.Error != nil {
		return 0, translateError(res.Error, "delete categories")
	}
	return res.RowsAffected, nil
}

func (s CategoryRepoImpl) RestoreCategory(ctx context.Context, id uint64) (bool, error) {
	res := s.db.WithContext(ctx).Unscoped().
		Model(&model.Category{}).
		Where("id = ? AND deleted_at <> 0", id).
		Update("deleted_at", 0)
	if res.Error != nil {
		return false, translateError(res.Error, "restore category")
	}
	return res.RowsAffected > 0, nil
}
