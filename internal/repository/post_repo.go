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

// PostScope 读取单篇文章时的范围
type PostScope struct {
	// CategoryID 非零时仅匹配该分类下的文章
	CategoryID  uint64
	WithTrashed bool
}

// PostFilter 文章列表查询条件
type PostFilter struct {
	CategoryID    uint64
	Published     *bool
	CategoryIDs   []uint64
	Search        string
	SearchColumns []string
	Columns       map[string]string
	Trashed       string
	Sort          string
	Desc          bool
	Offset        int
	Limit         int
}

// postColumn 列名到 SQL 表达式的映射，search 为空表示不可搜索
type postColumn struct {
	sort   string
	search string
}

var postColumns = map[string]postColumn{
	"id":            {sort: "posts.id", search: "CAST(posts.id AS CHAR)"},
	"title":         {sort: "posts.title", search: "posts.title"},
	"slug":          {sort: "posts.slug", search: "posts.slug"},
	"color":         {sort: "posts.color"},
	"category.name": {sort: "(SELECT categories.name FROM categories WHERE categories.id = posts.category_id)"},
	"tags":          {search: "posts.tags"},
	"published":     {sort: "posts.published"},
	"created_at":    {sort: "posts.created_at", search: "CAST(posts.created_at AS CHAR)"},
	"updated_at":    {sort: "posts.updated_at"},
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, authorIDs []uint64) error
	UpdatePost(ctx context.Context, post *model.Post, fields []string, authorIDs []uint64) error
	GetPost(ctx context.Context, id uint64, scope PostScope) (*model.Post, error)
	ListPosts(ctx context.Context, filter *PostFilter) ([]*model.Post, int64, error)
	SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error)
	SetPublished(ctx context.Context, id uint64, published bool) error
	DeletePosts(ctx context.Context, categoryID uint64, ids []uint64) (int64, error)
	RestorePost(ctx context.Context, id uint64) (bool, error)
	ThumbnailsInUse(ctx context.Context, keys []string) (map[string]bool, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, authorIDs []uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		return createPostAuthors(tx, post.ID, authorIDs)
	})
	return translateError(err, "create post")
}

// UpdatePost 仅更新 fields 指明的列；authorIDs 为 nil 时保留原有作者
func (s PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post, fields []string, authorIDs []uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			err := tx.Model(&model.Post{ID: post.ID}).
				Select(fields).
				Omit(clause.Associations).
				Updates(post).Error
			if err != nil {
				return err
			}
		}
		if authorIDs == nil {
			return nil
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&model.PostAuthor{}).Error; err != nil {
			return err
		}
		return createPostAuthors(tx, post.ID, authorIDs)
	})
	return translateError(err, "update post")
}

func createPostAuthors(tx *gorm.DB, postID uint64, authorIDs []uint64) error {
	if len(authorIDs) == 0 {
		return nil
	}
	links := make([]model.PostAuthor, 0, len(authorIDs))
	for _, id := range authorIDs {
		links = append(links, model.PostAuthor{PostID: postID, AuthorID: id})
	}
	return tx.Create(&links).Error
}

func (s PostRepoImpl) GetPost(ctx context.Context, id uint64, scope PostScope) (*model.Post, error) {
	tx := s.withRelations(s.db.WithContext(ctx))
	if scope.WithTrashed {
		tx = tx.Unscoped()
	}
	if scope.CategoryID != 0 {
		tx = tx.Where("posts.category_id = ?", scope.CategoryID)
	}

	var post model.Post
	err := tx.Where("posts.id = ?", id).Limit(1).Find(&post).Error
	if err != nil {
		return nil, translateError(err, "get post")
	}
	if post.ID == 0 {
		return nil, nil
	}
	return &post, nil
}

func (s PostRepoImpl) ListPosts(ctx context.Context, filter *PostFilter) ([]*model.Post, int64, error) {
	countTx, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err = countTx.Model(&model.Post{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "count posts")
	}
	if total == 0 {
		return []*model.Post{}, 0, nil
	}

	listTx, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sortExpr := "posts.created_at"
	if filter.Sort != "" {
		col, ok := postColumns[filter.Sort]
		if !ok || col.sort == "" {
			return nil, 0, ErrUnknownColumn
		}
		sortExpr = col.sort
	}
	listTx = listTx.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: sortExpr, Raw: true}, Desc: filter.Desc},
		{Column: clause.Column{Name: "posts.id", Raw: true}, Desc: filter.Desc},
	}})

	if filter.Limit > 0 {
		listTx = listTx.Offset(filter.Offset).Limit(filter.Limit)
	}

	var posts []*model.Post
	if err = s.withRelations(listTx).Find(&posts).Error; err != nil {
		return nil, 0, translateError(err, "list posts")
	}
	return posts, total, nil
}

// withRelations 已删除的分类仍需显示名称
func (s PostRepoImpl) withRelations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Category", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Authors", func(db *gorm.DB) *gorm.DB { return db.Order("authors.name ASC") })
}

func (s PostRepoImpl) filtered(ctx context.Context, filter *PostFilter) (*gorm.DB, error) {
	tx := s.db.WithContext(ctx).Model(&model.Post{})

	switch filter.Trashed {
	case consts.TrashedWith:
		tx = tx.Unscoped()
	case consts.TrashedOnly:
		tx = tx.Unscoped().Where("posts.deleted_at <> 0")
	}

	if filter.CategoryID != 0 {
		tx = tx.Where("posts.category_id = ?", filter.CategoryID)
	}
	if filter.Published != nil {
		tx = tx.Where("posts.published = ?", *filter.Published)
	}
	if len(filter.CategoryIDs) > 0 {
		tx = tx.Where("posts.category_id IN ?", filter.CategoryIDs)
	}

	for name, term := range filter.Columns {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		cond, args, ok := postSearchCondition(name, term)
		if !ok {
			return nil, ErrUnknownColumn
		}
		tx = tx.Where(cond, args...)
	}

	if search := strings.TrimSpace(filter.Search); search != "" && len(filter.SearchColumns) > 0 {
		conds := make([]string, 0, len(filter.SearchColumns))
		var args []any
		for _, name := range filter.SearchColumns {
			cond, condArgs, ok := postSearchCondition(name, search)
			if !ok {
				return nil, ErrUnknownColumn
			}
			conds = append(conds, cond)
			args = append(args, condArgs...)
		}
		tx = tx.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	return tx, nil
}

// postSearchCondition 单列模糊匹配，published 按布尔值精确匹配
func postSearchCondition(name, term string) (string, []any, bool) {
	pattern := "%" + util.EscapeLike(term) + "%"
	switch name {
	case "category.name":
		return "posts.category_id IN (SELECT categories.id FROM categories WHERE categories.name LIKE ? ESCAPE '!')", []any{pattern}, true
	case "published":
		v, ok := util.ParseBool(term)
		if !ok {
			return "1 = 0", nil, true
		}
		return "posts.published = ?", []any{v}, true
	}

	col, ok := postColumns[name]
	if !ok || col.search == "" {
		return "", nil, false
	}
	return col.search + " LIKE ? ESCAPE '!'", []any{pattern}, true
}

func (s PostRepoImpl) SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	tx := s.db.WithContext(ctx).Model(&model.Post{}).Where("slug = ?", slug)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, translateError(err, "check slug")
	}
	return count > 0, nil
}

func (s PostRepoImpl) SetPublished(ctx context.Context, id uint64, published bool) error {
	err := s.db.WithContext(ctx).Model(&model.Post{ID: id}).Update("published", published).Error
	return translateError(err, "set published")
}

// DeletePosts 软删除，已删除或不存在的记录不受影响
func (s PostRepoImpl) DeletePosts(ctx context.Context, categoryID uint64, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := s.db.WithContext(ctx).Where("id IN ?", ids)
	if categoryID != 0 {
		tx = tx.Where("category_id = ?", categoryID)
	}
	res := tx.Delete(&model.Post{})
	if res.Error != nil {
		return 0, translateError(res.Error, "delete posts")
	}
	return res.RowsAffected, nil
}

// RestorePost 恢复已删除的文章，slug 已被占用时返回 ErrDuplicateKey
func (s PostRepoImpl) RestorePost(ctx context.Context, id uint64) (bool, error) {
	res := s.db.WithContext(ctx).Unscoped().
		Model(&model.Post{}).
		Where("id = ? AND deleted_at <> 0", id).
		Update("deleted_at", 0)
	if res.Error != nil {
		return false, translateError(res.Error, "restore post")
	}
	return res.RowsAffected > 0, nil
}

// ThumbnailsInUse 包含已删除文章，恢复后仍需可用
func (s PostRepoImpl) ThumbnailsInUse(ctx context.Context, keys []string) (map[string]bool, error) {
	used := make(map[string]bool, len(keys))
	if len(keys) == 0 {
		return used, nil
	}
	var found []string
	err := s.db.WithContext(ctx).Unscoped().
		Model(&model.Post{}).
		Where("thumbnail IN ?", keys).
		Distinct().
		Pluck("thumbnail", &found).Error
	if err != nil {
		return nil, translateError(err, "find thumbnails")
	}
	for _, k := range found {
		used[k] = true
	}
	return used, nil
}
