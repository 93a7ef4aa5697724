package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/model"
	"Folio/internal/pkg/consts"
	"Folio/internal/pkg/util"
	"Folio/internal/repository"
	"context"
	"errors"
	"strings"

	"github.com/jinzhu/copier"
)

// postInput 表单提交的文章字段，AuthorIDs 为 nil 表示不修改作者
type postInput struct {
	Title      string
	Slug       string
	Color      string
	Content    string
	Thumbnail  string
	Tags       model.StringSet
	Published  bool
	CategoryID uint64
	AuthorIDs  []uint64
}

var (
	postFormFields     = []string{"title", "slug", "color", "content", "thumbnail", "tags", "published", "category_id", "updated_at"}
	relationFormFields = []string{"title", "slug", "color", "content", "thumbnail", "tags", "published", "updated_at"}
)

func normalizePostForm(req *dto.PostFormDTO) {
	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.TrimSpace(req.Slug)
	req.Color = strings.TrimSpace(req.Color)
	req.Thumbnail = strings.TrimSpace(req.Thumbnail)
}

func normalizeRelationForm(req *dto.RelationPostDTO) {
	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.TrimSpace(req.Slug)
	req.Color = strings.TrimSpace(req.Color)
	req.Thumbnail = strings.TrimSpace(req.Thumbnail)
}

func inputFromPostForm(req *dto.PostFormDTO) *postInput {
	authorIDs := util.UniqueIDs(req.Authors)
	return &postInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Color:      req.Color,
		Content:    req.Content,
		Thumbnail:  req.Thumbnail,
		Tags:       model.NewStringSet(req.Tags),
		Published:  req.Published,
		CategoryID: req.CategoryID,
		AuthorIDs:  authorIDs,
	}
}

func inputFromRelationForm(categoryID uint64, req *dto.RelationPostDTO) *postInput {
	return &postInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Color:      req.Color,
		Content:    req.Content,
		Thumbnail:  req.Thumbnail,
		Tags:       model.NewStringSet(req.Tags),
		Published:  req.Published,
		CategoryID: categoryID,
	}
}

// postWriter 文章新增与修改的公共流程：校验、写入、登记封面引用
type postWriter struct {
	postRepo     repository.PostRepo
	categoryRepo repository.CategoryRepo
	authorRepo   repository.AuthorRepo
	store        MediaStore
	registry     TempMediaRegistry
}

// checkStorage 依赖存储的规则，结果追加到 ve；current 为 nil 表示新增
func (w *postWriter) checkStorage(ctx context.Context, ve *ValidationError, in *postInput, current *model.Post, checkCategory bool) error {
	if !ve.Has("slug") {
		var excludeID uint64
		if current != nil {
			excludeID = current.ID
		}
		taken, err := w.postRepo.SlugExists(ctx, in.Slug, excludeID)
		if err != nil {
			return err
		}
		if taken {
			ve.Errors = append(ve.Errors, duplicateSlugError().Errors...)
		}
	}

	if checkCategory && !ve.Has("category_id") {
		category, err := w.categoryRepo.GetCategory(ctx, in.CategoryID, false)
		if err != nil {
			return err
		}
		if category == nil {
			err = addReferenceError(ve, &repository.ReferenceError{Field: "category_id", IDs: []uint64{in.CategoryID}})
			if err != nil {
				return err
			}
		}
	}

	if in.AuthorIDs != nil && !ve.Has("authors") {
		if _, err := w.authorRepo.FindAuthors(ctx, in.AuthorIDs); err != nil {
			if err = addReferenceError(ve, err); err != nil {
				return err
			}
		}
	}

	if !ve.Has("thumbnail") && (current == nil || current.Thumbnail != in.Thumbnail) {
		ok, err := w.thumbnailValid(ctx, in.Thumbnail)
		if err != nil {
			return err
		}
		if !ok {
			ve.Add("thumbnail", util.KindInvalidImage, "字段 [thumbnail] 不是已上传的图片")
		}
	}
	return nil
}

// thumbnailValid 必须是封面目录下已存在的文件
func (w *postWriter) thumbnailValid(ctx context.Context, key string) (bool, error) {
	if !strings.HasPrefix(key, consts.ThumbnailDir+"/") || strings.Contains(key, "..") {
		return false, nil
	}
	return w.store.Exists(ctx, key)
}

func (w *postWriter) create(ctx context.Context, in *postInput) (uint64, error) {
	post := &model.Post{}
	if err := copier.Copy(post, in); err != nil {
		return 0, err
	}

	if err := w.postRepo.CreatePost(ctx, post, in.AuthorIDs); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return 0, duplicateSlugError()
		}
		return 0, err
	}

	releaseTempMedia(ctx, w.registry, post.Thumbnail)
	return post.ID, nil
}

func (w *postWriter) update(ctx context.Context, id uint64, in *postInput, fields []string) error {
	post := &model.Post{}
	if err := copier.Copy(post, in); err != nil {
		return err
	}
	post.ID = id

	if err := w.postRepo.UpdatePost(ctx, post, fields, in.AuthorIDs); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return duplicateSlugError()
		}
		return err
	}

	releaseTempMedia(ctx, w.registry, post.Thumbnail)
	return nil
}

func (w *postWriter) toPostDTO(post *model.Post) *dto.PostDTO {
	res := &dto.PostDTO{
		ID:           post.ID,
		Title:        post.Title,
		Slug:         post.Slug,
		Color:        post.Color,
		Content:      post.Content,
		Thumbnail:    post.Thumbnail,
		ThumbnailURL: w.store.PublicURL(post.Thumbnail),
		Tags:         []string(post.Tags),
		Published:    post.Published,
		CategoryID:   post.CategoryID,
		Authors:      make([]*dto.AuthorDTO, 0, len(post.Authors)),
		CreatedAt:    post.CreatedAt.Format(consts.DisplayTimeLayout),
		UpdatedAt:    post.UpdatedAt.Format(consts.DisplayTimeLayout),
		Trashed:      post.IsDeleted(),
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	if post.Category != nil {
		res.Category = &dto.CategoryOptionDTO{
			ID:      post.Category.ID,
			Name:    post.Category.Name,
			Trashed: post.Category.DeletedAt != 0,
		}
	}
	for _, a := range post.Authors {
		res.Authors = append(res.Authors, &dto.AuthorDTO{ID: a.ID, Name: a.Name})
	}
	return res
}

func (w *postWriter) toPage(posts []*model.Post, total int64, pager util.Pager) *dto.PageDTO[*dto.PostDTO] {
	list := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		list = append(list, w.toPostDTO(p))
	}
	return &dto.PageDTO[*dto.PostDTO]{
		List:      list,
		Total:     total,
		Page:      pager.Page,
		PageSize:  pager.Size,
		TotalPage: pager.TotalPage(total),
	}
}
