package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/consts"
	"Folio/internal/pkg/util"
	"Folio/internal/repository"
	"Folio/internal/resource"
	"context"
	"errors"
	log "log/slog"
)

// CategoryPostService 分类页面内的文章管理，所有操作限定在父分类下
type CategoryPostService interface {
	ListPosts(ctx context.Context, categoryID uint64, query *dto.ListQuery) (*dto.PageDTO[*dto.PostDTO], error)
	CreatePost(ctx context.Context, categoryID uint64, req *dto.RelationPostDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, categoryID, postID uint64, req *dto.RelationPostDTO) (*dto.PostDTO, error)
	SetPublished(ctx context.Context, categoryID, postID uint64, published bool) error
	DeletePost(ctx context.Context, categoryID, postID uint64) error
	BulkDeletePosts(ctx context.Context, categoryID uint64, ids []uint64) (int64, error)
}

type categoryPostServiceImpl struct {
	*postWriter
	table resource.Table
}

func NewCategoryPostService(
	postRepo repository.PostRepo,
	categoryRepo repository.CategoryRepo,
	authorRepo repository.AuthorRepo,
	store MediaStore,
	registry TempMediaRegistry,
) CategoryPostService {
	return &categoryPostServiceImpl{
		postWriter: &postWriter{
			postRepo:     postRepo,
			categoryRepo: categoryRepo,
			authorRepo:   authorRepo,
			store:        store,
			registry:     registry,
		},
		table: resource.CategoryPostsTable(),
	}
}

func (s *categoryPostServiceImpl) ensureCategory(ctx context.Context, categoryID uint64) error {
	category, err := s.categoryRepo.GetCategory(ctx, categoryID, false)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}

// ListPosts 仅列出未删除的文章
func (s *categoryPostServiceImpl) ListPosts(ctx context.Context, categoryID uint64, query *dto.ListQuery) (*dto.PageDTO[*dto.PostDTO], error) {
	if err := s.ensureCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	params, err := resolveListQuery(s.table, query)
	if err != nil {
		return nil, err
	}
	params.trashed = consts.TrashedWithout

	filter := params.postFilter()
	filter.CategoryID = categoryID

	posts, total, err := s.postRepo.ListPosts(ctx, filter)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownColumn) {
			return nil, ErrColumnNotAllowed
		}
		return nil, err
	}
	return s.toPage(posts, total, params.pager), nil
}

// CreatePost 分类强制为父分类，不设置作者
func (s *categoryPostServiceImpl) CreatePost(ctx context.Context, categoryID uint64, req *dto.RelationPostDTO) (*dto.PostDTO, error) {
	if err := s.ensureCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	normalizeRelationForm(req)
	ve, err := validateStruct(req)
	if err != nil {
		return nil, err
	}

	in := inputFromRelationForm(categoryID, req)
	if err = s.checkStorage(ctx, ve, in, nil, false); err != nil {
		return nil, err
	}
	if err = ve.OrNil(); err != nil {
		return nil, err
	}

	id, err := s.create(ctx, in)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "post created under category", "category_id", categoryID, "post_id", id)
	return s.getPost(ctx, categoryID, id)
}

// UpdatePost 分类与作者保持不变
func (s *categoryPostServiceImpl) UpdatePost(ctx context.Context, categoryID, postID uint64, req *dto.RelationPostDTO) (*dto.PostDTO, error) {
	if err := s.ensureCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	current, err := s.postRepo.GetPost(ctx, postID, repository.PostScope{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrPostNotFound
	}

	normalizeRelationForm(req)
	ve, err := validateStruct(req)
	if err != nil {
		return nil, err
	}

	in := inputFromRelationForm(categoryID, req)
	if err = s.checkStorage(ctx, ve, in, current, false); err != nil {
		return nil, err
	}
	if err = ve.OrNil(); err != nil {
		return nil, err
	}

	if err = s.update(ctx, postID, in, relationFormFields); err != nil {
		return nil, err
	}
	return s.getPost(ctx, categoryID, postID)
}

func (s *categoryPostServiceImpl) getPost(ctx context.Context, categoryID, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID, repository.PostScope{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.toPostDTO(post), nil
}

func (s *categoryPostServiceImpl) SetPublished(ctx context.Context, categoryID, postID uint64, published bool) error {
	post, err := s.postRepo.GetPost(ctx, postID, repository.PostScope{CategoryID: categoryID})
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return s.postRepo.SetPublished(ctx, postID, published)
}

// DeletePost 不属于该分类的文章不受影响
func (s *categoryPostServiceImpl) DeletePost(ctx context.Context, categoryID, postID uint64) error {
	_, err := s.postRepo.DeletePosts(ctx, categoryID, []uint64{postID})
	return err
}

func (s *categoryPostServiceImpl) BulkDeletePosts(ctx context.Context, categoryID uint64, ids []uint64) (int64, error) {
	affected, err := s.postRepo.DeletePosts(ctx, categoryID, util.UniqueIDs(ids))
	if err != nil {
		return 0, err
	}
	log.InfoContext(ctx, "category posts bulk deleted", "category_id", categoryID, "requested", len(ids), "affected", affected)
	return affected, nil
}
