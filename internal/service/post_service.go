package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/util"
	"Folio/internal/repository"
	"Folio/internal/resource"
	"context"
	"errors"
	log "log/slog"
)

type PostService interface {
	ListPosts(ctx context.Context, query *dto.PostListQuery) (*dto.PageDTO[*dto.PostDTO], error)
	GetFilterOptions(ctx context.Context) (*dto.PostFilterOptionsDTO, error)
	GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error)
	CreatePost(ctx context.Context, req *dto.PostFormDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, id uint64, req *dto.PostFormDTO) (*dto.PostDTO, error)
	SetPublished(ctx context.Context, id uint64, published bool) error
	DeletePost(ctx context.Context, id uint64) error
	BulkDeletePosts(ctx context.Context, ids []uint64) (int64, error)
	RestorePost(ctx context.Context, id uint64) (*dto.PostDTO, error)
}

type postServiceImpl struct {
	*postWriter
	table resource.Table
}

func NewPostService(
	postRepo repository.PostRepo,
	categoryRepo repository.CategoryRepo,
	authorRepo repository.AuthorRepo,
	store MediaStore,
	registry TempMediaRegistry,
) PostService {
	return &postServiceImpl{
		postWriter: &postWriter{
			postRepo:     postRepo,
			categoryRepo: categoryRepo,
			authorRepo:   authorRepo,
			store:        store,
			registry:     registry,
		},
		table: resource.PostTable(),
	}
}

// ListPosts 文章列表：排序、列搜索、全局搜索、发布状态与分类筛选
func (s *postServiceImpl) ListPosts(ctx context.Context, query *dto.PostListQuery) (*dto.PageDTO[*dto.PostDTO], error) {
	params, err := resolveListQuery(s.table, &query.ListQuery)
	if err != nil {
		return nil, err
	}

	filter := params.postFilter()
	filter.Published = query.Published
	filter.CategoryIDs = util.UniqueIDs(query.CategoryIDs)

	posts, total, err := s.postRepo.ListPosts(ctx, filter)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownColumn) {
			return nil, ErrColumnNotAllowed
		}
		return nil, err
	}
	return s.toPage(posts, total, params.pager), nil
}

// GetFilterOptions 分类筛选项，每次渲染列表时加载一次
func (s *postServiceImpl) GetFilterOptions(ctx context.Context) (*dto.PostFilterOptionsDTO, error) {
	categories, err := s.categoryRepo.ListOptions(ctx)
	if err != nil {
		return nil, err
	}
	res := &dto.PostFilterOptionsDTO{Categories: make([]*dto.CategoryOptionDTO, 0, len(categories))}
	for _, c := range categories {
		res.Categories = append(res.Categories, &dto.CategoryOptionDTO{ID: c.ID, Name: c.Name})
	}
	return res, nil
}

// GetPost 查看详情，包含已删除的文章
func (s *postServiceImpl) GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id, repository.PostScope{WithTrashed: true})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.toPostDTO(post), nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.PostFormDTO) (*dto.PostDTO, error) {
	normalizePostForm(req)
	ve, err := validateStruct(req)
	if err != nil {
		return nil, err
	}

	in := inputFromPostForm(req)
	if err = s.checkStorage(ctx, ve, in, nil, true); err != nil {
		return nil, err
	}
	if err = ve.OrNil(); err != nil {
		return nil, err
	}

	id, err := s.create(ctx, in)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "post created", "post_id", id, "slug", in.Slug)
	return s.GetPost(ctx, id)
}

// UpdatePost 仅写入表单字段，创建时间不变，作者整体替换
func (s *postServiceImpl) UpdatePost(ctx context.Context, id uint64, req *dto.PostFormDTO) (*dto.PostDTO, error) {
	current, err := s.postRepo.GetPost(ctx, id, repository.PostScope{})
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrPostNotFound
	}

	normalizePostForm(req)
	ve, err := validateStruct(req)
	if err != nil {
		return nil, err
	}

	in := inputFromPostForm(req)
	if err = s.checkStorage(ctx, ve, in, current, true); err != nil {
		return nil, err
	}
	if err = ve.OrNil(); err != nil {
		return nil, err
	}

	if err = s.update(ctx, id, in, postFormFields); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, id)
}

func (s *postServiceImpl) SetPublished(ctx context.Context, id uint64, published bool) error {
	post, err := s.postRepo.GetPost(ctx, id, repository.PostScope{})
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return s.postRepo.SetPublished(ctx, id, published)
}

// DeletePost 软删除，重复删除不报错
func (s *postServiceImpl) DeletePost(ctx context.Context, id uint64) error {
	_, err := s.postRepo.DeletePosts(ctx, 0, []uint64{id})
	return err
}

func (s *postServiceImpl) BulkDeletePosts(ctx context.Context, ids []uint64) (int64, error) {
	affected, err := s.postRepo.DeletePosts(ctx, 0, util.UniqueIDs(ids))
	if err != nil {
		return 0, err
	}
	log.InfoContext(ctx, "posts bulk deleted", "requested", len(ids), "affected", affected)
	return affected, nil
}

// RestorePost 恢复已删除文章，slug 已被占用时返回校验错误
func (s *postServiceImpl) RestorePost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id, repository.PostScope{WithTrashed: true})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !post.IsDeleted() {
		return s.toPostDTO(post), nil
	}

	if _, err = s.postRepo.RestorePost(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, duplicateSlugError()
		}
		return nil, err
	}
	return s.GetPost(ctx, id)
}
