package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/model"
	"Folio/internal/pkg/consts"
	"Folio/internal/pkg/util"
	"Folio/internal/repository"
	"Folio/internal/resource"
	"context"
	"errors"
	"strings"
)

type CategoryService interface {
	ListCategories(ctx context.Context, query *dto.ListQuery) (*dto.PageDTO[*dto.CategoryDTO], error)
	GetCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error)
	CreateCategory(ctx context.Context, req *dto.CategoryFormDTO) (*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uint64, req *dto.CategoryFormDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uint64) error
	BulkDeleteCategories(ctx context.Context, ids []uint64) (int64, error)
	RestoreCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error)
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
	table        resource.Table
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
		table:        resource.CategoryTable(),
	}
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context, query *dto.ListQuery) (*dto.PageDTO[*dto.CategoryDTO], error) {
	params, err := resolveListQuery(s.table, query)
	if err != nil {
		return nil, err
	}

	rows, total, err := s.categoryRepo.ListCategories(ctx, params.categoryFilter())
	if err != nil {
		if errors.Is(err, repository.ErrUnknownColumn) {
			return nil, ErrColumnNotAllowed
		}
		return nil, err
	}

	list := make([]*dto.CategoryDTO, 0, len(rows))
	for _, row := range rows {
		list = append(list, toCategoryDTO(row))
	}
	return &dto.PageDTO[*dto.CategoryDTO]{
		List:      list,
		Total:     total,
		Page:      params.pager.Page,
		PageSize:  params.pager.Size,
		TotalPage: params.pager.TotalPage(total),
	}, nil
}

func (s *categoryServiceImpl) GetCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error) {
	row, err := s.categoryRepo.GetCategory(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrCategoryNotFound
	}
	return toCategoryDTO(row), nil
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *dto.CategoryFormDTO) (*dto.CategoryDTO, error) {
	req.Name = strings.TrimSpace(req.Name)
	ve, err := validateStruct(req)
	if err != nil {
		return nil, err
	}
	if err = ve.OrNil(); err != nil {
		return nil, err
	}

	category := &model.Category{Name: req.Name}
	if err = s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return s.GetCategory(ctx, category.ID)
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id uint64, req *dto.CategoryFormDTO) (*dto.CategoryDTO, error) {
	current, err := s.categoryRepo.GetCategory(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrCategoryNotFound
	}

	req.Name = strings.TrimSpace(req.Name)
	ve, err := validateStruct(req)
	if err != nil {
		return nil, err
	}
	if err = ve.OrNil(); err != nil {
		return nil, err
	}

	if err = s.categoryRepo.UpdateCategory(ctx, id, req.Name); err != nil {
		return nil, err
	}
	return s.GetCategory(ctx, id)
}

// DeleteCategory 软删除分类，其下文章保留并继续显示分类名称
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id uint64) error {
	_, err := s.categoryRepo.DeleteCategories(ctx, []uint64{id})
	return err
}

func (s *categoryServiceImpl) BulkDeleteCategories(ctx context.Context, ids []uint64) (int64, error) {
	return s.categoryRepo.DeleteCategories(ctx, util.UniqueIDs(ids))
}

func (s *categoryServiceImpl) RestoreCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error) {
	row, err := s.categoryRepo.GetCategory(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrCategoryNotFound
	}
	if row.DeletedAt != 0 {
		if _, err = s.categoryRepo.RestoreCategory(ctx, id); err != nil {
			return nil, err
		}
	}
	return s.GetCategory(ctx, id)
}

func toCategoryDTO(row *model.CategoryWithCount) *dto.CategoryDTO {
	return &dto.CategoryDTO{
		ID:         row.ID,
		Name:       row.Name,
		PostsCount: row.PostsCount,
		CreatedAt:  row.CreatedAt.Format(consts.DisplayTimeLayout),
		UpdatedAt:  row.UpdatedAt.Format(consts.DisplayTimeLayout),
		Trashed:    row.DeletedAt != 0,
	}
}
