package handler

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/response"
	"Folio/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categorySvc service.CategoryService
}

func NewCategoryHandler(categorySvc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categorySvc: categorySvc,
	}
}

func (s *CategoryHandler) ListCategories(c *gin.Context) {
	var query dto.ListQuery
	if err := bindListQuery(c, &query, &query); err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.categorySvc.ListCategories(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	category, err := s.categorySvc.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

func (s *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryFormDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	category, err := s.categorySvc.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

func (s *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CategoryFormDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	category, err := s.categorySvc.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

func (s *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.categorySvc.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CategoryHandler) BulkDeleteCategories(c *gin.Context) {
	var req dto.IDsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := validate(&req); err != nil {
		response.Error(c, err)
		return
	}

	affected, err := s.categorySvc.BulkDeleteCategories(c.Request.Context(), req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BulkResultDTO{Affected: affected})
}

func (s *CategoryHandler) RestoreCategory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	category, err := s.categorySvc.RestoreCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}
