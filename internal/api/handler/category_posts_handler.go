package handler

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/response"
	"Folio/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryPostsHandler 分类页面内的文章管理
type CategoryPostsHandler struct {
	categoryPostSvc service.CategoryPostService
}

func NewCategoryPostsHandler(categoryPostSvc service.CategoryPostService) *CategoryPostsHandler {
	return &CategoryPostsHandler{
		categoryPostSvc: categoryPostSvc,
	}
}

func (s *CategoryPostsHandler) ListPosts(c *gin.Context) {
	categoryID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var query dto.ListQuery
	if err = bindListQuery(c, &query, &query); err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.categoryPostSvc.ListPosts(c.Request.Context(), categoryID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *CategoryPostsHandler) CreatePost(c *gin.Context) {
	categoryID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.RelationPostDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.categoryPostSvc.CreatePost(c.Request.Context(), categoryID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *CategoryPostsHandler) UpdatePost(c *gin.Context) {
	categoryID, postID, err := categoryPostIDs(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.RelationPostDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.categoryPostSvc.UpdatePost(c.Request.Context(), categoryID, postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *CategoryPostsHandler) SetPublished(c *gin.Context) {
	categoryID, postID, err := categoryPostIDs(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PublishedDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = validate(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.categoryPostSvc.SetPublished(c.Request.Context(), categoryID, postID, *req.Published); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CategoryPostsHandler) DeletePost(c *gin.Context) {
	categoryID, postID, err := categoryPostIDs(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.categoryPostSvc.DeletePost(c.Request.Context(), categoryID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CategoryPostsHandler) BulkDeletePosts(c *gin.Context) {
	categoryID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.IDsDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = validate(&req); err != nil {
		response.Error(c, err)
		return
	}

	affected, err := s.categoryPostSvc.BulkDeletePosts(c.Request.Context(), categoryID, req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BulkResultDTO{Affected: affected})
}

func categoryPostIDs(c *gin.Context) (uint64, uint64, error) {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}
	postID, err := pathID(c, "post_id")
	if err != nil {
		return 0, 0, err
	}
	return categoryID, postID, nil
}
