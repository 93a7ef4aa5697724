package handler

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/response"
	"Folio/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	var query dto.PostListQuery
	if err := bindListQuery(c, &query, &query.ListQuery); err != nil {
		response.Error(c, err)
		return
	}
	published, err := queryBool(c, "published")
	if err != nil {
		response.Error(c, err)
		return
	}
	query.Published = published

	page, err := s.postSvc.ListPosts(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *PostHandler) GetFilterOptions(c *gin.Context) {
	options, err := s.postSvc.GetFilterOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, options)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostFormDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PostFormDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) SetPublished(c *gin.Context) {
	id, err := pathID(c, "id")
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

	if err = s.postSvc.SetPublished(c.Request.Context(), id, *req.Published); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.postSvc.DeletePost(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) BulkDeletePosts(c *gin.Context) {
	var req dto.IDsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := validate(&req); err != nil {
		response.Error(c, err)
		return
	}

	affected, err := s.postSvc.BulkDeletePosts(c.Request.Context(), req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BulkResultDTO{Affected: affected})
}

func (s *PostHandler) RestorePost(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.RestorePost(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}
