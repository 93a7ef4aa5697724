package handler

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/response"
	"Folio/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	authorSvc service.AuthorService
}

func NewAuthorHandler(authorSvc service.AuthorService) *AuthorHandler {
	return &AuthorHandler{
		authorSvc: authorSvc,
	}
}

func (s *AuthorHandler) ListAuthors(c *gin.Context) {
	var query dto.AuthorQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	authors, err := s.authorSvc.ListAuthors(c.Request.Context(), query.Search)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, authors)
}

func (s *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.AuthorFormDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	author, err := s.authorSvc.CreateAuthor(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, author)
}
