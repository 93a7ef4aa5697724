package handler

import (
	"Folio/internal/pkg/response"
	"Folio/internal/resource"
	"Folio/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceHandler 向管理界面提供表单与列表配置
type ResourceHandler struct{}

func NewResourceHandler() *ResourceHandler {
	return &ResourceHandler{}
}

func (s *ResourceHandler) ListResources(c *gin.Context) {
	response.Success(c, resource.All())
}

func (s *ResourceHandler) GetResource(c *gin.Context) {
	res, ok := resource.Lookup(c.Param("name"))
	if !ok {
		response.Error(c, service.ErrResourceNotFound)
		return
	}
	response.Success(c, res)
}

func (s *ResourceHandler) GetRelation(c *gin.Context) {
	rel, ok := resource.LookupRelation(c.Param("name"), c.Param("relation"))
	if !ok {
		response.Error(c, service.ErrResourceNotFound)
		return
	}
	response.Success(c, rel)
}
