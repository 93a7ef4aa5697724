package handler

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/util"
	"Folio/internal/service"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径参数中的主键
func pathID(c *gin.Context, name string) (uint64, error) {
	id, ok := util.ParseID(c.Param(name))
	if !ok {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}

// queryBool 可选布尔参数，缺省或空值表示不限
func queryBool(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, ok := util.ParseBool(raw)
	if !ok {
		return nil, service.ErrParamInvalid
	}
	return &v, nil
}

// bindListQuery 绑定列表查询参数，列搜索以 columns[name]=term 传入
func bindListQuery(c *gin.Context, query any, list *dto.ListQuery) error {
	if err := c.ShouldBindQuery(query); err != nil {
		return err
	}
	list.Columns = c.QueryMap("columns")
	return validate(query)
}

// validate 执行结构体标签规则，失败时返回 *service.ValidationError
func validate(v any) error {
	fieldErrors, err := util.ValidateDTO(v)
	if err != nil {
		return err
	}
	return (&service.ValidationError{Errors: fieldErrors}).OrNil()
}
