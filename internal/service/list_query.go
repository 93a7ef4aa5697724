package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/consts"
	"Folio/internal/pkg/util"
	"Folio/internal/repository"
	"Folio/internal/resource"
	"strings"
)

// listParams 按列表配置校验后的通用查询参数
type listParams struct {
	pager         util.Pager
	sort          string
	desc          bool
	search        string
	searchColumns []string
	columns       map[string]string
	trashed       string
}

// resolveListQuery 排序与搜索只允许列表配置中声明的列
func resolveListQuery(table resource.Table, q *dto.ListQuery) (*listParams, error) {
	p := &listParams{
		pager:   util.NewPager(q.Page, q.PageSize),
		search:  strings.TrimSpace(q.Search),
		columns: make(map[string]string, len(q.Columns)),
		trashed: consts.TrashedWithout,
	}

	if q.Sort != "" {
		if !table.CanSort(q.Sort) {
			return nil, ErrColumnNotAllowed
		}
		p.sort = q.Sort
		p.desc = strings.EqualFold(q.Direction, "desc")
	} else {
		p.sort = table.DefaultSort
		p.desc = strings.EqualFold(table.DefaultDir, "desc")
		if q.Direction != "" {
			p.desc = strings.EqualFold(q.Direction, "desc")
		}
	}

	for name, term := range q.Columns {
		if strings.TrimSpace(term) == "" {
			continue
		}
		if !table.CanSearch(name) {
			return nil, ErrColumnNotAllowed
		}
		p.columns[name] = term
	}

	if p.search != "" {
		p.searchColumns = table.GlobalColumns()
	}

	switch q.Trashed {
	case consts.TrashedWith, consts.TrashedOnly:
		p.trashed = q.Trashed
	}
	return p, nil
}

func (p *listParams) postFilter() *repository.PostFilter {
	return &repository.PostFilter{
		Search:        p.search,
		SearchColumns: p.searchColumns,
		Columns:       p.columns,
		Trashed:       p.trashed,
		Sort:          p.sort,
		Desc:          p.desc,
		Offset:        p.pager.Offset(),
		Limit:         p.pager.Size,
	}
}

func (p *listParams) categoryFilter() *repository.CategoryFilter {
	return &repository.CategoryFilter{
		Search:  p.search,
		Columns: p.columns,
		Trashed: p.trashed,
		Sort:    p.sort,
		Desc:    p.desc,
		Offset:  p.pager.Offset(),
		Limit:   p.pager.Size,
	}
}
