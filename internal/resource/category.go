package resource

// CategoryForm 分类表单
func CategoryForm() Form {
	return Form{
		Columns: ResponsiveColumns(),
		Components: []Component{
			{Section: &Section{
				Title:      "Category",
				Columns:    1,
				ColumnSpan: 3,
				Fields: []Field{
					{Name: "name", Label: "Name", Kind: FieldText, Required: true, MaxLength: 255},
				},
			}},
		},
	}
}

// CategoryTable 分类列表
func CategoryTable() Table {
	return Table{
		Columns: []Column{
			{Name: "id", Label: "ID", Render: RenderNumber, Sortable: true, Toggleable: true, HiddenByDefault: true},
			{Name: "name", Label: "Name", Render: RenderText, Sortable: true, Searchable: Searchable{Individual: true, Global: true}, Toggleable: true},
			{Name: "posts_count", Label: "Posts", Render: RenderNumber, Sortable: true, Toggleable: true},
			{Name: "created_at", Label: "Created At", Render: RenderDatetime, Sortable: true, Toggleable: true, Format: "d/m/Y H:i"},
			{Name: "updated_at", Label: "Updated At", Render: RenderDatetime, Sortable: true, Toggleable: true, HiddenByDefault: true, Format: "d/m/Y H:i"},
		},
		Filters: []Filter{trashedFilter()},
		Actions: Actions{
			Header: []string{ActionCreate},
			Record: []string{ActionEdit, ActionDelete, ActionRestore},
			Bulk:   []string{ActionDelete},
		},
		DefaultSort: "name",
		DefaultDir:  "asc",
	}
}

// CategoryPostsForm 分类下文章表单，不含分类与作者
func CategoryPostsForm() Form {
	return Form{
		Columns: ResponsiveColumns(),
		Components: []Component{
			{Section: &Section{
				Title:       "Create a Post",
				Description: "Fill in the details below to create a new post.",
				Collapsible: true,
				Columns:     2,
				ColumnSpan:  2,
				Fields:      []Field{titleField(), slugField(), colorField(), contentField()},
			}},
			{Group: &Group{Sections: []Section{
				imageSection(),
				{Title: "Meta", Columns: 1, ColumnSpan: 1, Fields: metaFields()},
			}}},
		},
	}
}

// CategoryPostsTable 分类下文章列表，无筛选器
func CategoryPostsTable() Table {
	return Table{
		Columns: []Column{
			{Name: "title", Label: "Title", Render: RenderText, Searchable: Searchable{Individual: true, Global: true}},
			{Name: "slug", Label: "Slug", Render: RenderText, Searchable: Searchable{Individual: true, Global: true}},
			{Name: "published", Label: "Published", Render: RenderCheckbox, Searchable: Searchable{Individual: true}, Editable: true},
		},
		Actions: Actions{
			Header: []string{ActionCreate},
			Record: []string{ActionEdit, ActionDelete},
			Bulk:   []string{ActionDelete},
		},
		DefaultSort: "created_at",
		DefaultDir:  "desc",
	}
}

// CategoryPostsRelation 分类 -> 文章
func CategoryPostsRelation() *Relation {
	return &Relation{
		Name:        "posts",
		Label:       "Posts",
		RecordTitle: "title",
		Form:        CategoryPostsForm(),
		Table:       CategoryPostsTable(),
	}
}

// CategoryResource 分类管理
func CategoryResource() *Resource {
	return &Resource{
		Name:        "categories",
		Label:       "Category",
		PluralLabel: "Categories",
		RecordTitle: "name",
		Form:        CategoryForm(),
		Table:       CategoryTable(),
		Relations:   []*Relation{CategoryPostsRelation()},
	}
}
