package resource

import "Folio/internal/pkg/consts"

const (
	titleMinLength = 3
	titleMaxLength = 50
	slugMinLength  = 3
	slugMaxLength  = 100
)

func titleField() Field {
	return Field{Name: "title", Label: "Title", Kind: FieldText, Required: true, MinLength: titleMinLength, MaxLength: titleMaxLength}
}

func slugField() Field {
	return Field{Name: "slug", Label: "Slug", Kind: FieldText, Required: true, MinLength: slugMinLength, MaxLength: slugMaxLength, Unique: true}
}

func colorField() Field {
	return Field{Name: "color", Label: "Color", Kind: FieldColor, Required: true}
}

func contentField() Field {
	return Field{Name: "content", Label: "Content", Kind: FieldMarkdown, Required: true, ColumnSpanFull: true}
}

func imageSection() Section {
	return Section{
		Title:       "Image",
		Collapsible: true,
		Columns:     1,
		ColumnSpan:  1,
		Fields: []Field{
			{Name: "thumbnail", Label: "Thumbnail", Kind: FieldFile, Required: true, Disk: consts.PublicDisk, Directory: consts.ThumbnailDir, Accept: "image/*"},
		},
	}
}

func metaFields() []Field {
	return []Field{
		{Name: "tags", Label: "Tags", Kind: FieldTags, Required: true},
		{Name: "published", Label: "Published", Kind: FieldCheckbox, Default: false},
	}
}

// PostForm 文章表单：左侧两列主区块，右侧为封面、元数据、作者
func PostForm() Form {
	return Form{
		Columns: ResponsiveColumns(),
		Components: []Component{
			{Section: &Section{
				Title:       "Create a Post",
				Description: "Create posts over here.",
				Collapsible: true,
				Columns:     2,
				ColumnSpan:  2,
				Fields: []Field{
					titleField(),
					slugField(),
					{
						Name:         "category_id",
						Label:        "Category",
						Kind:         FieldSelect,
						Required:     true,
						Relationship: &Relationship{Name: "category", TitleAttribute: "name"},
						Searchable:   true,
						Preload:      true,
					},
					colorField(),
					contentField(),
				},
			}},
			{Group: &Group{Sections: []Section{
				imageSection(),
				{Title: "Meta", Columns: 1, ColumnSpan: 1, Fields: metaFields()},
				{Title: "Authors", Collapsible: true, Columns: 1, ColumnSpan: 1, Fields: []Field{
					{
						Name:         "authors",
						Label:        "Co Authors",
						Kind:         FieldSelect,
						Required:     true,
						Relationship: &Relationship{Name: "authors", TitleAttribute: "name"},
						Multiple:     true,
						Searchable:   true,
						Preload:      true,
					},
				}},
			}}},
		},
	}
}

// PostTable 文章列表
func PostTable() Table {
	return Table{
		Columns: []Column{
			{Name: "id", Label: "Post ID", Render: RenderNumber, Sortable: true, Searchable: Searchable{Global: true}, Toggleable: true, HiddenByDefault: true},
			{Name: "thumbnail", Label: "Thumbnail", Render: RenderImage, Toggleable: true},
			{Name: "color", Label: "Color", Render: RenderColor, Toggleable: true, HiddenByDefault: true},
			{Name: "title", Label: "Title", Render: RenderText, Sortable: true, Searchable: Searchable{Individual: true, Global: true}, Toggleable: true},
			{Name: "slug", Label: "Slug", Render: RenderText, Sortable: true, Searchable: Searchable{Individual: true, Global: true}, Toggleable: true, HiddenByDefault: true},
			{Name: "category.name", Label: "Category", Render: RenderText, Sortable: true, Searchable: Searchable{Individual: true, Global: true}, Toggleable: true},
			{Name: "tags", Label: "Tags", Render: RenderText, Searchable: Searchable{Individual: true, Global: true}, Toggleable: true, HiddenByDefault: true},
			{Name: "published", Label: "Published", Render: RenderCheckbox, Sortable: true, Toggleable: true, Editable: true},
			{Name: "created_at", Label: "Published At", Render: RenderDatetime, Sortable: true, Searchable: Searchable{Individual: true, Global: true}, Toggleable: true, Format: "d/m/Y H:i"},
		},
		Filters: []Filter{
			{
				Name:  "published",
				Label: "Published",
				Kind:  FilterTernary,
				Options: []Option{
					{Value: "", Label: "All"},
					{Value: "true", Label: "Yes"},
					{Value: "false", Label: "No"},
				},
			},
			{
				Name:       "category_id",
				Label:      "Category",
				Kind:       FilterSelect,
				Multiple:   true,
				Preload:    true,
				OptionsURL: "/api/admin/posts/filter-options",
			},
			trashedFilter(),
		},
		Actions: Actions{
			Header:        []string{ActionCreate},
			Record:        []string{ActionView, ActionEdit, ActionDelete, ActionRestore},
			Bulk:          []string{ActionDelete},
			Grouped:       true,
			BeforeColumns: true,
		},
		DefaultSort: "created_at",
		DefaultDir:  "desc",
	}
}

func trashedFilter() Filter {
	return Filter{
		Name:  "trashed",
		Label: "Trashed",
		Kind:  FilterSelect,
		Options: []Option{
			{Value: consts.TrashedWithout, Label: "Without trashed"},
			{Value: consts.TrashedWith, Label: "With trashed"},
			{Value: consts.TrashedOnly, Label: "Only trashed"},
		},
		Default: consts.TrashedWithout,
	}
}

// PostResource 文章管理
func PostResource() *Resource {
	return &Resource{
		Name:        "posts",
		Label:       "Post",
		PluralLabel: "Posts",
		RecordTitle: "title",
		Form:        PostForm(),
		Table:       PostTable(),
	}
}
