package resource

import (
	"Folio/internal/api/dto"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rulesOf 读取请求结构体 validate 标签中 dive 之前的规则
func rulesOf(t *testing.T, v any) map[string]map[string]string {
	t.Helper()
	res := make(map[string]map[string]string)
	typ := reflect.TypeOf(v)
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		rules := make(map[string]string)
		for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
			if rule == "dive" {
				break
			}
			if rule == "" {
				continue
			}
			kv := strings.SplitN(rule, "=", 2)
			if len(kv) == 2 {
				rules[kv[0]] = kv[1]
			} else {
				rules[kv[0]] = ""
			}
		}
		res[name] = rules
	}
	return res
}

func assertFormMatches(t *testing.T, form Form, v any) {
	t.Helper()
	rules := rulesOf(t, v)
	fields := form.Fields()
	require.Len(t, fields, len(rules))

	for _, field := range fields {
		r, ok := rules[field.Name]
		require.True(t, ok, "form field %s has no request field", field.Name)

		_, notEmpty := r["notempty"]
		_, required := r["required"]
		_, selected := r["selected"]
		assert.Equal(t, field.Required, notEmpty || required || selected, field.Name)

		if field.MinLength > 0 {
			assert.Equal(t, strconv.Itoa(field.MinLength), r["min"], field.Name)
		}
		if field.MaxLength > 0 {
			assert.Equal(t, strconv.Itoa(field.MaxLength), r["max"], field.Name)
		}
	}
}

func TestFormsMatchRequestRules(t *testing.T) {
	assertFormMatches(t, PostForm(), dto.PostFormDTO{})
	assertFormMatches(t, CategoryPostsForm(), dto.RelationPostDTO{})
	assertFormMatches(t, CategoryForm(), dto.CategoryFormDTO{})
}

func TestPostFormLayout(t *testing.T) {
	form := PostForm()
	assert.Equal(t, Columns{Default: 1, MD: 3, LG: 3, XL: 3}, form.Columns)
	require.Len(t, form.Components, 2)

	details := form.Components[0].Section
	require.NotNil(t, details)
	assert.Equal(t, 2, details.Columns)
	assert.Equal(t, 2, details.ColumnSpan)
	assert.True(t, details.Collapsible)

	side := form.Components[1].Group
	require.NotNil(t, side)
	require.Len(t, side.Sections, 3)
	assert.Equal(t, []string{"Image", "Meta", "Authors"}, []string{side.Sections[0].Title, side.Sections[1].Title, side.Sections[2].Title})

	authors, ok := form.Field("authors")
	require.True(t, ok)
	assert.True(t, authors.Multiple)
	assert.Equal(t, "name", authors.Relationship.TitleAttribute)

	slug, ok := form.Field("slug")
	require.True(t, ok)
	assert.True(t, slug.Unique)

	thumb, ok := form.Field("thumbnail")
	require.True(t, ok)
	assert.Equal(t, "public", thumb.Disk)
	assert.Equal(t, "thumbnails", thumb.Directory)
}

func TestCategoryPostsFormOmitsParentFields(t *testing.T) {
	form := CategoryPostsForm()
	_, ok := form.Field("category_id")
	assert.False(t, ok)
	_, ok = form.Field("authors")
	assert.False(t, ok)

	details := form.Components[0].Section
	require.NotNil(t, details)
	assert.Equal(t, "Fill in the details below to create a new post.", details.Description)
}

func TestPostTable(t *testing.T) {
	table := PostTable()

	assert.True(t, table.CanSort("category.name"))
	assert.True(t, table.CanSearch("category.name"))
	assert.False(t, table.CanSort("tags"))
	assert.False(t, table.CanSort("thumbnail"))
	assert.False(t, table.CanSearch("id"))
	assert.False(t, table.CanSearch("unknown"))

	assert.Equal(t, []string{"id", "title", "slug", "category.name", "tags", "created_at"}, table.GlobalColumns())

	hidden := map[string]bool{}
	for _, c := range table.Columns {
		assert.True(t, c.Toggleable, c.Name)
		hidden[c.Name] = c.HiddenByDefault
	}
	assert.True(t, hidden["id"])
	assert.True(t, hidden["slug"])
	assert.False(t, hidden["title"])

	assert.True(t, table.Actions.Grouped)
	assert.True(t, table.Actions.BeforeColumns)
	assert.True(t, table.HasAction(ActionRestore))
	assert.Equal(t, "created_at", table.DefaultSort)
	assert.Equal(t, "desc", table.DefaultDir)
}

func TestCategoryPostsTable(t *testing.T) {
	table := CategoryPostsTable()
	assert.Empty(t, table.Filters)
	// published 只支持列搜索
	assert.Equal(t, []string{"title", "slug"}, table.GlobalColumns())
	for _, name := range []string{"title", "slug", "published"} {
		assert.True(t, table.CanSearch(name), name)
	}
	assert.False(t, table.HasAction(ActionView))
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("posts")
	require.True(t, ok)
	assert.Equal(t, "Posts", r.PluralLabel)

	_, ok = Lookup("users")
	assert.False(t, ok)

	rel, ok := LookupRelation("categories", "posts")
	require.True(t, ok)
	assert.Equal(t, "title", rel.RecordTitle)

	_, ok = LookupRelation("posts", "posts")
	assert.False(t, ok)
}
