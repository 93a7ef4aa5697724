package resource

// 字段类型
const (
	FieldText     = "text"
	FieldMarkdown = "markdown"
	FieldColor    = "color"
	FieldFile     = "file"
	FieldTags     = "tags"
	FieldCheckbox = "checkbox"
	FieldSelect   = "select"
)

// 列渲染方式
const (
	RenderText     = "text"
	RenderImage    = "image"
	RenderColor    = "color"
	RenderCheckbox = "checkbox"
	RenderDatetime = "datetime"
	RenderNumber   = "number"
)

// 筛选器类型
const (
	FilterTernary = "ternary"
	FilterSelect  = "select"
)

// 操作
const (
	ActionCreate  = "create"
	ActionView    = "view"
	ActionEdit    = "edit"
	ActionDelete  = "delete"
	ActionRestore = "restore"
)

// Relationship 表单字段关联的实体及显示属性
type Relationship struct {
	Name           string `json:"name"`
	TitleAttribute string `json:"title_attribute"`
}

// Field 表单字段
type Field struct {
	Name           string        `json:"name"`
	Label          string        `json:"label"`
	Kind           string        `json:"kind"`
	Required       bool          `json:"required"`
	MinLength      int           `json:"min_length,omitempty"`
	MaxLength      int           `json:"max_length,omitempty"`
	Unique         bool          `json:"unique,omitempty"`
	Relationship   *Relationship `json:"relationship,omitempty"`
	Multiple       bool          `json:"multiple,omitempty"`
	Searchable     bool          `json:"searchable,omitempty"`
	Preload        bool          `json:"preload,omitempty"`
	Disk           string        `json:"disk,omitempty"`
	Directory      string        `json:"directory,omitempty"`
	Accept         string        `json:"accept,omitempty"`
	ColumnSpanFull bool          `json:"column_span_full,omitempty"`
	Default        any           `json:"default,omitempty"`
}

// Section 表单分组区块
type Section struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Collapsible bool    `json:"collapsible"`
	Columns     int     `json:"columns"`
	ColumnSpan  int     `json:"column_span"`
	Fields      []Field `json:"fields"`
}

// Group 纵向排列的多个区块，布局上占一列
type Group struct {
	Sections []Section `json:"sections"`
}

// Component 表单顶层组件，Section 与 Group 二选一
type Component struct {
	Section *Section `json:"section,omitempty"`
	Group   *Group   `json:"group,omitempty"`
}

// Columns 不同断点下的列数
type Columns struct {
	Default int `json:"default"`
	MD      int `json:"md"`
	LG      int `json:"lg"`
	XL      int `json:"xl"`
}

// ResponsiveColumns 移动端单列，md 及以上三列
func ResponsiveColumns() Columns {
	return Columns{Default: 1, MD: 3, LG: 3, XL: 3}
}

// Form 表单布局，仅用于展示；校验规则以请求结构体为准
type Form struct {
	Columns    Columns     `json:"columns"`
	Components []Component `json:"components"`
}

// Fields 按出现顺序展开全部字段
func (f Form) Fields() []Field {
	var fields []Field
	for _, c := range f.Components {
		if c.Section != nil {
			fields = append(fields, c.Section.Fields...)
		}
		if c.Group != nil {
			for _, s := range c.Group.Sections {
				fields = append(fields, s.Fields...)
			}
		}
	}
	return fields
}

// Field 查找字段
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields() {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Searchable 列的搜索方式
type Searchable struct {
	Individual bool `json:"individual"`
	Global     bool `json:"global"`
}

// Column 列表列
type Column struct {
	Name            string     `json:"name"`
	Label           string     `json:"label"`
	Render          string     `json:"render"`
	Sortable        bool       `json:"sortable"`
	Searchable      Searchable `json:"searchable"`
	Toggleable      bool       `json:"toggleable"`
	HiddenByDefault bool       `json:"hidden_by_default"`
	Editable        bool       `json:"editable,omitempty"`
	Format          string     `json:"format,omitempty"`
}

// Option 筛选项
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Filter 列表筛选器
type Filter struct {
	Name       string   `json:"name"`
	Label      string   `json:"label"`
	Kind       string   `json:"kind"`
	Multiple   bool     `json:"multiple,omitempty"`
	Preload    bool     `json:"preload,omitempty"`
	OptionsURL string   `json:"options_url,omitempty"`
	Options    []Option `json:"options,omitempty"`
	Default    string   `json:"default,omitempty"`
}

// Actions 可用操作
type Actions struct {
	Header        []string `json:"header"`
	Record        []string `json:"record"`
	Bulk          []string `json:"bulk"`
	Grouped       bool     `json:"grouped"`
	BeforeColumns bool     `json:"before_columns"`
}

// Table 列表配置
type Table struct {
	Columns     []Column `json:"columns"`
	Filters     []Filter `json:"filters"`
	Actions     Actions  `json:"actions"`
	DefaultSort string   `json:"default_sort"`
	DefaultDir  string   `json:"default_direction"`
}

// Column 查找列
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// CanSort 列是否允许排序
func (t Table) CanSort(name string) bool {
	c, ok := t.Column(name)
	return ok && c.Sortable
}

// CanSearch 列是否允许单独搜索
func (t Table) CanSearch(name string) bool {
	c, ok := t.Column(name)
	return ok && c.Searchable.Individual
}

// GlobalColumns 参与全局搜索的列
func (t Table) GlobalColumns() []string {
	var names []string
	for _, c := range t.Columns {
		if c.Searchable.Global {
			names = append(names, c.Name)
		}
	}
	return names
}

// HasAction 是否支持某操作
func (t Table) HasAction(action string) bool {
	for _, list := range [][]string{t.Actions.Header, t.Actions.Record, t.Actions.Bulk} {
		for _, a := range list {
			if a == action {
				return true
			}
		}
	}
	return false
}

// Resource 资源的完整管理配置
type Resource struct {
	Name        string      `json:"name"`
	Label       string      `json:"label"`
	PluralLabel string      `json:"plural_label"`
	RecordTitle string      `json:"record_title"`
	Form        Form        `json:"form"`
	Table       Table       `json:"table"`
	Relations   []*Relation `json:"relations,omitempty"`
}

// Relation 关联管理器，在父记录页面内管理子记录
type Relation struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	RecordTitle string `json:"record_title"`
	Form        Form   `json:"form"`
	Table       Table  `json:"table"`
}
