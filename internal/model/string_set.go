package model

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// StringSet 以 JSON 数组存储的去重字符串集合，兼容历史上的纯字符串数据
type StringSet []string

// NewStringSet 去除空白与重复项，保留首次出现的顺序
func NewStringSet(values []string) StringSet {
	seen := make(map[string]struct{}, len(values))
	set := make(StringSet, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		set = append(set, v)
	}
	return set
}

func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringSet) Scan(value interface{}) error {
	if s == nil {
		return fmt.Errorf("model.StringSet: Scan on nil pointer")
	}

	var raw string
	switch v := value.(type) {
	case nil:
		*s = StringSet{}
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("model.StringSet: unsupported Scan type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		*s = StringSet{}
		return nil
	}

	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		*s = NewStringSet(arr)
		return nil
	}

	var single string
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		*s = NewStringSet([]string{single})
		return nil
	}

	*s = NewStringSet([]string{raw})
	return nil
}
