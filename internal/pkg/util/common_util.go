package util

import (
	"strconv"
	"strings"
)

// ParseBool 宽松解析布尔值，支持 1/0、true/false、yes/no
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	}
	return false, false
}

// ParseID 解析路径中的主键
func ParseID(s string) (uint64, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// UniqueIDs 去除重复与零值，保留首次出现的顺序
func UniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	res := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}

// EscapeLike 转义 LIKE 通配符，配合 ESCAPE '!' 使用
func EscapeLike(s string) string {
	return likeReplacer.Replace(s)
}

var likeReplacer = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
