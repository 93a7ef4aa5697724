package resource

// All 全部资源
func All() []*Resource {
	return []*Resource{PostResource(), CategoryResource()}
}

// Lookup 按名称查找资源
func Lookup(name string) (*Resource, bool) {
	for _, r := range All() {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// LookupRelation 查找资源下的关联管理器
func LookupRelation(resourceName, relationName string) (*Relation, bool) {
	r, ok := Lookup(resourceName)
	if !ok {
		return nil, false
	}
	for _, rel := range r.Relations {
		if rel.Name == relationName {
			return rel, true
		}
	}
	return nil, false
}
