package dto

// AuthorFormDTO 作者 - 新增
type AuthorFormDTO struct {
	Name string `json:"name" validate:"notempty,max=255"`
}

type AuthorDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type AuthorQuery struct {
	Search string `form:"search" validate:"max=255"`
}
