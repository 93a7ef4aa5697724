package model

import "time"

type Author struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;index:idx_authors_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Author) TableName() string {
	return "authors"
}

// PostAuthor 文章与作者的关联表
type PostAuthor struct {
	PostID   uint64 `gorm:"primaryKey;autoIncrement:false"`
	AuthorID uint64 `gorm:"primaryKey;autoIncrement:false;index:idx_post_authors_author_id"`
}

func (PostAuthor) TableName() string {
	return "post_authors"
}
