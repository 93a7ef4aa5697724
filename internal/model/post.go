package model

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

// Post slug 与 deleted_at 组成唯一索引，仅约束未删除的记录
type Post struct {
	ID         uint64                `gorm:"primaryKey"`
	Title      string                `gorm:"type:varchar(50);not null"`
	Slug       string                `gorm:"type:varchar(100);not null;uniqueIndex:idx_posts_slug_deleted_at,priority:1"`
	Color      string                `gorm:"type:varchar(9);not null"`
	Content    string                `gorm:"type:longtext;not null"`
	Thumbnail  string                `gorm:"type:varchar(512);not null"`
	Tags       StringSet             `gorm:"type:text;not null"`
	Published  bool                  `gorm:"not null;default:false;index:idx_posts_published"`
	CategoryID uint64                `gorm:"not null;index:idx_posts_category_id"`
	CreatedAt  time.Time             `gorm:"index:idx_posts_created_at"`
	UpdatedAt  time.Time
	DeletedAt  soft_delete.DeletedAt `gorm:"softDelete:nano;not null;default:0;uniqueIndex:idx_posts_slug_deleted_at,priority:2"`

	// 关联关系
	Category *Category `gorm:"foreignKey:CategoryID;references:ID"`
	Authors  []Author  `gorm:"many2many:post_authors"`
}

func (Post) TableName() string {
	return "posts"
}

// IsDeleted 是否已软删除
func (p *Post) IsDeleted() bool {
	return p.DeletedAt != 0
}
