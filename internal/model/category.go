package model

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type Category struct {
	ID        uint64                `gorm:"primaryKey"`
	Name      string                `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time             `gorm:"index:idx_categories_created_at"`
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt `gorm:"softDelete:nano;not null;default:0;index:idx_categories_deleted_at"`

	// 关联关系
	Posts []Post `gorm:"foreignKey:CategoryID;references:ID"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryWithCount 列表行，附带未删除文章数
type CategoryWithCount struct {
	Category
	PostsCount int64
}
