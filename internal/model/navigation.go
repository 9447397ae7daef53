package model

import (
	"time"
)

// 导航链接类型
const (
	LinkTypeInternal = "internal"
	LinkTypeExternal = "external"
	LinkTypeAnchor   = "anchor"
)

// ValidLinkTypes 所有合法的链接类型
var ValidLinkTypes = []string{LinkTypeInternal, LinkTypeExternal, LinkTypeAnchor}

// Navigation 导航节点，NavigationID 为可空的父节点自引用
type Navigation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	URL          string    `json:"url" gorm:"size:500"`
	LinkType     string    `json:"link_type" gorm:"size:20;default:internal"` // internal, external, anchor
	Position     int       `json:"position" gorm:"default:0;index"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	NavigationID *uint     `json:"navigation_id" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CreatedBy    *uint     `json:"created_by"`
	UpdatedBy    *uint     `json:"updated_by"`

	Parent *Navigation `json:"-" gorm:"foreignKey:NavigationID"`
}

// TableName 指定表名
func (Navigation) TableName() string {
	return "navigation"
}

// IsValidLinkType 检查链接类型是否合法
func IsValidLinkType(linkType string) bool {
	for _, t := range ValidLinkTypes {
		if t == linkType {
			return true
		}
	}
	return false
}

// NavigationNode 带子节点的导航树节点，供渲染使用
type NavigationNode struct {
	Navigation
	Level    int              `json:"level"`
	Children []NavigationNode `json:"children"`
}
