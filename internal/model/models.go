package model

import (
	"time"
)

// 内容类型标签
const (
	ItemTypeChef     = "chef"
	ItemTypeMenuItem = "menu_item"
	ItemTypePageItem = "page_item"
)

// ValidItemTypes 所有合法的内容类型
var ValidItemTypes = []string{ItemTypeChef, ItemTypeMenuItem, ItemTypePageItem}

// PageContent 内容公共信封：每个内容条目（厨师/菜品/页面区块）共享同一个 id
type PageContent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ItemType  string    `json:"item_type" gorm:"size:50;index;not null"` // chef, menu_item, page_item
	ImageURL  string    `json:"image_url" gorm:"size:500"`
	Position  int       `json:"position" gorm:"default:0;index"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy *uint     `json:"created_by"`
	UpdatedBy *uint     `json:"updated_by"`
}

// TableName 指定表名
func (PageContent) TableName() string {
	return "page_content"
}

// ChefItem 厨师明细，主键与信封共用同一个 id
type ChefItem struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"size:255;not null"`
	Surname        string `json:"surname" gorm:"size:255;not null"`
	Specialization string `json:"specialization" gorm:"size:255"`
	FacebookURL    string `json:"facebook_url" gorm:"size:500"`
	InstagramURL   string `json:"instagram_url" gorm:"size:500"`
	TwitterURL     string `json:"twitter_url" gorm:"size:500"`

	Content PageContent `json:"-" gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName 指定表名
func (ChefItem) TableName() string {
	return "chef_item"
}

// MenuItem 菜品明细，主键与信封共用同一个 id
type MenuItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"size:1000"`
	Price       float64 `json:"price" gorm:"not null"`
	CurrencyID  uint    `json:"currency_id" gorm:"index"`

	Content PageContent `json:"-" gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName 指定表名
func (MenuItem) TableName() string {
	return "menu_item"
}

// PageItem 页面区块明细，主键与信封共用同一个 id
type PageItem struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"size:2000"`
	ItemType    string `json:"item_type" gorm:"size:50"` // banner, about, gallery ...

	Content PageContent `json:"-" gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName 指定表名
func (PageItem) TableName() string {
	return "page_item"
}

// Page 站点页面
type Page struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Slug      string    `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Page) TableName() string {
	return "page"
}

// PageToContent 页面与内容的多对多关联，复合主键，行存在即关系存在
type PageToContent struct {
	PageID        uint `json:"page_id" gorm:"primaryKey;autoIncrement:false"`
	PageContentID uint `json:"page_content_id" gorm:"primaryKey;autoIncrement:false"`

	Page    Page        `json:"-" gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE"`
	Content PageContent `json:"-" gorm:"foreignKey:PageContentID;constraint:OnDelete:CASCADE"`
}

// TableName 指定表名
func (PageToContent) TableName() string {
	return "page_to_content"
}
