package model

import (
	"time"
)

// Currency 货币字典
type Currency struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Code      string    `json:"code" gorm:"size:10;uniqueIndex;not null"` // 例如 PLN, EUR
	Symbol    string    `json:"symbol" gorm:"size:10"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Currency) TableName() string {
	return "currency"
}

// ContactType 联系方式类型字典
type ContactType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (ContactType) TableName() string {
	return "contact_type"
}

// Configuration 站点配置键值对
type Configuration struct {
	Key       string    `json:"key" gorm:"column:config_key;primaryKey;size:255"`
	Value     string    `json:"value" gorm:"size:2000"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Configuration) TableName() string {
	return "configuration"
}
