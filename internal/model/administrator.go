package model

import (
	"time"
)

// Administrator 后台管理员账号
type Administrator struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Surname   string    `json:"surname" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"size:500;not null"` // argon2id hash，永不下发
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Administrator) TableName() string {
	return "administrator"
}

// PasswordResetToken 密码重置令牌，一次性，使用或过期后失效
type PasswordResetToken struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	AdministratorID uint      `json:"administrator_id" gorm:"index;not null"`
	Token           string    `json:"-" gorm:"size:128;uniqueIndex;not null"`
	ExpiresAt       time.Time `json:"expires_at" gorm:"not null"`
	Used            bool      `json:"used" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`

	Administrator Administrator `json:"-" gorm:"foreignKey:AdministratorID;constraint:OnDelete:CASCADE"`
}

// TableName 指定表名
func (PasswordResetToken) TableName() string {
	return "password_reset_token"
}
