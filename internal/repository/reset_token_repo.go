package repository

import (
	"github.com/restaurantcms/backend/internal/model"
	"gorm.io/gorm"
)

type resetTokenRepository struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Create 写入新令牌，同一个管理员之前未使用的令牌一并作废，
// 保证任意时刻最多只有一个可用令牌
func (r *resetTokenRepository) Create(token *model.PasswordResetToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PasswordResetToken{}).
			Where("administrator_id = ? AND used = ?", token.AdministratorID, false).
			Update("used", true).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

func (r *resetTokenRepository) GetByToken(token string) (*model.PasswordResetToken, error) {
	var row model.PasswordResetToken
	if err := r.db.First(&row, "token = ?", token).Error; err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// Consume 核销令牌并写入新密码哈希。
// 条件更新 used=false -> used=true 是原子的判定点：并发请求争抢同一个令牌时
// 只有一个请求能改到行，落败方拿到 ErrNotFound，令牌绝不会被使用两次。
func (r *resetTokenRepository) Consume(tokenID uint, administratorID uint, passwordHash string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.PasswordResetToken{}).
			Where("id = ? AND used = ?", tokenID, false).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Model(&model.Administrator{}).
			Where("id = ?", administratorID).
			Update("password", passwordHash).Error
	})
}
