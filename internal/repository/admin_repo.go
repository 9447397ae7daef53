package repository

import (
	"github.com/restaurantcms/backend/internal/model"
	"gorm.io/gorm"
)

type administratorRepository struct {
	db *gorm.DB
}

func NewAdministratorRepository(db *gorm.DB) AdministratorRepository {
	return &administratorRepository{db: db}
}

func (r *administratorRepository) List() ([]model.Administrator, error) {
	var admins []model.Administrator
	if err := r.db.Order("id").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *administratorRepository) Get(id uint) (*model.Administrator, error) {
	var admin model.Administrator
	if err := r.db.First(&admin, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &admin, nil
}

func (r *administratorRepository) GetByEmail(email string) (*model.Administrator, error) {
	var admin model.Administrator
	if err := r.db.First(&admin, "email = ?", email).Error; err != nil {
		return nil, translateError(err)
	}
	return &admin, nil
}

func (r *administratorRepository) Create(admin *model.Administrator) error {
	return r.db.Create(admin).Error
}

func (r *administratorRepository) Save(admin *model.Administrator) error {
	return r.db.Save(admin).Error
}

func (r *administratorRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var admin model.Administrator
		if err := tx.First(&admin, id).Error; err != nil {
			return translateError(err)
		}
		if err := tx.Where("administrator_id = ?", id).Delete(&model.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Administrator{}, id).Error
	})
}
