package repository

import (
	"github.com/restaurantcms/backend/internal/model"
	"gorm.io/gorm"
)

type currencyRepository struct {
	db *gorm.DB
}

func NewCurrencyRepository(db *gorm.DB) CurrencyRepository {
	return &currencyRepository{db: db}
}

func (r *currencyRepository) List() ([]model.Currency, error) {
	var currencies []model.Currency
	if err := r.db.Order("id").Find(&currencies).Error; err != nil {
		return nil, err
	}
	return currencies, nil
}

func (r *currencyRepository) Get(id uint) (*model.Currency, error) {
	var currency model.Currency
	if err := r.db.First(&currency, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &currency, nil
}

func (r *currencyRepository) Create(currency *model.Currency) error {
	return r.db.Create(currency).Error
}

func (r *currencyRepository) Save(currency *model.Currency) error {
	return r.db.Save(currency).Error
}

func (r *currencyRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Currency{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type contactTypeRepository struct {
	db *gorm.DB
}

func NewContactTypeRepository(db *gorm.DB) ContactTypeRepository {
	return &contactTypeRepository{db: db}
}

func (r *contactTypeRepository) List() ([]model.ContactType, error) {
	var types []model.ContactType
	if err := r.db.Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *contactTypeRepository) Get(id uint) (*model.ContactType, error) {
	var contactType model.ContactType
	if err := r.db.First(&contactType, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &contactType, nil
}

func (r *contactTypeRepository) Create(contactType *model.ContactType) error {
	return r.db.Create(contactType).Error
}

func (r *contactTypeRepository) Save(contactType *model.ContactType) error {
	return r.db.Save(contactType).Error
}

func (r *contactTypeRepository) Delete(id uint) error {
	res := r.db.Delete(&model.ContactType{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type configurationRepository struct {
	db *gorm.DB
}

func NewConfigurationRepository(db *gorm.DB) ConfigurationRepository {
	return &configurationRepository{db: db}
}

func (r *configurationRepository) List() ([]model.Configuration, error) {
	var entries []model.Configuration
	if err := r.db.Order("config_key").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *configurationRepository) Get(key string) (*model.Configuration, error) {
	var entry model.Configuration
	if err := r.db.First(&entry, "config_key = ?", key).Error; err != nil {
		return nil, translateError(err)
	}
	return &entry, nil
}

func (r *configurationRepository) Set(entry *model.Configuration) error {
	return r.db.Save(entry).Error
}

func (r *configurationRepository) Delete(key string) error {
	res := r.db.Delete(&model.Configuration{}, "config_key = ?", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
