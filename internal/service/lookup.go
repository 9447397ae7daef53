package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/restaurantcms/backend/internal/model"
	"github.com/restaurantcms/backend/internal/repository"
)

// LookupService 字典表维护：货币、联系方式类型、站点配置
type LookupService struct {
	currencyRepo    repository.CurrencyRepository
	contactTypeRepo repository.ContactTypeRepository
	configRepo      repository.ConfigurationRepository
}

func NewLookupService(currencyRepo repository.CurrencyRepository, contactTypeRepo repository.ContactTypeRepository, configRepo repository.ConfigurationRepository) *LookupService {
	return &LookupService{
		currencyRepo:    currencyRepo,
		contactTypeRepo: contactTypeRepo,
		configRepo:      configRepo,
	}
}

type CurrencyRequest struct {
	Code   string `json:"code" binding:"required"`
	Symbol string `json:"symbol"`
}

func (s *LookupService) ListCurrencies(ctx context.Context) ([]model.Currency, error) {
	return s.currencyRepo.List()
}

func (s *LookupService) CreateCurrency(ctx context.Context, req *CurrencyRequest) (*model.Currency, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, fmt.Errorf("%w: currency code is required", ErrValidation)
	}
	currency := model.Currency{
		Code:   strings.ToUpper(strings.TrimSpace(req.Code)),
		Symbol: req.Symbol,
	}
	if err := s.currencyRepo.Create(&currency); err != nil {
		return nil, fmt.Errorf("创建货币失败: %w", err)
	}
	return &currency, nil
}

func (s *LookupService) UpdateCurrency(ctx context.Context, id uint, req *CurrencyRequest) (*model.Currency, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, fmt.Errorf("%w: currency code is required", ErrValidation)
	}
	currency, err := s.currencyRepo.Get(id)
	if err != nil {
		return nil, err
	}
	currency.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	currency.Symbol = req.Symbol
	if err := s.currencyRepo.Save(currency); err != nil {
		return nil, fmt.Errorf("更新货币失败: %w", err)
	}
	return currency, nil
}

func (s *LookupService) DeleteCurrency(ctx context.Context, id uint) error {
	return s.currencyRepo.Delete(id)
}

type ContactTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *LookupService) ListContactTypes(ctx context.Context) ([]model.ContactType, error) {
	return s.contactTypeRepo.List()
}

func (s *LookupService) CreateContactType(ctx context.Context, req *ContactTypeRequest) (*model.ContactType, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: contact type name is required", ErrValidation)
	}
	contactType := model.ContactType{Name: req.Name}
	if err := s.contactTypeRepo.Create(&contactType); err != nil {
		return nil, fmt.Errorf("创建联系方式类型失败: %w", err)
	}
	return &contactType, nil
}

func (s *LookupService) UpdateContactType(ctx context.Context, id uint, req *ContactTypeRequest) (*model.ContactType, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: contact type name is required", ErrValidation)
	}
	contactType, err := s.contactTypeRepo.Get(id)
	if err != nil {
		return nil, err
	}
	contactType.Name = req.Name
	if err := s.contactTypeRepo.Save(contactType); err != nil {
		return nil, fmt.Errorf("更新联系方式类型失败: %w", err)
	}
	return contactType, nil
}

func (s *LookupService) DeleteContactType(ctx context.Context, id uint) error {
	return s.contactTypeRepo.Delete(id)
}

type ConfigurationRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

func (s *LookupService) ListConfiguration(ctx context.Context) ([]model.Configuration, error) {
	return s.configRepo.List()
}

func (s *LookupService) SetConfiguration(ctx context.Context, req *ConfigurationRequest) (*model.Configuration, error) {
	if strings.TrimSpace(req.Key) == "" {
		return nil, fmt.Errorf("%w: configuration key is required", ErrValidation)
	}
	entry := model.Configuration{Key: req.Key, Value: req.Value}
	if err := s.configRepo.Set(&entry); err != nil {
		return nil, fmt.Errorf("写入配置失败: %w", err)
	}
	return &entry, nil
}

func (s *LookupService) DeleteConfiguration(ctx context.Context, key string) error {
	return s.configRepo.Delete(key)
}
