package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/restaurantcms/backend/internal/model"
	"github.com/restaurantcms/backend/internal/repository"
)

// PageService 页面及页面-内容多对多关联
type PageService struct {
	pageRepo repository.PageRepository
}

func NewPageService(pageRepo repository.PageRepository) *PageService {
	return &PageService{pageRepo: pageRepo}
}

type PageRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	IsActive bool   `json:"is_active"`
}

func (s *PageService) validate(req *PageRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: page name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Slug) == "" {
		return fmt.Errorf("%w: page slug is required", ErrValidation)
	}
	return nil
}

func (s *PageService) List(ctx context.Context) ([]model.Page, error) {
	return s.pageRepo.List()
}

func (s *PageService) Get(ctx context.Context, id uint) (*model.Page, error) {
	return s.pageRepo.Get(id)
}

func (s *PageService) GetBySlug(ctx context.Context, slug string) (*model.Page, error) {
	return s.pageRepo.GetBySlug(slug)
}

func (s *PageService) Create(ctx context.Context, req *PageRequest) (*model.Page, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	page := model.Page{
		Name:     req.Name,
		Slug:     req.Slug,
		IsActive: req.IsActive,
	}
	if err := s.pageRepo.Create(&page); err != nil {
		return nil, fmt.Errorf("创建页面失败: %w", err)
	}
	return &page, nil
}

func (s *PageService) Update(ctx context.Context, id uint, req *PageRequest) (*model.Page, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	page, err := s.pageRepo.Get(id)
	if err != nil {
		return nil, err
	}
	page.Name = req.Name
	page.Slug = req.Slug
	page.IsActive = req.IsActive
	if err := s.pageRepo.Save(page); err != nil {
		return nil, fmt.Errorf("更新页面失败: %w", err)
	}
	return page, nil
}

func (s *PageService) Delete(ctx context.Context, id uint) error {
	return s.pageRepo.Delete(id)
}

// GetContentIDs 页面当前关联的内容 id 集合
func (s *PageService) GetContentIDs(ctx context.Context, pageID uint) ([]uint, error) {
	if _, err := s.pageRepo.Get(pageID); err != nil {
		return nil, err
	}
	return s.pageRepo.GetContentIDs(pageID)
}

// SetAssociations 以目标集合覆盖页面的内容关联，幂等：
// 同样的输入重复调用不产生重复行也不报错
func (s *PageService) SetAssociations(ctx context.Context, pageID uint, contentIDs []uint) error {
	return s.pageRepo.SetAssociations(pageID, contentIDs)
}
