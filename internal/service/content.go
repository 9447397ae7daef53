package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"k8s.io/klog/v2"

	"github.com/restaurantcms/backend/internal/eventbus"
	"github.com/restaurantcms/backend/internal/model"
	"github.com/restaurantcms/backend/internal/repository"
)

var (
	// ErrValidation 请求字段校验失败
	ErrValidation = errors.New("validation error")
)

// ContentService 内容子系统：共享 id 的信封+明细写入，以及跨类型聚合读取
type ContentService struct {
	contentRepo  repository.ContentRepository
	currencyRepo repository.CurrencyRepository
	bus          *eventbus.Bus
}

func NewContentService(contentRepo repository.ContentRepository, currencyRepo repository.CurrencyRepository, bus *eventbus.Bus) *ContentService {
	return &ContentService{
		contentRepo:  contentRepo,
		currencyRepo: currencyRepo,
		bus:          bus,
	}
}

// ContentListItem 聚合视图里的一条内容：公共投影 + 恰好一个变体明细
type ContentListItem struct {
	ID          uint   `json:"id"`
	ItemType    string `json:"item_type"`
	Position    int    `json:"position"`
	IsActive    bool   `json:"is_active"`
	ImageURL    string `json:"image_url"`
	DisplayName string `json:"display_name"`
	InfoLabel   string `json:"info_label,omitempty"`

	Chef     *model.ChefItem `json:"chef,omitempty"`
	MenuItem *model.MenuItem `json:"menu_item,omitempty"`
	PageItem *model.PageItem `json:"page_item,omitempty"`
}

type ChefRequest struct {
	Name           string `json:"name" binding:"required"`
	Surname        string `json:"surname" binding:"required"`
	Specialization string `json:"specialization"`
	FacebookURL    string `json:"facebook_url"`
	InstagramURL   string `json:"instagram_url"`
	TwitterURL     string `json:"twitter_url"`
	ImageURL       string `json:"image_url"`
	Position       int    `json:"position"`
	IsActive       bool   `json:"is_active"`
}

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	CurrencyID  uint    `json:"currency_id" binding:"required"`
	ImageURL    string  `json:"image_url"`
	Position    int     `json:"position"`
	IsActive    bool    `json:"is_active"`
}

type PageItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ItemType    string `json:"item_type"`
	ImageURL    string `json:"image_url"`
	Position    int    `json:"position"`
	IsActive    bool   `json:"is_active"`
}

func (s *ContentService) validateChef(req *ChefRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: chef name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Surname) == "" {
		return fmt.Errorf("%w: chef surname is required", ErrValidation)
	}
	return nil
}

func (s *ContentService) validateMenuItem(req *MenuItemRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: menu item name is required", ErrValidation)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: menu item price must be positive", ErrValidation)
	}
	if req.CurrencyID == 0 {
		return fmt.Errorf("%w: menu item currency is required", ErrValidation)
	}
	if _, err := s.currencyRepo.Get(req.CurrencyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: unknown currency", ErrValidation)
		}
		return err
	}
	return nil
}

func (s *ContentService) validatePageItem(req *PageItemRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: page item title is required", ErrValidation)
	}
	return nil
}

// CreateChef 创建厨师条目：信封与明细同事务落库，共享同一个 id
func (s *ContentService) CreateChef(ctx context.Context, req *ChefRequest, adminID *uint) (*ContentListItem, error) {
	if err := s.validateChef(req); err != nil {
		return nil, err
	}

	envelope := model.PageContent{
		ImageURL:  req.ImageURL,
		Position:  req.Position,
		IsActive:  req.IsActive,
		CreatedBy: adminID,
		UpdatedBy: adminID,
	}
	detail := model.ChefItem{
		Name:           req.Name,
		Surname:        req.Surname,
		Specialization: req.Specialization,
		FacebookURL:    req.FacebookURL,
		InstagramURL:   req.InstagramURL,
		TwitterURL:     req.TwitterURL,
	}
	if err := s.contentRepo.CreateChef(&envelope, &detail); err != nil {
		return nil, fmt.Errorf("创建厨师条目失败: %w", err)
	}

	s.publish(ctx, eventbus.ContentEventCreated, envelope.ID, envelope.ItemType, adminID)
	return s.buildItem(&envelope, &detail, nil, nil, nil), nil
}

// CreateMenuItem 创建菜品条目
func (s *ContentService) CreateMenuItem(ctx context.Context, req *MenuItemRequest, adminID *uint) (*ContentListItem, error) {
	if err := s.validateMenuItem(req); err != nil {
		return nil, err
	}

	envelope := model.PageContent{
		ImageURL:  req.ImageURL,
		Position:  req.Position,
		IsActive:  req.IsActive,
		CreatedBy: adminID,
		UpdatedBy: adminID,
	}
	detail := model.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CurrencyID:  req.CurrencyID,
	}
	if err := s.contentRepo.CreateMenuItem(&envelope, &detail); err != nil {
		return nil, fmt.Errorf("创建菜品条目失败: %w", err)
	}

	s.publish(ctx, eventbus.ContentEventCreated, envelope.ID, envelope.ItemType, adminID)
	return s.buildItem(&envelope, nil, &detail, nil, s.currencyCodes()), nil
}

// CreatePageItem 创建页面区块条目
func (s *ContentService) CreatePageItem(ctx context.Context, req *PageItemRequest, adminID *uint) (*ContentListItem, error) {
	if err := s.validatePageItem(req); err != nil {
		return nil, err
	}

	envelope := model.PageContent{
		ImageURL:  req.ImageURL,
		Position:  req.Position,
		IsActive:  req.IsActive,
		CreatedBy: adminID,
		UpdatedBy: adminID,
	}
	detail := model.PageItem{
		Title:       req.Title,
		Description: req.Description,
		ItemType:    req.ItemType,
	}
	if err := s.contentRepo.CreatePageItem(&envelope, &detail); err != nil {
		return nil, fmt.Errorf("创建页面区块失败: %w", err)
	}

	s.publish(ctx, eventbus.ContentEventCreated, envelope.ID, envelope.ItemType, adminID)
	return s.buildItem(&envelope, nil, nil, &detail, nil), nil
}

// loadEnvelope 取出指定类型的信封，类型不匹配视同不存在
func (s *ContentService) loadEnvelope(id uint, itemType string) (*model.PageContent, error) {
	envelope, err := s.contentRepo.GetEnvelope(id)
	if err != nil {
		return nil, err
	}
	if envelope.ItemType != itemType {
		return nil, repository.ErrNotFound
	}
	return envelope, nil
}

// UpdateChef 更新厨师条目：两行同事务更新
func (s *ContentService) UpdateChef(ctx context.Context, id uint, req *ChefRequest, adminID *uint) (*ContentListItem, error) {
	if err := s.validateChef(req); err != nil {
		return nil, err
	}

	envelope, err := s.loadEnvelope(id, model.ItemTypeChef)
	if err != nil {
		return nil, err
	}
	detail, err := s.contentRepo.GetChef(id)
	if err != nil {
		return nil, err
	}

	envelope.ImageURL = req.ImageURL
	envelope.Position = req.Position
	envelope.IsActive = req.IsActive
	envelope.UpdatedBy = adminID
	detail.Name = req.Name
	detail.Surname = req.Surname
	detail.Specialization = req.Specialization
	detail.FacebookURL = req.FacebookURL
	detail.InstagramURL = req.InstagramURL
	detail.TwitterURL = req.TwitterURL

	if err := s.contentRepo.UpdateChef(envelope, detail); err != nil {
		return nil, err
	}

	s.publish(ctx, eventbus.ContentEventUpdated, id, envelope.ItemType, adminID)
	return s.buildItem(envelope, detail, nil, nil, nil), nil
}

// UpdateMenuItem 更新菜品条目
func (s *ContentService) UpdateMenuItem(ctx context.Context, id uint, req *MenuItemRequest, adminID *uint) (*ContentListItem, error) {
	if err := s.validateMenuItem(req); err != nil {
		return nil, err
	}

	envelope, err := s.loadEnvelope(id, model.ItemTypeMenuItem)
	if err != nil {
		return nil, err
	}
	detail, err := s.contentRepo.GetMenuItem(id)
	if err != nil {
		return nil, err
	}

	envelope.ImageURL = req.ImageURL
	envelope.Position = req.Position
	envelope.IsActive = req.IsActive
	envelope.UpdatedBy = adminID
	detail.Name = req.Name
	detail.Description = req.Description
	detail.Price = req.Price
	detail.CurrencyID = req.CurrencyID

	if err := s.contentRepo.UpdateMenuItem(envelope, detail); err != nil {
		return nil, err
	}

	s.publish(ctx, eventbus.ContentEventUpdated, id, envelope.ItemType, adminID)
	return s.buildItem(envelope, nil, detail, nil, s.currencyCodes()), nil
}

// UpdatePageItem 更新页面区块条目
func (s *ContentService) UpdatePageItem(ctx context.Context, id uint, req *PageItemRequest, adminID *uint) (*ContentListItem, error) {
	if err := s.validatePageItem(req); err != nil {
		return nil, err
	}

	envelope, err := s.loadEnvelope(id, model.ItemTypePageItem)
	if err != nil {
		return nil, err
	}
	detail, err := s.contentRepo.GetPageItem(id)
	if err != nil {
		return nil, err
	}

	envelope.ImageURL = req.ImageURL
	envelope.Position = req.Position
	envelope.IsActive = req.IsActive
	envelope.UpdatedBy = adminID
	detail.Title = req.Title
	detail.Description = req.Description
	detail.ItemType = req.ItemType

	if err := s.contentRepo.UpdatePageItem(envelope, detail); err != nil {
		return nil, err
	}

	s.publish(ctx, eventbus.ContentEventUpdated, id, envelope.ItemType, adminID)
	return s.buildItem(envelope, nil, nil, detail, nil), nil
}

// UpdateSettings 只调整排序与可见性，不校验明细字段
func (s *ContentService) UpdateSettings(ctx context.Context, id uint, position int, isActive bool, adminID *uint) error {
	if err := s.contentRepo.UpdateSettings(id, position, isActive, adminID); err != nil {
		return err
	}
	s.publish(ctx, eventbus.ContentEventUpdated, id, "", adminID)
	return nil
}

// Delete 删除内容条目，信封、明细、页面关联一起消失
func (s *ContentService) Delete(ctx context.Context, id uint, adminID *uint) error {
	envelope, err := s.contentRepo.GetEnvelope(id)
	if err != nil {
		return err
	}
	if err := s.contentRepo.Delete(id); err != nil {
		return err
	}
	s.publish(ctx, eventbus.ContentEventDeleted, id, envelope.ItemType, adminID)
	return nil
}

// ListAll 跨类型聚合：按信封的 (position, id) 升序产出一条全局有序的内容流，
// 排序在类型之间统一，不是各类型内部排好再拼接
func (s *ContentService) ListAll(ctx context.Context, activeOnly bool) ([]ContentListItem, error) {
	envelopes, err := s.contentRepo.ListEnvelopes(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("读取内容信封失败: %w", err)
	}

	idsByType := make(map[string][]uint)
	for _, envelope := range envelopes {
		idsByType[envelope.ItemType] = append(idsByType[envelope.ItemType], envelope.ID)
	}

	chefs, err := s.contentRepo.ListChefsByIDs(idsByType[model.ItemTypeChef])
	if err != nil {
		return nil, err
	}
	menuItems, err := s.contentRepo.ListMenuItemsByIDs(idsByType[model.ItemTypeMenuItem])
	if err != nil {
		return nil, err
	}
	pageItems, err := s.contentRepo.ListPageItemsByIDs(idsByType[model.ItemTypePageItem])
	if err != nil {
		return nil, err
	}

	chefByID := make(map[uint]*model.ChefItem, len(chefs))
	for i := range chefs {
		chefByID[chefs[i].ID] = &chefs[i]
	}
	menuItemByID := make(map[uint]*model.MenuItem, len(menuItems))
	for i := range menuItems {
		menuItemByID[menuItems[i].ID] = &menuItems[i]
	}
	pageItemByID := make(map[uint]*model.PageItem, len(pageItems))
	for i := range pageItems {
		pageItemByID[pageItems[i].ID] = &pageItems[i]
	}

	currencyCodes := s.currencyCodes()

	items := make([]ContentListItem, 0, len(envelopes))
	for i := range envelopes {
		envelope := &envelopes[i]
		item := s.buildItem(envelope,
			chefByID[envelope.ID],
			menuItemByID[envelope.ID],
			pageItemByID[envelope.ID],
			currencyCodes)
		if item == nil {
			// 信封缺少对应明细，数据已损坏，跳过并告警
			klog.Errorf("内容信封缺少明细行: id=%d, item_type=%s", envelope.ID, envelope.ItemType)
			continue
		}
		items = append(items, *item)
	}

	return items, nil
}

// currencyCodes 货币 id 到代码的映射，菜品的 info label 需要
func (s *ContentService) currencyCodes() map[uint]string {
	currencies, err := s.currencyRepo.List()
	if err != nil {
		klog.V(6).Infof("读取货币字典失败: %v", err)
		return nil
	}
	codes := make(map[uint]string, len(currencies))
	for _, currency := range currencies {
		codes[currency.ID] = currency.Code
	}
	return codes
}

// buildItem 由信封和变体明细组装公共投影，明细与信封类型不符时返回 nil
func (s *ContentService) buildItem(envelope *model.PageContent, chef *model.ChefItem, menuItem *model.MenuItem, pageItem *model.PageItem, currencyCodes map[uint]string) *ContentListItem {
	item := ContentListItem{
		ID:       envelope.ID,
		ItemType: envelope.ItemType,
		Position: envelope.Position,
		IsActive: envelope.IsActive,
		ImageURL: envelope.ImageURL,
	}

	switch envelope.ItemType {
	case model.ItemTypeChef:
		if chef == nil {
			return nil
		}
		item.Chef = chef
		item.DisplayName = chef.Name + " " + chef.Surname
		item.InfoLabel = chef.Specialization
	case model.ItemTypeMenuItem:
		if menuItem == nil {
			return nil
		}
		item.MenuItem = menuItem
		item.DisplayName = menuItem.Name
		if code, ok := currencyCodes[menuItem.CurrencyID]; ok {
			item.InfoLabel = fmt.Sprintf("%.2f %s", menuItem.Price, code)
		} else {
			item.InfoLabel = fmt.Sprintf("%.2f", menuItem.Price)
		}
	case model.ItemTypePageItem:
		if pageItem == nil {
			return nil
		}
		item.PageItem = pageItem
		item.DisplayName = pageItem.Title
		item.InfoLabel = pageItem.ItemType
	default:
		return nil
	}

	return &item
}

func (s *ContentService) publish(ctx context.Context, eventType eventbus.ContentEventType, id uint, itemType string, adminID *uint) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, eventbus.ContentEvent{
		Type:      eventType,
		ContentID: id,
		ItemType:  itemType,
		AdminID:   adminID,
	}); err != nil {
		klog.V(6).Infof("内容事件发布失败: type=%s, id=%d, error=%v", eventType, id, err)
	}
}
