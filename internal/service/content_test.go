package service

import (
	"context"
	"errors"
	"testing"

	"github.com/restaurantcms/backend/internal/eventbus"
	"github.com/restaurantcms/backend/internal/model"
	"github.com/restaurantcms/backend/internal/repository"
	"gorm.io/gorm"
)

func newContentService(t *testing.T) (*ContentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	currencyRepo := repository.NewCurrencyRepository(db)
	if err := currencyRepo.Create(&model.Currency{Code: "PLN", Symbol: "zł"}); err != nil {
		t.Fatalf("seed currency error: %v", err)
	}
	svc := NewContentService(repository.NewContentRepository(db), currencyRepo, eventbus.NewBus())
	return svc, db
}

func TestContentServiceValidation(t *testing.T) {
	svc, _ := newContentService(t)
	ctx := context.Background()

	if _, err := svc.CreateChef(ctx, &ChefRequest{Name: "Marco"}, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for missing surname, got %v", err)
	}
	if _, err := svc.CreateMenuItem(ctx, &MenuItemRequest{Name: "Zurek", Price: 0, CurrencyID: 1}, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for zero price, got %v", err)
	}
	if _, err := svc.CreateMenuItem(ctx, &MenuItemRequest{Name: "Zurek", Price: 18, CurrencyID: 42}, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for unknown currency, got %v", err)
	}
	if _, err := svc.CreatePageItem(ctx, &PageItemRequest{Title: " "}, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for empty title, got %v", err)
	}
}

func TestContentServiceListAllGloballyOrdered(t *testing.T) {
	svc, _ := newContentService(t)
	ctx := context.Background()

	// 三种类型交错，position 有并列；断言产出跨类型全局有序
	if _, err := svc.CreateChef(ctx, &ChefRequest{Name: "Marco", Surname: "White", Position: 3, IsActive: true}, nil); err != nil {
		t.Fatalf("CreateChef error: %v", err)
	}
	if _, err := svc.CreateMenuItem(ctx, &MenuItemRequest{Name: "Zurek", Price: 18, CurrencyID: 1, Position: 1, IsActive: true}, nil); err != nil {
		t.Fatalf("CreateMenuItem error: %v", err)
	}
	if _, err := svc.CreatePageItem(ctx, &PageItemRequest{Title: "About", Position: 3, IsActive: true}, nil); err != nil {
		t.Fatalf("CreatePageItem error: %v", err)
	}
	if _, err := svc.CreateChef(ctx, &ChefRequest{Name: "Anna", Surname: "Rossi", Position: 2, IsActive: false}, nil); err != nil {
		t.Fatalf("CreateChef error: %v", err)
	}

	items, err := svc.ListAll(ctx, false)
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		prev, curr := items[i-1], items[i]
		if prev.Position > curr.Position || (prev.Position == curr.Position && prev.ID > curr.ID) {
			t.Fatalf("feed not globally ordered at index %d: (%d,%d) before (%d,%d)",
				i, prev.Position, prev.ID, curr.Position, curr.ID)
		}
	}

	// 每个条目恰好携带一个与标签匹配的变体
	for _, item := range items {
		variants := 0
		if item.Chef != nil {
			variants++
			if item.ItemType != model.ItemTypeChef {
				t.Fatalf("variant/tag mismatch: %+v", item)
			}
		}
		if item.MenuItem != nil {
			variants++
			if item.ItemType != model.ItemTypeMenuItem {
				t.Fatalf("variant/tag mismatch: %+v", item)
			}
		}
		if item.PageItem != nil {
			variants++
			if item.ItemType != model.ItemTypePageItem {
				t.Fatalf("variant/tag mismatch: %+v", item)
			}
		}
		if variants != 1 {
			t.Fatalf("expected exactly one variant, got %d: %+v", variants, item)
		}
	}

	activeItems, err := svc.ListAll(ctx, true)
	if err != nil {
		t.Fatalf("ListAll(activeOnly) error: %v", err)
	}
	if len(activeItems) != 3 {
		t.Fatalf("expected 3 active items, got %d", len(activeItems))
	}
}

func TestContentServiceProjection(t *testing.T) {
	svc, _ := newContentService(t)
	ctx := context.Background()

	chef, err := svc.CreateChef(ctx, &ChefRequest{Name: "Marco", Surname: "White", Specialization: "Pastry", IsActive: true}, nil)
	if err != nil {
		t.Fatalf("CreateChef error: %v", err)
	}
	if chef.DisplayName != "Marco White" || chef.InfoLabel != "Pastry" {
		t.Fatalf("unexpected chef projection: %+v", chef)
	}

	menuItem, err := svc.CreateMenuItem(ctx, &MenuItemRequest{Name: "Zurek", Price: 18.5, CurrencyID: 1, IsActive: true}, nil)
	if err != nil {
		t.Fatalf("CreateMenuItem error: %v", err)
	}
	if menuItem.DisplayName != "Zurek" || menuItem.InfoLabel != "18.50 PLN" {
		t.Fatalf("unexpected menu item projection: %+v", menuItem)
	}
}

func TestContentServiceListAllSkipsOrphanEnvelope(t *testing.T) {
	svc, db := newContentService(t)
	ctx := context.Background()

	if _, err := svc.CreateChef(ctx, &ChefRequest{Name: "Marco", Surname: "White", IsActive: true}, nil); err != nil {
		t.Fatalf("CreateChef error: %v", err)
	}
	// 直接制造一个没有明细的孤儿信封
	if err := db.Create(&model.PageContent{ItemType: model.ItemTypeChef, IsActive: true}).Error; err != nil {
		t.Fatalf("seed orphan error: %v", err)
	}

	items, err := svc.ListAll(ctx, false)
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected orphan to be skipped, got %d items", len(items))
	}
}

func TestContentServiceUpdateSettings(t *testing.T) {
	svc, _ := newContentService(t)
	ctx := context.Background()

	item, err := svc.CreateChef(ctx, &ChefRequest{Name: "Marco", Surname: "White", Position: 9, IsActive: true}, nil)
	if err != nil {
		t.Fatalf("CreateChef error: %v", err)
	}

	if err := svc.UpdateSettings(ctx, item.ID, 1, false, nil); err != nil {
		t.Fatalf("UpdateSettings error: %v", err)
	}

	items, err := svc.ListAll(ctx, false)
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if items[0].Position != 1 || items[0].IsActive {
		t.Fatalf("settings not applied: %+v", items[0])
	}
	// 明细字段原样保留
	if items[0].Chef == nil || items[0].Chef.Name != "Marco" {
		t.Fatalf("detail payload changed: %+v", items[0])
	}

	if err := svc.UpdateSettings(ctx, 4242, 1, true, nil); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentServiceUpdateWrongVariant(t *testing.T) {
	svc, _ := newContentService(t)
	ctx := context.Background()

	item, err := svc.CreateChef(ctx, &ChefRequest{Name: "Marco", Surname: "White", IsActive: true}, nil)
	if err != nil {
		t.Fatalf("CreateChef error: %v", err)
	}

	// 用菜品接口更新厨师条目，按不存在处理
	if _, err := svc.UpdateMenuItem(ctx, item.ID, &MenuItemRequest{Name: "Zurek", Price: 18, CurrencyID: 1}, nil); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentServiceDelete(t *testing.T) {
	svc, db := newContentService(t)
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, &MenuItemRequest{Name: "Zurek", Price: 18, CurrencyID: 1, IsActive: true}, nil)
	if err != nil {
		t.Fatalf("CreateMenuItem error: %v", err)
	}

	if err := svc.Delete(ctx, item.ID, nil); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	var count int64
	if err := db.Model(&model.MenuItem{}).Where("id = ?", item.ID).Count(&count).Error; err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count != 0 {
		t.Fatalf("detail row survived deletion")
	}

	if err := svc.Delete(ctx, item.ID, nil); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
