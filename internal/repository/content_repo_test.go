package repository

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/restaurantcms/backend/internal/model"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(
		&model.PageContent{},
		&model.ChefItem{},
		&model.MenuItem{},
		&model.PageItem{},
		&model.Page{},
		&model.PageToContent{},
		&model.Navigation{},
		&model.Administrator{},
		&model.PasswordResetToken{},
		&model.Currency{},
		&model.ContactType{},
		&model.Configuration{},
	); err != nil {
		t.Fatalf("migrate error: %v", err)
	}
	return db
}

func TestContentRepositoryCreateSharesID(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)

	envelope := &model.PageContent{Position: 1, IsActive: true}
	detail := &model.ChefItem{Name: "Marco", Surname: "White"}
	if err := repo.CreateChef(envelope, detail); err != nil {
		t.Fatalf("CreateChef error: %v", err)
	}

	if envelope.ID == 0 {
		t.Fatalf("expected envelope to get a database-assigned id")
	}
	if detail.ID != envelope.ID {
		t.Fatalf("expected detail id %d to equal envelope id %d", detail.ID, envelope.ID)
	}
	if envelope.ItemType != model.ItemTypeChef {
		t.Fatalf("unexpected item type: %s", envelope.ItemType)
	}

	var stored model.ChefItem
	if err := db.First(&stored, envelope.ID).Error; err != nil {
		t.Fatalf("load detail error: %v", err)
	}
	if stored.Name != "Marco" || stored.Surname != "White" {
		t.Fatalf("unexpected detail row: %+v", stored)
	}
}

func TestContentRepositoryListEnvelopesOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)

	// 混合类型交错插入，position 有并列，断言全局 (position, id) 排序
	if err := repo.CreateChef(&model.PageContent{Position: 2, IsActive: true}, &model.ChefItem{Name: "Anna", Surname: "Rossi"}); err != nil {
		t.Fatalf("CreateChef error: %v", err)
	}
	if err := repo.CreateMenuItem(&model.PageContent{Position: 1, IsActive: true}, &model.MenuItem{Name: "Pierogi", Price: 24, CurrencyID: 1}); err != nil {
		t.Fatalf("CreateMenuItem error: %v", err)
	}
	if err := repo.CreatePageItem(&model.PageContent{Position: 2, IsActive: false}, &model.PageItem{Title: "About us"}); err != nil {
		t.Fatalf("CreatePageItem error: %v", err)
	}
	if err := repo.CreateMenuItem(&model.PageContent{Position: 1, IsActive: true}, &model.MenuItem{Name: "Zurek", Price: 18, CurrencyID: 1}); err != nil {
		t.Fatalf("CreateMenuItem error: %v", err)
	}

	envelopes, err := repo.ListEnvelopes(false)
	if err != nil {
		t.Fatalf("ListEnvelopes error: %v", err)
	}
	if len(envelopes) != 4 {
		t.Fatalf("expected 4 envelopes, got %d", len(envelopes))
	}
	for i := 1; i < len(envelopes); i++ {
		prev, curr := envelopes[i-1], envelopes[i]
		if prev.Position > curr.Position {
			t.Fatalf("envelopes not ordered by position: %d before %d", prev.Position, curr.Position)
		}
		if prev.Position == curr.Position && prev.ID > curr.ID {
			t.Fatalf("position tie not broken by id: %d before %d", prev.ID, curr.ID)
		}
	}

	activeOnly, err := repo.ListEnvelopes(true)
	if err != nil {
		t.Fatalf("ListEnvelopes(activeOnly) error: %v", err)
	}
	if len(activeOnly) != 3 {
		t.Fatalf("expected 3 active envelopes, got %d", len(activeOnly))
	}
	for _, envelope := range activeOnly {
		if !envelope.IsActive {
			t.Fatalf("inactive envelope returned: id=%d", envelope.ID)
		}
	}
}

func TestContentRepositoryUpdateMissingRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)

	envelope := &model.PageContent{ID: 99, ItemType: model.ItemTypeChef}
	detail := &model.ChefItem{ID: 99, Name: "Ghost", Surname: "Chef"}
	if err := repo.UpdateChef(envelope, detail); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentRepositoryUpdateSettings(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)

	envelope := &model.PageContent{Position: 5, IsActive: true}
	if err := repo.CreateChef(envelope, &model.ChefItem{Name: "Marco", Surname: "White"}); err != nil {
		t.Fatalf("CreateChef error: %v", err)
	}

	if err := repo.UpdateSettings(envelope.ID, 1, false, nil); err != nil {
		t.Fatalf("UpdateSettings error: %v", err)
	}

	stored, err := repo.GetEnvelope(envelope.ID)
	if err != nil {
		t.Fatalf("GetEnvelope error: %v", err)
	}
	if stored.Position != 1 || stored.IsActive {
		t.Fatalf("settings not applied: %+v", stored)
	}

	// 明细不受影响
	detail, err := repo.GetChef(envelope.ID)
	if err != nil {
		t.Fatalf("GetChef error: %v", err)
	}
	if detail.Name != "Marco" {
		t.Fatalf("detail unexpectedly changed: %+v", detail)
	}

	if err := repo.UpdateSettings(12345, 1, true, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentRepositoryDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)
	pageRepo := NewPageRepository(db)

	envelope := &model.PageContent{Position: 1, IsActive: true}
	if err := repo.CreateMenuItem(envelope, &model.MenuItem{Name: "Zurek", Price: 18, CurrencyID: 1}); err != nil {
		t.Fatalf("CreateMenuItem error: %v", err)
	}

	page := &model.Page{Name: "Menu", Slug: "menu", IsActive: true}
	if err := pageRepo.Create(page); err != nil {
		t.Fatalf("create page error: %v", err)
	}
	if err := pageRepo.SetAssociations(page.ID, []uint{envelope.ID}); err != nil {
		t.Fatalf("SetAssociations error: %v", err)
	}

	if err := repo.Delete(envelope.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	if _, err := repo.GetEnvelope(envelope.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected envelope gone, got %v", err)
	}
	if _, err := repo.GetMenuItem(envelope.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected detail gone, got %v", err)
	}
	var count int64
	if err := db.Model(&model.PageToContent{}).Where("page_content_id = ?", envelope.ID).Count(&count).Error; err != nil {
		t.Fatalf("count associations error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected association rows to be cascaded, found %d", count)
	}

	if err := repo.Delete(envelope.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
