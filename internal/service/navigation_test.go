package service

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/restaurantcms/backend/internal/model"
	"github.com/restaurantcms/backend/internal/repository"
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

func uintPtr(v uint) *uint { return &v }

func TestBuildForest(t *testing.T) {
	nodes := []model.Navigation{
		{ID: 1, Title: "A", Position: 1},
		{ID: 2, Title: "B", Position: 1, NavigationID: uintPtr(1)},
		{ID: 3, Title: "C", Position: 2, NavigationID: uintPtr(1)},
	}

	forest := BuildForest(nodes)
	if len(forest) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest))
	}
	root := forest[0]
	if root.Title != "A" || root.Level != 0 {
		t.Fatalf("unexpected root: %+v", root)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}
	if root.Children[0].Title != "B" || root.Children[1].Title != "C" {
		t.Fatalf("unexpected child order: %s, %s", root.Children[0].Title, root.Children[1].Title)
	}
	if root.Children[0].Level != 1 {
		t.Fatalf("unexpected child level: %d", root.Children[0].Level)
	}
}

func TestBuildForestSiblingTieBreaksByID(t *testing.T) {
	nodes := []model.Navigation{
		{ID: 5, Title: "Second", Position: 1},
		{ID: 2, Title: "First", Position: 1},
	}

	forest := BuildForest(nodes)
	if len(forest) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(forest))
	}
	if forest[0].Title != "First" || forest[1].Title != "Second" {
		t.Fatalf("tie not broken by id: %s, %s", forest[0].Title, forest[1].Title)
	}
}

func TestBuildForestTerminatesOnCorruptCycle(t *testing.T) {
	// 持久化数据意外成环时不允许死循环
	nodes := []model.Navigation{
		{ID: 1, Title: "A", NavigationID: uintPtr(2)},
		{ID: 2, Title: "B", NavigationID: uintPtr(1)},
		{ID: 3, Title: "Root"},
	}

	forest := BuildForest(nodes)
	if len(forest) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest))
	}
	if forest[0].Title != "Root" {
		t.Fatalf("unexpected root: %s", forest[0].Title)
	}
}

func TestValidateParentAssignmentRejectsCycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewNavigationService(repository.NewNavigationRepository(db))
	ctx := context.Background()

	nodeA, err := svc.Create(ctx, &NavigationRequest{Title: "A", Position: 1, IsActive: true}, nil)
	if err != nil {
		t.Fatalf("create A error: %v", err)
	}
	nodeB, err := svc.Create(ctx, &NavigationRequest{Title: "B", Position: 1, IsActive: true, NavigationID: &nodeA.ID}, nil)
	if err != nil {
		t.Fatalf("create B error: %v", err)
	}
	nodeC, err := svc.Create(ctx, &NavigationRequest{Title: "C", Position: 2, IsActive: true, NavigationID: &nodeB.ID}, nil)
	if err != nil {
		t.Fatalf("create C error: %v", err)
	}

	// A 挂到后代 C 下面会成环
	if err := svc.ValidateParentAssignment(ctx, nodeA.ID, &nodeC.ID); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// 自己当自己的父节点
	if err := svc.ValidateParentAssignment(ctx, nodeA.ID, &nodeA.ID); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// 不存在的父节点
	missing := uint(999)
	if err := svc.ValidateParentAssignment(ctx, nodeA.ID, &missing); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// 合法指派：B 挂到根级
	if err := svc.ValidateParentAssignment(ctx, nodeB.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNavigationUpdateRejectsCycleAgainstPersistedState(t *testing.T) {
	db := newTestDB(t)
	svc := NewNavigationService(repository.NewNavigationRepository(db))
	ctx := context.Background()

	nodeA, err := svc.Create(ctx, &NavigationRequest{Title: "A", IsActive: true}, nil)
	if err != nil {
		t.Fatalf("create A error: %v", err)
	}
	nodeB, err := svc.Create(ctx, &NavigationRequest{Title: "B", IsActive: true, NavigationID: &nodeA.ID}, nil)
	if err != nil {
		t.Fatalf("create B error: %v", err)
	}

	if _, err := svc.Update(ctx, nodeA.ID, &NavigationRequest{Title: "A", IsActive: true, NavigationID: &nodeB.ID}, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// 被拒绝的修改不应落库
	stored, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, node := range stored {
		if node.ID == nodeA.ID && node.NavigationID != nil {
			t.Fatalf("rejected assignment was persisted")
		}
	}
}

func TestNavigationCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewNavigationService(repository.NewNavigationRepository(db))
	ctx := context.Background()

	if _, err := svc.Create(ctx, &NavigationRequest{Title: "  "}, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for empty title, got %v", err)
	}
	if _, err := svc.Create(ctx, &NavigationRequest{Title: "X", LinkType: "popup"}, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for bad link type, got %v", err)
	}
	missing := uint(404)
	if _, err := svc.Create(ctx, &NavigationRequest{Title: "X", NavigationID: &missing}, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for missing parent, got %v", err)
	}
}
