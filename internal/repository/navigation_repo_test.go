package repository

import (
	"errors"
	"testing"

	"github.com/restaurantcms/backend/internal/model"
)

func TestNavigationRepositoryDeletePromotesChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewNavigationRepository(db)

	parent := &model.Navigation{Title: "Menu", LinkType: model.LinkTypeInternal, IsActive: true}
	if err := repo.Create(parent); err != nil {
		t.Fatalf("create parent error: %v", err)
	}
	child := &model.Navigation{Title: "Starters", LinkType: model.LinkTypeInternal, IsActive: true, NavigationID: &parent.ID}
	if err := repo.Create(child); err != nil {
		t.Fatalf("create child error: %v", err)
	}

	if err := repo.Delete(parent.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}

	stored, err := repo.Get(child.ID)
	if err != nil {
		t.Fatalf("load child error: %v", err)
	}
	if stored.NavigationID != nil {
		t.Fatalf("expected child promoted to root, parent=%v", *stored.NavigationID)
	}

	if err := repo.Delete(parent.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNavigationRepositoryListOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewNavigationRepository(db)

	for _, node := range []*model.Navigation{
		{Title: "Contact", Position: 3, LinkType: model.LinkTypeInternal},
		{Title: "Home", Position: 1, LinkType: model.LinkTypeInternal},
		{Title: "Menu", Position: 2, LinkType: model.LinkTypeInternal},
	} {
		if err := repo.Create(node); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}

	nodes, err := repo.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	if nodes[0].Title != "Home" || nodes[1].Title != "Menu" || nodes[2].Title != "Contact" {
		t.Fatalf("unexpected ordering: %s, %s, %s", nodes[0].Title, nodes[1].Title, nodes[2].Title)
	}
}
