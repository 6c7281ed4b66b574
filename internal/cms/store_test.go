package cms

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRepo_InsertGetRoundTrip(t *testing.T) {
	repo := NewRepo[Category]()

	c := NewCategory("Books", "Books and educational materials")
	repo.Insert(c)

	got, ok := repo.Get(c.ID)
	if !ok {
		t.Fatalf("inserted category not found")
	}
	if got != c {
		t.Fatalf("round-trip mismatch: got %+v want %+v", got, c)
	}
}

func TestRepo_GetMissing(t *testing.T) {
	repo := NewRepo[Category]()

	if _, ok := repo.Get("nope"); ok {
		t.Fatalf("expected missing id to report ok=false")
	}
}

func TestRepo_InsertOverwritesSameID(t *testing.T) {
	repo := NewRepo[Category]()

	c := NewCategory("Books", "old")
	repo.Insert(c)

	c.Description = "new"
	repo.Insert(c)

	if n := repo.Count(); n != 1 {
		t.Fatalf("count=%d want 1", n)
	}
	got, _ := repo.Get(c.ID)
	if got.Description != "new" {
		t.Fatalf("description=%q, last writer should win", got.Description)
	}
}

func TestRepo_DeleteIsIdempotent(t *testing.T) {
	repo := NewRepo[Category]()

	c := NewCategory("Books", "")
	repo.Insert(c)

	repo.Delete(c.ID)
	repo.Delete(c.ID) // second delete must be a harmless no-op

	if n := repo.Count(); n != 0 {
		t.Fatalf("count=%d want 0", n)
	}
	if _, ok := repo.Get(c.ID); ok {
		t.Fatalf("deleted id still resolves")
	}
}

func TestRepo_UpdateMissingIsNoOp(t *testing.T) {
	repo := NewRepo[Product]()
	repo.Insert(NewProduct("Novel", "", decimal.NewFromFloat(9.99), "c1", 3))

	called := false
	repo.Update("nonexistent-id", func(p *Product) { called = true })

	if called {
		t.Fatalf("mutator ran for a missing id")
	}
	if n := repo.Count(); n != 1 {
		t.Fatalf("count=%d want 1", n)
	}
}

func TestRepo_UpdateMutatesInPlace(t *testing.T) {
	repo := NewRepo[Product]()
	p := NewProduct("Novel", "", decimal.NewFromFloat(9.99), "c1", 3)
	repo.Insert(p)

	repo.Update(p.ID, func(p *Product) {
		p.Update("Novel 2nd ed.", "revised", decimal.NewFromFloat(12.50), 0)
	})

	got, _ := repo.Get(p.ID)
	if got.Name != "Novel 2nd ed." || got.Stock != 0 {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.IsAvailable() {
		t.Fatalf("stock=0 product reported available")
	}
	if got.UpdatedAt.Before(p.UpdatedAt) {
		t.Fatalf("updated_at went backwards")
	}
	if !got.CreatedAt.Equal(p.CreatedAt) {
		t.Fatalf("created_at changed on update")
	}
}

func TestRepo_ListIsSnapshot(t *testing.T) {
	repo := NewRepo[Category]()
	c := NewCategory("Books", "")
	repo.Insert(c)

	snap := repo.List()
	repo.Delete(c.ID)

	if len(snap) != 1 || snap[0].ID != c.ID {
		t.Fatalf("snapshot affected by later delete: %+v", snap)
	}
}

func TestIDUniqueness(t *testing.T) {
	const n = 1000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		c := NewCategory(fmt.Sprintf("c%d", i), "")
		if _, dup := seen[c.ID]; dup {
			t.Fatalf("duplicate id %q after %d creations", c.ID, i)
		}
		seen[c.ID] = struct{}{}
	}
}

func TestSortNewestFirst(t *testing.T) {
	old := Category{ID: "b", Name: "old", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	mid := Category{ID: "c", Name: "mid", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := Category{ID: "a", Name: "new", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	items := []Category{old, newer, mid}
	SortNewestFirst(items)

	if items[0].Name != "new" || items[1].Name != "mid" || items[2].Name != "old" {
		t.Fatalf("wrong order: %v %v %v", items[0].Name, items[1].Name, items[2].Name)
	}
}

func TestSortNewestFirst_TieBreaksByID(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []Category{
		{ID: "z", CreatedAt: at},
		{ID: "a", CreatedAt: at},
		{ID: "m", CreatedAt: at},
	}

	SortNewestFirst(items)

	if items[0].ID != "a" || items[1].ID != "m" || items[2].ID != "z" {
		t.Fatalf("tie-break order wrong: %s %s %s", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestRepo_ConcurrentAccess(t *testing.T) {
	repo := NewRepo[Product]()
	p := NewProduct("Novel", "", decimal.NewFromFloat(9.99), "c1", 100)
	repo.Insert(p)

	const workers = 8
	const rounds = 200

	var wg sync.WaitGroup
	wg.Add(workers * 3)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				repo.Insert(NewProduct("x", "", decimal.Zero, "c1", 1))
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				repo.Update(p.ID, func(p *Product) { p.Stock-- })
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				repo.List()
				repo.Get(p.ID)
				repo.Count()
			}
		}()
	}

	wg.Wait()

	// Each decrement ran under the write lock, so none may be lost.
	got, ok := repo.Get(p.ID)
	if !ok {
		t.Fatalf("product vanished")
	}
	if want := 100 - workers*rounds; got.Stock != want {
		t.Fatalf("stock=%d want %d, lost updates", got.Stock, want)
	}
	if n := repo.Count(); n != 1+workers*rounds {
		t.Fatalf("count=%d want %d", n, 1+workers*rounds)
	}
}

func TestStore_RepositoriesAreIndependent(t *testing.T) {
	store := NewStore()

	cat := NewCategory("Books", "...")
	store.Categories.Insert(cat)

	p := NewProduct("Novel", "...", decimal.NewFromFloat(9.99), cat.ID, 3)
	store.Products.Insert(p)

	if !p.IsAvailable() {
		t.Fatalf("product with stock=3 not available")
	}
	if n := store.Products.Count(); n != 1 {
		t.Fatalf("products count=%d want 1", n)
	}

	// Deleting the category must not cascade to the product.
	store.Categories.Delete(cat.ID)

	if n := store.Products.Count(); n != 1 {
		t.Fatalf("products count=%d after category delete, want 1", n)
	}
	got, ok := store.Products.Get(p.ID)
	if !ok || got.CategoryID != cat.ID {
		t.Fatalf("product changed by category delete: %+v", got)
	}
}
