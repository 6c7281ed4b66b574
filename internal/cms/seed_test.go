package cms

import "testing"

func TestSeed(t *testing.T) {
	store := NewStore()
	Seed(store)

	if n := store.Categories.Count(); n != 3 {
		t.Fatalf("categories=%d want 3", n)
	}
	if n := store.Products.Count(); n != 4 {
		t.Fatalf("products=%d want 4", n)
	}
	if n := store.BlogCategories.Count(); n != 2 {
		t.Fatalf("blog categories=%d want 2", n)
	}
	if n := store.Posts.Count(); n != 3 {
		t.Fatalf("posts=%d want 3", n)
	}

	for _, p := range store.Posts.List() {
		if !p.Published {
			t.Fatalf("seeded post %q is a draft", p.Title)
		}
	}

	for _, p := range store.Products.List() {
		if !p.IsAvailable() {
			t.Fatalf("seeded product %q is out of stock", p.Name)
		}
		if _, ok := store.Categories.Get(p.CategoryID); !ok {
			t.Fatalf("seeded product %q has a dangling category", p.Name)
		}
	}
}

func TestNewStoreIsEmpty(t *testing.T) {
	store := NewStore()

	if store.Categories.Count()+store.Products.Count()+store.BlogCategories.Count()+store.Posts.Count() != 0 {
		t.Fatalf("NewStore is not empty")
	}
}
