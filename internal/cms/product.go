package cms

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products in the shop. The link from a product is
// advisory only: deleting a category leaves its products in place.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCategory(name, description string) Category {
	return Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

func (c Category) Key() string { return c.ID }
func (c Category) Created() time.Time { return c.CreatedAt }

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
	ImageURL    string          `json:"image_url,omitempty"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewProduct builds a product with a fresh id and no image. Price and
// stock are taken as given: a non-positive stock simply makes the product
// unavailable, it is not rejected.
func NewProduct(name, description string, price decimal.Decimal, categoryID string, stock int) Product {
	now := time.Now().UTC()
	return Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Update replaces the editable fields and refreshes the update timestamp.
func (p *Product) Update(name, description string, price decimal.Decimal, stock int) {
	p.Name = name
	p.Description = description
	p.Price = price
	p.Stock = stock
	p.UpdatedAt = time.Now().UTC()
}

func (p Product) IsAvailable() bool { return p.Stock > 0 }
func (p Product) Key() string { return p.ID }
func (p Product) Created() time.Time { return p.CreatedAt }
