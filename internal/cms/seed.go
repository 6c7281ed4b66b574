package cms

import "github.com/shopspring/decimal"

// Seed fills an empty store with demo content: three product categories
// with four products, and two blog categories with three published posts.
// Meant for local runs and tests; production-shaped deployments start
// empty.
func Seed(s *Store) {
	electronics := NewCategory("Electronics", "Electronic devices and gadgets")
	clothing := NewCategory("Clothing", "Fashion and apparel")
	books := NewCategory("Books", "Books and educational materials")

	s.Categories.Insert(electronics)
	s.Categories.Insert(clothing)
	s.Categories.Insert(books)

	s.Products.Insert(NewProduct(
		"Gaming Laptop",
		"High-performance laptop for gaming and professional work",
		decimal.NewFromFloat(1299.99), electronics.ID, 15,
	))
	s.Products.Insert(NewProduct(
		"Wireless Headphones",
		"Noise-canceling wireless headphones with premium sound quality",
		decimal.NewFromFloat(249.99), electronics.ID, 30,
	))
	s.Products.Insert(NewProduct(
		"Cotton T-Shirt",
		"Comfortable cotton t-shirt available in multiple colors",
		decimal.NewFromFloat(29.99), clothing.ID, 100,
	))
	s.Products.Insert(NewProduct(
		"Go Programming Book",
		"Complete guide to the Go programming language",
		decimal.NewFromFloat(49.99), books.ID, 50,
	))

	tech := NewBlogCategory("Technology", "Tech news and tutorials")
	lifestyle := NewBlogCategory("Lifestyle", "Lifestyle tips and articles")

	s.BlogCategories.Insert(tech)
	s.BlogCategories.Insert(lifestyle)

	posts := []Post{
		NewPost(
			"Getting Started with Go",
			"Go is a statically typed language that compiles fast, ships as a single binary, and makes concurrency a first-class citizen. In this article we explore the basics of Go and why it keeps growing on backend teams.",
			"Learn the basics of the Go programming language",
			tech.ID, "Admin",
		),
		NewPost(
			"Building Web Applications",
			"Web development has become much easier with small composable routers and the standard library's http package. This post covers the fundamentals of building web applications and demonstrates common patterns.",
			"How to build modern web apps",
			tech.ID, "Admin",
		),
		NewPost(
			"Productivity Tips for Developers",
			"As developers, we are always looking for ways to improve our productivity. Here are some proven strategies that can help you write better code faster and maintain a healthy work-life balance.",
			"Improve your coding productivity",
			lifestyle.ID, "Admin",
		),
	}

	for _, p := range posts {
		p.Publish()
		s.Posts.Insert(p)
	}
}
