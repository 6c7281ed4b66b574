package cms

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// fallbackCategory is rendered whenever a category reference no longer
// resolves. Dangling references are expected: deleting a category never
// cascades to its products or posts.
const fallbackCategory = "Uncategorized"

type Server struct {
	Store  *Store
	Render *Renderer
	Log    *zap.Logger
}

func (s *Server) renderPage(w http.ResponseWriter, status int, name string, data PageData) {
	if err := s.Render.Page(w, status, name, data); err != nil {
		if s.Log != nil {
			s.Log.Error("render failed", zap.String("template", name), zap.Error(err))
		}
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}

func (s *Server) categoryName(id string) string {
	if c, ok := s.Store.Categories.Get(id); ok {
		return c.Name
	}
	return fallbackCategory
}

func (s *Server) blogCategoryName(id string) string {
	if c, ok := s.Store.BlogCategories.Get(id); ok {
		return c.Name
	}
	return fallbackCategory
}

type dashboardStats struct {
	Categories     int
	Products       int
	BlogCategories int
	Posts          int
}

func (s *Server) adminDashboard(w http.ResponseWriter, _ *http.Request) {
	stats := dashboardStats{
		Categories:     s.Store.Categories.Count(),
		Products:       s.Store.Products.Count(),
		BlogCategories: s.Store.BlogCategories.Count(),
		Posts:          s.Store.Posts.Count(),
	}

	s.renderPage(w, http.StatusOK, "admin_dashboard", PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data:    stats,
	})
}

func (s *Server) adminListCategories(w http.ResponseWriter, _ *http.Request) {
	categories := s.Store.Categories.List()
	SortNewestFirst(categories)

	s.renderPage(w, http.StatusOK, "admin_categories", PageData{
		Title:   "Product Categories",
		Section: "categories",
		Data:    categories,
	})
}

func (s *Server) adminCreateCategory(w http.ResponseWriter, r *http.Request) {
	name, description, ok := nameDescriptionForm(w, r)
	if !ok {
		return
	}

	s.Store.Categories.Insert(NewCategory(name, description))
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

func (s *Server) adminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	s.Store.Categories.Delete(chi.URLParam(r, "id"))
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

type productRow struct {
	Product
	CategoryName string
}

func (s *Server) adminListProducts(w http.ResponseWriter, _ *http.Request) {
	products := s.Store.Products.List()
	SortNewestFirst(products)

	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow{Product: p, CategoryName: s.categoryName(p.CategoryID)})
	}

	categories := s.Store.Categories.List()
	SortNewestFirst(categories)

	s.renderPage(w, http.StatusOK, "admin_products", PageData{
		Title:   "Products",
		Section: "products",
		Data: struct {
			Products   []productRow
			Categories []Category
		}{rows, categories},
	})
}

func (s *Server) adminCreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	price, err := decimal.NewFromString(strings.TrimSpace(r.PostFormValue("price")))
	if err != nil {
		http.Error(w, "invalid price", http.StatusBadRequest)
		return
	}

	stock, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("stock")))
	if err != nil {
		http.Error(w, "invalid stock", http.StatusBadRequest)
		return
	}

	p := NewProduct(
		name,
		strings.TrimSpace(r.PostFormValue("description")),
		price,
		r.PostFormValue("category_id"),
		stock,
	)
	s.Store.Products.Insert(p)

	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (s *Server) adminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	s.Store.Products.Delete(chi.URLParam(r, "id"))
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (s *Server) adminListBlogCategories(w http.ResponseWriter, _ *http.Request) {
	categories := s.Store.BlogCategories.List()
	SortNewestFirst(categories)

	s.renderPage(w, http.StatusOK, "admin_blog_categories", PageData{
		Title:   "Blog Categories",
		Section: "blog-categories",
		Data:    categories,
	})
}

func (s *Server) adminCreateBlogCategory(w http.ResponseWriter, r *http.Request) {
	name, description, ok := nameDescriptionForm(w, r)
	if !ok {
		return
	}

	s.Store.BlogCategories.Insert(NewBlogCategory(name, description))
	http.Redirect(w, r, "/admin/blog-categories", http.StatusSeeOther)
}

func (s *Server) adminDeleteBlogCategory(w http.ResponseWriter, r *http.Request) {
	s.Store.BlogCategories.Delete(chi.URLParam(r, "id"))
	http.Redirect(w, r, "/admin/blog-categories", http.StatusSeeOther)
}

type postRow struct {
	Post
	CategoryName string
}

func (s *Server) adminListPosts(w http.ResponseWriter, _ *http.Request) {
	posts := s.Store.Posts.List()
	SortNewestFirst(posts)

	rows := make([]postRow, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, postRow{Post: p, CategoryName: s.blogCategoryName(p.CategoryID)})
	}

	categories := s.Store.BlogCategories.List()
	SortNewestFirst(categories)

	s.renderPage(w, http.StatusOK, "admin_posts", PageData{
		Title:   "Blog Posts",
		Section: "posts",
		Data: struct {
			Posts      []postRow
			Categories []BlogCategory
		}{rows, categories},
	})
}

func (s *Server) adminCreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.PostFormValue("title"))
	content := r.PostFormValue("content")
	if title == "" || strings.TrimSpace(content) == "" {
		http.Error(w, "title and content are required", http.StatusBadRequest)
		return
	}

	author := strings.TrimSpace(r.PostFormValue("author"))
	if author == "" {
		author = "Admin"
	}

	p := NewPost(
		title,
		content,
		strings.TrimSpace(r.PostFormValue("excerpt")),
		r.PostFormValue("category_id"),
		author,
	)
	s.Store.Posts.Insert(p)

	http.Redirect(w, r, "/admin/posts", http.StatusSeeOther)
}

// adminTogglePost flips a post between draft and published. The flip runs
// under the repository write lock, so two concurrent toggles serialize
// instead of both reading the same starting state.
func (s *Server) adminTogglePost(w http.ResponseWriter, r *http.Request) {
	s.Store.Posts.Update(chi.URLParam(r, "id"), func(p *Post) {
		if p.Published {
			p.Unpublish()
		} else {
			p.Publish()
		}
	})
	http.Redirect(w, r, "/admin/posts", http.StatusSeeOther)
}

func (s *Server) adminDeletePost(w http.ResponseWriter, r *http.Request) {
	s.Store.Posts.Delete(chi.URLParam(r, "id"))
	http.Redirect(w, r, "/admin/posts", http.StatusSeeOther)
}

// nameDescriptionForm decodes the shared category form shape. It writes
// the error response itself and reports ok=false when the request is bad.
func nameDescriptionForm(w http.ResponseWriter, r *http.Request) (name, description string, ok bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return "", "", false
	}

	name = strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return "", "", false
	}

	return name, strings.TrimSpace(r.PostFormValue("description")), true
}
