package cms

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (s *Server) home(w http.ResponseWriter, _ *http.Request) {
	s.renderPage(w, http.StatusOK, "home", PageData{
		Title:   "Welcome to Our Store",
		Section: "home",
	})
}

// shop lists available products, newest first. The category name is
// looked up per product after the product snapshot is taken; a category
// deleted in between renders as the fallback label.
func (s *Server) shop(w http.ResponseWriter, _ *http.Request) {
	products := availableProducts(s.Store)

	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow{Product: p, CategoryName: s.categoryName(p.CategoryID)})
	}

	s.renderPage(w, http.StatusOK, "shop", PageData{
		Title:   "Shop",
		Section: "shop",
		Data:    rows,
	})
}

func (s *Server) blog(w http.ResponseWriter, _ *http.Request) {
	posts := publishedPosts(s.Store)

	rows := make([]postRow, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, postRow{Post: p, CategoryName: s.blogCategoryName(p.CategoryID)})
	}

	s.renderPage(w, http.StatusOK, "blog", PageData{
		Title:   "Blog",
		Section: "blog",
		Data:    rows,
	})
}

type postView struct {
	Post
	CategoryName string
	Body         template.HTML
}

// blogPost renders a single published post with its body converted from
// Markdown. Drafts are indistinguishable from missing posts.
func (s *Server) blogPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, ok := s.Store.Posts.Get(id)
	if !ok || !post.Published {
		s.renderPage(w, http.StatusNotFound, "not_found", PageData{
			Title:   "Post not found",
			Section: "blog",
		})
		return
	}

	body, err := RenderMarkdown(post.Content)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("markdown render failed", zap.String("post_id", id), zap.Error(err))
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	s.renderPage(w, http.StatusOK, "blog_post", PageData{
		Title:   post.Title,
		Section: "blog",
		Data: postView{
			Post:         post,
			CategoryName: s.blogCategoryName(post.CategoryID),
			Body:         body,
		},
	})
}

func availableProducts(store *Store) []Product {
	all := store.Products.List()
	out := all[:0]
	for _, p := range all {
		if p.IsAvailable() {
			out = append(out, p)
		}
	}
	SortNewestFirst(out)
	return out
}

func publishedPosts(store *Store) []Post {
	all := store.Posts.List()
	out := all[:0]
	for _, p := range all {
		if p.Published {
			out = append(out, p)
		}
	}
	SortNewestFirst(out)
	return out
}
