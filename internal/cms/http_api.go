package cms

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"MyStoreCMS/pkg/kit"
)

// The JSON API mirrors the public pages: only available products and
// published posts are listed, but a product detail is served regardless
// of stock so back-office tooling can inspect sold-out items.

func (s *Server) apiListProducts(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, availableProducts(s.Store))
}

func (s *Server) apiGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := s.Store.Products.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}

	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) apiListPosts(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, publishedPosts(s.Store))
}

func (s *Server) apiGetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := s.Store.Posts.Get(id)
	if !ok || !p.Published {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}

	kit.WriteJSON(w, http.StatusOK, p)
}
