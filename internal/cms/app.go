package cms

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"MyStoreCMS/pkg/kit"
	"MyStoreCMS/web"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// AdminLimiter throttles the admin mutation routes. Nil disables it.
	AdminLimiter *kit.IPRateLimiter
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Mount("/", s.Routes(deps.AdminLimiter))
	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func (s *Server) Routes(adminLimiter *kit.IPRateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	// Public site.
	r.Get("/", s.home)
	r.Get("/shop", s.shop)
	r.Get("/blog", s.blog)
	r.Get("/blog/{id}", s.blogPost)

	// Public JSON API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", s.apiListProducts)
		r.Get("/products/{id}", s.apiGetProduct)
		r.Get("/posts", s.apiListPosts)
		r.Get("/posts/{id}", s.apiGetPost)
	})

	// Admin console.
	r.Route("/admin", func(r chi.Router) {
		r.Get("/", s.adminDashboard)
		r.Get("/categories", s.adminListCategories)
		r.Get("/products", s.adminListProducts)
		r.Get("/blog-categories", s.adminListBlogCategories)
		r.Get("/posts", s.adminListPosts)

		r.Group(func(r chi.Router) {
			if adminLimiter != nil {
				r.Use(adminLimiter.Middleware)
			}

			r.Post("/categories/create", s.adminCreateCategory)
			r.Post("/categories/delete/{id}", s.adminDeleteCategory)
			r.Post("/products/create", s.adminCreateProduct)
			r.Post("/products/delete/{id}", s.adminDeleteProduct)
			r.Post("/blog-categories/create", s.adminCreateBlogCategory)
			r.Post("/blog-categories/delete/{id}", s.adminDeleteBlogCategory)
			r.Post("/posts/create", s.adminCreatePost)
			r.Post("/posts/toggle/{id}", s.adminTogglePost)
			r.Post("/posts/delete/{id}", s.adminDeletePost)
		})
	})

	// Static assets.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	return r
}
