package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MyStoreCMS/internal/cms"
	"MyStoreCMS/internal/config"
	"MyStoreCMS/pkg/kit"
)

func main() {
	service := "cms"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg := config.Load()

	store := cms.NewStore()
	if cfg.SeedDemo {
		cms.Seed(store)
		log.Info("store seeded with demo content",
			zap.Int("categories", store.Categories.Count()),
			zap.Int("products", store.Products.Count()),
			zap.Int("blog_categories", store.BlogCategories.Count()),
			zap.Int("posts", store.Posts.Count()),
		)
	}

	render, err := cms.NewRenderer()
	if err != nil {
		log.Fatal("init renderer failed", zap.Error(err))
	}

	s := &cms.Server{
		Store:  store,
		Render: render,
		Log:    log,
	}

	h := cms.NewHandler(s, cms.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
		AdminLimiter:   kit.NewIPRateLimiter(cfg.RateLimit, cfg.RateWindowSeconds),
	})

	log.Info("admin panel ready", zap.String("url", "http://"+cfg.Addr()+"/admin"))

	if err := kit.RunHTTPServer(cfg.Addr(), h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
