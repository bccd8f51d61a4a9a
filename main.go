package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"propdesk/chart"
	"propdesk/config"
	httpLayer "propdesk/http"
	"propdesk/repository"
	"propdesk/service"
)

func newCache(cfg config.Config) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache()
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("Warning: redis at %s unavailable, using in-memory cache: %v", cfg.RedisAddr, err)
		_ = redisCache.Close()
		return repository.NewMemoryCache()
	}
	log.Printf("Connected to redis at %s", cfg.RedisAddr)
	return redisCache
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	cache := newCache(cfg)
	if c, ok := cache.(*repository.RedisCache); ok {
		defer c.Close()
	}

	catalogRepo := repository.NewCatalogHTTP(cfg.BaseURL, cfg.BackendTimeout)
	catalogService := service.NewCatalogService(catalogRepo, cache, cfg.CacheTTL, cfg.Options.PageSize())
	loanService := service.NewLoanService(cfg.StrictBounds)

	refresher := service.NewCatalogRefresher(catalogService, cfg.BackendTimeout)
	if cfg.CatalogRefresh != "" {
		if err := refresher.Start(cfg.CatalogRefresh); err != nil {
			log.Fatalf("Error scheduling catalogue refresh: %v", err)
		}
		defer refresher.Stop()
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Loan:    httpLayer.NewLoanHandler(loanService, chart.NewSVG()),
		Live:    httpLayer.NewLiveHandler(loanService, cfg.LiveDebounce),
		Catalog: httpLayer.NewCatalogHandler(catalogService),
		Options: httpLayer.NewOptionsHandler(cfg.Options),
	}, rateLimiter)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("propdesk listening on :%s (backend %s)", cfg.Port, cfg.BaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
