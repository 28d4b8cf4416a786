package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"car-loan-advisor/config"
	httpLayer "car-loan-advisor/http"
	"car-loan-advisor/repository"
	"car-loan-advisor/service"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	advisorRepo := repository.NewAdvisorRepositoryMemory()
	advisorService := service.NewAdvisorService(cfg.GeminiModel, cache, advisorRepo)
	if !advisorService.Enabled() {
		log.Println("Warning: GEMINI_API_KEY not set, /advisor/recommendations will return 503")
	}
	advisorHandler := httpLayer.NewAdvisorHandler(advisorService)

	chartHandler := httpLayer.NewChartHandler()

	selectionStore := repository.NewSelectionStore(cache)
	selectionHandler := httpLayer.NewSelectionHandler(selectionStore)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateWindow())
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/advisor/recommendations",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(advisorHandler.GetRecommendations),
		),
	)

	mux.Handle(
		"/loan/ownership-chart",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(chartHandler.BuildOwnershipChart),
		),
	)

	mux.Handle(
		"/loan/selection",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(selectionHandler.HandleSelection),
		),
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // la llamada al modelo puede tardar
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost%s", cfg.Addr)
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
