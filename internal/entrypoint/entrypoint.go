package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bookcatalog/internal/config"
	"bookcatalog/internal/database"
	"bookcatalog/internal/database/authors"
	"bookcatalog/internal/database/books"
	"bookcatalog/internal/database/categories"
	"bookcatalog/internal/database/countries"
	"bookcatalog/internal/database/reviewers"
	"bookcatalog/internal/database/reviews"
	http_controllers "bookcatalog/internal/http"
	"bookcatalog/internal/maintenance"
	"bookcatalog/internal/rules"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the maintenance scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Book Catalog API v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	countryRepo := countries.NewRepository(db.DB)
	authorRepo := authors.NewRepository(db.DB)
	categoryRepo := categories.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	reviewerRepo := reviewers.NewRepository(db.DB)
	reviewRepo := reviews.NewRepository(db.DB)

	var maintenanceScheduler *maintenance.Scheduler
	var maintenanceCancel context.CancelFunc
	if cfg.Maintenance.Enabled {
		maintenanceScheduler = maintenance.NewScheduler(db, cfg.Maintenance.Schedule)

		var maintenanceCtx context.Context
		maintenanceCtx, maintenanceCancel = context.WithCancel(context.Background())
		if err := maintenanceScheduler.Start(maintenanceCtx); err != nil {
			log.Fatalf("Failed to start maintenance scheduler: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Database:   db,
		Countries:  countryRepo,
		Authors:    authorRepo,
		Categories: categoryRepo,
		Books:      bookRepo,
		Reviewers:  reviewerRepo,
		Reviews:    reviewRepo,

		CountryRules:  rules.CountryRules{Countries: countryRepo},
		AuthorRules:   rules.AuthorRules{Authors: authorRepo, Countries: countryRepo},
		CategoryRules: rules.CategoryRules{Categories: categoryRepo},
		BookRules:     rules.BookRules{Books: bookRepo, Authors: authorRepo, Categories: categoryRepo},
		ReviewerRules: rules.ReviewerRules{Reviewers: reviewerRepo},
		ReviewRules:   rules.ReviewRules{Reviews: reviewRepo, Reviewers: reviewerRepo, Books: bookRepo},

		Version: version,
	}
	if cfg.RateLimit.Enabled {
		routerCfg.RateLimitRPS = cfg.RateLimit.RPS
		routerCfg.RateLimitBurst = cfg.RateLimit.Burst
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if maintenanceScheduler != nil {
			maintenanceScheduler.Stop()
			maintenanceCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
