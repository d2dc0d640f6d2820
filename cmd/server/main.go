package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"networth/internal/api"
	"networth/internal/config"
	"networth/internal/database"
	"networth/internal/pricing"
	"networth/internal/quotes"
	"networth/internal/repository"
	"networth/internal/service"
	"networth/internal/session"
	"networth/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	cashRepo := repository.NewCashRepository(db)
	stockRepo := repository.NewStockRepository(db)
	treasuryRepo := repository.NewTreasuryRepository(db)
	retirementRepo := repository.NewRetirementRepository(db)

	// The in-memory mirror and the session gate are owned here and passed
	// explicitly into everything that consumes them.
	cache := quotes.NewCache()
	sess := session.New()

	// Select the price source from configuration
	var source pricing.Source
	switch cfg.Pricing.Source {
	case config.PriceSourceLive:
		source = pricing.NewLive(yahoo.NewFinanceClient())
	default:
		seed := cfg.Pricing.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		source = pricing.NewSimulated(rand.New(rand.NewSource(seed)))
	}
	log.Printf("Using %s price source", source.Name())

	// Create services
	pricingService := service.NewPricingService(source, cache, stockRepo, retirementRepo)
	portfolioService := service.NewPortfolioService(stockRepo, cashRepo, cache)
	treasuryService := service.NewTreasuryService(treasuryRepo)
	retirementService := service.NewRetirementService(retirementRepo, cache)
	netWorthService := service.NewNetWorthService(cashRepo, stockRepo, treasuryService, retirementService, cache)

	// Optional scheduled refresh; when unset the session gate governs cadence
	var scheduler *cron.Cron
	if cfg.Pricing.RefreshSchedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Pricing.RefreshSchedule, func() {
			if err := pricingService.RefreshAll(context.Background()); err != nil {
				log.Printf("Scheduled price refresh failed: %v", err)
				return
			}
			sess.MarkFresh()
		})
		if err != nil {
			log.Fatalf("Invalid PRICE_REFRESH_SCHEDULE: %v", err)
		}
		scheduler.Start()
		log.Printf("Scheduled price refresh: %s", cfg.Pricing.RefreshSchedule)
	}

	// Create router
	router := api.NewRouter(db, netWorthService, pricingService, portfolioService, treasuryService, retirementService, cache, sess, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
