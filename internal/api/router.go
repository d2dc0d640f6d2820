package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"networth/internal/api/handlers"
	custommiddleware "networth/internal/api/middleware"
	"networth/internal/config"
	"networth/internal/quotes"
	"networth/internal/service"
	"networth/internal/session"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	db *sql.DB,
	netWorthService *service.NetWorthService,
	pricingService *service.PricingService,
	portfolioService *service.PortfolioService,
	treasuryService *service.TreasuryService,
	retirementService *service.RetirementService,
	cache *quotes.Cache,
	sess *session.Session,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(db)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/networth", func(r chi.Router) {
			netWorthHandler := handlers.NewNetWorthHandler(netWorthService, pricingService, sess)
			r.Get("/", netWorthHandler.NetWorth)
		})

		r.Route("/prices", func(r chi.Router) {
			priceHandler := handlers.NewPriceHandler(pricingService, cache, sess)
			r.Get("/", priceHandler.Prices)
			r.Post("/refresh", priceHandler.Refresh)
		})

		portfolioHandler := handlers.NewPortfolioHandler(portfolioService, sess)
		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/", portfolioHandler.Stocks)
			r.Post("/", portfolioHandler.AddStock)
			r.Delete("/{symbol}", portfolioHandler.RemoveStock)
		})

		r.Route("/cash", func(r chi.Router) {
			r.Get("/", portfolioHandler.CashBalances)
			r.Put("/", portfolioHandler.SetCash)
		})

		r.Route("/treasury", func(r chi.Router) {
			treasuryHandler := handlers.NewTreasuryHandler(treasuryService)
			r.Get("/", treasuryHandler.Treasuries)
			r.Post("/", treasuryHandler.AddTreasury)
			r.Delete("/{name}", treasuryHandler.RemoveTreasury)
		})

		r.Route("/retirement", func(r chi.Router) {
			retirementHandler := handlers.NewRetirementHandler(retirementService, sess)
			r.Get("/", retirementHandler.Accounts)
			r.Post("/", retirementHandler.CreateAccount)

			r.Route("/holdings/{holdingID}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDParam("holdingID"))
				r.Delete("/", retirementHandler.RemoveHolding)
			})

			r.Route("/{accountID}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDParam("accountID"))
				r.Put("/balance", retirementHandler.UpdateBalance)
				r.Delete("/", retirementHandler.DeleteAccount)
				r.Get("/holdings", retirementHandler.Holdings)
				r.Post("/holdings", retirementHandler.AddHolding)
			})
		})
	})

	return r
}
