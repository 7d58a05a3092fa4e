package main

import (
	"log/slog"
	"os"

	"github.com/pfin-labs/finance_tracker_app/internal/adapters/storage/memory"
	"github.com/pfin-labs/finance_tracker_app/internal/core/domain"
	portssvc "github.com/pfin-labs/finance_tracker_app/internal/core/ports/services"
	"github.com/pfin-labs/finance_tracker_app/internal/core/services"
	"github.com/pfin-labs/finance_tracker_app/internal/handlers"
	"github.com/pfin-labs/finance_tracker_app/internal/middleware"
	"github.com/pfin-labs/finance_tracker_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Personal Finance Tracker API
// @version 1.0
// @description Personal ledger aggregation service: income/expense records with on-demand dashboard summaries.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	}
	r.Use(cors.New(corsCfg))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	handlers.RegisterRoutes(r, buildServices())

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices constructs the per-collection stores and wires the services
// the HTTP layer depends on. Stores live for the process lifetime; there is
// no persistence or startup recovery.
func buildServices() *portssvc.ServiceContainer {
	expenseStore := memory.NewLedgerStore()
	incomeStore := memory.NewLedgerStore()

	return &portssvc.ServiceContainer{
		Expense: services.NewLedgerService(domain.KindExpense, expenseStore),
		Income:  services.NewLedgerService(domain.KindIncome, incomeStore),
		Summary: services.NewSummaryService(),
	}
}
