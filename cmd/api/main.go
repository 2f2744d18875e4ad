package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "github.com/iamaanahmad/LoanLedger/internal/adapter/http"
	mw "github.com/iamaanahmad/LoanLedger/internal/adapter/middleware"
	"github.com/iamaanahmad/LoanLedger/internal/adapter/repository/sqlite"
	"github.com/iamaanahmad/LoanLedger/internal/config"
	"github.com/iamaanahmad/LoanLedger/internal/infrastructure/cache"
	"github.com/iamaanahmad/LoanLedger/internal/infrastructure/db"
	"github.com/iamaanahmad/LoanLedger/internal/seed"
	loanUC "github.com/iamaanahmad/LoanLedger/internal/usecase/loan"
	"github.com/iamaanahmad/LoanLedger/internal/usecase/notification"
	"github.com/iamaanahmad/LoanLedger/internal/usecase/report"
	"github.com/iamaanahmad/LoanLedger/internal/usecase/trading"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// The session ledger: in-memory, seeded, gone when the process exits.
	gdb, err := db.OpenGorm(db.InMemoryDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	loanRepo := sqlite.NewLoanRepository(gdb)
	tradeRepo := sqlite.NewTradeRepository(gdb)
	auditRepo := sqlite.NewAuditRepository(gdb)
	checkRepo := sqlite.NewComplianceRepository(gdb)
	tx := sqlite.NewGormUoW(gdb)

	ctx := context.Background()
	if err := seed.Ledger(ctx, tx, checkRepo); err != nil {
		log.Fatal(err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	} else {
		rdb, err = cache.OpenEmbedded()
	}
	if err != nil {
		log.Fatal(err)
	}

	tradingUC := trading.NewUsecase(loanRepo, tx, cfg.SettleDelay)
	notifUC := notification.NewUsecase(notification.SeedNotifications(time.Now().UTC()), seed.Watchlist())
	tradingUC.OnTradeComplete(notifUC.HandleTradeComplete)

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(cfg.JWTSecret, cfg.JWTTTL)
	loanH := httpadp.NewLoanHandler(loanUC.NewUsecase(loanRepo, tradeRepo))
	tradeH := httpadp.NewTradeHandler(tradingUC, tradeRepo)
	auditH := httpadp.NewAuditHandler(auditRepo, checkRepo)
	notifH := httpadp.NewNotificationHandler(notifUC)
	reportH := httpadp.NewReportHandler(report.NewUsecase(loanRepo, tradeRepo, auditRepo))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// public routes
	e.GET("/health", h.Health)
	e.POST("/login", authH.Login)

	api := e.Group("/api/v1", mw.JWTAuth(cfg.JWTSecret))
	api.GET("/loans", loanH.ListLoans)
	api.GET("/loans/:loan_id", loanH.GetLoan)
	api.POST("/loans/:loan_id/trade", tradeH.ExecuteTrade,
		mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	api.GET("/trades", tradeH.ListTrades)
	api.GET("/workflows/:workflow_id", tradeH.GetWorkflow)
	api.GET("/audit", auditH.ListAuditTrail)
	api.GET("/compliance", auditH.ListComplianceChecks)
	api.GET("/notifications", notifH.ListNotifications)
	api.POST("/notifications/:notification_id/read", notifH.MarkRead)
	api.DELETE("/notifications", notifH.ClearAll)
	api.GET("/watchlist", notifH.ListWatchlist)
	api.POST("/watchlist/:loan_id/toggle", notifH.ToggleWatch)
	api.GET("/stats", loanH.MarketStats)
	api.GET("/reports/export", reportH.Export)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
