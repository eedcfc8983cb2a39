// Package main is the entry point for the comercio API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"comercio/internal/config"
	"comercio/internal/domain/auth"
	"comercio/internal/domain/catalogs/article"
	"comercio/internal/domain/catalogs/branch"
	"comercio/internal/domain/catalogs/employee"
	"comercio/internal/domain/catalogs/partner"
	"comercio/internal/domain/catalogs/series"
	"comercio/internal/domain/documents/purchase"
	"comercio/internal/domain/documents/sale"
	v1 "comercio/internal/infrastructure/http/v1"
	"comercio/internal/infrastructure/storage/postgres"
	"comercio/internal/infrastructure/storage/postgres/auth_repo"
	"comercio/internal/infrastructure/storage/postgres/catalog_repo"
	"comercio/internal/infrastructure/storage/postgres/document_repo"
	"comercio/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting comercio server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(cfg.Database.URL)
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	articleRepo := catalog_repo.NewArticleRepo(txManager)
	partnerRepo := catalog_repo.NewPartnerRepo(txManager)
	employeeRepo := catalog_repo.NewEmployeeRepo(txManager)
	branchRepo := catalog_repo.NewBranchRepo(txManager)
	seriesRepo := catalog_repo.NewSeriesRepo(txManager)
	purchaseRepo := document_repo.NewPurchaseRepo(txManager)
	saleRepo := document_repo.NewSaleRepo(txManager)
	userRepo := auth_repo.NewUserRepo(txManager)

	// --- Catalog services ---
	articleService := article.NewService(articleRepo, txManager)
	partnerService := partner.NewService(partnerRepo, txManager)
	employeeService := employee.NewService(employeeRepo, txManager)
	branchService := branch.NewService(branchRepo, txManager)
	seriesService := series.NewService(seriesRepo, txManager, branchService)

	// --- Document services ---
	purchaseService := purchase.NewService(
		purchaseRepo,
		partnerService,
		employeeService,
		seriesService,
		txManager,
	)
	saleService := sale.NewService(
		saleRepo,
		partnerService,
		employeeService,
		seriesService,
		articleService,
		txManager,
	)

	// --- Auth ---
	jwtConfig := auth.DefaultJWTConfig(cfg.JWT.Secret)
	jwtConfig.Issuer = cfg.JWT.Issuer
	jwtConfig.AccessTokenTTL = time.Duration(cfg.JWT.ExpireHours) * time.Hour
	jwtService := auth.NewJWTService(jwtConfig)

	authConfig := auth.DefaultServiceConfig()
	authConfig.PasswordMinLength = cfg.Auth.PasswordMinLength
	authService := auth.NewService(userRepo, employeeService, txManager, jwtService, authConfig)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:         pool,
		Logger:       log,
		JWTValidator: jwtService,
		AuthService:  authService,
		Articles:     articleService,
		Partners:     partnerService,
		Employees:    employeeService,
		Branches:     branchService,
		Series:       seriesService,
		Purchases:    purchaseService,
		Sales:        saleService,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("forced shutdown", "error", err)
	}

	log.Info("server stopped")
}
