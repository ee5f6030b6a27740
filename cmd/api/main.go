package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"storefront-backend/internal/auth"
	"storefront-backend/internal/client"
	"storefront-backend/internal/config"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/server"
	"storefront-backend/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	db, err := client.InitSqliteClient(cfg.DatabasePath)
	if err != nil {
		log.Fatal("init database", "error", err)
	}

	gateway := client.NewBraintreeGateway(&cfg.BrainTree)
	mailer := client.NewSMTPMailer(&cfg.Mail)

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	sessions := auth.NewSessions(cfg.Auth.AppSecret)

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	userService := service.NewUserService(userRepo, hasher, sessions, mailer, cfg.FrontendURL)
	itemService := service.NewItemService(itemRepo)
	cartService := service.NewCartService(cartRepo, itemRepo)
	orderService := service.NewOrderService(cartRepo, orderRepo, gateway, log)

	srv := server.NewServer(
		userService,
		itemService,
		cartService,
		orderService,
		sessions,
		userRepo,
		log,
		cfg.Auth.CookieMaxAgeDays,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Info("starting HTTP server", "addr", serverAddr, "environment", cfg.Environment.Name)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error", "error", err)
	}
}
