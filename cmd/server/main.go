package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"bistroboss/docs"
	"bistroboss/internal/auth"
	"bistroboss/internal/cache"
	"bistroboss/internal/charge"
	"bistroboss/internal/config"
	"bistroboss/internal/db"
	"bistroboss/internal/handler"
	"bistroboss/internal/model"
	"bistroboss/internal/notify"
	"bistroboss/internal/repository"
	"bistroboss/internal/router"
	"bistroboss/internal/service"
)

// @title Bistro Boss API
// @version 1.0
// @description Restaurant backend: menu, reviews, carts, users and card payments.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	mongoDB, err := db.NewMongo(startCtx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		cancel()
		log.Fatalf("database init: %v", err)
	}
	if err := repository.EnsureIndexes(startCtx, mongoDB); err != nil {
		log.Printf("Warning: failed to ensure indexes: %v", err)
	}
	cancel()

	cacheClient := connectCache(ctx, cfg)

	// Payment audit ledger is optional
	var auditor *service.PaymentAuditor
	if cfg.MySQLDSN != "" {
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("audit database init: %v", err)
		}
		if err := gormDB.AutoMigrate(&model.PaymentLog{}); err != nil {
			log.Fatalf("auto-migrate: %v", err)
		}
		auditor = service.NewPaymentAuditor(repository.NewPaymentLogRepository(gormDB))
	} else {
		log.Println("MYSQL_DSN not set, payment audit disabled")
	}

	var notifier notify.Notifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("Warning: telegram notifications disabled: %v", err)
		} else {
			notifier = tg
		}
	}

	if cfg.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY not set, charge intents will fail")
	}
	chargeProvider := charge.NewStripeProvider(cfg.StripeSecretKey, nil)

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(mongoDB)
	reviewRepo := repository.NewReviewRepository(mongoDB)
	cartRepo := repository.NewCartRepository(mongoDB)
	userRepo := repository.NewUserRepository(mongoDB)
	paymentRepo := repository.NewPaymentRepository(mongoDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	guard := auth.NewGuard(jwtService, tokenStore, userRepo)

	// Initialize services
	authService := service.NewAuthService(jwtService, tokenStore)
	menuService := service.NewMenuService(menuRepo, cacheClient)
	reviewService := service.NewReviewService(reviewRepo, cacheClient)
	cartService := service.NewCartService(cartRepo)
	userService := service.NewUserService(userRepo)
	paymentService := service.NewPaymentService(paymentRepo, chargeProvider, cfg.Currency, auditor, notifier)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(e, guard, router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Menu:    handler.NewMenuHandler(menuService),
		Review:  handler.NewReviewHandler(reviewService),
		Cart:    handler.NewCartHandler(cartService),
		User:    handler.NewUserHandler(userService),
		Payment: handler.NewPaymentHandler(paymentService),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg.SwaggerHost, cfg.ServerPort))

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	auditor.Close()
	if err := mongoDB.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("mongodb disconnect: %v", err)
	}
	_ = cacheClient.Close()
}

// connectCache returns nil when redis does not answer, leaving the listings uncached and
// token revocation disabled.
func connectCache(ctx context.Context, cfg *config.Config) *cache.Client {
	client := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		log.Printf("Warning: redis unavailable, running without cache and token revocation: %v", err)
		_ = client.Close()
		return nil
	}
	return client
}

// swaggerURL builds the docs address. host may already carry a scheme.
func swaggerURL(host, port string) string {
	switch {
	case host == "":
		return "http://localhost:" + port + "/swagger/index.html"
	case strings.HasPrefix(host, "http://"), strings.HasPrefix(host, "https://"):
		return host + "/swagger/index.html"
	default:
		return "http://" + host + "/swagger/index.html"
	}
}
