package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/config"
	apphttp "github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/middleware"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/mailer"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/metrics"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/chat"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/insights"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/inventory"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/newsletter"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/products"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/users"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/storage"
)

func main() {
	// .env is optional; prod uses real env vars
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	metrics.Register()

	uploads, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	logger.Info("storage ready", "driver", uploads.Driver)

	inv := inventory.NewService(db, logger)
	orderRepo := orders.NewRepo(db)
	orderSvc := orders.NewAdminService(db, inv, logger)
	store := insights.NewStore(orderRepo)
	productRepo := products.NewRepo(db)
	userSvc := users.NewService(db)

	mail := mailer.NewSMTPMailer(cfg.SMTP)
	newsSvc := newsletter.NewService(db, mail, cfg.SMTP.From, cfg.SMTP.FromName, logger)

	// an empty endpoint leaves the completer in its disabled state
	completer := chat.NewHTTPCompleter(cfg.Chat.Endpoint, cfg.Chat.APIKey, cfg.Chat.Model, cfg.Chat.Timeout)
	chatSvc := chat.NewService(db, completer, productRepo, logger)

	sessionCfg := middleware.SessionCfg{
		DB:         db,
		CookieName: "trendify_session",
		Secure:     os.Getenv("COOKIE_SECURE") == "true",
		TTL:        cfg.SessionTTL,
	}

	r := apphttp.NewRouter(apphttp.Deps{
		Log:        logger,
		SessionCfg: sessionCfg,
		Store:      store,
		OrderRepo:  orderRepo,
		OrderSvc:   orderSvc,
		Inventory:  inv,
		Products:   productRepo,
		Users:      userSvc,
		Newsletter: newsSvc,
		Chat:       chatSvc,
		Uploads:    uploads.Storage,
	})

	logger.Info("listening", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
