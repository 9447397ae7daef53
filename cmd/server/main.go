package main

import (
	"context"
	"flag"
	"log"
	"os"

	"k8s.io/klog/v2"

	"github.com/restaurantcms/backend/config"
	"github.com/restaurantcms/backend/internal/eventbus"
	"github.com/restaurantcms/backend/internal/handler"
	"github.com/restaurantcms/backend/internal/pkg/database"
	"github.com/restaurantcms/backend/internal/pkg/jwt"
	"github.com/restaurantcms/backend/internal/repository"
	"github.com/restaurantcms/backend/internal/router"
	"github.com/restaurantcms/backend/internal/service"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if err := os.MkdirAll(cfg.Upload.Dir, 0755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// 初始化数据库
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	// 初始化 Repository
	contentRepo := repository.NewContentRepository(db)
	navRepo := repository.NewNavigationRepository(db)
	pageRepo := repository.NewPageRepository(db)
	adminRepo := repository.NewAdministratorRepository(db)
	tokenRepo := repository.NewResetTokenRepository(db)
	currencyRepo := repository.NewCurrencyRepository(db)
	contactTypeRepo := repository.NewContactTypeRepository(db)
	configRepo := repository.NewConfigurationRepository(db)

	// 内容事件总线：目前挂一个审计日志订阅者
	bus := eventbus.NewBus()
	subscribeAuditLog(bus)

	// 初始化 Service
	contentService := service.NewContentService(contentRepo, currencyRepo, bus)
	navigationService := service.NewNavigationService(navRepo)
	pageService := service.NewPageService(pageRepo)
	authService := service.NewAuthService(adminRepo, tokenRepo, j)
	lookupService := service.NewLookupService(currencyRepo, contactTypeRepo, configRepo)

	// 初始化 Handler
	contentHandler := handler.NewContentHandler(contentService)
	navigationHandler := handler.NewNavigationHandler(navigationService)
	pageHandler := handler.NewPageHandler(pageService)
	authHandler := handler.NewAuthHandler(cfg, authService)
	lookupHandler := handler.NewLookupHandler(lookupService)
	uploadHandler := handler.NewUploadHandler(cfg)

	// 设置路由
	r := router.Setup(cfg, j, contentHandler, navigationHandler, pageHandler, authHandler, lookupHandler, uploadHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// subscribeAuditLog 把内容变更事件落到日志里
func subscribeAuditLog(bus *eventbus.Bus) {
	logEvent := func(ctx context.Context, event eventbus.ContentEvent) error {
		admin := uint(0)
		if event.AdminID != nil {
			admin = *event.AdminID
		}
		klog.Infof("内容变更: type=%s, content_id=%d, item_type=%s, admin_id=%d",
			event.Type, event.ContentID, event.ItemType, admin)
		return nil
	}
	bus.Subscribe(eventbus.ContentEventCreated, logEvent)
	bus.Subscribe(eventbus.ContentEventUpdated, logEvent)
	bus.Subscribe(eventbus.ContentEventDeleted, logEvent)
}
