package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/salon-booking/internal/api/http"
	"github.com/spec-kit/salon-booking/internal/api/http/handlers"
	"github.com/spec-kit/salon-booking/internal/auth"
	"github.com/spec-kit/salon-booking/internal/clock"
	"github.com/spec-kit/salon-booking/internal/config"
	"github.com/spec-kit/salon-booking/internal/events"
	"github.com/spec-kit/salon-booking/internal/mail"
	"github.com/spec-kit/salon-booking/internal/observability"
	"github.com/spec-kit/salon-booking/internal/persistence"
	"github.com/spec-kit/salon-booking/internal/repository"
	"github.com/spec-kit/salon-booking/internal/service"
	"github.com/spec-kit/salon-booking/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	store, err := persistence.NewFileStore(cfg.Store.DataDir, logger)
	if err != nil {
		logger.Fatal("failed to open data directory", zap.Error(err))
	}

	inquiryRepo, err := repository.NewInquiryRepository(store, logger)
	if err != nil {
		logger.Fatal("failed to load inquiries", zap.Error(err))
	}
	messageRepo, err := repository.NewMessageRepository(store, logger)
	if err != nil {
		logger.Fatal("failed to load contact messages", zap.Error(err))
	}
	catalogRepo, err := repository.NewCatalogRepository(store, logger)
	if err != nil {
		logger.Fatal("failed to load catalogs", zap.Error(err))
	}

	dispatcher := events.NewAsyncDispatcher(logger)
	sysClock := clock.NewSystem()

	inquiryService := service.NewInquiryService(service.InquiryDependencies{
		InquiryRepo: inquiryRepo,
		Clock:       sysClock,
		Dispatcher:  dispatcher,
	})
	contactService := service.NewContactService(service.ContactDependencies{
		MessageRepo: messageRepo,
		Clock:       sysClock,
		Dispatcher:  dispatcher,
	})

	mailer := mail.NewSMTPMailer(cfg.SMTP, logger)
	notificationService := service.NewNotificationService(dispatcher, mailer, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	adminKey := auth.NewAdminKeyMiddleware(cfg.Admin, logger)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Inquiries: handlers.NewInquiriesHandler(inquiryService),
		Slots:     handlers.NewSlotsHandler(inquiryService),
		Messages:  handlers.NewContactMessagesHandler(contactService),
		Catalog:   handlers.NewCatalogHandler(catalogRepo),
		AdminKey:  adminKey,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
