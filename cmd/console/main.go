package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/petcarex/console/internal/api/http"
	"github.com/petcarex/console/internal/api/http/handlers"
	"github.com/petcarex/console/internal/config"
	"github.com/petcarex/console/internal/events"
	"github.com/petcarex/console/internal/gateway"
	"github.com/petcarex/console/internal/observability"
	"github.com/petcarex/console/internal/service"
	"github.com/petcarex/console/internal/session"
	"github.com/petcarex/console/internal/worker"
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

	metrics := observability.NewMetrics()

	redisStore := session.NewRedisStore(cfg.Redis, cfg.Session, logger)
	defer redisStore.Close()

	sessions := session.NewManager(redisStore, logger)
	client := gateway.New(cfg.Upstream, sessions, logger)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger, metrics)

	authClient := gateway.NewAuthClient(client)
	companyClient := gateway.NewCompanyClient(client)
	branchClient := gateway.NewBranchClient(client)
	staffClient := gateway.NewStaffClient(client)
	customerClient := gateway.NewCustomerClient(client)

	sessionService := service.NewSessionService(sessions, authClient, dispatcher)
	dashboardService := service.NewDashboardService(companyClient)
	staffService := service.NewStaffService(staffClient)
	portalService := service.NewPortalService(customerClient)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), sessionService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redisStore, client),
		Auth:       handlers.NewAuthHandler(sessionService, cfg.Session),
		Dashboard:  handlers.NewDashboardHandler(dashboardService, companyClient),
		Branch:     handlers.NewBranchHandler(branchClient),
		Staff:      handlers.NewStaffHandler(staffService, staffClient),
		Portal:     handlers.NewPortalHandler(portalService, customerClient),
		SessionCfg: cfg.Session,
		Manager:    sessions,
		Sessions:   sessionService,
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
