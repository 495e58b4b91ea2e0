package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"fleet-admin/internal/admin-service/adapters/driven/bm"
	"fleet-admin/internal/admin-service/adapters/driven/db"
	"fleet-admin/internal/admin-service/adapters/driven/ws"
	"fleet-admin/internal/admin-service/adapters/driver/myhttp/handle"
	"fleet-admin/internal/admin-service/adapters/driver/myhttp/middleware"
	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/admin-service/core/service"
	"fleet-admin/internal/applog"
	"fleet-admin/internal/config"
)

const WaitTime = 10

type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	srv    *http.Server
	mylog  applog.Logger
	db     ports.IDB
	broker ports.IEventBroker
	feed   ports.IDashboardFeed
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
}

func NewServer(ctx, appCtx context.Context, mylog applog.Logger, cfg *config.Config) *Server {
	return &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    http.NewServeMux(),
	}
}

// Run initializes routes and starts listening. It returns when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	if err := s.initializeDatabase(); err != nil {
		mylog.Action("db_connection_failed").Error("Failed to connect to database", err)
		return err
	}
	mylog.Action("db_connected").Info("Successful database connection")

	// A missing broker degrades the live feed, not the REST surface.
	s.initializeBroker()

	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", s.cfg.Srv.AdminServicePort),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.Srv.AdminServicePort)

	mylog.Info("server is running")
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Action("graceful_shutdown_started").Info("Shutting down HTTP server...")

	if s.feed != nil {
		s.feed.CloseAll()
	}

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Action("graceful_shutdown_failed").Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.broker != nil {
		if err := s.broker.Close(); err != nil {
			s.mylog.Action("broker_close_failed").Error("Failed to close broker", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mylog.Action("db_close_failed").Error("Failed to close database", err)
			return fmt.Errorf("db close: %w", err)
		}
		s.mylog.Action("db_closed").Info("Database closed")
	}

	s.mylog.Action("graceful_shutdown_completed").Info("HTTP server shut down gracefully")

	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure sets up the dashboard REST surface and the live feed.
func (s *Server) Configure() {
	// Repositories
	adminRepo := db.NewAdminRepo(s.db)
	driverRepo := db.NewDriverRepo(s.db)
	userRepo := db.NewUserRepo(s.db)
	priceRepo := db.NewPriceRepo(s.db)
	overviewRepo := db.NewOverviewRepo(s.db)

	// Services
	authService := service.NewAuthService(s.ctx, s.cfg, adminRepo, s.mylog)
	driverService := service.NewDriverService(s.ctx, s.cfg, driverRepo, s.broker, s.mylog)
	userService := service.NewUserService(s.ctx, userRepo, s.mylog)
	priceService := service.NewPriceService(s.ctx, priceRepo, s.mylog)
	overviewService := service.NewOverviewService(s.ctx, overviewRepo, s.mylog)

	// Handlers
	authHandler := handle.NewAuthHandler(authService, s.mylog)
	driverHandler := handle.NewDriverHandler(driverService, s.mylog)
	userHandler := handle.NewUserHandler(userService, s.mylog)
	priceHandler := handle.NewPriceHandler(priceService, s.mylog)
	overviewHandler := handle.NewOverviewHandler(overviewService, overviewRepo, s.mylog)

	authMiddleware := middleware.NewAuthMiddleware(s.cfg.App.JwtSecret)

	// Register routes
	s.mux.Handle("POST /api/admin/login", authHandler.Login())

	s.mux.Handle("GET /api/admin/drivers", authMiddleware.Wrap(driverHandler.List()))
	s.mux.Handle("PUT /api/admin/driver/{id}/toggle", authMiddleware.Wrap(driverHandler.ToggleStatus()))
	s.mux.Handle("POST /api/drivers/create-simple", authMiddleware.Wrap(driverHandler.Create()))
	s.mux.Handle("PUT /api/admin/direct-wallet/{id}", authMiddleware.Wrap(driverHandler.AddToWallet()))

	s.mux.Handle("GET /api/users/registered", authMiddleware.Wrap(userHandler.ListRegistered()))
	s.mux.Handle("GET /api/users/{id}", authMiddleware.Wrap(userHandler.Get()))
	s.mux.Handle("PUT /api/users/{id}", authMiddleware.Wrap(userHandler.Update()))
	s.mux.Handle("DELETE /api/users/{id}", authMiddleware.Wrap(userHandler.Delete()))

	s.mux.Handle("GET /api/admin/ride-prices", authMiddleware.Wrap(priceHandler.Get()))
	s.mux.Handle("POST /api/admin/ride-prices", authMiddleware.Wrap(priceHandler.Save()))

	s.mux.Handle("GET /api/admin/overview", authMiddleware.Wrap(overviewHandler.GetOverview()))
	s.mux.Handle("GET /api/admin/sales/export", authMiddleware.Wrap(overviewHandler.ExportSales()))

	if s.broker != nil {
		feedManager := ws.NewFeedManager(s.mylog)
		s.feed = feedManager
		feedHandler := handle.NewFeedHandler(feedManager, s.mylog)
		s.mux.Handle("GET /ws/admin/live", authMiddleware.Wrap(feedHandler.LiveFeed()))

		go ws.Pump(s.ctx, s.broker, feedManager, s.mylog)
	}
}

func (s *Server) initializeDatabase() error {
	database, err := db.Start(s.ctx, s.cfg.DB, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = database
	return nil
}

func (s *Server) initializeBroker() {
	broker, err := bm.New(s.ctx, *s.cfg.RabbitMq, s.mylog)
	if err != nil {
		s.mylog.Action("broker_unavailable").Warn("RabbitMQ unavailable, live feed disabled")
		return
	}
	s.broker = broker
}
