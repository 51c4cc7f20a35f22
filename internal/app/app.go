package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/crechehub/agendaservice/internal/config"
	"github.com/crechehub/agendaservice/internal/gateway"
	"github.com/crechehub/agendaservice/internal/handler"
	"github.com/crechehub/agendaservice/internal/middleware"
	"github.com/crechehub/agendaservice/internal/notification"
	"github.com/crechehub/agendaservice/internal/router"
	"github.com/crechehub/agendaservice/internal/scheduler"
	"github.com/crechehub/agendaservice/internal/service"
	"github.com/crechehub/agendaservice/internal/session"
	"github.com/crechehub/agendaservice/internal/store"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	session    *session.Manager
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"agendaservice",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	gw := gateway.NewClient(a.cfg.Gateway.BaseURL, a.cfg.Gateway.Timeout, a.log)

	tokens := session.NewFileTokenStore(a.cfg.Session.TokenFile)
	sess := session.NewManager(gw, tokens, a.log)
	a.session = sess

	// Every gateway call carries the session token; a 401 from upstream
	// tears the session down through Expire.
	gw.SetTokenSource(sess)
	gw.SetUnauthorizedHook(sess.Expire)

	st := store.New(gw, a.log)
	sess.OnTeardown(st.InvalidateAll)

	n, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	validator := service.NewAvailabilityValidator(st)
	childService := service.NewChildService(gw, st)
	classService := service.NewClassService(gw, st)
	userService := service.NewUserService(gw, st)
	bookingService := service.NewBookingService(gw, st, validator, n, a.log)

	a.scheduler = scheduler.New(
		sess,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(sess, childService, classService, userService, bookingService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequireSession(sess),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.session.Restore(ctx); err != nil {
		a.log.LogAttrs(ctx, logger.WarnLevel, "session not restored",
			logger.String("error", err.Error()),
		)
	}

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
