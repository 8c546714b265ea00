package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campushub/backend/internal/adapters/primary/httpapi"
	"github.com/campushub/backend/pkg/logger"
)

// App represents the main application structure.
type App struct {
	serviceProvider *serviceProvider
	server          *http.Server
}

// NewApp initializes the application and its dependencies.
func NewApp(ctx context.Context) (*App, error) {
	a := &App{}

	err := a.initDeps(ctx)
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}

	return a, nil
}

// Run starts the HTTP server and blocks until a shutdown signal arrives.
func (a *App) Run() {
	defer a.gracefulShutdown()

	router := httpapi.NewRouter(
		httpapi.Handlers{
			Auth:         a.serviceProvider.AuthHandler(),
			Profile:      a.serviceProvider.ProfileHandler(),
			Club:         a.serviceProvider.ClubHandler(),
			Event:        a.serviceProvider.EventHandler(),
			Team:         a.serviceProvider.TeamHandler(),
			Notification: a.serviceProvider.NotificationHandler(),
			Content:      a.serviceProvider.ContentHandler(),
			Binary:       a.serviceProvider.BinaryHandler(),
		},
		httpapi.RouterOptions{
			FrontendURL: a.serviceProvider.Cfg().App.FrontendURL,
		},
	)

	a.server = &http.Server{
		Addr:              a.serviceProvider.Cfg().Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := a.serviceProvider.NotificationService().StartReminderScheduler(); err != nil {
		logger.Log.Errorf("failed to start reminder scheduler: %v", err)
	}

	go func() {
		logger.Log.Infof("HTTP server listening on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Log.Infof("Received signal %v, starting graceful shutdown...", sig)
}

// gracefulShutdown handles cleanup of all resources
func (a *App) gracefulShutdown() {
	logger.Log.Info("Starting graceful shutdown...")

	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := a.server.Shutdown(ctx); err != nil {
			logger.Log.Errorf("HTTP server shutdown error: %v", err)
		}
	}

	if a.serviceProvider != nil {
		if a.serviceProvider.notificationService != nil {
			a.serviceProvider.notificationService.StopReminderScheduler()
		}

		if a.serviceProvider.redisClient != nil {
			if err := a.serviceProvider.redisClient.Close(); err != nil {
				logger.Log.Errorf("Error closing redis connection: %v", err)
			}
		}

		if a.serviceProvider.db != nil {
			sqlDB, err := a.serviceProvider.db.DB()
			if err != nil {
				logger.Log.Errorf("Failed to get underlying sql.DB: %v", err)
			} else if errClose := sqlDB.Close(); errClose != nil {
				logger.Log.Errorf("Error closing database connection: %v", errClose)
			}
		}
	}

	logger.Log.Info("Graceful shutdown completed")

	if err := logger.Cleanup(); err != nil {
		_ = err
	}
}

// initDeps initializes application dependencies
func (a *App) initDeps(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initServiceProvider,
		a.initLogger,
	}

	for _, f := range inits {
		err := f(ctx)
		if err != nil {
			return fmt.Errorf("init deps: %w", err)
		}
	}

	return nil
}

func (a *App) initServiceProvider(_ context.Context) error {
	a.serviceProvider = newServiceProvider()
	return nil
}

func (a *App) initLogger(_ context.Context) error {
	return logger.Init(logger.Config{
		Debug: a.serviceProvider.cfg.Logger.Debug,
	})
}
