package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	config "task-manager.com/task-manager/internal/configs"
	httpapi "task-manager.com/task-manager/internal/http"
	middleware "task-manager.com/task-manager/internal/http/middlewares"
	repository "task-manager.com/task-manager/internal/repositories"
	"task-manager.com/task-manager/internal/security"
	"task-manager.com/task-manager/internal/services"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task manager HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		database := config.NewDatabaseClient(cfg)

		if autoMigrate {
			if err := config.Migrate(database); err != nil {
				return err
			}
		}

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		authService, err := services.NewAuthService(
			userRepo,
			security.NewPasswordHasher(cfg.BcryptCost),
			security.NewTokenManager(cfg.JWTSecretKey, cfg.JWTExpiration),
		)
		if err != nil {
			return err
		}
		userService := services.NewUserService(userRepo)
		taskService := services.NewTaskService(taskRepo, userRepo)

		var limiter middleware.Limiter = middleware.NewMemoryLimiter(cfg.RateLimit, time.Minute)
		if cfg.RedisAddr != "" {
			redisClient, err := config.NewRedisClient(cfg.RedisAddr)
			if err != nil {
				log.Fatalf("failed to create redis client: %v", err)
			}
			defer redisClient.Close()

			limiter = middleware.NewRedisLimiter(redisClient, cfg.RedisRateLimitPrefix, cfg.RateLimit, time.Minute)
			log.Printf("rate limiting through redis at %s", cfg.RedisAddr)
		}

		handler := httpapi.NewHandler(authService, userService, taskService, repository.NewHealthRepository(database))
		e := httpapi.NewServer(handler, httpapi.Options{
			Limiter:          limiter,
			CORSAllowOrigins: cfg.CORSAllowOrigins,
			LogLevel:         cfg.LogLevel,
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL())
			if err := e.Start(cfg.AppURL()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("server stopped: %v", err)
				stop()
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		_ = e.Shutdown(echoCtx)

		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "apply the database schema before serving")
	rootCmd.AddCommand(serveCmd)
}
