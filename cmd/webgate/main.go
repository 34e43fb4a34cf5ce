package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/webgate/internal/config"
	"github.com/xxxsen/webgate/internal/handler"
	"github.com/xxxsen/webgate/internal/pkg/session"
	"github.com/xxxsen/webgate/internal/service"
	"github.com/xxxsen/webgate/internal/store"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "webgate",
		Short: "webgate session auth gateway",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run webgate server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config) error {
	userStore := store.NewFileStore(cfg.UsersPath)
	authService := service.NewAuthService(userStore)
	sessions := session.NewManager([]byte(cfg.SessionSecret), time.Hour*time.Duration(cfg.SessionTTLHours))

	router := handler.NewRouter(handler.RouterDeps{
		Auth:          handler.NewAuthHandler(authService, sessions),
		Pages:         handler.NewPageHandler(authService),
		Sessions:      sessions,
		TemplatesGlob: cfg.TemplatesGlob,
		StaticDir:     cfg.StaticDir,
		CORSAllowlist: cfg.CORSAllowlist,
	})

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: router}
	logutil.GetLogger(context.Background()).Info(
		"http server listening",
		zap.String("addr", addr),
		zap.String("users_path", cfg.UsersPath),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
