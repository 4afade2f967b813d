package main

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsfeed/internal/api/config"
	"newsfeed/internal/pkg/cron"
	"newsfeed/internal/pkg/database"
	"newsfeed/internal/wire"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the GraphQL HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// openDatabase 连接数据库、迁移表结构，并按配置写入示例数据
func openDatabase(ctx context.Context, cfg *config.Config, seed bool) (*gorm.DB, error) {
	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	if err = database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	if seed {
		if _, err = database.Seed(ctx, db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
	}
	return db, nil
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg := config.Cfg
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	db, err := openDatabase(parent, cfg, cfg.DB.Seed)
	if err != nil {
		log.Error("Fatal error: failed to prepare database", "err", err)
		return err
	}
	defer func() { _ = database.Close(db) }()

	// 依赖注入
	app, err := wire.BuildApplication(db, cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		return err
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	if _, err = cron.InitCron(app.CronMgr); err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		return err
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron Jobs stopping...")
		app.CronMgr.Stop()
		return nil
	})

	// HTTP 服务器
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: app.Router,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...",
			"graphql", "http://"+srv.Addr+"/graphql",
			"tester", "http://"+srv.Addr+"/test-graphql",
			"health", "http://"+srv.Addr+"/health",
			"schema", "http://"+srv.Addr+"/schema",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig.String())
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
		return err
	}
	log.Info("App exited successfully.")
	return nil
}
