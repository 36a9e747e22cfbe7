// Package main はAPIサーバーのエントリーポイントです。
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-portal/internal/assessments"
	"github.com/yourusername/quiz-portal/internal/auth"
	"github.com/yourusername/quiz-portal/internal/config"
	"github.com/yourusername/quiz-portal/internal/database"
	"github.com/yourusername/quiz-portal/internal/pages"
	"github.com/yourusername/quiz-portal/internal/server"
	"github.com/yourusername/quiz-portal/internal/session"
	"github.com/yourusername/quiz-portal/internal/users"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("quiz-portal: %v", err)
	}
}

func run() error {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	logger := log.Default()

	db, err := database.Open(cfg.DatabaseURL, cfg.IsRelease())
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Printf("failed to close database: %v", err)
		}
	}()
	if err := database.Migrate(db); err != nil {
		return err
	}

	store, closeStore, err := setupSessionStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	catalog, err := pages.Load(cfg.ViewsDir)
	if err != nil {
		return err
	}

	directory := users.NewGormDirectory(db)
	sessions := session.NewManager(store, cfg.SessionTTL())

	router := server.NewRouter(server.Deps{
		Config:      cfg,
		Auth:        auth.NewManager(directory, sessions, logger),
		Users:       users.NewHandler(directory, sessions, logger),
		Assessments: assessments.NewHandler(assessments.NewService(assessments.NewGormLog(db)), logger),
		Pages:       catalog,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Printf("Starting server on %s (mode: %s)", srv.Addr, cfg.GinMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case <-quit:
	}

	logger.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
