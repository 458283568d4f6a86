// Package main, campus backend-for-frontend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi: Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Logger'ı kur
//  3. Upstream API client'ını oluştur
//  4. Service'leri ve rate limiter'ları oluştur
//  5. Handler'ları oluştur
//  6. HTTP router'ı kur, route'ları bağla
//  7. Middleware zinciri + CORS
//  8. HTTP Server'ı başlat
//  9. Graceful shutdown
//
// Global değişken YOK, her şey burada oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/djangocampus/campus/config"
	"github.com/djangocampus/campus/middleware"
	"github.com/djangocampus/campus/pkg/logger"
)

// retryDelay, API_RETRY_ATTEMPTS > 1 iken GET denemeleri arası bekleme.
const retryDelay = 300 * time.Millisecond

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "campus: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─── 2. Logger ───
	lggr, err := logger.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() { _ = lggr.Sync() }()

	lggr.Infow("campus server starting", "port", cfg.Server.Port, "api_url", cfg.API.BaseURL)

	// ─── 3. Upstream API ───
	api, err := newAPIClient(cfg, lggr)
	if err != nil {
		return err
	}

	// ─── 4. Service Layer ───
	svcs, limiters := initServices(api, cfg, lggr)
	defer limiters.Form.Stop()

	// ─── 5. Handler Layer ───
	h := initHandlers(svcs, cfg)

	// ─── 6. HTTP Router ───
	mux := http.NewServeMux()
	initRoutes(mux, h, limiters)

	// ─── 7. Middleware + CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: false,
	})

	httpLog := logger.Named(lggr, "http")
	var handler http.Handler = corsHandler.Handler(mux)
	handler = middleware.Recover(httpLog)(handler)
	handler = middleware.AccessLog(httpLog)(handler)
	handler = middleware.RequestID(handler)

	// ─── 8. HTTP Server ───
	// WriteTimeout upstream timeout'undan uzun olmalı; aksi halde yavaş backend'de
	// yanıt yazılamadan bağlantı kesilir.
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.API.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 9. Graceful Shutdown ───
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		lggr.Infow("server listening", "addr", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	lggr.Infow("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	lggr.Infow("server stopped gracefully")
	return nil
}
