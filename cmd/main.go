package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-WebAppOrderBot/internal/api/handlers/health"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/api/handlers/telegram_webhook"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/api/handlers/verify_init_data"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/api/middleware"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/config"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/service/telegram"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/usecase/start_command"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/usecase/webapp_order"
	"github.com/m04kA/SMC-WebAppOrderBot/internal/worker"
	"github.com/m04kA/SMC-WebAppOrderBot/pkg/logger"
	"github.com/m04kA/SMC-WebAppOrderBot/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию: config.toml + env + CLI аргументы
	// Формат запуска: <bot_token> [webapp_url]
	cfg, err := config.Load("config.toml", os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: %s <bot_token> [webapp_url]\n\nError: %v\n", filepath.Base(os.Args[0]), err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-WebAppOrderBot...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем Telegram Bot API
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		log.Fatal("Failed to initialize Telegram Bot API: %v", err)
	}
	log.Info("Telegram Bot API initialized (@%s)", bot.Self.UserName)

	// Инициализируем Telegram Service
	telegramSvc := telegram.NewService(bot)

	// Инициализируем use cases
	if cfg.WebApp.URL != "" {
		log.Info("WebApp URL configured: %s", cfg.WebApp.URL)
	} else {
		log.Warn("WebApp URL is not configured, falling back to placeholder")
	}

	startCommandUC := start_command.New(telegramSvc, cfg.WebApp.URL)
	webAppOrderUC := webapp_order.New(telegramSvc, log, metricsCollector)

	// Создаём контекст с возможностью отмены для управления жизненным циклом горутин
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	// Определяем режим работы: Webhook или Long Polling
	if cfg.Telegram.WebhookURL != "" {
		// Режим Webhook
		log.Info("Using Webhook mode")

		if err := telegramSvc.SetWebhook(cfg.Telegram.WebhookURL); err != nil {
			log.Fatal("Failed to set Telegram webhook: %v", err)
		}
		log.Info("Telegram webhook set to %s", cfg.Telegram.WebhookURL)
	} else {
		// Режим Long Polling
		log.Info("Using Long Polling mode")

		if err := telegramSvc.DeleteWebhook(); err != nil {
			log.Warn("Failed to delete webhook (may not exist): %v", err)
		}

		pollingHandler := worker.NewPollingHandler(startCommandUC, webAppOrderUC, telegramSvc, log)

		// Запускаем long polling в фоне
		updatesChan := telegramSvc.GetUpdatesChan(0)
		go pollingHandler.Start(ctx, updatesChan)
		log.Info("Telegram long polling started")
	}

	// Инициализируем handlers
	healthHandler := health.NewHandler()
	telegramWebhookHandler := telegram_webhook.NewHandler(startCommandUC, webAppOrderUC, telegramSvc, log)
	verifyInitDataHandler := verify_init_data.NewHandler(cfg.Telegram.BotToken, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestIDMiddleware())

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Публичные endpoints
	r.HandleFunc("/health", healthHandler.Handle).Methods(http.MethodGet)
	r.HandleFunc("/webhook/telegram", telegramWebhookHandler.Handle).Methods(http.MethodPost)

	// Metrics endpoint (публичный)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API v1 endpoints
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/initdata/verify", verifyInitDataHandler.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем HTTP сервер
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	// Останавливаем polling перед сервером
	cancelCtx()

	// Graceful shutdown HTTP сервера
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
