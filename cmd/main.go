package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	getAvailabilityHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_availability"
	getLotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_lot"
	getTicketHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_ticket"
	getTicketsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_tickets"
	parkVehicleHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/park_vehicle"
	unparkVehicleHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/unpark_vehicle"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/infra/pool"
	ticketRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/ticket"
	lotService "github.com/m04kA/SMC-ParkingService/internal/service/lot"
	ticketsService "github.com/m04kA/SMC-ParkingService/internal/service/tickets"
	"github.com/m04kA/SMC-ParkingService/internal/strategy"
	getAvailabilityUC "github.com/m04kA/SMC-ParkingService/internal/usecase/get_availability"
	parkVehicleUC "github.com/m04kA/SMC-ParkingService/internal/usecase/park_vehicle"
	unparkVehicleUC "github.com/m04kA/SMC-ParkingService/internal/usecase/unpark_vehicle"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/memtxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Собираем парковку из статической конфигурации
	parkingLot, err := pool.NewLot(cfg.Lot.Name, cfg.Lot.BuildLevels(), cfg.Lot.BuildCompatRule())
	if err != nil {
		log.Fatal("Failed to build parking lot: %v", err)
	}
	log.Info("Parking lot %q built: %d levels", cfg.Lot.Name, len(cfg.Lot.Levels))

	// In-memory реестр талонов и общий менеджер транзакций для пары
	// пул + реестр: все мутации линеаризуются одной блокировкой
	ticketRepository := ticketRepo.NewRepository()
	txMgr := memtxmanager.NewTransactionManager()

	// Собираем стратегии из конфигурации
	assignment := buildAssignment(cfg.Lot.Assignment)
	invoice := buildInvoice(&cfg.Pricing)
	log.Info("Strategies configured: assignment=%s, pricing=%s (tax=%.1f%%, discounts=%d)",
		cfg.Lot.Assignment, cfg.Pricing.Strategy, cfg.Pricing.TaxPercent, len(cfg.Pricing.Discounts))

	// Инициализируем сервисы
	ticketSvc := ticketsService.NewService(ticketRepository, txMgr, log)
	lotSvc := lotService.NewService(parkingLot, txMgr, log)

	// Инициализируем use cases
	parkVehicleUseCase := parkVehicleUC.NewUseCase(
		parkingLot,
		ticketRepository,
		assignment,
		txMgr,
		log,
	)
	unparkVehicleUseCase := unparkVehicleUC.NewUseCase(
		parkingLot,
		ticketRepository,
		invoice,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		parkingLot,
		txMgr,
		log,
	)

	// Запускаем фоновый сбор метрик занятости
	if cfg.Metrics.Enabled {
		metrics.WatchLotOccupancy(lotSvc, metricsCollector, stopMetricsCh)
		log.Info("Lot occupancy metrics collection started")
	}

	// Инициализируем handlers
	parkVehicle := parkVehicleHandler.NewHandler(parkVehicleUseCase, log)
	unparkVehicle := unparkVehicleHandler.NewHandler(unparkVehicleUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getTicket := getTicketHandler.NewHandler(ticketSvc, log)
	getTickets := getTicketsHandler.NewHandler(ticketSvc, log)
	getLot := getLotHandler.NewHandler(lotSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем rate limit middleware (если включен)
	if cfg.RateLimit.Enabled {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
		r.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled: rps=%.1f, burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность мест по типу транспорта
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Снимок планировки парковки
	api.HandleFunc("/lot", getLot.Handle).Methods(http.MethodGet)

	// Просмотр талона по ID (водитель проверяет свой талон)
	api.HandleFunc("/tickets/{ticketId}", getTicket.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Terminal-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Въезд: выдача талона и выделение места
	protected.HandleFunc("/tickets", parkVehicle.Handle).Methods(http.MethodPost)

	// Выезд: расчёт стоимости, закрытие талона, освобождение места
	protected.HandleFunc("/tickets/{ticketId}/close", unparkVehicle.Handle).Methods(http.MethodPost)

	// Список талонов с фильтрацией (для операторов)
	protected.HandleFunc("/tickets", getTickets.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	log.Info("Shutting down server...")

	// Останавливаем фоновый сбор метрик
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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

// buildAssignment выбирает стратегию назначения мест по конфигурации
func buildAssignment(name string) strategy.Assignment {
	if name == "most_free_level_first" {
		return strategy.NewMostFreeLevelFirst()
	}
	return strategy.NewLowestLevelFirst()
}

// buildInvoice собирает расчёт стоимости из конфигурации тарификации
func buildInvoice(cfg *config.PricingConfig) *strategy.Invoice {
	var fee strategy.Fee
	switch cfg.Strategy {
	case "flat":
		fee = strategy.NewFlatRate(cfg.FlatAmount)
	default:
		fee = strategy.NewHourlyRate(cfg.HourlyRate, cfg.BillingUnit())
	}

	discounts := make([]strategy.Discount, 0, len(cfg.Discounts))
	for _, d := range cfg.Discounts {
		switch d.Type {
		case "percent":
			discounts = append(discounts, strategy.PercentDiscount{Percent: d.Percent})
		case "flat":
			discounts = append(discounts, strategy.FlatDiscount{Amount: d.Amount})
		}
	}

	return strategy.NewInvoice(fee, discounts, cfg.TaxPercent)
}
