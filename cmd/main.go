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

	closeSearchSessionHandler "github.com/m04kA/TMP-SearchService/internal/api/handlers/close_search_session"
	createSearchSessionHandler "github.com/m04kA/TMP-SearchService/internal/api/handlers/create_search_session"
	getSearchResultsHandler "github.com/m04kA/TMP-SearchService/internal/api/handlers/get_search_results"
	getTutorScheduleHandler "github.com/m04kA/TMP-SearchService/internal/api/handlers/get_tutor_schedule"
	searchTutorsHandler "github.com/m04kA/TMP-SearchService/internal/api/handlers/search_tutors"
	updateSearchFiltersHandler "github.com/m04kA/TMP-SearchService/internal/api/handlers/update_search_filters"
	"github.com/m04kA/TMP-SearchService/internal/api/middleware"
	"github.com/m04kA/TMP-SearchService/internal/config"
	scheduleCache "github.com/m04kA/TMP-SearchService/internal/infra/cache/schedule"
	scheduleServiceClient "github.com/m04kA/TMP-SearchService/internal/integrations/scheduleservice"
	tutorDirectoryClient "github.com/m04kA/TMP-SearchService/internal/integrations/tutordirectory"
	schedulesService "github.com/m04kA/TMP-SearchService/internal/service/schedules"
	searchService "github.com/m04kA/TMP-SearchService/internal/service/search"
	getWeekAvailabilityUC "github.com/m04kA/TMP-SearchService/internal/usecase/get_week_availability"
	searchTutorsUC "github.com/m04kA/TMP-SearchService/internal/usecase/search_tutors"
	"github.com/m04kA/TMP-SearchService/pkg/logger"
	"github.com/m04kA/TMP-SearchService/pkg/metrics"
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

	log.Info("Starting TMP-SearchService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	directoryClient := tutorDirectoryClient.NewClient(
		cfg.TutorDirectory.URL,
		time.Duration(cfg.TutorDirectory.Timeout)*time.Second,
		log,
	)
	scheduleClient := scheduleServiceClient.NewClient(
		cfg.ScheduleService.URL,
		time.Duration(cfg.ScheduleService.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		directoryClient.EnableMetrics(metricsCollector)
		scheduleClient.EnableMetrics(metricsCollector)
		log.Info("Integration metrics collection started")
	}
	log.Info("Integration clients initialized (TutorDirectory=%s timeout=%ds, ScheduleService=%s timeout=%ds)",
		cfg.TutorDirectory.URL, cfg.TutorDirectory.Timeout, cfg.ScheduleService.URL, cfg.ScheduleService.Timeout)

	// Инициализируем кэш расписаний (если включен)
	var weekCache schedulesService.ScheduleCache
	if cfg.ScheduleCache.Enabled {
		cache, err := scheduleCache.New(
			cfg.ScheduleCache.Size,
			time.Duration(cfg.ScheduleCache.TTLMinutes)*time.Minute,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize schedule cache: %v", err)
		}
		weekCache = cache
		log.Info("Schedule cache enabled (size=%d, ttl=%dm)",
			cfg.ScheduleCache.Size, cfg.ScheduleCache.TTLMinutes)
	}

	// Инициализируем сервисы
	schedulesSvc := schedulesService.NewService(scheduleClient, weekCache, log)
	if cfg.Metrics.Enabled {
		schedulesSvc.EnableCacheMetrics(
			metricsCollector.ScheduleCacheHits,
			metricsCollector.ScheduleCacheMisses,
		)
	}

	// Инициализируем use cases
	searchTutorsUseCase := searchTutorsUC.NewUseCase(
		directoryClient,
		schedulesSvc,
		cfg.Search.PageSize,
		log,
	)
	getWeekAvailabilityUseCase := getWeekAvailabilityUC.NewUseCase(
		schedulesSvc,
		log,
	)

	// Инициализируем сервис поисковых сессий
	sessionTTL := time.Duration(cfg.Search.SessionTTLMinutes) * time.Minute
	searchSvc := searchService.NewService(searchTutorsUseCase, sessionTTL, log)

	// Фоновая чистка протухших сессий
	stopPruneCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(sessionTTL / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				searchSvc.PruneExpired()
			case <-stopPruneCh:
				return
			}
		}
	}()

	// Инициализируем handlers
	searchTutors := searchTutorsHandler.NewHandler(searchTutorsUseCase, log)
	getTutorSchedule := getTutorScheduleHandler.NewHandler(getWeekAvailabilityUseCase, log)
	createSearchSession := createSearchSessionHandler.NewHandler(searchSvc, log)
	updateSearchFilters := updateSearchFiltersHandler.NewHandler(searchSvc, log)
	getSearchResults := getSearchResultsHandler.NewHandler(searchSvc, log)
	closeSearchSession := closeSearchSessionHandler.NewHandler(searchSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Одноразовый поиск репетиторов
	api.HandleFunc("/tutors", searchTutors.Handle).Methods(http.MethodGet)

	// Сетка доступности репетитора на текущую неделю
	api.HandleFunc("/tutors/{tutorId}/schedule", getTutorSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Поисковые сессии ---
	// Создание сессии поиска
	protected.HandleFunc("/search-sessions", createSearchSession.Handle).Methods(http.MethodPost)

	// Замена фильтров сессии
	protected.HandleFunc("/search-sessions/{sessionId}/filters", updateSearchFilters.Handle).Methods(http.MethodPut)

	// Текущая страница выдачи сессии
	protected.HandleFunc("/search-sessions/{sessionId}/results", getSearchResults.Handle).Methods(http.MethodGet)

	// Закрытие сессии
	protected.HandleFunc("/search-sessions/{sessionId}", closeSearchSession.Handle).Methods(http.MethodDelete)

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

	// Останавливаем фоновую чистку сессий
	close(stopPruneCh)

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
