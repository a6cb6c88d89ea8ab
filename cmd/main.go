package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/m04kA/ESJ-BookingService/internal/api/handlers/admin_login"
	attractionsHandler "github.com/m04kA/ESJ-BookingService/internal/api/handlers/attractions"
	cartaHandler "github.com/m04kA/ESJ-BookingService/internal/api/handlers/carta"
	eventsHandler "github.com/m04kA/ESJ-BookingService/internal/api/handlers/events"
	galleryHandler "github.com/m04kA/ESJ-BookingService/internal/api/handlers/gallery"
	getDashboardHandler "github.com/m04kA/ESJ-BookingService/internal/api/handlers/get_dashboard"
	getScheduleHandler "github.com/m04kA/ESJ-BookingService/internal/api/handlers/get_schedule"
	hotelReservationsHandler "github.com/m04kA/ESJ-BookingService/internal/api/handlers/hotel_reservations"
	menuDelDiaHandler "github.com/m04kA/ESJ-BookingService/internal/api/handlers/menu_del_dia"
	restaurantReservationsHandler "github.com/m04kA/ESJ-BookingService/internal/api/handlers/restaurant_reservations"
	roomsHandler "github.com/m04kA/ESJ-BookingService/internal/api/handlers/rooms"
	updateScheduleHandler "github.com/m04kA/ESJ-BookingService/internal/api/handlers/update_schedule"
	"github.com/m04kA/ESJ-BookingService/internal/api/middleware"
	"github.com/m04kA/ESJ-BookingService/internal/config"
	contentRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/content"
	hotelReservationRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/hotelreservation"
	menuRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/menu"
	restaurantReservationRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/restaurantreservation"
	roomRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/room"
	scheduleRepo "github.com/m04kA/ESJ-BookingService/internal/infra/storage/schedule"
	authService "github.com/m04kA/ESJ-BookingService/internal/service/auth"
	contentService "github.com/m04kA/ESJ-BookingService/internal/service/content"
	reservationsService "github.com/m04kA/ESJ-BookingService/internal/service/reservations"
	roomsService "github.com/m04kA/ESJ-BookingService/internal/service/rooms"
	scheduleService "github.com/m04kA/ESJ-BookingService/internal/service/schedule"
	computeDashboardUC "github.com/m04kA/ESJ-BookingService/internal/usecase/compute_dashboard"
	createHotelReservationUC "github.com/m04kA/ESJ-BookingService/internal/usecase/create_hotel_reservation"
	createRestaurantReservationUC "github.com/m04kA/ESJ-BookingService/internal/usecase/create_restaurant_reservation"
	resolveScheduleUC "github.com/m04kA/ESJ-BookingService/internal/usecase/resolve_schedule"
	"github.com/m04kA/ESJ-BookingService/pkg/dbmetrics"
	"github.com/m04kA/ESJ-BookingService/pkg/logger"
	"github.com/m04kA/ESJ-BookingService/pkg/metrics"
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

	log.Info("Starting ESJ-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории работают через DBExecutor: с метриками или напрямую
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.Wrap(db, metricsCollector)
		log.Info("Database metrics collection enabled")
	}

	// Инициализируем репозитории
	roomRepository := roomRepo.NewRepository(executor)
	hotelReservationRepository := hotelReservationRepo.NewRepository(executor)
	restaurantReservationRepository := restaurantReservationRepo.NewRepository(executor)
	scheduleRepository := scheduleRepo.NewRepository(executor)
	menuRepository := menuRepo.NewRepository(executor)
	contentRepository := contentRepo.NewRepository(executor)

	// Инициализируем сервисы
	roomsSvc := roomsService.NewService(roomRepository, log)
	reservationsSvc := reservationsService.NewService(
		hotelReservationRepository,
		restaurantReservationRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	contentSvc := contentService.NewService(menuRepository, contentRepository, log)
	authSvc := authService.NewService(
		cfg.Auth.AdminUsername,
		cfg.Auth.AdminPasswordSHA,
		time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute,
		authService.WallClock{},
		log,
	)

	// Инициализируем use cases
	resolveScheduleUseCase := resolveScheduleUC.NewUseCase(scheduleRepository, log)
	computeDashboardUseCase := computeDashboardUC.NewUseCase(
		roomRepository,
		hotelReservationRepository,
		restaurantReservationRepository,
		menuRepository,
		log,
	)
	createHotelReservationUseCase := createHotelReservationUC.NewUseCase(
		roomRepository,
		hotelReservationRepository,
		log,
	)
	createRestaurantReservationUseCase := createRestaurantReservationUC.NewUseCase(
		scheduleRepository,
		restaurantReservationRepository,
		log,
	)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(resolveScheduleUseCase, scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	getDashboard := getDashboardHandler.NewHandler(computeDashboardUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	rooms := roomsHandler.NewHandler(roomsSvc, log)
	hotelReservations := hotelReservationsHandler.NewHandler(createHotelReservationUseCase, reservationsSvc, log)
	restaurantReservations := restaurantReservationsHandler.NewHandler(createRestaurantReservationUseCase, reservationsSvc, log)
	carta := cartaHandler.NewHandler(contentSvc, log)
	menuDelDia := menuDelDiaHandler.NewHandler(contentSvc, log)
	attractions := attractionsHandler.NewHandler(contentSvc, log)
	events := eventsHandler.NewHandler(contentSvc, log)
	gallery := galleryHandler.NewHandler(contentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расписание ресторана: доступность на дату или полная таблица
	api.HandleFunc("/restaurant/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Публичный контент сайта
	api.HandleFunc("/rooms", rooms.HandleListPublic).Methods(http.MethodGet)
	api.HandleFunc("/carta", carta.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/menu-del-dia", menuDelDia.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/attractions", attractions.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/events", events.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/gallery", gallery.HandleList).Methods(http.MethodGet)

	// Публичные формы бронирования
	api.HandleFunc("/hotel-reservations", hotelReservations.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/restaurant-reservations", restaurantReservations.HandleCreate).Methods(http.MethodPost)

	// Вход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	// Аналитический дашборд
	protected.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// Управление расписанием ресторана
	protected.HandleFunc("/restaurant/schedule/{dayOfWeek}", updateSchedule.Handle).Methods(http.MethodPut)

	// Администрирование бронирований
	protected.HandleFunc("/hotel-reservations", hotelReservations.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/hotel-reservations/{id}/status", hotelReservations.HandleUpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/restaurant-reservations", restaurantReservations.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/restaurant-reservations/{id}/status", restaurantReservations.HandleUpdateStatus).Methods(http.MethodPatch)

	// Управление номерами
	protected.HandleFunc("/admin/rooms", rooms.HandleListAdmin).Methods(http.MethodGet)
	protected.HandleFunc("/rooms", rooms.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{id}", rooms.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/rooms/{id}", rooms.HandleDelete).Methods(http.MethodDelete)

	// Управление картой и меню дня
	protected.HandleFunc("/carta", carta.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/carta/{id}", carta.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/carta/{id}", carta.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/menu-del-dia", menuDelDia.HandleUpdate).Methods(http.MethodPut)

	// Управление контентом сайта
	protected.HandleFunc("/attractions", attractions.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/attractions/{id}", attractions.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/attractions/{id}", attractions.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/events", events.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/events/{id}", events.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/events/{id}", events.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/gallery", gallery.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/gallery/{id}", gallery.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/gallery/{id}", gallery.HandleDelete).Methods(http.MethodDelete)

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
