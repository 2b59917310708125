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

	cancelBookingHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/create_booking"
	createSupportTicketHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/create_support_ticket"
	createVehicleHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/create_vehicle"
	entryScanHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/entry_scan"
	exitScanHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/exit_scan"
	getAvailableSlotsHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/get_booking"
	getCentreHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/get_centre"
	getCentreBookingsHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/get_centre_bookings"
	getLoyaltyPointsHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/get_loyalty_points"
	getUserBookingsHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/get_user_bookings"
	getUserVehiclesHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/get_user_vehicles"
	listCentresHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/list_centres"
	listMembershipPlansHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/list_membership_plans"
	listSupportTicketsHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/list_support_tickets"
	scanTokenHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/scan_token"
	subscribeMembershipHandler "github.com/parkwise/PW-BookingService/internal/api/handlers/subscribe_membership"
	"github.com/parkwise/PW-BookingService/internal/api/middleware"
	"github.com/parkwise/PW-BookingService/internal/config"
	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/infra/events"
	bookingRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/booking"
	centreRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/centre"
	loyaltyRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/loyalty"
	membershipRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/membership"
	paymentRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/payment"
	rolesRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/roles"
	slotRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/slot"
	supportRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/support"
	tokenRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/token"
	vehicleRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/vehicle"
	bookingsService "github.com/parkwise/PW-BookingService/internal/service/bookings"
	centresService "github.com/parkwise/PW-BookingService/internal/service/centres"
	loyaltyService "github.com/parkwise/PW-BookingService/internal/service/loyalty"
	membershipsService "github.com/parkwise/PW-BookingService/internal/service/memberships"
	supportService "github.com/parkwise/PW-BookingService/internal/service/support"
	vehiclesService "github.com/parkwise/PW-BookingService/internal/service/vehicles"
	createBookingUC "github.com/parkwise/PW-BookingService/internal/usecase/create_booking"
	entryScanUC "github.com/parkwise/PW-BookingService/internal/usecase/entry_scan"
	exitScanUC "github.com/parkwise/PW-BookingService/internal/usecase/exit_scan"
	getAvailableSlotsUC "github.com/parkwise/PW-BookingService/internal/usecase/get_available_slots"
	scanTokenUC "github.com/parkwise/PW-BookingService/internal/usecase/scan_token"
	"github.com/parkwise/PW-BookingService/internal/worker"
	"github.com/parkwise/PW-BookingService/pkg/dbmetrics"
	"github.com/parkwise/PW-BookingService/pkg/logger"
	"github.com/parkwise/PW-BookingService/pkg/metrics"
	"github.com/parkwise/PW-BookingService/pkg/simpletxmanager"
	"github.com/parkwise/PW-BookingService/pkg/txmanager"
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

	log.Info("Starting PW-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

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

	// Инициализируем publisher событий
	var publisher events.Publisher
	if cfg.Events.Enabled {
		rabbitPublisher, err := events.NewRabbitPublisher(cfg.Events.URL, cfg.Events.QueueName, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = rabbitPublisher
		log.Info("Event publisher connected (queue=%s)", cfg.Events.QueueName)
	} else {
		publisher = events.NoopPublisher{}
		log.Info("Event publishing disabled")
	}
	defer publisher.Close()

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager
	var executor dbmetrics.DBExecutor = db

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(executor)
	slotRepository := slotRepo.NewRepository(executor)
	centreRepository := centreRepo.NewRepository(executor)
	vehicleRepository := vehicleRepo.NewRepository(executor)
	tokenRepository := tokenRepo.NewRepository(executor)
	paymentRepository := paymentRepo.NewRepository(executor)
	loyaltyRepository := loyaltyRepo.NewRepository(executor)
	membershipRepository := membershipRepo.NewRepository(executor)
	rolesRepository := rolesRepo.NewRepository(executor)
	supportRepository := supportRepo.NewRepository(executor)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		paymentRepository,
		rolesRepository,
		publisher,
		txMgr,
		log,
	)
	centreSvc := centresService.NewService(centreRepository, log)
	vehicleSvc := vehiclesService.NewService(vehicleRepository, log)
	membershipSvc := membershipsService.NewService(membershipRepository, txMgr, log)
	loyaltySvc := loyaltyService.NewService(loyaltyRepository, log)
	supportSvc := supportService.NewService(supportRepository, rolesRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		vehicleRepository,
		membershipRepository,
		loyaltyRepository,
		paymentRepository,
		tokenRepository,
		publisher,
		txMgr,
		log,
	)
	entryScanUseCase := entryScanUC.NewUseCase(
		bookingRepository,
		slotRepository,
		tokenRepository,
		publisher,
		txMgr,
		log,
	)
	exitScanUseCase := exitScanUC.NewUseCase(
		bookingRepository,
		slotRepository,
		tokenRepository,
		paymentRepository,
		publisher,
		txMgr,
		log,
	)
	scanTokenUseCase := scanTokenUC.NewUseCase(
		tokenRepository,
		bookingRepository,
		slotRepository,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(centreRepository, slotRepository, log)

	// Инициализируем handlers
	listCentres := listCentresHandler.NewHandler(centreSvc, log)
	getCentre := getCentreHandler.NewHandler(centreSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listMembershipPlans := listMembershipPlansHandler.NewHandler(membershipSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getCentreBookings := getCentreBookingsHandler.NewHandler(bookingSvc, log)
	entryScan := entryScanHandler.NewHandler(entryScanUseCase, log)
	exitScan := exitScanHandler.NewHandler(exitScanUseCase, log)
	scanToken := scanTokenHandler.NewHandler(scanTokenUseCase, log)
	getLoyaltyPoints := getLoyaltyPointsHandler.NewHandler(loyaltySvc, log)
	subscribeMembership := subscribeMembershipHandler.NewHandler(membershipSvc, log)
	createVehicle := createVehicleHandler.NewHandler(vehicleSvc, log)
	getUserVehicles := getUserVehiclesHandler.NewHandler(vehicleSvc, log)
	createSupportTicket := createSupportTicketHandler.NewHandler(supportSvc, log)
	listSupportTickets := listSupportTicketsHandler.NewHandler(supportSvc, log)

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

	// Каталог парковочных центров
	api.HandleFunc("/centres", listCentres.Handle).Methods(http.MethodGet)
	api.HandleFunc("/centres/{centreId}", getCentre.Handle).Methods(http.MethodGet)

	// Свободные слоты центра
	api.HandleFunc("/centres/{centreId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Тарифные планы подписок
	api.HandleFunc("/membership-plans", listMembershipPlans.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.NewAuth(rolesRepository, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Транспортные средства ---
	protected.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/vehicles", getUserVehicles.Handle).Methods(http.MethodGet)

	// --- Лояльность и подписки ---
	protected.HandleFunc("/users/{userId}/loyalty-points", getLoyaltyPoints.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/memberships/subscribe", subscribeMembership.Handle).Methods(http.MethodPost)

	// --- Поддержка ---
	protected.HandleFunc("/support/tickets", createSupportTicket.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/support/tickets", listSupportTickets.Handle).Methods(http.MethodGet)

	// --- Операции персонала (дежурные, менеджеры, админы) ---
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireRoles(log, domain.RoleAttendant, domain.RoleManager, domain.RoleAdmin))

	staff.HandleFunc("/bookings/entry", entryScan.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/exit", exitScan.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/tokens/scan", scanToken.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/centres/{centreId}/bookings", getCentreBookings.Handle).Methods(http.MethodGet)

	// Запускаем фоновый воркер отмены просроченных бронирований
	workerCtx, stopWorker := context.WithCancel(context.Background())
	expirer := worker.NewExpirer(
		bookingRepository,
		slotRepository,
		paymentRepository,
		membershipRepository,
		publisher,
		txMgr,
		time.Duration(cfg.Booking.PendingTTLMinutes)*time.Minute,
		time.Duration(cfg.Booking.ExpirySweepSeconds)*time.Second,
		log,
	)
	go expirer.Run(workerCtx)

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

	// Останавливаем воркер
	stopWorker()

	// Останавливаем сбор метрик connection pool
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
