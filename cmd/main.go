package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookroomhandler "github.com/petmarket/PSM-BookingGateway/internal/api/handlers/book_room"
	createappointmenthandler "github.com/petmarket/PSM-BookingGateway/internal/api/handlers/create_appointment"
	getappointmenthandler "github.com/petmarket/PSM-BookingGateway/internal/api/handlers/get_appointment"
	getservicetypeshandler "github.com/petmarket/PSM-BookingGateway/internal/api/handlers/get_service_types"
	getserviceshandler "github.com/petmarket/PSM-BookingGateway/internal/api/handlers/get_services"
	getshophandler "github.com/petmarket/PSM-BookingGateway/internal/api/handlers/get_shop"
	updatestatushandler "github.com/petmarket/PSM-BookingGateway/internal/api/handlers/update_appointment_status"
	"github.com/petmarket/PSM-BookingGateway/internal/api/middleware"
	"github.com/petmarket/PSM-BookingGateway/internal/config"
	"github.com/petmarket/PSM-BookingGateway/internal/infra/storage/bookingrequest"
	"github.com/petmarket/PSM-BookingGateway/internal/integrations/petcare"
	"github.com/petmarket/PSM-BookingGateway/internal/service/appointments"
	"github.com/petmarket/PSM-BookingGateway/internal/service/catalog"
	bookroomusecase "github.com/petmarket/PSM-BookingGateway/internal/usecase/book_room"
	createappointmentusecase "github.com/petmarket/PSM-BookingGateway/internal/usecase/create_appointment"
	"github.com/petmarket/PSM-BookingGateway/pkg/logger"
	"github.com/petmarket/PSM-BookingGateway/pkg/metrics"
)

const configPath = "config.toml"

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logs, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logs.Close()

	var serviceMetrics *metrics.Metrics
	if cfg.Metrics.Enabled {
		serviceMetrics = metrics.New(cfg.Metrics.ServiceName)
		logs.Info("Prometheus metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		logs.Fatal("Failed to open database connection: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		logs.Fatal("Failed to ping database: %v", err)
	}
	logs.Info("Connected to database %s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Интеграции
	petcareClient := petcare.NewClient(
		cfg.PetCare.URL,
		time.Duration(cfg.PetCare.Timeout)*time.Second,
		logs,
		serviceMetrics,
	)

	// Хранилища
	requestRegistry := bookingrequest.NewRepository(db)

	// Use cases и сервисы
	createAppointmentUseCase := createappointmentusecase.NewUseCase(petcareClient, requestRegistry, logs)
	bookRoomUseCase := bookroomusecase.NewUseCase(petcareClient, logs)
	appointmentsService := appointments.NewService(petcareClient, logs)
	catalogService := catalog.NewService(petcareClient, logs)

	// Обработчики
	createAppointmentHandler := createappointmenthandler.NewHandler(createAppointmentUseCase, logs)
	bookRoomHandler := bookroomhandler.NewHandler(bookRoomUseCase, logs)
	getAppointmentHandler := getappointmenthandler.NewHandler(appointmentsService, logs)
	updateStatusHandler := updatestatushandler.NewHandler(appointmentsService, logs)
	getShopHandler := getshophandler.NewHandler(catalogService, logs)
	getServicesHandler := getserviceshandler.NewHandler(catalogService, logs)
	getServiceTypesHandler := getservicetypeshandler.NewHandler(catalogService, logs)

	router := mux.NewRouter()

	if serviceMetrics != nil {
		router.Use(middleware.Metrics(serviceMetrics))
		router.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	// Публичные справочные маршруты
	public := router.PathPrefix("/api/v1").Subrouter()
	public.HandleFunc("/shops/{shopId}", getShopHandler.Handle).Methods(http.MethodGet)
	public.HandleFunc("/shops/{shopId}/services", getServicesHandler.Handle).Methods(http.MethodGet)
	public.HandleFunc("/service-types", getServiceTypesHandler.Handle).Methods(http.MethodGet)

	// Маршруты, требующие идентификации пользователя
	protected := router.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings", createAppointmentHandler.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/room-bookings", bookRoomHandler.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointmentHandler.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatusHandler.Handle).Methods(http.MethodPatch)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logs.Info("Starting HTTP server on port %d", cfg.Server.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Fatal("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logs.Info("Shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logs.Error("Failed to shutdown server gracefully: %v", err)
	}

	logs.Info("Server stopped")
}
