package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/teresa-solution/rental-management-service/internal/api"
	"github.com/teresa-solution/rental-management-service/internal/config"
	"github.com/teresa-solution/rental-management-service/internal/monitoring"
	"github.com/teresa-solution/rental-management-service/internal/service"
	"github.com/teresa-solution/rental-management-service/internal/session"
	"github.com/teresa-solution/rental-management-service/internal/store"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.MustLoad()

	db, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	sessions := session.NewStore(rdb, cfg.SessionTTL)
	defer sessions.Close()

	landlordRepo := store.NewLandlordRepository(db)
	tenantRepo := store.NewTenantRepository(db)
	buildingRepo := store.NewBuildingRepository(db)
	propertyTypeRepo := store.NewPropertyTypeRepository(db)
	paymentRepo := store.NewPaymentRepository(db)

	landlordService := service.NewLandlordService(landlordRepo, tenantRepo, buildingRepo, paymentRepo)
	tenantService := service.NewTenantService(tenantRepo, buildingRepo, landlordRepo)
	buildingService := service.NewBuildingService(buildingRepo, paymentRepo, landlordRepo, tenantRepo, propertyTypeRepo)
	propertyTypeService := service.NewPropertyTypeService(propertyTypeRepo, buildingRepo)
	paymentService := service.NewPaymentService(paymentRepo, buildingRepo)

	monitoring.InitMetrics()

	handler := api.New(landlordService, tenantService, buildingService,
		propertyTypeService, paymentService, sessions)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("env", cfg.Env).Msgf("Starting Rental Management Service on %s", cfg.HTTPAddr)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})
		mux.Handle("/metrics", promhttp.Handler())

		metricsServer := &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: mux,
		}

		log.Info().Msgf("HTTP server for health checks and metrics started on %s", cfg.MetricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Metrics server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down gracefully")
	}
	log.Info().Msg("Server exiting")
}
