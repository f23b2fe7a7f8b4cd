package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"mountainride-backend/internal/api/grpc/interceptor"
	httpapi "mountainride-backend/internal/api/http"
	"mountainride-backend/internal/config"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/repository/postgres"
	"mountainride-backend/internal/security"
	"mountainride-backend/internal/service"

	_ "github.com/lib/pq"
)

const healthProbeInterval = 15 * time.Second

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Mountain Ride Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "grpc_address", cfg.GetGRPCAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "enabled", cfg.SMTP.Enabled, "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)
	repos := store.Repositories()

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenTTL())

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SMTP)
	clock := service.Clock(nil)
	handlers := &httpapi.Handlers{
		Auth:          service.NewAuthService(store.EmployeeRepository, tokenManager),
		Rentals:       service.NewRentalService(store, repos, service.NewRentalCodeGenerator(clock), clock, emailSvc),
		Customers:     service.NewCustomerService(store.CustomerRepository),
		ProductTypes:  service.NewProductTypeService(store.ProductTypeRepository, store.ProductRepository),
		Products:      service.NewProductService(store.ProductRepository, store.ProductTypeRepository),
		ProductPrices: service.NewProductPriceService(store.ProductPriceRepository, store.ProductRepository),
		RentalItems:   service.NewRentalItemService(store.RentalItemRepository, store.RentalRepository, store.ProductRepository),
	}

	// Set up HTTP server
	httpServer := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      httpapi.NewRouter(handlers, tokenManager, db),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}
	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	// Set up gRPC health server
	var grpcServer *grpc.Server
	if cfg.Server.GRPCPort != 0 {
		lis, err := net.Listen("tcp", cfg.GetGRPCAddress())
		if err != nil {
			logger.Error("Failed to listen", "error", err, "address", cfg.GetGRPCAddress())
			log.Fatalf("Failed to listen: %v", err)
		}

		grpcServer = grpc.NewServer(
			grpc.UnaryInterceptor(interceptor.NewLoggingInterceptor().Unary()),
		)
		healthSrv := health.NewServer()
		healthpb.RegisterHealthServer(grpcServer, healthSrv)

		// Register reflection service for grpcurl
		reflection.Register(grpcServer)

		go probeDatabase(db, healthSrv)
		go func() {
			logger.Info("gRPC health server listening", "address", cfg.GetGRPCAddress())
			if err := grpcServer.Serve(lis); err != nil {
				logger.Error("Failed to serve gRPC", "error", err)
			}
		}()
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down servers...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP shutdown error", "error", err)
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	logger.Info("Servers stopped. Goodbye!")
}

// probeDatabase keeps the gRPC health status in line with database reachability
func probeDatabase(db *sql.DB, healthSrv *health.Server) {
	ticker := time.NewTicker(healthProbeInterval)
	defer ticker.Stop()

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		status := healthpb.HealthCheckResponse_SERVING
		if err := db.PingContext(ctx); err != nil {
			logger.Warn("Database ping failed", "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		cancel()
		healthSrv.SetServingStatus("", status)

		<-ticker.C
	}
}
