package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/app"
	attrH "github.com/fekuna/omnipos-catalog-service/internal/attribute/handler"
	"github.com/fekuna/omnipos-catalog-service/internal/item/listener"
	nodeH "github.com/fekuna/omnipos-catalog-service/internal/node/handler"
	"github.com/fekuna/omnipos-catalog-service/pkg/database"
	"github.com/fekuna/omnipos-catalog-service/pkg/i18n"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	// 3. Initialize i18n
	translator, err := i18n.New(cfg.I18n.DefaultLanguage)
	if err != nil {
		appLogger.Fatal("Could not load message catalogs", zap.Error(err))
	}
	if path := os.Getenv("I18N_OVERRIDE_FILE"); path != "" {
		if err := translator.LoadFile(path); err != nil {
			appLogger.Warn("Failed to load message overrides", zap.String("path", path), zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Connect to Database and optional backends
	application, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			appLogger.Error("Failed to release resources", zap.Error(err))
		}
	}()

	// 5. Apply Migrations
	applied, err := database.Migrate(ctx, application.DB)
	if err != nil {
		appLogger.Fatal("Could not migrate database", zap.Error(err))
	}
	appLogger.Info("Database schema up to date", zap.Strings("applied", applied))

	// 6. Initialize Handlers
	nodeHandler := nodeH.NewNodeHandler(application.NodeUseCases(), translator, appLogger)
	attrHandler := attrH.NewAttributeHandler(application.Attributes, translator, appLogger)

	// 7. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.Error(err))
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.ContextInterceptor(),
			middleware.LoggingInterceptor(appLogger),
		),
	)

	// Register Services
	nodeH.RegisterNodeServiceServer(grpcServer, nodeHandler)
	attrH.RegisterAttributeServiceServer(grpcServer, attrHandler)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(nodeH.NodeServiceName, healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(attrH.AttributeServiceName, healthpb.HealthCheckResponse_SERVING)

	// Register Reflection
	reflection.Register(grpcServer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting gRPC server", zap.String("port", port))
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})

	// 8. Start Order Listener
	if cfg.Kafka.Enabled {
		consumer := application.NewOrderConsumer()
		defer consumer.Close()

		var locks listener.Locker
		if application.Redis != nil {
			locks = application.Redis
		}
		orderListener := listener.NewOrderListener(consumer, application.Items, locks, appLogger)
		g.Go(func() error {
			orderListener.Start(gctx)
			return nil
		})
	}

	// Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server exited with error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
