package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	carapp "github.com/mazhilunthu/car-marketplace/application/car"
	savedcarapp "github.com/mazhilunthu/car-marketplace/application/savedcar"
	testdriveapp "github.com/mazhilunthu/car-marketplace/application/testdrive"
	userapp "github.com/mazhilunthu/car-marketplace/application/user"
	"github.com/mazhilunthu/car-marketplace/cmd/config"
	redisclient "github.com/mazhilunthu/car-marketplace/cmd/redis"
	_ "github.com/mazhilunthu/car-marketplace/docs"
	carRepo "github.com/mazhilunthu/car-marketplace/repository/car"
	dealershipRepo "github.com/mazhilunthu/car-marketplace/repository/dealership"
	redisRepo "github.com/mazhilunthu/car-marketplace/repository/redis"
	savedCarRepo "github.com/mazhilunthu/car-marketplace/repository/savedcar"
	testDriveRepo "github.com/mazhilunthu/car-marketplace/repository/testdrive"
	userRepo "github.com/mazhilunthu/car-marketplace/repository/user"
	"github.com/mazhilunthu/car-marketplace/thirdparty/rabbitmq"
	"github.com/mazhilunthu/car-marketplace/transport"
	"github.com/mazhilunthu/car-marketplace/utils/logger"
	"go.uber.org/zap"
)

// @title CAR MARKETPLACE API
// @version 1.0
// @description Car marketplace API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Connect to RabbitMQ. The service still serves traffic without it;
	// revalidation then relies on the local cache delete only.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq publisher", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	CarRepo := carRepo.NewCarRepository(db)
	SavedCarRepo := savedCarRepo.NewSavedCarRepository(db)
	TestDriveRepo := testDriveRepo.NewTestDriveRepository(db)
	DealershipRepo := dealershipRepo.NewDealershipRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	CarApp := carapp.NewCarApp(cfg, CarRepo, SavedCarRepo, UserRepo, TestDriveRepo, DealershipRepo, RedisRepo)
	SavedCarApp := savedcarapp.NewSavedCarApp(cfg, UserRepo, CarRepo, SavedCarRepo, RedisRepo, publisher)
	TestDriveApp := testdriveapp.NewTestDriveApp(UserRepo, CarRepo, TestDriveRepo, publisher)

	httpTransport := transport.NewTransport(UserApp, CarApp, SavedCarApp, TestDriveApp, cfg.Internal.APIKey)

	// Start the saved-cars revalidation consumer when messaging is up
	if publisher != nil {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Internal.BaseURL, cfg.Internal.APIKey)
		if err != nil {
			logger.Warn("err connect rabbitmq consumer", zap.Error(err))
		} else {
			defer func() {
				_ = consumer.Close()
			}()
			if err := consumer.Start(context.Background()); err != nil {
				logger.Warn("err start rabbitmq consumer", zap.Error(err))
			}
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
