package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/BeratAydogan/coffeehouse/internal/cart"
	"github.com/BeratAydogan/coffeehouse/internal/catalog"
	"github.com/BeratAydogan/coffeehouse/internal/checkout"
	"github.com/BeratAydogan/coffeehouse/internal/httpapi"
	"github.com/BeratAydogan/coffeehouse/internal/orders"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	MongoURI    string
	MongoDBName string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	MigrationsPath string

	RedisAddr     string
	RedisPassword string

	CatalogBaseURL string
	KafkaBrokers   string
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  15 * time.Second,
		ShutdownTimeout: 10 * time.Second,

		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGO_DB_NAME", "coffeehouse"),

		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "coffeehouse"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		CatalogBaseURL: getEnv("CATALOG_BASE_URL", catalog.DefaultBaseURL),
		KafkaBrokers:   getEnv("KAFKA_BROKERS", "localhost:9092"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := loadConfig()

	dbPort, err := strconv.Atoi(cfg.DBPort)
	if err != nil {
		logger.Fatal("invalid DB_PORT", zap.Error(err))
	}
	creds := &orders.Credentials{
		Host:              cfg.DBHost,
		Port:              dbPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		DBName:            cfg.DBName,
		MigrationsDirPath: cfg.MigrationsPath,
	}

	ctx := context.Background()

	// Cart storage
	mongoDB, err := cart.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer mongoDB.Client().Disconnect(ctx)

	cartRepo := cart.NewMongoRepository(mongoDB)
	if err := cartRepo.CreateIndexes(ctx); err != nil {
		logger.Fatal("mongodb index creation failed", zap.Error(err))
	}
	logger.Info("connected to mongodb", zap.String("uri", cfg.MongoURI))

	// Order storage
	orderRepo, err := orders.NewRepository(creds)
	if err != nil {
		logger.Fatal("postgres connection failed", zap.Error(err))
	}
	defer orderRepo.Close()

	if err := orderRepo.RunMigrations(creds); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}
	logger.Info("database migrations completed")

	// Catalog cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("redis connection failed", zap.Error(err))
	}
	logger.Info("redis ping succeeded")

	// Events
	publisher := checkout.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ",")...)
	defer publisher.Close()

	// Services
	cartService := cart.NewService(cartRepo, logger)
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, 10*time.Second)
	catalogService := catalog.NewService(catalogClient, catalog.NewRedisCache(redisClient), logger)
	orderService := orders.NewService(orderRepo, logger)
	orchestrator := checkout.NewOrchestrator(cartService, orderService, publisher, logger)

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Cart:           cartService,
		Catalog:        catalogService,
		Checkout:       orchestrator,
		Orders:         orderService,
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout,
	})

	// No WriteTimeout, the stream routes hold the connection open.
	srv := &http.Server{
		Addr:        ":" + cfg.HTTPPort,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
