package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-reading-list/internal/facades"
	"github.com/sbilibin2017/gw-reading-list/internal/fallback"
	"github.com/sbilibin2017/gw-reading-list/internal/handlers"
	"github.com/sbilibin2017/gw-reading-list/internal/jwt"
	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"github.com/sbilibin2017/gw-reading-list/internal/middlewares"
	"github.com/sbilibin2017/gw-reading-list/internal/migrations"
	"github.com/sbilibin2017/gw-reading-list/internal/repositories"
	"github.com/sbilibin2017/gw-reading-list/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-reading-list API
// @version 1.0.0
// @description Backend for user reading lists backed by the Open Library catalog
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, migrationsDir,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		olSearchURL, olWorkURL, olTimeoutSecond, cacheExpSecond,
		jwtSecretKey, jwtExpSecond,
		rateLimitRPS, rateLimitBurst, corsOrigins,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, migrationsDir,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		olSearchURL, olWorkURL, olTimeoutSecond, cacheExpSecond,
		jwtSecretKey, jwtExpSecond,
		rateLimitRPS, rateLimitBurst, corsOrigins,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, catalog, JWT, and HTTP configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, migrationsDir string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	olSearchURL, olWorkURL string, olTimeoutSecond, cacheExpSecond int,
	jwtSecretKey string, jwtExpSecond int,
	rateLimitRPS, rateLimitBurst int, corsOrigins string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "reading_list")
	migrationsDir = getEnv("POSTGRES_MIGRATIONS_DIR", "migrations")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}

	// Kafka config; empty brokers disable event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "reading-list-events")

	// Open Library config
	olSearchURL = getEnv("OPENLIBRARY_SEARCH_URL", "https://openlibrary.org/search.json")
	olWorkURL = getEnv("OPENLIBRARY_WORK_URL", "https://openlibrary.org/works/%s.json")
	if olTimeoutSecond, err = strconv.Atoi(getEnv("OPENLIBRARY_TIMEOUT_SECOND", "10")); err != nil {
		return
	}
	if cacheExpSecond, err = strconv.Atoi(getEnv("BOOK_CACHE_EXP_SECOND", "3600")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil {
		return
	}

	// HTTP config
	corsOrigins = getEnv("CORS_ALLOWED_ORIGINS", "*")
	if rateLimitRPS, err = strconv.Atoi(getEnv("AUTH_RATE_LIMIT_RPS", "10")); err != nil {
		return
	}
	if rateLimitBurst, err = strconv.Atoi(getEnv("AUTH_RATE_LIMIT_BURST", "20")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, migrationsDir string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	olSearchURL, olWorkURL string, olTimeoutSecond, cacheExpSecond int,
	jwtSecretKey string, jwtExpSecond int,
	rateLimitRPS, rateLimitBurst int, corsOrigins string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply migrations
	if err := migrations.Run(db.DB, migrationsDir); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer; nil disables event publishing
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize catalog facade and fallback
	httpClient := &http.Client{Timeout: time.Duration(olTimeoutSecond) * time.Second}
	catalogFacade := facades.NewOpenLibraryFacade(httpClient, olSearchURL, olWorkURL)
	fallbackCatalog := fallback.NewCatalog()

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	listReadRepo := repositories.NewReadingListReadRepository(db)
	listWriteRepo := repositories.NewReadingListWriteRepository(db)
	bookCacheRepo := repositories.NewBookDetailCacheRepository(rdb, time.Duration(cacheExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	readingListService := services.NewReadingListService(listReadRepo, listWriteRepo, kafkaWriter)
	booksService := services.NewBooksService(catalogFacade, catalogFacade, bookCacheRepo, fallbackCatalog)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	meHandler := handlers.NewMeHandler()
	bookSearchHandler := handlers.NewBookSearchHandler(booksService)
	bookDetailsHandler := handlers.NewBookDetailsHandler(booksService)
	readingListGetHandler := handlers.NewReadingListGetHandler(readingListService)
	readingListAddHandler := handlers.NewReadingListAddHandler(readingListService)
	readingListRemoveHandler := handlers.NewReadingListRemoveHandler(readingListService)

	authLimiter := rate.NewLimiter(rate.Limit(rateLimitRPS), rateLimitBurst)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(corsOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(authLimiter))
			r.Post("/auth/register", registerHandler)
			r.Post("/auth/login", loginHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtSvc, userReadRepo))
			r.Get("/users/me", meHandler)
			r.Get("/books/search", bookSearchHandler)
			r.Get("/books/{id}", bookDetailsHandler)
			r.Get("/reading-list", readingListGetHandler)
			r.Post("/reading-list", readingListAddHandler)
			r.Delete("/reading-list/{id}", readingListRemoveHandler)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
