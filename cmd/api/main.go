package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafabene/starwars-api/internal/domain/ports"
	httphandlers "github.com/rafabene/starwars-api/internal/handlers/http"
	"github.com/rafabene/starwars-api/internal/handlers/middleware"
	"github.com/rafabene/starwars-api/internal/infrastructure/cache"
	"github.com/rafabene/starwars-api/internal/infrastructure/config"
	"github.com/rafabene/starwars-api/internal/infrastructure/i18n"
	"github.com/rafabene/starwars-api/internal/infrastructure/logging"
	"github.com/rafabene/starwars-api/internal/infrastructure/persistence/gormstore"
	"github.com/rafabene/starwars-api/internal/services"
)

const shutdownTimeout = 5 * time.Second

// @title       Star Wars API
// @version     1.0
// @description Users, planets, vehicles, characters and favorites.
// @BasePath    /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger ports.Logger) error {
	logger.Info("starting starwars api", "env", cfg.Env, "version", "dev")

	db, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	i18nService, err := i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("failed to initialize i18n: %w", err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	responseStore, closeCache, err := openCache(cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:            cfg.Env,
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		I18n:           i18nService,
		Logger:         logger,
		Cache:          responseStore,
	}, newHandlers(db, logger))

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return serve(srv, logger)
}

// openStore conecta ao banco e cria o schema
func openStore(cfg *config.Config, logger ports.Logger) (*gorm.DB, error) {
	db, err := gormstore.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := gormstore.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// openCache liga o cache de respostas quando REDIS_URL está definido.
// Sem URL devolve um store nil, que desliga o middleware.
func openCache(cfg *config.Config, logger ports.Logger) (middleware.ResponseStore, func(), error) {
	if cfg.Redis.URL == "" {
		return nil, func() {}, nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("response cache enabled", "ttl", cfg.Redis.CacheTTL)

	return cache.NewRedisStore(client, "starwars", cfg.Redis.CacheTTL), func() { _ = client.Close() }, nil
}

func newHandlers(db *gorm.DB, logger ports.Logger) httphandlers.Handlers {
	users := gormstore.NewUserRepository(db)
	planets := gormstore.NewPlanetRepository(db)
	vehicles := gormstore.NewVehicleRepository(db)
	characters := gormstore.NewCharacterRepository(db)
	favorites := gormstore.NewFavoriteRepository(db)
	uow := gormstore.NewUnitOfWork(db)

	return httphandlers.Handlers{
		Users: httphandlers.NewUserHandler(
			services.NewUserService(users, favorites, planets, vehicles, characters, uow, logger)),
		Planets: httphandlers.NewPlanetHandler(
			services.NewPlanetService(planets, favorites, uow, logger)),
		Vehicles: httphandlers.NewVehicleHandler(
			services.NewVehicleService(vehicles, favorites, uow, logger)),
		Characters: httphandlers.NewCharacterHandler(
			services.NewCharacterService(characters, uow, logger)),
		Favorites: httphandlers.NewFavoriteHandler(
			services.NewFavoriteService(users, favorites, planets, vehicles, characters, uow, logger)),
	}
}

// serve atende até SIGINT/SIGTERM e então encerra com graceful shutdown
func serve(srv *http.Server, logger ports.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}
