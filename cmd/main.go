package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"newsroom/internal/handlers"
	"newsroom/internal/logger"
	"newsroom/internal/repository"
	"newsroom/internal/server"
	"newsroom/internal/service"

	"github.com/spf13/viper"
)

const defaultTokenTTL = 15 * time.Minute

func main() {
	if err := loadConfig(); err != nil {
		// Logger level comes from config, so report config failures with defaults.
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	authCfg, err := loadAuthConfig()
	if err != nil {
		log.Fatalw("invalid auth config", "err", err)
	}

	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, authCfg, service.UploadConfig{
		Dir:     uploadsDir(),
		BaseURL: viper.GetString("uploads.base_url"),
	})
	apiHandler := handlers.NewHandler(services, log)

	router := apiHandler.InitRoutes()
	// Serve uploaded images from the same process, like the original site layout.
	router.Static(viper.GetString("uploads.base_url"), uploadsDir())

	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), router, log)

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.SetDefault("port", "8080")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("db.path", "newsroom.db")
	viper.SetDefault("auth.token_ttl", defaultTokenTTL)
	viper.SetDefault("uploads.dir", "uploads/images")
	viper.SetDefault("uploads.base_url", "/uploads/images")

	viper.SetEnvPrefix("newsroom")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine when env vars carry the settings.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// loadAuthConfig reads the signing secret and token TTL.
// An empty secret is a startup failure: running unsigned would silently
// accept forged tokens.
func loadAuthConfig() (service.AuthConfig, error) {
	key := viper.GetString("auth.signing_key")
	if strings.TrimSpace(key) == "" {
		return service.AuthConfig{}, errors.New("auth.signing_key is required (set NEWSROOM_AUTH_SIGNING_KEY or configs/config.yml)")
	}
	ttl := viper.GetDuration("auth.token_ttl")
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return service.AuthConfig{SigningKey: key, TokenTTL: ttl}, nil
}

func uploadsDir() string {
	return viper.GetString("uploads.dir")
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "newsroom.db")
		dbPath = "newsroom.db"
	}
	return repository.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler http.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
