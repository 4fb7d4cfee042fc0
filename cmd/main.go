package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/paingnyinyikhant1810/noc-members/docs" // swagger spec registration

	"github.com/paingnyinyikhant1810/noc-members/internal/handlers"
	"github.com/paingnyinyikhant1810/noc-members/internal/logger"
	"github.com/paingnyinyikhant1810/noc-members/internal/models"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository"
	"github.com/paingnyinyikhant1810/noc-members/internal/repository/db"
	"github.com/paingnyinyikhant1810/noc-members/internal/server"
	"github.com/paingnyinyikhant1810/noc-members/internal/service"

	"github.com/spf13/viper"
)

func main() {
	// load config.yml first so the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log.level"))

	// open DB
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// ensure the reserved admin account exists
	if err := seedAdmin(sqlDB, log); err != nil {
		log.Fatalw("failed to seed admin account", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.AuthConfig{
		SigningKey: viper.GetString("auth.signing_key"),
		TokenTTL:   viper.GetInt("auth.token_ttl_minutes"),
	})
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("auth.token_ttl_minutes", 60)
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "portal.db")
		dbPath = "portal.db"
	}
	return db.InitDB(dbPath)
}

// seedAdmin hashes the configured bootstrap password and ensures the admin row.
func seedAdmin(sqlDB *sql.DB, log *logger.Logger) error {
	password := viper.GetString("auth.seed_admin_password")
	if password == "" {
		log.Infow("auth.seed_admin_password not set; skipping admin seeding")
		return nil
	}
	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}
	displayName := viper.GetString("auth.seed_admin_display_name")
	if displayName == "" {
		displayName = "Administrator"
	}
	return db.SeedAdmin(sqlDB, models.ReservedAdminUsername, hash, displayName)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
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
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
