// btlogd - Bluetooth broadcast intent logging daemon
//
// btlogd turns raw Bluetooth and media broadcast intents, forwarded over
// MQTT by a companion app on the observed device, into human-readable
// diagnostic log lines. It persists a single verbosity flag in SQLite,
// serves a small REST API plus a WebSocket live tail, and optionally
// records intent metadata to InfluxDB.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/phonedeveloper/btlogd/migrations"

	"github.com/phonedeveloper/btlogd/internal/api"
	"github.com/phonedeveloper/btlogd/internal/history"
	"github.com/phonedeveloper/btlogd/internal/infrastructure/config"
	"github.com/phonedeveloper/btlogd/internal/infrastructure/database"
	"github.com/phonedeveloper/btlogd/internal/infrastructure/logging"
	"github.com/phonedeveloper/btlogd/internal/infrastructure/mqtt"
	"github.com/phonedeveloper/btlogd/internal/receiver"
	"github.com/phonedeveloper/btlogd/internal/settings"
	"github.com/phonedeveloper/btlogd/internal/sink"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting btlogd",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	// Settings store (verbosity flag)
	store := settings.NewSQLiteStore(db.DB)
	log.Info("settings store initialised", "verbose", store.Verbose(ctx))

	// Open the decoded line sink
	out, sinkCloser, err := sink.Open(cfg.Sink.Output)
	if err != nil {
		return fmt.Errorf("opening sink: %w", err)
	}
	if sinkCloser != nil {
		defer func() {
			log.Info("closing sink")
			if closeErr := sinkCloser.Close(); closeErr != nil {
				log.Error("error closing sink", "error", closeErr)
			}
		}()
	}
	log.Info("sink opened", "output", cfg.Sink.Output)

	// Connect to MQTT broker
	mqttClient, err := mqtt.Connect(cfg.MQTT)
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	defer func() {
		log.Info("disconnecting from MQTT")
		if closeErr := mqttClient.Close(); closeErr != nil {
			log.Error("error closing MQTT", "error", closeErr)
		}
	}()
	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"client_id", cfg.MQTT.Broker.ClientID,
	)

	mqttClient.SetLogger(log)
	mqttClient.SetOnConnect(func() {
		log.Info("MQTT reconnected")
	})
	mqttClient.SetOnDisconnect(func(err error) {
		log.Warn("MQTT disconnected", "error", err)
	})

	// Connect to InfluxDB intent history (optional)
	var historyClient *history.Client
	if cfg.InfluxDB.Enabled {
		historyClient, err = history.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := historyClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		log.Info("intent history connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)

		historyClient.SetOnError(func(err error) {
			log.Error("intent history write error", "error", err)
		})
	} else {
		log.Info("intent history disabled")
	}

	// Start API server (REST + WebSocket live tail)
	apiServer, err := api.New(api.Deps{
		Config:   cfg.API,
		WS:       cfg.WebSocket,
		Logger:   log,
		Settings: store,
		MQTT:     mqttClient,
		DB:       db,
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if startErr := apiServer.Start(ctx); startErr != nil {
		return fmt.Errorf("starting API server: %w", startErr)
	}
	defer func() {
		log.Info("stopping API server")
		if closeErr := apiServer.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()
	log.Info("API server started", "host", cfg.API.Host, "port", cfg.API.Port)

	// Start the intent receiver
	rcv, err := receiver.New(receiver.Deps{
		MQTT:                mqttClient,
		Settings:            store,
		Sink:                out,
		Logger:              log,
		Hub:                 apiServer.Hub(),
		History:             historyClient,
		QoS:                 byte(cfg.MQTT.QoS),
		DeviceTypeAvailable: cfg.Platform.DeviceTypeAvailable,
	})
	if err != nil {
		return fmt.Errorf("creating receiver: %w", err)
	}
	if startErr := rcv.Start(ctx); startErr != nil {
		return fmt.Errorf("starting receiver: %w", startErr)
	}
	defer func() {
		log.Info("stopping receiver")
		if closeErr := rcv.Close(); closeErr != nil {
			log.Error("error closing receiver", "error", closeErr)
		}
	}()

	// Verify all connections are healthy
	if err := healthCheck(ctx, db, mqttClient, historyClient); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls will run in reverse order:
	// 1. Receiver
	// 2. API server
	// 3. InfluxDB (if enabled)
	// 4. MQTT
	// 5. Sink (if file-backed)
	// 6. Database

	log.Info("btlogd stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses BTLOGD_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("BTLOGD_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck verifies all infrastructure connections are healthy.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - db: Database connection to check
//   - mqttClient: MQTT client to check
//   - historyClient: InfluxDB client to check (may be nil if disabled)
//
// Returns:
//   - error: First health check failure, or nil if all healthy
func healthCheck(ctx context.Context, db *database.DB, mqttClient *mqtt.Client, historyClient *history.Client) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := mqttClient.HealthCheck(ctx); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}

	if historyClient != nil {
		if err := historyClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}

	return nil
}
