// Parallax control-plane server — provides the HTTP API, coordinates
// replicas through Redis, and orchestrates multi-agent workflow execution.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/parallax-dev/parallax/pkg/api"
	"github.com/parallax-dev/parallax/pkg/audit"
	"github.com/parallax-dev/parallax/pkg/cluster"
	"github.com/parallax-dev/parallax/pkg/config"
	"github.com/parallax-dev/parallax/pkg/database"
	"github.com/parallax-dev/parallax/pkg/pattern"
	"github.com/parallax-dev/parallax/pkg/runtime"
	"github.com/parallax-dev/parallax/pkg/schedule"
	"github.com/parallax-dev/parallax/pkg/trigger"
	"github.com/parallax-dev/parallax/pkg/version"
	"github.com/parallax-dev/parallax/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	logger := slog.Default()
	ctx := context.Background()

	slog.Info("Starting Parallax control plane", "version", version.Full())

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Cluster coordination (leader election, locks, state, liveness).
	// With HA disabled the process runs standalone: every leader-gated
	// component treats itself as the leader.
	clusterCfg, err := cluster.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load cluster config", "error", err)
		os.Exit(1)
	}

	var (
		elector *cluster.Elector
		locks   *cluster.LockService
		state   *cluster.StateBus
		monitor *cluster.HealthMonitor
	)
	if clusterCfg.Enabled {
		rdb, err := cluster.NewRedisClient(clusterCfg)
		if err != nil {
			slog.Error("Failed to create Redis client", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Error closing Redis client", "error", err)
			}
		}()

		elector = cluster.NewElector(rdb, clusterCfg)
		elector.Start(ctx)
		defer elector.Stop()

		locks = cluster.NewLockService(rdb, clusterCfg)

		state = cluster.NewStateBus(rdb, clusterCfg)
		state.Start(ctx)
		defer state.Stop()

		monitor = cluster.NewHealthMonitor(state, elector, clusterCfg, cfg.Server.Port)
		monitor.Start(ctx)
		defer monitor.Stop()

		slog.Info("Cluster coordination started",
			"instance_id", clusterCfg.InstanceID,
			"prefix", clusterCfg.Prefix)
	} else {
		slog.Info("Cluster coordination disabled, running standalone")
	}

	// 4. Load orchestration patterns
	patternsDir := cfg.Patterns.Dir
	if !filepath.IsAbs(patternsDir) {
		patternsDir = filepath.Join(*configDir, patternsDir)
	}
	registry, err := pattern.LoadDir(patternsDir)
	if err != nil {
		slog.Error("Failed to load patterns", "dir", patternsDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Patterns loaded", "dir", patternsDir, "count", registry.Len())

	// 5. Runtime federation: register each configured provider
	fed := runtime.NewFederation()
	for name, rc := range cfg.Runtimes {
		if !rc.IsEnabled() {
			slog.Info("Runtime disabled, skipping", "runtime", name)
			continue
		}
		provider, err := runtime.NewHTTPProvider(runtime.HTTPProviderOptions{BaseURL: rc.URL})
		if err != nil {
			slog.Error("Failed to create runtime provider", "runtime", name, "error", err)
			os.Exit(1)
		}
		if err := fed.Register(name, rc.Type, provider, rc.Priority); err != nil {
			slog.Error("Failed to register runtime provider", "runtime", name, "error", err)
			os.Exit(1)
		}
	}
	fed.Start(ctx)
	defer fed.Stop()
	slog.Info("Runtime federation started", "providers", len(cfg.Runtimes))

	// 6. Workflow engine and audit sink
	sink := audit.NewLogSink(logger)
	engine := workflow.NewEngine(registry, fed, sink, logger)

	// 7. Schedule service and leader-gated poller
	scheduleService := schedule.NewService(dbClient, registry, logger)
	var poller *schedule.Poller
	if cfg.Scheduler.IsEnabled() {
		poller = schedule.NewPoller(dbClient, engine, elector, locks, sink, logger)
		poller.Start(ctx)
		defer poller.Stop()
		slog.Info("Schedule poller started")
	} else {
		slog.Info("Scheduler disabled")
	}

	// 8. Trigger service and dispatcher
	triggerService := trigger.NewService(dbClient, registry, logger)
	dispatcher := trigger.NewDispatcher(triggerService, engine, sink, logger)
	if err := dispatcher.Start(ctx); err != nil {
		slog.Error("Failed to load event triggers", "error", err)
		os.Exit(1)
	}

	// 9. Start HTTP server
	server := api.NewServer(api.Deps{
		Config:     cfg,
		DB:         dbClient,
		Elector:    elector,
		Monitor:    monitor,
		Federation: fed,
		Registry:   registry,
		Engine:     engine,
		Schedules:  scheduleService,
		Poller:     poller,
		Triggers:   triggerService,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	serverCtx, serverCancel := context.WithCancel(ctx)
	defer serverCancel()
	errCh := server.Start(serverCtx)

	slog.Info("Parallax started successfully",
		"addr", cfg.Server.Host,
		"port", cfg.Server.Port,
		"instance_id", clusterCfg.InstanceID)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop accepting work, then wait for in-flight
	// dispatches with a bounded budget. The deferred Stop calls tear down
	// the poller, federation, and cluster components in reverse order.
	if err := server.Stop(); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	drainCtx, drainCancel := context.WithTimeout(ctx, 30*time.Second)
	defer drainCancel()
	drained := make(chan struct{})
	go func() {
		dispatcher.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		slog.Info("Trigger dispatches drained")
	case <-drainCtx.Done():
		slog.Warn("Shutdown timeout exceeded, abandoning in-flight dispatches")
	}

	slog.Info("Shutdown complete")
}
