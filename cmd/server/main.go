package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fundaevento/plataforma/internal/api"
	"fundaevento/plataforma/internal/common"
	"fundaevento/plataforma/internal/config"
	"fundaevento/plataforma/internal/db"
	"fundaevento/plataforma/internal/logging"
	"fundaevento/plataforma/internal/metrics"
	"fundaevento/plataforma/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("FundaEvento starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	dsn := cfg.PostgresDSN()

	if err := db.InitPostgres(dsn); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	gormDB, err := db.InitPostgresORM(dsn)
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	redisClient := common.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword, cfg.RedisDB)
	logging.Info("Redis client initialized", "addr", cfg.RedisAddr())

	metricsReg := metrics.NewMetricsRegistry()

	deps, err := api.InitDependencies(cfg, gormDB, db.DB, redisClient, metricsReg)
	if err != nil {
		logging.Error("Failed to wire dependencies", "error", err.Error())
		log.Fatalf("failed to wire dependencies: %v", err)
	}

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, upSince)

	// Metrics endpoint lives outside the Chi router so it skips the
	// request middleware stack.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	logging.Info("Server starting",
		"addr", cfg.ListenAddr,
		"environment", cfg.AppEnv,
	)

	log.Fatal(http.ListenAndServe(cfg.ListenAddr, mux))
}
