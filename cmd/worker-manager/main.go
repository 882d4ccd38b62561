// cmd/worker-manager/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.uber.org/zap"

	"career-pivot/internal/common/camunda"
	"career-pivot/internal/common/config"
	"career-pivot/internal/common/database"
	apperrors "career-pivot/internal/common/errors"
	"career-pivot/internal/common/logger"
	"career-pivot/internal/common/observability"
	"career-pivot/internal/knowledge"
)

var startupRetry = &camunda.RetryConfig{
	MaxRetries: 10,
	BaseDelay:  2 * time.Second,
	MaxDelay:   30 * time.Second,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.Observability.ServiceName, observability.TracingOptions{
		Enabled:     cfg.Observability.Tracing.Enabled,
		Exporter:    cfg.Observability.Tracing.Exporter,
		SampleRatio: cfg.Observability.Tracing.SampleRatio,
	}, log)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebe *camunda.Client
	err = camunda.Retry(ctx, startupRetry, func(context.Context) error {
		var err error
		zeebe, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: cfg.Camunda.UsePlaintext,
			RequestTimeout:         config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, nil)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	defer zeebe.Close()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = camunda.Retry(ctx, startupRetry, func(ctx context.Context) error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, nil)
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	if err := pg.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("postgres schema setup failed", zap.Error(err))
	}
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = camunda.Retry(ctx, startupRetry, func(ctx context.Context) error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, nil)
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Knowledge base and engine ---
	kb, err := knowledge.LoadFile(cfg.Engine.KnowledgeBasePath)
	if err != nil {
		stdErr := apperrors.NewKnowledgeBaseLoadFailedError(cfg.Engine.KnowledgeBasePath, err)
		zapLog.Fatal("knowledge base load failed", zap.Error(stdErr), zap.String("details", stdErr.Details))
	}
	zapLog.Info("Knowledge base loaded", zap.Any("stats", kb.Stats()))

	var esClient *database.ElasticsearchClient
	if cfg.Engine.CompanyDirectory == config.CompanyDirectoryElasticsearch {
		esClient = connectElasticsearch(ctx, cfg.Database.Elasticsearch, log)
	}

	eng := buildEngine(cfg, kb, esClient, log).WithTracer(obs.Tracer())

	// --- Workers ---
	workers := registerWorkers(cfg, deps{
		zeebe:  zeebe.GetClient(),
		db:     pg.DB,
		redis:  rdb.Client,
		engine: eng,
		obs:    obs,
		log:    log,
	})
	zapLog.Info("Workers registered", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	server := newHealthServer(cfg.Server.Port, map[string]pinger{
		"postgres": pg,
		"redis":    rdb,
		"zeebe":    pingFunc(zeebe.HealthCheck),
	}, log)
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	closeWorkers(workers)
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// connectElasticsearch returns nil when the cluster is unreachable; the
// company directory then serves the built-in tables.
func connectElasticsearch(ctx context.Context, cfg config.ElasticsearchConfig, log logger.Logger) *database.ElasticsearchClient {
	if !cfg.Enabled() {
		log.Warn("elasticsearch directory requested without an address", nil)
		return nil
	}
	client, err := database.NewElasticsearch(cfg)
	if err == nil {
		err = client.Ping(ctx)
	}
	if err != nil {
		log.Warn("elasticsearch unavailable, using static company directory", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	log.Info("Elasticsearch connected successfully", nil)
	return client
}

func closeWorkers(workers []worker.JobWorker) {
	for _, w := range workers {
		w.Close()
	}
	for _, w := range workers {
		w.AwaitClose()
	}
}
