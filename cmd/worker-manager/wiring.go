// cmd/worker-manager/wiring.go
package main

import (
	"database/sql"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/redis/go-redis/v9"

	"career-pivot/internal/common/camunda"
	"career-pivot/internal/common/config"
	"career-pivot/internal/common/database"
	"career-pivot/internal/common/logger"
	"career-pivot/internal/engine"
	"career-pivot/internal/enrichment/companies"
	"career-pivot/internal/enrichment/resources"
	"career-pivot/internal/enrichment/support"
	"career-pivot/internal/knowledge"

	act "career-pivot/internal/workers/career/analyze-career-transition"
	caq "career-pivot/internal/workers/career/check-analysis-quota"
	rau "career-pivot/internal/workers/career/record-analysis-usage"
)

type deps struct {
	zeebe  zbc.Client
	db     *sql.DB
	redis  *redis.Client
	engine *engine.Engine
	obs    act.Recorder
	log    logger.Logger
}

// buildProviders picks the Elasticsearch directory when a client is given
// and the static directory otherwise.
func buildProviders(cfg *config.Config, kb *knowledge.KnowledgeBase, es *database.ElasticsearchClient, log logger.Logger) engine.Providers {
	dirCfg := companies.LoadConfig()
	dirCfg.Index = cfg.Engine.CompaniesIndex
	if t := cfg.Engine.EnrichmentTimeout(); t > 0 {
		dirCfg.Timeout = t
	}
	static := companies.NewDirectory(dirCfg, kb)

	var directory engine.CompanyDirectory = static
	if es != nil {
		directory = companies.NewElasticDirectory(dirCfg, es.Client, static, log)
	}

	recommender := resources.NewRecommender(resources.LoadConfig(), kb)
	return engine.Providers{
		Companies: directory,
		Resources: recommender,
		Support:   support.NewCoach(support.LoadConfig(), kb, recommender),
	}
}

func buildEngine(cfg *config.Config, kb *knowledge.KnowledgeBase, es *database.ElasticsearchClient, log logger.Logger) *engine.Engine {
	return engine.New(
		engine.ConfigFrom(cfg.Engine),
		kb,
		buildProviders(cfg, kb, es, log),
		engine.VarietyFrom(cfg.Engine),
		log,
	)
}

// workerTimeout prefers the configured job timeout over the handler default.
func workerTimeout(wcfg config.WorkerConfig, fallback time.Duration) time.Duration {
	if t := config.GetDuration(wcfg.Timeout); t > 0 {
		return t
	}
	return fallback
}

// handlers builds one job handler per enabled task type.
func handlers(cfg *config.Config, d deps) map[string]worker.JobHandler {
	out := make(map[string]worker.JobHandler, 3)

	if config.IsWorkerEnabled(cfg, caq.TaskType) {
		hcfg := caq.LoadConfig()
		hcfg.Timeout = workerTimeout(config.GetWorkerConfig(cfg, caq.TaskType), hcfg.Timeout)
		out[caq.TaskType] = caq.NewHandler(hcfg, d.db, d.redis, d.log).Handle
	}

	if config.IsWorkerEnabled(cfg, act.TaskType) {
		hcfg := act.LoadConfig()
		hcfg.Timeout = workerTimeout(config.GetWorkerConfig(cfg, act.TaskType), hcfg.Timeout)
		hcfg.CacheEnabled = cfg.Engine.Deterministic
		h := act.NewHandler(hcfg, d.engine, d.redis, d.log)
		if d.obs != nil {
			h.WithRecorder(d.obs)
		}
		out[act.TaskType] = h.Handle
	}

	if config.IsWorkerEnabled(cfg, rau.TaskType) {
		hcfg := rau.LoadConfig()
		hcfg.Timeout = workerTimeout(config.GetWorkerConfig(cfg, rau.TaskType), hcfg.Timeout)
		out[rau.TaskType] = rau.NewHandler(hcfg, d.db, d.redis, d.log).Handle
	}

	return out
}

func registerWorkers(cfg *config.Config, d deps) []worker.JobWorker {
	hs := handlers(cfg, d)
	workers := make([]worker.JobWorker, 0, len(hs))
	for _, taskType := range []string{caq.TaskType, act.TaskType, rau.TaskType} {
		h, ok := hs[taskType]
		if !ok {
			d.log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
			continue
		}
		workers = append(workers, camunda.StartWorker(d.zeebe, taskType, config.GetWorkerConfig(cfg, taskType), h, d.log))
	}
	return workers
}
