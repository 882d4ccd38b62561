// internal/workers/career/record-analysis-usage/handler.go
package recordanalysisusage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-pivot/internal/common/database"
	apperrors "career-pivot/internal/common/errors"
	"career-pivot/internal/common/logger"
	"career-pivot/internal/common/metrics"
	"career-pivot/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "record-analysis-usage"
)

var (
	ErrMissingField      = errors.New("MISSING_FIELD")
	ErrUsageRecordFailed  = errors.New("USAGE_RECORD_FAILED")
)

const (
	insertUsageQuery = `INSERT INTO analysis_usage (id, user_id, analysis_id, feasibility_score, created_at) VALUES ($1, $2, $3, $4, $5)`

	incrementPlanQuery = `INSERT INTO user_plans (user_id, analyses_used, updated_at) VALUES ($1, 1, $2)
ON CONFLICT (user_id) DO UPDATE SET analyses_used = user_plans.analyses_used + 1, updated_at = EXCLUDED.updated_at
RETURNING analyses_used`
)

type Handler struct {
	config       *Config
	db           *sql.DB
	redis        *redis.Client
	logger       logger.Logger
	errorHandler *apperrors.ErrorHandler
	now          func() time.Time
}

func NewHandler(config *Config, db *sql.DB, redis *redis.Client, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		db:           db,
		redis:        redis,
		logger:       log,
		errorHandler: apperrors.NewErrorHandler(log),
		now:          time.Now,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(ctx, client, job, apperrors.NewParseError(err))
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(ctx, client, job, toStandardError(err))
		return
	}

	h.completeJob(ctx, client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: userId", ErrMissingField)
	}
	if input.AnalysisID == "" {
		return nil, fmt.Errorf("%w: analysisId", ErrMissingField)
	}

	now := h.now().UTC()
	var used int
	err := database.WithTx(ctx, h.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertUsageQuery,
			uuid.NewString(), input.UserID, input.AnalysisID, input.FeasibilityScore, now,
		); err != nil {
			return fmt.Errorf("insert usage: %w", err)
		}
		if err := tx.QueryRowContext(ctx, incrementPlanQuery, input.UserID, now).Scan(&used); err != nil {
			return fmt.Errorf("increment plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsageRecordFailed, err)
	}

	if h.redis != nil {
		if err := h.redis.Del(ctx, models.PlanCacheKey(input.UserID)).Err(); err != nil {
			h.logger.Warn("plan cache invalidation failed", map[string]interface{}{
				"userId": input.UserID,
				"error":  err.Error(),
			})
		}
	}

	h.logger.Info("analysis usage recorded", map[string]interface{}{
		"userId":       input.UserID,
		"analysisId":   input.AnalysisID,
		"analysesUsed": used,
	})
	return &Output{Recorded: true, AnalysesUsed: used}, nil
}

func toStandardError(err error) error {
	switch {
	case errors.Is(err, ErrMissingField):
		return apperrors.NewParseError(err)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewTimeoutError(TaskType, err)
	case errors.Is(err, ErrUsageRecordFailed):
		return apperrors.NewUsageRecordFailedError(err)
	default:
		return apperrors.NewInternalError(err)
	}
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	code := apperrors.Normalize(err).Code
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(code)).Inc()
	h.errorHandler.HandleJobError(ctx, client, job, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
