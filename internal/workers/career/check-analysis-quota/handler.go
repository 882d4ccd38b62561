// internal/workers/career/check-analysis-quota/handler.go
package checkanalysisquota

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
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "check-analysis-quota"
)

var (
	ErrMissingUserID         = errors.New("MISSING_USER_ID")
	ErrAnalysisQuotaExceeded = errors.New("ANALYSIS_QUOTA_EXCEEDED")
	ErrQuotaCheckFailed      = errors.New("QUOTA_CHECK_FAILED")
)

// QuotaExceededError carries the plan state that tripped the limit.
type QuotaExceededError struct {
	Plan  string
	Used  int
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s: plan %s used %d of %d", ErrAnalysisQuotaExceeded, e.Plan, e.Used, e.Limit)
}

func (e *QuotaExceededError) Unwrap() error {
	return ErrAnalysisQuotaExceeded
}

type Handler struct {
	config       *Config
	db           *sql.DB
	redis        *redis.Client
	logger       logger.Logger
	errorHandler *apperrors.ErrorHandler
}

func NewHandler(config *Config, db *sql.DB, redis *redis.Client, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		db:           db,
		redis:        redis,
		logger:       log,
		errorHandler: apperrors.NewErrorHandler(log),
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
		return nil, ErrMissingUserID
	}

	plan, err := h.loadPlan(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	ent := models.Entitlements(plan.Plan)
	remaining := models.Unlimited
	if ent.AnalysisLimit != models.Unlimited {
		remaining = ent.AnalysisLimit - plan.AnalysesUsed
		if remaining <= 0 {
			return nil, &QuotaExceededError{Plan: plan.Plan, Used: plan.AnalysesUsed, Limit: ent.AnalysisLimit}
		}
	}

	return &Output{
		Allowed:           true,
		Plan:              plan.Plan,
		AnalysesUsed:      plan.AnalysesUsed,
		AnalysesRemaining: remaining,
		Permissions:       ent.Permissions,
	}, nil
}

// loadPlan reads the plan through the Redis cache. A user without a row is
// on the starter plan with nothing used.
func (h *Handler) loadPlan(ctx context.Context, userID string) (*models.UserPlan, error) {
	cacheKey := models.PlanCacheKey(userID)

	var cached models.UserPlan
	found, err := database.GetJSON(ctx, h.redis, cacheKey, &cached)
	if err != nil {
		h.logger.Warn("plan cache read failed", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
	}
	if found {
		return &cached, nil
	}

	plan := models.UserPlan{UserID: userID}
	query := `SELECT plan, analyses_used FROM user_plans WHERE user_id = $1`
	err = h.db.QueryRowContext(ctx, query, userID).Scan(&plan.Plan, &plan.AnalysesUsed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		plan.Plan = models.PlanStarter
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrQuotaCheckFailed, err)
	}

	if err := database.SetJSON(ctx, h.redis, cacheKey, plan, h.config.CacheTTL); err != nil {
		h.logger.Warn("plan cache write failed", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
	}
	return &plan, nil
}

func toStandardError(err error) error {
	var exceeded *QuotaExceededError
	switch {
	case errors.As(err, &exceeded):
		return apperrors.NewAnalysisQuotaExceededError(exceeded.Plan, exceeded.Used, exceeded.Limit)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewTimeoutError(TaskType, err)
	case errors.Is(err, ErrQuotaCheckFailed):
		return apperrors.NewQuotaCheckFailedError(err)
	case errors.Is(err, ErrMissingUserID):
		return apperrors.NewParseError(err)
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
