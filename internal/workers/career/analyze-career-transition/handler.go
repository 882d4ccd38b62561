// internal/workers/career/analyze-career-transition/handler.go
package analyzecareertransition

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-pivot/internal/common/database"
	apperrors "career-pivot/internal/common/errors"
	"career-pivot/internal/common/logger"
	"career-pivot/internal/common/metrics"
	"career-pivot/internal/common/validation"
	"career-pivot/internal/enrichment/support"
	"career-pivot/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "analyze-career-transition"
)

var (
	ErrProfileValidationFailed = errors.New("PROFILE_VALIDATION_FAILED")
)

// Analyzer produces an analysis for a validated profile.
type Analyzer interface {
	Run(ctx context.Context, profile models.UserProfile) *models.Analysis
}

// Recorder receives one observation per completed analysis.
type Recorder interface {
	RecordAnalysis(ctx context.Context, rating string, elapsed time.Duration, cached bool)
}

type Handler struct {
	config       *Config
	analyzer     Analyzer
	redis        *redis.Client
	recorder     Recorder
	logger       logger.Logger
	errorHandler *apperrors.ErrorHandler
}

// NewHandler builds the worker. redis may be nil, which disables caching.
func NewHandler(config *Config, analyzer Analyzer, redis *redis.Client, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		analyzer:     analyzer,
		redis:        redis,
		logger:       log,
		errorHandler: apperrors.NewErrorHandler(log),
	}
}

func (h *Handler) WithRecorder(r Recorder) *Handler {
	h.recorder = r
	return h
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
	start := time.Now()

	profile, err := decodeProfile(input.Profile)
	if err != nil {
		return nil, err
	}

	cacheKey, err := CacheKey(profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileValidationFailed, err)
	}

	analysis, cached := h.lookup(ctx, cacheKey)
	if !cached {
		analysis = h.analyzer.Run(ctx, profile)
		h.store(ctx, cacheKey, analysis)
	}

	if h.recorder != nil {
		h.recorder.RecordAnalysis(ctx, analysis.Feasibility.Rating.Label, time.Since(start), cached)
	}

	h.logger.Info("analysis ready", map[string]interface{}{
		"userId":     input.UserID,
		"analysisId": analysis.ID,
		"cached":     cached,
	})

	if input.Permissions != nil {
		restricted := *analysis
		restricted.Support = support.Restrict(analysis.Support, input.Permissions)
		analysis = &restricted
	}
	return &Output{Analysis: analysis, Cached: cached}, nil
}

// decodeProfile validates raw against the profile schema before decoding it.
func decodeProfile(raw json.RawMessage) (models.UserProfile, error) {
	var profile models.UserProfile
	if len(raw) == 0 || string(raw) == "null" {
		return profile, fmt.Errorf("%w: profile is required", ErrProfileValidationFailed)
	}

	result, err := validation.ProfileSchema.ValidateJSON(raw)
	if err != nil {
		return profile, fmt.Errorf("%w: %v", ErrProfileValidationFailed, err)
	}
	if !result.Valid {
		return profile, fmt.Errorf("%w: %s", ErrProfileValidationFailed, result.Summary())
	}

	if err := json.Unmarshal(raw, &profile); err != nil {
		return profile, fmt.Errorf("%w: %v", ErrProfileValidationFailed, err)
	}
	return profile, nil
}

// CacheKey derives the analysis cache key from the profile's canonical JSON.
func CacheKey(profile models.UserProfile) (string, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "analysis:" + hex.EncodeToString(sum[:]), nil
}

func (h *Handler) lookup(ctx context.Context, key string) (*models.Analysis, bool) {
	if h.redis == nil || !h.config.CacheEnabled {
		return nil, false
	}

	var analysis models.Analysis
	found, err := database.GetJSON(ctx, h.redis, key, &analysis)
	switch {
	case err != nil:
		metrics.AnalysisCache.WithLabelValues("error").Inc()
		h.logger.Warn("analysis cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false
	case !found:
		metrics.AnalysisCache.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.AnalysisCache.WithLabelValues("hit").Inc()
	return &analysis, true
}

func (h *Handler) store(ctx context.Context, key string, analysis *models.Analysis) {
	if h.redis == nil || !h.config.CacheEnabled {
		return
	}
	if err := database.SetJSON(ctx, h.redis, key, analysis, h.config.CacheTTL); err != nil {
		h.logger.Warn("analysis cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func toStandardError(err error) error {
	switch {
	case errors.Is(err, ErrProfileValidationFailed):
		return apperrors.NewProfileValidationFailedError(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewTimeoutError(TaskType, err)
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
