// internal/workers/career/analyze-career-transition/handler_test.go
package analyzecareertransition

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	apperrors "career-pivot/internal/common/errors"
	"career-pivot/internal/common/logger"
	"career-pivot/internal/engine"
	"career-pivot/internal/engine/variety"
	"career-pivot/internal/enrichment/resources"
	"career-pivot/internal/enrichment/support"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type stubAnalyzer struct {
	calls atomic.Int32
}

func (s *stubAnalyzer) Run(_ context.Context, profile models.UserProfile) *models.Analysis {
	n := s.calls.Add(1)
	return &models.Analysis{
		ID:          fmt.Sprintf("analysis-%d", n),
		GeneratedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Profile:     profile,
		Feasibility: models.Feasibility{Score: 72, Rating: models.Rating{Label: "Achievable"}},
		Support: &models.SupportContent{
			InterviewPrep:       &models.InterviewPrep{},
			NetworkingTemplates: []models.MessageTemplate{{}},
			SalaryTips:          &models.SalaryTips{},
			CommonMistakes:      &models.CommonMistakes{},
		},
	}
}

type recordedAnalysis struct {
	rating string
	cached bool
}

type stubRecorder struct {
	records []recordedAnalysis
}

func (r *stubRecorder) RecordAnalysis(_ context.Context, rating string, _ time.Duration, cached bool) {
	r.records = append(r.records, recordedAnalysis{rating: rating, cached: cached})
}

func createTestConfig() *Config {
	return &Config{
		Timeout:      5 * time.Second,
		CacheTTL:     24 * time.Hour,
		CacheEnabled: true,
	}
}

func createTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func createTestHandler(t *testing.T, analyzer Analyzer, redisClient *redis.Client, config *Config) *Handler {
	if config == nil {
		config = createTestConfig()
	}
	return NewHandler(config, analyzer, redisClient, logger.NewTestLogger(t))
}

func createProfileJSON(t *testing.T, mutate func(p map[string]interface{})) json.RawMessage {
	p := map[string]interface{}{
		"currentTitle":        "Software Engineer",
		"yearsExperience":     6,
		"skills":              []string{"programming", "communication"},
		"location":            "Bengaluru",
		"monthlySalary":       150000,
		"monthlyExpenses":     60000,
		"savings":             900000,
		"dreamRole":           "Product Manager",
		"riskTolerance":       3,
		"weeklyLearningHours": 15,
	}
	if mutate != nil {
		mutate(p)
	}
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	return raw
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	tests := []struct {
		name           string
		input          *Input
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name:  "no permissions keeps every section",
			input: &Input{UserID: "user-1", Profile: createProfileJSON(t, nil)},
			validateOutput: func(t *testing.T, output *Output) {
				require.NotNil(t, output.Analysis.Support)
				assert.NotNil(t, output.Analysis.Support.InterviewPrep)
				assert.NotNil(t, output.Analysis.Support.SalaryTips)
				assert.Equal(t, "Software Engineer", output.Analysis.Profile.CurrentTitle)
			},
		},
		{
			name: "starter permissions strip gated sections",
			input: &Input{
				UserID:      "user-2",
				Profile:     createProfileJSON(t, nil),
				Permissions: models.Entitlements(models.PlanStarter).Permissions,
			},
			validateOutput: func(t *testing.T, output *Output) {
				s := output.Analysis.Support
				require.NotNil(t, s)
				assert.Nil(t, s.InterviewPrep)
				assert.Nil(t, s.NetworkingTemplates)
				assert.Nil(t, s.SalaryTips)
				assert.Nil(t, s.CommonMistakes)
			},
		},
		{
			name: "pro permissions keep gated sections",
			input: &Input{
				UserID:      "user-3",
				Profile:     createProfileJSON(t, nil),
				Permissions: models.Entitlements(models.PlanPro).Permissions,
			},
			validateOutput: func(t *testing.T, output *Output) {
				s := output.Analysis.Support
				assert.NotNil(t, s.InterviewPrep)
				assert.Len(t, s.NetworkingTemplates, 1)
			},
		},
		{
			name: "optional fields may be omitted",
			input: &Input{Profile: json.RawMessage(`{"currentTitle":"Teacher","dreamRole":"Astronaut"}`)},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, "Astronaut", output.Analysis.Profile.DreamRole)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := &stubAnalyzer{}
			handler := createTestHandler(t, analyzer, nil, nil)

			output, err := handler.Execute(context.Background(), tt.input)

			require.NoError(t, err)
			require.NotNil(t, output)
			assert.False(t, output.Cached)
			assert.EqualValues(t, 1, analyzer.calls.Load())
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}

func TestHandler_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		profile json.RawMessage
		want    string
	}{
		{name: "missing profile", profile: nil, want: "profile is required"},
		{name: "null profile", profile: json.RawMessage(`null`), want: "profile is required"},
		{
			name:    "missing dream role",
			profile: createProfileJSON(t, func(p map[string]interface{}) { delete(p, "dreamRole") }),
			want:    "dreamRole",
		},
		{
			name:    "risk tolerance out of range",
			profile: createProfileJSON(t, func(p map[string]interface{}) { p["riskTolerance"] = 7 }),
			want:    "riskTolerance",
		},
		{
			name:    "negative savings",
			profile: createProfileJSON(t, func(p map[string]interface{}) { p["savings"] = -10 }),
			want:    "savings",
		},
		{name: "not an object", profile: json.RawMessage(`"Software Engineer"`), want: "PROFILE_VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := &stubAnalyzer{}
			handler := createTestHandler(t, analyzer, nil, nil)

			output, err := handler.Execute(context.Background(), &Input{UserID: "user-x", Profile: tt.profile})

			assert.Nil(t, output)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrProfileValidationFailed)
			assert.Contains(t, err.Error(), tt.want)
			assert.Zero(t, analyzer.calls.Load(), "invalid profiles must not reach the engine")

			stdErr := apperrors.Normalize(toStandardError(err))
			assert.Equal(t, apperrors.ErrCodeProfileValidationFailed, stdErr.Code)
			assert.False(t, stdErr.Retryable)
		})
	}
}

// ==========================
// Cache Tests
// ==========================

func TestHandler_Execute_CacheAside(t *testing.T) {
	mr, rdb := createTestRedis(t)
	analyzer := &stubAnalyzer{}
	recorder := &stubRecorder{}
	handler := createTestHandler(t, analyzer, rdb, nil).WithRecorder(recorder)
	ctx := context.Background()
	profile := createProfileJSON(t, nil)

	first, err := handler.Execute(ctx, &Input{UserID: "user-1", Profile: profile})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	var decoded models.UserProfile
	require.NoError(t, json.Unmarshal(profile, &decoded))
	key, err := CacheKey(decoded)
	require.NoError(t, err)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 24*time.Hour, mr.TTL(key))

	second, err := handler.Execute(ctx, &Input{UserID: "user-2", Profile: profile})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Analysis.ID, second.Analysis.ID)
	assert.Equal(t, first.Analysis.Feasibility.Score, second.Analysis.Feasibility.Score)
	assert.EqualValues(t, 1, analyzer.calls.Load())

	assert.Equal(t, []recordedAnalysis{
		{rating: "Achievable", cached: false},
		{rating: "Achievable", cached: true},
	}, recorder.records)

	// A cached analysis is stored unrestricted and trimmed per request.
	third, err := handler.Execute(ctx, &Input{
		Profile:     profile,
		Permissions: models.Entitlements(models.PlanStarter).Permissions,
	})
	require.NoError(t, err)
	assert.True(t, third.Cached)
	assert.Nil(t, third.Analysis.Support.SalaryTips)

	fourth, err := handler.Execute(ctx, &Input{Profile: profile})
	require.NoError(t, err)
	assert.NotNil(t, fourth.Analysis.Support.SalaryTips)
}

func TestHandler_Execute_CacheDisabled(t *testing.T) {
	mr, rdb := createTestRedis(t)
	analyzer := &stubAnalyzer{}
	config := createTestConfig()
	config.CacheEnabled = false
	handler := createTestHandler(t, analyzer, rdb, config)
	profile := createProfileJSON(t, nil)

	for i := 0; i < 2; i++ {
		output, err := handler.Execute(context.Background(), &Input{Profile: profile})
		require.NoError(t, err)
		assert.False(t, output.Cached)
	}
	assert.EqualValues(t, 2, analyzer.calls.Load())
	assert.Empty(t, mr.Keys())
}

func TestHandler_Execute_CacheUnavailable(t *testing.T) {
	mr, rdb := createTestRedis(t)
	mr.SetError("LOADING redis is loading")

	analyzer := &stubAnalyzer{}
	handler := createTestHandler(t, analyzer, rdb, nil)

	output, err := handler.Execute(context.Background(), &Input{Profile: createProfileJSON(t, nil)})

	require.NoError(t, err, "cache failures should not fail the analysis")
	assert.False(t, output.Cached)
	assert.EqualValues(t, 1, analyzer.calls.Load())
}

func TestCacheKey(t *testing.T) {
	a := models.UserProfile{CurrentTitle: "Teacher", DreamRole: "Data Scientist"}
	b := a
	b.Savings = 1

	keyA, err := CacheKey(a)
	require.NoError(t, err)
	keyA2, _ := CacheKey(a)
	keyB, _ := CacheKey(b)

	assert.Regexp(t, `^analysis:[0-9a-f]{64}$`, keyA)
	assert.Equal(t, keyA, keyA2)
	assert.NotEqual(t, keyA, keyB)
}

// ==========================
// Integration-Style Tests
// ==========================

func TestHandler_WithEngine(t *testing.T) {
	kb := knowledge.Default()
	recommender := resources.NewRecommender(resources.LoadConfig(), kb)
	eng := engine.New(nil, kb, engine.Providers{
		Resources: recommender,
		Support:   support.NewCoach(support.LoadConfig(), kb, recommender),
	}, variety.Fixed{}, logger.NewTestLogger(t))

	_, rdb := createTestRedis(t)
	handler := createTestHandler(t, eng, rdb, nil)

	output, err := handler.Execute(context.Background(), &Input{
		UserID:      "user-e2e",
		Profile:     createProfileJSON(t, nil),
		Permissions: models.Entitlements(models.PlanStarter).Permissions,
	})
	require.NoError(t, err)

	a := output.Analysis
	assert.NotEmpty(t, a.ID)
	assert.GreaterOrEqual(t, a.Feasibility.Score, 15)
	assert.LessOrEqual(t, a.Feasibility.Score, 95)
	assert.NotEmpty(t, a.Roadmap.Phases)
	require.NotNil(t, a.Resources)
	require.NotNil(t, a.Support)
	assert.Nil(t, a.Support.InterviewPrep)
	assert.NotEmpty(t, a.Support.WeeklyPlan.Days)
}
