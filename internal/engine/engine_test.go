// internal/engine/engine_test.go
package engine

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"career-pivot/internal/common/logger"
	"career-pivot/internal/engine/variety"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type stubCompanies struct {
	match *models.CompanyMatch
	err   error
}

func (s stubCompanies) Find(_ context.Context, _, _ string) (*models.CompanyMatch, error) {
	return s.match, s.err
}

type stubResources struct {
	plan *models.ResourcePlan
	err  error
}

func (s stubResources) Recommend(_ context.Context, _ models.UserProfile, _ models.SkillGap) (*models.ResourcePlan, error) {
	return s.plan, s.err
}

type stubCoach struct {
	seen  atomic.Int32
	reply *models.SupportContent
	err   error
}

func (s *stubCoach) Support(_ context.Context, _ models.UserProfile, a models.Analysis) (*models.SupportContent, error) {
	s.seen.Store(int32(a.Feasibility.Score))
	return s.reply, s.err
}

func createTestEngine(t *testing.T, providers Providers) *Engine {
	return New(LoadConfig(), knowledge.Default(), providers, variety.Fixed{}, logger.NewTestLogger(t)).
		WithClock(func() time.Time { return testNow })
}

func createTestProfile() models.UserProfile {
	return models.UserProfile{
		CurrentTitle:        "Software Engineer",
		YearsExperience:     6,
		Skills:              []string{"programming", "communication"},
		DreamRole:           "Product Manager",
		Location:            "Bengaluru",
		MonthlySalary:       150000,
		MonthlyExpenses:     60000,
		Savings:             900000,
		WeeklyLearningHours: 15,
		RiskTolerance:       3,
	}
}

// ==========================
// Run
// ==========================

func TestEngine_Run(t *testing.T) {
	e := createTestEngine(t, Providers{})

	tests := []struct {
		name           string
		profile        models.UserProfile
		validateOutput func(t *testing.T, a *models.Analysis)
	}{
		{
			name:    "software engineer to product manager",
			profile: createTestProfile(),
			validateOutput: func(t *testing.T, a *models.Analysis) {
				assert.Equal(t, 95, a.Feasibility.Score)
				assert.Equal(t, 89, a.SkillGap.GapPercentage)
				assert.Equal(t, 15, a.FinancialAnalysis.CurrentRunway)
				assert.Equal(t, float64(0), a.FinancialAnalysis.BridgeFundNeeded)
				assert.Equal(t, 16, a.Roadmap.TotalMonths)
				assert.Equal(t, 45, a.RiskAssessment.OverallScore)
				assert.Equal(t, "Data Engineer", a.Alternatives[0].Role)
			},
		},
		{
			name: "unknown target role still produces an analysis",
			profile: models.UserProfile{
				CurrentTitle: "Teacher",
				DreamRole:    "Astronaut",
				Skills:       []string{"teaching"},
			},
			validateOutput: func(t *testing.T, a *models.Analysis) {
				assert.Equal(t, 100, a.SkillGap.GapPercentage)
				assert.Len(t, a.SkillGap.SkillsToAcquire, 3)
				assert.Equal(t, 0, a.Profile.RiskTolerance)
				assert.Equal(t, float64(0), a.Profile.WeeklyLearningHours)
				assert.NotEmpty(t, a.Roadmap.Phases)
			},
		},
		{
			name: "blank profile",
			validateOutput: func(t *testing.T, a *models.Analysis) {
				assert.Contains(t, a.Feasibility.Summary, "your target role")
				assert.Equal(t, 999, a.FinancialAnalysis.CurrentRunway)
				assert.NotEmpty(t, a.Alternatives)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := e.Run(context.Background(), tt.profile)
			require.NotNil(t, a)
			assert.NotEmpty(t, a.ID)
			assert.Equal(t, testNow, a.GeneratedAt)
			assertBounds(t, a)
			tt.validateOutput(t, a)
		})
	}
}

func assertBounds(t *testing.T, a *models.Analysis) {
	t.Helper()
	assert.GreaterOrEqual(t, a.Feasibility.Score, 15)
	assert.LessOrEqual(t, a.Feasibility.Score, 95)
	assert.GreaterOrEqual(t, a.SkillGap.GapPercentage, 0)
	assert.LessOrEqual(t, a.SkillGap.GapPercentage, 100)
	assert.GreaterOrEqual(t, a.RiskAssessment.OverallScore, 0)
	assert.LessOrEqual(t, a.RiskAssessment.OverallScore, 90)
	assert.GreaterOrEqual(t, a.Roadmap.TotalMonths, 4)
	assert.LessOrEqual(t, a.Roadmap.TotalMonths, 36)
	assert.LessOrEqual(t, len(a.Alternatives), 4)
	assert.True(t, sort.SliceIsSorted(a.Alternatives, func(i, j int) bool {
		return a.Alternatives[i].MatchScore > a.Alternatives[j].MatchScore
	}), "alternatives should be ranked by match score")
}

func TestEngine_Run_Deterministic(t *testing.T) {
	e := createTestEngine(t, Providers{})

	first := e.Run(context.Background(), createTestProfile())
	second := e.Run(context.Background(), createTestProfile())

	assert.NotEqual(t, first.ID, second.ID)
	first.ID, second.ID = "", ""
	assert.Equal(t, first, second)
}

func TestEngine_Run_ZeroLearningHours(t *testing.T) {
	e := createTestEngine(t, Providers{})

	zero := createTestProfile()
	zero.WeeklyLearningHours = 0
	one := createTestProfile()
	one.WeeklyLearningHours = 1

	a := e.Run(context.Background(), zero)
	b := e.Run(context.Background(), one)

	assert.Equal(t, float64(0), a.Profile.WeeklyLearningHours)

	var factors []string
	for _, f := range a.Feasibility.Factors {
		factors = append(factors, f.Name)
	}
	assert.Contains(t, factors, "Learning Time")
	assert.Equal(t, 80, a.Feasibility.Score)

	// 12 x 1.5 (under 5 hours) x 1.3 (gap above 60)
	assert.Equal(t, 23, a.Roadmap.TotalMonths)

	var categories []string
	for _, r := range a.RiskAssessment.Risks {
		categories = append(categories, r.Category)
	}
	assert.Contains(t, categories, "Timeline")

	assert.Equal(t, b.Feasibility.Score, a.Feasibility.Score)
	assert.Equal(t, b.Roadmap.TotalMonths, a.Roadmap.TotalMonths)
	assert.Equal(t, b.RiskAssessment.OverallScore, a.RiskAssessment.OverallScore)
	assert.Equal(t, b.SkillGap.EstimatedLearningMonths, a.SkillGap.EstimatedLearningMonths)
}

func TestEngine_Run_SeededStaysInBounds(t *testing.T) {
	e := New(nil, knowledge.Default(), Providers{}, variety.Seeded(42), logger.NewNoOpLogger())

	for i := 0; i < 20; i++ {
		assertBounds(t, e.Run(context.Background(), createTestProfile()))
	}
}

// ==========================
// Enrichment
// ==========================

func TestEngine_Run_Enrichment(t *testing.T) {
	companies := &models.CompanyMatch{City: "Bengaluru", RoleCategory: "Product Manager"}
	plan := &models.ResourcePlan{}
	support := &models.SupportContent{}

	tests := []struct {
		name           string
		providers      func(coach *stubCoach) Providers
		validateOutput func(t *testing.T, a *models.Analysis, coach *stubCoach)
	}{
		{
			name: "no providers leaves enrichment empty",
			providers: func(*stubCoach) Providers {
				return Providers{}
			},
			validateOutput: func(t *testing.T, a *models.Analysis, _ *stubCoach) {
				assert.Nil(t, a.RecommendedCompanies)
				assert.Nil(t, a.Resources)
				assert.Nil(t, a.Support)
			},
		},
		{
			name: "all providers succeed",
			providers: func(coach *stubCoach) Providers {
				coach.reply = support
				return Providers{
					Companies: stubCompanies{match: companies},
					Resources: stubResources{plan: plan},
					Support:   coach,
				}
			},
			validateOutput: func(t *testing.T, a *models.Analysis, coach *stubCoach) {
				assert.Same(t, companies, a.RecommendedCompanies)
				assert.Same(t, plan, a.Resources)
				assert.Same(t, support, a.Support)
				assert.Equal(t, int32(95), coach.seen.Load(), "coach should see the finished core analysis")
			},
		},
		{
			name: "failing provider is isolated",
			providers: func(coach *stubCoach) Providers {
				coach.reply = support
				return Providers{
					Companies: stubCompanies{err: errors.New("search unavailable")},
					Resources: stubResources{plan: plan},
					Support:   coach,
				}
			},
			validateOutput: func(t *testing.T, a *models.Analysis, _ *stubCoach) {
				assert.Nil(t, a.RecommendedCompanies)
				assert.Same(t, plan, a.Resources)
				assert.Same(t, support, a.Support)
				assert.Equal(t, 95, a.Feasibility.Score)
			},
		},
		{
			name: "nil result without error is ignored",
			providers: func(*stubCoach) Providers {
				return Providers{Resources: stubResources{}}
			},
			validateOutput: func(t *testing.T, a *models.Analysis, _ *stubCoach) {
				assert.Nil(t, a.Resources)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coach := &stubCoach{}
			e := createTestEngine(t, tt.providers(coach))

			a := e.Run(context.Background(), createTestProfile())
			tt.validateOutput(t, a, coach)
		})
	}
}

func TestEngine_Run_EnrichmentDisabled(t *testing.T) {
	cfg := LoadConfig()
	cfg.EnrichmentEnabled = false
	e := New(cfg, knowledge.Default(), Providers{
		Companies: stubCompanies{match: &models.CompanyMatch{}},
	}, nil, logger.NewNoOpLogger())

	a := e.Run(context.Background(), createTestProfile())
	assert.Nil(t, a.RecommendedCompanies)
}

// ==========================
// Tracing
// ==========================

func TestEngine_Run_Spans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	e := createTestEngine(t, Providers{Companies: stubCompanies{err: errors.New("boom")}}).
		WithTracer(tp.Tracer("test"))
	e.Run(context.Background(), createTestProfile())

	var names []string
	for _, s := range sr.Ended() {
		names = append(names, s.Name())
	}
	for _, want := range []string{
		"engine.match", "engine.feasibility", "engine.skill_gap", "engine.financial",
		"engine.roadmap", "engine.alternatives", "engine.risk",
		"engine.enrich", "engine.enrich.companies", "engine.run",
	} {
		assert.Contains(t, names, want)
	}
}
