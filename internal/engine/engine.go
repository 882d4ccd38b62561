// internal/engine/engine.go
package engine

import (
	"context"
	"time"

	"career-pivot/internal/common/concurrency"
	"career-pivot/internal/common/logger"
	"career-pivot/internal/common/metrics"
	"career-pivot/internal/engine/alternatives"
	"career-pivot/internal/engine/feasibility"
	"career-pivot/internal/engine/financial"
	"career-pivot/internal/engine/matcher"
	"career-pivot/internal/engine/risk"
	"career-pivot/internal/engine/roadmap"
	"career-pivot/internal/engine/skillgap"
	"career-pivot/internal/engine/variety"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	ProviderCompanies = "companies"
	ProviderResources = "resources"
	ProviderSupport   = "support"
)

// CompanyDirectory suggests employers for a location and target role.
type CompanyDirectory interface {
	Find(ctx context.Context, location, role string) (*models.CompanyMatch, error)
}

// ResourceRecommender builds a learning plan for the skills still to acquire.
type ResourceRecommender interface {
	Recommend(ctx context.Context, profile models.UserProfile, gap models.SkillGap) (*models.ResourcePlan, error)
}

// SupportCoach produces coaching content from the finished core analysis.
type SupportCoach interface {
	Support(ctx context.Context, profile models.UserProfile, analysis models.Analysis) (*models.SupportContent, error)
}

// Providers are the optional enrichers. Any of them may be nil.
type Providers struct {
	Companies CompanyDirectory
	Resources ResourceRecommender
	Support   SupportCoach
}

// Engine runs the scoring pipeline over a read-only knowledge base. It holds
// no per-run state and is safe for concurrent use.
type Engine struct {
	config    *Config
	kb        *knowledge.KnowledgeBase
	providers Providers
	logger    logger.Logger
	tracer    trace.Tracer
	now       func() time.Time

	matcher      *matcher.Matcher
	feasibility  *feasibility.Scorer
	skillGap     *skillgap.Analyzer
	financial    *financial.Analyzer
	roadmap      *roadmap.Generator
	alternatives *alternatives.Finder
	risk         *risk.Assessor
}

func New(config *Config, kb *knowledge.KnowledgeBase, providers Providers, src variety.Source, log logger.Logger) *Engine {
	if config == nil {
		config = LoadConfig()
	}
	if src == nil {
		src = variety.Fixed{}
	}

	m := matcher.New(config.Matcher, kb)
	return &Engine{
		config:       config,
		kb:           kb,
		providers:    providers,
		logger:       log.WithFields(map[string]interface{}{"component": "engine"}),
		tracer:       otel.Tracer("career-pivot/engine"),
		now:          time.Now,
		matcher:      m,
		feasibility:  feasibility.NewScorer(config.Feasibility, kb, m),
		skillGap:     skillgap.NewAnalyzer(config.SkillGap, kb, m, src),
		financial:    financial.NewAnalyzer(config.Financial),
		roadmap:      roadmap.NewGenerator(config.Roadmap, kb),
		alternatives: alternatives.NewFinder(config.Alternatives, kb, m, src),
		risk:         risk.NewAssessor(config.Risk),
	}
}

func (e *Engine) WithTracer(t trace.Tracer) *Engine {
	if t != nil {
		e.tracer = t
	}
	return e
}

func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	e.roadmap.WithClock(now)
	return e
}

// KnowledgeBase exposes the tables the engine scores against.
func (e *Engine) KnowledgeBase() *knowledge.KnowledgeBase {
	return e.kb
}

// Run produces one Analysis for profile. It never fails: unmatched roles fall
// back to defaults and enrichment failures leave their field nil.
func (e *Engine) Run(ctx context.Context, profile models.UserProfile) *models.Analysis {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "engine.run")
	defer span.End()

	p := profile.Sanitize()
	a := &models.Analysis{
		ID:          uuid.NewString(),
		GeneratedAt: e.now().UTC(),
		Profile:     p,
	}

	var current, target *knowledge.RoleProfile
	e.stage(ctx, "match", func() {
		current = e.matcher.Lookup(p.CurrentTitle)
		target = e.matcher.Lookup(p.DreamRole)
	})
	span.SetAttributes(
		attribute.Bool("career.current_matched", current != nil),
		attribute.Bool("career.target_matched", target != nil),
	)

	e.stage(ctx, "feasibility", func() {
		a.Feasibility = e.feasibility.Score(p, current, target)
	})
	e.stage(ctx, "skill_gap", func() {
		a.SkillGap = e.skillGap.Analyze(p, target)
	})
	e.stage(ctx, "financial", func() {
		a.FinancialAnalysis = e.financial.Analyze(p, target)
	})
	e.stage(ctx, "roadmap", func() {
		a.Roadmap = e.roadmap.Generate(p, roadmap.Inputs{SkillGap: a.SkillGap})
	})
	e.stage(ctx, "alternatives", func() {
		a.Alternatives = e.alternatives.Find(p, current)
	})
	e.stage(ctx, "risk", func() {
		a.RiskAssessment = e.risk.Assess(p, a.Feasibility, a.SkillGap, a.FinancialAnalysis, target)
	})

	if e.config.EnrichmentEnabled {
		e.enrich(ctx, a)
	}

	metrics.AnalysesTotal.WithLabelValues(a.Feasibility.Rating.Label).Inc()
	metrics.FeasibilityScore.Observe(float64(a.Feasibility.Score))
	span.SetAttributes(
		attribute.String("career.analysis_id", a.ID),
		attribute.Int("career.feasibility_score", a.Feasibility.Score),
	)

	e.logger.Info("analysis complete", map[string]interface{}{
		"analysisId":  a.ID,
		"feasibility": a.Feasibility.Score,
		"gap":         a.SkillGap.GapPercentage,
		"totalMonths": a.Roadmap.TotalMonths,
		"risk":        a.RiskAssessment.OverallScore,
		"duration":    time.Since(start).String(),
	})
	return a
}

func (e *Engine) stage(ctx context.Context, name string, fn func()) {
	_, span := e.tracer.Start(ctx, "engine."+name)
	defer span.End()

	start := time.Now()
	fn()
	e.logger.Debug("stage finished", map[string]interface{}{
		"stage":    name,
		"duration": time.Since(start).String(),
	})
}

type enrichment struct {
	provider string
	fetch    func(ctx context.Context) (any, error)
	store    func(v any)
}

// enrich fans the optional providers out in parallel. Results are stored on a
// only after every fetch has returned.
func (e *Engine) enrich(ctx context.Context, a *models.Analysis) {
	p := a.Profile
	core := *a

	var jobs []enrichment
	if e.providers.Companies != nil {
		jobs = append(jobs, enrichment{
			provider: ProviderCompanies,
			fetch: func(ctx context.Context) (any, error) {
				return e.providers.Companies.Find(ctx, p.Location, p.DreamRole)
			},
			store: func(v any) {
				if m, _ := v.(*models.CompanyMatch); m != nil {
					a.RecommendedCompanies = m
				}
			},
		})
	}
	if e.providers.Resources != nil {
		jobs = append(jobs, enrichment{
			provider: ProviderResources,
			fetch: func(ctx context.Context) (any, error) {
				return e.providers.Resources.Recommend(ctx, p, core.SkillGap)
			},
			store: func(v any) {
				if r, _ := v.(*models.ResourcePlan); r != nil {
					a.Resources = r
				}
			},
		})
	}
	if e.providers.Support != nil {
		jobs = append(jobs, enrichment{
			provider: ProviderSupport,
			fetch: func(ctx context.Context) (any, error) {
				return e.providers.Support.Support(ctx, p, core)
			},
			store: func(v any) {
				if s, _ := v.(*models.SupportContent); s != nil {
					a.Support = s
				}
			},
		})
	}
	if len(jobs) == 0 {
		return
	}

	ctx, span := e.tracer.Start(ctx, "engine.enrich")
	defer span.End()

	results, errs := concurrency.ProcessParallel(ctx, jobs, e.config.Enrichment,
		func(ctx context.Context, _ int, job enrichment) (any, error) {
			ctx, span := e.tracer.Start(ctx, "engine.enrich."+job.provider)
			defer span.End()

			v, err := job.fetch(ctx)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return v, err
		})

	for i, job := range jobs {
		if errs[i] != nil {
			metrics.EnrichmentFailures.WithLabelValues(job.provider).Inc()
			e.logger.Warn("enrichment provider failed", map[string]interface{}{
				"provider":   job.provider,
				"analysisId": a.ID,
				"error":      errs[i].Error(),
			})
			continue
		}
		job.store(results[i])
	}
}
