// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-pivot/internal/common/config"
	"career-pivot/internal/common/database"
	"career-pivot/internal/common/logger"
	"career-pivot/internal/engine"
	"career-pivot/internal/engine/variety"
	"career-pivot/internal/enrichment/companies"
	"career-pivot/internal/enrichment/resources"
	"career-pivot/internal/enrichment/support"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"

	act "career-pivot/internal/workers/career/analyze-career-transition"
	caq "career-pivot/internal/workers/career/check-analysis-quota"
	rau "career-pivot/internal/workers/career/record-analysis-usage"
)

const profileJSON = `{
  "currentTitle": "Software Engineer",
  "yearsExperience": 6,
  "skills": ["programming", "communication"],
  "location": "Bengaluru",
  "monthlySalary": 150000,
  "monthlyExpenses": 60000,
  "savings": 900000,
  "dreamRole": "Product Manager",
  "riskTolerance": 3,
  "weeklyLearningHours": 15
}`

var (
	planQuery   = regexp.QuoteMeta(`SELECT plan, analyses_used FROM user_plans WHERE user_id = $1`)
	usageInsert = regexp.QuoteMeta(`INSERT INTO analysis_usage`)
	planUpsert  = regexp.QuoteMeta(`INSERT INTO user_plans`)
)

// ==========================
// Test Helper Functions
// ==========================

type pipeline struct {
	quota   *caq.Handler
	analyze *act.Handler
	usage   *rau.Handler
}

func createEngine(t *testing.T) *engine.Engine {
	kb := knowledge.Default()
	recommender := resources.NewRecommender(resources.LoadConfig(), kb)
	return engine.New(nil, kb, engine.Providers{
		Companies: companies.NewDirectory(companies.LoadConfig(), kb),
		Resources: recommender,
		Support:   support.NewCoach(support.LoadConfig(), kb, recommender),
	}, variety.Fixed{}, logger.NewTestLogger(t))
}

func createPipeline(t *testing.T, db *sql.DB, rdb *redis.Client) *pipeline {
	log := logger.NewTestLogger(t)
	return &pipeline{
		quota:   caq.NewHandler(caq.LoadConfig(), db, rdb, log),
		analyze: act.NewHandler(act.LoadConfig(), createEngine(t), rdb, log),
		usage:   rau.NewHandler(rau.LoadConfig(), db, rdb, log),
	}
}

type runResult struct {
	quota    *caq.Output
	analysis *act.Output
	usage    *rau.Output
}

// runOnce drives one pass of the workflow the way the process would:
// quota check, analysis, then usage recording.
func (p *pipeline) runOnce(ctx context.Context, userID string) (*runResult, error) {
	quota, err := p.quota.Execute(ctx, &caq.Input{UserID: userID})
	if err != nil {
		return nil, err
	}

	analysis, err := p.analyze.Execute(ctx, &act.Input{
		UserID:      userID,
		Profile:     json.RawMessage(profileJSON),
		Permissions: quota.Permissions,
	})
	if err != nil {
		return nil, err
	}

	usage, err := p.usage.Execute(ctx, &rau.Input{
		UserID:           userID,
		AnalysisID:       analysis.Analysis.ID,
		FeasibilityScore: analysis.Analysis.Feasibility.Score,
	})
	if err != nil {
		return nil, err
	}
	return &runResult{quota: quota, analysis: analysis, usage: usage}, nil
}

func expectPlanRow(mock sqlmock.Sqlmock, userID, plan string, used int) {
	rows := sqlmock.NewRows([]string{"plan", "analyses_used"})
	if plan != "" {
		rows.AddRow(plan, used)
	}
	mock.ExpectQuery(planQuery).WithArgs(userID).WillReturnRows(rows)
}

func expectUsage(mock sqlmock.Sqlmock, userID string, usedAfter int) {
	mock.ExpectBegin()
	mock.ExpectExec(usageInsert).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(planUpsert).WithArgs(userID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"analyses_used"}).AddRow(usedAfter))
	mock.ExpectCommit()
}

// ==========================
// Workflow Tests
// ==========================

func TestWorkflow_StarterPlanUsesUpQuota(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	const userID = "starter-user"
	expectPlanRow(mock, userID, "", 0)
	expectUsage(mock, userID, 1)
	expectPlanRow(mock, userID, models.PlanStarter, 1)
	expectUsage(mock, userID, 2)
	expectPlanRow(mock, userID, models.PlanStarter, 2)
	expectUsage(mock, userID, 3)
	expectPlanRow(mock, userID, models.PlanStarter, 3)

	p := createPipeline(t, db, rdb)
	ctx := context.Background()

	var first *runResult
	for i := 1; i <= 3; i++ {
		res, err := p.runOnce(ctx, userID)
		require.NoError(t, err, "run %d", i)

		assert.Equal(t, 3-(i-1), res.quota.AnalysesRemaining)
		assert.Equal(t, i, res.usage.AnalysesUsed)
		assert.False(t, mr.Exists(models.PlanCacheKey(userID)), "usage must invalidate the cached plan")

		a := res.analysis.Analysis
		assert.Equal(t, 95, a.Feasibility.Score)
		require.NotNil(t, a.Support)
		assert.Nil(t, a.Support.SalaryTips, "starter plans do not get salary tips")
		assert.Nil(t, a.Support.InterviewPrep)

		if i == 1 {
			first = res
			assert.False(t, res.analysis.Cached)
		} else {
			assert.True(t, res.analysis.Cached)
			assert.Equal(t, first.analysis.Analysis.ID, a.ID)
		}
	}

	_, err = p.runOnce(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, caq.ErrAnalysisQuotaExceeded)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkflow_ProPlanKeepsCoaching(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	const userID = "pro-user"
	expectPlanRow(mock, userID, models.PlanPro, 41)
	expectUsage(mock, userID, 42)

	p := createPipeline(t, db, rdb)
	res, err := p.runOnce(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, models.Unlimited, res.quota.AnalysesRemaining)
	assert.Equal(t, 42, res.usage.AnalysesUsed)

	s := res.analysis.Analysis.Support
	require.NotNil(t, s)
	assert.NotNil(t, s.SalaryTips)
	assert.NotNil(t, s.InterviewPrep)
	assert.NotEmpty(t, s.NetworkingTemplates)
	assert.NotNil(t, s.CommonMistakes)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Real Services
// ==========================

// TestWorkflow_RealServices runs against the Postgres and Redis from
// configs/config.yaml. Set E2E=1 with both services up to enable it.
func TestWorkflow_RealServices(t *testing.T) {
	if os.Getenv("E2E") != "1" {
		t.Skip("set E2E=1 to run against real Postgres and Redis")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.Load()
	require.NoError(t, err)

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	require.NoError(t, err)
	defer pg.Close()
	require.NoError(t, pg.Ping(ctx), "PostgreSQL ping failed")
	require.NoError(t, pg.EnsureSchema(ctx))

	rdb, err := database.NewRedis(cfg.Database.Redis)
	require.NoError(t, err)
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx), "Redis ping failed")

	userID := "e2e-" + uuid.NewString()
	t.Cleanup(func() {
		_, _ = pg.DB.Exec(`DELETE FROM analysis_usage WHERE user_id = $1`, userID)
		_, _ = pg.DB.Exec(`DELETE FROM user_plans WHERE user_id = $1`, userID)
	})

	p := createPipeline(t, pg.DB, rdb.Client)

	for i := 1; i <= 3; i++ {
		res, err := p.runOnce(ctx, userID)
		require.NoError(t, err, "run %d", i)
		assert.Equal(t, i, res.usage.AnalysesUsed)
	}

	_, err = p.runOnce(ctx, userID)
	var exceeded *caq.QuotaExceededError
	require.True(t, errors.As(err, &exceeded), "fourth analysis should exceed the starter quota, got %v", err)
	assert.Equal(t, 3, exceeded.Used)

	var rows int
	require.NoError(t, pg.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM analysis_usage WHERE user_id = $1`, userID).Scan(&rows))
	assert.Equal(t, 3, rows)
}
