package database

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"career-pivot/internal/common/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Postgres
// ==========================

func TestWithTx_Commit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO analysis_usage").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = WithTx(context.Background(), db, func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO analysis_usage (id) VALUES ($1)", "x")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err = WithTx(context.Background(), db, func(tx *sql.Tx) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS user_plans").WillReturnResult(sqlmock.NewResult(0, 0))

	client := &PostgresClient{DB: db}
	require.NoError(t, client.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Redis
// ==========================

func TestJSONHelpers(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	type plan struct {
		Plan string `json:"plan"`
		Used int    `json:"used"`
	}

	var got plan
	found, err := GetJSON(ctx, rdb, "plan:u1", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, rdb, "plan:u1", plan{Plan: "pro", Used: 4}, time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("plan:u1"))

	found, err = GetJSON(ctx, rdb, "plan:u1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, plan{Plan: "pro", Used: 4}, got)

	require.NoError(t, mr.Set("plan:bad", "{not json"))
	_, err = GetJSON(ctx, rdb, "plan:bad", &got)
	assert.Error(t, err)
}

// ==========================
// Elasticsearch
// ==========================

type stubTransport struct {
	status int
}

func (s stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: s.status,
		Status:     http.StatusText(s.status),
		Header:     http.Header{"X-Elastic-Product": []string{"Elasticsearch"}},
		Body:       io.NopCloser(strings.NewReader(`{}`)),
		Request:    req,
	}, nil
}

func TestElasticsearchPing(t *testing.T) {
	cfg := config.ElasticsearchConfig{URL: "http://es.local:9200"}

	es, err := NewElasticsearch(cfg, stubTransport{status: http.StatusOK})
	require.NoError(t, err)
	assert.NoError(t, es.Ping(context.Background()))

	es, err = NewElasticsearch(cfg, stubTransport{status: http.StatusInternalServerError})
	require.NoError(t, err)
	assert.Error(t, es.Ping(context.Background()))
}
