// Package store archives completed valuation runs to Postgres. The engine
// itself is pure; archiving only happens when a repo is injected into the
// pipeline.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"cap_valuation/pkg/core/pipeline"
)

// RunRepo persists engine runs as JSONB blobs, one row per run.
type RunRepo struct{}

// NewRunRepo creates a new repository instance.
func NewRunRepo() *RunRepo {
	return &RunRepo{}
}

// Schema assumption:
// CREATE TABLE IF NOT EXISTS valuation_runs (
//   run_id UUID PRIMARY KEY,
//   league_id TEXT,
//   run_at TIMESTAMPTZ,
//   result_json JSONB
// );

// SaveRun archives one completed run under a fresh run id.
func (r *RunRepo) SaveRun(ctx context.Context, run *pipeline.Run) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	resultJSON, err := json.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal run result: %w", err)
	}

	query := `
		INSERT INTO valuation_runs (run_id, league_id, run_at, result_json)
		VALUES ($1, $2, $3, $4);
	`
	_, err = pool.Exec(ctx, query, uuid.New().String(), run.LeagueID, run.RunAt, resultJSON)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// LoadLatest retrieves the most recent archived run for a league.
func (r *RunRepo) LoadLatest(ctx context.Context, leagueID string) (*pipeline.Run, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT league_id, run_at, result_json
		FROM valuation_runs
		WHERE league_id = $1
		ORDER BY run_at DESC
		LIMIT 1
	`

	run := &pipeline.Run{Result: &pipeline.Result{}}
	var resultJSON []byte
	err := pool.QueryRow(ctx, query, leagueID).Scan(&run.LeagueID, &run.RunAt, &resultJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no runs archived for league %s", leagueID)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	if err := json.Unmarshal(resultJSON, run.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run result: %w", err)
	}
	return run, nil
}
