// Package pipeline chains the engine's models in dependency order: cap
// accounting -> tag prediction -> auction pricing -> market analysis, with
// the price/scarcity feedback handled as an explicit two-pass refinement
// (price once at neutral scarcity, derive true scarcity, price once more).
// Two passes already reach the fixed point under the current rules: tier and
// quality thresholds are rank-based, so the re-price cannot change the
// scarcity inputs that produced it.
package pipeline

import (
	"context"
	"fmt"
	"math"
	"time"

	"cap_valuation/pkg/core/capspace"
	"cap_valuation/pkg/core/franchise"
	"cap_valuation/pkg/core/league"
	"cap_valuation/pkg/core/market"
	"cap_valuation/pkg/core/pricing"
	"cap_valuation/pkg/models"
)

// Repository archives a completed run. Implementations may write to
// Postgres or keep runs in memory for tests.
type Repository interface {
	SaveRun(ctx context.Context, run *Run) error
}

// Input is everything the engine consumes, already loaded by external
// collaborators.
type Input struct {
	LeagueID       string                       `json:"league_id"`
	Rosters        []models.TeamRoster          `json:"rosters"`
	SalaryAverages models.SalaryAverages        `json:"salary_averages"`
	DeadMoney      []models.DeadMoneyAdjustment `json:"dead_money"`
	RankOverlays   models.RankOverlays          `json:"rank_overlays"`
	Weights        models.RankWeights           `json:"weights"`
}

// Result is the full engine output for one run.
type Result struct {
	CapSituations []models.TeamCapSituation       `json:"cap_situations"`
	CapSummary    models.LeagueCapSummary         `json:"cap_summary"`
	Predictions   []models.FranchiseTagPrediction `json:"predictions"`
	FreeAgents    []models.PlayerValuation        `json:"free_agents"`
	Market        *models.MarketAnalysis          `json:"market"`
}

// Run pairs a Result with its identity for archiving.
type Run struct {
	LeagueID string    `json:"league_id"`
	RunAt    time.Time `json:"run_at"`
	Result   *Result   `json:"result"`
}

// Engine wires the four models together under one rule set.
type Engine struct {
	rules   league.Rules
	capCalc *capspace.Calculator
	repo    Repository
}

// NewEngine creates a pipeline engine. repo may be nil; runs are then not
// archived.
func NewEngine(rules league.Rules, repo Repository) *Engine {
	return &Engine{
		rules:   rules,
		capCalc: capspace.NewCalculator(rules),
		repo:    repo,
	}
}

// Run executes the full valuation pipeline. The engine never fails on
// degraded data; the only errors surfaced come from archiving the run.
func (e *Engine) Run(ctx context.Context, input Input) (*Result, error) {
	start := time.Now()
	fmt.Printf("Starting valuation pipeline for league %s (%d teams)...\n", input.LeagueID, len(input.Rosters))

	weights := normalizeWeights(input.Weights)
	predictor := franchise.NewPredictor(e.rules, weights)

	// 1. Cap accounting.
	deadMoney := aggregateDeadMoney(input.DeadMoney)
	situations := e.capCalc.CalculateAll(input.Rosters, deadMoney)
	mergeOverlays(situations, input.RankOverlays)
	fmt.Printf("Cap accounting complete: %d team situations\n", len(situations))

	// 2. Franchise tags.
	predictions := predictor.PredictAll(situations, input.SalaryAverages)
	tagCount := 0
	for i := range predictions {
		if predictions[i].HasTag {
			tagCount++
		}
	}
	fmt.Printf("Tag prediction complete: %d of %d teams predicted to tag\n", tagCount, len(predictions))

	// 3. Fold predicted tag salaries back into cap accounting so the market
	// sees post-tag discretionary spend.
	situations = e.applyTagSalaries(input.Rosters, deadMoney, predictions)
	mergeOverlays(situations, input.RankOverlays)

	// 4. Two-pass price/scarcity refinement over the open pool.
	pool := expiringPool(situations)
	freeAgents := franchise.AvailableFreeAgents(pool, predictions)
	priced, analysis := e.PriceAndAnalyze(freeAgents, situations, weights)
	fmt.Printf("Priced %d free agents; market efficiency %.2f (%s)\n",
		len(priced), analysis.MarketEfficiency, analysis.Condition)

	result := &Result{
		CapSituations: situations,
		CapSummary:    capspace.Summarize(situations),
		Predictions:   predictions,
		FreeAgents:    priced,
		Market:        analysis,
	}

	if e.repo != nil {
		run := &Run{LeagueID: input.LeagueID, RunAt: time.Now().UTC(), Result: result}
		if err := e.repo.SaveRun(ctx, run); err != nil {
			return result, fmt.Errorf("failed to archive run: %w", err)
		}
	}

	fmt.Printf("Pipeline completed for league %s in %v\n", input.LeagueID, time.Since(start))
	return result, nil
}

// PriceAndAnalyze runs the sequential two-pass refinement: a neutral pricing
// pass, scarcity derived from it, then one re-price under that scarcity and
// the final market analysis. Callers re-run this after a tag override changes
// the pool.
func (e *Engine) PriceAndAnalyze(freeAgents []models.PlayerValuation, situations []models.TeamCapSituation, weights models.RankWeights) ([]models.PlayerValuation, *models.MarketAnalysis) {
	pricer := pricing.NewCalculator(e.rules, weights)
	analyzer := market.NewAnalyzer(e.rules, weights)

	firstPass := pricer.PriceAll(freeAgents, pricing.NeutralScarcity())
	interim := analyzer.Analyze(firstPass, situations)
	secondPass := pricer.PriceAll(freeAgents, interim.PriceImpactMultipliers())
	final := analyzer.Analyze(secondPass, situations)
	return secondPass, final
}

// applyTagSalaries recomputes each tagged team's cap situation with the tag
// commitment included.
func (e *Engine) applyTagSalaries(rosters []models.TeamRoster, deadMoney map[string]int64, predictions []models.FranchiseTagPrediction) []models.TeamCapSituation {
	tagByFranchise := make(map[string]int64, len(predictions))
	for i := range predictions {
		if predictions[i].HasTag {
			tagByFranchise[predictions[i].FranchiseID] = predictions[i].TagSalary
		}
	}

	situations := make([]models.TeamCapSituation, 0, len(rosters))
	for _, roster := range rosters {
		situations = append(situations, e.capCalc.Calculate(roster, deadMoney[roster.FranchiseID], tagByFranchise[roster.FranchiseID]))
	}
	return situations
}

// expiringPool flattens every team's expiring contracts into one pool.
func expiringPool(situations []models.TeamCapSituation) []models.PlayerValuation {
	var pool []models.PlayerValuation
	for i := range situations {
		pool = append(pool, situations[i].ExpiringContracts...)
	}
	return pool
}

// mergeOverlays copies externally supplied ranks onto expiring contracts.
func mergeOverlays(situations []models.TeamCapSituation, overlays models.RankOverlays) {
	if len(overlays) == 0 {
		return
	}
	for i := range situations {
		contracts := situations[i].ExpiringContracts
		for j := range contracts {
			if overlay, ok := overlays[contracts[j].ID]; ok {
				if overlay.DynastyRank != nil {
					contracts[j].DynastyRank = overlay.DynastyRank
				}
				if overlay.RedraftRank != nil {
					contracts[j].RedraftRank = overlay.RedraftRank
				}
			}
		}
	}
}

// aggregateDeadMoney sums adjustments per franchise.
func aggregateDeadMoney(adjustments []models.DeadMoneyAdjustment) map[string]int64 {
	out := make(map[string]int64, len(adjustments))
	for _, adj := range adjustments {
		out[adj.FranchiseID] += adj.Amount
	}
	return out
}

// normalizeWeights falls back to the 50/50 blend when the supplied weights
// do not sum to 1 (within float tolerance).
func normalizeWeights(w models.RankWeights) models.RankWeights {
	if math.Abs(w.Dynasty+w.Redraft-1.0) > 1e-9 {
		return models.DefaultRankWeights
	}
	return w
}
