// Package market computes the league-wide supply/demand picture for the
// free-agent pool: per-position scarcity, a market-efficiency signal, and
// lists of mispriced players. Its scarcity output feeds back into the
// auction price calculator for the second pricing pass.
package market

import (
	"sort"

	"cap_valuation/pkg/core/league"
	"cap_valuation/pkg/models"
)

// inflationSlope converts excess scarcity into projected price inflation.
// A perfectly balanced position (index 1.0) projects no movement.
const inflationSlope = 0.25

const (
	sellersThreshold = 1.1
	buyersThreshold  = 0.9
	mispriceCutoff   = 0.20
)

// Analyzer computes MarketAnalysis records.
type Analyzer struct {
	rules   league.Rules
	weights models.RankWeights
}

// NewAnalyzer creates a market analyzer.
func NewAnalyzer(rules league.Rules, weights models.RankWeights) *Analyzer {
	return &Analyzer{rules: rules, weights: weights}
}

// Analyze builds the full market picture from a priced free-agent pool and
// every team's cap situation.
func (a *Analyzer) Analyze(freeAgents []models.PlayerValuation, situations []models.TeamCapSituation) *models.MarketAnalysis {
	analysis := &models.MarketAnalysis{
		TotalAvailablePlayers: len(freeAgents),
		Positions:             make(map[string]*models.PositionalMarket),
	}

	// Negative cap space never subtracts from the pool of money chasing
	// free agents; only positive discretionary spend counts.
	for i := range situations {
		if situations[i].DiscretionarySpending > 0 {
			analysis.TotalAvailableCap += situations[i].DiscretionarySpending
		}
	}

	a.analyzePositions(analysis, freeAgents, situations)
	a.analyzeEfficiency(analysis, freeAgents)
	a.flagMispricing(analysis, freeAgents)
	return analysis
}

func (a *Analyzer) analyzePositions(analysis *models.MarketAnalysis, freeAgents []models.PlayerValuation, situations []models.TeamCapSituation) {
	for _, pos := range a.rules.Positions() {
		pm := &models.PositionalMarket{Position: pos}

		var priceSum int64
		for i := range freeAgents {
			fa := &freeAgents[i]
			if fa.Position != pos {
				continue
			}
			pm.AvailablePlayers++
			priceSum += fa.EstimatedPrice
			if fa.EstimatedPrice > pm.TopPlayerValue {
				pm.TopPlayerValue = fa.EstimatedPrice
			}
			if rank, ok := a.weights.Composite(fa); ok && rank < a.rules.QualityRankThreshold {
				pm.QualityPlayers++
			}
		}
		if pm.AvailablePlayers > 0 {
			pm.AveragePlayerValue = priceSum / int64(pm.AvailablePlayers)
		}

		for i := range situations {
			if gap := situations[i].NeedAt(pos); gap > 0 {
				pm.TeamsWithNeed++
				pm.TotalDemand += gap
			}
		}

		// Denominator floored at 1 so a position with demand but no quality
		// supply reads as extreme scarcity, not a divide-by-zero.
		quality := pm.QualityPlayers
		if quality < 1 {
			quality = 1
		}
		pm.ScarcityIndex = float64(pm.TotalDemand) / float64(quality)
		pm.ProjectedPriceInflation = clamp((pm.ScarcityIndex-1.0)*inflationSlope, -0.50, 0.50)

		analysis.Positions[pos] = pm
	}
}

func (a *Analyzer) analyzeEfficiency(analysis *models.MarketAnalysis, freeAgents []models.PlayerValuation) {
	var totalPrices int64
	for i := range freeAgents {
		totalPrices += freeAgents[i].EstimatedPrice
	}

	if analysis.TotalAvailableCap <= 0 {
		analysis.MarketEfficiency = 1.0
	} else {
		analysis.MarketEfficiency = float64(totalPrices) / float64(analysis.TotalAvailableCap)
	}

	switch {
	case analysis.MarketEfficiency > sellersThreshold:
		analysis.Condition = models.SellersMarket
		analysis.ExpectedPriceChange = 0.10
	case analysis.MarketEfficiency < buyersThreshold:
		analysis.Condition = models.BuyersMarket
		analysis.ExpectedPriceChange = -0.10
	default:
		analysis.Condition = models.BalancedMarket
		analysis.ExpectedPriceChange = 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sortFlags(flags []models.ValueFlag) {
	sort.SliceStable(flags, func(i, j int) bool {
		return flags[i].DeltaPct > flags[j].DeltaPct
	})
}
