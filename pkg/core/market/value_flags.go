package market

import (
	"fmt"
	"math"
	"strings"

	"cap_valuation/pkg/models"
)

const (
	youthBoost        = 1.15
	eliteBoost        = 1.25
	agePenalty        = 0.85
	oversupplyPenalty = 0.90
)

// flagMispricing fills ValueOpportunities (priced well under fair value) and
// OvervaluedRisks (priced well over it), each with a human-readable reason.
func (a *Analyzer) flagMispricing(analysis *models.MarketAnalysis, freeAgents []models.PlayerValuation) {
	for i := range freeAgents {
		fa := &freeAgents[i]
		pm := analysis.Positions[fa.Position]
		fair, drivers := a.fairValue(fa, pm)
		if fair <= 0 {
			continue
		}

		delta := float64(fa.EstimatedPrice-fair) / float64(fair)
		switch {
		case delta <= -mispriceCutoff:
			analysis.ValueOpportunities = append(analysis.ValueOpportunities, models.ValueFlag{
				Player:    *fa,
				FairValue: fair,
				DeltaPct:  -delta,
				Reason:    fmt.Sprintf("priced %.0f%% under fair value (%s)", -delta*100, drivers),
			})
		case delta >= mispriceCutoff:
			analysis.OvervaluedRisks = append(analysis.OvervaluedRisks, models.ValueFlag{
				Player:    *fa,
				FairValue: fair,
				DeltaPct:  delta,
				Reason:    fmt.Sprintf("priced %.0f%% over fair value (%s)", delta*100, drivers),
			})
		}
	}

	sortFlags(analysis.ValueOpportunities)
	sortFlags(analysis.OvervaluedRisks)
}

// fairValue anchors on the position's average free-agent price and adjusts
// for youth, elite rank, age decline, and positional oversupply. The second
// return value names the drivers for the reason string.
func (a *Analyzer) fairValue(fa *models.PlayerValuation, pm *models.PositionalMarket) (int64, string) {
	base := a.rules.MinimumSalary
	if pm != nil && pm.AveragePlayerValue > 0 {
		base = pm.AveragePlayerValue
	}

	fair := float64(base)
	var drivers []string

	if fa.Age > 0 && fa.Age <= 24 {
		fair *= youthBoost
		drivers = append(drivers, fmt.Sprintf("age %d upside", fa.Age))
	}
	if rank, ok := a.weights.Composite(fa); ok && rank < float64(a.rules.EliteRankCeiling) {
		fair *= eliteBoost
		drivers = append(drivers, fmt.Sprintf("elite overall rank %.0f", rank))
	}
	if fa.Age >= 30 {
		fair *= agePenalty
		drivers = append(drivers, fmt.Sprintf("age %d decline risk", fa.Age))
	}
	if pm != nil && pm.ScarcityIndex < 1 {
		fair *= oversupplyPenalty
		drivers = append(drivers, fmt.Sprintf("%s oversupply", fa.Position))
	}

	if len(drivers) == 0 {
		drivers = append(drivers, "position market average")
	}
	return int64(math.Round(fair)), strings.Join(drivers, ", ")
}
