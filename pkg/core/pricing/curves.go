package pricing

import (
	"math"

	"cap_valuation/pkg/core/league"
	"cap_valuation/pkg/models"
)

// ValueTier buckets a player's overall rank for floor purposes.
type ValueTier string

const (
	TierElite   ValueTier = "elite"
	TierStar    ValueTier = "star"
	TierStarter ValueTier = "starter"
	TierDepth   ValueTier = "depth"
)

// tierFloorFraction is the floor each tier enforces as a fraction of the
// position's max-curve base price. Depth players get no floor.
func tierFloorFraction(tier ValueTier) float64 {
	switch tier {
	case TierElite:
		return 0.85
	case TierStar:
		return 0.60
	case TierStarter:
		return 0.30
	default:
		return 0
	}
}

func (c *Calculator) valueTier(rank float64) ValueTier {
	switch {
	case rank <= float64(c.rules.EliteRankCeiling):
		return TierElite
	case rank <= float64(c.rules.StarRankCeiling):
		return TierStar
	case rank <= float64(c.rules.StarterRankCeiling):
		return TierStarter
	default:
		return TierDepth
	}
}

// SelectCurveTier picks the min/avg/max curve for a position by examining the
// single best-ranked free agent there: an elite class leader selects the max
// curve, a class whose best player is outside the star range selects the min
// curve, anything in between the avg curve. A class with no ranked players
// prices off the min curve.
func (c *Calculator) SelectCurveTier(pool []models.PlayerValuation, position string) league.CurveTier {
	best := math.Inf(1)
	for i := range pool {
		if pool[i].Position != position {
			continue
		}
		if rank, ok := c.weights.Composite(&pool[i]); ok && rank < best {
			best = rank
		}
	}
	switch {
	case math.IsInf(best, 1):
		return league.CurveMin
	case best <= float64(c.rules.EliteRankCeiling):
		return league.CurveMax
	case best > float64(c.rules.StarRankCeiling):
		return league.CurveMin
	default:
		return league.CurveAvg
	}
}

// curvePrice evaluates one decay curve at a positional rank (1-based),
// clamped at the league minimum.
func (c *Calculator) curvePrice(curve league.PriceCurve, positionalRank int) int64 {
	if positionalRank < 1 {
		positionalRank = 1
	}
	price := float64(curve.BasePrice) * math.Pow(1.0+curve.DecayRate, float64(positionalRank-1))
	rounded := int64(math.Round(price))
	if rounded < c.rules.MinimumSalary {
		return c.rules.MinimumSalary
	}
	return rounded
}
