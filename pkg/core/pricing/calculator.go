// Package pricing estimates what each free agent will sell for at auction:
// historical rank-to-price curves per position, overall-rank tier floors, a
// top-of-board premium, and a scarcity multiplier supplied by the market
// analyzer.
package pricing

import (
	"math"
	"sort"

	"cap_valuation/pkg/core/league"
	"cap_valuation/pkg/models"
)

// Confidence levels reported with price estimates. An estimate with no rank
// input at all is the engine-default floor path.
const (
	confidenceNoRank     = 0.80
	confidenceSingleRank = 0.85
	confidenceBothRanks  = 0.95
)

// Calculator prices the free-agent pool.
type Calculator struct {
	rules   league.Rules
	weights models.RankWeights
}

// NewCalculator creates an auction price calculator.
func NewCalculator(rules league.Rules, weights models.RankWeights) *Calculator {
	return &Calculator{rules: rules, weights: weights}
}

// NeutralScarcity is the multiplier set used on the first pricing pass,
// before any market analysis exists. Every position prices at 1.0.
func NeutralScarcity() map[string]float64 { return nil }

// PriceAll prices every player in the pool and returns a new slice with
// CompositeRank, EstimatedPrice, Confidence and RecommendedYears populated.
// multipliers is the per-position scarcity impact (nil = neutral pass).
func (c *Calculator) PriceAll(pool []models.PlayerValuation, multipliers map[string]float64) []models.PlayerValuation {
	priced := make([]models.PlayerValuation, len(pool))
	copy(priced, pool)

	// Resolve composite ranks once up front.
	for i := range priced {
		if rank, ok := c.weights.Composite(&priced[i]); ok {
			r := rank
			priced[i].CompositeRank = &r
		} else {
			priced[i].CompositeRank = nil
		}
	}

	posRanks := positionalRanks(priced)

	for i := range priced {
		player := &priced[i]
		tier := c.SelectCurveTier(priced, player.Position)
		price, confidence := c.price(player, tier, posRanks[player.ID], multipliers)
		player.EstimatedPrice = price
		player.Confidence = confidence

		years, _ := c.Recommend(player)
		player.RecommendedYears = years
	}
	return priced
}

// price produces the estimate for a single player.
func (c *Calculator) price(player *models.PlayerValuation, tier league.CurveTier, positionalRank int, multipliers map[string]float64) (int64, float64) {
	if player.CompositeRank == nil {
		// No ranking input: league-minimum floor path.
		return c.rules.MinimumSalary, confidenceNoRank
	}
	rank := *player.CompositeRank

	curves := c.rules.CurvesFor(player.Position)
	price := float64(c.curvePrice(curves.Curve(tier), positionalRank))

	// Overall-rank tier floor, as a fraction of the position's max curve.
	if frac := tierFloorFraction(c.valueTier(rank)); frac > 0 {
		floor := frac * float64(curves.Max.BasePrice)
		if floor > price {
			price = floor
		}
	}

	// Top-of-board premium: +5% at overall rank 1, fading linearly to
	// nothing at rank 5.
	if rank <= 5 {
		premium := 0.05 * (5 - rank) / 4
		if premium > 0 {
			price *= 1 + premium
		}
	}

	// Scarcity impact from the market analyzer.
	if mult, ok := multipliers[player.Position]; ok && mult > 0 {
		price *= mult
	}

	final := int64(math.Round(price))
	if final < c.rules.MinimumSalary {
		final = c.rules.MinimumSalary
	}

	confidence := confidenceSingleRank
	if player.DynastyRank != nil && player.RedraftRank != nil {
		confidence = confidenceBothRanks
	}
	return final, confidence
}

// positionalRanks orders players within each position by composite rank and
// returns each player's 1-based rank in that ordering. Unranked players sort
// behind every ranked one.
func positionalRanks(pool []models.PlayerValuation) map[string]int {
	byPos := make(map[string][]int)
	for i := range pool {
		byPos[pool[i].Position] = append(byPos[pool[i].Position], i)
	}

	ranks := make(map[string]int, len(pool))
	for _, idxs := range byPos {
		sort.SliceStable(idxs, func(a, b int) bool {
			ra, rb := pool[idxs[a]].CompositeRank, pool[idxs[b]].CompositeRank
			switch {
			case ra != nil && rb != nil:
				return *ra < *rb
			case ra != nil:
				return true
			default:
				return false
			}
		})
		for pos, idx := range idxs {
			ranks[pool[idx].ID] = pos + 1
		}
	}
	return ranks
}
