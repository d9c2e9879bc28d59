package pricing

import (
	"fmt"
	"math"

	"cap_valuation/pkg/models"
)

// yearMultipliers redistribute a base price across contract lengths: shorter
// commitments cost more per year. The 3-year deal is the reference point.
var yearMultipliers = [5]float64{1.20, 1.10, 1.00, 0.90, 0.80}

// ContractOption is one possible contract length at a per-year price.
type ContractOption struct {
	Years   int   `json:"years"`
	PerYear int64 `json:"per_year"`
	Total   int64 `json:"total"`
}

// ContractPricing is the 1-5 year menu for a player plus a recommendation.
type ContractPricing struct {
	Options          []ContractOption `json:"options"`
	RecommendedYears int              `json:"recommended_years"`
	Reason           string           `json:"reason"`
}

// GenerateContractPricing produces the 1-5 year contract menu for a player.
// Per-year cost is strictly decreasing with length (redistribution, not
// escalation); ageMultiplier lets the caller age-adjust the base before the
// menu is shaped.
func (c *Calculator) GenerateContractPricing(player *models.PlayerValuation, basePrice int64, ageMultiplier float64) ContractPricing {
	if ageMultiplier <= 0 {
		ageMultiplier = 1.0
	}
	base := float64(basePrice) * ageMultiplier

	pricing := ContractPricing{Options: make([]ContractOption, 0, 5)}
	var prev int64
	for i, mult := range yearMultipliers {
		years := i + 1
		perYear := int64(math.Round(base * mult))
		// Monotonic ordering is a hard invariant: a longer deal is never
		// more expensive per year than a shorter one.
		if i > 0 && perYear >= prev {
			perYear = prev - 1
		}
		pricing.Options = append(pricing.Options, ContractOption{
			Years:   years,
			PerYear: perYear,
			Total:   perYear * int64(years),
		})
		prev = perYear
	}

	pricing.RecommendedYears, pricing.Reason = c.Recommend(player)
	return pricing
}

// Recommend picks a contract length from the player's age and value tier.
// Young high-value players justify the 5-year discount; aging or replaceable
// players get short commitments.
func (c *Calculator) Recommend(player *models.PlayerValuation) (int, string) {
	tier := TierDepth
	if player.CompositeRank != nil {
		tier = c.valueTier(*player.CompositeRank)
	}

	switch {
	case tier == TierDepth:
		return 1, "depth player: one-year deal keeps the roster spot flexible"
	case player.Age >= 30:
		return 1, fmt.Sprintf("age %d: avoid multi-year exposure past the decline curve", player.Age)
	case tier == TierElite && player.Age <= 25:
		return 5, fmt.Sprintf("elite talent at age %d: lock the maximum term at the discounted rate", player.Age)
	case tier == TierElite:
		return 4, "elite talent: long deal, trimmed a year for age"
	case tier == TierStar && player.Age <= 25:
		return 4, fmt.Sprintf("young star at age %d: long commitment at the reduced per-year cost", player.Age)
	case tier == TierStar:
		return 3, "established star: reference-length deal balances cost and risk"
	case player.Age <= 25:
		return 3, "young starter: mid-length deal with upside"
	default:
		return 2, "starter: short commitment at a modest premium"
	}
}
