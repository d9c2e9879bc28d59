package models

// MarketCondition labels the league-wide supply/demand balance.
type MarketCondition string

const (
	SellersMarket  MarketCondition = "sellers_market"
	BuyersMarket   MarketCondition = "buyers_market"
	BalancedMarket MarketCondition = "balanced"
)

// PositionalMarket is the supply/demand picture at one position.
type PositionalMarket struct {
	Position           string `json:"position"`
	AvailablePlayers   int    `json:"available_players"`
	QualityPlayers     int    `json:"quality_players"` // Composite rank under the quality threshold
	TeamsWithNeed      int    `json:"teams_with_need"`
	TotalDemand        int    `json:"total_demand"` // Sum of depth gaps across teams
	TopPlayerValue     int64  `json:"top_player_value"`
	AveragePlayerValue int64  `json:"average_player_value"`

	// ScarcityIndex = demand / max(quality supply, 1)
	ScarcityIndex float64 `json:"scarcity_index"`
	// ProjectedPriceInflation is a fraction in [-0.50, +0.50].
	ProjectedPriceInflation float64 `json:"projected_price_inflation"`
}

// PriceImpactMultiplier converts the inflation fraction into a direct
// price multiplier (1.0 = neutral).
func (pm *PositionalMarket) PriceImpactMultiplier() float64 {
	return 1.0 + pm.ProjectedPriceInflation
}

// ValueFlag marks a player whose estimated price diverges from fair value.
type ValueFlag struct {
	Player    PlayerValuation `json:"player"`
	FairValue int64           `json:"fair_value"`
	DeltaPct  float64         `json:"delta_pct"` // Divergence magnitude vs fair value, always positive
	Reason    string          `json:"reason"`
}

// MarketAnalysis is the league-wide free-agency market picture.
type MarketAnalysis struct {
	TotalAvailableCap     int64                        `json:"total_available_cap"`
	TotalAvailablePlayers int                          `json:"total_available_players"`
	Positions             map[string]*PositionalMarket `json:"positions"`

	// MarketEfficiency = sum of estimated prices / total available cap.
	// Defaults to 1.0 when no cap is available.
	MarketEfficiency    float64         `json:"market_efficiency"`
	Condition           MarketCondition `json:"condition"`
	ExpectedPriceChange float64         `json:"expected_price_change"` // Fraction, e.g. +0.10

	ValueOpportunities []ValueFlag `json:"value_opportunities"`
	OvervaluedRisks    []ValueFlag `json:"overvalued_risks"`
}

// PriceImpactMultipliers flattens the per-position inflation into the map
// consumed by the auction price calculator. Positions absent from the map
// are priced at the neutral 1.0 multiplier.
func (m *MarketAnalysis) PriceImpactMultipliers() map[string]float64 {
	out := make(map[string]float64, len(m.Positions))
	for pos, pm := range m.Positions {
		out[pos] = pm.PriceImpactMultiplier()
	}
	return out
}
