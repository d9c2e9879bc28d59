package market

import (
	"math"
	"testing"

	"cap_valuation/pkg/core/league"
	"cap_valuation/pkg/models"
)

func intPtr(i int) *int { return &i }

func testAnalyzer() *Analyzer {
	return NewAnalyzer(league.DefaultRules(), models.DefaultRankWeights)
}

func TestScarcityScenario(t *testing.T) {
	a := testAnalyzer()

	// Five teams each one QB short; exactly one quality QB available.
	// scarcityIndex = 5 / 1 = 5.0; inflation (5-1)*0.25 = 1.0 clamps to
	// the +50% ceiling.
	situations := make([]models.TeamCapSituation, 5)
	for i := range situations {
		situations[i] = models.TeamCapSituation{
			FranchiseID:           string(rune('a' + i)),
			DiscretionarySpending: 5_000_000,
			PositionalNeeds:       []models.PositionalNeed{{Position: "QB", Priority: models.PriorityLow, DepthGap: 1}},
		}
	}
	freeAgents := []models.PlayerValuation{
		{ID: "qb1", Position: "QB", Age: 26, EstimatedPrice: 6_000_000, DynastyRank: intPtr(12), RedraftRank: intPtr(12)},
	}

	analysis := a.Analyze(freeAgents, situations)
	qb := analysis.Positions["QB"]

	if qb.ScarcityIndex != 5.0 {
		t.Errorf("scarcity index = %f, want 5.0", qb.ScarcityIndex)
	}
	if qb.ProjectedPriceInflation != 0.50 {
		t.Errorf("inflation = %f, want clamp at 0.50", qb.ProjectedPriceInflation)
	}
	if got := qb.PriceImpactMultiplier(); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("price impact multiplier = %f, want 1.5", got)
	}
	if qb.TeamsWithNeed != 5 || qb.TotalDemand != 5 {
		t.Errorf("demand = %d teams / %d gap, want 5/5", qb.TeamsWithNeed, qb.TotalDemand)
	}
	if qb.QualityPlayers != 1 || qb.AvailablePlayers != 1 {
		t.Errorf("supply = %d quality / %d available, want 1/1", qb.QualityPlayers, qb.AvailablePlayers)
	}
}

func TestScarcityDenominatorFloor(t *testing.T) {
	a := testAnalyzer()

	// Demand with zero quality supply: denominator floors at 1 instead of
	// dividing by zero.
	situations := []models.TeamCapSituation{
		{DiscretionarySpending: 1_000_000, PositionalNeeds: []models.PositionalNeed{{Position: "TE", DepthGap: 2}}},
	}
	analysis := a.Analyze(nil, situations)

	if got := analysis.Positions["TE"].ScarcityIndex; got != 2.0 {
		t.Errorf("scarcity with no quality supply = %f, want 2.0", got)
	}
}

func TestDeflationClamp(t *testing.T) {
	a := testAnalyzer()

	// No demand, plentiful quality supply: scarcity 0, inflation
	// (0-1)*0.25 = -0.25, within the -50% bound.
	var freeAgents []models.PlayerValuation
	for i := 0; i < 6; i++ {
		freeAgents = append(freeAgents, models.PlayerValuation{
			ID: string(rune('a' + i)), Position: "WR", EstimatedPrice: 1_000_000,
			DynastyRank: intPtr(20 + i), RedraftRank: intPtr(20 + i),
		})
	}
	analysis := a.Analyze(freeAgents, []models.TeamCapSituation{{DiscretionarySpending: 1}})

	wr := analysis.Positions["WR"]
	if wr.ProjectedPriceInflation != -0.25 {
		t.Errorf("inflation = %f, want -0.25", wr.ProjectedPriceInflation)
	}
	if wr.ProjectedPriceInflation < -0.50 || wr.ProjectedPriceInflation > 0.50 {
		t.Errorf("inflation %f outside [-0.5, 0.5]", wr.ProjectedPriceInflation)
	}
}

func TestMarketEfficiencyDefault(t *testing.T) {
	a := testAnalyzer()

	// No spendable cap anywhere: efficiency defaults to 1.0, balanced.
	freeAgents := []models.PlayerValuation{{ID: "p1", Position: "RB", EstimatedPrice: 2_000_000}}
	analysis := a.Analyze(freeAgents, nil)

	if analysis.MarketEfficiency != 1.0 {
		t.Errorf("efficiency with zero cap = %f, want 1.0", analysis.MarketEfficiency)
	}
	if analysis.Condition != models.BalancedMarket {
		t.Errorf("condition = %s, want balanced", analysis.Condition)
	}
}

func TestMarketConditions(t *testing.T) {
	a := testAnalyzer()
	freeAgents := []models.PlayerValuation{{ID: "p1", Position: "RB", EstimatedPrice: 12_000_000}}

	// 12M of prices chasing 10M of cap: 1.2 > 1.1 -> seller's market.
	sellers := a.Analyze(freeAgents, []models.TeamCapSituation{{DiscretionarySpending: 10_000_000}})
	if sellers.Condition != models.SellersMarket || sellers.ExpectedPriceChange != 0.10 {
		t.Errorf("got %s / %f, want sellers_market / +0.10", sellers.Condition, sellers.ExpectedPriceChange)
	}

	// 12M of prices against 20M of cap: 0.6 < 0.9 -> buyer's market.
	buyers := a.Analyze(freeAgents, []models.TeamCapSituation{{DiscretionarySpending: 20_000_000}})
	if buyers.Condition != models.BuyersMarket || buyers.ExpectedPriceChange != -0.10 {
		t.Errorf("got %s / %f, want buyers_market / -0.10", buyers.Condition, buyers.ExpectedPriceChange)
	}
}

func TestTotalAvailableCapIgnoresNonPositive(t *testing.T) {
	a := testAnalyzer()

	situations := []models.TeamCapSituation{
		{DiscretionarySpending: 8_000_000},
		{DiscretionarySpending: 0},
		{DiscretionarySpending: 3_000_000},
	}
	analysis := a.Analyze(nil, situations)
	if analysis.TotalAvailableCap != 11_000_000 {
		t.Errorf("total available cap = %d, want 11000000", analysis.TotalAvailableCap)
	}
}

func TestValueFlags(t *testing.T) {
	a := testAnalyzer()

	// Three WRs establishing an average price of 4M. The young elite one
	// priced at 2M sits far under its boosted fair value; the 30-year-old
	// priced at 8M sits far over.
	freeAgents := []models.PlayerValuation{
		{ID: "steal", Name: "Steal", Position: "WR", Age: 23, EstimatedPrice: 2_000_000,
			DynastyRank: intPtr(10), RedraftRank: intPtr(10)},
		{ID: "trap", Name: "Trap", Position: "WR", Age: 31, EstimatedPrice: 8_000_000,
			DynastyRank: intPtr(90), RedraftRank: intPtr(90)},
		{ID: "even", Name: "Even", Position: "WR", Age: 27, EstimatedPrice: 2_000_000,
			DynastyRank: intPtr(70), RedraftRank: intPtr(70)},
	}
	situations := []models.TeamCapSituation{{DiscretionarySpending: 50_000_000}}

	analysis := a.Analyze(freeAgents, situations)

	foundSteal := false
	for _, flag := range analysis.ValueOpportunities {
		if flag.Player.ID == "steal" {
			foundSteal = true
			if flag.Reason == "" {
				t.Error("value flag needs a reason")
			}
		}
		if flag.Player.ID == "trap" {
			t.Error("overpriced player flagged as a value opportunity")
		}
	}
	if !foundSteal {
		t.Error("underpriced young elite WR not flagged as value")
	}

	foundTrap := false
	for _, flag := range analysis.OvervaluedRisks {
		if flag.Player.ID == "trap" {
			foundTrap = true
		}
	}
	if !foundTrap {
		t.Error("overpriced aging WR not flagged as a risk")
	}
}
