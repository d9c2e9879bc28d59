package pricing

import (
	"testing"

	"cap_valuation/pkg/models"
)

func TestContractMonotonicity(t *testing.T) {
	calc := testCalculator()
	player := &models.PlayerValuation{ID: "p1", Position: "RB", Age: 25, CompositeRank: floatPtr(40)}

	for _, base := range []int64{425_000, 1_000_000, 5_000_000, 12_000_000} {
		pricing := calc.GenerateContractPricing(player, base, 1.0)
		if len(pricing.Options) != 5 {
			t.Fatalf("expected 5 options, got %d", len(pricing.Options))
		}
		for i := 1; i < 5; i++ {
			if pricing.Options[i].PerYear >= pricing.Options[i-1].PerYear {
				t.Errorf("base %d: %d-year per-year %d not below %d-year %d",
					base, i+1, pricing.Options[i].PerYear, i, pricing.Options[i-1].PerYear)
			}
		}
	}
}

func TestContractRedistribution(t *testing.T) {
	calc := testCalculator()
	player := &models.PlayerValuation{ID: "p1", Position: "WR", Age: 26, CompositeRank: floatPtr(80)}

	pricing := calc.GenerateContractPricing(player, 8_000_000, 1.0)

	// 1yr = 1.2x, 3yr = reference, 5yr = 0.8x.
	if got := pricing.Options[0].PerYear; got != 9_600_000 {
		t.Errorf("1-year per-year = %d, want 9600000", got)
	}
	if got := pricing.Options[2].PerYear; got != 8_000_000 {
		t.Errorf("3-year per-year = %d, want 8000000", got)
	}
	if got := pricing.Options[4].PerYear; got != 6_400_000 {
		t.Errorf("5-year per-year = %d, want 6400000", got)
	}

	// Totals are per-year * years, flat across the deal (redistribution,
	// not escalation).
	if got := pricing.Options[4].Total; got != 32_000_000 {
		t.Errorf("5-year total = %d, want 32000000", got)
	}
}

func TestContractAgeMultiplier(t *testing.T) {
	calc := testCalculator()
	player := &models.PlayerValuation{ID: "p1", Position: "WR", Age: 31, CompositeRank: floatPtr(80)}

	discounted := calc.GenerateContractPricing(player, 8_000_000, 0.9)
	if got := discounted.Options[2].PerYear; got != 7_200_000 {
		t.Errorf("age-adjusted 3-year per-year = %d, want 7200000", got)
	}

	// Non-positive multiplier falls back to 1.0.
	neutral := calc.GenerateContractPricing(player, 8_000_000, 0)
	if got := neutral.Options[2].PerYear; got != 8_000_000 {
		t.Errorf("zero multiplier should price neutral, got %d", got)
	}
}

func TestRecommendations(t *testing.T) {
	calc := testCalculator()

	cases := []struct {
		name      string
		player    models.PlayerValuation
		wantYears int
	}{
		{"young elite", models.PlayerValuation{Age: 23, CompositeRank: floatPtr(10)}, 5},
		{"older elite", models.PlayerValuation{Age: 28, CompositeRank: floatPtr(20)}, 4},
		{"young star", models.PlayerValuation{Age: 24, CompositeRank: floatPtr(60)}, 4},
		{"established star", models.PlayerValuation{Age: 27, CompositeRank: floatPtr(90)}, 3},
		{"aging starter", models.PlayerValuation{Age: 31, CompositeRank: floatPtr(150)}, 1},
		{"depth", models.PlayerValuation{Age: 25, CompositeRank: floatPtr(250)}, 1},
		{"unranked", models.PlayerValuation{Age: 25}, 1},
	}

	for _, c := range cases {
		years, reason := calc.Recommend(&c.player)
		if years != c.wantYears {
			t.Errorf("%s: recommended %d years, want %d", c.name, years, c.wantYears)
		}
		if reason == "" {
			t.Errorf("%s: recommendation needs a reason string", c.name)
		}
	}
}

func floatPtr(f float64) *float64 { return &f }
