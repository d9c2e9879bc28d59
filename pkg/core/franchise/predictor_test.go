package franchise

import (
	"math"
	"testing"

	"cap_valuation/pkg/core/league"
	"cap_valuation/pkg/models"
)

func intPtr(i int) *int { return &i }

func testPredictor() *Predictor {
	return NewPredictor(league.DefaultRules(), models.DefaultRankWeights)
}

func TestTagSalary(t *testing.T) {
	p := testPredictor()
	averages := models.SalaryAverages{"RB": {Top3Average: 10_500_000}}

	if got := p.TagSalary("RB", averages); got != 10_500_000 {
		t.Errorf("RB tag salary = %d, want 10500000", got)
	}
	// Untracked position falls back to the league minimum.
	if got := p.TagSalary("LS", averages); got != 425_000 {
		t.Errorf("untracked position tag salary = %d, want 425000", got)
	}
}

func TestScoreMaxCase(t *testing.T) {
	p := testPredictor()
	averages := models.SalaryAverages{"RB": {Top3Average: 10_500_000}}

	// Every factor at its ceiling:
	// value: rank 10 (dyn+red both 10) -> 40
	// salary: 5,000,000 / 10,500,000 = 0.476 < 0.70 -> +20
	// scarcity: 1.0 * 15 -> 15
	// age 24 -> +10
	// cap flexibility: 6M / 10M = 0.6 > 0.5 -> +15
	// Raw 100, clamped to 100.
	player := models.PlayerValuation{
		ID: "p1", Position: "RB", Salary: 5_000_000, Age: 24,
		DynastyRank: intPtr(10), RedraftRank: intPtr(10),
	}
	team := models.TeamCapSituation{ProjectedCapSpace: 10_000_000, DiscretionarySpending: 6_000_000}

	score := p.Score(&player, &team, averages, 1.0)
	if score != 100 {
		t.Errorf("max-case score = %f, want 100", score)
	}
}

func TestScoreValueHeadroom(t *testing.T) {
	p := testPredictor()

	// Rank 60: value = 20 * (1 - (60-50)/150) = 20 * 0.9333 = 18.667.
	// With no other factor contributing (neutral salary ratio, age 28,
	// no scarcity, 35% flexibility -> -10 + (0.35-0.20)/0.30*25 = +2.5):
	// total = 18.667 + 0 + 0 + 0 + 2.5 = 21.167.
	player := models.PlayerValuation{
		ID: "p1", Position: "RB", Salary: 9_000_000, Age: 28,
		DynastyRank: intPtr(60), RedraftRank: intPtr(60),
	}
	averages := models.SalaryAverages{"RB": {Top3Average: 10_500_000}}
	team := models.TeamCapSituation{ProjectedCapSpace: 10_000_000, DiscretionarySpending: 3_500_000}

	score := p.Score(&player, &team, averages, 0)
	if math.Abs(score-21.1667) > 0.001 {
		t.Errorf("score = %f, want 21.1667", score)
	}
}

func TestScoreBounds(t *testing.T) {
	p := testPredictor()
	averages := models.SalaryAverages{"RB": {Top3Average: 1_000_000}}

	// Worst case: unranked, overpaid (salary > 120% of tag), age 33,
	// cap-strapped team. Raw score is negative; must clamp to 0.
	player := models.PlayerValuation{ID: "p1", Position: "RB", Salary: 5_000_000, Age: 33}
	team := models.TeamCapSituation{ProjectedCapSpace: 10_000_000, DiscretionarySpending: 500_000}

	score := p.Score(&player, &team, averages, 0)
	if score < 0 || score > 100 {
		t.Fatalf("score %f out of [0,100]", score)
	}
	if score != 0 {
		t.Errorf("all-negative factors should clamp to 0, got %f", score)
	}
}

func TestPredictAllThreshold(t *testing.T) {
	p := testPredictor()
	averages := models.SalaryAverages{"RB": {Top3Average: 10_500_000}}

	strong := models.PlayerValuation{
		ID: "star", Position: "RB", Salary: 4_000_000, Age: 24,
		DynastyRank: intPtr(5), RedraftRank: intPtr(5), OwnerID: "0001",
	}
	weak := models.PlayerValuation{ID: "scrub", Position: "RB", Salary: 9_999_999, Age: 31, OwnerID: "0002"}

	situations := []models.TeamCapSituation{
		{
			FranchiseID: "0001", ProjectedCapSpace: 20_000_000, DiscretionarySpending: 15_000_000,
			ExpiringContracts: []models.PlayerValuation{strong},
		},
		{
			FranchiseID: "0002", ProjectedCapSpace: 20_000_000, DiscretionarySpending: 15_000_000,
			ExpiringContracts: []models.PlayerValuation{weak},
		},
	}

	predictions := p.PredictAll(situations, averages)
	if len(predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(predictions))
	}

	if !predictions[0].HasTag {
		t.Fatal("team 0001 should tag its elite expiring RB")
	}
	if predictions[0].TaggedPlayer.ID != "star" {
		t.Errorf("tagged player = %s, want star", predictions[0].TaggedPlayer.ID)
	}
	if predictions[0].TagSalary != 10_500_000 {
		t.Errorf("tag salary = %d, want 10500000", predictions[0].TagSalary)
	}

	if predictions[1].HasTag {
		t.Errorf("team 0002's weak candidate (score %f) should not be tagged", predictions[1].Candidates[0].Score)
	}
}

func TestPredictNoExpiringContracts(t *testing.T) {
	p := testPredictor()
	predictions := p.PredictAll([]models.TeamCapSituation{{FranchiseID: "0001"}}, nil)

	if predictions[0].HasTag {
		t.Error("no expiring contracts should mean no tag")
	}
	if len(predictions[0].Candidates) != 0 {
		t.Errorf("expected empty candidate list, got %d", len(predictions[0].Candidates))
	}
}

func TestCandidatesSortedAndCapped(t *testing.T) {
	p := testPredictor()
	averages := models.SalaryAverages{"WR": {Top3Average: 8_000_000}}

	team := models.TeamCapSituation{
		FranchiseID: "0001", ProjectedCapSpace: 20_000_000, DiscretionarySpending: 15_000_000,
	}
	// Seven expiring players with spread-out ranks.
	for i := 0; i < 7; i++ {
		rank := 10 + i*30
		team.ExpiringContracts = append(team.ExpiringContracts, models.PlayerValuation{
			ID: string(rune('a' + i)), Position: "WR", Salary: 1_000_000, Age: 25,
			DynastyRank: intPtr(rank), RedraftRank: intPtr(rank),
		})
	}

	predictions := p.PredictAll([]models.TeamCapSituation{team}, averages)
	candidates := predictions[0].Candidates

	if len(candidates) != 5 {
		t.Fatalf("candidate list should cap at 5, got %d", len(candidates))
	}
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Score > candidates[i-1].Score {
			t.Errorf("candidates not sorted descending at %d: %f > %f", i, candidates[i].Score, candidates[i-1].Score)
		}
	}
}
