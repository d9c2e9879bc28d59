// Package franchise predicts which expiring player, if any, each team retains
// via its one-time franchise tag, and exposes a pure reducer for manual
// overrides of those predictions.
package franchise

import (
	"sort"

	"cap_valuation/pkg/core/league"
	"cap_valuation/pkg/models"
)

const maxCandidates = 5

// Predictor scores expiring contracts and produces per-team tag predictions.
type Predictor struct {
	rules   league.Rules
	weights models.RankWeights
}

// NewPredictor creates a tag predictor.
func NewPredictor(rules league.Rules, weights models.RankWeights) *Predictor {
	return &Predictor{rules: rules, weights: weights}
}

// TagSalary returns the franchise-tag cost at a position: the top-3 average
// salary from league data, or the league minimum when the position is not
// tracked.
func (p *Predictor) TagSalary(position string, averages models.SalaryAverages) int64 {
	if avg, ok := averages[position]; ok && avg.Top3Average > 0 {
		return avg.Top3Average
	}
	return p.rules.MinimumSalary
}

// PredictAll produces one prediction per team. A team with no expiring
// contracts yields HasTag=false and an empty candidate list.
func (p *Predictor) PredictAll(situations []models.TeamCapSituation, averages models.SalaryAverages) []models.FranchiseTagPrediction {
	scarcity := positionScarcity(situations)

	predictions := make([]models.FranchiseTagPrediction, 0, len(situations))
	for i := range situations {
		predictions = append(predictions, p.predict(&situations[i], averages, scarcity))
	}
	return predictions
}

func (p *Predictor) predict(team *models.TeamCapSituation, averages models.SalaryAverages, scarcity map[string]float64) models.FranchiseTagPrediction {
	prediction := models.FranchiseTagPrediction{FranchiseID: team.FranchiseID}

	candidates := make([]models.TagCandidate, 0, len(team.ExpiringContracts))
	for _, player := range team.ExpiringContracts {
		score := p.Score(&player, team, averages, scarcity[player.Position])
		candidates = append(candidates, models.TagCandidate{Player: player, Score: score})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	prediction.Candidates = candidates

	if len(candidates) > 0 && candidates[0].Score >= p.rules.TagScoreThreshold {
		top := candidates[0].Player
		prediction.HasTag = true
		prediction.TaggedPlayer = &top
		prediction.TagSalary = p.TagSalary(top.Position, averages)
	}
	return prediction
}

// Score rates one expiring candidate on the 0-100 tag scale from five
// weighted factors: value, salary-vs-tag, positional scarcity, age, and the
// team's cap flexibility.
func (p *Predictor) Score(player *models.PlayerValuation, team *models.TeamCapSituation, averages models.SalaryAverages, scarcity01 float64) float64 {
	score := p.valuePoints(player)
	score += p.salaryVsTagPoints(player, averages)
	score += scarcity01 * 15
	score += agePoints(player.Age)
	score += capFlexibilityPoints(team)

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// valuePoints awards up to 40 points for ranking strength.
func (p *Predictor) valuePoints(player *models.PlayerValuation) float64 {
	rank, ok := p.weights.Composite(player)
	if !ok {
		return 0
	}
	switch {
	case rank <= 20:
		return 40
	case rank <= 50:
		return 30
	default:
		// Scale the remaining headroom below the 30-point band down to zero
		// by rank 200.
		headroom := 1.0 - (rank-50)/150.0
		if headroom < 0 {
			return 0
		}
		return 20 * headroom
	}
}

// salaryVsTagPoints rewards bargains relative to the tag cost and penalizes
// contracts already above it.
func (p *Predictor) salaryVsTagPoints(player *models.PlayerValuation, averages models.SalaryAverages) float64 {
	tag := p.TagSalary(player.Position, averages)
	if tag <= 0 {
		return 0
	}
	ratio := float64(player.Salary) / float64(tag)
	switch {
	case ratio < 0.70:
		return 20
	case ratio > 1.20:
		return -10
	default:
		return 0
	}
}

func agePoints(age int) float64 {
	switch {
	case age <= 26:
		return 10
	case age >= 30:
		return -5
	default:
		return 0
	}
}

// capFlexibilityPoints scales with how much of a team's projected space is
// actually spendable.
func capFlexibilityPoints(team *models.TeamCapSituation) float64 {
	if team.ProjectedCapSpace <= 0 {
		return 0
	}
	ratio := float64(team.DiscretionarySpending) / float64(team.ProjectedCapSpace)
	switch {
	case ratio > 0.50:
		return 15
	case ratio < 0.20:
		return -10
	default:
		// Linear between -10 at 20% and +15 at 50%.
		return -10 + (ratio-0.20)/0.30*25
	}
}

// positionScarcity derives a 0-1 scarcity score per position from how many
// teams carry an unmet need there.
func positionScarcity(situations []models.TeamCapSituation) map[string]float64 {
	if len(situations) == 0 {
		return map[string]float64{}
	}
	needing := make(map[string]int)
	for i := range situations {
		for _, need := range situations[i].PositionalNeeds {
			needing[need.Position]++
		}
	}
	out := make(map[string]float64, len(needing))
	for pos, count := range needing {
		out[pos] = float64(count) / float64(len(situations))
	}
	return out
}
