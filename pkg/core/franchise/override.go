package franchise

import "cap_valuation/pkg/models"

// ApplyOverride is a pure reducer: it returns a new prediction set with the
// given franchise's tag replaced (playerID != "") or cleared (playerID == "").
// An unknown franchise or player id leaves the predictions unchanged, since
// UI state may be transiently stale. Applying the same override twice yields
// the same result as applying it once.
func (p *Predictor) ApplyOverride(predictions []models.FranchiseTagPrediction, franchiseID, playerID string, allPlayers []models.PlayerValuation, averages models.SalaryAverages) []models.FranchiseTagPrediction {
	out := make([]models.FranchiseTagPrediction, len(predictions))
	copy(out, predictions)

	for i := range out {
		if out[i].FranchiseID != franchiseID {
			continue
		}

		if playerID == "" {
			out[i].HasTag = false
			out[i].TaggedPlayer = nil
			out[i].TagSalary = 0
			out[i].IsManualOverride = true
			return out
		}

		player := findPlayer(allPlayers, playerID)
		if player == nil {
			// Stale override target: ignore rather than fail.
			return out
		}

		tagged := *player
		out[i].HasTag = true
		out[i].TaggedPlayer = &tagged
		out[i].TagSalary = p.TagSalary(tagged.Position, averages)
		out[i].IsManualOverride = true
		return out
	}
	return out
}

// AvailableFreeAgents filters every currently tagged player out of the pool.
func AvailableFreeAgents(players []models.PlayerValuation, predictions []models.FranchiseTagPrediction) []models.PlayerValuation {
	tagged := make(map[string]bool)
	for i := range predictions {
		if predictions[i].HasTag && predictions[i].TaggedPlayer != nil {
			tagged[predictions[i].TaggedPlayer.ID] = true
		}
	}

	out := make([]models.PlayerValuation, 0, len(players))
	for _, p := range players {
		if !tagged[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// OverrideImpact diffs a baseline prediction set against an overridden one
// and reports which players moved onto or off the open market. Any movement
// means downstream prices and scarcity are stale.
func OverrideImpact(baseline, overridden []models.FranchiseTagPrediction) []models.TagOverrideImpact {
	base := make(map[string]*models.FranchiseTagPrediction, len(baseline))
	for i := range baseline {
		base[baseline[i].FranchiseID] = &baseline[i]
	}

	var impacts []models.TagOverrideImpact
	for i := range overridden {
		after := &overridden[i]
		before, ok := base[after.FranchiseID]
		if !ok {
			continue
		}
		beforeID := taggedID(before)
		afterID := taggedID(after)
		if beforeID == afterID {
			continue
		}

		impact := models.TagOverrideImpact{FranchiseID: after.FranchiseID}
		if before.TaggedPlayer != nil {
			impact.EnteringMarket = append(impact.EnteringMarket, *before.TaggedPlayer)
		}
		if after.TaggedPlayer != nil {
			impact.LeavingMarket = append(impact.LeavingMarket, *after.TaggedPlayer)
		}
		impact.RequiresRepricing = true
		impacts = append(impacts, impact)
	}
	return impacts
}

func taggedID(p *models.FranchiseTagPrediction) string {
	if p.HasTag && p.TaggedPlayer != nil {
		return p.TaggedPlayer.ID
	}
	return ""
}

func findPlayer(players []models.PlayerValuation, id string) *models.PlayerValuation {
	for i := range players {
		if players[i].ID == id {
			return &players[i]
		}
	}
	return nil
}
