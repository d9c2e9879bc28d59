package models

// TagCandidate is one scored expiring player on a team's tag shortlist.
type TagCandidate struct {
	Player PlayerValuation `json:"player"`
	Score  float64         `json:"score"` // 0-100
}

// FranchiseTagPrediction is the per-team tag decision.
// Candidates are sorted descending by score (at most five retained);
// HasTag is asserted only when the top candidate scores at least the
// league tag threshold.
type FranchiseTagPrediction struct {
	FranchiseID      string           `json:"franchise_id"`
	HasTag           bool             `json:"has_tag"`
	TaggedPlayer     *PlayerValuation `json:"tagged_player,omitempty"`
	TagSalary        int64            `json:"tag_salary,omitempty"`
	Candidates       []TagCandidate   `json:"candidates"`
	IsManualOverride bool             `json:"is_manual_override"`
}

// TagOverrideImpact reports how an override changed the open market.
type TagOverrideImpact struct {
	FranchiseID       string            `json:"franchise_id"`
	EnteringMarket    []PlayerValuation `json:"entering_market"` // Previously tagged, now free agents
	LeavingMarket     []PlayerValuation `json:"leaving_market"`  // Newly tagged, pulled off the market
	RequiresRepricing bool              `json:"requires_repricing"`
}
