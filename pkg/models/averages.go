package models

// PositionAverage is the league-wide salary picture at one position.
type PositionAverage struct {
	Top3Average int64 `json:"top3_average"`
}

// SalaryAverages maps position code to its tracked averages. Positions with
// no tracked average fall back to the league minimum for tag purposes.
type SalaryAverages map[string]PositionAverage

// RankOverlay carries externally supplied ranking inputs for one player.
type RankOverlay struct {
	DynastyRank *int `json:"dynasty_rank,omitempty"`
	RedraftRank *int `json:"redraft_rank,omitempty"`
}

// RankOverlays maps player id to its ranking overlay.
type RankOverlays map[string]RankOverlay
