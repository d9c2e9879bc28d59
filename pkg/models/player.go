package models

// RosterStatus mirrors the status codes supplied by the roster feed.
type RosterStatus string

const (
	StatusRoster         RosterStatus = "ROSTER"
	StatusTaxiSquad      RosterStatus = "TAXI_SQUAD"
	StatusInjuredReserve RosterStatus = "INJURED_RESERVE"
)

// PlayerValuation is the central player record: contract state in, price out.
// Rank fields are optional (nil = unranked); smaller rank = better player.
type PlayerValuation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"` // Pro team abbreviation, display only

	// Current contract
	Salary                 int64        `json:"salary"`
	ContractYearsRemaining int          `json:"contract_years_remaining"`
	OwnerID                string       `json:"owner_id,omitempty"` // Franchise that holds the contract ("" = none)
	Status                 RosterStatus `json:"status,omitempty"`

	// Ranking inputs
	DynastyRank   *int     `json:"dynasty_rank,omitempty"`
	RedraftRank   *int     `json:"redraft_rank,omitempty"`
	CompositeRank *float64 `json:"composite_rank,omitempty"` // Weighted blend of the two

	// Demographics
	Age        int `json:"age"`
	Experience int `json:"experience"`

	// Derived outputs
	EstimatedPrice   int64   `json:"estimated_price,omitempty"`
	Confidence       float64 `json:"confidence,omitempty"` // 0-1
	RecommendedYears int     `json:"recommended_years,omitempty"`
}

// Ranked reports whether the player has at least one ranking input.
func (p *PlayerValuation) Ranked() bool {
	return p.DynastyRank != nil || p.RedraftRank != nil
}

// RankWeights blends dynasty and redraft ranks into a composite.
// The two weights are user-tunable and must sum to 1.
type RankWeights struct {
	Dynasty float64 `json:"dynasty" yaml:"dynasty"`
	Redraft float64 `json:"redraft" yaml:"redraft"`
}

// DefaultRankWeights is the neutral 50/50 blend.
var DefaultRankWeights = RankWeights{Dynasty: 0.5, Redraft: 0.5}

// Composite returns the blended rank for a player, or (0, false) when the
// player has no ranking input at all. When only one rank exists it is used
// directly; weights only matter when both are present.
func (w RankWeights) Composite(p *PlayerValuation) (float64, bool) {
	switch {
	case p.DynastyRank != nil && p.RedraftRank != nil:
		return w.Dynasty*float64(*p.DynastyRank) + w.Redraft*float64(*p.RedraftRank), true
	case p.DynastyRank != nil:
		return float64(*p.DynastyRank), true
	case p.RedraftRank != nil:
		return float64(*p.RedraftRank), true
	default:
		return 0, false
	}
}
