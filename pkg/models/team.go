package models

// NeedPriority tiers a positional depth gap.
type NeedPriority string

const (
	PriorityCritical NeedPriority = "critical"
	PriorityHigh     NeedPriority = "high"
	PriorityMedium   NeedPriority = "medium"
	PriorityLow      NeedPriority = "low"
)

// PositionalNeed records how far a team's depth at one position falls short
// of the league target depth.
type PositionalNeed struct {
	Position string       `json:"position"`
	Priority NeedPriority `json:"priority"`
	DepthGap int          `json:"depth_gap"`
}

// TeamCapSituation is the per-franchise cap accounting snapshot.
// DiscretionarySpending is never negative.
type TeamCapSituation struct {
	FranchiseID   string `json:"franchise_id"`
	FranchiseName string `json:"franchise_name"`

	SalaryCap          int64 `json:"salary_cap"`
	CommittedSalary    int64 `json:"committed_salary"`
	DeadMoney          int64 `json:"dead_money"`
	FranchiseTagSalary int64 `json:"franchise_tag_salary"`

	ProjectedCapSpace     int64 `json:"projected_cap_space"`
	DiscretionarySpending int64 `json:"discretionary_spending"`

	RosterCount       int               `json:"roster_count"`
	ExpiringContracts []PlayerValuation `json:"expiring_contracts"`
	PositionalNeeds   []PositionalNeed  `json:"positional_needs"`
}

// NeedAt returns the depth gap this team carries at a position (0 if covered).
func (t *TeamCapSituation) NeedAt(position string) int {
	for _, n := range t.PositionalNeeds {
		if n.Position == position {
			return n.DepthGap
		}
	}
	return 0
}

// LeagueCapSummary aggregates cap space across every franchise.
type LeagueCapSummary struct {
	TeamCount                 int   `json:"team_count"`
	TotalDiscretionary        int64 `json:"total_discretionary"`
	AverageDiscretionary      int64 `json:"average_discretionary"`
	TotalProjectedCapSpace    int64 `json:"total_projected_cap_space"`
	TeamsWithPositiveCapSpace int   `json:"teams_with_positive_cap_space"`
}
