// Package capspace computes each franchise's salary-cap situation: committed
// salary under next-year escalation, projected cap space, discretionary
// spending after the minimum-roster reserve, and positional needs.
package capspace

import (
	"strconv"
	"strings"

	"cap_valuation/pkg/core/league"
	"cap_valuation/pkg/core/salary"
	"cap_valuation/pkg/models"
)

// Calculator derives TeamCapSituation records from roster feeds.
type Calculator struct {
	rules league.Rules
}

// NewCalculator creates a cap space calculator for a league rule set.
func NewCalculator(rules league.Rules) *Calculator {
	return &Calculator{rules: rules}
}

// ParseContractYears normalizes a contract-years value from the feed.
// Leading zeros and whitespace are tolerated; anything unparseable counts
// as already expired (0). Never returns an error.
func ParseContractYears(raw models.FlexString) int {
	s := strings.TrimSpace(string(raw))
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return 0
	}
	years, err := strconv.Atoi(s)
	if err != nil || years < 0 {
		return 0
	}
	return years
}

// Calculate builds the cap situation for one franchise.
// deadMoney is the franchise's aggregated prior-cut penalty; tagSalary is a
// committed franchise-tag amount (0 when no tag is in play yet).
func (c *Calculator) Calculate(roster models.TeamRoster, deadMoney, tagSalary int64) models.TeamCapSituation {
	situation := models.TeamCapSituation{
		FranchiseID:        roster.FranchiseID,
		FranchiseName:      roster.FranchiseName,
		SalaryCap:          c.rules.SalaryCap,
		DeadMoney:          deadMoney,
		FranchiseTagSalary: tagSalary,
		RosterCount:        len(roster.Players),
	}

	depth := make(map[string]int)
	var committed int64

	for _, rp := range roster.Players {
		years := ParseContractYears(rp.ContractYearsRemaining)
		player := toValuation(rp, years)
		player.OwnerID = roster.FranchiseID

		if years <= 1 {
			// Expiring: headed for the auction (or a tag), not committed money.
			situation.ExpiringContracts = append(situation.ExpiringContracts, player)
			continue
		}

		depth[rp.Position]++

		// Project next year's cap hit: one year of escalation, taxi squad
		// counted at the reduced rate. Injured reserve carries a full hit.
		hit := salary.Escalate(c.rules, rp.Salary, 1)
		if rp.Status == models.StatusTaxiSquad {
			hit = int64(float64(hit) * c.rules.TaxiSquadRate)
		}
		committed += hit
	}

	situation.CommittedSalary = committed + deadMoney + tagSalary
	situation.ProjectedCapSpace = c.rules.SalaryCap - situation.CommittedSalary

	reserve := c.rosterReserve(len(roster.Players))
	discretionary := situation.ProjectedCapSpace - reserve
	if discretionary < 0 {
		discretionary = 0
	}
	situation.DiscretionarySpending = discretionary

	situation.PositionalNeeds = c.positionalNeeds(depth)
	return situation
}

// CalculateAll runs Calculate for every roster, resolving each franchise's
// dead money from the supplied adjustments.
func (c *Calculator) CalculateAll(rosters []models.TeamRoster, deadMoney map[string]int64) []models.TeamCapSituation {
	out := make([]models.TeamCapSituation, 0, len(rosters))
	for _, roster := range rosters {
		out = append(out, c.Calculate(roster, deadMoney[roster.FranchiseID], 0))
	}
	return out
}

// rosterReserve holds back league-minimum money for unfilled roster spots.
func (c *Calculator) rosterReserve(rosterCount int) int64 {
	missing := c.rules.MinimumRosterSize - rosterCount
	if missing <= 0 {
		return 0
	}
	return int64(missing) * c.rules.MinimumSalary
}

// positionalNeeds compares current non-expiring depth to the league target
// depth and tiers each shortfall.
func (c *Calculator) positionalNeeds(depth map[string]int) []models.PositionalNeed {
	var needs []models.PositionalNeed
	for _, pos := range c.rules.Positions() {
		gap := c.rules.TargetDepth[pos] - depth[pos]
		if gap <= 0 {
			continue
		}
		needs = append(needs, models.PositionalNeed{
			Position: pos,
			Priority: priorityForGap(gap),
			DepthGap: gap,
		})
	}
	return needs
}

func priorityForGap(gap int) models.NeedPriority {
	switch {
	case gap >= 4:
		return models.PriorityCritical
	case gap == 3:
		return models.PriorityHigh
	case gap == 2:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// Summarize aggregates cap space across the league. Only non-negative
// discretionary values exist by construction, so the totals never shrink.
func Summarize(situations []models.TeamCapSituation) models.LeagueCapSummary {
	summary := models.LeagueCapSummary{TeamCount: len(situations)}
	for _, s := range situations {
		summary.TotalDiscretionary += s.DiscretionarySpending
		summary.TotalProjectedCapSpace += s.ProjectedCapSpace
		if s.ProjectedCapSpace > 0 {
			summary.TeamsWithPositiveCapSpace++
		}
	}
	if summary.TeamCount > 0 {
		summary.AverageDiscretionary = summary.TotalDiscretionary / int64(summary.TeamCount)
	}
	return summary
}

func toValuation(rp models.RosterPlayer, years int) models.PlayerValuation {
	return models.PlayerValuation{
		ID:                     rp.ID,
		Name:                   rp.Name,
		Position:               rp.Position,
		Team:                   rp.Team,
		Salary:                 rp.Salary,
		ContractYearsRemaining: years,
		Status:                 rp.Status,
		Age:                    rp.Age,
		Experience:             rp.Experience,
	}
}
