package models

import (
	"encoding/json"
	"strings"
)

// FlexString accepts either a JSON string or a JSON number. Roster feeds are
// inconsistent about whether contract years arrive as "2", "02", or 2.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	// Bare number (or null); keep the raw token as its string form.
	if trimmed == "null" {
		*f = ""
		return nil
	}
	*f = FlexString(trimmed)
	return nil
}

// RosterPlayer is one player row from the roster feed.
type RosterPlayer struct {
	ID                     string       `json:"id"`
	Name                   string       `json:"name"`
	Position               string       `json:"position"`
	Team                   string       `json:"team"`
	Salary                 int64        `json:"salary"`
	ContractYearsRemaining FlexString   `json:"contract_years_remaining"`
	Status                 RosterStatus `json:"status"`
	Age                    int          `json:"age"`
	Experience             int          `json:"experience"`
}

// TeamRoster is one franchise's roster as supplied by the feed.
type TeamRoster struct {
	FranchiseID   string         `json:"franchise_id"`
	FranchiseName string         `json:"franchise_name"`
	Players       []RosterPlayer `json:"players"`
}

// DeadMoneyAdjustment is one prior-cut cap penalty against a franchise.
// Multiple adjustments per franchise aggregate by summation.
type DeadMoneyAdjustment struct {
	FranchiseID string `json:"franchise_id"`
	Amount      int64  `json:"amount"`
}
