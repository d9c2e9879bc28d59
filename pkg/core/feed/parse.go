// Package feed parses the engine's boundary inputs: roster feeds, salary
// averages, dead-money adjustments, and ranking overlays. Feeds originate
// from scraping pipelines and hand-edited files, so every loader parses
// leniently and falls back through repair strategies before giving up.
package feed

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"

	"cap_valuation/pkg/models"
)

// SmartParse tries multiple strategies to decode feed bytes into schema:
// 1. Standard JSON
// 2. JSON repair (unquoted keys, trailing commas, markdown fences)
// 3. Hjson (most lenient: comments, optional commas)
func SmartParse(data []byte, schema interface{}) error {
	if err := json.Unmarshal(data, schema); err == nil {
		return nil
	}

	if repaired, err := jsonrepair.RepairJSON(string(data)); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}

	if err := hjson.Unmarshal(data, schema); err == nil {
		return nil
	}

	return fmt.Errorf("feed parse failed: all strategies rejected the input")
}

// ParseRosters decodes a roster feed document.
func ParseRosters(data []byte) ([]models.TeamRoster, error) {
	var rosters []models.TeamRoster
	if err := SmartParse(data, &rosters); err != nil {
		return nil, fmt.Errorf("roster feed: %w", err)
	}
	return rosters, nil
}

// ParseSalaryAverages decodes the position salary-averages dataset.
func ParseSalaryAverages(data []byte) (models.SalaryAverages, error) {
	averages := make(models.SalaryAverages)
	if err := SmartParse(data, &averages); err != nil {
		return nil, fmt.Errorf("salary averages: %w", err)
	}
	return averages, nil
}

// ParseDeadMoney decodes the dead-money adjustment list.
func ParseDeadMoney(data []byte) ([]models.DeadMoneyAdjustment, error) {
	var adjustments []models.DeadMoneyAdjustment
	if err := SmartParse(data, &adjustments); err != nil {
		return nil, fmt.Errorf("dead money: %w", err)
	}
	return adjustments, nil
}
