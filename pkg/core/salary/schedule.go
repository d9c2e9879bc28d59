// Package salary implements contract escalation arithmetic: the fixed
// per-year growth applied to held contracts and the year-by-year schedules
// derived from it. Cap hit equals salary in every year (no bonus amortization).
package salary

import (
	"math"

	"cap_valuation/pkg/core/league"
)

// Escalate grows a base salary by the league escalation rate compounded over
// yearOffset years, rounded to the nearest dollar.
// Escalate(s, 0) == s for any positive s.
func Escalate(rules league.Rules, baseSalary int64, yearOffset int) int64 {
	if baseSalary <= 0 {
		return 0
	}
	if yearOffset <= 0 {
		return baseSalary
	}
	escalated := float64(baseSalary) * math.Pow(1.0+rules.EscalationRate, float64(yearOffset))
	return int64(math.Round(escalated))
}

// YearEntry is one year of a contract schedule.
type YearEntry struct {
	Year   int   `json:"year"`
	Salary int64 `json:"salary"`
	CapHit int64 `json:"cap_hit"`
}

// Schedule is a full multi-year contract schedule.
type Schedule struct {
	Years              []YearEntry `json:"years"`
	TotalContractValue int64       `json:"total_contract_value"`
	AverageAnnualValue int64       `json:"average_annual_value"`
}

// GenerateSchedule produces a numYears schedule starting at startYear, each
// year escalated from the previous. numYears is clamped to [1, 5].
func GenerateSchedule(rules league.Rules, baseSalary int64, numYears, startYear int) Schedule {
	if numYears < 1 {
		numYears = 1
	}
	if numYears > 5 {
		numYears = 5
	}
	if baseSalary < rules.MinimumSalary {
		baseSalary = rules.MinimumSalary
	}

	sched := Schedule{Years: make([]YearEntry, 0, numYears)}
	for i := 0; i < numYears; i++ {
		s := Escalate(rules, baseSalary, i)
		sched.Years = append(sched.Years, YearEntry{
			Year:   startYear + i,
			Salary: s,
			CapHit: s,
		})
		sched.TotalContractValue += s
	}
	sched.AverageAnnualValue = int64(math.Round(float64(sched.TotalContractValue) / float64(numYears)))
	return sched
}
