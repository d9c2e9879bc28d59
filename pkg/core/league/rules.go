// Package league defines the immutable rule set threaded through every
// engine component. Nothing in the engine reads ambient globals; alternative
// league configurations run by constructing a different Rules value.
package league

import "sort"

// CurveTier selects which historical price curve applies at a position,
// based on how strong the position's free-agent class is.
type CurveTier string

const (
	CurveMin CurveTier = "min"
	CurveAvg CurveTier = "avg"
	CurveMax CurveTier = "max"
)

// PriceCurve is one rank-to-price decay curve: price at positional rank r
// is BasePrice * (1 + DecayRate)^(r-1). DecayRate is negative.
type PriceCurve struct {
	BasePrice int64   `yaml:"base_price" json:"base_price"`
	DecayRate float64 `yaml:"decay_rate" json:"decay_rate"`
}

// PositionCurves holds the min/avg/max curves for one position.
type PositionCurves struct {
	Min PriceCurve `yaml:"min" json:"min"`
	Avg PriceCurve `yaml:"avg" json:"avg"`
	Max PriceCurve `yaml:"max" json:"max"`
}

// Curve returns the curve for a tier.
func (pc PositionCurves) Curve(tier CurveTier) PriceCurve {
	switch tier {
	case CurveMin:
		return pc.Min
	case CurveMax:
		return pc.Max
	default:
		return pc.Avg
	}
}

// Rules is the full league configuration. All engine constructors take a
// Rules value; the zero value is not usable, start from DefaultRules.
type Rules struct {
	SalaryCap     int64 `yaml:"salary_cap" json:"salary_cap"`
	MinimumSalary int64 `yaml:"minimum_salary" json:"minimum_salary"`

	// EscalationRate is the fixed per-year contract growth (0.10 = 10%).
	EscalationRate float64 `yaml:"escalation_rate" json:"escalation_rate"`
	// TaxiSquadRate is the cap-hit fraction for taxi squad players.
	TaxiSquadRate float64 `yaml:"taxi_squad_rate" json:"taxi_squad_rate"`

	MinimumRosterSize int `yaml:"minimum_roster_size" json:"minimum_roster_size"`

	// TargetDepth is the roster depth each team is expected to carry per
	// position; shortfalls become positional needs.
	TargetDepth map[string]int `yaml:"target_depth" json:"target_depth"`

	// TagScoreThreshold is the minimum candidate score (0-100) at which a
	// team is predicted to use its franchise tag.
	TagScoreThreshold float64 `yaml:"tag_score_threshold" json:"tag_score_threshold"`

	// Overall-rank tier ceilings for price floors.
	EliteRankCeiling   int `yaml:"elite_rank_ceiling" json:"elite_rank_ceiling"`
	StarRankCeiling    int `yaml:"star_rank_ceiling" json:"star_rank_ceiling"`
	StarterRankCeiling int `yaml:"starter_rank_ceiling" json:"starter_rank_ceiling"`

	// QualityRankThreshold separates "quality" free agents for scarcity math.
	QualityRankThreshold float64 `yaml:"quality_rank_threshold" json:"quality_rank_threshold"`

	// Curves maps position code to its historical price curves.
	Curves map[string]PositionCurves `yaml:"curves" json:"curves"`
}

// DefaultRules returns the standard league configuration.
func DefaultRules() Rules {
	return Rules{
		SalaryCap:         45_000_000,
		MinimumSalary:     425_000,
		EscalationRate:    0.10,
		TaxiSquadRate:     0.50,
		MinimumRosterSize: 20,
		TargetDepth: map[string]int{
			"QB": 3,
			"RB": 6,
			"WR": 6,
			"TE": 3,
			"PK": 1,
			"DF": 1,
		},
		TagScoreThreshold:    50,
		EliteRankCeiling:     30,
		StarRankCeiling:      105,
		StarterRankCeiling:   199,
		QualityRankThreshold: 100,
		Curves: map[string]PositionCurves{
			"QB": {
				Min: PriceCurve{BasePrice: 5_500_000, DecayRate: -0.14},
				Avg: PriceCurve{BasePrice: 8_500_000, DecayRate: -0.12},
				Max: PriceCurve{BasePrice: 12_000_000, DecayRate: -0.10},
			},
			"RB": {
				Min: PriceCurve{BasePrice: 4_500_000, DecayRate: -0.15},
				Avg: PriceCurve{BasePrice: 7_500_000, DecayRate: -0.13},
				Max: PriceCurve{BasePrice: 11_000_000, DecayRate: -0.11},
			},
			"WR": {
				Min: PriceCurve{BasePrice: 4_000_000, DecayRate: -0.12},
				Avg: PriceCurve{BasePrice: 7_000_000, DecayRate: -0.10},
				Max: PriceCurve{BasePrice: 10_500_000, DecayRate: -0.09},
			},
			"TE": {
				Min: PriceCurve{BasePrice: 2_000_000, DecayRate: -0.16},
				Avg: PriceCurve{BasePrice: 3_500_000, DecayRate: -0.14},
				Max: PriceCurve{BasePrice: 6_000_000, DecayRate: -0.12},
			},
			"PK": {
				Min: PriceCurve{BasePrice: 425_000, DecayRate: -0.10},
				Avg: PriceCurve{BasePrice: 600_000, DecayRate: -0.10},
				Max: PriceCurve{BasePrice: 900_000, DecayRate: -0.10},
			},
			"DF": {
				Min: PriceCurve{BasePrice: 425_000, DecayRate: -0.10},
				Avg: PriceCurve{BasePrice: 700_000, DecayRate: -0.10},
				Max: PriceCurve{BasePrice: 1_100_000, DecayRate: -0.10},
			},
		},
	}
}

// CurvesFor returns the curves for a position. Unknown positions fall back
// to a flat curve at the league minimum rather than failing; pricing degrades
// instead of erroring.
func (r Rules) CurvesFor(position string) PositionCurves {
	if pc, ok := r.Curves[position]; ok {
		return pc
	}
	flat := PriceCurve{BasePrice: r.MinimumSalary, DecayRate: 0}
	return PositionCurves{Min: flat, Avg: flat, Max: flat}
}

// Positions returns the configured position codes in stable order.
func (r Rules) Positions() []string {
	out := make([]string, 0, len(r.TargetDepth))
	for pos := range r.TargetDepth {
		out = append(out, pos)
	}
	sort.Strings(out)
	return out
}
