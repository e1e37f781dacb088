package trailtrainer

// PlanTarget is one week's prescription from the fixed training plan.
type PlanTarget struct {
	DistanceKm float64 `json:"distance_km"`
	ElevationM float64 `json:"elevation_m"`
	Runs       int     `json:"runs"`
}

// planTargets enumerates the explicitly planned weeks. Weeks outside the
// table fall back to defaultTarget.
var planTargets = map[int]PlanTarget{
	1:  {DistanceKm: 35, ElevationM: 200, Runs: 4},
	2:  {DistanceKm: 38, ElevationM: 250, Runs: 4},
	3:  {DistanceKm: 42, ElevationM: 280, Runs: 4},
	4:  {DistanceKm: 45, ElevationM: 300, Runs: 4},
	5:  {DistanceKm: 45, ElevationM: 400, Runs: 4},
	6:  {DistanceKm: 48, ElevationM: 450, Runs: 4},
	7:  {DistanceKm: 52, ElevationM: 550, Runs: 4},
	8:  {DistanceKm: 55, ElevationM: 600, Runs: 4},
	9:  {DistanceKm: 52, ElevationM: 650, Runs: 4},
	10: {DistanceKm: 56, ElevationM: 700, Runs: 4},
	11: {DistanceKm: 60, ElevationM: 850, Runs: 5},
	12: {DistanceKm: 60, ElevationM: 900, Runs: 5},
	13: {DistanceKm: 55, ElevationM: 750, Runs: 4},
	14: {DistanceKm: 48, ElevationM: 600, Runs: 4},
}

var defaultTarget = PlanTarget{DistanceKm: 40, ElevationM: 300, Runs: 4}

// TargetForWeek looks up the plan target for a week of the plan.
func TargetForWeek(week int) PlanTarget {
	if t, ok := planTargets[week]; ok {
		return t
	}
	return defaultTarget
}

// Phase is a block of the training plan with its one-line focus.
type Phase struct {
	Name  string `json:"name"`
	Focus string `json:"focus"`
}

var phaseTable = []struct {
	throughWeek int
	phase       Phase
}{
	{4, Phase{Name: "BASE BUILDING", Focus: "Rebuild volume gradually, introduce hill work"}},
	{8, Phase{Name: "HILL STRENGTH", Focus: "Progressive hill intervals, downhill practice"}},
	{14, Phase{Name: "SPECIFIC ENDURANCE", Focus: "Long runs with elevation, tempo on hills"}},
	{18, Phase{Name: "RACE SIMULATION", Focus: "Race-pace efforts, practice nutrition"}},
}

var taperPhase = Phase{Name: "TAPER", Focus: "Maintain intensity, reduce volume"}

// PhaseForWeek maps a plan week to its training phase.
func PhaseForWeek(week int) Phase {
	for _, entry := range phaseTable {
		if week <= entry.throughWeek {
			return entry.phase
		}
	}
	return taperPhase
}
