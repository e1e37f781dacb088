package trailtrainer

import "testing"

func TestTargetForWeek(t *testing.T) {
	if got := TargetForWeek(1); got != (PlanTarget{DistanceKm: 35, ElevationM: 200, Runs: 4}) {
		t.Fatalf("week 1 target = %+v", got)
	}
	if got := TargetForWeek(11); got.Runs != 5 {
		t.Fatalf("week 11 should prescribe 5 runs, got %+v", got)
	}
	// Weeks outside the explicit table use the default prescription.
	for _, week := range []int{0, 15, 22, -3} {
		if got := TargetForWeek(week); got != defaultTarget {
			t.Fatalf("week %d target = %+v, want default", week, got)
		}
	}
}

func TestPhaseForWeek(t *testing.T) {
	cases := []struct {
		week int
		want string
	}{
		{1, "BASE BUILDING"},
		{4, "BASE BUILDING"},
		{5, "HILL STRENGTH"},
		{8, "HILL STRENGTH"},
		{9, "SPECIFIC ENDURANCE"},
		{14, "SPECIFIC ENDURANCE"},
		{15, "RACE SIMULATION"},
		{18, "RACE SIMULATION"},
		{19, "TAPER"},
		{22, "TAPER"},
	}
	for _, tc := range cases {
		if got := PhaseForWeek(tc.week); got.Name != tc.want {
			t.Fatalf("PhaseForWeek(%d) = %q, want %q", tc.week, got.Name, tc.want)
		}
		if got := PhaseForWeek(tc.week); got.Focus == "" {
			t.Fatalf("PhaseForWeek(%d) has empty focus", tc.week)
		}
	}
}
