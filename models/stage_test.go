package models

import "testing"

func TestStageIndex(t *testing.T) {
	cases := []struct {
		stage    string
		expected int
	}{
		{"Site Visit", 0},
		{"Proposal", 1},
		{"Completed", len(ProjectStages) - 1},
		{"", -1},
		{"Nonsense", -1},
	}
	for _, tc := range cases {
		if got := StageIndex(tc.stage); got != tc.expected {
			t.Fatalf("StageIndex(%q) expected %d, got %d", tc.stage, tc.expected, got)
		}
	}
}

func TestNextStage_AdvancesEveryNonTerminalStage(t *testing.T) {
	for i, stage := range ProjectStages {
		next, ok := NextStage(stage)
		if i < len(ProjectStages)-1 {
			if !ok {
				t.Fatalf("NextStage(%q) expected to move", stage)
			}
			if next != ProjectStages[i+1] {
				t.Fatalf("NextStage(%q) expected %q, got %q", stage, ProjectStages[i+1], next)
			}
		} else {
			if ok {
				t.Fatalf("NextStage(%q) expected no-op at terminal stage", stage)
			}
		}
	}
}

func TestNextStage_UnknownStageIsNoOp(t *testing.T) {
	if _, ok := NextStage("Bogus"); ok {
		t.Fatal("NextStage with unknown stage expected no-op")
	}
	if _, ok := NextStage(""); ok {
		t.Fatal("NextStage with empty stage expected no-op")
	}
}

func TestPrevStage_RetreatsEveryNonFirstStage(t *testing.T) {
	for i, stage := range ProjectStages {
		prev, ok := PrevStage(stage)
		if i > 0 {
			if !ok {
				t.Fatalf("PrevStage(%q) expected to move", stage)
			}
			if prev != ProjectStages[i-1] {
				t.Fatalf("PrevStage(%q) expected %q, got %q", stage, ProjectStages[i-1], prev)
			}
		} else {
			if ok {
				t.Fatalf("PrevStage(%q) expected no-op at first stage", stage)
			}
		}
	}
}

func TestPrevStage_UnknownStageIsNoOp(t *testing.T) {
	if _, ok := PrevStage("Bogus"); ok {
		t.Fatal("PrevStage with unknown stage expected no-op")
	}
}

func TestStageProgress(t *testing.T) {
	if got := StageProgress(""); got != 0 {
		t.Fatalf("StageProgress of empty stage expected 0, got %v", got)
	}
	if got := StageProgress("Bogus"); got != 0 {
		t.Fatalf("StageProgress of unknown stage expected 0, got %v", got)
	}
	if got := StageProgress("Completed"); got != 100 {
		t.Fatalf("StageProgress of terminal stage expected 100, got %v", got)
	}

	// Monotonically non-decreasing along the sequence.
	prev := 0.0
	for _, stage := range ProjectStages {
		p := StageProgress(stage)
		if p < prev {
			t.Fatalf("StageProgress(%q)=%v decreased below %v", stage, p, prev)
		}
		prev = p
	}
}
