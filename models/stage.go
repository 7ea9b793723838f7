package models

// ProjectStages is the fixed lifecycle sequence every project moves through.
// Defined once at process start; order matters, names are stored verbatim in
// projects.current_stage.
var ProjectStages = []string{
	"Site Visit",
	"Proposal",
	"Agreement",
	"Subsidy Application",
	"Material Dispatch",
	"Installation",
	"Net Metering",
	"Inspection",
	"Completed",
}

// StageIndex returns the position of stage in ProjectStages, -1 for
// unknown or empty.
func StageIndex(stage string) int {
	for i, s := range ProjectStages {
		if s == stage {
			return i
		}
	}
	return -1
}

func StageCount() int {
	return len(ProjectStages)
}

// StageProgress is the progress-bar percentage for a stage:
// (idx+1)/len*100 when the stage is recognized, else 0.
func StageProgress(stage string) float64 {
	idx := StageIndex(stage)
	if idx < 0 {
		return 0
	}
	return float64(idx+1) / float64(len(ProjectStages)) * 100
}

// NextStage returns the stage one step forward. ok is false when the current
// stage is unknown or already terminal.
func NextStage(stage string) (string, bool) {
	idx := StageIndex(stage)
	if idx < 0 || idx >= len(ProjectStages)-1 {
		return "", false
	}
	return ProjectStages[idx+1], true
}

// PrevStage returns the stage one step back. ok is false when the current
// stage is unknown or already first.
func PrevStage(stage string) (string, bool) {
	idx := StageIndex(stage)
	if idx <= 0 {
		return "", false
	}
	return ProjectStages[idx-1], true
}
