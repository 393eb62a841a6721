package solvent

// OptimizationGoal is what an optimize request should improve.
type OptimizationGoal string

const (
	GoalTime        OptimizationGoal = "time"
	GoalSpace       OptimizationGoal = "space"
	GoalReadability OptimizationGoal = "readability"
)
