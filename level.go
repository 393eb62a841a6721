package solvent

// TargetLevel is the audience for a simplified explanation.
type TargetLevel string

const (
	LevelBeginner     TargetLevel = "beginner"
	LevelIntermediate TargetLevel = "intermediate"
)
