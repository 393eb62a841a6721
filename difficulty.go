package solvent

// Difficulty is the user-declared difficulty of a problem.
// The zero value means unspecified.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)
