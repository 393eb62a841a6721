package solvent

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	Problem   int // Problem input accent
	KeyLine   int // Key-line markers in the code panel
	Highlight int // Highlighted line background
	Error     int // Error banner
	Success   int // Passing tests, completion notices
	Muted     int // Status bar, placeholders, line numbers
	Accent    int // Headings, section titles
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Problem:   4,
		KeyLine:   3,
		Highlight: 0,
		Error:     1,
		Success:   2,
		Muted:     8,
		Accent:    5,
	}
}
