package solvent

import (
	"fmt"
	"unicode/utf8"
)

// Field limits mirroring the backend's request validation. Requests
// that violate them are rejected here, before the transport is invoked.
const (
	minProblemLen = 10
	maxProblemLen = 10000
	maxSampleLen  = 2000
	minCodeLen    = 10
	maxCodeLen    = 5000
	maxExecLen    = 10000
	minExecSecs   = 1
	maxExecSecs   = 30

	// maxImageBytes caps the base64 payload: 5MB of image data plus
	// the ~33% base64 expansion.
	maxImageBytes = 5 * 1024 * 1024 * 4 / 3
)

// Validate checks universal constraints on AnalyzeRequest.
func (r AnalyzeRequest) Validate() error {
	if err := checkLen("problem_text", r.ProblemText, minProblemLen, maxProblemLen); err != nil {
		return err
	}
	if err := checkLen("sample_input", r.SampleInput, 0, maxSampleLen); err != nil {
		return err
	}
	if err := checkLen("sample_output", r.SampleOutput, 0, maxSampleLen); err != nil {
		return err
	}
	switch r.Difficulty {
	case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("unknown difficulty %q: %w", r.Difficulty, ErrValidation)
	}
	switch r.Mode {
	case "", ModeFast, ModeVerified, ModeComprehensive:
	default:
		return fmt.Errorf("unknown mode %q: %w", r.Mode, ErrValidation)
	}
	return nil
}

// Validate checks the image payload size and format tag.
func (r OCRRequest) Validate() error {
	if r.ImageBase64 == "" {
		return fmt.Errorf("image_base64 must not be empty: %w", ErrValidation)
	}
	if len(r.ImageBase64) > maxImageBytes {
		return fmt.Errorf("image exceeds the 5MB limit: %w", ErrValidation)
	}
	switch r.ImageType {
	case "png", "jpg", "jpeg", "webp":
		return nil
	default:
		return fmt.Errorf("unsupported image type %q: %w", r.ImageType, ErrValidation)
	}
}

// Validate checks universal constraints on OptimizeRequest.
func (r OptimizeRequest) Validate() error {
	if err := checkLen("problem_text", r.ProblemText, minProblemLen, maxProblemLen); err != nil {
		return err
	}
	if err := checkLen("current_code", r.CurrentCode, minCodeLen, maxCodeLen); err != nil {
		return err
	}
	switch r.Goal {
	case "", GoalTime, GoalSpace, GoalReadability:
		return nil
	default:
		return fmt.Errorf("unknown optimization goal %q: %w", r.Goal, ErrValidation)
	}
}

// Validate checks universal constraints on ExplainSimpleRequest.
func (r ExplainSimpleRequest) Validate() error {
	if err := checkLen("problem_text", r.ProblemText, minProblemLen, maxProblemLen); err != nil {
		return err
	}
	if err := checkLen("code", r.Code, minCodeLen, maxCodeLen); err != nil {
		return err
	}
	switch r.TargetLevel {
	case "", LevelBeginner, LevelIntermediate:
		return nil
	default:
		return fmt.Errorf("unknown target level %q: %w", r.TargetLevel, ErrValidation)
	}
}

// Validate checks universal constraints on ExplainCodeRequest.
func (r ExplainCodeRequest) Validate() error {
	if err := checkLen("problem_text", r.ProblemText, minProblemLen, maxProblemLen); err != nil {
		return err
	}
	return checkLen("code", r.Code, 1, maxExecLen)
}

// Validate checks universal constraints on ExecuteRequest.
func (r ExecuteRequest) Validate() error {
	if err := checkLen("code", r.Code, 1, maxExecLen); err != nil {
		return err
	}
	if r.Timeout != 0 && (r.Timeout < minExecSecs || r.Timeout > maxExecSecs) {
		return fmt.Errorf("timeout must be in [%d, %d] seconds, got %d: %w",
			minExecSecs, maxExecSecs, r.Timeout, ErrValidation)
	}
	return nil
}

func checkLen(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		return fmt.Errorf("%s must be at least %d characters, got %d: %w", field, min, n, ErrValidation)
	}
	if n > max {
		return fmt.Errorf("%s must be at most %d characters, got %d: %w", field, max, n, ErrValidation)
	}
	return nil
}
