package solvent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solventhq/solvent"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		req     solvent.AnalyzeRequest
		wantErr bool
	}{
		{
			name: "valid minimal",
			req:  solvent.AnalyzeRequest{ProblemText: "sum of two numbers"},
		},
		{
			name: "valid with everything",
			req: solvent.AnalyzeRequest{
				ProblemText:  "sum of two numbers",
				SampleInput:  "1 2",
				SampleOutput: "3",
				Difficulty:   solvent.DifficultyMedium,
				Mode:         solvent.ModeVerified,
			},
		},
		{
			name:    "problem too short",
			req:     solvent.AnalyzeRequest{ProblemText: "short"},
			wantErr: true,
		},
		{
			name:    "problem too long",
			req:     solvent.AnalyzeRequest{ProblemText: strings.Repeat("a", 10001)},
			wantErr: true,
		},
		{
			name: "sample input too long",
			req: solvent.AnalyzeRequest{
				ProblemText: "sum of two numbers",
				SampleInput: strings.Repeat("1", 2001),
			},
			wantErr: true,
		},
		{
			name: "unknown difficulty",
			req: solvent.AnalyzeRequest{
				ProblemText: "sum of two numbers",
				Difficulty:  "impossible",
			},
			wantErr: true,
		},
		{
			name: "unknown mode",
			req: solvent.AnalyzeRequest{
				ProblemText: "sum of two numbers",
				Mode:        "turbo",
			},
			wantErr: true,
		},
		{
			name: "length measured in runes not bytes",
			req:  solvent.AnalyzeRequest{ProblemText: strings.Repeat("日", 10)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, solvent.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOCRRequest_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		req     solvent.OCRRequest
		wantErr bool
	}{
		{name: "valid png", req: solvent.OCRRequest{ImageBase64: "aGVsbG8=", ImageType: "png"}},
		{name: "valid webp", req: solvent.OCRRequest{ImageBase64: "aGVsbG8=", ImageType: "webp"}},
		{name: "empty payload", req: solvent.OCRRequest{ImageType: "png"}, wantErr: true},
		{name: "unsupported type", req: solvent.OCRRequest{ImageBase64: "aGVsbG8=", ImageType: "gif"}, wantErr: true},
		{
			name:    "payload over size cap",
			req:     solvent.OCRRequest{ImageBase64: strings.Repeat("A", 5*1024*1024*4/3+1), ImageType: "png"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, solvent.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptimizeRequest_Validate(t *testing.T) {
	t.Parallel()
	valid := solvent.OptimizeRequest{
		ProblemText: "sum of two numbers",
		CurrentCode: "def f(a, b): return a + b",
		Goal:        solvent.GoalTime,
	}
	assert.NoError(t, valid.Validate())

	short := valid
	short.CurrentCode = "x = 1"
	assert.ErrorIs(t, short.Validate(), solvent.ErrValidation)

	long := valid
	long.CurrentCode = strings.Repeat("a", 5001)
	assert.ErrorIs(t, long.Validate(), solvent.ErrValidation)

	badGoal := valid
	badGoal.Goal = "speed"
	assert.ErrorIs(t, badGoal.Validate(), solvent.ErrValidation)
}

func TestExplainSimpleRequest_Validate(t *testing.T) {
	t.Parallel()
	valid := solvent.ExplainSimpleRequest{
		ProblemText: "sum of two numbers",
		Code:        "def f(a, b): return a + b",
		TargetLevel: solvent.LevelBeginner,
	}
	assert.NoError(t, valid.Validate())

	badLevel := valid
	badLevel.TargetLevel = "expert"
	assert.ErrorIs(t, badLevel.Validate(), solvent.ErrValidation)
}

func TestExecuteRequest_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		req     solvent.ExecuteRequest
		wantErr bool
	}{
		{name: "valid", req: solvent.ExecuteRequest{Code: "print(1)"}},
		{name: "valid with timeout", req: solvent.ExecuteRequest{Code: "print(1)", Timeout: 30}},
		{name: "empty code", req: solvent.ExecuteRequest{}, wantErr: true},
		{name: "code too long", req: solvent.ExecuteRequest{Code: strings.Repeat("a", 10001)}, wantErr: true},
		{name: "timeout too low", req: solvent.ExecuteRequest{Code: "print(1)", Timeout: -1}, wantErr: true},
		{name: "timeout too high", req: solvent.ExecuteRequest{Code: "print(1)", Timeout: 31}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, solvent.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
