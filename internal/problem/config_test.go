package problem

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"", DifficultyMedium, false},
		{"easy", DifficultyEasy, false},
		{"medium", DifficultyMedium, false},
		{"hard", DifficultyHard, false},
		{"extreme", "", true},
		{"EASY", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("ParseDifficulty(%q) err = %v, want ErrInvalidConfiguration", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDifficulty(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseProblemType(t *testing.T) {
	tests := []struct {
		in      string
		want    ProblemType
		wantErr bool
	}{
		{"", TypeMixed, false},
		{"mixed", TypeMixed, false},
		{"addition", TypeAddition, false},
		{"subtraction", TypeSubtraction, false},
		{"multiplication", TypeMultiplication, false},
		{"division", TypeDivision, false},
		{"algebra", "", true},
	}
	for _, tt := range tests {
		got, err := ParseProblemType(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("ParseProblemType(%q) err = %v, want ErrInvalidConfiguration", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseProblemType(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseProblemType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPolicyCoversClosedSets(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if d.Policy() == "" {
			t.Errorf("empty policy for difficulty %q", d)
		}
	}
	for _, pt := range []ProblemType{TypeMixed, TypeAddition, TypeSubtraction, TypeMultiplication, TypeDivision} {
		if pt.Policy() == "" {
			t.Errorf("empty policy for problem type %q", pt)
		}
	}
}
