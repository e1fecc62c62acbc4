package problem

import "fmt"

// Difficulty is the closed set of generation difficulties.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ProblemType is the closed set of generation problem types.
type ProblemType string

const (
	TypeMixed          ProblemType = "mixed"
	TypeAddition       ProblemType = "addition"
	TypeSubtraction    ProblemType = "subtraction"
	TypeMultiplication ProblemType = "multiplication"
	TypeDivision       ProblemType = "division"
)

// ParseDifficulty normalizes a caller-supplied difficulty. Empty input
// defaults to medium; anything outside the enumeration is rejected with
// ErrInvalidConfiguration.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case "":
		return DifficultyMedium, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfiguration, s)
	}
}

// ParseProblemType normalizes a caller-supplied problem type. Empty
// input defaults to mixed; anything outside the enumeration is rejected
// with ErrInvalidConfiguration.
func ParseProblemType(s string) (ProblemType, error) {
	switch ProblemType(s) {
	case "":
		return TypeMixed, nil
	case TypeMixed, TypeAddition, TypeSubtraction, TypeMultiplication, TypeDivision:
		return ProblemType(s), nil
	default:
		return "", fmt.Errorf("%w: unknown problem type %q", ErrInvalidConfiguration, s)
	}
}

// Policy returns the descriptive generation policy for a difficulty.
// The switch is exhaustive over the closed set; values only enter the
// system through ParseDifficulty, so the panic arm is unreachable.
func (d Difficulty) Policy() string {
	switch d {
	case DifficultyEasy:
		return "Use small whole numbers up to 100. The problem should be solvable in one step with a single operation."
	case DifficultyMedium:
		return "Use numbers up to 1000, including money amounts and simple decimals. The problem should take two steps to solve."
	case DifficultyHard:
		return "Use larger numbers up to 10000, decimals, and simple fractions. The problem should require three or more steps and combine concepts."
	default:
		panic(fmt.Sprintf("unhandled difficulty %q", string(d)))
	}
}

// Policy returns the descriptive generation policy for a problem type.
func (t ProblemType) Policy() string {
	switch t {
	case TypeMixed:
		return "Use any mix of addition, subtraction, multiplication, and division."
	case TypeAddition:
		return "The problem must be solved primarily with addition."
	case TypeSubtraction:
		return "The problem must be solved primarily with subtraction."
	case TypeMultiplication:
		return "The problem must be solved primarily with multiplication."
	case TypeDivision:
		return "The problem must be solved primarily with division, with a clean numeric result."
	default:
		panic(fmt.Sprintf("unhandled problem type %q", string(t)))
	}
}
