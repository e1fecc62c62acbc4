package grading

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the fixed threshold below which a numeric difference is
// treated as a match. It absorbs floating-point representation error and
// decimal rounding in currency-style answers. Not configurable per problem.
const Tolerance = 0.01

// ErrInvalidAnswerFormat reports learner input that does not parse as a
// real number.
var ErrInvalidAnswerFormat = errors.New("invalid answer format")

// ParseAnswer parses a learner-supplied answer string. It accepts
// standard decimal and scientific numeric text, nothing looser.
func ParseAnswer(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrInvalidAnswerFormat
	}
	return v, nil
}

// Evaluate judges a parsed answer against the stored correct value.
// Correct iff |user - correct| < Tolerance; the boundary is exclusive,
// so a difference of exactly Tolerance is incorrect.
func Evaluate(user, correct float64) bool {
	return math.Abs(user-correct) < Tolerance
}
