package problem

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Generated is the structured payload of a problem-generation response.
type Generated struct {
	ProblemText string  `json:"problem_text"`
	FinalAnswer float64 `json:"final_answer"`
}

// ParseGenerated interprets raw model output under the structured
// contract: a single JSON object with a non-empty problem_text string
// and a numeric final_answer. Models sometimes wrap JSON in a fenced
// code block; the wrapping is stripped before parsing. Any deviation is
// ErrInvalidAIResponse and nothing downstream may persist.
func ParseGenerated(raw []byte) (Generated, error) {
	clean := stripFences(string(raw))

	var payload struct {
		ProblemText *string  `json:"problem_text"`
		FinalAnswer *float64 `json:"final_answer"`
	}
	dec := json.NewDecoder(strings.NewReader(clean))
	if err := dec.Decode(&payload); err != nil {
		return Generated{}, fmt.Errorf("%w: %v", ErrInvalidAIResponse, err)
	}
	if payload.ProblemText == nil || *payload.ProblemText == "" {
		return Generated{}, fmt.Errorf("%w: missing problem_text", ErrInvalidAIResponse)
	}
	if payload.FinalAnswer == nil {
		return Generated{}, fmt.Errorf("%w: missing or non-numeric final_answer", ErrInvalidAIResponse)
	}

	return Generated{
		ProblemText: *payload.ProblemText,
		FinalAnswer: *payload.FinalAnswer,
	}, nil
}

// CleanText interprets raw model output under the free-text contract:
// trim surrounding whitespace and accept as-is. Degraded text quality is
// tolerated over hard failure.
func CleanText(raw []byte) string {
	return strings.TrimSpace(string(raw))
}

// stripFences removes a surrounding markdown code fence, with or
// without a "json" language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
