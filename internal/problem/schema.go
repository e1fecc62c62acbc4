package problem

import "github.com/mathtutor/mathtutor-api/internal/llm"

// GeneratedSchema defines the JSON schema for problem-generation
// responses. The model is never asked to echo difficulty or problem
// type; the service derives everything else from the validated request.
var GeneratedSchema = &llm.Schema{
	Name:        "math-problem",
	Description: "A single math word problem with its numeric answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problem_text": map[string]any{
				"type":        "string",
				"description": "The complete word problem shown to the learner",
			},
			"final_answer": map[string]any{
				"type":        "number",
				"description": "The numerical answer as a number, not a string",
			},
		},
		"required":             []any{"problem_text", "final_answer"},
		"additionalProperties": false,
	},
}
