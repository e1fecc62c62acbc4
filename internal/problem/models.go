package problem

// Session pairs a generated word problem with its correct answer. It is
// created exactly once at successful generation and never mutated.
type Session struct {
	ID            string  `json:"id"`
	ProblemText   string  `json:"problem_text"`
	CorrectAnswer float64 `json:"correct_answer"`
	CreatedAt     int64   `json:"created_at,omitempty"`
}

// Submission records one learner attempt against a Session. Correctness
// is computed once at submission time and stored, never recomputed.
// Repeated attempts on one session are permitted.
type Submission struct {
	SessionID    string  `json:"session_id"`
	UserAnswer   float64 `json:"user_answer"`
	IsCorrect    bool    `json:"is_correct"`
	FeedbackText string  `json:"feedback_text"`
	CreatedAt    int64   `json:"created_at,omitempty"`
}
