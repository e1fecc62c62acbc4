package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mathtutor/mathtutor-api/internal/grading"
	"github.com/mathtutor/mathtutor-api/internal/problem"
)

// Every operation answers with a uniform envelope: {"success": true,
// ...} or {"success": false, "error": "..."}. Callers surface the
// message directly; there is no machine-readable error code.

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, problem.ErrMissingFields),
		errors.Is(err, problem.ErrInvalidConfiguration),
		errors.Is(err, grading.ErrInvalidAnswerFormat):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]any{"success": false, "error": err.Error()})
}

// GenerateProblemHandler serves POST /api/math-problem. The body is
// optional; both parameters default when omitted.
func GenerateProblemHandler(svc *problem.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Difficulty  string `json:"difficulty"`
			ProblemType string `json:"problem_type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "bad json"})
			return
		}

		sess, err := svc.Generate(r.Context(), req.Difficulty, req.ProblemType)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"problem": map[string]any{
				"problem_text": sess.ProblemText,
				"final_answer": sess.CorrectAnswer,
			},
			"session_id": sess.ID,
		})
	}
}

// HintHandler serves POST /api/math-problem/hint.
func HintHandler(svc *problem.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ProblemText string `json:"problem_text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "bad json"})
			return
		}

		hint, err := svc.Hint(r.Context(), req.ProblemText)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"success": true, "hint": hint})
	}
}

// SolutionHandler serves POST /api/math-problem/solution.
func SolutionHandler(svc *problem.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ProblemText   string   `json:"problem_text"`
			CorrectAnswer *float64 `json:"correct_answer"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "bad json"})
			return
		}
		if req.ProblemText == "" || req.CorrectAnswer == nil {
			writeError(w, problem.ErrMissingFields)
			return
		}

		solution, err := svc.Solution(r.Context(), req.ProblemText, *req.CorrectAnswer)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"success": true, "solution": solution})
	}
}

// SubmitAnswerHandler serves POST /api/math-problem/submit.
func SubmitAnswerHandler(svc *problem.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionID     string   `json:"session_id"`
			UserAnswer    string   `json:"user_answer"`
			CorrectAnswer *float64 `json:"correct_answer"`
			ProblemText   string   `json:"problem_text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "bad json"})
			return
		}
		if req.SessionID == "" || req.UserAnswer == "" || req.CorrectAnswer == nil || req.ProblemText == "" {
			writeError(w, problem.ErrMissingFields)
			return
		}

		result, err := svc.Submit(r.Context(), problem.SubmitInput{
			SessionID:     req.SessionID,
			UserAnswer:    req.UserAnswer,
			CorrectAnswer: *req.CorrectAnswer,
			ProblemText:   req.ProblemText,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"is_correct": result.IsCorrect,
			"feedback":   result.Feedback,
		})
	}
}
