package problem

import (
	"context"
	"log"

	"github.com/mathtutor/mathtutor-api/internal/grading"
	"github.com/mathtutor/mathtutor-api/internal/llm"
)

// Service wires the model gateway and the store behind the four
// operations. Every operation is stateless and request-scoped: at most
// one model call followed by at most one store call, sequential, no
// retries. A failed store write after a successful model call discards
// the model output; that loss is accepted, not recovered.
type Service struct {
	store Store
	model llm.Provider
}

func NewService(store Store, model llm.Provider) *Service {
	return &Service{store: store, model: model}
}

const (
	generateMaxTokens = 1024
	proseMaxTokens    = 512

	generateTemperature = 0.7
)

// Generate produces a new word problem for the given configuration and
// creates its session. Config errors and unusable model output surface
// before anything is persisted.
func (s *Service) Generate(ctx context.Context, difficulty, problemType string) (Session, error) {
	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return Session{}, err
	}
	t, err := ParseProblemType(problemType)
	if err != nil {
		return Session{}, err
	}

	resp, err := s.model.Generate(ctx, llm.Request{
		System:      tutorSystem,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: GenerationPrompt(d, t)}},
		Schema:      GeneratedSchema,
		MaxTokens:   generateMaxTokens,
		Temperature: generateTemperature,
	})
	if err != nil {
		return Session{}, err
	}

	gen, err := ParseGenerated(resp.Content)
	if err != nil {
		return Session{}, err
	}

	sess, err := s.store.CreateSession(ctx, gen.ProblemText, gen.FinalAnswer)
	if err != nil {
		return Session{}, err
	}

	log.Printf("generated problem session=%s model=%s tokens=%d", sess.ID, resp.Model, resp.Usage.TotalTokens)
	return sess, nil
}

// Hint returns short guidance for a problem without revealing its answer.
func (s *Service) Hint(ctx context.Context, problemText string) (string, error) {
	if problemText == "" {
		return "", ErrMissingFields
	}
	resp, err := s.model.Generate(ctx, llm.Request{
		System:    tutorSystem,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: HintPrompt(problemText)}},
		MaxTokens: proseMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return CleanText(resp.Content), nil
}

// Solution returns a step-by-step explanation ending in the restated
// final answer.
func (s *Service) Solution(ctx context.Context, problemText string, correctAnswer float64) (string, error) {
	if problemText == "" {
		return "", ErrMissingFields
	}
	resp, err := s.model.Generate(ctx, llm.Request{
		System:    tutorSystem,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: SolutionPrompt(problemText, correctAnswer)}},
		MaxTokens: proseMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return CleanText(resp.Content), nil
}

// SubmitInput carries one answer check.
type SubmitInput struct {
	SessionID     string
	UserAnswer    string
	CorrectAnswer float64
	ProblemText   string
}

// SubmitResult is the outcome of one answer check.
type SubmitResult struct {
	IsCorrect bool
	Feedback  string
}

// Submit evaluates a learner answer, asks the model for feedback, and
// appends the submission. Evaluation happens first so an unparseable
// answer never reaches the model or the store; the model call precedes
// the store write because the generated feedback is part of the record.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	if in.SessionID == "" || in.UserAnswer == "" || in.ProblemText == "" {
		return SubmitResult{}, ErrMissingFields
	}

	userValue, err := grading.ParseAnswer(in.UserAnswer)
	if err != nil {
		return SubmitResult{}, err
	}
	isCorrect := grading.Evaluate(userValue, in.CorrectAnswer)

	resp, err := s.model.Generate(ctx, llm.Request{
		System:    tutorSystem,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: FeedbackPrompt(in.ProblemText, in.CorrectAnswer, userValue, isCorrect)}},
		MaxTokens: proseMaxTokens,
	})
	if err != nil {
		return SubmitResult{}, err
	}
	feedback := CleanText(resp.Content)

	if err := s.store.RecordSubmission(ctx, Submission{
		SessionID:    in.SessionID,
		UserAnswer:   userValue,
		IsCorrect:    isCorrect,
		FeedbackText: feedback,
	}); err != nil {
		return SubmitResult{}, err
	}

	return SubmitResult{IsCorrect: isCorrect, Feedback: feedback}, nil
}
