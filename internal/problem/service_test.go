package problem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathtutor/mathtutor-api/internal/grading"
	"github.com/mathtutor/mathtutor-api/internal/llm"
)

// fakeStore is an in-memory Store for tests.
type fakeStore struct {
	sessions   map[string]Session
	subs       []Submission
	failCreate bool
	failRecord bool
	nextID     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: map[string]Session{}}
}

func (s *fakeStore) CreateSession(_ context.Context, problemText string, correctAnswer float64) (Session, error) {
	if s.failCreate {
		return Session{}, fmt.Errorf("%w: connection refused", ErrPersistence)
	}
	s.nextID++
	sess := Session{
		ID:            fmt.Sprintf("session-%d", s.nextID),
		ProblemText:   problemText,
		CorrectAnswer: correctAnswer,
	}
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *fakeStore) RecordSubmission(_ context.Context, sub Submission) error {
	if s.failRecord {
		return fmt.Errorf("%w: constraint violation", ErrPersistence)
	}
	s.subs = append(s.subs, sub)
	return nil
}

func generatedJSON(text string, answer float64) json.RawMessage {
	b, _ := json.Marshal(map[string]any{"problem_text": text, "final_answer": answer})
	return b
}

func TestServiceGenerate(t *testing.T) {
	store := newFakeStore()
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: generatedJSON("Liam saves $2.50 each week. How much after 4 weeks?", 10),
	})
	svc := NewService(store, mock)

	sess, err := svc.Generate(context.Background(), "hard", "division")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 10.0, sess.CorrectAnswer)
	assert.Len(t, store.sessions, 1)

	// The constructed prompt embeds the hard-division policy text exactly once.
	require.Len(t, mock.Calls, 1)
	prompt := mock.Calls[0].Messages[0].Content
	assert.Equal(t, 1, strings.Count(prompt, DifficultyHard.Policy()))
	assert.Equal(t, 1, strings.Count(prompt, TypeDivision.Policy()))
}

func TestServiceGenerateFencedResponse(t *testing.T) {
	store := newFakeStore()
	fenced := "```json\n" + string(generatedJSON("How many legs on 3 spiders?", 24)) + "\n```"
	svc := NewService(store, llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)}))

	sess, err := svc.Generate(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 24.0, sess.CorrectAnswer)
}

func TestServiceGenerateInvalidConfig(t *testing.T) {
	store := newFakeStore()
	mock := llm.NewMockProvider()
	svc := NewService(store, mock)

	_, err := svc.Generate(context.Background(), "extreme", "")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Zero(t, mock.CallCount(), "config errors must not reach the model")

	_, err = svc.Generate(context.Background(), "", "algebra")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestServiceGenerateInvalidAIResponse(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"problem_text": "What is 2+2?", "final_answer": "four"}`),
	}))

	_, err := svc.Generate(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidAIResponse)
	assert.Empty(t, store.sessions, "nothing may persist on a bad structured response")
}

func TestServiceGenerateProviderFailure(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	}))

	_, err := svc.Generate(context.Background(), "", "")
	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
	assert.Empty(t, store.sessions)
}

func TestServiceGeneratePersistenceFailure(t *testing.T) {
	store := newFakeStore()
	store.failCreate = true
	svc := NewService(store, llm.NewMockProvider(llm.MockResponse{
		Content: generatedJSON("What is 5+5?", 10),
	}))

	_, err := svc.Generate(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestServiceHint(t *testing.T) {
	svc := NewService(newFakeStore(), llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("  Start by finding the total cost of the books. \n"),
	}))

	hint, err := svc.Hint(context.Background(), "Sarah has $45.50...")
	require.NoError(t, err)
	assert.Equal(t, "Start by finding the total cost of the books.", hint)

	_, err = svc.Hint(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestServiceSolution(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Step 1: ...\nFinal Answer: 7.1"),
	})
	svc := NewService(newFakeStore(), mock)

	sol, err := svc.Solution(context.Background(), "Sarah has $45.50...", 7.1)
	require.NoError(t, err)
	assert.Contains(t, sol, "Final Answer: 7.1")

	_, err = svc.Solution(context.Background(), "", 7.1)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestServiceSubmitRepeatedAttempts(t *testing.T) {
	store := newFakeStore()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Well done!")},
		llm.MockResponse{Content: json.RawMessage("Not quite, the answer is 7.1.")},
	)
	svc := NewService(store, mock)

	sess, err := store.CreateSession(context.Background(), "Sarah has $45.50...", 7.1)
	require.NoError(t, err)

	first, err := svc.Submit(context.Background(), SubmitInput{
		SessionID:     sess.ID,
		UserAnswer:    "7.095",
		CorrectAnswer: sess.CorrectAnswer,
		ProblemText:   sess.ProblemText,
	})
	require.NoError(t, err)
	assert.True(t, first.IsCorrect, "difference 0.005 is within tolerance")

	second, err := svc.Submit(context.Background(), SubmitInput{
		SessionID:     sess.ID,
		UserAnswer:    "8",
		CorrectAnswer: sess.CorrectAnswer,
		ProblemText:   sess.ProblemText,
	})
	require.NoError(t, err)
	assert.False(t, second.IsCorrect)

	require.Len(t, store.subs, 2)
	assert.Equal(t, sess.ID, store.subs[0].SessionID)
	assert.Equal(t, sess.ID, store.subs[1].SessionID)
	assert.True(t, store.subs[0].IsCorrect)
	assert.False(t, store.subs[1].IsCorrect)
}

func TestServiceSubmitInvalidAnswerFormat(t *testing.T) {
	store := newFakeStore()
	mock := llm.NewMockProvider()
	svc := NewService(store, mock)

	_, err := svc.Submit(context.Background(), SubmitInput{
		SessionID:     "session-1",
		UserAnswer:    "abc",
		CorrectAnswer: 7.1,
		ProblemText:   "Sarah has $45.50...",
	})
	assert.ErrorIs(t, err, grading.ErrInvalidAnswerFormat)
	assert.Zero(t, mock.CallCount(), "unparseable answers must not reach the model")
	assert.Empty(t, store.subs)
}

func TestServiceSubmitMissingFields(t *testing.T) {
	svc := NewService(newFakeStore(), llm.NewMockProvider())

	for _, in := range []SubmitInput{
		{UserAnswer: "7", CorrectAnswer: 7, ProblemText: "p"},
		{SessionID: "s", CorrectAnswer: 7, ProblemText: "p"},
		{SessionID: "s", UserAnswer: "7", CorrectAnswer: 7},
	} {
		_, err := svc.Submit(context.Background(), in)
		if !errors.Is(err, ErrMissingFields) {
			t.Errorf("Submit(%+v) err = %v, want ErrMissingFields", in, err)
		}
	}
}

func TestServiceSubmitPersistenceFailure(t *testing.T) {
	store := newFakeStore()
	store.failRecord = true
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Great work!")})
	svc := NewService(store, mock)

	_, err := svc.Submit(context.Background(), SubmitInput{
		SessionID:     "session-1",
		UserAnswer:    "7.1",
		CorrectAnswer: 7.1,
		ProblemText:   "p",
	})
	assert.ErrorIs(t, err, ErrPersistence)
	// The model call already happened; its feedback is discarded.
	assert.Equal(t, 1, mock.CallCount())
}
