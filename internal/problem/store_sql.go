package problem

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLStore implements Store on database/sql. It works against both the
// sqlite and postgres schemas in internal/db.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) CreateSession(ctx context.Context, problemText string, correctAnswer float64) (Session, error) {
	if problemText == "" {
		return Session{}, fmt.Errorf("%w: empty problem text", ErrPersistence)
	}
	sess := Session{
		ID:            uuid.NewString(),
		ProblemText:   problemText,
		CorrectAnswer: correctAnswer,
		CreatedAt:     time.Now().Unix(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO problem_sessions (id, problem_text, correct_answer, created_at) VALUES ($1,$2,$3,$4)`,
		sess.ID, sess.ProblemText, sess.CorrectAnswer, sess.CreatedAt)
	if err != nil {
		return Session{}, fmt.Errorf("%w: create session: %v", ErrPersistence, err)
	}
	return sess, nil
}

func (s *SQLStore) RecordSubmission(ctx context.Context, sub Submission) error {
	if sub.CreatedAt == 0 {
		sub.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO problem_submissions (session_id, user_answer, is_correct, feedback_text, created_at) VALUES ($1,$2,$3,$4,$5)`,
		sub.SessionID, sub.UserAnswer, sub.IsCorrect, sub.FeedbackText, sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: record submission: %v", ErrPersistence, err)
	}
	return nil
}
