package problem

import "context"

// Store is the persistence boundary for sessions and submissions. Both
// record kinds are append-only: there are no update or delete
// operations in this contract.
type Store interface {
	// CreateSession persists a new session and returns it with a newly
	// minted identifier. The problem text and answer are immutable for
	// the lifetime of the session.
	CreateSession(ctx context.Context, problemText string, correctAnswer float64) (Session, error)

	// RecordSubmission appends one attempt. The session is not checked
	// for existence first; the store's referential behavior decides
	// whether a write against an absent session is rejected.
	RecordSubmission(ctx context.Context, sub Submission) error
}
