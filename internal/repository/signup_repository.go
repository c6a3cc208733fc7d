package repository

import (
	"context"
	"sync"

	"github.com/noah-isme/course-signup-api/internal/models"
	"github.com/noah-isme/course-signup-api/internal/store"
)

// SignupRepository guards the signups document, which carries sheets,
// slots, signup records and both id counters.
type SignupRepository struct {
	snap *store.Snapshot
	mu   sync.Mutex
}

// NewSignupRepository opens (and seeds, if needed) signups.json.
func NewSignupRepository(dir string) (*SignupRepository, error) {
	snap, err := store.Open(dir, "signups.json", models.NewSignupDocument())
	if err != nil {
		return nil, err
	}
	return &SignupRepository{snap: snap}, nil
}

// SetObserver forwards snapshot instrumentation to the store.
func (r *SignupRepository) SetObserver(o store.Observer) {
	r.snap.SetObserver(o)
}

// View runs fn against the current snapshot without persisting changes.
func (r *SignupRepository) View(ctx context.Context, fn func(doc *models.SignupDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc models.SignupDocument
	if err := r.snap.Load(&doc); err != nil {
		return err
	}
	return fn(&doc)
}

// Update runs fn against the current snapshot and rewrites the whole
// document when fn succeeds. An error from fn leaves the file untouched.
func (r *SignupRepository) Update(ctx context.Context, fn func(doc *models.SignupDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc models.SignupDocument
	if err := r.snap.Load(&doc); err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return r.snap.Save(&doc)
}
