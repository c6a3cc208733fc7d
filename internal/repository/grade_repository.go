package repository

import (
	"context"
	"sync"

	"github.com/noah-isme/course-signup-api/internal/models"
	"github.com/noah-isme/course-signup-api/internal/store"
)

// GradeRepository guards the grades document.
type GradeRepository struct {
	snap *store.Snapshot
	mu   sync.Mutex
}

// NewGradeRepository opens (and seeds, if needed) grades.json.
func NewGradeRepository(dir string) (*GradeRepository, error) {
	snap, err := store.Open(dir, "grades.json", models.NewGradeDocument())
	if err != nil {
		return nil, err
	}
	return &GradeRepository{snap: snap}, nil
}

// SetObserver forwards snapshot instrumentation to the store.
func (r *GradeRepository) SetObserver(o store.Observer) {
	r.snap.SetObserver(o)
}

// View runs fn against the current snapshot without persisting changes.
func (r *GradeRepository) View(ctx context.Context, fn func(doc *models.GradeDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc models.GradeDocument
	if err := r.snap.Load(&doc); err != nil {
		return err
	}
	return fn(&doc)
}

// Update runs fn against the current snapshot and rewrites the whole
// document when fn succeeds. An error from fn leaves the file untouched.
func (r *GradeRepository) Update(ctx context.Context, fn func(doc *models.GradeDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc models.GradeDocument
	if err := r.snap.Load(&doc); err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return r.snap.Save(&doc)
}
