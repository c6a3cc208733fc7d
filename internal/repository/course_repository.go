package repository

import (
	"context"
	"sync"

	"github.com/noah-isme/course-signup-api/internal/models"
	"github.com/noah-isme/course-signup-api/internal/store"
)

// CourseRepository guards the courses document. One mutex spans every
// load-mutate-persist cycle, which closes the lost-update window the
// snapshot files would otherwise have.
type CourseRepository struct {
	snap *store.Snapshot
	mu   sync.Mutex
}

// NewCourseRepository opens (and seeds, if needed) courses.json.
func NewCourseRepository(dir string) (*CourseRepository, error) {
	snap, err := store.Open(dir, "courses.json", models.NewCourseDocument())
	if err != nil {
		return nil, err
	}
	return &CourseRepository{snap: snap}, nil
}

// SetObserver forwards snapshot instrumentation to the store.
func (r *CourseRepository) SetObserver(o store.Observer) {
	r.snap.SetObserver(o)
}

// View runs fn against the current snapshot without persisting changes.
func (r *CourseRepository) View(ctx context.Context, fn func(doc *models.CourseDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc models.CourseDocument
	if err := r.snap.Load(&doc); err != nil {
		return err
	}
	return fn(&doc)
}

// Update runs fn against the current snapshot and rewrites the whole
// document when fn succeeds. An error from fn leaves the file untouched.
func (r *CourseRepository) Update(ctx context.Context, fn func(doc *models.CourseDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc models.CourseDocument
	if err := r.snap.Load(&doc); err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return r.snap.Save(&doc)
}
