package service

import (
	"context"
	"encoding/json"

	"github.com/noah-isme/course-signup-api/internal/models"
)

// In-memory stand-ins for the document repositories. Update applies fn
// to a deep copy and only commits on success, mirroring the real
// load-mutate-persist behaviour where an error skips the save.

type courseDocStub struct {
	doc     models.CourseDocument
	ViewErr error
	saves   int
}

func (s *courseDocStub) View(ctx context.Context, fn func(doc *models.CourseDocument) error) error {
	if s.ViewErr != nil {
		return s.ViewErr
	}
	cp := s.doc
	return fn(&cp)
}

func (s *courseDocStub) Update(ctx context.Context, fn func(doc *models.CourseDocument) error) error {
	var cp models.CourseDocument
	deepCopy(&cp, s.doc)
	if err := fn(&cp); err != nil {
		return err
	}
	s.doc = cp
	s.saves++
	return nil
}

type signupDocStub struct {
	doc   models.SignupDocument
	saves int
}

func (s *signupDocStub) View(ctx context.Context, fn func(doc *models.SignupDocument) error) error {
	cp := s.doc
	return fn(&cp)
}

func (s *signupDocStub) Update(ctx context.Context, fn func(doc *models.SignupDocument) error) error {
	var cp models.SignupDocument
	deepCopy(&cp, s.doc)
	if err := fn(&cp); err != nil {
		return err
	}
	s.doc = cp
	s.saves++
	return nil
}

type gradeDocStub struct {
	doc   models.GradeDocument
	saves int
}

func (s *gradeDocStub) View(ctx context.Context, fn func(doc *models.GradeDocument) error) error {
	cp := s.doc
	return fn(&cp)
}

func (s *gradeDocStub) Update(ctx context.Context, fn func(doc *models.GradeDocument) error) error {
	var cp models.GradeDocument
	deepCopy(&cp, s.doc)
	if err := fn(&cp); err != nil {
		return err
	}
	s.doc = cp
	s.saves++
	return nil
}

func deepCopy(dst, src interface{}) {
	data, err := json.Marshal(src)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		panic(err)
	}
}

func newSignupDocStub() *signupDocStub {
	return &signupDocStub{doc: *models.NewSignupDocument()}
}
