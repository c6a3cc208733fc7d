package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-signup-api/internal/dto"
	"github.com/noah-isme/course-signup-api/internal/models"
	appErrors "github.com/noah-isme/course-signup-api/pkg/errors"
	"github.com/noah-isme/course-signup-api/pkg/sanitize"
)

type courseDocStore interface {
	View(ctx context.Context, fn func(doc *models.CourseDocument) error) error
	Update(ctx context.Context, fn func(doc *models.CourseDocument) error) error
}

// CourseService owns course and roster rules: key uniqueness, member id
// format, cascade on delete.
type CourseService struct {
	courses   courseDocStore
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewCourseService constructs CourseService.
func NewCourseService(courses courseDocStore, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{
		courses:   courses,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Create registers a new course keyed by (termCode, section).
func (s *CourseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "termCode and courseName are required")
	}

	termCode := sanitize.ClampIntValue(req.TermCode, models.TermCodeMin, models.TermCodeMax)
	section := sanitize.ClampIntValue(req.Section, models.SectionMin, models.SectionMax)
	courseName := sanitize.ClipString(req.CourseName, models.CourseNameMaxLen)
	if courseName == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "course name cannot be empty")
	}

	course := models.Course{
		TermCode:   termCode,
		Section:    section,
		CourseName: courseName,
		CreatedAt:  s.now().UTC(),
	}

	err := s.courses.Update(ctx, func(doc *models.CourseDocument) error {
		for _, c := range doc.Courses {
			if c.TermCode == termCode && c.Section == section {
				return appErrors.Clone(appErrors.ErrConflict,
					fmt.Sprintf("course with term code %d and section %d already exists", termCode, section))
			}
		}
		doc.Courses = append(doc.Courses, course)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("course created", zap.Int("termCode", termCode), zap.Int("section", section))
	return &course, nil
}

// List returns every course in insertion order.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.courses.View(ctx, func(doc *models.CourseDocument) error {
		courses = append([]models.Course{}, doc.Courses...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// Delete removes a course and cascades to its roster.
func (s *CourseService) Delete(ctx context.Context, termCode, section int) error {
	err := s.courses.Update(ctx, func(doc *models.CourseDocument) error {
		idx := -1
		for i, c := range doc.Courses {
			if c.TermCode == termCode && c.Section == section {
				idx = i
				break
			}
		}
		if idx == -1 {
			return appErrors.Clone(appErrors.ErrNotFound,
				fmt.Sprintf("course with term code %d and section %d does not exist", termCode, section))
		}

		doc.Courses = append(doc.Courses[:idx], doc.Courses[idx+1:]...)

		kept := doc.Members[:0]
		for _, m := range doc.Members {
			if m.TermCode != termCode || m.Section != section {
				kept = append(kept, m)
			}
		}
		doc.Members = kept
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("course deleted", zap.Int("termCode", termCode), zap.Int("section", section))
	return nil
}

// Exists reports whether a course with the given key is registered.
// Used by the signup service before opening a sheet.
func (s *CourseService) Exists(ctx context.Context, termCode, section int) (bool, error) {
	found := false
	err := s.courses.View(ctx, func(doc *models.CourseDocument) error {
		for _, c := range doc.Courses {
			if c.TermCode == termCode && c.Section == section {
				found = true
				break
			}
		}
		return nil
	})
	return found, err
}

// AddMembers rosters a batch onto an existing course. Individual
// rejections (bad id format, duplicate key) go into IgnoredIDs; only a
// missing course or an empty batch fails the request.
func (s *CourseService) AddMembers(ctx context.Context, termCode, section int, req dto.AddMembersRequest) (*dto.AddMembersResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "members array is required and must not be empty")
	}

	result := &dto.AddMembersResult{IgnoredIDs: []string{}}
	addedAt := s.now().UTC()

	err := s.courses.Update(ctx, func(doc *models.CourseDocument) error {
		if !courseExists(doc, termCode, section) {
			return appErrors.Clone(appErrors.ErrNotFound,
				fmt.Sprintf("course with term code %d and section %d does not exist", termCode, section))
		}

		for _, input := range req.Members {
			memberID := sanitize.ClipString(input.MemberID, models.MemberIDLen)
			if len(memberID) != models.MemberIDLen {
				if input.MemberID == "" {
					result.IgnoredIDs = append(result.IgnoredIDs, "invalid")
				} else {
					result.IgnoredIDs = append(result.IgnoredIDs, input.MemberID)
				}
				continue
			}
			if memberExists(doc, termCode, section, memberID) {
				result.IgnoredIDs = append(result.IgnoredIDs, memberID)
				continue
			}

			role := sanitize.ClipString(input.Role, models.RoleMaxLen)
			if role == "" {
				role = models.DefaultRole
			}
			doc.Members = append(doc.Members, models.Member{
				TermCode:  termCode,
				Section:   section,
				MemberID:  memberID,
				FirstName: sanitize.ClipString(input.FirstName, models.NameMaxLen),
				LastName:  sanitize.ClipString(input.LastName, models.NameMaxLen),
				Role:      role,
				AddedAt:   addedAt,
			})
			result.AddedCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Message = fmt.Sprintf("%d member(s) added successfully", result.AddedCount)
	return result, nil
}

// ListMembers returns the roster of one course, optionally narrowed to
// a role (case-insensitive exact match).
func (s *CourseService) ListMembers(ctx context.Context, termCode, section int, role string) ([]models.Member, error) {
	roleFilter := strings.ToLower(sanitize.ClipString(role, models.RoleMaxLen))

	members := []models.Member{}
	err := s.courses.View(ctx, func(doc *models.CourseDocument) error {
		for _, m := range doc.Members {
			if m.TermCode != termCode || m.Section != section {
				continue
			}
			if roleFilter != "" && strings.ToLower(m.Role) != roleFilter {
				continue
			}
			members = append(members, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

// DeleteMembers removes every listed member present on the course and
// reports the count actually removed; absent ids contribute nothing.
func (s *CourseService) DeleteMembers(ctx context.Context, termCode, section int, req dto.DeleteMembersRequest) (*dto.DeleteMembersResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "memberIds array is required and must not be empty")
	}

	targets := make(map[string]struct{}, len(req.MemberIDs))
	for _, id := range req.MemberIDs {
		targets[id] = struct{}{}
	}

	deleted := 0
	err := s.courses.Update(ctx, func(doc *models.CourseDocument) error {
		kept := doc.Members[:0]
		for _, m := range doc.Members {
			_, listed := targets[m.MemberID]
			if m.TermCode == termCode && m.Section == section && listed {
				deleted++
				continue
			}
			kept = append(kept, m)
		}
		doc.Members = kept
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.DeleteMembersResult{
		Message:      fmt.Sprintf("%d member(s) deleted successfully", deleted),
		DeletedCount: deleted,
	}, nil
}

func courseExists(doc *models.CourseDocument, termCode, section int) bool {
	for _, c := range doc.Courses {
		if c.TermCode == termCode && c.Section == section {
			return true
		}
	}
	return false
}

func memberExists(doc *models.CourseDocument, termCode, section int, memberID string) bool {
	for _, m := range doc.Members {
		if m.TermCode == termCode && m.Section == section && m.MemberID == memberID {
			return true
		}
	}
	return false
}
