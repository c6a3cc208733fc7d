package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-signup-api/internal/dto"
	"github.com/noah-isme/course-signup-api/internal/models"
	appErrors "github.com/noah-isme/course-signup-api/pkg/errors"
	"github.com/noah-isme/course-signup-api/pkg/sanitize"
)

type gradeDocStore interface {
	View(ctx context.Context, fn func(doc *models.GradeDocument) error) error
	Update(ctx context.Context, fn func(doc *models.GradeDocument) error) error
}

// GradeService upserts one grade per (memberId, signupSheetId).
type GradeService struct {
	grades    gradeDocStore
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewGradeService constructs GradeService.
func NewGradeService(grades gradeDocStore, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{
		grades:    grades,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Upsert records a grade, overwriting any existing record for the same
// key. The result reports the overwritten value so a resubmission is
// visible to the caller.
func (s *GradeService) Upsert(ctx context.Context, req dto.UpsertGradeRequest) (*dto.GradeResult, error) {
	grade := models.Grade{
		MemberID:      sanitize.ClipString(req.MemberID, models.MemberIDLen),
		SignupSheetID: req.SignupSheetID,
		Grade:         sanitize.ClampIntValue(req.Grade, models.GradeMin, models.GradeMax),
		Comment:       sanitize.ClipString(req.Comment, models.CommentMaxLen),
		GradedAt:      s.now().UTC(),
	}

	result := &dto.GradeResult{}
	err := s.grades.Update(ctx, func(doc *models.GradeDocument) error {
		for i := range doc.Grades {
			existing := &doc.Grades[i]
			if existing.MemberID == grade.MemberID && existing.SignupSheetID == grade.SignupSheetID {
				original := existing.Grade
				*existing = grade
				result.Message = "grade updated successfully"
				result.OriginalGrade = &original
				return nil
			}
		}
		doc.Grades = append(doc.Grades, grade)
		result.Message = "grade recorded successfully"
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Grade = grade
	s.logger.Info("grade upserted",
		zap.String("memberId", grade.MemberID),
		zap.Int("signupSheetId", grade.SignupSheetID),
		zap.Bool("overwrite", result.OriginalGrade != nil))
	return result, nil
}

// Get fetches the grade for one (memberId, signupSheetId) key.
func (s *GradeService) Get(ctx context.Context, rawMemberID string, signupSheetID int) (*models.Grade, error) {
	memberID := sanitize.ClipString(rawMemberID, models.MemberIDLen)

	var found *models.Grade
	err := s.grades.View(ctx, func(doc *models.GradeDocument) error {
		for i := range doc.Grades {
			if doc.Grades[i].MemberID == memberID && doc.Grades[i].SignupSheetID == signupSheetID {
				cp := doc.Grades[i]
				found = &cp
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "grade not found")
	}
	return found, nil
}
