package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/course-signup-api/internal/dto"
	appErrors "github.com/noah-isme/course-signup-api/pkg/errors"
)

func newGradeService(grades *gradeDocStub) *GradeService {
	svc := NewGradeService(grades, nil, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestUpsertGradeInsertThenOverwrite(t *testing.T) {
	grades := &gradeDocStub{}
	svc := newGradeService(grades)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, dto.UpsertGradeRequest{
		MemberID: "12345678", SignupSheetID: 1, Grade: 85, Comment: "good work",
	})
	require.NoError(t, err)
	assert.Equal(t, "grade recorded successfully", first.Message)
	assert.Nil(t, first.OriginalGrade)
	assert.Equal(t, 85, first.Grade.Grade)

	second, err := svc.Upsert(ctx, dto.UpsertGradeRequest{
		MemberID: "12345678", SignupSheetID: 1, Grade: 92, Comment: "revised",
	})
	require.NoError(t, err)
	assert.Equal(t, "grade updated successfully", second.Message)
	require.NotNil(t, second.OriginalGrade)
	assert.Equal(t, 85, *second.OriginalGrade)

	require.Len(t, grades.doc.Grades, 1)
	assert.Equal(t, 92, grades.doc.Grades[0].Grade)
	assert.Equal(t, "revised", grades.doc.Grades[0].Comment)
}

func TestUpsertGradeSeparateKeys(t *testing.T) {
	grades := &gradeDocStub{}
	svc := newGradeService(grades)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, dto.UpsertGradeRequest{MemberID: "12345678", SignupSheetID: 1, Grade: 70})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, dto.UpsertGradeRequest{MemberID: "12345678", SignupSheetID: 2, Grade: 80})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, dto.UpsertGradeRequest{MemberID: "87654321", SignupSheetID: 1, Grade: 90})
	require.NoError(t, err)

	assert.Len(t, grades.doc.Grades, 3)
}

func TestUpsertGradeSanitizesInput(t *testing.T) {
	grades := &gradeDocStub{}
	svc := newGradeService(grades)

	result, err := svc.Upsert(context.Background(), dto.UpsertGradeRequest{
		MemberID:      "123456789999",
		SignupSheetID: 1,
		Grade:         250,
		Comment:       strings.Repeat("x", 600),
	})
	require.NoError(t, err)

	assert.Equal(t, "12345678", result.Grade.MemberID)
	assert.Equal(t, 100, result.Grade.Grade)
	assert.Len(t, result.Grade.Comment, 500)
	assert.Equal(t, testNow, result.Grade.GradedAt)
}

func TestGetGrade(t *testing.T) {
	grades := &gradeDocStub{}
	svc := newGradeService(grades)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, dto.UpsertGradeRequest{MemberID: "12345678", SignupSheetID: 3, Grade: 88, Comment: "ok"})
	require.NoError(t, err)

	grade, err := svc.Get(ctx, "12345678", 3)
	require.NoError(t, err)
	assert.Equal(t, 88, grade.Grade)
	assert.Equal(t, "ok", grade.Comment)
}

func TestGetGradeMissing(t *testing.T) {
	svc := newGradeService(&gradeDocStub{})

	_, err := svc.Get(context.Background(), "12345678", 1)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "grade not found", appErr.Message)
}
