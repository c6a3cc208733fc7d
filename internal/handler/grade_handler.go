package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-signup-api/internal/dto"
	"github.com/noah-isme/course-signup-api/internal/models"
	appErrors "github.com/noah-isme/course-signup-api/pkg/errors"
	"github.com/noah-isme/course-signup-api/pkg/response"
	"github.com/noah-isme/course-signup-api/pkg/sanitize"
)

type gradeService interface {
	Upsert(ctx context.Context, req dto.UpsertGradeRequest) (*dto.GradeResult, error)
	Get(ctx context.Context, memberID string, signupSheetID int) (*models.Grade, error)
}

// GradeHandler exposes grade endpoints.
type GradeHandler struct {
	grades gradeService
}

// NewGradeHandler constructs handler.
func NewGradeHandler(grades gradeService) *GradeHandler {
	return &GradeHandler{grades: grades}
}

// Upsert handles POST /api/grades. A resubmission overwrites and the
// response reports the previous value.
func (h *GradeHandler) Upsert(c *gin.Context) {
	var req dto.UpsertGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.grades.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Get handles GET /api/grades/:memberId/:signupSheetId.
func (h *GradeHandler) Get(c *gin.Context) {
	sheetID := sanitize.ClampInt(c.Param("signupSheetId"), models.SheetIDMin, models.SheetIDMax, 0)
	grade, err := h.grades.Get(c.Request.Context(), c.Param("memberId"), sheetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grade)
}
