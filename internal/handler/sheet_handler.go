package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-signup-api/internal/dto"
	"github.com/noah-isme/course-signup-api/internal/models"
	appErrors "github.com/noah-isme/course-signup-api/pkg/errors"
	"github.com/noah-isme/course-signup-api/pkg/response"
)

type sheetService interface {
	CreateSheet(ctx context.Context, req dto.CreateSheetRequest) (*models.SignupSheet, error)
	DeleteSheet(ctx context.Context, id int) error
	ListSheets(ctx context.Context, termCode, section int) ([]models.SignupSheet, error)
	AddSlots(ctx context.Context, sheetID int, req dto.AddSlotsRequest) ([]models.Slot, error)
	ListSlots(ctx context.Context, sheetID int) ([]models.Slot, error)
	Signup(ctx context.Context, sheetID int, req dto.SignupRequest) (*models.Slot, error)
	RemoveSignup(ctx context.Context, sheetID int, memberID string) (*models.Slot, error)
}

// SheetHandler exposes signup-sheet, slot-batch and booking endpoints.
type SheetHandler struct {
	sheets sheetService
}

// NewSheetHandler constructs handler.
func NewSheetHandler(sheets sheetService) *SheetHandler {
	return &SheetHandler{sheets: sheets}
}

// Create handles POST /api/signupsheets.
func (h *SheetHandler) Create(c *gin.Context) {
	var req dto.CreateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	sheet, err := h.sheets.CreateSheet(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"message": "signup sheet created successfully", "signupSheet": sheet})
}

// Delete handles DELETE /api/signupsheets/:id and cascades to slots and
// signup records.
func (h *SheetHandler) Delete(c *gin.Context) {
	if err := h.sheets.DeleteSheet(c.Request.Context(), sheetIDParam(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "signup sheet deleted successfully"})
}

// ListForCourse handles GET /api/courses/:termCode/:section?/signupsheets.
func (h *SheetHandler) ListForCourse(c *gin.Context) {
	sheets, err := h.sheets.ListSheets(c.Request.Context(), termCodeParam(c), sectionParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sheets)
}

// AddSlots handles POST /api/signupsheets/:id/slots.
func (h *SheetHandler) AddSlots(c *gin.Context) {
	var req dto.AddSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	slots, err := h.sheets.AddSlots(c.Request.Context(), sheetIDParam(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"message": "slots added successfully", "slots": slots})
}

// ListSlots handles GET /api/signupsheets/:id/slots.
func (h *SheetHandler) ListSlots(c *gin.Context) {
	slots, err := h.sheets.ListSlots(c.Request.Context(), sheetIDParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots)
}

// Signup handles POST /api/signupsheets/:id/signup.
func (h *SheetHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	slot, err := h.sheets.Signup(c.Request.Context(), sheetIDParam(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"message": "successfully signed up for slot", "slot": slot})
}

// RemoveSignup handles DELETE /api/signupsheets/:id/signup/:memberId.
// Removal is allowed at any time, even outside the signup window.
func (h *SheetHandler) RemoveSignup(c *gin.Context) {
	slot, err := h.sheets.RemoveSignup(c.Request.Context(), sheetIDParam(c), c.Param("memberId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "signup removed successfully", "slot": slot})
}
