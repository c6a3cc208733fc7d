package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-signup-api/internal/dto"
	appErrors "github.com/noah-isme/course-signup-api/pkg/errors"
	"github.com/noah-isme/course-signup-api/pkg/response"
)

type slotService interface {
	UpdateSlot(ctx context.Context, slotID int, req dto.UpdateSlotRequest) (*dto.SlotUpdateResult, error)
	SlotMembers(ctx context.Context, slotID int) (*dto.SlotMembersResult, error)
}

// SlotHandler exposes single-slot endpoints.
type SlotHandler struct {
	slots slotService
}

// NewSlotHandler constructs handler.
func NewSlotHandler(slots slotService) *SlotHandler {
	return &SlotHandler{slots: slots}
}

// Update handles PUT /api/slots/:id. Fields update independently.
func (h *SlotHandler) Update(c *gin.Context) {
	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.slots.UpdateSlot(c.Request.Context(), slotIDParam(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Members handles GET /api/slots/:id/members, joining occupants with
// their roster records.
func (h *SlotHandler) Members(c *gin.Context) {
	result, err := h.slots.SlotMembers(c.Request.Context(), slotIDParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
