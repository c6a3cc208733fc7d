package dto

import "github.com/noah-isme/course-signup-api/internal/models"

// CreateSheetRequest opens a signup sheet for an existing course.
// Timestamps arrive as strings in any supported client format.
type CreateSheetRequest struct {
	TermCode       int    `json:"termCode" validate:"required"`
	Section        int    `json:"section"`
	AssignmentName string `json:"assignmentName" validate:"required"`
	NotBefore      string `json:"notBefore" validate:"required"`
	NotAfter       string `json:"notAfter" validate:"required"`
}

// AddSlotsRequest generates a contiguous batch of slots: slot i starts
// at Start + i*SlotDuration minutes.
type AddSlotsRequest struct {
	Start        string `json:"start" validate:"required"`
	SlotDuration int    `json:"slotDuration" validate:"required"`
	NumSlots     int    `json:"numSlots" validate:"required"`
	MaxMembers   int    `json:"maxMembers" validate:"required"`
}

// UpdateSlotRequest updates slot fields independently; absent fields
// are left alone.
type UpdateSlotRequest struct {
	StartTime  *string `json:"startTime"`
	Duration   *int    `json:"duration"`
	MaxMembers *int    `json:"maxMembers"`
}

// SlotUpdateResult echoes the updated slot; the occupant list rides
// along whenever the slot is non-empty.
type SlotUpdateResult struct {
	Message         string      `json:"message"`
	Slot            models.Slot `json:"slot"`
	SignedUpMembers []string    `json:"signedUpMembers,omitempty"`
}

// SignupRequest books one member into one slot of a sheet.
type SignupRequest struct {
	SlotID   int    `json:"slotId" validate:"required"`
	MemberID string `json:"memberId" validate:"required"`
}

// SlotMembersResult joins a slot with the roster records of its
// occupants, in signup order.
type SlotMembersResult struct {
	Slot    models.Slot     `json:"slot"`
	Members []models.Member `json:"members"`
}
