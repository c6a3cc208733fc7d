package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-signup-api/internal/dto"
	"github.com/noah-isme/course-signup-api/internal/models"
	appErrors "github.com/noah-isme/course-signup-api/pkg/errors"
	"github.com/noah-isme/course-signup-api/pkg/sanitize"
)

type signupDocStore interface {
	View(ctx context.Context, fn func(doc *models.SignupDocument) error) error
	Update(ctx context.Context, fn func(doc *models.SignupDocument) error) error
}

// SignupService owns the signup-sheet, slot and booking lifecycle: the
// sheet time window, one-slot-per-member-per-sheet, and slot capacity.
type SignupService struct {
	signups   signupDocStore
	courses   courseDocStore
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewSignupService constructs SignupService.
func NewSignupService(signups signupDocStore, courses courseDocStore, validate *validator.Validate, logger *zap.Logger) *SignupService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SignupService{
		signups:   signups,
		courses:   courses,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateSheet opens a signup sheet under an existing course. The
// not-before/not-after window is validated here and never re-checked by
// slot operations.
func (s *SignupService) CreateSheet(ctx context.Context, req dto.CreateSheetRequest) (*models.SignupSheet, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "missing required parameters")
	}

	termCode := sanitize.ClampIntValue(req.TermCode, models.TermCodeMin, models.TermCodeMax)
	section := sanitize.ClampIntValue(req.Section, models.SectionMin, models.SectionMax)
	assignmentName := sanitize.ClipString(req.AssignmentName, models.AssignmentNameMaxLen)
	if assignmentName == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "assignment name cannot be empty")
	}

	notBefore, okBefore := sanitize.ParseTimestamp(req.NotBefore)
	notAfter, okAfter := sanitize.ParseTimestamp(req.NotAfter)
	if !okBefore || !okAfter {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid timestamp format")
	}
	if !notBefore.Before(notAfter) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "not-before must be earlier than not-after")
	}

	exists, err := s.courseExists(ctx, termCode, section)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound,
			fmt.Sprintf("course with term code %d and section %d does not exist", termCode, section))
	}

	var sheet models.SignupSheet
	err = s.signups.Update(ctx, func(doc *models.SignupDocument) error {
		sheet = models.SignupSheet{
			ID:             doc.NextSheetID,
			TermCode:       termCode,
			Section:        section,
			AssignmentName: assignmentName,
			NotBefore:      notBefore,
			NotAfter:       notAfter,
			CreatedAt:      s.now().UTC(),
		}
		doc.SignupSheets = append(doc.SignupSheets, sheet)
		doc.NextSheetID++
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("signup sheet created", zap.Int("sheetId", sheet.ID), zap.Int("termCode", termCode))
	return &sheet, nil
}

// DeleteSheet removes a sheet and cascades to its slots and signup
// records. The id counters are never rewound.
func (s *SignupService) DeleteSheet(ctx context.Context, id int) error {
	err := s.signups.Update(ctx, func(doc *models.SignupDocument) error {
		idx := -1
		for i, sheet := range doc.SignupSheets {
			if sheet.ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return appErrors.Clone(appErrors.ErrNotFound, "signup sheet not found")
		}

		doc.SignupSheets = append(doc.SignupSheets[:idx], doc.SignupSheets[idx+1:]...)

		slots := doc.Slots[:0]
		for _, slot := range doc.Slots {
			if slot.SignupSheetID != id {
				slots = append(slots, slot)
			}
		}
		doc.Slots = slots

		signups := doc.Signups[:0]
		for _, su := range doc.Signups {
			if su.SignupSheetID != id {
				signups = append(signups, su)
			}
		}
		doc.Signups = signups
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("signup sheet deleted", zap.Int("sheetId", id))
	return nil
}

// ListSheets returns the sheets of one course.
func (s *SignupService) ListSheets(ctx context.Context, termCode, section int) ([]models.SignupSheet, error) {
	sheets := []models.SignupSheet{}
	err := s.signups.View(ctx, func(doc *models.SignupDocument) error {
		for _, sheet := range doc.SignupSheets {
			if sheet.TermCode == termCode && sheet.Section == section {
				sheets = append(sheets, sheet)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sheets, nil
}

// AddSlots generates a back-to-back batch: slot i starting at
// start + i*duration minutes. Slot times are not checked against the
// sheet window.
func (s *SignupService) AddSlots(ctx context.Context, sheetID int, req dto.AddSlotsRequest) ([]models.Slot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "missing required parameters")
	}

	start, ok := sanitize.ParseTimestamp(req.Start)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid timestamp format")
	}
	duration := sanitize.ClampIntValue(req.SlotDuration, models.SlotDurationMin, models.SlotDurationMax)
	numSlots := sanitize.ClampIntValue(req.NumSlots, models.NumSlotsMin, models.NumSlotsMax)
	maxMembers := sanitize.ClampIntValue(req.MaxMembers, models.MaxMembersMin, models.MaxMembersMax)

	var created []models.Slot
	err := s.signups.Update(ctx, func(doc *models.SignupDocument) error {
		if findSheet(doc, sheetID) == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "signup sheet not found")
		}

		createdAt := s.now().UTC()
		created = make([]models.Slot, 0, numSlots)
		for i := 0; i < numSlots; i++ {
			slot := models.Slot{
				ID:              doc.NextSlotID,
				SignupSheetID:   sheetID,
				StartTime:       start.Add(time.Duration(i*duration) * time.Minute),
				Duration:        duration,
				MaxMembers:      maxMembers,
				SignedUpMembers: []string{},
				CreatedAt:       createdAt,
			}
			doc.Slots = append(doc.Slots, slot)
			created = append(created, slot)
			doc.NextSlotID++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("slots added", zap.Int("sheetId", sheetID), zap.Int("count", len(created)))
	return created, nil
}

// ListSlots returns the slots of one sheet.
func (s *SignupService) ListSlots(ctx context.Context, sheetID int) ([]models.Slot, error) {
	slots := []models.Slot{}
	err := s.signups.View(ctx, func(doc *models.SignupDocument) error {
		for _, slot := range doc.Slots {
			if slot.SignupSheetID == sheetID {
				slots = append(slots, slot)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// SlotMembers joins one slot with the roster records of its occupants,
// preserving signup order. Occupants missing from the roster (signup
// does not require membership) are skipped.
func (s *SignupService) SlotMembers(ctx context.Context, slotID int) (*dto.SlotMembersResult, error) {
	var (
		slot  *models.Slot
		sheet *models.SignupSheet
	)
	err := s.signups.View(ctx, func(doc *models.SignupDocument) error {
		for i := range doc.Slots {
			if doc.Slots[i].ID == slotID {
				cp := doc.Slots[i]
				slot = &cp
				break
			}
		}
		if slot == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "slot not found")
		}
		if sh := findSheet(doc, slot.SignupSheetID); sh != nil {
			cp := *sh
			sheet = &cp
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &dto.SlotMembersResult{Slot: *slot, Members: []models.Member{}}
	if sheet == nil || len(slot.SignedUpMembers) == 0 {
		return result, nil
	}

	err = s.courses.View(ctx, func(doc *models.CourseDocument) error {
		roster := make(map[string]models.Member)
		for _, m := range doc.Members {
			if m.TermCode == sheet.TermCode && m.Section == sheet.Section {
				roster[m.MemberID] = m
			}
		}
		for _, id := range slot.SignedUpMembers {
			if m, ok := roster[id]; ok {
				result.Members = append(result.Members, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateSlot applies each present field independently. An invalid
// startTime is ignored rather than rejected; shrinking maxMembers below
// the occupant count is rejected with the occupant list echoed back and
// nothing persisted.
func (s *SignupService) UpdateSlot(ctx context.Context, slotID int, req dto.UpdateSlotRequest) (*dto.SlotUpdateResult, error) {
	var updated models.Slot
	err := s.signups.Update(ctx, func(doc *models.SignupDocument) error {
		var slot *models.Slot
		for i := range doc.Slots {
			if doc.Slots[i].ID == slotID {
				slot = &doc.Slots[i]
				break
			}
		}
		if slot == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "slot not found")
		}

		if req.StartTime != nil {
			if t, ok := sanitize.ParseTimestamp(*req.StartTime); ok {
				slot.StartTime = t
			}
		}
		if req.Duration != nil {
			slot.Duration = sanitize.ClampIntValue(*req.Duration, models.SlotDurationMin, models.SlotDurationMax)
		}
		if req.MaxMembers != nil {
			newMax := sanitize.ClampIntValue(*req.MaxMembers, models.MaxMembersMin, models.MaxMembersMax)
			if len(slot.SignedUpMembers) > newMax {
				return appErrors.WithDetails(appErrors.ErrValidation,
					"cannot reduce max members below current signup count", slot.SignedUpMembers)
			}
			slot.MaxMembers = newMax
		}

		updated = *slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &dto.SlotUpdateResult{Message: "slot updated successfully", Slot: updated}
	if len(updated.SignedUpMembers) > 0 {
		result.SignedUpMembers = updated.SignedUpMembers
	}
	return result, nil
}

// Signup books a member into a slot. The gates run in a fixed order:
// sheet exists, slot belongs to sheet, window has started, window has
// not ended, member holds no slot on this sheet, slot has capacity.
// Booking at exactly notBefore or notAfter is allowed.
func (s *SignupService) Signup(ctx context.Context, sheetID int, req dto.SignupRequest) (*models.Slot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "missing required parameters")
	}

	memberID := sanitize.ClipString(req.MemberID, models.MemberIDLen)
	if len(memberID) != models.MemberIDLen {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid member ID format")
	}
	slotID := sanitize.ClampIntValue(req.SlotID, models.SlotIDMin, models.SlotIDMax)

	var booked models.Slot
	err := s.signups.Update(ctx, func(doc *models.SignupDocument) error {
		sheet := findSheet(doc, sheetID)
		if sheet == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "signup sheet not found")
		}

		var slot *models.Slot
		for i := range doc.Slots {
			if doc.Slots[i].ID == slotID && doc.Slots[i].SignupSheetID == sheetID {
				slot = &doc.Slots[i]
				break
			}
		}
		if slot == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "slot not found in this signup sheet")
		}

		now := s.now()
		if now.Before(sheet.NotBefore) {
			return appErrors.Clone(appErrors.ErrValidation, "signup period has not started yet")
		}
		if now.After(sheet.NotAfter) {
			return appErrors.Clone(appErrors.ErrValidation, "signup period has ended")
		}

		for i := range doc.Slots {
			if doc.Slots[i].SignupSheetID == sheetID && doc.Slots[i].HasMember(memberID) {
				return appErrors.Clone(appErrors.ErrValidation, "member has already signed up for this assignment")
			}
		}

		if len(slot.SignedUpMembers) >= slot.MaxMembers {
			return appErrors.Clone(appErrors.ErrValidation, "this slot is full")
		}

		slot.SignedUpMembers = append(slot.SignedUpMembers, memberID)
		doc.Signups = append(doc.Signups, models.Signup{
			SignupSheetID: sheetID,
			SlotID:        slotID,
			MemberID:      memberID,
			SignedUpAt:    now.UTC(),
		})
		booked = *slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("member signed up", zap.Int("sheetId", sheetID), zap.Int("slotId", slotID), zap.String("memberId", memberID))
	return &booked, nil
}

// RemoveSignup frees the member's slot on a sheet. Removal carries no
// time-window check; a booking can always be released.
func (s *SignupService) RemoveSignup(ctx context.Context, sheetID int, rawMemberID string) (*models.Slot, error) {
	memberID := sanitize.ClipString(rawMemberID, models.MemberIDLen)

	var freed models.Slot
	err := s.signups.Update(ctx, func(doc *models.SignupDocument) error {
		var slot *models.Slot
		for i := range doc.Slots {
			if doc.Slots[i].SignupSheetID == sheetID && doc.Slots[i].HasMember(memberID) {
				slot = &doc.Slots[i]
				break
			}
		}
		if slot == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "signup not found")
		}

		kept := make([]string, 0, len(slot.SignedUpMembers))
		for _, id := range slot.SignedUpMembers {
			if id != memberID {
				kept = append(kept, id)
			}
		}
		slot.SignedUpMembers = kept

		signups := doc.Signups[:0]
		for _, su := range doc.Signups {
			if su.SignupSheetID == sheetID && su.MemberID == memberID {
				continue
			}
			signups = append(signups, su)
		}
		doc.Signups = signups

		freed = *slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("signup removed", zap.Int("sheetId", sheetID), zap.String("memberId", memberID))
	return &freed, nil
}

func (s *SignupService) courseExists(ctx context.Context, termCode, section int) (bool, error) {
	found := false
	err := s.courses.View(ctx, func(doc *models.CourseDocument) error {
		found = courseExists(doc, termCode, section)
		return nil
	})
	return found, err
}

func findSheet(doc *models.SignupDocument, id int) *models.SignupSheet {
	for i := range doc.SignupSheets {
		if doc.SignupSheets[i].ID == id {
			return &doc.SignupSheets[i]
		}
	}
	return nil
}
