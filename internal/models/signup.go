package models

import "time"

// SignupSheet is a named, time-windowed container of bookable slots for
// one assignment under one course. The owning course is checked at
// creation time only; deleting the course later does not cascade here.
type SignupSheet struct {
	ID             int       `json:"id"`
	TermCode       int       `json:"termCode"`
	Section        int       `json:"section"`
	AssignmentName string    `json:"assignmentName"`
	NotBefore      time.Time `json:"notBefore"`
	NotAfter       time.Time `json:"notAfter"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Slot is one bookable time block under a signup sheet.
// SignedUpMembers is ordered and duplicate-free, and its length never
// exceeds MaxMembers.
type Slot struct {
	ID              int       `json:"id"`
	SignupSheetID   int       `json:"signupSheetId"`
	StartTime       time.Time `json:"startTime"`
	Duration        int       `json:"duration"`
	MaxMembers      int       `json:"maxMembers"`
	SignedUpMembers []string  `json:"signedUpMembers"`
	CreatedAt       time.Time `json:"createdAt"`
}

// HasMember reports whether the member occupies this slot.
func (s *Slot) HasMember(memberID string) bool {
	for _, id := range s.SignedUpMembers {
		if id == memberID {
			return true
		}
	}
	return false
}

// Signup mirrors one entry of Slot.SignedUpMembers as a standalone
// record. Both are mutated in the same critical section so they cannot
// diverge.
type Signup struct {
	SignupSheetID int       `json:"signupSheetId"`
	SlotID        int       `json:"slotId"`
	MemberID      string    `json:"memberId"`
	SignedUpAt    time.Time `json:"signedUpAt"`
}

// Bounds for sheet and slot parameters.
const (
	SheetIDMin = 1
	SheetIDMax = 999999
	SlotIDMin  = 1
	SlotIDMax  = 999999

	AssignmentNameMaxLen = 100

	SlotDurationMin = 1
	SlotDurationMax = 240
	NumSlotsMin     = 1
	NumSlotsMax     = 99
	MaxMembersMin   = 1
	MaxMembersMax   = 99
)
