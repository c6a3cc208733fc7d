package models

import "time"

// Grade records one result per (MemberID, SignupSheetID); resubmission
// overwrites in place.
type Grade struct {
	MemberID      string    `json:"memberId"`
	SignupSheetID int       `json:"signupSheetId"`
	Grade         int       `json:"grade"`
	Comment       string    `json:"comment"`
	GradedAt      time.Time `json:"gradedAt"`
}

const (
	GradeMin      = 0
	GradeMax      = 100
	CommentMaxLen = 500
)
