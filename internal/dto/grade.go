package dto

import "github.com/noah-isme/course-signup-api/internal/models"

// UpsertGradeRequest records or overwrites one grade per
// (memberId, signupSheetId).
type UpsertGradeRequest struct {
	MemberID      string `json:"memberId"`
	SignupSheetID int    `json:"signupSheetId"`
	Grade         int    `json:"grade"`
	Comment       string `json:"comment"`
}

// GradeResult reports an upsert; OriginalGrade carries the overwritten
// value when the submission replaced an existing record.
type GradeResult struct {
	Message       string       `json:"message"`
	Grade         models.Grade `json:"grade"`
	OriginalGrade *int         `json:"originalGrade,omitempty"`
}
