package dto

// CreateCourseRequest creates one course; section defaults to 1.
type CreateCourseRequest struct {
	TermCode   int    `json:"termCode" validate:"required"`
	CourseName string `json:"courseName" validate:"required"`
	Section    int    `json:"section"`
}

// MemberInput is one roster candidate within an add-members call.
type MemberInput struct {
	MemberID  string `json:"memberId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// AddMembersRequest rosters a batch of members onto a course.
type AddMembersRequest struct {
	Members []MemberInput `json:"members" validate:"required,min=1,dive"`
}

// AddMembersResult reports the per-member outcome of a batch add.
// Rejected ids are reported, never turned into a request failure.
type AddMembersResult struct {
	Message    string   `json:"message"`
	AddedCount int      `json:"addedCount"`
	IgnoredIDs []string `json:"ignoredIds"`
}

// DeleteMembersRequest removes a batch of members from a course.
type DeleteMembersRequest struct {
	MemberIDs []string `json:"memberIds" validate:"required,min=1"`
}

// DeleteMembersResult reports how many members were actually removed.
type DeleteMembersResult struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deletedCount"`
}
