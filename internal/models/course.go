package models

import "time"

// Course identifies one offering of a course. The unique key is
// (TermCode, Section).
type Course struct {
	TermCode   int       `json:"termCode"`
	Section    int       `json:"section"`
	CourseName string    `json:"courseName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Member is one person on a course roster, keyed by
// (TermCode, Section, MemberID). MemberID is always exactly 8 characters.
type Member struct {
	TermCode  int       `json:"termCode"`
	Section   int       `json:"section"`
	MemberID  string    `json:"memberId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	AddedAt   time.Time `json:"addedAt"`
}

// Sanitization bounds shared by the course and signup services.
const (
	TermCodeMin = 1
	TermCodeMax = 9999
	SectionMin  = 1
	SectionMax  = 99

	CourseNameMaxLen = 100
	MemberIDLen      = 8
	NameMaxLen       = 200
	RoleMaxLen       = 10

	DefaultRole = "student"
)
