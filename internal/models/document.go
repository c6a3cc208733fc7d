package models

// The three persisted documents. Each one is read and rewritten as a
// whole-file snapshot; slices keep insertion order.

// CourseDocument backs courses.json.
type CourseDocument struct {
	Courses []Course `json:"courses"`
	Members []Member `json:"members"`
}

// SignupDocument backs signups.json. The id counters live next to the
// records they number and are monotonic: ids are never reused, even
// after deletion.
type SignupDocument struct {
	SignupSheets []SignupSheet `json:"signupSheets"`
	Slots        []Slot        `json:"slots"`
	Signups      []Signup      `json:"signups"`
	NextSheetID  int           `json:"nextSheetId"`
	NextSlotID   int           `json:"nextSlotId"`
}

// GradeDocument backs grades.json.
type GradeDocument struct {
	Grades []Grade `json:"grades"`
}

// NewCourseDocument returns the seed snapshot for a fresh data directory.
func NewCourseDocument() *CourseDocument {
	return &CourseDocument{Courses: []Course{}, Members: []Member{}}
}

// NewSignupDocument returns the seed snapshot with counters at 1.
func NewSignupDocument() *SignupDocument {
	return &SignupDocument{
		SignupSheets: []SignupSheet{},
		Slots:        []Slot{},
		Signups:      []Signup{},
		NextSheetID:  1,
		NextSlotID:   1,
	}
}

// NewGradeDocument returns the seed snapshot for grades.
func NewGradeDocument() *GradeDocument {
	return &GradeDocument{Grades: []Grade{}}
}
