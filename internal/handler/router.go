package handler

import "github.com/gin-gonic/gin"

// Handlers groups the REST surface of the service.
type Handlers struct {
	Courses *CourseHandler
	Sheets  *SheetHandler
	Slots   *SlotHandler
	Grades  *GradeHandler
}

// Register wires the REST routes. The section path segment is optional,
// so course-scoped routes are registered in both shapes; param names
// must stay consistent per position or gin rejects the tree.
func Register(r *gin.Engine, h Handlers) {
	api := r.Group("/api")

	api.POST("/courses", h.Courses.Create)
	api.GET("/courses", h.Courses.List)
	api.DELETE("/courses/:termCode", h.Courses.Delete)
	api.DELETE("/courses/:termCode/:section", h.Courses.Delete)

	api.POST("/courses/:termCode/members", h.Courses.AddMembers)
	api.POST("/courses/:termCode/:section/members", h.Courses.AddMembers)
	api.GET("/courses/:termCode/members", h.Courses.ListMembers)
	api.GET("/courses/:termCode/:section/members", h.Courses.ListMembers)
	api.DELETE("/courses/:termCode/members", h.Courses.DeleteMembers)
	api.DELETE("/courses/:termCode/:section/members", h.Courses.DeleteMembers)

	api.GET("/courses/:termCode/signupsheets", h.Sheets.ListForCourse)
	api.GET("/courses/:termCode/:section/signupsheets", h.Sheets.ListForCourse)

	api.POST("/signupsheets", h.Sheets.Create)
	api.DELETE("/signupsheets/:id", h.Sheets.Delete)
	api.POST("/signupsheets/:id/slots", h.Sheets.AddSlots)
	api.GET("/signupsheets/:id/slots", h.Sheets.ListSlots)
	api.POST("/signupsheets/:id/signup", h.Sheets.Signup)
	api.DELETE("/signupsheets/:id/signup/:memberId", h.Sheets.RemoveSignup)

	api.PUT("/slots/:id", h.Slots.Update)
	api.GET("/slots/:id/members", h.Slots.Members)

	api.POST("/grades", h.Grades.Upsert)
	api.GET("/grades/:memberId/:signupSheetId", h.Grades.Get)
}
