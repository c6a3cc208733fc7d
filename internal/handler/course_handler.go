package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-signup-api/internal/dto"
	"github.com/noah-isme/course-signup-api/internal/models"
	appErrors "github.com/noah-isme/course-signup-api/pkg/errors"
	"github.com/noah-isme/course-signup-api/pkg/response"
)

type courseService interface {
	Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	Delete(ctx context.Context, termCode, section int) error
	AddMembers(ctx context.Context, termCode, section int, req dto.AddMembersRequest) (*dto.AddMembersResult, error)
	ListMembers(ctx context.Context, termCode, section int, role string) ([]models.Member, error)
	DeleteMembers(ctx context.Context, termCode, section int, req dto.DeleteMembersRequest) (*dto.DeleteMembersResult, error)
}

// CourseHandler exposes course and roster endpoints.
type CourseHandler struct {
	courses courseService
}

// NewCourseHandler constructs handler.
func NewCourseHandler(courses courseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// Create handles POST /api/courses.
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"message": "course created successfully", "course": course})
}

// List handles GET /api/courses.
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Delete handles DELETE /api/courses/:termCode/:section? and cascades
// to the roster.
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courses.Delete(c.Request.Context(), termCodeParam(c), sectionParam(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "course deleted successfully"})
}

// AddMembers handles POST /api/courses/:termCode/:section?/members.
func (h *CourseHandler) AddMembers(c *gin.Context) {
	var req dto.AddMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.courses.AddMembers(c.Request.Context(), termCodeParam(c), sectionParam(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ListMembers handles GET /api/courses/:termCode/:section?/members with
// an optional role filter.
func (h *CourseHandler) ListMembers(c *gin.Context) {
	members, err := h.courses.ListMembers(c.Request.Context(), termCodeParam(c), sectionParam(c), c.Query("role"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, members)
}

// DeleteMembers handles DELETE /api/courses/:termCode/:section?/members.
func (h *CourseHandler) DeleteMembers(c *gin.Context) {
	var req dto.DeleteMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.courses.DeleteMembers(c.Request.Context(), termCodeParam(c), sectionParam(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
