package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-signup-api/internal/models"
	"github.com/noah-isme/course-signup-api/pkg/sanitize"
)

// Path parameter helpers. Numeric params are clamped the same way the
// body fields are; a non-numeric value becomes the 0 sentinel, which
// downstream lookups simply fail to find.

func termCodeParam(c *gin.Context) int {
	return sanitize.ClampInt(c.Param("termCode"), models.TermCodeMin, models.TermCodeMax, 0)
}

// sectionParam defaults to 1 when the optional section segment is
// omitted from the route.
func sectionParam(c *gin.Context) int {
	raw := c.Param("section")
	if raw == "" {
		return models.SectionMin
	}
	return sanitize.ClampInt(raw, models.SectionMin, models.SectionMax, models.SectionMin)
}

func sheetIDParam(c *gin.Context) int {
	return sanitize.ClampInt(c.Param("id"), models.SheetIDMin, models.SheetIDMax, 0)
}

func slotIDParam(c *gin.Context) int {
	return sanitize.ClampInt(c.Param("id"), models.SlotIDMin, models.SlotIDMax, 0)
}
