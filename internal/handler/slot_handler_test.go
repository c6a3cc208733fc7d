package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-signup-api/internal/dto"
	"github.com/noah-isme/course-signup-api/internal/models"
	appErrors "github.com/noah-isme/course-signup-api/pkg/errors"
)

type fakeSlotSrv struct {
	updateResult  *dto.SlotUpdateResult
	membersResult *dto.SlotMembersResult
	err           error
	lastSlot      int
	lastUpdate    dto.UpdateSlotRequest
}

func (f *fakeSlotSrv) UpdateSlot(_ context.Context, slotID int, req dto.UpdateSlotRequest) (*dto.SlotUpdateResult, error) {
	f.lastSlot = slotID
	f.lastUpdate = req
	return f.updateResult, f.err
}

func (f *fakeSlotSrv) SlotMembers(_ context.Context, slotID int) (*dto.SlotMembersResult, error) {
	f.lastSlot = slotID
	return f.membersResult, f.err
}

func TestSlotHandlerUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSlotSrv{updateResult: &dto.SlotUpdateResult{
		Message: "slot updated successfully",
		Slot:    models.Slot{ID: 4, Duration: 45},
	}}
	handler := NewSlotHandler(srv)

	duration := 45
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPut, "/api/slots/4", dto.UpdateSlotRequest{Duration: &duration})
	c.Params = gin.Params{{Key: "id", Value: "4"}}

	handler.Update(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, srv.lastSlot)
	require.NotNil(t, srv.lastUpdate.Duration)
	assert.Equal(t, 45, *srv.lastUpdate.Duration)
	assert.Nil(t, srv.lastUpdate.StartTime)
}

func TestSlotHandlerUpdateShrinkRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSlotSrv{err: appErrors.WithDetails(appErrors.ErrValidation,
		"cannot reduce max members below current signup count", []string{"11111111", "22222222"})}
	handler := NewSlotHandler(srv)

	newMax := 1
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPut, "/api/slots/4", dto.UpdateSlotRequest{MaxMembers: &newMax})
	c.Params = gin.Params{{Key: "id", Value: "4"}}

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, []interface{}{"11111111", "22222222"}, envelope.Error["details"])
}

func TestSlotHandlerMembers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSlotSrv{membersResult: &dto.SlotMembersResult{
		Slot: models.Slot{ID: 4, SignedUpMembers: []string{"12345678"}},
		Members: []models.Member{
			{MemberID: "12345678", FirstName: "Ada", LastName: "Lovelace", Role: "student"},
		},
	}}
	handler := NewSlotHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/slots/4/members", nil)
	c.Params = gin.Params{{Key: "id", Value: "4"}}

	handler.Members(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, srv.lastSlot)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data["members"], 1)
}

func TestSlotHandlerMembersMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSlotSrv{err: appErrors.Clone(appErrors.ErrNotFound, "slot not found")}
	handler := NewSlotHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/slots/42/members", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	handler.Members(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
