package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuet-cad-club/clubsite-api/internal/dto"
	appErrors "github.com/cuet-cad-club/clubsite-api/pkg/errors"
)

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

type fakeHomeSrv struct {
	page     *dto.HomePageResponse
	cacheHit bool
	degraded bool
}

func (f *fakeHomeSrv) Page(context.Context) (*dto.HomePageResponse, bool, bool) {
	return f.page, f.cacheHit, f.degraded
}

type fakeEventsSrv struct {
	page     *dto.EventsPageResponse
	cacheHit bool
	err      error
}

func (f *fakeEventsSrv) Page(context.Context) (*dto.EventsPageResponse, bool, error) {
	return f.page, f.cacheHit, f.err
}

type fakeJoinSrv struct {
	page      *dto.JoinPageResponse
	enabled   bool
	submitErr error
	applied   []dto.ApplicationRequest
}

func (f *fakeJoinSrv) Page(context.Context) (*dto.JoinPageResponse, bool, bool) {
	return f.page, false, false
}

func (f *fakeJoinSrv) ApplicationsEnabled() bool { return f.enabled }

func (f *fakeJoinSrv) SubmitApplication(req dto.ApplicationRequest) (dto.ApplicationResponse, error) {
	if f.submitErr != nil {
		return dto.ApplicationResponse{}, f.submitErr
	}
	f.applied = append(f.applied, req)
	return dto.ApplicationResponse{Reference: "ref-1", Message: "ok"}, nil
}

func TestHomeHandlerPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHomeHandler(&fakeHomeSrv{
		page:     &dto.HomePageResponse{Hero: dto.Hero{Title: "CUET CAD Club"}},
		cacheHit: true,
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/pages/home", nil)

	handler.Page(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	assert.NotContains(t, envelope.Meta, "degraded")
	assert.Contains(t, envelope.Meta, "processing_time_ms")
	hero := envelope.Data["hero"].(map[string]interface{})
	assert.Equal(t, "CUET CAD Club", hero["title"])
}

func TestHomeHandlerPageDegraded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHomeHandler(&fakeHomeSrv{
		page:     &dto.HomePageResponse{},
		degraded: true,
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/pages/home", nil)

	handler.Page(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope.Meta["degraded"])
}

func TestEventsHandlerUpstreamFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEventsHandler(&fakeEventsSrv{err: appErrors.ErrUpstream})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/pages/events", nil)

	handler.Page(c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", envelope.Error["code"])
}

func TestEventsHandlerSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEventsHandler(&fakeEventsSrv{
		page: &dto.EventsPageResponse{
			Upcoming: []dto.EventCard{{ID: "e1", Title: "CAD Fest"}},
			Past:     []dto.EventCard{},
		},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/pages/events", nil)

	handler.Page(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	upcoming := envelope.Data["upcoming"].([]interface{})
	assert.Len(t, upcoming, 1)
	assert.Equal(t, false, envelope.Meta["cache_hit"])
}

func TestJoinHandlerApply(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeJoinSrv{enabled: true}
	handler := NewJoinHandler(srv)

	body := `{
		"name": "Ayesha Karim",
		"email": "ayesha@example.com",
		"studentId": "2104001",
		"department": "Mechanical Engineering",
		"year": "3rd",
		"motivation": "I want to learn SolidWorks."
	}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/join/applications", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Apply(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, srv.applied, 1)
	assert.Equal(t, "Ayesha Karim", srv.applied[0].Name)
}

func TestJoinHandlerApplyRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewJoinHandler(&fakeJoinSrv{enabled: true})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/join/applications", strings.NewReader(`{"name":`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Apply(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error["code"])
}

func TestJoinHandlerApplyRejectsInvalidApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewJoinHandler(&fakeJoinSrv{
		enabled:   true,
		submitErr: appErrors.Clone(appErrors.ErrValidation, "invalid application payload"),
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/join/applications", strings.NewReader(`{"name":"X"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Apply(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error["code"])
}

func TestJoinHandlerApplyDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewJoinHandler(&fakeJoinSrv{enabled: false})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/join/applications", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Apply(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSchemaHandlerTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSchemaHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/content/schema", nil)

	handler.Types(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 7)
}
