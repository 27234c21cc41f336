//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmlivon/app-canchas-futbol/internal/handler/api"
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailabilityQueries struct {
	views []*queries.FieldAvailabilityView
	err   error
}

func (s *stubAvailabilityQueries) ForDate(_ context.Context, _ string, _ string) ([]*queries.FieldAvailabilityView, error) {
	return s.views, s.err
}

func newAvailabilityRouter(stub *stubAvailabilityQueries) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewAvailabilityHandler(stub)
	router.GET("/availability", handler.GetAvailability)
	return router
}

func TestGetAvailability(t *testing.T) {
	stub := &stubAvailabilityQueries{views: []*queries.FieldAvailabilityView{
		{ID: uuid.New(), Name: "Cancha Norte", Category: "small", Capacity: 10, FreeSlots: []string{"08:00", "09:00"}},
	}}
	router := newAvailabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?date=2026-09-15", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Date   string `json:"date"`
		Fields []struct {
			Name      string   `json:"name"`
			FreeSlots []string `json:"freeSlots"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2026-09-15", body.Date)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, []string{"08:00", "09:00"}, body.Fields[0].FreeSlots)
}

func TestGetAvailabilityMissingDate(t *testing.T) {
	router := newAvailabilityRouter(&stubAvailabilityQueries{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	router := newAvailabilityRouter(&stubAvailabilityQueries{err: queries.ErrInvalidDate})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?date=yesterday", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailabilityInvalidCategory(t *testing.T) {
	router := newAvailabilityRouter(&stubAvailabilityQueries{err: queries.ErrInvalidCategory})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?date=2026-09-15&category=huge", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
