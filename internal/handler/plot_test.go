package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotvista/plotvista/internal/model"
)

func TestListPlots(t *testing.T) {
	e := newTestServer(t)

	// The collection is empty until plots are backed by storage; the
	// body must still be a JSON array, not null.
	w := doJSON(e, http.MethodGet, "/api/plots", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	// A valid status filter is accepted (and currently unused).
	w = doJSON(e, http.MethodGet, "/api/plots?status=booked&skip=0&limit=50", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// The enum is a closed set.
	w = doJSON(e, http.MethodGet, "/api/plots?status=sold", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPlot(t *testing.T) {
	e := newTestServer(t)

	w := doJSON(e, http.MethodGet, "/api/plots/7", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var p model.Plot
	decodeBody(t, w, &p)
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, "7", p.PlotNumber)
	assert.Equal(t, "30×40", p.Dimension)
	assert.Equal(t, 1200.0, p.Area)
	assert.Equal(t, model.PlotAvailable, p.Status)
	assert.Equal(t, 1, p.LayoutID)
	assert.Nil(t, p.UpdatedAt)
}

func TestUpdatePlot(t *testing.T) {
	e := newTestServer(t)
	body := map[string]string{"status": "booked"}

	// No token.
	w := doJSON(e, http.MethodPatch, "/api/plots/42", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token, wrong role.
	w = doJSON(e, http.MethodPatch, "/api/plots/42", body, bearerToken(t, "viewer"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Manager applies the status and gets a fresh update timestamp.
	w = doJSON(e, http.MethodPatch, "/api/plots/42", body, bearerToken(t, "manager"))
	require.Equal(t, http.StatusOK, w.Code)

	var p model.Plot
	decodeBody(t, w, &p)
	assert.Equal(t, 42, p.ID)
	assert.Equal(t, model.PlotBooked, p.Status)
	require.NotNil(t, p.UpdatedAt)

	// Unknown status values are rejected by the schema layer.
	w = doJSON(e, http.MethodPatch, "/api/plots/42", map[string]string{"status": "sold"}, bearerToken(t, "manager"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
