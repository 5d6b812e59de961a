package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/newtonbotics/labstore/app/controllers"
	"github.com/newtonbotics/labstore/app/repositories"
	"github.com/newtonbotics/labstore/pkg/store"
)

func TestHome(t *testing.T) {
	ctrl := controllers.NewHealthController(store.Unavailable{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctrl.Home(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Newtonbotics Lab Store Backend Running", body["message"])
}

func TestDiagnosticsDegradedStore(t *testing.T) {
	ctrl := controllers.NewHealthController(store.Unavailable{})
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	ctrl.Test(rec, req)

	// Degraded state is reported in the body, never as an error status.
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "running", body["backend"])
	assert.Equal(t, "not initialized", body["database"])
	assert.Equal(t, "not connected", body["connection_status"])
}

func TestDiagnosticsConnectedStore(t *testing.T) {
	st := newFakeStore()
	st.preload(repositories.ProductCollection, bson.M{"title": "x"})

	ctrl := controllers.NewHealthController(st)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	ctrl.Test(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "connected", body["connection_status"])
	assert.Contains(t, body["collections"], repositories.ProductCollection)
}
