package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/newtonbotics/labstore/app/controllers"
	"github.com/newtonbotics/labstore/app/repositories"
)

func postGraphQL(t *testing.T, st *fakeStore, body string) *httptest.ResponseRecorder {
	t.Helper()

	ctrl, err := controllers.NewGraphQLController(newProductService(st))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/graphql", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.Query(rec, req)
	return rec
}

func TestGraphQLProductsQuery(t *testing.T) {
	st := newFakeStore()
	st.preload(repositories.ProductCollection, bson.M{
		"_id":      primitive.NewObjectID(),
		"title":    "Robotics Power Distribution Board",
		"category": "electronics",
		"price":    39.5,
	})

	rec := postGraphQL(t, st, `{"query": "{ products { id title price } }"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Products []map[string]interface{} `json:"products"`
		} `json:"data"`
		Errors []interface{} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Errors)
	require.Len(t, resp.Data.Products, 1)
	assert.Equal(t, "Robotics Power Distribution Board", resp.Data.Products[0]["title"])
	assert.NotEmpty(t, resp.Data.Products[0]["id"])
}

func TestGraphQLMissingQuery(t *testing.T) {
	rec := postGraphQL(t, newFakeStore(), `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Errors, "query")
}

func TestGraphQLQueryLevelErrorsRideInEnvelope(t *testing.T) {
	rec := postGraphQL(t, newFakeStore(), `{"query": "{ nope }"}`)
	// Per GraphQL convention the HTTP status stays 200.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Errors []interface{} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Errors)
}
