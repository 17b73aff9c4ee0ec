package project

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"spec-sync/core/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	app := fiber.New()
	feature := NewFeature(setupDB(t), zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app
}

func createProject(t *testing.T, app *fiber.App, body string) *models.Project {
	req := httptest.NewRequest("POST", "/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var p models.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	return &p
}

func TestHandler_CreateAndGet(t *testing.T) {
	app := setupTestApp(t)
	created := createProject(t, app, `{"name":"Shop","description":"Storefront"}`)

	resp, err := app.Test(httptest.NewRequest("GET", "/projects/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Shop", body["name"])
	assert.Equal(t, []any{}, body["endpoints"])
}

func TestHandler_CreateInvalid(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{"Blank Name", `{"name":""}`},
		{"Malformed", `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/projects", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandler_List(t *testing.T) {
	app := setupTestApp(t)
	createProject(t, app, `{"name":"One"}`)
	createProject(t, app, `{"name":"Two"}`)

	resp, err := app.Test(httptest.NewRequest("GET", "/projects", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var projects []models.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&projects))
	assert.Len(t, projects, 2)
}

func TestHandler_DeleteAndSummary(t *testing.T) {
	app := setupTestApp(t)
	created := createProject(t, app, `{"name":"Shop"}`)

	resp, err := app.Test(httptest.NewRequest("GET", "/projects/"+created.ID+"/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sum Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sum))
	assert.Equal(t, created.ID, sum.ProjectID)
	assert.Zero(t, sum.Total)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/projects/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/projects/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/projects/"+created.ID+"/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, zap.NewNop())
	assert.Equal(t, "project", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
