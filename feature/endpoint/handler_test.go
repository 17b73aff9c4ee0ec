package endpoint

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"spec-sync/core/metrics"
	"spec-sync/core/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := setupDB(t)
	app := fiber.New()
	feature := NewFeature(db, metrics.NewRecorder(), zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestHandler_Lifecycle(t *testing.T) {
	app, db := setupTestApp(t)
	p := &models.Project{Name: "Shop"}
	require.NoError(t, db.Create(p).Error)

	status, created := doJSON(t, app, "POST", "/endpoints", `{"projectId":"`+p.ID+`","path":"/users/:id","method":"GET"}`)
	require.Equal(t, fiber.StatusCreated, status)
	id := created["id"].(string)
	assert.Equal(t, "undefined", created["status"])
	assert.Equal(t, []any{}, created["conflicts"])
	assert.Equal(t, map[string]any{}, created["frontendSpec"])

	status, body := doJSON(t, app, "PUT", "/endpoints/"+id,
		`{"specType":"frontend","spec":{"parameters":[{"name":"id","type":"string","required":true}],"statusCodes":[200,404]}}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "frontend", body["frontendSpec"].(map[string]any)["definedBy"])

	status, body = doJSON(t, app, "PUT", "/endpoints/"+id,
		`{"specType":"backend","spec":{"parameters":[{"name":"id","type":"string","required":true}],"statusCodes":[500]}}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "conflict", body["status"])
	conflicts := body["conflicts"].([]any)
	require.Len(t, conflicts, 1)
	assert.Equal(t, map[string]any{
		"field":         "statusCodes",
		"frontendValue": []any{float64(200), float64(404)},
		"backendValue":  []any{float64(500)},
		"type":          "type_mismatch",
	}, conflicts[0])

	status, body = doJSON(t, app, "GET", "/endpoints/"+id, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "conflict", body["status"])

	status, _ = doJSON(t, app, "DELETE", "/endpoints/"+id, "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = doJSON(t, app, "GET", "/endpoints/"+id, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_UpdateSpecRejected(t *testing.T) {
	app, db := setupTestApp(t)
	p := &models.Project{Name: "Shop"}
	require.NoError(t, db.Create(p).Error)
	ep := models.NewEndpoint(p.ID, "/a", models.MethodGet)
	require.NoError(t, db.Create(ep).Error)

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"Unknown Side", "/endpoints/" + ep.ID, `{"specType":"mobile","spec":{}}`, fiber.StatusBadRequest},
		{"Missing Spec", "/endpoints/" + ep.ID, `{"specType":"frontend"}`, fiber.StatusBadRequest},
		{"Null Spec", "/endpoints/" + ep.ID, `{"specType":"frontend","spec":null}`, fiber.StatusBadRequest},
		{"Bad Field Type", "/endpoints/" + ep.ID, `{"specType":"frontend","spec":{"parameters":[{"name":"id","type":"uuid","required":true}]}}`, fiber.StatusBadRequest},
		{"Out Of Range Code", "/endpoints/" + ep.ID, `{"specType":"frontend","spec":{"statusCodes":[600]}}`, fiber.StatusBadRequest},
		{"Empty Name", "/endpoints/" + ep.ID, `{"specType":"frontend","spec":{"requestBody":[{"name":"","type":"string","required":true}]}}`, fiber.StatusBadRequest},
		{"Malformed Body", "/endpoints/" + ep.ID, `{"specType":`, fiber.StatusBadRequest},
		{"Unknown Endpoint", "/endpoints/missing", `{"specType":"frontend","spec":{}}`, fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, "PUT", tt.target, tt.body)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, body["error"])
		})
	}

	// Rejected writes leave the stored state alone.
	var stored models.Endpoint
	require.NoError(t, db.First(&stored, "id = ?", ep.ID).Error)
	assert.False(t, stored.FrontendSpec.IsDefined())
	assert.Equal(t, "undefined", string(stored.Status))
}

func TestHandler_CreateRejected(t *testing.T) {
	app, db := setupTestApp(t)
	p := &models.Project{Name: "Shop"}
	require.NoError(t, db.Create(p).Error)

	status, _ := doJSON(t, app, "POST", "/endpoints", `{"projectId":"`+p.ID+`","path":"users","method":"GET"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "POST", "/endpoints", `{"projectId":"missing","path":"/users","method":"GET"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, nil, zap.NewNop())
	assert.Equal(t, "endpoint", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
