package contract

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"spec-sync/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, string) {
	db := setupDB(t)
	p := seed(t, db)
	client := new(mocks.Client)

	app := fiber.New()
	feature := NewFeature(db, client, testStorage, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, client, p.ID
}

func TestHandler_Export(t *testing.T) {
	app, _, id := setupTestApp(t)

	t.Run("JSON", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/projects/"+id+"/openapi?side=frontend", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var doc map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
		assert.Equal(t, "3.0.3", doc["openapi"])
	})

	t.Run("YAML", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/projects/"+id+"/openapi?side=frontend&format=yaml", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "openapi:")
	})

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"Missing Side", "/projects/" + id + "/openapi", fiber.StatusBadRequest},
		{"Bad Format", "/projects/" + id + "/openapi?side=backend&format=xml", fiber.StatusBadRequest},
		{"Unknown Project", "/projects/missing/openapi?side=backend", fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestHandler_Snapshots(t *testing.T) {
	app, client, id := setupTestApp(t)

	client.On("PutObject", mock.Anything, "contracts", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	client.On("ListObjects", mock.Anything, "contracts", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	resp, err := app.Test(httptest.NewRequest("POST", "/projects/"+id+"/snapshots?side=frontend", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var snap Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Contains(t, snap.Key, "snapshots/"+id+"/frontend-")

	resp, err = app.Test(httptest.NewRequest("GET", "/projects/"+id+"/snapshots", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var snaps []Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snaps))
	assert.Empty(t, snaps)
}

func TestHandler_SnapshotUploadFails(t *testing.T) {
	app, client, id := setupTestApp(t)

	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	resp, err := app.Test(httptest.NewRequest("POST", "/projects/"+id+"/snapshots?side=frontend", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, new(mocks.Client), testStorage, zap.NewNop())
	assert.Equal(t, "contract", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
