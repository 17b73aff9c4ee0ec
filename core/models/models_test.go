package models_test

import (
	"strings"
	"testing"

	"spec-sync/core/models"
	"spec-sync/core/reconcile"
	"spec-sync/core/spec"

	"github.com/stretchr/testify/assert"
)

func TestHTTPMethod_IsValid(t *testing.T) {
	for _, m := range []models.HTTPMethod{"GET", "POST", "PUT", "DELETE", "PATCH"} {
		assert.True(t, m.IsValid(), m)
	}
	assert.False(t, models.HTTPMethod("OPTIONS").IsValid())
	assert.False(t, models.HTTPMethod("get").IsValid())
}

func TestValidPath(t *testing.T) {
	assert.True(t, models.ValidPath("/users/{id}"))
	assert.True(t, models.ValidPath("/"))
	assert.False(t, models.ValidPath("users"))
	assert.False(t, models.ValidPath(""))
	assert.True(t, models.ValidPath("/"+strings.Repeat("a", models.MaxPathLength-1)))
	assert.False(t, models.ValidPath("/"+strings.Repeat("a", models.MaxPathLength)))
}

func TestNewEndpoint(t *testing.T) {
	e := models.NewEndpoint("p1", "/users", models.MethodGet)

	assert.Equal(t, reconcile.StatusUndefined, e.Status)
	assert.NotNil(t, e.Conflicts)
	assert.Empty(t, e.Conflicts)
	assert.False(t, e.FrontendSpec.IsDefined())
	assert.False(t, e.BackendSpec.IsDefined())
}

func TestEndpoint_SetSpec(t *testing.T) {
	e := models.NewEndpoint("p1", "/users", models.MethodGet)
	front := spec.EndpointSpec{DefinedBy: spec.SideFrontend, StatusCodes: []int{200}}

	e.SetSpec(spec.SideFrontend, front)
	assert.Equal(t, front, e.Spec(spec.SideFrontend))
	assert.Equal(t, spec.EndpointSpec{}, e.Spec(spec.SideBackend))

	assert.Equal(t, "frontend_spec", models.SpecColumn(spec.SideFrontend))
	assert.Equal(t, "backend_spec", models.SpecColumn(spec.SideBackend))
}
