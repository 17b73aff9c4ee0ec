package models

import (
	"strings"
	"time"

	"spec-sync/core/reconcile"
	"spec-sync/core/spec"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxPathLength is the longest endpoint path accepted.
const MaxPathLength = 500

// HTTPMethod is the closed set of methods an endpoint may declare.
type HTTPMethod string

const (
	MethodGet    HTTPMethod = "GET"
	MethodPost   HTTPMethod = "POST"
	MethodPut    HTTPMethod = "PUT"
	MethodDelete HTTPMethod = "DELETE"
	MethodPatch  HTTPMethod = "PATCH"
)

// IsValid reports whether m is a supported method.
func (m HTTPMethod) IsValid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch:
		return true
	default:
		return false
	}
}

// ValidPath reports whether p is an absolute path of acceptable length.
func ValidPath(p string) bool {
	return strings.HasPrefix(p, "/") && len(p) <= MaxPathLength
}

// Project groups the endpoints of one API.
type Project struct {
	ID          string     `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Name        string     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string     `gorm:"column:description;type:text" json:"description,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	Endpoints   []Endpoint `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"endpoints"`
}

// TableName overrides the table name.
func (Project) TableName() string {
	return "projects"
}

// BeforeCreate assigns a random id when none is set.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Endpoint is one API route with its two specifications and derived state.
type Endpoint struct {
	ID           string               `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	ProjectID    string               `gorm:"column:project_id;type:varchar(36);not null;index:idx_endpoints_project_id" json:"projectId"`
	Path         string               `gorm:"column:path;type:varchar(500);not null" json:"path"`
	Method       HTTPMethod           `gorm:"column:method;type:varchar(10);not null" json:"method"`
	FrontendSpec spec.EndpointSpec    `gorm:"column:frontend_spec;type:text;serializer:json" json:"frontendSpec"`
	BackendSpec  spec.EndpointSpec    `gorm:"column:backend_spec;type:text;serializer:json" json:"backendSpec"`
	Status       reconcile.Status     `gorm:"column:status;type:varchar(20);not null;default:undefined;index:idx_endpoints_status" json:"status"`
	Conflicts    []reconcile.Conflict `gorm:"column:conflicts;type:text;serializer:json" json:"conflicts"`
	CreatedAt    time.Time            `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time            `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName overrides the table name.
func (Endpoint) TableName() string {
	return "endpoints"
}

// BeforeCreate assigns a random id when none is set.
func (e *Endpoint) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// NewEndpoint returns an endpoint with both sides unauthored and the derived
// state of that pair.
func NewEndpoint(projectID, path string, method HTTPMethod) *Endpoint {
	e := &Endpoint{
		ProjectID: projectID,
		Path:      path,
		Method:    method,
	}
	e.Apply(reconcile.Reconcile(e.FrontendSpec, e.BackendSpec))
	return e
}

// Spec returns the specification stored for the given side.
func (e *Endpoint) Spec(side spec.Side) spec.EndpointSpec {
	if side == spec.SideBackend {
		return e.BackendSpec
	}
	return e.FrontendSpec
}

// SetSpec replaces the specification stored for the given side.
func (e *Endpoint) SetSpec(side spec.Side, s spec.EndpointSpec) {
	if side == spec.SideBackend {
		e.BackendSpec = s
		return
	}
	e.FrontendSpec = s
}

// Apply stores a reconcile result as the endpoint's derived state.
func (e *Endpoint) Apply(result reconcile.Result) {
	e.Status = result.Status
	e.Conflicts = result.Conflicts
	if e.Conflicts == nil {
		e.Conflicts = []reconcile.Conflict{}
	}
}

// SpecColumn returns the column holding the given side's specification.
func SpecColumn(side spec.Side) string {
	if side == spec.SideBackend {
		return "backend_spec"
	}
	return "frontend_spec"
}

// All lists every model managed by migrations, parents first.
func All() []any {
	return []any{&Project{}, &Endpoint{}}
}
