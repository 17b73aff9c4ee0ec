package endpoint

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"

	"spec-sync/core/errors"
	"spec-sync/core/metrics"
	"spec-sync/core/models"
	"spec-sync/core/reconcile"
	"spec-sync/core/spec"

	"go.uber.org/zap"
)

// Service implements the endpoint operations.
type Service struct {
	repo    *Repository
	metrics *metrics.Recorder
	logger  *zap.Logger
}

// NewService creates an endpoint service. recorder may be nil.
func NewService(repo *Repository, recorder *metrics.Recorder, logger *zap.Logger) *Service {
	return &Service{repo: repo, metrics: recorder, logger: logger}
}

// CreateEndpoint validates and stores a new endpoint with both sides unauthored.
func (s *Service) CreateEndpoint(ctx context.Context, projectID, path, method string) (*models.Endpoint, error) {
	if projectID == "" {
		return nil, errors.NewValidationError("projectId", projectID, "is required")
	}
	if !models.ValidPath(path) {
		return nil, errors.NewValidationError("path", path, "must start with / and be at most 500 characters")
	}
	m := models.HTTPMethod(strings.ToUpper(method))
	if !m.IsValid() {
		return nil, errors.NewValidationError("method", method, "must be one of GET, POST, PUT, DELETE, PATCH")
	}

	exists, err := s.repo.ProjectExists(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("project", projectID)
	}

	ep := models.NewEndpoint(projectID, path, m)
	if err := s.repo.Create(ctx, ep); err != nil {
		return nil, err
	}
	s.logger.Info("Endpoint created",
		zap.String("endpoint_id", ep.ID),
		zap.String("project_id", projectID),
		zap.String("method", string(m)),
		zap.String("path", path),
	)
	return ep, nil
}

// GetEndpoint returns one endpoint.
func (s *Service) GetEndpoint(ctx context.Context, id string) (*models.Endpoint, error) {
	return s.repo.FindByID(ctx, id)
}

// DeleteEndpoint removes one endpoint.
func (s *Service) DeleteEndpoint(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Endpoint deleted", zap.String("endpoint_id", id))
	return nil
}

// UpdateSpec replaces one side's spec, reconciles it against the other side
// and persists the spec with the new status and conflicts.
//
// A spec saved without definedBy is stamped with the saving side.
func (s *Service) UpdateSpec(ctx context.Context, id string, side spec.Side, in spec.EndpointSpec) (*models.Endpoint, error) {
	if !side.IsValid() {
		return nil, errors.NewValidationError("specType", side, "must be frontend or backend")
	}
	if in.DefinedBy == spec.SideNone {
		in.DefinedBy = side
	}
	if !spec.ValidateSpec(in) {
		return nil, errors.NewValidationError("spec", nil, "spec failed validation")
	}

	ep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ep.SetSpec(side, in)
	result := reconcile.Reconcile(ep.FrontendSpec, ep.BackendSpec)
	ep.Apply(result)

	if err := s.repo.SaveSpec(ctx, ep, side); err != nil {
		return nil, err
	}
	s.metrics.Observe(result)

	s.logger.Info("Spec saved",
		zap.String("endpoint_id", ep.ID),
		zap.String("side", string(side)),
		zap.String("status", string(result.Status)),
		zap.Int("conflicts", len(result.Conflicts)),
	)
	return ep, nil
}

// RecomputeReport summarizes a recompute run.
type RecomputeReport struct {
	Checked  int                      `json:"checked"`
	Changed  int                      `json:"changed"`
	Statuses map[reconcile.Status]int `json:"statuses"`
}

// Recompute re-runs the engine for every stored endpoint of a project (all
// projects when projectID is empty) and rewrites rows whose derived state
// differs. Nothing is written when dryRun is set.
func (s *Service) Recompute(ctx context.Context, projectID string, dryRun bool) (*RecomputeReport, error) {
	endpoints, err := s.repo.List(ctx, projectID)
	if err != nil {
		return nil, err
	}

	report := &RecomputeReport{Statuses: make(map[reconcile.Status]int)}
	for i := range endpoints {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		ep := &endpoints[i]
		result := reconcile.Reconcile(ep.FrontendSpec, ep.BackendSpec)
		report.Checked++
		report.Statuses[result.Status]++

		if ep.Status == result.Status && sameConflicts(ep.Conflicts, result.Conflicts) {
			continue
		}
		report.Changed++
		s.logger.Info("Derived state out of date",
			zap.String("endpoint_id", ep.ID),
			zap.String("stored_status", string(ep.Status)),
			zap.String("status", string(result.Status)),
			zap.Bool("dry_run", dryRun),
		)
		if dryRun {
			continue
		}

		ep.Apply(result)
		if err := s.repo.SaveDerived(ctx, ep); err != nil {
			return report, err
		}
	}
	return report, nil
}

func sameConflicts(a, b []reconcile.Conflict) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(normalize(a), normalize(b))
}

// normalize passes conflicts through their JSON form so stored and freshly
// computed values compare equal.
func normalize(cs []reconcile.Conflict) []reconcile.Conflict {
	raw, err := json.Marshal(cs)
	if err != nil {
		return cs
	}
	var out []reconcile.Conflict
	if err := json.Unmarshal(raw, &out); err != nil {
		return cs
	}
	return out
}
