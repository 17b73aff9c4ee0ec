package project

import (
	"context"
	"strings"

	"spec-sync/core/errors"
	"spec-sync/core/models"
	"spec-sync/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// MaxNameLength is the longest project name accepted.
const MaxNameLength = 255

// Summary counts the endpoints of a project by status.
type Summary struct {
	ProjectID string `json:"projectId"`
	Total     int64  `json:"total"`
	Synced    int64  `json:"synced"`
	Conflict  int64  `json:"conflict"`
	Pending   int64  `json:"pending"`
	Undefined int64  `json:"undefined"`
}

// Service implements the project operations.
type Service struct {
	repo   *Repository
	logger *zap.Logger
	group  singleflight.Group
}

// NewService creates a project service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateProject validates and stores a new project.
func (s *Service) CreateProject(ctx context.Context, name, description string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", name, "is required")
	}
	if len(name) > MaxNameLength {
		return nil, errors.NewValidationError("name", name, "must be at most 255 characters")
	}

	p := &models.Project{Name: name, Description: description, Endpoints: []models.Endpoint{}}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("Project created", zap.String("project_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// GetProject returns a project with its endpoints.
func (s *Service) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// ListProjects returns every project, most recently updated first.
func (s *Service) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.repo.List(ctx)
}

// DeleteProject removes a project and its endpoints.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Project deleted", zap.String("project_id", id))
	return nil
}

// Summary counts the endpoints of a project by status.
func (s *Service) Summary(ctx context.Context, id string) (*Summary, error) {
	v, err, _ := s.group.Do(id, func() (any, error) {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errors.NewNotFoundError(resource, id)
		}

		counts, err := s.repo.CountByStatus(ctx, id)
		if err != nil {
			return nil, err
		}

		sum := &Summary{
			ProjectID: id,
			Synced:    counts[reconcile.StatusSynced],
			Conflict:  counts[reconcile.StatusConflict],
			Pending:   counts[reconcile.StatusPending],
			Undefined: counts[reconcile.StatusUndefined],
		}
		for _, n := range counts {
			sum.Total += n
		}
		return sum, nil
	})
	if err != nil {
		return nil, err
	}
	// Callers sharing a flight get the same pointer; hand out copies.
	out := *v.(*Summary)
	return &out, nil
}
