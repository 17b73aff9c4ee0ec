package endpoint

import (
	"context"
	"time"

	"spec-sync/core/errors"
	"spec-sync/core/models"
	"spec-sync/core/reconcile"
	"spec-sync/core/spec"

	"gorm.io/gorm"
)

const resource = "endpoint"

// Repository persists endpoints.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates an endpoint repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ProjectExists reports whether the project an endpoint refers to is stored.
func (r *Repository) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", projectID).Count(&count).Error; err != nil {
		return false, errors.NewPersistenceError("find project", err)
	}
	return count > 0, nil
}

// Create inserts a new endpoint.
func (r *Repository) Create(ctx context.Context, ep *models.Endpoint) error {
	if err := r.db.WithContext(ctx).Create(ep).Error; err != nil {
		return errors.NewPersistenceError("create endpoint", err)
	}
	return nil
}

// FindByID loads one endpoint.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Endpoint, error) {
	var ep models.Endpoint
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewNotFoundError(resource, id)
	}
	if err != nil {
		return nil, errors.NewPersistenceError("find endpoint", err)
	}
	if ep.Conflicts == nil {
		ep.Conflicts = []reconcile.Conflict{}
	}
	return &ep, nil
}

// List returns the endpoints of one project, or of every project when
// projectID is empty, oldest first.
func (r *Repository) List(ctx context.Context, projectID string) ([]models.Endpoint, error) {
	endpoints := []models.Endpoint{}
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}
	if err := q.Find(&endpoints).Error; err != nil {
		return nil, errors.NewPersistenceError("list endpoints", err)
	}
	return endpoints, nil
}

// SaveSpec writes the given side's spec with the derived status and conflicts.
// The opposite side's column is not touched.
func (r *Repository) SaveSpec(ctx context.Context, ep *models.Endpoint, side spec.Side) error {
	ep.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&models.Endpoint{ID: ep.ID}).
		Select(models.SpecColumn(side), "status", "conflicts", "updated_at").
		Updates(ep)
	if res.Error != nil {
		return errors.NewPersistenceError("update endpoint", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NewNotFoundError(resource, ep.ID)
	}
	return nil
}

// SaveDerived rewrites the status and conflicts of an endpoint; specs are not touched.
func (r *Repository) SaveDerived(ctx context.Context, ep *models.Endpoint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Endpoint{ID: ep.ID}).
		Select("status", "conflicts").
		Updates(ep)
	if res.Error != nil {
		return errors.NewPersistenceError("update endpoint", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NewNotFoundError(resource, ep.ID)
	}
	return nil
}

// Delete removes one endpoint.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Endpoint{})
	if res.Error != nil {
		return errors.NewPersistenceError("delete endpoint", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NewNotFoundError(resource, id)
	}
	return nil
}
