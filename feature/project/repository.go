package project

import (
	"context"

	"spec-sync/core/errors"
	"spec-sync/core/models"
	"spec-sync/core/reconcile"

	"gorm.io/gorm"
)

const resource = "project"

// Repository persists projects.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a project repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new project.
func (r *Repository) Create(ctx context.Context, p *models.Project) error {
	if err := r.db.WithContext(ctx).Omit("Endpoints").Create(p).Error; err != nil {
		return errors.NewPersistenceError("create project", err)
	}
	return nil
}

// FindByID loads a project with its endpoints, newest first.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	err := r.db.WithContext(ctx).
		Preload("Endpoints", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewNotFoundError(resource, id)
	}
	if err != nil {
		return nil, errors.NewPersistenceError("find project", err)
	}
	if p.Endpoints == nil {
		p.Endpoints = []models.Endpoint{}
	}
	return &p, nil
}

// List returns every project without endpoints, most recently updated first.
func (r *Repository) List(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&projects).Error; err != nil {
		return nil, errors.NewPersistenceError("list projects", err)
	}
	return projects, nil
}

// Delete removes a project and its endpoints in one transaction.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Endpoint{}).Error; err != nil {
			return errors.NewPersistenceError("delete endpoints", err)
		}
		res := tx.Where("id = ?", id).Delete(&models.Project{})
		if res.Error != nil {
			return errors.NewPersistenceError("delete project", res.Error)
		}
		if res.RowsAffected == 0 {
			return errors.NewNotFoundError(resource, id)
		}
		return nil
	})
}

// Exists reports whether a project with the id is stored.
func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.NewPersistenceError("find project", err)
	}
	return count > 0, nil
}

type statusCount struct {
	Status reconcile.Status
	Count  int64
}

// CountByStatus returns the number of endpoints of a project per status.
func (r *Repository) CountByStatus(ctx context.Context, id string) (map[reconcile.Status]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&models.Endpoint{}).
		Select("status, COUNT(*) AS count").
		Where("project_id = ?", id).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.NewPersistenceError("count endpoints", err)
	}

	counts := make(map[reconcile.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
