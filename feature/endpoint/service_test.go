package endpoint

import (
	"context"
	"strings"
	"testing"

	"spec-sync/core/database"
	"spec-sync/core/errors"
	"spec-sync/core/metrics"
	"spec-sync/core/models"
	"spec-sync/core/reconcile"
	"spec-sync/core/spec"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func seedProject(t *testing.T, db *gorm.DB) *models.Project {
	p := &models.Project{Name: "Shop"}
	require.NoError(t, db.Create(p).Error)
	return p
}

func counterValue(t *testing.T, r *metrics.Recorder, name, label, value string) float64 {
	mfs, err := r.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func idField(t spec.FieldType) spec.FieldSpec {
	return spec.FieldSpec{Name: "id", Type: t, Required: true}
}

func TestService_CreateEndpoint(t *testing.T) {
	db := setupDB(t)
	svc := NewService(NewRepository(db), nil, zap.NewNop())
	ctx := context.Background()
	p := seedProject(t, db)

	t.Run("Valid", func(t *testing.T) {
		ep, err := svc.CreateEndpoint(ctx, p.ID, "/users/:id", "get")
		require.NoError(t, err)
		assert.NotEmpty(t, ep.ID)
		assert.Equal(t, models.MethodGet, ep.Method)
		assert.Equal(t, reconcile.StatusUndefined, ep.Status)
		assert.Equal(t, []reconcile.Conflict{}, ep.Conflicts)
		assert.False(t, ep.FrontendSpec.IsDefined())

		stored, err := svc.GetEndpoint(ctx, ep.ID)
		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusUndefined, stored.Status)
		assert.Equal(t, []reconcile.Conflict{}, stored.Conflicts)
	})

	tests := []struct {
		name      string
		projectID string
		path      string
		method    string
		target    error
	}{
		{"Missing Project ID", "", "/a", "GET", errors.ErrInvalidInput},
		{"Relative Path", p.ID, "users", "GET", errors.ErrInvalidInput},
		{"Path Too Long", p.ID, "/" + strings.Repeat("a", models.MaxPathLength), "GET", errors.ErrInvalidInput},
		{"Unknown Method", p.ID, "/a", "OPTIONS", errors.ErrInvalidInput},
		{"Unknown Project", "missing", "/a", "GET", errors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEndpoint(ctx, tt.projectID, tt.path, tt.method)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestService_UpdateSpec(t *testing.T) {
	db := setupDB(t)
	recorder := metrics.NewRecorder()
	svc := NewService(NewRepository(db), recorder, zap.NewNop())
	ctx := context.Background()
	p := seedProject(t, db)

	ep, err := svc.CreateEndpoint(ctx, p.ID, "/users/:id", "GET")
	require.NoError(t, err)

	t.Run("First Side Is Pending", func(t *testing.T) {
		got, err := svc.UpdateSpec(ctx, ep.ID, spec.SideFrontend, spec.EndpointSpec{
			Parameters: []spec.FieldSpec{idField(spec.TypeString)},
		})
		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusPending, got.Status)
		assert.Empty(t, got.Conflicts)
		assert.Equal(t, spec.SideFrontend, got.FrontendSpec.DefinedBy)
		assert.False(t, got.BackendSpec.IsDefined())
		assert.Equal(t, float64(1), counterValue(t, recorder, "spec_sync_reconciliations_total", "status", "pending"))
	})

	t.Run("Second Side Conflicts", func(t *testing.T) {
		got, err := svc.UpdateSpec(ctx, ep.ID, spec.SideBackend, spec.EndpointSpec{
			Parameters: []spec.FieldSpec{idField(spec.TypeNumber)},
		})
		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusConflict, got.Status)
		assert.Equal(t, []reconcile.Conflict{{
			Field:         "parameters.id.type",
			FrontendValue: spec.TypeString,
			BackendValue:  spec.TypeNumber,
			Type:          reconcile.ConflictTypeMismatch,
		}}, got.Conflicts)
		assert.Equal(t, float64(1), counterValue(t, recorder, "spec_sync_conflicts_total", "type", "type_mismatch"))

		stored, err := svc.GetEndpoint(ctx, ep.ID)
		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusConflict, stored.Status)
		require.Len(t, stored.Conflicts, 1)
		assert.Equal(t, "parameters.id.type", stored.Conflicts[0].Field)
		assert.Equal(t, "string", stored.Conflicts[0].FrontendValue)
	})

	t.Run("Resolving Conflict Syncs", func(t *testing.T) {
		got, err := svc.UpdateSpec(ctx, ep.ID, spec.SideBackend, spec.EndpointSpec{
			Parameters: []spec.FieldSpec{idField(spec.TypeString)},
		})
		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusSynced, got.Status)
		assert.Equal(t, []reconcile.Conflict{}, got.Conflicts)

		stored, err := svc.GetEndpoint(ctx, ep.ID)
		require.NoError(t, err)
		assert.Equal(t, []reconcile.Conflict{}, stored.Conflicts)
	})

	t.Run("Other Side Column Untouched", func(t *testing.T) {
		var before string
		require.NoError(t, db.Raw("SELECT backend_spec FROM endpoints WHERE id = ?", ep.ID).Scan(&before).Error)

		_, err := svc.UpdateSpec(ctx, ep.ID, spec.SideFrontend, spec.EndpointSpec{
			Parameters:  []spec.FieldSpec{idField(spec.TypeString)},
			StatusCodes: []int{200},
		})
		require.NoError(t, err)

		var after string
		require.NoError(t, db.Raw("SELECT backend_spec FROM endpoints WHERE id = ?", ep.ID).Scan(&after).Error)
		assert.Equal(t, before, after)
	})

	t.Run("Explicit DefinedBy Kept", func(t *testing.T) {
		got, err := svc.UpdateSpec(ctx, ep.ID, spec.SideFrontend, spec.EndpointSpec{DefinedBy: spec.SideBackend})
		require.NoError(t, err)
		assert.Equal(t, spec.SideBackend, got.FrontendSpec.DefinedBy)
	})

	t.Run("Invalid Side", func(t *testing.T) {
		_, err := svc.UpdateSpec(ctx, ep.ID, spec.Side("mobile"), spec.EndpointSpec{})
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("Invalid Spec", func(t *testing.T) {
		_, err := svc.UpdateSpec(ctx, ep.ID, spec.SideFrontend, spec.EndpointSpec{StatusCodes: []int{99}})
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := svc.UpdateSpec(ctx, "missing", spec.SideFrontend, spec.EndpointSpec{})
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})
}

func TestService_DeleteEndpoint(t *testing.T) {
	db := setupDB(t)
	svc := NewService(NewRepository(db), nil, zap.NewNop())
	ctx := context.Background()
	p := seedProject(t, db)

	ep, err := svc.CreateEndpoint(ctx, p.ID, "/a", "DELETE")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEndpoint(ctx, ep.ID))
	_, err = svc.GetEndpoint(ctx, ep.ID)
	assert.ErrorIs(t, err, errors.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteEndpoint(ctx, ep.ID), errors.ErrNotFound)
}

func TestService_Recompute(t *testing.T) {
	db := setupDB(t)
	svc := NewService(NewRepository(db), nil, zap.NewNop())
	ctx := context.Background()
	p := seedProject(t, db)

	stale, err := svc.CreateEndpoint(ctx, p.ID, "/stale", "GET")
	require.NoError(t, err)
	_, err = svc.UpdateSpec(ctx, stale.ID, spec.SideFrontend, spec.EndpointSpec{Parameters: []spec.FieldSpec{idField(spec.TypeString)}})
	require.NoError(t, err)
	_, err = svc.UpdateSpec(ctx, stale.ID, spec.SideBackend, spec.EndpointSpec{Parameters: []spec.FieldSpec{idField(spec.TypeNumber)}})
	require.NoError(t, err)

	fresh, err := svc.CreateEndpoint(ctx, p.ID, "/fresh", "GET")
	require.NoError(t, err)

	// Corrupt the stored derived state.
	require.NoError(t, db.Exec("UPDATE endpoints SET status = 'synced', conflicts = '[]' WHERE id = ?", stale.ID).Error)

	t.Run("Dry Run", func(t *testing.T) {
		report, err := svc.Recompute(ctx, p.ID, true)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Checked)
		assert.Equal(t, 1, report.Changed)
		assert.Equal(t, 1, report.Statuses[reconcile.StatusConflict])
		assert.Equal(t, 1, report.Statuses[reconcile.StatusUndefined])

		stored, err := svc.GetEndpoint(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusSynced, stored.Status)
	})

	t.Run("Repair", func(t *testing.T) {
		report, err := svc.Recompute(ctx, "", false)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Changed)

		stored, err := svc.GetEndpoint(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusConflict, stored.Status)
		assert.Len(t, stored.Conflicts, 1)

		untouched, err := svc.GetEndpoint(ctx, fresh.ID)
		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusUndefined, untouched.Status)
	})

	t.Run("Idempotent", func(t *testing.T) {
		report, err := svc.Recompute(ctx, "", false)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Checked)
		assert.Zero(t, report.Changed)
	})

	t.Run("Other Project", func(t *testing.T) {
		report, err := svc.Recompute(ctx, "other", true)
		require.NoError(t, err)
		assert.Zero(t, report.Checked)
	})
}

func TestService_PersistenceFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(NewRepository(db), nil, zap.NewNop())
	ctx := context.Background()

	mock.ExpectQuery(".*").WillReturnError(assert.AnError)
	_, err := svc.UpdateSpec(ctx, "e1", spec.SideFrontend, spec.EndpointSpec{})
	assert.ErrorIs(t, err, errors.ErrPersistence)
	assert.NotErrorIs(t, err, errors.ErrNotFound)

	mock.ExpectQuery(".*").WillReturnError(assert.AnError)
	_, err = svc.CreateEndpoint(ctx, "p1", "/a", "GET")
	assert.ErrorIs(t, err, errors.ErrPersistence)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSameConflicts(t *testing.T) {
	fresh := []reconcile.Conflict{{
		Field:         "parameters.id",
		FrontendValue: spec.FieldSpec{Name: "id", Type: spec.TypeString, Required: true},
		Type:          reconcile.ConflictMissing,
	}}
	stored := []reconcile.Conflict{{
		Field:         "parameters.id",
		FrontendValue: map[string]any{"name": "id", "type": "string", "required": true},
		Type:          reconcile.ConflictMissing,
	}}

	assert.True(t, sameConflicts(fresh, stored))
	assert.True(t, sameConflicts(nil, []reconcile.Conflict{}))
	assert.False(t, sameConflicts(fresh, nil))
}
