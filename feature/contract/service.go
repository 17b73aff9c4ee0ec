package contract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"spec-sync/core/errors"
	"spec-sync/core/openapi"
	"spec-sync/core/spec"
	"spec-sync/core/storage"
	"spec-sync/feature/project"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Snapshot describes one stored document.
type Snapshot struct {
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	Side         spec.Side `json:"side"`
	Format       string    `json:"format"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// Document is a rendered OpenAPI document.
type Document struct {
	Format openapi.Format
	Body   []byte
}

// Service renders and stores contract documents.
type Service struct {
	projects *project.Repository
	client   storage.Client
	bucket   string
	prefix   string
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a contract service.
func NewService(projects *project.Repository, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		projects: projects,
		client:   client,
		bucket:   cfg.Bucket,
		prefix:   strings.Trim(cfg.SnapshotPrefix, "/"),
		logger:   logger,
		now:      time.Now,
	}
}

// Export renders one side of a project.
func (s *Service) Export(ctx context.Context, projectID string, side spec.Side, format openapi.Format) (*Document, error) {
	if !side.IsValid() {
		return nil, errors.NewValidationError("side", side, "must be frontend or backend")
	}

	p, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	body, err := openapi.Render(openapi.Build(*p, p.Endpoints, side), format)
	if err != nil {
		return nil, err
	}
	return &Document{Format: format, Body: body}, nil
}

// CreateSnapshot renders one side of a project and uploads it.
func (s *Service) CreateSnapshot(ctx context.Context, projectID string, side spec.Side, format openapi.Format) (*Snapshot, error) {
	doc, err := s.Export(ctx, projectID, side, format)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s-%d.%s", side, s.now().Unix(), format.Extension())
	key := s.key(projectID, name)
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(doc.Body), int64(len(doc.Body)), minio.PutObjectOptions{
		ContentType: format.ContentType(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}

	s.logger.Info("Snapshot stored",
		zap.String("project_id", projectID),
		zap.String("side", string(side)),
		zap.String("key", key),
		zap.Int64("size", info.Size),
	)
	return &Snapshot{
		Key:          key,
		Name:         name,
		Side:         side,
		Format:       format.Extension(),
		Size:         int64(len(doc.Body)),
		LastModified: info.LastModified,
	}, nil
}

// ListSnapshots returns the snapshots of a project, newest first.
func (s *Service) ListSnapshots(ctx context.Context, projectID string) ([]Snapshot, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	snapshots := []Snapshot{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.key(projectID, ""),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		snapshots = append(snapshots, describe(obj))
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].LastModified.After(snapshots[j].LastModified)
	})
	return snapshots, nil
}

// GetSnapshot downloads one snapshot.
func (s *Service) GetSnapshot(ctx context.Context, projectID, name string) (*Document, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	key := s.key(projectID, name)
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.storageError("download", projectID, name, err)
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.storageError("download", projectID, name, err)
	}

	format := openapi.FormatJSON
	if path.Ext(name) == ".yaml" {
		format = openapi.FormatYAML
	}
	return &Document{Format: format, Body: body}, nil
}

// DeleteSnapshot removes one snapshot.
func (s *Service) DeleteSnapshot(ctx context.Context, projectID, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	key := s.key(projectID, name)
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return s.storageError("delete", projectID, name, err)
	}
	s.logger.Info("Snapshot deleted", zap.String("project_id", projectID), zap.String("key", key))
	return nil
}

func (s *Service) key(projectID, name string) string {
	if s.prefix == "" {
		return projectID + "/" + name
	}
	return s.prefix + "/" + projectID + "/" + name
}

func (s *Service) storageError(op, projectID, name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return errors.NewNotFoundError("snapshot", projectID+"/"+name)
	}
	return fmt.Errorf("failed to %s snapshot %s: %w", op, name, err)
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return errors.NewValidationError("name", name, "invalid snapshot name")
	}
	return nil
}

// describe derives snapshot metadata from its key: <side>-<unix>.<ext>.
func describe(obj minio.ObjectInfo) Snapshot {
	name := path.Base(obj.Key)
	ext := path.Ext(name)
	side, _, _ := strings.Cut(strings.TrimSuffix(name, ext), "-")
	return Snapshot{
		Key:          obj.Key,
		Name:         name,
		Side:         spec.Side(side),
		Format:       strings.TrimPrefix(ext, "."),
		Size:         obj.Size,
		LastModified: obj.LastModified,
	}
}
