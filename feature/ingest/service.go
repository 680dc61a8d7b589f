package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stock-migrator/core/pos"
	"stock-migrator/core/storage"
	"stock-migrator/feature/ingest/classify"
	"stock-migrator/feature/ingest/formats"
)

// Service runs migrations. The storage client and database handle are both
// optional; a nil client disables the pull/push operations and a nil database
// disables run persistence.
type Service struct {
	logger     *zap.Logger
	registry   *formats.Registry
	classifier *classify.Classifier
	client     storage.Client
	bucket     string
	prefix     string
	db         *gorm.DB
}

// NewService creates a migration service over the default vendor registry.
func NewService(logger *zap.Logger, client storage.Client, bucket, prefix string, db *gorm.DB) *Service {
	registry := DefaultRegistry()
	return &Service{
		logger:     logger,
		registry:   registry,
		classifier: classify.NewClassifier(registry, logger),
		client:     client,
		bucket:     bucket,
		prefix:     prefix,
		db:         db,
	}
}

// FileResult records what happened to one classified file during a run.
type FileResult struct {
	Path    string             `json:"path"`
	Vendor  string             `json:"vendor"`
	Entity  formats.EntityType `json:"entity"`
	Score   int                `json:"score"`
	Records int                `json:"records"`
	Skipped bool               `json:"skipped"`
	Reason  string             `json:"reason,omitempty"`
}

// Report summarizes one migration run.
type Report struct {
	Files      []FileResult   `json:"files"`
	Counts     map[string]int `json:"counts"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
}

// Classify scans a directory and returns the scored classifications in
// dependency order, without parsing anything.
func (s *Service) Classify(dir string) ([]classify.Classification, error) {
	return s.classifier.ClassifyDir(dir)
}

// Run classifies every file under inputDir and parses them in dependency
// order into a fresh aggregate. Unrecognized and malformed files are skipped
// with a warning; only a registry misconfiguration aborts the run.
func (s *Service) Run(ctx context.Context, inputDir string) (*pos.Aggregate, *Report, error) {
	report := &Report{StartedAt: time.Now().UTC()}

	classifications, err := s.classifier.ClassifyDir(inputDir)
	if err != nil {
		return nil, nil, fmt.Errorf("classification failed: %w", err)
	}

	agg := pos.NewAggregate()

	for _, c := range classifications {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		result := FileResult{
			Path:   c.Path,
			Vendor: c.Vendor,
			Entity: c.Entity,
			Score:  c.Score,
		}

		switch {
		case c.Entity == formats.EntityInvalid:
			result.Skipped = true
			result.Reason = "pipeline output"
		case c.Vendor == classify.VendorNone:
			s.logger.Warn("skipping unrecognized file", zap.String("path", c.Path))
			result.Skipped = true
			result.Reason = "unrecognized header"
		default:
			count, err := s.parseFile(c, agg)
			if err != nil {
				if formats.IsKind(err, formats.FailureConfig) {
					return nil, nil, err
				}
				s.logger.Warn("skipping unreadable file",
					zap.String("path", c.Path),
					zap.Error(err),
				)
				result.Skipped = true
				result.Reason = err.Error()
			}
			result.Records = count
		}

		report.Files = append(report.Files, result)
	}

	report.Counts = agg.Counts()
	report.FinishedAt = time.Now().UTC()

	s.logger.Info("migration run complete",
		zap.Int("files", len(report.Files)),
		zap.Any("counts", report.Counts),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	)

	return agg, report, nil
}

func (s *Service) parseFile(c classify.Classification, agg *pos.Aggregate) (int, error) {
	parser, err := s.registry.Parser(c.Vendor, c.Entity)
	if err != nil {
		return 0, err
	}

	data, err := formats.ReadFile(c.Path)
	if err != nil {
		return 0, formats.ReadFailure("failed to read %s: %v", c.Path, err)
	}

	count, err := parser(data, agg, s.logger)
	if err != nil {
		return 0, err
	}

	s.logger.Info("parsed file",
		zap.String("path", c.Path),
		zap.String("vendor", c.Vendor),
		zap.String("entity", string(c.Entity)),
		zap.Int("records", count),
	)

	return count, nil
}

// WriteAggregate serializes the aggregate to disk as indented JSON.
func (s *Service) WriteAggregate(agg *pos.Aggregate, path string) error {
	data, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize aggregate: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// PullExports downloads every export file under the configured prefix into
// destDir and returns how many were fetched.
func (s *Service) PullExports(ctx context.Context, destDir string) (int, error) {
	if s.client == nil {
		return 0, fmt.Errorf("no storage client configured")
	}

	fetched := 0
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return fetched, fmt.Errorf("failed to list bucket %s: %w", s.bucket, object.Err)
		}

		ext := strings.ToLower(filepath.Ext(object.Key))
		if ext != ".csv" && ext != ".xlsx" {
			continue
		}

		if err := s.downloadObject(ctx, object.Key, destDir); err != nil {
			return fetched, err
		}
		fetched++
	}

	s.logger.Info("pulled exports from storage",
		zap.String("bucket", s.bucket),
		zap.String("prefix", s.prefix),
		zap.Int("files", fetched),
	)

	return fetched, nil
}

func (s *Service) downloadObject(ctx context.Context, key, destDir string) error {
	reader, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", key, err)
	}
	defer reader.Close()

	dest, err := os.Create(filepath.Join(destDir, filepath.Base(key)))
	if err != nil {
		return err
	}
	defer dest.Close()

	if _, err := dest.ReadFrom(reader); err != nil {
		return fmt.Errorf("failed to download %s: %w", key, err)
	}
	return nil
}

// PushAggregate uploads a serialized aggregate file to object storage.
func (s *Service) PushAggregate(ctx context.Context, localPath, objectName string) error {
	if s.client == nil {
		return fmt.Errorf("no storage client configured")
	}

	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, objectName, f, info.Size(), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	s.logger.Info("pushed aggregate to storage",
		zap.String("bucket", s.bucket),
		zap.String("object", objectName),
	)
	return nil
}
