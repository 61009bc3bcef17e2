// Package packager implements the core packaging operation.
package packager

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"go.trai.ch/binpack/internal/core/domain"
	"go.trai.ch/binpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Packager turns a project's build output into a single zip archive.
// It owns the decision logic only; all filesystem work goes through ports.
type Packager struct {
	collector ports.ArtifactCollector
	archiver  ports.Archiver
	hasher    ports.Hasher
	store     ports.ManifestStore
	tracer    ports.Tracer
	logger    ports.Logger

	now func() time.Time
}

// NewPackager creates a new Packager.
func NewPackager(
	collector ports.ArtifactCollector,
	archiver ports.Archiver,
	hasher ports.Hasher,
	store ports.ManifestStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *Packager {
	return &Packager{
		collector: collector,
		archiver:  archiver,
		hasher:    hasher,
		store:     store,
		tracer:    tracer,
		logger:    logger,
		now:       time.Now,
	}
}

// CreatePackage packages the build output of the project at projectPath.
//
// A missing output directory or an empty artifact set is an expected
// condition and yields a warning outcome with a nil error. Any filesystem
// or archive failure yields a non-nil error; the caller decides how to
// present it. Manifest persistence is best-effort: its failure is logged
// and never downgrades a success.
func (p *Packager) CreatePackage(ctx context.Context, projectPath string, settings domain.Settings) (domain.Outcome, error) {
	ctx, span := p.tracer.Start(ctx, "packager.create")
	defer span.End()

	req := domain.NewPackageRequest(projectPath, settings.Configuration)
	span.SetAttribute("project.name", req.ProjectName)
	span.SetAttribute("project.output_dir", req.OutputDir)

	files, err := p.collector.Collect(req.OutputDir, settings.Extensions)
	if err != nil {
		if errors.Is(err, domain.ErrOutputDirMissing) {
			return domain.WarningOutcome(domain.MsgOutputDirAbsent), nil
		}
		span.RecordError(err)
		return domain.Outcome{}, zerr.With(err, "project", req.ProjectName)
	}

	if len(files) == 0 {
		return domain.WarningOutcome(domain.MsgNoFilesToPack), nil
	}
	span.SetAttribute("artifact.count", len(files))

	if err := p.archiver.Write(req.ArchivePath, files); err != nil {
		span.RecordError(err)
		return domain.Outcome{}, zerr.With(err, "archive", req.ArchivePath)
	}

	p.recordManifest(ctx, req, files)

	return domain.SuccessOutcome(req.ArchivePath, len(files)), nil
}

// recordManifest hashes the packaged artifacts and persists the manifest
// record next to the project file. Failures are logged, not returned.
func (p *Packager) recordManifest(ctx context.Context, req domain.PackageRequest, files []string) {
	_, span := p.tracer.Start(ctx, "packager.manifest")
	defer span.End()

	hash, err := p.hasher.ComputeContentHash(files)
	if err != nil {
		span.RecordError(err)
		p.logger.Warn(zerr.Wrap(err, "skipping manifest").Error())
		return
	}
	span.SetAttribute("content.hash", hash)

	info := domain.PackageInfo{
		ProjectName: req.ProjectName,
		ArchivePath: req.ArchivePath,
		FileCount:   len(files),
		ContentHash: hash,
		CreatedAt:   p.now(),
	}

	if err := p.store.Put(filepath.Dir(req.ProjectPath), info); err != nil {
		span.RecordError(err)
		p.logger.Warn(zerr.Wrap(err, "failed to persist manifest").Error())
	}
}
