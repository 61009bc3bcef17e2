package packager_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/binpack/internal/adapters/telemetry"
	"go.trai.ch/binpack/internal/core/domain"
	"go.trai.ch/binpack/internal/core/ports/mocks"
	"go.trai.ch/binpack/internal/engine/packager"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type packagerMocks struct {
	collector *mocks.MockArtifactCollector
	archiver  *mocks.MockArchiver
	hasher    *mocks.MockHasher
	store     *mocks.MockManifestStore
	logger    *mocks.MockLogger
}

func newPackager(t *testing.T) (*packager.Packager, packagerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := packagerMocks{
		collector: mocks.NewMockArtifactCollector(ctrl),
		archiver:  mocks.NewMockArchiver(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		store:     mocks.NewMockManifestStore(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	p := packager.NewPackager(
		m.collector,
		m.archiver,
		m.hasher,
		m.store,
		telemetry.NewNoOpTracer(),
		m.logger,
	)
	return p, m
}

func TestCreatePackage_MissingOutputDir(t *testing.T) {
	p, m := newPackager(t)

	projectPath := filepath.Join("/", "src", "App", "App.csproj")
	outputDir := filepath.Join("/", "src", "App", "bin", "Debug")

	m.collector.EXPECT().
		Collect(outputDir, domain.DefaultExtensions()).
		Return(nil, domain.ErrOutputDirMissing)

	outcome, err := p.CreatePackage(context.Background(), projectPath, domain.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWarning, outcome.Status)
	assert.Equal(t, domain.MsgOutputDirAbsent, outcome.Message)
}

func TestCreatePackage_NoFiles(t *testing.T) {
	p, m := newPackager(t)

	projectPath := filepath.Join("/", "src", "App", "App.csproj")

	m.collector.EXPECT().
		Collect(gomock.Any(), gomock.Any()).
		Return([]string{}, nil)

	outcome, err := p.CreatePackage(context.Background(), projectPath, domain.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWarning, outcome.Status)
	assert.Equal(t, domain.MsgNoFilesToPack, outcome.Message)
}

func TestCreatePackage_Success(t *testing.T) {
	p, m := newPackager(t)

	projectDir := filepath.Join("/", "src", "App")
	projectPath := filepath.Join(projectDir, "App.csproj")
	outputDir := filepath.Join(projectDir, "bin", "Debug")
	archivePath := filepath.Join(outputDir, "App.zip")
	files := []string{
		filepath.Join(outputDir, "App.dll"),
		filepath.Join(outputDir, "App.xml"),
	}

	m.collector.EXPECT().
		Collect(outputDir, domain.DefaultExtensions()).
		Return(files, nil)
	m.archiver.EXPECT().
		Write(archivePath, files).
		Return(nil)
	m.hasher.EXPECT().
		ComputeContentHash(files).
		Return("00c0ffee00c0ffee", nil)
	m.store.EXPECT().
		Put(projectDir, gomock.Any()).
		DoAndReturn(func(_ string, info domain.PackageInfo) error {
			assert.Equal(t, "App", info.ProjectName)
			assert.Equal(t, archivePath, info.ArchivePath)
			assert.Equal(t, 2, info.FileCount)
			assert.Equal(t, "00c0ffee00c0ffee", info.ContentHash)
			assert.False(t, info.CreatedAt.IsZero())
			return nil
		})

	outcome, err := p.CreatePackage(context.Background(), projectPath, domain.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, outcome.Status)
	assert.Equal(t, domain.MsgPackageCreated, outcome.Message)
	assert.Equal(t, archivePath, outcome.ArchivePath)
	assert.Equal(t, 2, outcome.FileCount)
}

func TestCreatePackage_CustomConfiguration(t *testing.T) {
	p, m := newPackager(t)

	projectDir := filepath.Join("/", "src", "App")
	projectPath := filepath.Join(projectDir, "App.csproj")
	outputDir := filepath.Join(projectDir, "bin", "Release")

	settings := domain.DefaultSettings()
	settings.Configuration = "Release"

	m.collector.EXPECT().
		Collect(outputDir, settings.Extensions).
		Return(nil, domain.ErrOutputDirMissing)

	outcome, err := p.CreatePackage(context.Background(), projectPath, settings)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWarning, outcome.Status)
}

func TestCreatePackage_CollectError(t *testing.T) {
	p, m := newPackager(t)

	m.collector.EXPECT().
		Collect(gomock.Any(), gomock.Any()).
		Return(nil, zerr.Wrap(domain.ErrCollectFailed, "permission denied"))

	outcome, err := p.CreatePackage(context.Background(), filepath.Join("/", "src", "App", "App.csproj"), domain.DefaultSettings())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCollectFailed))
	assert.Equal(t, domain.Outcome{}, outcome)
}

func TestCreatePackage_ArchiveError(t *testing.T) {
	p, m := newPackager(t)

	files := []string{filepath.Join("/", "src", "App", "bin", "Debug", "App.dll")}

	m.collector.EXPECT().
		Collect(gomock.Any(), gomock.Any()).
		Return(files, nil)
	m.archiver.EXPECT().
		Write(gomock.Any(), files).
		Return(zerr.Wrap(domain.ErrArchiveCreateFailed, "disk full"))

	_, err := p.CreatePackage(context.Background(), filepath.Join("/", "src", "App", "App.csproj"), domain.DefaultSettings())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrArchiveCreateFailed))
}

func TestCreatePackage_HashFailureKeepsSuccess(t *testing.T) {
	p, m := newPackager(t)

	files := []string{filepath.Join("/", "src", "App", "bin", "Debug", "App.dll")}

	m.collector.EXPECT().
		Collect(gomock.Any(), gomock.Any()).
		Return(files, nil)
	m.archiver.EXPECT().
		Write(gomock.Any(), files).
		Return(nil)
	m.hasher.EXPECT().
		ComputeContentHash(files).
		Return("", domain.ErrFileHashFailed)
	m.logger.EXPECT().
		Warn(gomock.Any())

	outcome, err := p.CreatePackage(context.Background(), filepath.Join("/", "src", "App", "App.csproj"), domain.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, outcome.Status)
}

func TestCreatePackage_ManifestFailureKeepsSuccess(t *testing.T) {
	p, m := newPackager(t)

	files := []string{filepath.Join("/", "src", "App", "bin", "Debug", "App.dll")}

	m.collector.EXPECT().
		Collect(gomock.Any(), gomock.Any()).
		Return(files, nil)
	m.archiver.EXPECT().
		Write(gomock.Any(), files).
		Return(nil)
	m.hasher.EXPECT().
		ComputeContentHash(files).
		Return("00c0ffee00c0ffee", nil)
	m.store.EXPECT().
		Put(gomock.Any(), gomock.Any()).
		Return(domain.ErrManifestWriteFailed)
	m.logger.EXPECT().
		Warn(gomock.Any())

	outcome, err := p.CreatePackage(context.Background(), filepath.Join("/", "src", "App", "App.csproj"), domain.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, outcome.Status)
}
