package app_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/binpack/internal/adapters/telemetry"
	"go.trai.ch/binpack/internal/app"
	"go.trai.ch/binpack/internal/core/domain"
	"go.trai.ch/binpack/internal/core/ports"
	"go.trai.ch/binpack/internal/core/ports/mocks"
	"go.trai.ch/binpack/internal/engine/packager"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	locator   *mocks.MockProjectLocator
	loader    *mocks.MockConfigLoader
	collector *mocks.MockArtifactCollector
	archiver  *mocks.MockArchiver
	hasher    *mocks.MockHasher
	store     *mocks.MockManifestStore
	reporter  *mocks.MockReporter
	logger    *mocks.MockLogger
}

func newApp(t *testing.T, watch ports.Watcher) (*app.App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := appMocks{
		locator:   mocks.NewMockProjectLocator(ctrl),
		loader:    mocks.NewMockConfigLoader(ctrl),
		collector: mocks.NewMockArtifactCollector(ctrl),
		archiver:  mocks.NewMockArchiver(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		store:     mocks.NewMockManifestStore(ctrl),
		reporter:  mocks.NewMockReporter(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	pack := packager.NewPackager(
		m.collector,
		m.archiver,
		m.hasher,
		m.store,
		telemetry.NewNoOpTracer(),
		m.logger,
	)

	a := app.New(m.locator, m.loader, pack, m.store, m.reporter, watch, m.logger)
	return a, m
}

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	project := filepath.Join(dir, "App.csproj")
	require.NoError(t, os.WriteFile(project, []byte("<Project/>"), 0o644))
	return project
}

func TestPack_NoProject(t *testing.T) {
	a, m := newApp(t, nil)

	m.reporter.EXPECT().Report(gomock.Any()).Do(func(outcome domain.Outcome) {
		assert.Equal(t, domain.StatusError, outcome.Status)
	})

	err := a.Pack(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoProjectSpecified)
	assert.ErrorIs(t, err, domain.ErrPackagingFailed)
}

func TestPack_LocateFails(t *testing.T) {
	a, m := newApp(t, nil)
	project := writeProject(t)

	m.loader.EXPECT().Load(filepath.Dir(project)).Return(domain.DefaultSettings(), nil)
	m.locator.EXPECT().
		Locate(project, domain.DefaultProjectPatterns()).
		Return("", domain.ErrProjectNotFound)
	m.reporter.EXPECT().Report(gomock.Any()).Do(func(outcome domain.Outcome) {
		assert.Equal(t, domain.StatusError, outcome.Status)
	})

	err := a.Pack(context.Background(), project)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestPack_Success(t *testing.T) {
	a, m := newApp(t, nil)
	project := writeProject(t)
	projectDir := filepath.Dir(project)
	outputDir := filepath.Join(projectDir, "bin", "Debug")
	files := []string{filepath.Join(outputDir, "App.dll")}

	m.loader.EXPECT().Load(projectDir).Return(domain.DefaultSettings(), nil)
	m.locator.EXPECT().
		Locate(project, domain.DefaultProjectPatterns()).
		Return(project, nil)
	m.collector.EXPECT().
		Collect(outputDir, domain.DefaultExtensions()).
		Return(files, nil)
	m.archiver.EXPECT().
		Write(filepath.Join(outputDir, "App.zip"), files).
		Return(nil)
	m.hasher.EXPECT().ComputeContentHash(files).Return("00c0ffee00c0ffee", nil)
	m.store.EXPECT().Put(projectDir, gomock.Any()).Return(nil)
	m.reporter.EXPECT().Report(gomock.Any()).Do(func(outcome domain.Outcome) {
		assert.Equal(t, domain.StatusSuccess, outcome.Status)
		assert.Equal(t, 1, outcome.FileCount)
	})

	require.NoError(t, a.Pack(context.Background(), project))
}

func TestPack_MissingOutputDirIsWarning(t *testing.T) {
	a, m := newApp(t, nil)
	project := writeProject(t)

	m.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	m.locator.EXPECT().Locate(project, gomock.Any()).Return(project, nil)
	m.collector.EXPECT().
		Collect(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrOutputDirMissing)
	m.reporter.EXPECT().Report(gomock.Any()).Do(func(outcome domain.Outcome) {
		assert.Equal(t, domain.StatusWarning, outcome.Status)
		assert.Equal(t, domain.MsgOutputDirAbsent, outcome.Message)
	})

	require.NoError(t, a.Pack(context.Background(), project))
}

func TestInfo_ReturnsStoredManifest(t *testing.T) {
	a, m := newApp(t, nil)
	project := writeProject(t)
	projectDir := filepath.Dir(project)
	stored := &domain.PackageInfo{ProjectName: "App", FileCount: 2}

	m.loader.EXPECT().Load(projectDir).Return(domain.DefaultSettings(), nil)
	m.locator.EXPECT().Locate(project, gomock.Any()).Return(project, nil)
	m.store.EXPECT().Get(projectDir, "App").Return(stored, nil)

	info, err := a.Info(context.Background(), project)
	require.NoError(t, err)
	assert.Equal(t, stored, info)
}

func TestInfo_NoProject(t *testing.T) {
	a, _ := newApp(t, nil)

	_, err := a.Info(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoProjectSpecified)
}

// fakeWatcher feeds scripted events to the app, closing its stream when the
// watch context is cancelled.
type fakeWatcher struct {
	events chan ports.WatchEvent

	mu      sync.Mutex
	started string
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{events: make(chan ports.WatchEvent, 16)}
}

func (f *fakeWatcher) Start(ctx context.Context, dir string) error {
	f.mu.Lock()
	f.started = dir
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		close(f.events)
	}()
	return nil
}

func (f *fakeWatcher) Stop() error { return nil }

func (f *fakeWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range f.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (f *fakeWatcher) startedDir() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.started
}

func TestWatch_RepacksOnChange(t *testing.T) {
	watch := newFakeWatcher()
	a, m := newApp(t, watch)
	project := writeProject(t)
	projectDir := filepath.Dir(project)
	outputDir := filepath.Join(projectDir, "bin", "Debug")

	m.loader.EXPECT().Load(projectDir).Return(domain.DefaultSettings(), nil)
	m.locator.EXPECT().Locate(project, gomock.Any()).Return(project, nil)
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	// Initial pack plus one debounced repack, both hitting a missing
	// output dir.
	m.collector.EXPECT().
		Collect(outputDir, domain.DefaultExtensions()).
		Return(nil, domain.ErrOutputDirMissing).
		Times(2)

	var wg sync.WaitGroup
	wg.Add(2)
	m.reporter.EXPECT().Report(gomock.Any()).Times(2).Do(func(outcome domain.Outcome) {
		assert.Equal(t, domain.StatusWarning, outcome.Status)
		wg.Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Watch(ctx, project, app.WatchOptions{Debounce: 10 * time.Millisecond})
	}()

	// The archive's own change must not trigger a repack.
	watch.events <- ports.WatchEvent{Path: filepath.Join(outputDir, "App.zip"), Operation: ports.OpWrite}
	watch.events <- ports.WatchEvent{Path: filepath.Join(outputDir, "App.dll"), Operation: ports.OpWrite}

	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for repack")
	}

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}

	assert.Equal(t, outputDir, watch.startedDir())
}
