// Package app implements the application layer for binpack.
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/binpack/internal/core/domain"
	"go.trai.ch/binpack/internal/core/ports"
	"go.trai.ch/binpack/internal/engine/packager"
	"go.trai.ch/zerr"
)

// DefaultDebounce is the quiet window between a build output change and
// the repack it triggers.
const DefaultDebounce = 500 * time.Millisecond

// App represents the main application logic.
type App struct {
	locator      ports.ProjectLocator
	configLoader ports.ConfigLoader
	packager     *packager.Packager
	store        ports.ManifestStore
	reporter     ports.Reporter
	watcher      ports.Watcher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	locator ports.ProjectLocator,
	loader ports.ConfigLoader,
	pack *packager.Packager,
	store ports.ManifestStore,
	reporter ports.Reporter,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		locator:      locator,
		configLoader: loader,
		packager:     pack,
		store:        store,
		reporter:     reporter,
		watcher:      watcher,
		logger:       log,
	}
}

// Pack packages the project at the given path once and reports the outcome.
func (a *App) Pack(ctx context.Context, path string) error {
	project, settings, err := a.resolve(path)
	if err != nil {
		a.reporter.Report(domain.ErrorOutcome(err))
		return errors.Join(domain.ErrPackagingFailed, err)
	}

	return a.runOnce(ctx, project, settings)
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Debounce is the quiet window before a repack. Zero means DefaultDebounce.
	Debounce time.Duration
}

// Watch packages the project once, then repacks whenever its build output
// directory changes. It returns when ctx is cancelled.
func (a *App) Watch(ctx context.Context, path string, opts WatchOptions) error {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	project, settings, err := a.resolve(path)
	if err != nil {
		a.reporter.Report(domain.ErrorOutcome(err))
		return errors.Join(domain.ErrPackagingFailed, err)
	}

	req := domain.NewPackageRequest(project, settings.Configuration)

	// Initial pack. Failures are reported but keep the watch alive.
	if err := a.runOnce(ctx, project, settings); err != nil {
		a.logger.Error(err)
	}

	if err := a.watcher.Start(ctx, req.OutputDir); err != nil {
		return errors.Join(domain.ErrWatchFailed, err)
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info("watching " + req.OutputDir)

	var mu sync.Mutex
	var timer *time.Timer

	repack := func() {
		if err := a.runOnce(ctx, project, settings); err != nil {
			a.logger.Error(err)
		}
	}

	for event := range a.watcher.Events() {
		if isSelfEvent(event.Path) {
			continue
		}

		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, repack)
		mu.Unlock()
	}

	mu.Lock()
	if timer != nil {
		timer.Stop()
	}
	mu.Unlock()

	return nil
}

// Info returns the manifest recorded by the last successful packaging run
// of the project at path. A nil manifest means no run has been recorded.
func (a *App) Info(_ context.Context, path string) (*domain.PackageInfo, error) {
	project, settings, err := a.resolve(path)
	if err != nil {
		return nil, err
	}

	req := domain.NewPackageRequest(project, settings.Configuration)
	return a.store.Get(filepath.Dir(project), req.ProjectName)
}

// runOnce performs a single packaging pass and reports its outcome.
func (a *App) runOnce(ctx context.Context, project string, settings domain.Settings) error {
	outcome, err := a.packager.CreatePackage(ctx, project, settings)
	if err != nil {
		a.reporter.Report(domain.ErrorOutcome(err))
		return errors.Join(domain.ErrPackagingFailed, err)
	}

	a.reporter.Report(outcome)
	return nil
}

// resolve locates the project file for path and loads its settings.
func (a *App) resolve(path string) (string, domain.Settings, error) {
	if path == "" {
		return "", domain.Settings{}, domain.ErrNoProjectSpecified
	}

	// The config file sits next to the project file, so it can be read
	// before locating and steer the project patterns.
	probeDir := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		probeDir = filepath.Dir(path)
	}

	settings, err := a.configLoader.Load(probeDir)
	if err != nil {
		return "", domain.Settings{}, zerr.Wrap(err, "failed to load project settings")
	}

	project, err := a.locator.Locate(path, settings.ProjectPatterns)
	if err != nil {
		return "", domain.Settings{}, err
	}

	return project, settings, nil
}

// isSelfEvent reports whether a watch event was caused by binpack's own
// output, which must not retrigger packaging.
func isSelfEvent(path string) bool {
	if strings.EqualFold(filepath.Ext(path), domain.ArchiveExt) {
		return true
	}
	return strings.Contains(path, string(filepath.Separator)+domain.BinpackDirName+string(filepath.Separator))
}
