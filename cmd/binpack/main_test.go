package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/binpack/internal/adapters/telemetry"
	"go.trai.ch/binpack/internal/app"
	"go.trai.ch/binpack/internal/core/domain"
	"go.trai.ch/binpack/internal/core/ports/mocks"
	"go.trai.ch/binpack/internal/engine/packager"
	"go.uber.org/mock/gomock"
)

func newTestComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockProjectLocator, *mocks.MockConfigLoader, *mocks.MockReporter) {
	mockLocator := mocks.NewMockProjectLocator(ctrl)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockReporter := mocks.NewMockReporter(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockStore := mocks.NewMockManifestStore(ctrl)
	pack := packager.NewPackager(
		mocks.NewMockArtifactCollector(ctrl),
		mocks.NewMockArchiver(ctrl),
		mocks.NewMockHasher(ctrl),
		mockStore,
		telemetry.NewNoOpTracer(),
		mockLogger,
	)

	application := app.New(mockLocator, mockLoader, pack, mockStore, mockReporter, nil, mockLogger)

	return &app.Components{
		App:      application,
		Logger:   mockLogger,
		Reporter: mockReporter,
	}, mockLocator, mockLoader, mockReporter
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, _, _, _ := newTestComponents(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component
// initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_PackFailure verifies that a failed pack exits 1 without double
// reporting.
func TestRun_PackFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, _, _, mockReporter := newTestComponents(ctrl)

	// The missing project argument is reported exactly once.
	mockReporter.EXPECT().Report(gomock.Any()).Do(func(outcome domain.Outcome) {
		assert.Equal(t, domain.StatusError, outcome.Status)
	})

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"pack"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
