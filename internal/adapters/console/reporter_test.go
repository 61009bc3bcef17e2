package console_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"go.trai.ch/binpack/internal/adapters/console"
	"go.trai.ch/binpack/internal/core/domain"
)

func report(t *testing.T, outcome domain.Outcome) []byte {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	console.NewReporterTo(buf).Report(outcome)
	return buf.Bytes()
}

func TestReport_Success(t *testing.T) {
	archive := filepath.Join("bin", "Debug", "App.zip")
	got := report(t, domain.SuccessOutcome(archive, 3))

	g := goldie.New(t)
	g.Assert(t, "success", got)
}

func TestReport_SuccessSingleFile(t *testing.T) {
	archive := filepath.Join("bin", "Debug", "App.zip")
	got := report(t, domain.SuccessOutcome(archive, 1))

	g := goldie.New(t)
	g.Assert(t, "success_single", got)
}

func TestReport_WarningMissingDir(t *testing.T) {
	got := report(t, domain.WarningOutcome(domain.MsgOutputDirAbsent))

	g := goldie.New(t)
	g.Assert(t, "warning_missing_dir", got)
}

func TestReport_WarningNoFiles(t *testing.T) {
	got := report(t, domain.WarningOutcome(domain.MsgNoFilesToPack))

	g := goldie.New(t)
	g.Assert(t, "warning_no_files", got)
}

func TestReport_Error(t *testing.T) {
	got := report(t, domain.ErrorOutcome(domain.ErrPackagingFailed))

	g := goldie.New(t)
	g.Assert(t, "error", got)
}
