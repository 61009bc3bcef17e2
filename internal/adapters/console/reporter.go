// Package console implements the Reporter port on a terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/binpack/internal/core/domain"
	"go.trai.ch/binpack/internal/core/ports"
	"go.trai.ch/binpack/internal/ui/output"
	"go.trai.ch/binpack/internal/ui/style"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter prints packaging outcomes to a terminal, one line per outcome.
// It stands in for the original host's modal result dialog.
type Reporter struct {
	out *termenv.Output
}

// NewReporter creates a Reporter writing to stdout.
func NewReporter() *Reporter {
	return NewReporterTo(os.Stdout)
}

// NewReporterTo creates a Reporter writing to the given writer.
func NewReporterTo(w io.Writer) *Reporter {
	return &Reporter{out: output.New(w)}
}

// Report prints the outcome with a status icon and color.
func (r *Reporter) Report(outcome domain.Outcome) {
	var line string
	var color termenv.Color

	switch outcome.Status {
	case domain.StatusSuccess:
		line = fmt.Sprintf("%s %s: %s (%s)",
			style.Check, outcome.Message, outcome.ArchivePath, countFiles(outcome.FileCount))
		color = termenv.RGBColor(string(style.Green))
	case domain.StatusWarning:
		line = style.Warning + " " + outcome.Message
		color = termenv.RGBColor(string(style.Yellow))
	case domain.StatusError:
		line = style.Cross + " " + outcome.Message
		color = termenv.RGBColor(string(style.Red))
	}

	styled := r.out.String(line).Foreground(color)
	_, _ = r.out.WriteString(styled.String() + "\n")
}

func countFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
