// Package progress implements spec.md §5's "best-effort non-blocking
// print" logging and the human-readable run summary. It sits entirely
// outside the computational kernel: field, monomial, orbit, curve and
// workpool take no logging dependency at all, per SPEC_FULL.md §6.
//
// Logging is structured (github.com/rs/zerolog) with a TTY-aware,
// colorized console writer when attached to a terminal
// (github.com/mattn/go-isatty, github.com/mattn/go-colorable) and plain
// JSON otherwise, matching the teacher's convention of narrating each
// pipeline stage sequentially in examples/*/main.go, rendered here as
// structured log lines instead of bare fmt.Println.
package progress

import (
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger configured for this run.
type Logger struct {
	zerolog.Logger
}

// New returns a Logger writing to w (or, if w is nil, to a TTY-aware
// writer over os.Stderr: colorized console output when os.Stderr is a
// terminal, plain JSON otherwise).
func New(w io.Writer) Logger {
	if w == nil {
		w = defaultWriter()
	}
	base := zerolog.New(w).With().Timestamp().Logger()
	return Logger{base}
}

func defaultWriter() io.Writer {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return zerolog.ConsoleWriter{Out: colorable.NewColorable(os.Stderr), TimeFormat: time.Kitchen}
	}
	return os.Stderr
}

// Stage logs the start of one of the pipeline's numbered phases
// (spec.md §2): field/table construction, orbit reduction, the
// smoothness pass, or output emission.
func (l Logger) Stage(name string) {
	l.Info().Str("stage", name).Msg("stage started")
}

// TablesBuilt reports how many extension levels' evaluation tables
// were materialized and how long it took.
func (l Logger) TablesBuilt(nMax int, elapsed time.Duration) {
	l.Info().
		Int("n_max", nMax).
		Str("elapsed", elapsed.Round(time.Millisecond).String()).
		Msg("evaluation tables built")
}

// OrbitsReduced reports the orbit-reduction pass's outcome: the number
// of orbits emitted, the total nonzero-polynomial count they cover
// (humanized for readability), and how long the sweep took.
func (l Logger) OrbitsReduced(orbitCount int, totalCovered uint64, elapsed time.Duration) {
	l.Info().
		Int("orbits", orbitCount).
		Str("polynomials_covered", humanize.Comma(int64(totalCovered))).
		Str("elapsed", elapsed.Round(time.Millisecond).String()).
		Msg("orbit reduction complete")
}

// WorkerProgress logs a debug-level progress tick: chunks done out of
// chunks total. Neither workpool nor cmd/spc calls it.
func (l Logger) WorkerProgress(done, total int) {
	l.Debug().
		Int("chunks_done", done).
		Int("chunks_total", total).
		Msg("progress")
}

// RunComplete logs the final summary: how many smooth orbits were
// found, the total run time, and the output path written.
func (l Logger) RunComplete(smoothOrbits int, elapsed time.Duration, outputPath string) {
	l.Info().
		Int("smooth_orbits", smoothOrbits).
		Str("elapsed", elapsed.Round(time.Millisecond).String()).
		Str("output", outputPath).
		Msg("run complete")
}

// Fatal logs err as a fatal condition and exits the process with
// status 1. Used only by cmd/spc, per SPEC_FULL.md §7's convention
// that cmd/spc/main.go is the sole caller of a fatal exit path; every
// other package returns a wrapped error instead.
func (l Logger) Fatal(stage string, err error) {
	l.Error().Str("stage", stage).Err(err).Msg("fatal")
	os.Exit(1)
}
