// Command spc (smooth polynomial counter) is the CLI entrypoint wiring
// config -> table/basis construction -> orbit -> workpool -> curve ->
// ioformat, per SPEC_FULL.md §2's orchestration stage. It follows the
// teacher's examples/*/main.go convention: sequential steps, each
// guarded by an immediate fatal exit on error, with no recovery path
// for a mid-run failure (spec.md §7: "The run either completes and
// produces a full output file, or it aborts with a diagnostic and
// leaves no output.").
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Chrisvossetje/smooth-polynomial-counter/config"
	"github.com/Chrisvossetje/smooth-polynomial-counter/curve"
	"github.com/Chrisvossetje/smooth-polynomial-counter/field"
	"github.com/Chrisvossetje/smooth-polynomial-counter/ioformat"
	"github.com/Chrisvossetje/smooth-polynomial-counter/monomial"
	"github.com/Chrisvossetje/smooth-polynomial-counter/orbit"
	"github.com/Chrisvossetje/smooth-polynomial-counter/progress"
	"github.com/Chrisvossetje/smooth-polynomial-counter/workpool"
)

func main() {
	log := progress.New(nil)

	var overridePath string
	flag.StringVar(&overridePath, "config", "",
		"optional YAML file overriding the compiled-in defaults (spec.md §6: no flags are required)")
	flag.Parse()

	cfg := config.Default()
	if overridePath != "" {
		var err error
		cfg, err = config.LoadOverride(overridePath, cfg)
		if err != nil {
			log.Fatal("config", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("config", err)
	}

	basis := monomial.Basis(cfg.D)
	dx, dy, dz := monomial.DerivativeBasis(basis, cfg.Q)

	log.Stage("tables")
	start := time.Now()
	fields := make([]*field.Field, cfg.NMax)
	levels := make([]curve.Tables, cfg.NMax)
	for n := 1; n <= cfg.NMax; n++ {
		f, err := field.New(cfg.Q, n)
		if err != nil {
			log.Fatal("tables", err)
		}
		fields[n-1] = f
		levels[n-1] = curve.Build(f, basis, dx, dy, dz)
	}
	log.TablesBuilt(cfg.NMax, time.Since(start))

	records, err := loadOrReduceOrbits(log, cfg, basis)
	if err != nil {
		log.Fatal("orbits", err)
	}

	log.Stage("smoothness-pass")
	start = time.Now()
	agg := curve.NewAggregator(cfg.NMax)
	queue := workpool.NewQueue(len(records), cfg.ChunkSize)
	runErr := workpool.Run(context.Background(), cfg.NumThreads, queue,
		func(_ context.Context, chunk workpool.Chunk) error {
			for i := chunk.Start; i < chunk.End; i++ {
				rec := records[i]
				smooth, points, survived := curve.Evaluate(levels, fields, rec.Representative)
				agg.Add(rec, smooth, points, survived)
			}
			return nil
		})
	if runErr != nil {
		log.Fatal("smoothness-pass", runErr)
	}

	results := agg.Results()
	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		log.Fatal("output", err)
	}
	if err := ioformat.WriteResults(out, basis, results); err != nil {
		out.Close()
		os.Remove(cfg.OutputPath)
		log.Fatal("output", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(cfg.OutputPath)
		log.Fatal("output", err)
	}

	log.RunComplete(len(results), time.Since(start), cfg.OutputPath)
}

// loadOrReduceOrbits returns the orbit list either by parsing a
// precomputed file (cfg.InputOrbitListPath set — the only supported
// path once the packed coefficient vector needs more than
// orbit.MaxCodeBits bits, per spec.md's design note
// on packed-bitset impracticality at q=3, D>=5) or by running the
// PGL_3(F_q) sweep directly.
func loadOrReduceOrbits(log progress.Logger, cfg config.Config, basis []monomial.Term) ([]orbit.Record, error) {
	if cfg.InputOrbitListPath != "" {
		log.Stage("orbit-list-read")
		fh, err := os.Open(cfg.InputOrbitListPath)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		return ioformat.ReadOrbitList(fh, basis, cfg.Q)
	}

	log.Stage("orbit-reduction")
	start := time.Now()
	matrices := orbit.GeneratePGL3(cfg.Q)
	actionTable := orbit.BuildActionTable(basis, matrices, cfg.Q)
	records, err := orbit.Reduce(basis, cfg.Q, actionTable)
	if err != nil {
		return nil, err
	}
	var totalCovered uint64
	for _, r := range records {
		totalCovered += r.Size
	}
	log.OrbitsReduced(len(records), totalCovered, time.Since(start))
	return records, nil
}
