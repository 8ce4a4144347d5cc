// Package config holds the run configuration spec.md §6 describes as
// "build-time or top-of-source constants": D, q, N_max, thread count,
// chunk size, and the I/O paths. Defaults are compiled in; an optional
// YAML file (the teacher's setup.Conf shape, generalized from an enum
// to a full tunable struct) can override any subset of them.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config is one run's full set of tunables.
type Config struct {
	D                  int    `yaml:"degree"`
	Q                  int    `yaml:"field_order"`
	NMax               int    `yaml:"n_max"`
	NumThreads         int    `yaml:"num_threads"`
	ChunkSize          int    `yaml:"chunk_size"`
	OutputPath         string `yaml:"output_path"`
	InputOrbitListPath string `yaml:"input_orbit_list_path"`
}

// nMaxTable is spec.md §4.5's table of the smallest N_max known to make
// smoothness over F_q...F_{q^{N_max}} imply geometric smoothness, for
// each degree this system supports.
var nMaxTable = map[int]int{1: 1, 2: 1, 3: 2, 4: 3, 5: 4, 6: 6, 7: 10}

// Default returns the compiled-in default configuration: a degree-3
// curve over F_2, the smallest interesting case with a nontrivial
// classical name (elliptic curves).
func Default() Config {
	d := 3
	return Config{
		D:          d,
		Q:          2,
		NMax:       nMaxTable[d],
		NumThreads: runtime.NumCPU(),
		ChunkSize:  256,
		OutputPath: "smooth_output.txt",
	}
}

// RecommendedNMax returns the N_max spec.md's table assigns to degree
// d, or an error if d is outside the 1..7 range the table covers.
func RecommendedNMax(d int) (int, error) {
	n, ok := nMaxTable[d]
	if !ok {
		return 0, fmt.Errorf("config: no N_max entry for degree %d (supported: 1..7)", d)
	}
	return n, nil
}

// LoadOverride reads a YAML file and overlays any fields it sets onto
// base, returning the merged configuration. A missing file is not an
// error: it simply means no override was supplied.
func LoadOverride(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("config: reading override file %q: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config: parsing override file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration is internally consistent, per
// spec.md §7's "Config mismatch: Fatal" policy.
func (c Config) Validate() error {
	if c.Q != 2 && c.Q != 3 {
		return fmt.Errorf("config: field order must be 2 or 3, got %d", c.Q)
	}
	if c.D < 1 || c.D > 7 {
		return fmt.Errorf("config: degree must be in 1..7, got %d", c.D)
	}
	if c.NMax < 1 {
		return fmt.Errorf("config: n_max must be >= 1, got %d", c.NMax)
	}
	if recommended, err := RecommendedNMax(c.D); err == nil && c.NMax < recommended {
		return fmt.Errorf("config: n_max=%d is below the %d correctness threshold for degree %d", c.NMax, recommended, c.D)
	}
	if c.NumThreads < 1 {
		return fmt.Errorf("config: num_threads must be >= 1, got %d", c.NumThreads)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("config: chunk_size must be >= 1, got %d", c.ChunkSize)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("config: output_path must not be empty")
	}
	return nil
}
