// Package config loads gto-overlay settings from viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/gto-overlay/internal/common"
	"github.com/Veraticus/gto-overlay/internal/engine"
	"github.com/Veraticus/gto-overlay/internal/model"
	"github.com/Veraticus/gto-overlay/internal/ranges"
	"github.com/Veraticus/gto-overlay/internal/solver"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeySolverKind         = "solver.kind"
	KeySolverTool         = "solver.tool"
	KeySolverPath         = "solver.path"
	KeySolverProbeTimeout = "solver.probe_timeout"
	KeyRangesFile         = "ranges.file"
	KeyEngineConfidence   = "engine.confidence"
	KeyPostflopBuckets    = "postflop.buckets"
)

// Config holds everything needed to build an engine.
type Config struct {
	RangesFile   string
	SolverKind   string
	SolverTool   string
	SolverPath   string
	Engine       engine.Config
	ProbeTimeout time.Duration
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		SolverKind:   solver.KindAuto,
		ProbeTimeout: solver.DefaultProbeTimeout,
		Engine:       engine.DefaultConfig(),
	}
}

// SetDefaults registers defaults on v so that env-only configuration works.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeySolverKind, d.SolverKind)
	v.SetDefault(KeySolverProbeTimeout, d.ProbeTimeout)
	v.SetDefault(KeyEngineConfidence, d.Engine.Confidence)
}

type bucketDoc struct {
	Frequencies map[string]int `mapstructure:"frequencies"`
	Action      string         `mapstructure:"action"`
	Reasoning   string         `mapstructure:"reasoning"`
	Above       float64        `mapstructure:"above"`
}

// Load reads configuration from v, falling back to defaults for unset keys.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()

	if s := v.GetString(KeySolverKind); s != "" {
		cfg.SolverKind = s
	}
	if s := v.GetString(KeySolverTool); s != "" {
		cfg.SolverTool = s
	}
	if s := v.GetString(KeySolverPath); s != "" {
		cfg.SolverPath = ExpandPath(s)
	}
	if d := v.GetDuration(KeySolverProbeTimeout); d > 0 {
		cfg.ProbeTimeout = d
	}
	if s := v.GetString(KeyRangesFile); s != "" {
		cfg.RangesFile = ExpandPath(s)
	}
	if v.IsSet(KeyEngineConfidence) {
		cfg.Engine.Confidence = v.GetFloat64(KeyEngineConfidence)
	}

	if v.IsSet(KeyPostflopBuckets) {
		var docs []bucketDoc
		if err := v.UnmarshalKey(KeyPostflopBuckets, &docs); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyPostflopBuckets, err)
		}
		buckets, err := toBuckets(docs)
		if err != nil {
			return Config{}, err
		}
		cfg.Engine.Buckets = buckets
	}

	if err := engine.ValidateBuckets(cfg.Engine.Buckets); err != nil {
		return Config{}, err
	}
	if cfg.SolverKind != solver.KindAuto {
		if _, err := engine.ParseSourceKind(cfg.SolverKind); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func toBuckets(docs []bucketDoc) ([]engine.Bucket, error) {
	buckets := make([]engine.Bucket, 0, len(docs))
	for _, d := range docs {
		freqs := make(model.Frequencies, len(d.Frequencies))
		for name, pct := range d.Frequencies {
			kind, ok := model.ParseActionKind(name)
			if !ok {
				return nil, fmt.Errorf("%w: postflop bucket %q action kind %q", common.ErrInvalidFrequency, d.Action, name)
			}
			freqs[kind] = pct
		}
		buckets = append(buckets, engine.Bucket{
			Above:       d.Above,
			Action:      d.Action,
			Reasoning:   d.Reasoning,
			Frequencies: freqs,
		})
	}
	return buckets, nil
}

// RangeTable returns the configured table: the file when one is set,
// otherwise the builtin tuning.
func (c Config) RangeTable() (*ranges.Table, error) {
	if c.RangesFile == "" {
		return ranges.Builtin()
	}
	return ranges.LoadFile(c.RangesFile)
}

// SolverOptions converts the solver settings for solver.Initialize.
func (c Config) SolverOptions() solver.Options {
	return solver.Options{
		Kind:     c.SolverKind,
		ToolName: c.SolverTool,
		ToolPath: c.SolverPath,
		Timeout:  c.ProbeTimeout,
	}
}

// ExpandPath resolves environment variables and a leading ~ in a path.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
