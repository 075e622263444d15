package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/gto-overlay/internal/config"
	"github.com/Veraticus/gto-overlay/internal/solver"
	"github.com/spf13/viper"
)

// envKeyReplacer maps solver.kind to GTO_SOLVER_KIND.
var envKeyReplacer = strings.NewReplacer(".", "_")

// initEngine loads configuration, the range table and probes for the data source.
func initEngine(ctx context.Context, v *viper.Viper) (*solver.Engine, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	table, err := cfg.RangeTable()
	if err != nil {
		return nil, fmt.Errorf("failed to load range table: %w", err)
	}

	return solver.NewEngine(ctx, table, cfg.Engine, cfg.SolverOptions())
}
