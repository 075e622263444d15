// Package solver picks the recommendation data source at startup and
// exposes the resulting engine.
package solver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/Veraticus/gto-overlay/internal/engine"
)

// Default executables probed for each external kind.
const (
	DefaultToolName     = "texassolver"
	DefaultWASMToolName = "wasm-postflop"
)

// ToolNameFor returns the executable probed for kind when no tool is configured.
func ToolNameFor(kind engine.SourceKind) string {
	if kind == engine.SourceWASM {
		return DefaultWASMToolName
	}
	return DefaultToolName
}

// DefaultProbeTimeout bounds the startup probe.
const DefaultProbeTimeout = 2 * time.Second

// KindAuto selects texassolver when the executable resolves and builtin otherwise.
const KindAuto = "auto"

// Prober resolves an executable on the host.
type Prober interface {
	LookPath(name string) (string, error)
}

// PathProber resolves executables through PATH.
type PathProber struct{}

// LookPath implements Prober.
func (PathProber) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Options control initialization.
type Options struct {
	Prober   Prober
	Kind     string // auto, builtin, texassolver or wasm
	ToolName string // executable to search for; empty uses ToolNameFor(Kind)
	ToolPath string // explicit executable; skips the PATH search
	Timeout  time.Duration
}

// Status reports the data source in use. An empty ToolPath encodes as a
// JSON null path.
type Status struct {
	Kind        engine.SourceKind
	ToolPath    string
	Initialized bool
}

// MarshalJSON implements json.Marshaler.
func (s Status) MarshalJSON() ([]byte, error) {
	var path *string
	if s.ToolPath != "" {
		path = &s.ToolPath
	}
	return json.Marshal(struct {
		Kind        engine.SourceKind `json:"kind"`
		Initialized bool              `json:"initialized"`
		Path        *string           `json:"path"`
	}{Kind: s.Kind, Initialized: s.Initialized, Path: path})
}

// Initialize decides the data source. It never fails: any probe problem,
// including a timeout, leaves the engine on builtin.
func Initialize(ctx context.Context, opts Options) Status {
	builtin := Status{Kind: engine.SourceBuiltin, Initialized: true}

	kind := opts.Kind
	if kind == "" {
		kind = KindAuto
	}

	want := engine.SourceTexasSolver
	if kind != KindAuto {
		parsed, err := engine.ParseSourceKind(kind)
		if err != nil {
			slog.Warn("Unknown data source, using builtin", "kind", kind, "error", err)
			return builtin
		}
		if parsed == engine.SourceBuiltin {
			slog.Info("Using built-in GTO lookup tables")
			return builtin
		}
		want = parsed
	}

	path, err := probe(ctx, want, opts)
	if err != nil {
		slog.Info("Using built-in GTO lookup tables", "requested", want, "reason", err)
		return builtin
	}

	slog.Info("External solver found", "kind", want, "path", path)
	return Status{Kind: want, ToolPath: path, Initialized: true}
}

// probe runs the presence check with a timeout. The lookup goroutine may
// outlive a timed-out probe; its result is discarded.
func probe(ctx context.Context, kind engine.SourceKind, opts Options) (string, error) {
	prober := opts.Prober
	if prober == nil {
		prober = PathProber{}
	}

	name := opts.ToolPath
	if name == "" {
		name = opts.ToolName
	}
	if name == "" {
		name = ToolNameFor(kind)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		err  error
		path string
	}
	resultCh := make(chan result, 1)

	go func() {
		path, err := prober.LookPath(name)
		resultCh <- result{path: path, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("probe for %s: %w", name, ctx.Err())
	case r := <-resultCh:
		if r.err != nil {
			return "", fmt.Errorf("probe for %s: %w", name, r.err)
		}
		if r.path == "" {
			return "", fmt.Errorf("probe for %s: empty path", name)
		}
		return r.path, nil
	}
}
