package engine

import (
	"fmt"
	"strings"

	"github.com/Veraticus/gto-overlay/internal/common"
	"github.com/Veraticus/gto-overlay/internal/model"
)

// SourceKind names where recommendations come from.
type SourceKind string

// Data sources.
const (
	SourceBuiltin     SourceKind = "builtin"
	SourceTexasSolver SourceKind = "texassolver"
	SourceWASM        SourceKind = "wasm"
)

// ParseSourceKind parses a data-source name.
func ParseSourceKind(s string) (SourceKind, error) {
	switch SourceKind(strings.ToLower(strings.TrimSpace(s))) {
	case SourceBuiltin:
		return SourceBuiltin, nil
	case SourceTexasSolver:
		return SourceTexasSolver, nil
	case SourceWASM:
		return SourceWASM, nil
	default:
		return "", fmt.Errorf("%w: unsupported data source %q", common.ErrInvalidConfig, s)
	}
}

// External stands in for an external solver integration that does not
// exist yet. Every request is answered by the fallback, and the result
// keeps the fallback's Source so callers can see who actually answered.
type External struct {
	fallback Recommender
	kind     SourceKind
	toolPath string
}

// Kind returns the external source this variant represents.
func (e *External) Kind() SourceKind {
	return e.kind
}

// ToolPath returns the resolved executable, if any.
func (e *External) ToolPath() string {
	return e.toolPath
}

// Recommend implements Recommender.
func (e *External) Recommend(scenario model.Scenario) model.Recommendation {
	common.LogDebug("External solver not yet implemented, using builtin", common.Fields{
		"source":    e.kind,
		"tool_path": e.toolPath,
		"street":    scenario.Street,
	})
	return e.fallback.Recommend(scenario)
}

// New returns the recommender for a data source. External kinds wrap
// builtin as their fallback.
func New(kind SourceKind, toolPath string, builtin *Builtin) (Recommender, error) {
	if builtin == nil {
		return nil, fmt.Errorf("%w: builtin recommender", common.ErrMissingConfig)
	}

	switch kind {
	case SourceBuiltin:
		return builtin, nil
	case SourceTexasSolver, SourceWASM:
		return &External{kind: kind, toolPath: toolPath, fallback: builtin}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported data source %q", common.ErrInvalidConfig, kind)
	}
}
