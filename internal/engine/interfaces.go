// Package engine implements the recommendation engine that turns a poker
// scenario into an action and a frequency breakdown.
package engine

import "github.com/Veraticus/gto-overlay/internal/model"

// Recommender defines the contract for producing a recommendation.
// Implementations are pure: they never block, never fail and keep no
// per-request state, so a single value may serve concurrent callers.
type Recommender interface {
	Recommend(scenario model.Scenario) model.Recommendation
}
