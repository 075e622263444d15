package cli

import (
	"strings"
	"testing"

	"github.com/Veraticus/gto-overlay/internal/engine"
	"github.com/Veraticus/gto-overlay/internal/model"
	"github.com/Veraticus/gto-overlay/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCards(t *testing.T, s string) []model.Card {
	t.Helper()
	cards, err := model.ParseCards(s)
	require.NoError(t, err)
	return cards
}

func TestRenderFrequencies(t *testing.T) {
	out := RenderFrequencies(model.Frequencies{
		model.ActionRaise: 68,
		model.ActionCall:  22,
		model.ActionFold:  10,
	})
	assert.Contains(t, out, "Raise 68%")
	assert.Contains(t, out, "Call 22%")
	assert.Contains(t, out, "Fold 10%")
	assert.Less(t, strings.Index(out, "Raise"), strings.Index(out, "Fold"))

	out = RenderFrequencies(model.Frequencies{model.ActionBet: 85, model.ActionCheck: 15, model.ActionFold: 0})
	assert.Contains(t, out, "Bet 85%")
	assert.NotContains(t, out, "Fold")
}

func TestRenderRecommendation(t *testing.T) {
	hole := mustCards(t, "AsKh")
	s, err := model.NewScenario(model.PositionBTN, [2]model.Card{hole[0], hole[1]}, nil, 100)
	require.NoError(t, err)

	rec := model.Recommendation{
		Frequencies: model.Frequencies{model.ActionRaise: 68, model.ActionCall: 22, model.ActionFold: 10},
		Action:      "RAISE 3x",
		Reasoning:   engine.DefaultReasoning,
		Source:      "builtin",
		Match:       model.MatchExact,
		Confidence:  0.85,
	}

	out := RenderRecommendation(s, rec)
	for _, want := range []string{"GTO Hint", "BTN", "100bb", "A♠ K♥", "PREFLOP", "RAISE 3x", "Raise 68%", engine.DefaultReasoning, "builtin", "exact match", "85% confidence"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Made hand")
}

func TestRenderScenario_Postflop(t *testing.T) {
	hole := mustCards(t, "AsAh")
	board := mustCards(t, "Kd 7c 2s")
	s, err := model.NewScenario(model.PositionCO, [2]model.Card{hole[0], hole[1]}, board, 40)
	require.NoError(t, err)

	out := RenderScenario(s)
	assert.Contains(t, out, "FLOP")
	assert.Contains(t, out, "K♦ 7♣ 2♠")
	assert.Contains(t, out, "40bb")
	assert.Contains(t, out, "Made hand")
}

func TestRenderStatus(t *testing.T) {
	out := RenderStatus(solver.Status{Kind: engine.SourceTexasSolver, ToolPath: "/usr/bin/texassolver", Initialized: true})
	assert.Contains(t, out, "texassolver")
	assert.Contains(t, out, "/usr/bin/texassolver")

	out = RenderStatus(solver.Status{Kind: engine.SourceBuiltin, Initialized: true})
	assert.Contains(t, out, "builtin")
	assert.Contains(t, out, "none")

	assert.Contains(t, RenderStatus(solver.Status{}), "not initialized")
}

func TestDescribeHand(t *testing.T) {
	hole := mustCards(t, "AsAh")
	pair := [2]model.Card{hole[0], hole[1]}

	tests := []struct {
		name  string
		board string
		want  bool
	}{
		{name: "preflop", board: "", want: false},
		{name: "flop", board: "Kd7c2s", want: true},
		{name: "turn", board: "Kd7c2sAd", want: true},
		{name: "river", board: "Kd7c2sAd3h", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var board []model.Card
			if tt.board != "" {
				board = mustCards(t, tt.board)
			}
			desc := DescribeHand(pair, board)
			if tt.want {
				assert.NotEmpty(t, desc)
			} else {
				assert.Empty(t, desc)
			}
		})
	}
}

func TestActionColor(t *testing.T) {
	assert.Equal(t, AggressiveColor, ActionColor(model.ActionRaise))
	assert.Equal(t, AggressiveColor, ActionColor(model.ActionBet))
	assert.Equal(t, PassiveColor, ActionColor(model.ActionCheck))
	assert.Equal(t, FoldColor, ActionColor(model.ActionFold))
}

func TestRenderOpponents(t *testing.T) {
	assert.Empty(t, RenderOpponents(nil))

	out := RenderOpponents([]model.Opponent{
		{Position: model.PositionUTG, Stats: model.OpponentStats{VPIP: 15, PFR: 12, FoldToCBet: 65}, GTODeviation: 2},
		{Position: model.PositionBB, Stats: model.OpponentStats{VPIP: 40, PFR: 8, FoldToCBet: 50}},
	})
	assert.Contains(t, out, "Opponents")
	assert.Contains(t, out, "UTG  VPIP 15  PFR 12  F/CB 65")
	assert.Contains(t, out, "dev +2")
	assert.Contains(t, out, "BB   VPIP 40  PFR 8  F/CB 50")
	assert.Equal(t, 1, strings.Count(out, "dev "))
}
