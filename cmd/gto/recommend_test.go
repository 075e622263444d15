package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/Veraticus/gto-overlay/internal/common"
	"github.com/Veraticus/gto-overlay/internal/engine"
	"github.com/Veraticus/gto-overlay/internal/model"
	"github.com/Veraticus/gto-overlay/internal/ranges"
	"github.com/Veraticus/gto-overlay/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtinEngine(t *testing.T) *solver.Engine {
	t.Helper()
	table, err := ranges.Builtin()
	require.NoError(t, err)
	e, err := solver.NewEngine(context.Background(), table, engine.DefaultConfig(), solver.Options{Kind: "builtin"})
	require.NoError(t, err)
	return e
}

func TestRecommendCmd_Flags(t *testing.T) {
	cmd := recommendCmd()

	tests := []struct {
		flag string
		want string
	}{
		{flag: "position", want: "BTN"},
		{flag: "cards", want: "AsKh"},
		{flag: "board", want: ""},
		{flag: "stack", want: "100"},
		{flag: "json", want: "false"},
		{flag: "opponent", want: "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := cmd.Flag(tt.flag)
			require.NotNil(t, f, "%s flag should exist", tt.flag)
			assert.Equal(t, tt.want, f.DefValue)
		})
	}
}

func TestBuildGameState(t *testing.T) {
	t.Run("preflop defaults", func(t *testing.T) {
		state, err := buildGameState(recommendOptions{position: "btn", cards: "AsKh", stack: 100})
		require.NoError(t, err)
		assert.Equal(t, model.PositionBTN, state.Position)
		assert.Equal(t, model.StreetPreflop, state.Street)
		assert.Empty(t, state.Board)
	})

	t.Run("board sets street", func(t *testing.T) {
		state, err := buildGameState(recommendOptions{position: "CO", cards: "QdQc", board: "Ks 7d 2c 9h", stack: 40})
		require.NoError(t, err)
		assert.Equal(t, model.StreetTurn, state.Street)
		assert.Len(t, state.Board, 4)
		assert.Equal(t, 40, state.StackSize)
	})

	t.Run("non-positive stack uses default", func(t *testing.T) {
		state, err := buildGameState(recommendOptions{position: "BB", cards: "7h2c", stack: 0})
		require.NoError(t, err)
		assert.Equal(t, model.DefaultStackSize, state.StackSize)
	})

	errCases := []struct {
		wantErr error
		name    string
		opts    recommendOptions
	}{
		{name: "unknown position", opts: recommendOptions{position: "HJ", cards: "AsKh", stack: 100}, wantErr: common.ErrUnknownPosition},
		{name: "bad card", opts: recommendOptions{position: "BTN", cards: "AxKh", stack: 100}, wantErr: common.ErrInvalidCard},
		{name: "one card", opts: recommendOptions{position: "BTN", cards: "As", stack: 100}, wantErr: common.ErrInvalidCard},
		{name: "duplicate", opts: recommendOptions{position: "BTN", cards: "AsKh", board: "As7d2c", stack: 100}, wantErr: common.ErrDuplicateCard},
		{name: "bad opponent", opts: recommendOptions{position: "BTN", cards: "AsKh", stack: 100, opponents: []string{"UTG:15/30/65"}}, wantErr: common.ErrInvalidStat},
		{name: "opponents share a seat", opts: recommendOptions{position: "BTN", cards: "AsKh", stack: 100, opponents: []string{"UTG:15/12/65", "utg:20/10/50"}}, wantErr: common.ErrInvalidStat},
		{name: "two card board", opts: recommendOptions{position: "BTN", cards: "AsKh", board: "7d2c", stack: 100}, wantErr: common.ErrInvalidBoard},
	}
	for _, tt := range errCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildGameState(tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var userErr *common.UserError
			assert.ErrorAs(t, err, &userErr)
		})
	}
}

func TestRunRecommend_JSON(t *testing.T) {
	e := builtinEngine(t)
	state, err := buildGameState(recommendOptions{position: "BTN", cards: "KhAs", stack: 100})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runRecommend(&buf, e, state, true))

	var out recommendOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, model.PositionBTN, out.Position)
	assert.Equal(t, []string{"Kh", "As"}, out.HoleCards)
	assert.Empty(t, out.Board)
	assert.Equal(t, "RAISE 3x", out.Recommendation.Action)
	assert.Equal(t, 68, out.Recommendation.Frequencies[model.ActionRaise])
	assert.Equal(t, model.MatchExact, out.Recommendation.Match)
	assert.Equal(t, "builtin", out.Recommendation.Source)
}

func TestRunRecommend_Panel(t *testing.T) {
	e := builtinEngine(t)
	state, err := buildGameState(recommendOptions{position: "BTN", cards: "AsAh", board: "Ad Kc 2s", stack: 100})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runRecommend(&buf, e, state, false))
	assert.Contains(t, buf.String(), "BET 75%")
	assert.Contains(t, buf.String(), "Strong hand - bet for value")
}

func TestRunRecommend_Opponents(t *testing.T) {
	e := builtinEngine(t)
	state, err := buildGameState(recommendOptions{
		position:  "BTN",
		cards:     "AsKh",
		stack:     100,
		opponents: []string{"UTG:15/12/65", "BB:40/8/50"},
	})
	require.NoError(t, err)
	require.Len(t, state.Opponents, 2)

	var panel bytes.Buffer
	require.NoError(t, runRecommend(&panel, e, state, false))
	assert.Contains(t, panel.String(), "UTG  VPIP 15  PFR 12  F/CB 65")
	assert.Contains(t, panel.String(), "RAISE 3x")

	var out bytes.Buffer
	require.NoError(t, runRecommend(&out, e, state, true))
	var decoded recommendOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, state.Opponents, decoded.Opponents)
	assert.Equal(t, 68, decoded.Recommendation.Frequencies[model.ActionRaise])
}
