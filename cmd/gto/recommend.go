package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Veraticus/gto-overlay/internal/cli"
	"github.com/Veraticus/gto-overlay/internal/common"
	"github.com/Veraticus/gto-overlay/internal/model"
	"github.com/Veraticus/gto-overlay/internal/solver"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type recommendOptions struct {
	position  string
	cards     string
	board     string
	opponents []string
	stack     int
	json      bool
}

type recommendOutput struct {
	Recommendation model.Recommendation `json:"recommendation"`
	Position       model.Position       `json:"position"`
	Street         model.Street         `json:"street"`
	HoleCards      []string             `json:"hole_cards"`
	Board          []string             `json:"board"`
	Opponents      []model.Opponent     `json:"opponents,omitempty"`
	StackSize      int                  `json:"stack_size"`
}

func recommendCmd() *cobra.Command {
	var opts recommendOptions

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend an action for a scenario",
		Long: `Compute a GTO hint for a position, two hole cards and an optional board.

Cards accept rank+suit pairs such as "AsKh", "10s Jd" or "A♠K♥". A board of
3, 4 or 5 cards moves the hint to the flop, turn or river.`,
		Example: `  gto recommend --position BTN --cards AsKh
  gto recommend --position CO --cards QdQc --board "Ks7d2c" --json
  gto recommend --cards 9s9h --opponent UTG:15/12/65 --opponent BB:40/8/50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := buildGameState(opts)
			if err != nil {
				return err
			}
			e, err := initEngine(cmd.Context(), viper.GetViper())
			if err != nil {
				return err
			}
			return runRecommend(cmd.OutOrStdout(), e, state, opts.json)
		},
	}

	cmd.Flags().StringVarP(&opts.position, "position", "p", string(model.PositionBTN), "table position (UTG, MP, CO, BTN, SB, BB)")
	cmd.Flags().StringVarP(&opts.cards, "cards", "c", "AsKh", "two hole cards")
	cmd.Flags().StringVarP(&opts.board, "board", "b", "", "board cards (0, 3, 4 or 5)")
	cmd.Flags().IntVarP(&opts.stack, "stack", "s", model.DefaultStackSize, "effective stack in big blinds")
	cmd.Flags().StringArrayVarP(&opts.opponents, "opponent", "o", nil, "opponent profile SEAT:vpip/pfr/fold-to-cbet (repeatable, display only)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the recommendation as JSON")

	return cmd
}

// buildGameState applies the flags to a fresh game state. Each update is
// validated, so bad input is reported before the engine is built.
func buildGameState(opts recommendOptions) (*model.GameState, error) {
	state := model.NewGameState()

	pos, err := model.ParsePosition(opts.position)
	if err != nil {
		return nil, common.NewUserError("unrecognized position", err)
	}
	state.UpdatePosition(pos)
	state.UpdateStack(opts.stack)

	hole, err := model.ParseCards(opts.cards)
	if err != nil {
		return nil, common.NewUserError("could not read hole cards", err)
	}
	if len(hole) != 2 {
		return nil, common.NewUserError("need exactly two hole cards",
			fmt.Errorf("%w: got %d", common.ErrInvalidCard, len(hole)))
	}
	if err := state.UpdateHoleCards(hole[0], hole[1]); err != nil {
		return nil, common.NewUserError("invalid hole cards", err)
	}

	if opts.board != "" {
		board, err := model.ParseCards(opts.board)
		if err != nil {
			return nil, common.NewUserError("could not read board", err)
		}
		if err := state.UpdateBoard(board); err != nil {
			return nil, common.NewUserError("invalid board", err)
		}
	}

	if len(opts.opponents) > 0 {
		opponents := make([]model.Opponent, 0, len(opts.opponents))
		for _, raw := range opts.opponents {
			o, err := model.ParseOpponent(raw)
			if err != nil {
				return nil, common.NewUserError("could not read opponent", err)
			}
			opponents = append(opponents, o)
		}
		if err := state.UpdateOpponents(opponents); err != nil {
			return nil, common.NewUserError("invalid opponents", err)
		}
	}

	return state, nil
}

func runRecommend(w io.Writer, e *solver.Engine, state *model.GameState, asJSON bool) error {
	scenario, err := state.Scenario()
	if err != nil {
		return common.NewUserError("invalid scenario", err)
	}
	rec := e.Recommend(scenario)

	if asJSON {
		out := recommendOutput{
			Position:       scenario.Position,
			Street:         scenario.Street,
			HoleCards:      cardStrings(scenario.HoleCards[:]),
			Board:          cardStrings(scenario.Board),
			StackSize:      scenario.StackSize,
			Opponents:      state.Opponents,
			Recommendation: rec,
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode recommendation: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintln(w, cli.RenderRecommendation(scenario, rec)); err != nil {
		return fmt.Errorf("failed to write recommendation: %w", err)
	}
	if len(state.Opponents) > 0 {
		if _, err := fmt.Fprintln(w, cli.RenderOpponents(state.Opponents)); err != nil {
			return fmt.Errorf("failed to write opponents: %w", err)
		}
	}
	return nil
}

func cardStrings(cards []model.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
