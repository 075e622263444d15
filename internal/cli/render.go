package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/gto-overlay/internal/model"
	"github.com/Veraticus/gto-overlay/internal/solver"
	"github.com/charmbracelet/lipgloss"
)

func row(label, value string) string {
	return LabelStyle.Render(label) + value
}

func prettyCards(cards []model.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " ")
}

// RenderScenario describes the table situation a hint was computed for.
func RenderScenario(s model.Scenario) string {
	lines := []string{
		row("Position", string(s.Position)),
		row("Stack", fmt.Sprintf("%dbb", s.StackSize)),
		row("Hand", prettyCards(s.HoleCards[:])),
		row("Street", string(s.Street)),
		row("Board", prettyCards(s.Board)),
	}
	if desc := DescribeHand(s.HoleCards, s.Board); desc != "" {
		lines = append(lines, row("Made hand", desc))
	}
	return strings.Join(lines, "\n")
}

// RenderFrequencies lists non-zero frequencies in display order, for
// example "Raise 68%  Call 22%  Fold 10%".
func RenderFrequencies(f model.Frequencies) string {
	kinds := f.NonZero()
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		style := lipgloss.NewStyle().Foreground(ActionColor(k))
		parts = append(parts, style.Render(fmt.Sprintf("%s %d%%", k.Label(), f[k])))
	}
	return strings.Join(parts, "  ")
}

func primaryKind(f model.Frequencies) model.ActionKind {
	var best model.ActionKind
	for _, k := range f.Ordered() {
		if best == "" || f[k] > f[best] {
			best = k
		}
	}
	return best
}

// RenderRecommendation renders the hint panel for a recommendation.
func RenderRecommendation(s model.Scenario, rec model.Recommendation) string {
	action := ActionStyle.Foreground(ActionColor(primaryKind(rec.Frequencies))).Render(rec.Action)

	lines := []string{
		FormatTitle("GTO Hint"),
		"",
		RenderScenario(s),
		"",
		row("Action", action),
		row("Mix", RenderFrequencies(rec.Frequencies)),
	}
	if rec.Reasoning != "" {
		lines = append(lines, row("Why", rec.Reasoning))
	}
	lines = append(lines, SubtleStyle.Render(fmt.Sprintf("%s · %s match · %.0f%% confidence",
		rec.Source, rec.Match, rec.Confidence*100)))

	return BoxStyle.Render(strings.Join(lines, "\n"))
}

// RenderOpponents lists tracked opponents, one seat per line, as
// "UTG  VPIP 15  PFR 12  F/CB 65".
func RenderOpponents(opponents []model.Opponent) string {
	if len(opponents) == 0 {
		return ""
	}
	lines := []string{FormatTitle("Opponents")}
	for _, o := range opponents {
		line := fmt.Sprintf("%-4s VPIP %d  PFR %d  F/CB %d",
			o.Position, o.Stats.VPIP, o.Stats.PFR, o.Stats.FoldToCBet)
		if o.GTODeviation != 0 {
			line += SubtleStyle.Render(fmt.Sprintf("  dev %+d", o.GTODeviation))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderStatus renders the solver status line.
func RenderStatus(st solver.Status) string {
	if !st.Initialized {
		return FormatWarning("engine not initialized")
	}
	lines := []string{
		FormatTitle("Solver"),
		row("Source", string(st.Kind)),
	}
	if st.ToolPath != "" {
		lines = append(lines, row("Tool", st.ToolPath))
	} else {
		lines = append(lines, row("Tool", SubtleStyle.Render("none, using builtin ranges")))
	}
	return strings.Join(lines, "\n")
}
