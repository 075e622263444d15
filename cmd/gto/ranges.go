package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/gto-overlay/internal/cli"
	"github.com/Veraticus/gto-overlay/internal/common"
	"github.com/Veraticus/gto-overlay/internal/config"
	"github.com/Veraticus/gto-overlay/internal/model"
	"github.com/Veraticus/gto-overlay/internal/ranges"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func rangesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "Inspect and validate preflop range tables",
	}

	cmd.AddCommand(rangesListCmd())
	cmd.AddCommand(rangesValidateCmd())
	cmd.AddCommand(rangesExportCmd())

	return cmd
}

func activeTable(v *viper.Viper) (*ranges.Table, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.RangeTable()
}

func rangesListCmd() *cobra.Command {
	var position string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the active range table",
		Long: `Display every row of the active range table: the configured ranges.file,
or the builtin table when none is set. Rows are grouped by position with exact
hands first, then categories, then the position default.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := activeTable(viper.GetViper())
			if err != nil {
				return err
			}

			var filter model.Position
			if position != "" {
				if filter, err = model.ParsePosition(position); err != nil {
					return err
				}
			}
			return writeTable(cmd.OutOrStdout(), table, filter)
		},
	}

	cmd.Flags().StringVarP(&position, "position", "p", "", "only show this position")
	return cmd
}

func writeTable(out io.Writer, table *ranges.Table, filter model.Position) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			common.LogError(flushErr, "failed to flush table writer", nil)
		}
	}()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("Position"),
		headerStyle.Render("Hand"),
		headerStyle.Render("Action"),
		headerStyle.Render("Mix")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		strings.Repeat("─", 8),
		strings.Repeat("─", 7),
		strings.Repeat("─", 14),
		strings.Repeat("─", 24)); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for _, pos := range table.Positions() {
		if filter != "" && pos != filter {
			continue
		}
		for _, hand := range table.Keys(pos) {
			e, _ := table.Get(pos, hand)
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				pos, hand, e.Action, mixSummary(e.Frequencies)); err != nil {
				return fmt.Errorf("failed to write range row: %w", err)
			}
		}
	}
	return nil
}

// mixSummary is the uncolored frequency list; ANSI codes confuse tabwriter.
func mixSummary(f model.Frequencies) string {
	parts := make([]string, 0, len(f))
	for _, k := range f.NonZero() {
		parts = append(parts, fmt.Sprintf("%s %d%%", k.Label(), f[k]))
	}
	return strings.Join(parts, " ")
}

func rangesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a YAML range file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ExpandPath(args[0])
			table, err := ranges.LoadFile(path)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d entries across %d positions\n",
				cli.SuccessIcon, path, table.Len(), len(table.Positions()))
			return err
		},
	}
}

func rangesExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the active range table as YAML",
		Long: `Print the active range table in the format ranges.file accepts. Exporting the
builtin table gives a starting point for custom tuning.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := activeTable(viper.GetViper())
			if err != nil {
				return err
			}
			data, err := ranges.Marshal(table)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
