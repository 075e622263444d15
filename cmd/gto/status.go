package main

import (
	"encoding/json"
	"fmt"

	"github.com/Veraticus/gto-overlay/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func statusCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which data source the engine uses",
		Long: `Probe for an external solver and report the data source hints will come from.
Without a usable solver the builtin range tables are used.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := initEngine(cmd.Context(), viper.GetViper())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(e.Status())
			}
			_, err = fmt.Fprintln(w, cli.RenderStatus(e.Status()))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the status as JSON")
	return cmd
}
