package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JanKremser/kodi-tools/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of required external tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := deps.CheckBinaries(deps.DefaultRequirements(cfg))

			if ctx.jsonOutput() {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			missing := 0
			for _, status := range results {
				state := "ok"
				if !status.Available {
					state = "missing"
					missing++
				}
				rows = append(rows, []string{
					status.Name,
					status.Command,
					state,
					status.Detail,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Dependency", "Command", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			if missing > 0 {
				return fmt.Errorf("%d required tool(s) missing", missing)
			}
			return nil
		},
	}
}
