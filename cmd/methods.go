package cmd

import (
	"fmt"
	"strings"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the estimation methods and the measurements each needs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header([]string{"Method", "Reconciled", "Male", "Female", "Description"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignLeft
		})
		var data [][]string
		for _, m := range bodyfat.Catalog() {
			reconciled := "no"
			if m.Reconciled {
				reconciled = "yes"
			}
			data = append(data, []string{
				m.Method.Label(),
				reconciled,
				strings.Join(m.Required(bodyfat.Male), ", "),
				strings.Join(m.Required(bodyfat.Female), ", "),
				m.Description,
			})
		}
		if err := table.Bulk(data); err != nil {
			return fmt.Errorf("table bulk: %w", err)
		}
		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}
