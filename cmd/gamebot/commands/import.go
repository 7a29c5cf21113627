package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gamestore/gamebot/internal/app"
)

var importSheet string

var ImportCmd = &cobra.Command{
	Use:   "import [workbook.xlsx]",
	Short: "Copy a listings workbook into the sqlite database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		n, err := app.ImportSheet(cmd.Context(), cfg, args[0], importSheet)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d listings into %s (table %s)\n", n, cfg.SQLitePath, cfg.ListingsTable)
		return nil
	},
}

func init() {
	ImportCmd.Flags().StringVar(&importSheet, "sheet", "", "sheet name (default first sheet)")
}
