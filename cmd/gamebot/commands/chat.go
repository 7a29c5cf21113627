package commands

import (
	"os"

	"github.com/spf13/cobra"

	"gamestore/gamebot/internal/app"
)

var ChatCmd = &cobra.Command{
	Use:     "chat",
	Aliases: []string{"c"},
	Short:   "Chat in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Chat(cmd.Context(), loadConfig(), os.Stdin, cmd.OutOrStdout())
	},
}
