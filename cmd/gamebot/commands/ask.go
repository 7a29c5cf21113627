package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gamestore/gamebot/internal/app"
)

var askJSON bool

var AskCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer one question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := app.Ask(cmd.Context(), loadConfig(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if askJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(reply)
		}
		fmt.Fprintln(out, reply.Text)
		return nil
	},
}

func init() {
	AskCmd.Flags().BoolVar(&askJSON, "json", false, "print the reply with matched listings as JSON")
}
