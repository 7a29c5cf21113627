package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gamestore/gamebot/internal/app"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web chat and the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(loadConfig())
	},
}

func init() {
	ServeCmd.Flags().String("addr", "", "listen address (default :8080)")
	ServeCmd.Flags().String("router", "", "web chat router: genre or query")
	viper.BindPFlag("HTTP_ADDR", ServeCmd.Flags().Lookup("addr"))
	viper.BindPFlag("WEB_ROUTER", ServeCmd.Flags().Lookup("router"))
}
