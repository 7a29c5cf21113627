package commands

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showSecrets bool

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if !showSecrets {
			cfg.OpenAIAPIKey = mask(cfg.OpenAIAPIKey)
			cfg.InternalToken = mask(cfg.InternalToken)
			cfg.DatabaseURL = mask(cfg.DatabaseURL)
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cfg)
	},
}

func init() {
	ConfigCmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print keys and tokens unmasked")
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
