package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gamestore/gamebot/cmd/gamebot/commands"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gamebot",
	Short: "Chat assistant for the game account store",
	Long: `gamebot answers questions about the store's game listings: genre, price,
account level and whether the price is negotiable. Questions the built-in
filters do not understand go to a language model.`,
	SilenceUsage: true,
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}

	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.ChatCmd)
	rootCmd.AddCommand(commands.AskCmd)
	rootCmd.AddCommand(commands.ImportCmd)
	rootCmd.AddCommand(commands.ConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file (keys as in config output)")
	flags.String("dataset", "", "listing source: path to the xlsx workbook")
	flags.String("source", "", "listing source kind: xlsx, postgres or sqlite")
	flags.String("llm", "", "language model provider: ollama or openai")
	flags.String("model", "", "model name for the selected provider")

	viper.BindPFlag("DATASET_PATH", flags.Lookup("dataset"))
	viper.BindPFlag("DATASET_SOURCE", flags.Lookup("source"))
	viper.BindPFlag("LLM_PROVIDER", flags.Lookup("llm"))
	viper.BindPFlag("OLLAMA_MODEL", flags.Lookup("model"))
}

func initConfig() {
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("config: read %s: %v", cfgFile, err)
	}
}
