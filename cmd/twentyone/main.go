package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"twentyone/internal/config"
	"twentyone/internal/console"
)

var rootCmd = &cobra.Command{
	Use:   "twentyone",
	Short: "Play 21 against the house in your terminal",
	Long: `twentyone deals a hand of 21 against a computer dealer.

Type 'h' to take a card and 'f' to finish your turn. The dealer then plays
automatically and the closest score to 21 without going over wins.

Settings are read from $XDG_CONFIG_HOME/twentyone/config.toml (or --config),
then from .env and TWENTYONE_* environment variables, then from flags.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.Flags().StringP("config", "c", "", "path to a TOML config file")
	rootCmd.Flags().Int64("seed", 0, "shuffle seed (0 seeds from the clock)")
	rootCmd.Flags().String("suits", "", "suit style: icon or code")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")
	rootCmd.Flags().Bool("debug", false, "log game events to stderr")
}

func runGame(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("suits") {
		cfg.SuitStyle, _ = cmd.Flags().GetString("suits")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return console.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("twentyone: %v", err)
	}
}
