// Package cli implements the katas command line.
package cli

import (
	"github.com/spf13/cobra"

	"dice-katas/internal/config"
	"dice-katas/internal/game"
	"dice-katas/internal/game/yahtzee"
	"dice-katas/internal/service"
)

// App holds everything the commands need.
type App struct {
	Config     *config.Config
	Katas      *game.Registry
	Categories *yahtzee.Registry
	Ranking    *service.RankingService
	Scripts    *service.ScriptService
}

// NewRootCmd creates the root command
func NewRootCmd(app *App) *cobra.Command {
	format := app.Config.Output.Format

	rootCmd := &cobra.Command{
		Use:   "katas",
		Short: "Yahtzee scoring and Mars Rover katas",
		Long: `katas runs the Yahtzee scoring engine and the Mars Rover simulator.

Score a single roll, replay a whole Yahtzee game from a YAML script, or
drive a rover across a plateau.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case config.FormatText, config.FormatJSON:
				return nil
			default:
				return errInvalidFormat(format)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&format, "output", "o", format, "Output format: text, json (env: KATAS_OUTPUT_FORMAT)")

	out := func(cmd *cobra.Command) *Output {
		return NewOutput(format, cmd.OutOrStdout())
	}

	rootCmd.AddCommand(newListCmd(app, out))
	rootCmd.AddCommand(newPlayCmd(app, out))
	rootCmd.AddCommand(newScoreCmd(app, out))
	rootCmd.AddCommand(newCategoriesCmd(app, out))
	rootCmd.AddCommand(newGameCmd(app, out))
	rootCmd.AddCommand(newRoverCmd(app, out))

	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute(app *App) error {
	return NewRootCmd(app).Execute()
}

type outputFunc func(cmd *cobra.Command) *Output
