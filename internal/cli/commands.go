package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dice-katas/internal/game/yahtzee"
)

func newListCmd(app *App, out outputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available katas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			katas := app.Katas.List()
			infos := make([]KataInfo, 0, len(katas))
			for _, k := range katas {
				infos = append(infos, KataInfo{
					Command:     k.Command(),
					Name:        k.Name(),
					Description: k.Description(),
				})
			}
			out(cmd).Print(infos)
			return nil
		},
	}
}

func newPlayCmd(app *App, out outputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "play <kata> [input...]",
		Short: "Play a kata once",
		Long: `Play a kata once. The input is taken from the remaining arguments,
joined by spaces, or read from stdin when no input argument is given.`,
		Example: `  katas play yahtzee FULL_HOUSE 3 3 5 5 5
  printf '5 5\n1 2 N\nLMLMLMLMM\n' | katas play rover`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kata, err := app.Katas.Lookup(args[0])
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			result, err := kata.Play(cmd.Context(), input)
			if err != nil {
				return err
			}
			out(cmd).Print(result)
			return nil
		},
	}
}

func newRoverCmd(app *App, out outputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "rover [instructions]",
		Short: "Drive the Mars rover",
		Long: `Drive the Mars rover. Instructions are three lines: the plateau's
upper-right corner, the start position and heading, and the commands.`,
		Example: `  katas rover "$(printf '5 5\n3 3 E\nMMRMMRMRRM')"`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kata, err := app.Katas.Lookup("rover")
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			result, err := kata.Play(cmd.Context(), input)
			if err != nil {
				return err
			}
			out(cmd).Print(result)
			return nil
		},
	}
}

func newScoreCmd(app *App, out outputFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "score <category> <d1> <d2> <d3> <d4> <d5>",
		Short:   "Score five dice in one category",
		Example: `  katas score two_pairs 2 2 5 5 6`,
		Args:    cobra.ExactArgs(1 + yahtzee.RollSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := app.Categories.CreateByName(args[0])
			if err != nil {
				return err
			}
			roll, err := yahtzee.ParseRoll(args[1:]...)
			if err != nil {
				return err
			}
			out(cmd).Print(ScoreResult{
				Category: category.ID().String(),
				Name:     displayName(category.ID()),
				Dice:     roll.Faces(),
				Score:    category.ScoreFor(roll).Int(),
			})
			return nil
		},
	}
}

func newCategoriesCmd(app *App, out outputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the scoring categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := app.Categories.IDs()
			infos := make([]CategoryInfo, 0, len(ids))
			for _, id := range ids {
				infos = append(infos, CategoryInfo{ID: id.String(), Name: displayName(id)})
			}
			out(cmd).Print(infos)
			return nil
		},
	}
}

func newGameCmd(app *App, out outputFunc) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "game",
		Short: "Replay a Yahtzee game script and print the standings",
		Long: `Replay a Yahtzee game from a YAML script:

  players: [Honza, Satish]
  turns:
    - {player: Honza, category: YAHTZEE, dice: [6, 6, 6, 6, 6]}
    - {player: Satish, category: ONES, dice: [1, 1, 1, 1, 1]}

Players listed under yahtzee.players in the configuration are registered too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				r = f
			}

			script, err := app.Scripts.Load(r)
			if err != nil {
				return err
			}
			script.Players = append(append([]string{}, app.Config.Yahtzee.Players...), script.Players...)

			g := yahtzee.NewGame()
			if err := app.Scripts.Replay(g, script); err != nil {
				return err
			}

			out(cmd).Print(GameReport{
				Standings: app.Ranking.Standings(g),
				Winner:    app.Ranking.Winner(g),
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "Script file, - for stdin")
	return cmd
}

// readInput joins args, or reads all of stdin when there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
