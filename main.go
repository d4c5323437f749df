// Command sokoban plays a Sokoban puzzle in the terminal or in a window.
//
// Levels are rectangles of digit symbols 0-6: floor(0), target(1), box(2),
// box on target(3), player(4), player on target(5), void(6). A few levels
// ship built in; any file in the same format can be played with --level.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v3"

	"sokoban/pkg/engine/input"
	"sokoban/pkg/engine/world"
	"sokoban/pkg/game/levels"
	"sokoban/pkg/game/renderer"
	ebitenui "sokoban/pkg/game/renderer/ebiten"
	"sokoban/pkg/game/renderer/tui"
	"sokoban/pkg/game/state"
)

func main() {
	cmd := &cli.Command{
		Name:           "sokoban",
		Usage:          "push every box onto a target square",
		DefaultCommand: "play",
		Commands: []*cli.Command{
			playCommand(),
			checkCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play a level",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Value:   "level01",
				Usage:   "built-in level name (" + strings.Join(levels.Names(), ", ") + ") or a file path",
			},
			&cli.StringFlag{
				Name:  "renderer",
				Value: "tui",
				Usage: "rendering backend: tui or ebiten",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			game, err := state.New(levels.Resolve(cmd.String("level")))
			if err != nil {
				return err
			}

			switch cmd.String("renderer") {
			case "tui":
				return gameLoop(game, tui.New())
			case "ebiten":
				return ebitenui.Run(game)
			default:
				return fmt.Errorf("unknown renderer %q", cmd.String("renderer"))
			}
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "validate a level file without playing it",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("check: want exactly one level file argument")
			}

			path := cmd.Args().First()
			text, err := levels.FileSource{Path: path}.Read()
			if err != nil {
				return err
			}

			g, err := world.Parse(text)
			if err != nil {
				return err
			}

			fmt.Printf("%s: %dx%d, %d targets\n", path, g.Width(), g.Rows(), g.TargetCount())
			return nil
		},
	}
}

// gameLoop is the terminal driver: render, check for the win, read one
// command, apply it, repeat. The core is mutated strictly one command at
// a time.
func gameLoop(game *state.Game, r renderer.Renderer) error {
	r.Init()

	for {
		r.Clear()
		r.RenderFrame(game)

		if game.Won() {
			fmt.Println(gotext.Get("You won!"))
			return nil
		}

		fmt.Println(gotext.Get("h/j/k/l or arrows: move   b: undo   r: restart   q: quit"))

		intent := input.MapToIntent(r.ReadCommand())
		switch intent.Action {
		case input.ActionQuit:
			fmt.Println(gotext.Get("Goodbye!"))
			return nil
		case input.ActionMoveUp:
			game.Move(world.Up)
		case input.ActionMoveDown:
			game.Move(world.Down)
		case input.ActionMoveLeft:
			game.Move(world.Left)
		case input.ActionMoveRight:
			game.Move(world.Right)
		case input.ActionUndo:
			if err := game.Undo(); err != nil {
				return err
			}
		case input.ActionRestart:
			if err := game.Restart(); err != nil {
				return err
			}
		}
	}
}
