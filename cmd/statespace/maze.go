package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/gridgraph"
	"github.com/katalvlaran/statespace/search"
)

// demoMaze is the 71×51 maze solved when no --file is given.
//
//go:embed maze.txt
var demoMaze string

// clearScreen homes the cursor and clears the terminal between frames.
const clearScreen = "\x1b[H\x1b[2J"

func newMazeCmd(a *app) *cobra.Command {
	fc := &a.flags.Maze
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Find a route through a text maze ('X' marks a wall)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Maze
			changed := cmd.Flags().Changed
			overlaySearch(changed, &cfg.SearchConfig, &fc.SearchConfig)
			if changed("file") {
				cfg.File = fc.File
			}
			if changed("from") {
				cfg.From = fc.From
			}
			if changed("to") {
				cfg.To = fc.To
			}
			if changed("diagonal") {
				cfg.Diagonal = fc.Diagonal
			}
			if changed("weighted") {
				cfg.Weighted = fc.Weighted
			}
			if changed("animate") {
				cfg.Animate = fc.Animate
			}
			if changed("animate-every") {
				cfg.AnimateEvery = fc.AnimateEvery
			}
			if changed("color") {
				cfg.Color = fc.Color
			}

			return a.runMaze(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&fc.File, "file", "f", "", "maze file (default: built-in 71×51 demo maze)")
	f.StringVar(&fc.From, "from", fc.From, "start cell as x,y")
	f.StringVar(&fc.To, "to", fc.To, "goal cell as x,y")
	f.BoolVar(&fc.Diagonal, "diagonal", false, "allow diagonal moves costing √2")
	f.BoolVar(&fc.Weighted, "weighted", false, "treat digits 1-9 in the maze as terrain cost")
	f.BoolVar(&fc.Animate, "animate", false, "draw the frontier after every expansion")
	f.IntVar(&fc.AnimateEvery, "animate-every", fc.AnimateEvery, "draw only every n-th frame")
	f.StringVar(&fc.Color, "color", fc.Color, "colorize output: auto, always or never")
	bindSearchFlags(cmd, &fc.SearchConfig)

	return cmd
}

func (a *app) runMaze(cmd *cobra.Command, cfg MazeConfig) error {
	text := demoMaze
	if cfg.File != "" {
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			return fmt.Errorf("failed to read maze: %w", err)
		}
		text = string(data)
	}

	opts := gridgraph.DefaultGridOptions()
	opts.Weighted = cfg.Weighted
	if cfg.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.ParseMaze(text, opts)
	if err != nil {
		return fmt.Errorf("failed to parse maze: %w", err)
	}

	from, err := mazeCell(gg, "from", cfg.From)
	if err != nil {
		return err
	}
	to, err := mazeCell(gg, "to", cfg.To)
	if err != nil {
		return err
	}
	alg, err := search.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	styler, err := newStyler(cfg.Color, out)
	if err != nil {
		return err
	}

	if !gg.SameComponent(from, to) {
		return fmt.Errorf("%w: %v and %v are not connected", search.ErrNoPath, from, to)
	}

	var space core.HeuristicStateSpace[gridgraph.Cell] = gg
	var anim *gridgraph.Animator
	if cfg.Animate {
		anim = gridgraph.NewAnimator(gg, out, styler)
		anim.Every = cfg.AnimateEvery
		if isTerminal(out) {
			anim.Separator = clearScreen
		}
		space = anim
	}

	a.logger.Info("solving maze",
		slog.Int("width", gg.Width),
		slog.Int("height", gg.Height),
		slog.String("algorithm", alg.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	sopts, cancel := a.searchOptions(cmd.Context(), cfg.SearchConfig)
	defer cancel()
	res, err := search.Run(space, alg, from, to, sopts...)
	if err != nil {
		return err
	}
	if anim != nil && anim.Err() != nil {
		return fmt.Errorf("failed to draw animation: %w", anim.Err())
	}

	fmt.Fprint(out, gg.Render(res.Path, nil, styler))
	printSummary(out, res)

	return nil
}

// mazeCell parses a coordinate flag and checks it is a walkable cell.
func mazeCell(gg *gridgraph.GridGraph, name, value string) (gridgraph.Cell, error) {
	x, y, err := parseXY(value)
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("--%s: %w", name, err)
	}
	c := gridgraph.Cell{X: x, Y: y}
	if err := gg.Check(c); err != nil {
		return gridgraph.Cell{}, fmt.Errorf("--%s %v: %w", name, c, err)
	}

	return c, nil
}
