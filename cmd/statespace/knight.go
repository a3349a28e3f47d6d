package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/knight"
	"github.com/katalvlaran/statespace/search"
)

func newKnightCmd(a *app) *cobra.Command {
	fc := &a.flags.Knight
	cmd := &cobra.Command{
		Use:   "knight",
		Short: "Find the moves of a knight between two squares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Knight
			changed := cmd.Flags().Changed
			overlaySearch(changed, &cfg.SearchConfig, &fc.SearchConfig)
			if changed("size") {
				cfg.Size = fc.Size
			}
			if changed("from") {
				cfg.From = fc.From
			}
			if changed("to") {
				cfg.To = fc.To
			}

			return a.runKnight(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fc.Size, "size", fc.Size, "board size as WxH")
	f.StringVar(&fc.From, "from", fc.From, "start square as x,y")
	f.StringVar(&fc.To, "to", fc.To, "goal square as x,y")
	bindSearchFlags(cmd, &fc.SearchConfig)

	return cmd
}

func (a *app) runKnight(cmd *cobra.Command, cfg KnightConfig) error {
	w, h, err := parseSize(cfg.Size)
	if err != nil {
		return fmt.Errorf("--size: %w", err)
	}
	board, err := knight.NewBoard(w, h)
	if err != nil {
		return err
	}
	from, err := boardSquare(board, "from", cfg.From)
	if err != nil {
		return err
	}
	to, err := boardSquare(board, "to", cfg.To)
	if err != nil {
		return err
	}
	alg, err := search.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	a.logger.Info("moving knight",
		slog.String("board", cfg.Size),
		slog.String("algorithm", alg.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	opts, cancel := a.searchOptions(cmd.Context(), cfg.SearchConfig)
	defer cancel()
	res, err := search.Run[knight.Square](board, alg, from, to, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Steps found from %v to %v using %s:\n%v\n", from, to, alg, res.Path)
	printSummary(out, res)

	return nil
}

// boardSquare parses a coordinate flag and checks it lies on the board.
func boardSquare(b knight.Board, name, value string) (knight.Square, error) {
	x, y, err := parseXY(value)
	if err != nil {
		return knight.Square{}, fmt.Errorf("--%s: %w", name, err)
	}
	s := knight.Square{X: x, Y: y}
	if err := b.Check(s); err != nil {
		return knight.Square{}, fmt.Errorf("--%s: %w", name, err)
	}

	return s, nil
}
