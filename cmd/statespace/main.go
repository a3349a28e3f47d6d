// Command statespace runs the search algorithms of the statespace module on
// two classic puzzles: a text maze and a knight crossing a chess board.
//
// Usage:
//
//	statespace maze [--file maze.txt] [--from x,y] [--to x,y] [--algorithm astar]
//	statespace knight [--size 8x8] [--from 0,0] [--to 7,7] [--algorithm bfs]
//	statespace algorithms
//
// A YAML run file given with --config supplies defaults for every flag;
// flags set on the command line win.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "statespace:", err)
		os.Exit(1)
	}
}
