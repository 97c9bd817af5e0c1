package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/daystram/chesscore/board"
)

const (
	exitOK = iota
	exitErr
)

var (
	placement = flag.String("placement", board.DefaultStartingPlacement, "FEN piece placement to start from")
	draw      = flag.Bool("draw", false, "draw boards with unicode pieces and coloured cells")

	movegenRun = flag.Bool("movegen", false, "list every valid move of the final position")

	perftDepth = flag.Int("perft", 0, "count move sequences of this depth from the final position")
	perftTurn  = flag.String("perft.turn", "white", "side moving first in perft mode")
)

type config struct {
	placement string
	draw      bool
	movegen   bool
	perft     int
	turn      board.Side
}

func main() {
	flag.Parse()

	cfg := config{
		placement: *placement,
		draw:      *draw,
		movegen:   *movegenRun,
		perft:     *perftDepth,
		turn:      board.SideWhite,
	}
	if *perftTurn == board.SideBlack.String() {
		cfg.turn = board.SideBlack
	}
	err := realMain(cfg, flag.Args(), os.Stdout)
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(cfg config, moves []string, out io.Writer) error {
	b, err := board.NewBoard(board.WithPlacement(cfg.placement))
	if err != nil {
		return err
	}
	render := b.Dump
	if cfg.draw {
		render = b.Draw
	}

	if err := play(b, moves, render, out); err != nil {
		return err
	}
	if cfg.movegen {
		movegen(b, out)
	}
	if cfg.perft > 0 {
		return perft(b.Placement(), cfg.perft, cfg.turn, out)
	}
	return nil
}
