package main

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chesscore/bench"
	"github.com/daystram/chesscore/board"
)

func movegen(b *board.Board, out io.Writer) {
	log.Println("============ movegen")
	mvs := bench.ValidMoves(b, board.SideUnknown)
	var captures int
	for i, mv := range mvs {
		if mv.IsCapture {
			captures++
		}
		fmt.Fprintf(out, "option %*d: [%s] [%s] %s %s %s => %s (cap=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.IsTurn, mv.Kind, mv.From, mv.To, mv.IsCapture)
	}
	_, _ = message.NewPrinter(language.English).
		Fprintf(out, "moves=%d captures=%d\n", len(mvs), captures)
}

func perft(placement string, depth int, turn board.Side, out io.Writer) error {
	log.Println("============ perft")
	lines := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range lines {
			fmt.Fprintln(out, line)
		}
	}()

	err := bench.Perft(depth, placement, turn, true, true, lines)
	close(lines)
	<-done
	return err
}
