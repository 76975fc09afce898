package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"blackjack/internal/game"
	"blackjack/internal/render"
	"blackjack/internal/session"
)

const consoleKey = "console"

type PlayCmd struct {
	Options `embed:""`
}

func (c *PlayCmd) Run() error {
	a, err := c.setup()
	if err != nil {
		return err
	}

	ctx, stop := a.signalContext()
	defer stop()

	svc := session.NewService(session.NewMemoryStore(), a.rng)
	return play(ctx, os.Stdin, os.Stdout, svc)
}

// play runs the console loop: h(it), s(tand), r(eset), q(uit).
func play(ctx context.Context, in io.Reader, out io.Writer, svc *session.Service) error {
	g, err := svc.Deal(ctx, consoleKey)
	if err != nil {
		return err
	}
	printState(out, g)

	done := make(chan struct{})
	defer close(done)

	lines, readErr := readLines(in, done)
	for {
		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "h", "hit":
			g, err = svc.Hit(ctx, consoleKey)
		case "s", "stand":
			g, err = svc.Stand(ctx, consoleKey)
		case "r", "reset":
			g, err = svc.Deal(ctx, consoleKey)
		case "q", "quit", "exit":
			return nil
		case "":
			continue
		default:
			fmt.Fprintln(out, "h — hit, s — stand, r — заново, q — выход")
			continue
		}

		if errors.Is(err, session.ErrNotPlayerTurn) {
			fmt.Fprintln(out, "Сейчас ход дилера. r — новая игра")
			continue
		}
		if err != nil {
			return err
		}
		printState(out, g)
	}
}

// readLines scans in on its own goroutine so a blocked read on stdin does not
// keep play from seeing ctx cancellation. The goroutine stops at EOF or once
// done is closed and the next line arrives.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

func printState(out io.Writer, g game.State) {
	fmt.Fprintln(out, render.State(g))
	if g.Turn == game.PlayerTurn {
		fmt.Fprint(out, "[h]it / [s]tand / [r]eset / [q]uit > ")
	} else {
		fmt.Fprint(out, "[r]eset / [q]uit > ")
	}
}
