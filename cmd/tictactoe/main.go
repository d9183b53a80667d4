package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

func main() {
	bot := flag.Bool("bot", false, "let the computer play O")
	noColor := flag.Bool("no-color", false, "disable coloured output")
	verbose := flag.Bool("v", false, "log every move to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	output := termenv.NewOutput(os.Stdout)
	if *noColor {
		output = termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
	}

	cli := &console{
		logger:   logger,
		renderer: render.NewWithOutput(output),
	}
	if *bot {
		cli.bot = service.NewBotService()
	}

	if err := cli.Run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
}
