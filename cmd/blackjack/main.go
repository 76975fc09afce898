package main

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Serve ServeCmd `cmd:"" default:"1" help:"Run the Telegram bot"`
	HTTP  HTTPCmd  `cmd:"" name:"http" help:"Serve the JSON API"`
	Play  PlayCmd  `cmd:"" help:"Play a round in the terminal"`
}

// Options shared by every command.
type Options struct {
	EnvFile string `kong:"help='Path to an env file (default: .env if present)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
	Seed    *int64 `kong:"help='Deterministic shuffle seed (optional)'"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player blackjack over Telegram, HTTP or the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
