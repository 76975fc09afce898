package main

import (
	"fmt"

	"blackjack/internal/api"
	"blackjack/internal/bot"
	"blackjack/internal/session"
)

type ServeCmd struct {
	Options `embed:""`
}

func (c *ServeCmd) Run() error {
	a, err := c.setup()
	if err != nil {
		return err
	}

	store, closeStore, err := a.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	b, err := bot.New(a.cfg, session.NewService(store, a.rng), a.logger.WithPrefix("bot"))
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	ctx, stop := a.signalContext()
	defer stop()

	return b.Run(ctx)
}

type HTTPCmd struct {
	Options `embed:""`
	Addr    string `kong:"help='Listen address, overrides HTTP_ADDR'"`
}

func (c *HTTPCmd) Run() error {
	a, err := c.setup()
	if err != nil {
		return err
	}

	store, closeStore, err := a.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	addr := a.cfg.HTTPAddr
	if c.Addr != "" {
		addr = c.Addr
	}

	ctx, stop := a.signalContext()
	defer stop()

	srv := api.NewServer(session.NewService(store, a.rng), a.logger.WithPrefix("http"))
	return srv.ListenAndServe(ctx, addr)
}
