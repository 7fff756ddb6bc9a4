package main

import (
	"flag"
	"fmt"
	"io"

	"slate/internal/app"
	"slate/internal/logging"
)

type uiCommand struct {
	wiring commandWiring
	stderr io.Writer
}

func NewUICommand(wiring commandWiring) commandRunner {
	return &uiCommand{wiring: wiring, stderr: wiring.stderr}
}

func (c *uiCommand) Run(args []string) error {
	flags := flag.NewFlagSet("ui", flag.ContinueOnError)
	flags.SetOutput(c.stderr)
	showVersion := flags.Bool("version", false, "print version and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Fprintln(c.wiring.stdout, c.wiring.version)
		return nil
	}

	cfg, err := c.wiring.loadConfig()
	if err != nil {
		return err
	}
	log := c.wiring.newLogger(cfg)
	ws, repo, err := loadWorkspace(c.wiring, cfg, log)
	if err != nil {
		return err
	}
	defer repo.Close()

	log.Info("ui starting",
		logging.Field{Key: "backend", Value: repo.Backend()},
		logging.Field{Key: "version", Value: c.wiring.version})
	return app.Run(cfg, ws, log)
}
