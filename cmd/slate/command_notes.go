package main

import (
	"flag"
	"io"

	"slate/internal/logging"
)

type notesCommand struct {
	wiring commandWiring
	stdout io.Writer
	stderr io.Writer
}

func NewNotesCommand(wiring commandWiring) commandRunner {
	return &notesCommand{wiring: wiring, stdout: wiring.stdout, stderr: wiring.stderr}
}

func (c *notesCommand) Run(args []string) error {
	flags := flag.NewFlagSet("notes", flag.ContinueOnError)
	flags.SetOutput(c.stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := c.wiring.loadConfig()
	if err != nil {
		return err
	}
	ws, repo, err := loadWorkspace(c.wiring, cfg, logging.Nop())
	if err != nil {
		return err
	}
	defer repo.Close()

	printNotes(c.stdout, ws.Notes())
	return nil
}
