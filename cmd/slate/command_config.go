package main

import (
	"flag"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"

	"slate/internal/config"
)

type configCommand struct {
	wiring commandWiring
	stdout io.Writer
	stderr io.Writer
}

func NewConfigCommand(wiring commandWiring) commandRunner {
	return &configCommand{wiring: wiring, stdout: wiring.stdout, stderr: wiring.stderr}
}

func (c *configCommand) Run(args []string) error {
	flags := flag.NewFlagSet("config", flag.ContinueOnError)
	flags.SetOutput(c.stderr)
	defaults := flags.Bool("defaults", false, "print built-in defaults instead of the effective config")
	showPath := flags.Bool("path", false, "print the config file path")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *showPath {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.stdout, path)
		return nil
	}

	cfg := config.DefaultConfig()
	if !*defaults {
		loaded, err := c.wiring.loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = c.stdout.Write(data)
	return err
}
