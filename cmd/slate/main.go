package main

import (
	"fmt"
	"os"
)

const usageText = `slate is a single-page note workspace for the terminal.

Usage:
  slate <command> [flags]

Commands:
  ui       run the workspace UI (default)
  notes    list notes
  export   print a note as markdown
  config   print configuration (effective or defaults)
  help     show help

Flags:
  -h, --help   show help

Examples:
  slate
  slate notes
  slate export --note "March 14, 2026"
  slate export --note groceries --render
  slate config --defaults
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	if len(args) == 0 {
		exitOnErr("ui", commands["ui"].Run(nil), wiring.stderr)
		return
	}
	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
