package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"slate/internal/doc"
	"slate/internal/logging"
	"slate/internal/types"
)

type exportCommand struct {
	wiring commandWiring
	stdout io.Writer
	stderr io.Writer
}

func NewExportCommand(wiring commandWiring) commandRunner {
	return &exportCommand{wiring: wiring, stdout: wiring.stdout, stderr: wiring.stderr}
}

func (c *exportCommand) Run(args []string) error {
	flags := flag.NewFlagSet("export", flag.ContinueOnError)
	flags.SetOutput(c.stderr)
	noteArg := flags.String("note", "", "note name or id (default: first note)")
	render := flags.Bool("render", false, "render markdown for the terminal")
	width := flags.Int("width", 80, "render width")
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

	note, err := resolveNote(ws.Notes(), *noteArg)
	if err != nil {
		return err
	}
	markdown := doc.Markdown(doc.Parse(note.Content))
	if !*render {
		fmt.Fprintln(c.stdout, markdown)
		return nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(*width),
	)
	if err != nil {
		return err
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return err
	}
	fmt.Fprint(c.stdout, out)
	return nil
}

func resolveNote(notes []types.Note, arg string) (types.Note, error) {
	if len(notes) == 0 {
		return types.Note{}, errors.New("no notes")
	}
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return notes[0], nil
	}
	for _, note := range notes {
		if note.ID == arg {
			return note, nil
		}
	}
	lowered := strings.ToLower(arg)
	for _, note := range notes {
		if strings.ToLower(note.Name) == lowered {
			return note, nil
		}
	}
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Name), lowered) {
			return note, nil
		}
	}
	return types.Note{}, errors.New("note not found: " + arg)
}
