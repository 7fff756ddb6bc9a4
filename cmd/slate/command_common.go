package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"text/tabwriter"

	"slate/internal/types"
)

const version = "dev"

func printNotes(output io.Writer, notes []types.Note) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tCOLOR\tCREATED\tID")
	for _, note := range notes {
		color := string(note.Color)
		if color == "" {
			color = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", note.Name, color, note.CreatedAt.Format("2006-01-02"), note.ID)
	}
	_ = writer.Flush()
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			short := revision
			if len(short) > 12 {
				short = short[:12]
			}
			if modified == "true" {
				return version + "+" + short + ".dirty"
			}
			return version + "+" + short
		}
	}
	return version
}
