package main

import (
	"context"
	"io"
	"os"

	"slate/internal/config"
	"slate/internal/logging"
	"slate/internal/store"
	"slate/internal/workspace"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
	openRepo   func(config.Config) (store.Repository, error)
	newLogger  func(config.Config) logging.Logger
	version    string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: config.Load,
		openRepo:   openRepository,
		newLogger:  newFileLogger,
		version:    buildVersion(),
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ui":     NewUICommand(wiring),
		"notes":  NewNotesCommand(wiring),
		"export": NewExportCommand(wiring),
		"config": NewConfigCommand(wiring),
	}
}

func openRepository(cfg config.Config) (store.Repository, error) {
	notebookPath, err := config.NotebookPath()
	if err != nil {
		return nil, err
	}
	dbPath, err := config.DBPath()
	if err != nil {
		return nil, err
	}
	paths := store.RepositoryPaths{
		NotebookPath: notebookPath,
		DBPath:       dbPath,
	}
	return store.OpenRepository(paths, cfg.Backend())
}

func newFileLogger(cfg config.Config) logging.Logger {
	path, err := config.LogPath()
	if err != nil {
		return logging.Nop()
	}
	file, err := logging.OpenFile(path)
	if err != nil {
		return logging.Nop()
	}
	return logging.New(file, logging.ParseLevel(cfg.LogLevel()))
}

func loadWorkspace(wiring commandWiring, cfg config.Config, log logging.Logger) (*workspace.Workspace, store.Repository, error) {
	repo, err := wiring.openRepo(cfg)
	if err != nil {
		return nil, nil, err
	}
	ws := workspace.New(repo.Notebook(), log)
	ws.SetDefaultNoteName(cfg.NewNoteName())
	if err := ws.Load(context.Background()); err != nil {
		_ = repo.Close()
		return nil, nil, err
	}
	return ws, repo, nil
}
