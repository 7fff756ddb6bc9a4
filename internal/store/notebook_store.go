package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"slate/internal/types"
)

// ErrMalformedNotebook marks a notebook file that exists but cannot be
// decoded. Callers treat it as a fresh-start signal rather than a crash.
var ErrMalformedNotebook = errors.New("malformed notebook")

// NotebookStore persists the ordered note collection as one unit. The
// on-disk order is the tab order.
type NotebookStore interface {
	Load(ctx context.Context) ([]*types.Note, error)
	Save(ctx context.Context, notes []*types.Note) error
}

type notebookFile struct {
	Version int           `json:"version"`
	Notes   []*types.Note `json:"notes"`
}

const notebookFileVersion = 1

type FileNotebookStore struct {
	mu   sync.Mutex
	path string
}

func NewFileNotebookStore(path string) *FileNotebookStore {
	return &FileNotebookStore{path: path}
}

func (s *FileNotebookStore) Load(ctx context.Context) ([]*types.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := readNotebookFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*types.Note{}, nil
		}
		return nil, errors.Join(ErrMalformedNotebook, err)
	}
	return cloneNotes(file.Notes), nil
}

func (s *FileNotebookStore) Save(ctx context.Context, notes []*types.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeNotebookFile(s.path, notebookFile{
		Version: notebookFileVersion,
		Notes:   cloneNotes(notes),
	})
}

func readNotebookFile(path string) (notebookFile, error) {
	var file notebookFile
	data, err := os.ReadFile(path)
	if err != nil {
		return file, err
	}
	if len(data) == 0 {
		return file, errors.New("empty notebook file")
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return file, err
	}
	return file, nil
}

// writeNotebookFile replaces the notebook in one rename so a crash
// mid-save never leaves a truncated file behind.
func writeNotebookFile(path string, file notebookFile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "notebook-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func cloneNotes(notes []*types.Note) []*types.Note {
	out := make([]*types.Note, 0, len(notes))
	for _, note := range notes {
		if note == nil {
			continue
		}
		clone := *note
		out = append(out, &clone)
	}
	return out
}
