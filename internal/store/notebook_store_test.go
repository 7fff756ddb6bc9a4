package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"slate/internal/types"
)

func sampleNotes() []*types.Note {
	return []*types.Note{
		{ID: "n1", Name: "Groceries", Content: "!t milk", Color: types.NoteColorGreen, CreatedAt: time.Unix(1700000000, 0).UTC()},
		{ID: "n2", Name: "Ideas", Content: "!h1 Ideas"},
	}
}

func TestFileNotebookRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notebook.json")
	s := NewFileNotebookStore(path)
	ctx := context.Background()

	if err := s.Save(ctx, sampleNotes()); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d notes, want 2", len(loaded))
	}
	if loaded[0].ID != "n1" || loaded[1].ID != "n2" {
		t.Fatalf("order not preserved: %q, %q", loaded[0].ID, loaded[1].ID)
	}
	if loaded[0].Color != types.NoteColorGreen || loaded[0].Content != "!t milk" {
		t.Fatalf("fields lost: %+v", loaded[0])
	}
}

func TestFileNotebookMissingFileIsEmpty(t *testing.T) {
	s := NewFileNotebookStore(filepath.Join(t.TempDir(), "absent.json"))
	notes, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected empty notebook, got %d notes", len(notes))
	}
}

func TestFileNotebookMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notebook.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := NewFileNotebookStore(path)
	if _, err := s.Load(context.Background()); !errors.Is(err, ErrMalformedNotebook) {
		t.Fatalf("err = %v, want ErrMalformedNotebook", err)
	}
}

func TestFileNotebookClonesOnSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notebook.json")
	s := NewFileNotebookStore(path)
	ctx := context.Background()

	in := sampleNotes()
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	in[0].Name = "mutated"
	first, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if first[0].Name != "Groceries" {
		t.Fatalf("save shared caller memory: %q", first[0].Name)
	}
	first[0].Name = "also mutated"
	second, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if second[0].Name != "Groceries" {
		t.Fatalf("load shared result memory: %q", second[0].Name)
	}
}

func TestBboltNotebookRoundTrip(t *testing.T) {
	repo, err := NewBboltRepository(filepath.Join(t.TempDir(), "slate.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer repo.Close()
	ctx := context.Background()

	notes, err := repo.Notebook().Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("fresh db should be empty, got %d", len(notes))
	}
	if err := repo.Notebook().Save(ctx, sampleNotes()); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := repo.Notebook().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Name != "Groceries" {
		t.Fatalf("round trip lost data: %+v", loaded)
	}
}

func TestOpenRepositoryBackends(t *testing.T) {
	dir := t.TempDir()
	paths := RepositoryPaths{
		NotebookPath: filepath.Join(dir, "notebook.json"),
		DBPath:       filepath.Join(dir, "slate.db"),
	}
	repo, err := OpenRepository(paths, "")
	if err != nil {
		t.Fatalf("open default: %v", err)
	}
	if repo.Backend() != RepositoryBackendFile {
		t.Fatalf("default backend = %q, want file", repo.Backend())
	}
	repo, err = OpenRepository(paths, "bbolt")
	if err != nil {
		t.Fatalf("open bbolt: %v", err)
	}
	if repo.Backend() != RepositoryBackendBbolt {
		t.Fatalf("backend = %q, want bbolt", repo.Backend())
	}
	repo.Close()
	if _, err := OpenRepository(paths, "sqlite"); err == nil {
		t.Fatalf("unsupported backend should error")
	}
}
