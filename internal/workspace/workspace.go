package workspace

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"slate/internal/logging"
	"slate/internal/store"
	"slate/internal/types"
)

var ErrNoteNotFound = errors.New("note not found")

// Workspace owns the ordered note collection and the active pointer. All
// mutation goes through it; every mutation persists the full notebook
// before returning.
type Workspace struct {
	notebook store.NotebookStore
	log      logging.Logger
	now      func() time.Time

	notes  []*types.Note
	active string

	// defaultName overrides the date-based name for fresh notes.
	defaultName string
}

func New(notebook store.NotebookStore, log logging.Logger) *Workspace {
	if log == nil {
		log = logging.Nop()
	}
	return &Workspace{
		notebook: notebook,
		log:      log.With(logging.Field{Key: "component", Value: "workspace"}),
		now:      time.Now,
	}
}

// SetDefaultNoteName overrides the name given to notes created without
// an explicit name. Empty keeps the current-date default.
func (w *Workspace) SetDefaultNoteName(name string) {
	w.defaultName = strings.TrimSpace(name)
}

// SetClock overrides the time source.
func (w *Workspace) SetClock(now func() time.Time) {
	if now != nil {
		w.now = now
	}
}

// Load pulls the notebook from the store. A malformed or unreadable
// store is logged and treated as empty; an empty notebook is seeded with
// one default note so the workspace is never tabless.
func (w *Workspace) Load(ctx context.Context) error {
	notes, err := w.notebook.Load(ctx)
	if err != nil {
		w.log.Warn("notebook load failed, starting fresh", logging.Field{Key: "error", Value: err})
		notes = nil
	}
	w.notes = notes
	if len(w.notes) == 0 {
		if _, err := w.Create(ctx, ""); err != nil {
			return err
		}
		return nil
	}
	w.active = w.notes[0].ID
	return nil
}

// Create appends a new note and makes it active. An empty name falls
// back to the default note name.
func (w *Workspace) Create(ctx context.Context, name string) (types.Note, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = w.newNoteName()
	}
	note := &types.Note{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: w.now().UTC(),
	}
	w.notes = append(w.notes, note)
	w.active = note.ID
	if err := w.persist(ctx); err != nil {
		return types.Note{}, err
	}
	w.log.Info("note created", logging.Field{Key: "note", Value: note.ID})
	return *note, nil
}

func (w *Workspace) newNoteName() string {
	if w.defaultName != "" {
		return w.defaultName
	}
	return w.now().Format("January 2, 2006")
}

// Delete removes a note. Deleting the last note synchronously recreates
// a default note so no empty-workspace state is ever observable. When
// the active note is deleted the pointer moves to its right neighbor,
// or the new last note.
func (w *Workspace) Delete(ctx context.Context, id string) error {
	idx := w.indexOf(id)
	if idx < 0 {
		return ErrNoteNotFound
	}
	w.notes = append(w.notes[:idx], w.notes[idx+1:]...)
	if len(w.notes) == 0 {
		if _, err := w.Create(ctx, ""); err != nil {
			return err
		}
		w.log.Info("last note deleted, default recreated")
		return nil
	}
	if w.active == id {
		if idx >= len(w.notes) {
			idx = len(w.notes) - 1
		}
		w.active = w.notes[idx].ID
	}
	return w.persist(ctx)
}

// Rename sets a note's display name. Blank names are rejected.
func (w *Workspace) Rename(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("note name is required")
	}
	note := w.find(id)
	if note == nil {
		return ErrNoteNotFound
	}
	note.Name = name
	return w.persist(ctx)
}

// SetColor assigns a palette color to a note.
func (w *Workspace) SetColor(ctx context.Context, id string, color types.NoteColor) error {
	if !color.Valid() {
		return errors.New("unknown note color: " + string(color))
	}
	note := w.find(id)
	if note == nil {
		return ErrNoteNotFound
	}
	note.Color = color
	return w.persist(ctx)
}

// SetContent replaces a note's serialized document.
func (w *Workspace) SetContent(ctx context.Context, id, content string) error {
	note := w.find(id)
	if note == nil {
		return ErrNoteNotFound
	}
	note.Content = content
	return w.persist(ctx)
}

// Move splices a note to a new position in the tab order.
func (w *Workspace) Move(ctx context.Context, id string, index int) error {
	from := w.indexOf(id)
	if from < 0 {
		return ErrNoteNotFound
	}
	if index < 0 {
		index = 0
	}
	if index >= len(w.notes) {
		index = len(w.notes) - 1
	}
	if index == from {
		return nil
	}
	note := w.notes[from]
	rest := append(w.notes[:from:from], w.notes[from+1:]...)
	w.notes = append(rest[:index:index], append([]*types.Note{note}, rest[index:]...)...)
	return w.persist(ctx)
}

// Select makes a note active.
func (w *Workspace) Select(id string) error {
	if w.indexOf(id) < 0 {
		return ErrNoteNotFound
	}
	w.active = id
	return nil
}

// Active returns the id of the active note.
func (w *Workspace) Active() string {
	return w.active
}

// Order returns note ids in tab order.
func (w *Workspace) Order() []string {
	out := make([]string, len(w.notes))
	for i, note := range w.notes {
		out[i] = note.ID
	}
	return out
}

// Notes returns copies of all notes in tab order.
func (w *Workspace) Notes() []types.Note {
	out := make([]types.Note, len(w.notes))
	for i, note := range w.notes {
		out[i] = *note
	}
	return out
}

// Get returns a copy of one note.
func (w *Workspace) Get(id string) (types.Note, bool) {
	note := w.find(id)
	if note == nil {
		return types.Note{}, false
	}
	return *note, true
}

func (w *Workspace) find(id string) *types.Note {
	idx := w.indexOf(id)
	if idx < 0 {
		return nil
	}
	return w.notes[idx]
}

func (w *Workspace) indexOf(id string) int {
	for i, note := range w.notes {
		if note.ID == id {
			return i
		}
	}
	return -1
}

func (w *Workspace) persist(ctx context.Context) error {
	if err := w.notebook.Save(ctx, w.notes); err != nil {
		w.log.Error("notebook save failed", logging.Field{Key: "error", Value: err})
		return err
	}
	return nil
}
