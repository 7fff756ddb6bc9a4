package types

import "time"

type NoteColor string

const (
	NoteColorDefault NoteColor = ""
	NoteColorRed     NoteColor = "red"
	NoteColorOrange  NoteColor = "orange"
	NoteColorYellow  NoteColor = "yellow"
	NoteColorGreen   NoteColor = "green"
	NoteColorBlue    NoteColor = "blue"
	NoteColorPurple  NoteColor = "purple"
)

// Palette is the fixed set of colors a note may be assigned, excluding the
// default (unset) color.
var Palette = []NoteColor{
	NoteColorRed,
	NoteColorOrange,
	NoteColorYellow,
	NoteColorGreen,
	NoteColorBlue,
	NoteColorPurple,
}

func (c NoteColor) Valid() bool {
	if c == NoteColorDefault {
		return true
	}
	for _, color := range Palette {
		if c == color {
			return true
		}
	}
	return false
}

// Note is one open note in the workspace. Content is an opaque serialized
// document string owned by the editing engine.
type Note struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content,omitempty"`
	Color     NoteColor `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
