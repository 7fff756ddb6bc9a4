package app

import (
	"strings"

	"slate/internal/doc"
)

func (m *Model) View() string {
	var sections []string
	sections = append(sections, m.bar.view(m.machine, m.dragTab))

	switch m.mode {
	case uiModePreview:
		note, _ := m.ws.Get(m.ws.Active())
		markdown := doc.Markdown(doc.Parse(note.Content))
		sections = append(sections, renderMarkdown(markdown, m.width))
	case uiModeConfirmDelete:
		sections = append(sections, m.confirm.View())
	case uiModeSizePicker:
		sections = append(sections, m.sizePicker.View(m.width))
	case uiModeNotePicker:
		sections = append(sections, m.notePicker.View(m.width, m.height-4))
	case uiModeRename:
		sections = append(sections, m.rename.View(m.width))
		sections = append(sections, m.editorLines())
	default:
		sections = append(sections, m.editorLines())
	}

	body := strings.Join(sections, "\n")
	lines := strings.Split(body, "\n")
	if max := m.height - 1; max > 0 && len(lines) > max {
		lines = lines[:max]
	}
	lines = append(lines, m.statusLine())
	return strings.Join(lines, "\n")
}

func (m *Model) editorLines() string {
	caretLine := m.view.lineOf(m.caret)
	out := make([]string, len(m.view.lines))
	for i, line := range m.view.lines {
		if i == caretLine {
			out[i] = line + statusStyle.Render("▏")
			continue
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

func (m *Model) statusLine() string {
	if m.status != "" {
		if m.statusErr {
			return truncateToWidth(toastErrorStyle.Render(" "+m.status+" "), m.width)
		}
		return truncateToWidth(toastInfoStyle.Render(" "+m.status+" "), m.width)
	}
	note, _ := m.ws.Get(m.ws.Active())
	help := "^N new  ^W close  ^R rename  ^B bold  ^K size  ^T task  ^L list  ^E preview  ^Y copy"
	return truncateToWidth(statusStyle.Render(padToWidth(note.Name+"  "+help, m.width)), m.width)
}
