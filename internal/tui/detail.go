package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/models"
	"github.com/charmbracelet/glamour"
)

const minRenderWidth = 40

type detailModel struct {
	note     models.Note
	rendered string
	status   string
}

// newDetailModel pre-renders the note body: markdown through glamour for
// text notes, a raster preview for canvas notes.
func newDetailModel(note models.Note, width int, canvasCfg config.ClientCanvas) detailModel {
	m := detailModel{note: note}

	switch note.Type {
	case models.CanvasNote:
		preview, err := renderCanvasPreview(note, canvasCfg)
		if err != nil {
			m.rendered = "(drawing cannot be shown: " + err.Error() + ")"
		} else {
			m.rendered = preview
		}
	default:
		out, err := renderMarkdown(note.Content, width)
		if err != nil {
			m.rendered = note.Content
		} else {
			m.rendered = strings.TrimRight(out, "\n")
		}
	}

	return m
}

func renderMarkdown(md string, width int) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", nil
	}
	width = max(width, minRenderWidth)

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func noteTypeName(t models.NoteType) string {
	switch t {
	case models.CanvasNote:
		return "Canvas"
	case models.TextNote:
		return "Text"
	default:
		return "Unknown"
	}
}

func (m detailModel) hotKeys() string {
	switch m.note.Status {
	case models.StatusArchived:
		return "u unarchive │ d trash │ esc back"
	case models.StatusTrashed:
		return "r restore │ x delete forever │ esc back"
	default:
		return "e edit │ p pin │ o color │ a archive │ d trash │ s summarize │ c copy │ esc back"
	}
}

func (m detailModel) View() string {
	n := m.note
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s  [%s]", swatch(n.Color), titleStyle.Render(n.DisplayTitle()), noteTypeName(n.Type))
	if n.IsPinned {
		b.WriteString("  pinned")
	}
	b.WriteString("\n\n")

	if m.rendered != "" {
		b.WriteString(m.rendered)
		b.WriteString("\n\n")
	}

	if n.Summary != "" {
		b.WriteString(titleStyle.Render("Summary"))
		b.WriteString("\n")
		b.WriteString(n.Summary)
		b.WriteString("\n\n")
	}

	if n.ImageURL != "" {
		fmt.Fprintf(&b, "Image:    %s", n.ImageURL)
		if n.DataAIHint != "" {
			fmt.Fprintf(&b, " (%s)", n.DataAIHint)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Tags:     %s\n", valueOrDash(tagNames(n.Tags)))
	fmt.Fprintf(&b, "Created:  %s\n", formatTime(&n.CreatedAt))
	fmt.Fprintf(&b, "Updated:  %s\n", formatTime(&n.UpdatedAt))
	switch n.Status {
	case models.StatusArchived:
		fmt.Fprintf(&b, "Archived: %s\n", formatTime(n.ArchivedAt))
	case models.StatusTrashed:
		fmt.Fprintf(&b, "Trashed:  %s\n", formatTime(n.TrashedAt))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage("NOTE", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}
