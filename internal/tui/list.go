package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/sticky-canvas/internal/app"
	"github.com/MKhiriev/sticky-canvas/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

var boardViews = []models.NoteStatus{models.StatusActive, models.StatusArchived, models.StatusTrashed}

type listModel struct {
	view    models.NoteStatus
	items   []models.Note
	idx     int
	loading bool

	search    textinput.Model
	searching bool
	tag       models.Tag

	spinner     spinner.Model
	summarizing map[string]bool
	status      string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "search title, content, summary or tags"
	search.Prompt = "/ "
	search.Width = 40

	return listModel{
		view:        models.StatusActive,
		loading:     true,
		search:      search,
		spinner:     s,
		summarizing: make(map[string]bool),
	}
}

func (m listModel) current() (models.Note, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

// filter is the listing filter of the current view, search and tag.
func (m listModel) filter() models.NoteFilter {
	status := m.view
	return models.NoteFilter{
		Status: &status,
		TagID:  m.tag.ID,
		Query:  strings.TrimSpace(m.search.Value()),
	}
}

// setItems replaces the rows and keeps the cursor on the same note when it
// is still listed.
func (m *listModel) setItems(items []models.Note) {
	var selected string
	if cur, ok := m.current(); ok {
		selected = cur.ID
	}

	m.items = items
	m.loading = false
	for i, n := range items {
		if n.ID == selected {
			m.idx = i
			return
		}
	}
	m.idx = min(m.idx, len(items)-1)
	m.idx = max(m.idx, 0)
}

func (m listModel) hasFilter() bool {
	return m.tag.ID != "" || strings.TrimSpace(m.search.Value()) != ""
}

func nextView(v models.NoteStatus, step int) models.NoteStatus {
	for i, s := range boardViews {
		if s == v {
			return boardViews[(i+step+len(boardViews))%len(boardViews)]
		}
	}
	return models.StatusActive
}

// nextTag cycles through tags, ending the cycle with the empty tag (no
// filter).
func nextTag(tags []models.Tag, current models.Tag) models.Tag {
	if len(tags) == 0 {
		return models.Tag{}
	}
	if current.ID == "" {
		return tags[0]
	}
	for i, t := range tags {
		if t.ID == current.ID {
			if i+1 < len(tags) {
				return tags[i+1]
			}
			return models.Tag{}
		}
	}
	return models.Tag{}
}

func viewName(v models.NoteStatus) string {
	switch v {
	case models.StatusArchived:
		return "Archived"
	case models.StatusTrashed:
		return "Trash"
	default:
		return "Notes"
	}
}

func listIcon(t models.NoteType) string {
	switch t {
	case models.CanvasNote:
		return "[C]"
	case models.TextNote:
		return "[T]"
	default:
		return "[?]"
	}
}

func tagNames(tags []models.Tag) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, "#"+t.Name)
	}
	return strings.Join(names, " ")
}

func (m listModel) hotKeys() string {
	switch m.view {
	case models.StatusArchived:
		return "enter open │ u unarchive │ d trash │ tab view │ / search │ t tag │ q quit"
	case models.StatusTrashed:
		return "enter open │ r restore │ x delete forever │ tab view │ / search │ t tag │ q quit"
	default:
		return "n new │ N canvas │ e edit │ p pin │ o color │ a archive │ d trash │ s summarize │ c copy │ tab view │ / search │ t tag │ v settings │ q quit"
	}
}

func (m listModel) View() string {
	var b strings.Builder

	tabs := make([]string, 0, len(boardViews))
	for _, v := range boardViews {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(viewName(v)))
		} else {
			tabs = append(tabs, tabStyle.Render(viewName(v)))
		}
	}
	b.WriteString(strings.Join(tabs, "│"))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	} else if m.hasFilter() {
		var parts []string
		if q := strings.TrimSpace(m.search.Value()); q != "" {
			parts = append(parts, fmt.Sprintf("search %q", q))
		}
		if m.tag.ID != "" {
			parts = append(parts, "tag #"+m.tag.Name)
		}
		b.WriteString(helpStyle.Render("filter: " + strings.Join(parts, ", ") + " (esc clears)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString(app.MsgNoNotes + "\n")
	default:
		for i, n := range m.items {
			b.WriteString(m.renderRow(i, n))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(plural(len(m.items), "note"))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(m.status)
	}

	return renderPage("STICKY CANVAS", b.String(), m.hotKeys())
}

func (m listModel) renderRow(i int, n models.Note) string {
	cursor := "  "
	if i == m.idx {
		cursor = "> "
	}
	pin := " "
	if n.IsPinned {
		pin = "*"
	}

	title := fitText(n.DisplayTitle(), 40)
	if i == m.idx {
		title = selectedStyle.Render(title)
	}

	row := fmt.Sprintf("%s%s %s %s %s", cursor, swatch(n.Color), pin, listIcon(n.Type), title)
	if len(n.Tags) > 0 {
		row += "  " + tagStyle.Render(fitText(tagNames(n.Tags), 30))
	}
	if m.summarizing[n.ID] {
		row += "  " + m.spinner.View()
	}
	return row
}
