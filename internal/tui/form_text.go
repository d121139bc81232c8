package tui

import (
	"strings"

	"github.com/MKhiriev/sticky-canvas/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field order of the text note form.
const (
	fieldTitle = iota
	fieldContent
	fieldTags
	fieldImageURL
	fieldImageHint
	textFormFields
)

type formTextModel struct {
	title     textinput.Model
	content   textarea.Model
	tags      textinput.Model
	imageURL  textinput.Model
	imageHint textinput.Model
	color     string

	focus      int
	noteID     string
	submitting bool
}

func newFormTextModel(note *models.Note) formTextModel {
	title := textinput.New()
	title.Placeholder = "Title (optional)"
	title.Width = 50

	content := textarea.New()
	content.Placeholder = "Write your note, markdown is fine"
	content.SetWidth(54)
	content.SetHeight(8)

	tags := textinput.New()
	tags.Placeholder = "work, ideas"
	tags.Width = 50

	imageURL := textinput.New()
	imageURL.Placeholder = "https://..."
	imageURL.Width = 50

	imageHint := textinput.New()
	imageHint.Placeholder = "two words describing the image"
	imageHint.Width = 50

	m := formTextModel{
		title:     title,
		content:   content,
		tags:      tags,
		imageURL:  imageURL,
		imageHint: imageHint,
		color:     models.DefaultNoteColor,
	}

	if note != nil {
		m.noteID = note.ID
		m.color = note.Color
		m.title.SetValue(note.Title)
		m.content.SetValue(note.Content)
		m.tags.SetValue(joinTagNames(note.Tags))
		m.imageURL.SetValue(note.ImageURL)
		m.imageHint.SetValue(note.DataAIHint)
	}

	m.setFocus(fieldTitle)
	return m
}

func (m formTextModel) editing() bool {
	return m.noteID != ""
}

func (m *formTextModel) setFocus(field int) {
	m.title.Blur()
	m.content.Blur()
	m.tags.Blur()
	m.imageURL.Blur()
	m.imageHint.Blur()

	m.focus = (field + textFormFields) % textFormFields
	switch m.focus {
	case fieldTitle:
		m.title.Focus()
	case fieldContent:
		m.content.Focus()
	case fieldTags:
		m.tags.Focus()
	case fieldImageURL:
		m.imageURL.Focus()
	case fieldImageHint:
		m.imageHint.Focus()
	}
}

// updateFocused forwards msg to the focused input.
func (m formTextModel) updateFocused(msg tea.Msg) (formTextModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldContent:
		m.content, cmd = m.content.Update(msg)
	case fieldTags:
		m.tags, cmd = m.tags.Update(msg)
	case fieldImageURL:
		m.imageURL, cmd = m.imageURL.Update(msg)
	case fieldImageHint:
		m.imageHint, cmd = m.imageHint.Update(msg)
	}
	return m, cmd
}

func (m formTextModel) toDraft(tags []models.Tag) models.NoteDraft {
	return models.NoteDraft{
		Type:       models.TextNote,
		Title:      strings.TrimSpace(m.title.Value()),
		Content:    m.content.Value(),
		Color:      m.color,
		Tags:       tags,
		ImageURL:   strings.TrimSpace(m.imageURL.Value()),
		DataAIHint: strings.TrimSpace(m.imageHint.Value()),
	}
}

func (m formTextModel) toUpdate(tags []models.Tag) models.NoteUpdate {
	d := m.toDraft(tags)
	return models.NoteUpdate{
		Title:      &d.Title,
		Content:    &d.Content,
		Color:      &d.Color,
		Tags:       &d.Tags,
		ImageURL:   &d.ImageURL,
		DataAIHint: &d.DataAIHint,
	}
}

// parseTags turns a comma separated list of names into tags. Names are
// matched case-insensitively against known tags so existing ids are
// reused; new names get an id from newID.
func parseTags(input string, known []models.Tag, newID func() string) []models.Tag {
	byName := make(map[string]models.Tag, len(known))
	for _, t := range known {
		k := strings.ToLower(t.Name)
		if _, ok := byName[k]; !ok {
			byName[k] = t
		}
	}

	var out []models.Tag
	seen := make(map[string]bool)
	for _, part := range strings.Split(input, ",") {
		name := strings.TrimPrefix(strings.TrimSpace(part), "#")
		if name == "" {
			continue
		}
		k := strings.ToLower(name)
		if seen[k] {
			continue
		}
		seen[k] = true

		if t, ok := byName[k]; ok {
			out = append(out, t)
			continue
		}
		out = append(out, models.Tag{ID: newID(), Name: name})
	}
	return out
}

func joinTagNames(tags []models.Tag) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

func (m formTextModel) View() string {
	var b strings.Builder

	b.WriteString("Title:\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\nContent:\n")
	b.WriteString(m.content.View())
	b.WriteString("\n\nTags (comma separated):\n")
	b.WriteString(m.tags.View())
	b.WriteString("\n\nImage URL:\n")
	b.WriteString(m.imageURL.View())
	b.WriteString("\n\nImage hint:\n")
	b.WriteString(m.imageHint.View())
	b.WriteString("\n\nColor: ")
	b.WriteString(swatch(m.color))
	b.WriteString(" ")
	b.WriteString(m.color)

	title := "NEW NOTE"
	if m.editing() {
		title = "EDIT NOTE"
	}
	if m.submitting {
		title += " (saving...)"
	}

	return renderPage(title, b.String(), "tab / shift+tab field │ ctrl+o color │ ctrl+s save │ esc cancel")
}
