// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/MKhiriev/sticky-canvas/internal/canvas"
	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen position of the first grid cell: app padding, the page header and
// the two editor lines above the grid.
const (
	canvasOriginX = 4
	canvasOriginY = 6
)

// canvasEditorModel edits the drawing of a canvas note with the keyboard
// cursor or the mouse.
type canvasEditorModel struct {
	noteID  string
	color   string
	surface *canvas.Canvas

	title        textinput.Model
	titleFocused bool

	cursor   image.Point
	penDown  bool
	colorIdx int

	submitting bool
}

// newCanvasEditorModel opens note in the editor, or a blank surface in
// the default note color when note is nil.
func newCanvasEditorModel(note *models.Note, cfg config.ClientCanvas) (canvasEditorModel, error) {
	base := models.Note{Type: models.CanvasNote, Color: models.DefaultNoteColor}
	if note != nil {
		base = *note
	}

	surface, err := canvas.NewForNote(base, cfg.Width, cfg.Height, cfg.History)
	if err != nil {
		return canvasEditorModel{}, err
	}

	title := textinput.New()
	title.Placeholder = "Title (optional)"
	title.Prompt = "Title: "
	title.Width = 40
	title.SetValue(base.Title)

	return canvasEditorModel{
		noteID:  base.ID,
		color:   base.Color,
		surface: surface,
		title:   title,
		cursor:  image.Point{X: gridCols / 2, Y: gridRows / 2},
	}, nil
}

func (m canvasEditorModel) editing() bool {
	return m.noteID != ""
}

func (m canvasEditorModel) cursorPixel() image.Point {
	return cellToPixel(m.surface.Bounds(), m.cursor.X, m.cursor.Y)
}

// moveCursor moves the keyboard cursor, extending the stroke while the pen
// is down.
func (m *canvasEditorModel) moveCursor(dx, dy int) {
	m.cursor.X = min(max(m.cursor.X+dx, 0), gridCols-1)
	m.cursor.Y = min(max(m.cursor.Y+dy, 0), gridRows-1)
	if m.penDown {
		p := m.cursorPixel()
		m.surface.LineTo(p.X, p.Y)
	}
}

func (m *canvasEditorModel) togglePen() {
	if m.penDown {
		m.penDown = false
		m.surface.EndStroke()
		return
	}
	m.penDown = true
	p := m.cursorPixel()
	m.surface.BeginStroke(p.X, p.Y)
}

// mouse draws with the left button. Coordinates are screen cells.
func (m *canvasEditorModel) mouse(msg tea.MouseMsg) {
	cx, cy := msg.X-canvasOriginX, msg.Y-canvasOriginY
	inside := cx >= 0 && cx < gridCols && cy >= 0 && cy < gridRows

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return
		}
		m.penDown = false
		m.cursor = image.Point{X: cx, Y: cy}
		p := m.cursorPixel()
		m.surface.BeginStroke(p.X, p.Y)
	case tea.MouseActionMotion:
		if !m.surface.Drawing() || m.penDown {
			return
		}
		m.cursor = image.Point{X: min(max(cx, 0), gridCols-1), Y: min(max(cy, 0), gridRows-1)}
		p := m.cursorPixel()
		m.surface.LineTo(p.X, p.Y)
	case tea.MouseActionRelease:
		if !m.penDown {
			m.surface.EndStroke()
		}
	}
}

func (m *canvasEditorModel) cycleColor() {
	m.colorIdx = (m.colorIdx + 1) % len(canvas.PresetColors)
	_ = m.surface.SetColor(canvas.PresetColors[m.colorIdx])
}

// capture finishes a pending stroke and encodes the drawing.
func (m *canvasEditorModel) capture() (string, error) {
	m.penDown = false
	m.surface.EndStroke()
	return m.surface.CaptureImage()
}

// handleKey applies a drawing key. It reports false for keys the editor
// does not own.
func (m *canvasEditorModel) handleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.up):
		m.moveCursor(0, -1)
	case key.Matches(msg, keys.down):
		m.moveCursor(0, 1)
	case key.Matches(msg, keys.left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, keys.right):
		m.moveCursor(1, 0)
	case key.Matches(msg, canvasKeys.penDown):
		m.togglePen()
	case key.Matches(msg, canvasKeys.pencil):
		m.surface.SetTool(canvas.ToolPencil)
	case key.Matches(msg, canvasKeys.eraser):
		m.surface.SetTool(canvas.ToolEraser)
	case key.Matches(msg, canvasKeys.wider):
		_ = m.surface.SetStrokeWidth(min(m.surface.StrokeWidth()+1, canvas.MaxStrokeWidth))
	case key.Matches(msg, canvasKeys.thinner):
		_ = m.surface.SetStrokeWidth(max(m.surface.StrokeWidth()-1, canvas.MinStrokeWidth))
	case key.Matches(msg, canvasKeys.color):
		m.cycleColor()
	case key.Matches(msg, canvasKeys.undo):
		m.penDown = false
		m.surface.Undo()
	case key.Matches(msg, canvasKeys.clear):
		m.penDown = false
		m.surface.Clear()
	default:
		return false
	}
	return true
}

func (m canvasEditorModel) View() string {
	var b strings.Builder

	if m.titleFocused {
		b.WriteString(m.title.View())
	} else {
		b.WriteString("Title: " + valueOrDash(m.title.Value()))
	}
	b.WriteString("\n")

	pen := "up"
	if m.penDown || m.surface.Drawing() {
		pen = "down"
	}
	fmt.Fprintf(&b, "tool %s │ width %d │ color %s %s │ pen %s │ history %d",
		m.surface.Tool(), m.surface.StrokeWidth(), swatch(m.surface.Color()), m.surface.Color(), pen, m.surface.HistoryLen())
	b.WriteString("\n")

	cursor := m.cursor
	b.WriteString(renderRaster(m.surface.Image(), &cursor))

	title := "NEW CANVAS NOTE"
	if m.editing() {
		title = "EDIT CANVAS NOTE"
	}
	if m.submitting {
		title += " (saving...)"
	}

	return renderPage(title, b.String(),
		"arrows move │ space pen │ mouse draw │ b pencil │ e eraser │ +/- width │ c color │ u undo │ X clear │ tab title │ ctrl+s save │ esc cancel")
}
