package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/sticky-canvas/internal/app"
	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/internal/lifecycle"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/service"
	"github.com/MKhiriev/sticky-canvas/internal/utils"
	"github.com/MKhiriev/sticky-canvas/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenFormText
	screenCanvas
	screenInfo
)

var errNothingToCopy = errors.New(app.MsgNothingToCopy)

type appModel struct {
	ctx       context.Context
	notes     service.NoteService
	appInfo   service.AppInfoService
	canvasCfg config.ClientCanvas
	logger    *logger.Logger

	newID       func() string
	writeToClip func(string) error

	currentScreen screen
	width         int

	list         listModel
	detail       detailModel
	formText     formTextModel
	canvasEditor canvasEditorModel
	info         infoModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
}

func newAppModel(ctx context.Context, services *service.Services, canvasCfg config.ClientCanvas, log *logger.Logger) appModel {
	ids := utils.NewUUIDGenerator()
	return appModel{
		ctx:           ctx,
		notes:         services.NoteService,
		appInfo:       services.AppInfoService,
		canvasCfg:     canvasCfg,
		logger:        log,
		newID:         ids.Generate,
		writeToClip:   clipboard.WriteAll,
		currentScreen: screenList,
		list:          newListModel(),
	}
}

// Init draws the board from the store, which the client has loaded before
// the program starts.
func (m appModel) Init() tea.Cmd {
	return cmdRefresh
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				id := m.pendingDelete
				m.pendingDelete = ""
				if id == "" {
					return m, nil
				}
				return m, m.cmdTransition(id, models.ActionDeletePermanently)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case notesLoadedMsg:
		m.refresh()
		return m, nil
	case noteSavedMsg:
		m.formText.submitting = false
		m.canvasEditor.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if m.currentScreen == screenFormText || m.currentScreen == screenCanvas {
			m.currentScreen = screenList
		}
		m.refresh()
		m.selectNote(msg.note.ID)
		return m, nil
	case transitionDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if m.currentScreen == screenDetail {
			m.currentScreen = screenList
		}
		m.list.status = transitionStatus(msg.action)
		m.refresh()
		return m, cmdClearStatus()
	case summarizeDoneMsg:
		delete(m.list.summarizing, msg.noteID)
		if msg.err != nil {
			m.list.status = ""
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.status = app.MsgSummaryReady
		m.refresh()
		return m, cmdClearStatus()
	case copiedMsg:
		m.list.status = app.MsgCopied
		m.detail.status = app.MsgCopied
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		m.detail.status = ""
		return m, nil
	case errorMsg:
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	case spinner.TickMsg:
		if len(m.list.summarizing) == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.MouseMsg:
		if m.currentScreen == screenCanvas && !m.showError && !m.canvasEditor.submitting {
			m.canvasEditor.mouse(msg)
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenFormText:
		return m.updateFormText(msg)
	case screenCanvas:
		return m.updateCanvas(msg)
	case screenInfo:
		return m.updateInfo(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenFormText:
		body = m.formText.View()
	case screenCanvas:
		body = m.canvasEditor.View()
	case screenInfo:
		body = m.info.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// refresh re-reads the current board view from the note store and, on the
// detail screen, the open note.
func (m *appModel) refresh() {
	notes := slices.Collect(m.notes.List(m.ctx, m.list.filter()))
	m.list.setItems(lifecycle.View(notes, m.list.view))

	if m.currentScreen != screenDetail {
		return
	}
	note, err := m.notes.Get(m.ctx, m.detail.note.ID)
	if err != nil {
		m.currentScreen = screenList
		return
	}
	status := m.detail.status
	m.detail = newDetailModel(note, m.width, m.canvasCfg)
	m.detail.status = status
}

// selectNote moves the list cursor to id when it is listed.
func (m *appModel) selectNote(id string) {
	for i, n := range m.list.items {
		if n.ID == id {
			m.list.idx = i
			return
		}
	}
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		return m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.list.view = nextView(m.list.view, 1)
		m.list.idx = 0
		m.refresh()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.list.view = nextView(m.list.view, -1)
		m.list.idx = 0
		m.refresh()
		return m, nil
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		return m, m.list.search.Focus()
	case key.Matches(keyMsg, keys.tagFilter):
		m.list.tag = nextTag(m.notes.Tags(m.ctx), m.list.tag)
		m.list.idx = 0
		m.refresh()
		return m, nil
	case key.Matches(keyMsg, keys.esc):
		if m.list.hasFilter() {
			m.list.search.SetValue("")
			m.list.tag = models.Tag{}
			m.refresh()
		}
		return m, nil
	case key.Matches(keyMsg, keys.newText):
		m.formText = newFormTextModel(nil)
		m.currentScreen = screenFormText
		return m, nil
	case key.Matches(keyMsg, keys.newCanvas):
		return m.openCanvasEditor(nil)
	case key.Matches(keyMsg, keys.info):
		m.info = infoModel{
			build:         m.appInfo.BuildInfo(m.ctx),
			storage:       m.appInfo.StorageDescription(m.ctx),
			summarization: m.appInfo.SummarizationEnabled(m.ctx),
		}
		m.currentScreen = screenInfo
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	note, ok := m.list.current()
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, keys.enter) {
		m.detail = newDetailModel(note, m.width, m.canvasCfg)
		m.currentScreen = screenDetail
		return m, nil
	}
	return m.noteAction(keyMsg, note)
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.list.searching = false
			m.list.search.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.search.Blur()
			m.list.search.SetValue("")
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)
	m.list.idx = 0
	m.refresh()
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m.noteAction(keyMsg, m.detail.note)
}

// noteAction handles the keys shared by the board and the detail screen.
// Transitions that do not apply to the note are rejected by the note
// store and shown in the error overlay.
func (m appModel) noteAction(keyMsg tea.KeyMsg, note models.Note) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.edit):
		if err := lifecycle.CanEdit(note); err != nil {
			m.showErrorf(humanizeError(err))
			return m, nil
		}
		if note.Type == models.CanvasNote {
			return m.openCanvasEditor(&note)
		}
		m.formText = newFormTextModel(&note)
		m.currentScreen = screenFormText
		return m, nil
	case key.Matches(keyMsg, keys.pin):
		return m, m.cmdUpdate(note.ID, models.NoteUpdate{IsPinned: models.Ptr(!note.IsPinned)})
	case key.Matches(keyMsg, keys.color):
		return m, m.cmdUpdate(note.ID, models.NoteUpdate{Color: models.Ptr(models.NextPaletteColor(note.Color))})
	case key.Matches(keyMsg, keys.archive):
		return m, m.cmdTransition(note.ID, models.ActionArchive)
	case key.Matches(keyMsg, keys.unarchive):
		return m, m.cmdTransition(note.ID, models.ActionUnarchive)
	case key.Matches(keyMsg, keys.trash):
		return m, m.cmdTransition(note.ID, models.ActionTrash)
	case key.Matches(keyMsg, keys.restore):
		return m, m.cmdTransition(note.ID, models.ActionRestore)
	case key.Matches(keyMsg, keys.purge):
		if note.Status != models.StatusTrashed {
			return m, m.cmdTransition(note.ID, models.ActionDeletePermanently)
		}
		m.pendingDelete = note.ID
		m.confirm = confirmModel{message: note.DisplayTitle()}
		m.showConfirm = true
		return m, nil
	case key.Matches(keyMsg, keys.summarize):
		if m.list.summarizing[note.ID] {
			return m, nil
		}
		m.list.summarizing[note.ID] = true
		m.list.status = app.MsgSummarizing
		return m, tea.Batch(m.list.spinner.Tick, m.cmdSummarize(note.ID))
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyToClipboard(copyValue(note))
	}
	return m, nil
}

func (m appModel) openCanvasEditor(note *models.Note) (tea.Model, tea.Cmd) {
	editor, err := newCanvasEditorModel(note, m.canvasCfg)
	if err != nil {
		m.logger.Err(err).Str("func", "appModel.openCanvasEditor").Msg("failed to open canvas")
		m.showErrorf(humanizeError(err))
		return m, nil
	}
	m.canvasEditor = editor
	m.currentScreen = screenCanvas
	return m, nil
}

func (m appModel) updateFormText(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.formText.submitting {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formText.setFocus(m.formText.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formText.setFocus(m.formText.focus - 1)
			return m, nil
		case keyMsg.String() == "ctrl+o":
			m.formText.color = models.NextPaletteColor(m.formText.color)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			tags := parseTags(m.formText.tags.Value(), m.notes.Tags(m.ctx), m.newID)
			m.formText.submitting = true
			if m.formText.editing() {
				return m, m.cmdUpdate(m.formText.noteID, m.formText.toUpdate(tags))
			}
			return m, m.cmdCreate(m.formText.toDraft(tags))
		}
	}

	var cmd tea.Cmd
	m.formText, cmd = m.formText.updateFocused(msg)
	return m, cmd
}

func (m appModel) updateCanvas(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.canvasEditor.submitting {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.canvasEditor.titleFocused {
			var cmd tea.Cmd
			m.canvasEditor.title, cmd = m.canvasEditor.title.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		if m.canvasEditor.titleFocused {
			m.canvasEditor.titleFocused = false
			m.canvasEditor.title.Blur()
			return m, nil
		}
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.canvasEditor.titleFocused = !m.canvasEditor.titleFocused
		if m.canvasEditor.titleFocused {
			return m, m.canvasEditor.title.Focus()
		}
		m.canvasEditor.title.Blur()
		return m, nil
	case key.Matches(keyMsg, keys.save):
		data, err := m.canvasEditor.capture()
		if err != nil {
			m.logger.Err(err).Str("func", "appModel.updateCanvas").Msg("failed to capture canvas")
			m.showErrorf(humanizeError(err))
			return m, nil
		}
		m.canvasEditor.submitting = true
		title := strings.TrimSpace(m.canvasEditor.title.Value())
		if m.canvasEditor.editing() {
			return m, m.cmdUpdate(m.canvasEditor.noteID, models.NoteUpdate{Title: &title, CanvasData: &data})
		}
		return m, m.cmdCreate(models.NoteDraft{
			Type:       models.CanvasNote,
			Title:      title,
			CanvasData: data,
			Color:      m.canvasEditor.color,
		})
	}

	if m.canvasEditor.titleFocused {
		var cmd tea.Cmd
		m.canvasEditor.title, cmd = m.canvasEditor.title.Update(msg)
		return m, cmd
	}
	m.canvasEditor.handleKey(keyMsg)
	return m, nil
}

func (m appModel) updateInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.info):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func cmdRefresh() tea.Msg {
	return notesLoadedMsg{}
}

func (m appModel) cmdCreate(draft models.NoteDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.notes
	return func() tea.Msg {
		note, err := svc.Create(ctx, draft)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdUpdate(id string, upd models.NoteUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.notes
	return func() tea.Msg {
		note, err := svc.Update(ctx, id, upd)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdTransition(id string, action models.LifecycleAction) tea.Cmd {
	ctx := m.ctx
	svc := m.notes
	return func() tea.Msg {
		_, err := svc.Transition(ctx, id, action)
		return transitionDoneMsg{action: action, err: err}
	}
}

// cmdSummarize waits for the outcome of the background summarization.
func (m appModel) cmdSummarize(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.notes
	return func() tea.Msg {
		done, err := svc.Summarize(ctx, id)
		if err != nil {
			return summarizeDoneMsg{noteID: id, err: err}
		}
		return summarizeDoneMsg{noteID: id, err: <-done}
	}
}

func (m appModel) cmdCopyToClipboard(text string) tea.Cmd {
	write := m.writeToClip
	return func() tea.Msg {
		if text == "" {
			return errorMsg{err: errNothingToCopy}
		}
		if err := write(text); err != nil {
			return errorMsg{err: fmt.Errorf("%s: %w", app.MsgClipboardFailed, err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// copyValue is the clipboard text of a note: the content, or the summary
// for notes without content.
func copyValue(note models.Note) string {
	if note.Type == models.TextNote && strings.TrimSpace(note.Content) != "" {
		return note.Content
	}
	return note.Summary
}

func transitionStatus(action models.LifecycleAction) string {
	switch action {
	case models.ActionArchive:
		return "note archived"
	case models.ActionUnarchive:
		return "note moved back to the board"
	case models.ActionTrash:
		return "note moved to trash"
	case models.ActionRestore:
		return "note restored"
	case models.ActionDeletePermanently:
		return "note deleted permanently"
	default:
		return ""
	}
}
