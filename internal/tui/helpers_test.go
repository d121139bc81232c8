package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sticky-canvas/internal/adapter"
	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/service"
	"github.com/MKhiriev/sticky-canvas/internal/store"
	"github.com/MKhiriev/sticky-canvas/models"
	tea "github.com/charmbracelet/bubbletea"
)

var testCanvas = config.ClientCanvas{Width: 100, Height: 80, History: 10}

type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("note-%03d", g.n)
}

type testBoard struct {
	m      appModel
	notes  service.NoteService
	copied []string
}

func newTestBoard(t *testing.T, summarizer adapter.Summarizer) *testBoard {
	t.Helper()

	log := logger.Nop()
	cfg := &config.ClientConfig{Storage: config.ClientStorage{Backend: config.BackendMemory, Key: config.DefaultStorageKey}}
	persistence := store.NewNotePersistence(store.NewMemoryKeyValueStorage(), config.DefaultStorageKey, log)

	notes := service.NewNoteService(persistence, summarizer, log,
		service.WithClock(&stepClock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}),
		service.WithIDGenerator(&seqIDs{}),
		service.WithWelcomeNotes(false),
	)
	services := &service.Services{
		NoteService:    notes,
		AppInfoService: service.NewAppInfoService(models.NewAppBuildInfo("1.2.3", "2026-05-01", "abc123"), cfg, log),
	}

	b := &testBoard{notes: notes}
	tagIDs := &seqIDs{}
	b.m = newAppModel(context.Background(), services, testCanvas, log)
	b.m.newID = func() string { return "tag-" + tagIDs.Generate() }
	b.m.writeToClip = func(s string) error {
		b.copied = append(b.copied, s)
		return nil
	}
	b.exec(t, b.m.Init())
	return b
}

// send feeds msg to the model and returns the produced command without
// running it.
func (b *testBoard) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := b.m.Update(msg)
	m, ok := next.(appModel)
	require.True(t, ok)
	b.m = m
	return cmd
}

// exec runs cmd once and feeds its message back. Batches run each part.
// Commands produced by the feedback are not run.
func (b *testBoard) exec(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			b.exec(t, c)
		}
		return
	}
	b.send(t, msg)
}

// press sends a key and runs the resulting command.
func (b *testBoard) press(t *testing.T, k tea.KeyMsg) {
	t.Helper()
	b.exec(t, b.send(t, k))
}

func (b *testBoard) typeText(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		b.send(t, runes(string(r)))
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func (b *testBoard) create(t *testing.T, draft models.NoteDraft) models.Note {
	t.Helper()
	if draft.Type == "" {
		draft.Type = models.TextNote
	}
	n, err := b.notes.Create(context.Background(), draft)
	require.NoError(t, err)
	b.m.refresh()
	return n
}

func (b *testBoard) titles() []string {
	out := make([]string, 0, len(b.m.list.items))
	for _, n := range b.m.list.items {
		out = append(out, n.DisplayTitle())
	}
	return out
}
