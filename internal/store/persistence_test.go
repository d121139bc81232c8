package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/models"
)

const testKey = "stickycanvas-notes"

// countingStorage wraps a KeyValueStorage and can be told to fail.
type countingStorage struct {
	KeyValueStorage

	mu     sync.Mutex
	puts   int
	getErr error
	putErr error
}

func (c *countingStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.KeyValueStorage.Get(ctx, key)
}

func (c *countingStorage) Put(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	c.puts++
	c.mu.Unlock()
	if c.putErr != nil {
		return c.putErr
	}
	return c.KeyValueStorage.Put(ctx, key, value)
}

func newCountingStorage() *countingStorage {
	return &countingStorage{KeyValueStorage: NewMemoryKeyValueStorage()}
}

func sampleNote(id string) models.Note {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return models.Note{
		ID:        id,
		Title:     "Groceries",
		Content:   "milk\neggs",
		Type:      models.TextNote,
		Color:     models.DefaultNoteColor,
		Tags:      []models.Tag{{ID: "t1", Name: "home"}},
		Status:    models.StatusActive,
		CreatedAt: created,
		UpdatedAt: created.Add(time.Minute),
	}
}

func TestNotePersistence_Load_NothingStored(t *testing.T) {
	p := NewNotePersistence(NewMemoryKeyValueStorage(), testKey, logger.Nop())

	res := p.Load(context.Background())

	assert.False(t, res.Found)
	assert.NotNil(t, res.Notes)
	assert.Empty(t, res.Notes)
}

func TestNotePersistence_SaveThenLoad(t *testing.T) {
	kv := NewMemoryKeyValueStorage()
	ctx := context.Background()
	notes := []models.Note{sampleNote("b"), sampleNote("a")}

	NewNotePersistence(kv, testKey, logger.Nop()).Save(ctx, notes)

	res := NewNotePersistence(kv, testKey, logger.Nop()).Load(ctx)
	require.True(t, res.Found)
	assert.Equal(t, notes, res.Notes)

	raw, err := kv.Get(ctx, testKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"version":1`)
}

func TestNotePersistence_Load_Failures(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		getErr  error
		wantErr error
	}{
		{name: "not json", stored: "not json", wantErr: ErrParse},
		{name: "truncated envelope", stored: `{"version":1,"notes":[`, wantErr: ErrParse},
		{name: "empty value", stored: "   ", wantErr: ErrParse},
		{name: "newer version", stored: `{"version":2,"notes":[]}`, wantErr: ErrUnsupportedVersion},
		{name: "read error", getErr: errors.New("permission denied"), wantErr: ErrPersistenceRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newCountingStorage()
			require.NoError(t, kv.KeyValueStorage.Put(context.Background(), testKey, []byte(tt.stored)))
			kv.getErr = tt.getErr

			var observed []error
			p := NewNotePersistence(kv, testKey, logger.Nop(), WithFailureObserver(func(err error) {
				observed = append(observed, err)
			}))

			res := p.Load(context.Background())

			assert.True(t, res.Found, "a failed read must not look like a first run")
			assert.NotNil(t, res.Notes)
			assert.Empty(t, res.Notes)
			require.Len(t, observed, 1)
			assert.ErrorIs(t, observed[0], tt.wantErr)
		})
	}
}

func TestNotePersistence_Load_LegacyArray(t *testing.T) {
	kv := NewMemoryKeyValueStorage()
	legacy := `[{"id":"old","title":"From before","content":"hi",` +
		`"createdAt":"2026-01-02T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}]`
	require.NoError(t, kv.Put(context.Background(), testKey, []byte(legacy)))

	res := NewNotePersistence(kv, testKey, logger.Nop()).Load(context.Background())

	require.True(t, res.Found)
	require.Len(t, res.Notes, 1)
	n := res.Notes[0]
	assert.Equal(t, "old", n.ID)
	assert.Equal(t, models.TextNote, n.Type)
	assert.Equal(t, models.StatusActive, n.Status)
	assert.Equal(t, models.DefaultNoteColor, n.Color)
	assert.NotNil(t, n.Tags)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt, "updatedAt is clamped to createdAt")
}

func TestNotePersistence_Save_SkipsIdenticalSnapshot(t *testing.T) {
	kv := newCountingStorage()
	p := NewNotePersistence(kv, testKey, logger.Nop())
	ctx := context.Background()
	notes := []models.Note{sampleNote("a")}

	p.Save(ctx, notes)
	p.Save(ctx, notes)
	assert.Equal(t, 1, kv.puts)

	changed := models.CloneNotes(notes)
	changed[0].Title = "Other"
	p.Save(ctx, changed)
	assert.Equal(t, 2, kv.puts)
}

func TestNotePersistence_Save_SkipsSnapshotJustLoaded(t *testing.T) {
	kv := newCountingStorage()
	ctx := context.Background()
	notes := []models.Note{sampleNote("a")}
	NewNotePersistence(kv, testKey, logger.Nop()).Save(ctx, notes)

	p := NewNotePersistence(kv, testKey, logger.Nop())
	res := p.Load(ctx)
	p.Save(ctx, res.Notes)

	assert.Equal(t, 1, kv.puts)
}

func TestNotePersistence_Save_WriteFailure(t *testing.T) {
	kv := newCountingStorage()
	kv.putErr = errors.New("quota exceeded")

	var observed error
	p := NewNotePersistence(kv, testKey, logger.Nop(), WithFailureObserver(func(err error) {
		observed = err
	}))
	ctx := context.Background()
	notes := []models.Note{sampleNote("a")}

	p.Save(ctx, notes)
	require.ErrorIs(t, observed, ErrPersistenceWrite)

	// the failed write is not remembered, so the next save retries
	kv.putErr = nil
	p.Save(ctx, notes)
	assert.Equal(t, 2, kv.puts)

	res := p.Load(ctx)
	assert.Equal(t, notes, res.Notes)
}

func TestNotePersistence_Save_NilCollection(t *testing.T) {
	kv := NewMemoryKeyValueStorage()
	ctx := context.Background()

	NewNotePersistence(kv, testKey, logger.Nop()).Save(ctx, nil)

	raw, err := kv.Get(ctx, testKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"notes":[]}`, string(raw))
}

// TestNotePersistence_RoundTrip checks that any collection of well-formed
// notes loads back exactly as it was saved.
func TestNotePersistence_RoundTrip(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	genNote := rapid.Custom(func(t *rapid.T) models.Note {
		created := base.Add(time.Duration(rapid.IntRange(0, 1_000_000).Draw(t, "created")) * time.Second)
		updated := created.Add(time.Duration(rapid.IntRange(0, 1_000_000).Draw(t, "updated")) * time.Second)
		n := models.Note{
			ID:        rapid.StringMatching(`[a-z0-9]{1,12}`).Draw(t, "id"),
			Title:     rapid.String().Draw(t, "title"),
			Content:   rapid.String().Draw(t, "content"),
			Type:      rapid.SampledFrom([]models.NoteType{models.TextNote, models.CanvasNote}).Draw(t, "type"),
			Color:     rapid.SampledFrom(models.Palette).Draw(t, "color"),
			Tags:      []models.Tag{},
			IsPinned:  rapid.Bool().Draw(t, "pinned"),
			Status:    rapid.SampledFrom([]models.NoteStatus{models.StatusActive, models.StatusArchived, models.StatusTrashed}).Draw(t, "status"),
			CreatedAt: created,
			UpdatedAt: updated,
		}
		switch n.Status {
		case models.StatusArchived:
			n.ArchivedAt = &updated
		case models.StatusTrashed:
			n.TrashedAt = &updated
		}
		return n
	})

	rapid.Check(t, func(t *rapid.T) {
		notes := rapid.SliceOf(genNote).Draw(t, "notes")

		kv := NewMemoryKeyValueStorage()
		ctx := context.Background()
		NewNotePersistence(kv, testKey, logger.Nop()).Save(ctx, notes)
		res := NewNotePersistence(kv, testKey, logger.Nop()).Load(ctx)

		if !res.Found {
			t.Fatalf("saved snapshot not found")
		}
		if len(res.Notes) != len(notes) {
			t.Fatalf("got %d notes, want %d", len(res.Notes), len(notes))
		}
		for i := range notes {
			got, want := res.Notes[i], notes[i]
			if got.ID != want.ID || got.Title != want.Title || got.Content != want.Content ||
				got.Status != want.Status || got.IsPinned != want.IsPinned ||
				!got.CreatedAt.Equal(want.CreatedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
				t.Fatalf("note %d changed in round trip:\n got %+v\nwant %+v", i, got, want)
			}
		}
	})
}
