package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/MKhiriev/sticky-canvas/models"
)

var (
	t0  = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now = t0.Add(time.Hour)
)

func noteIn(status models.NoteStatus) models.Note {
	n := models.Note{
		ID:        "n1",
		Type:      models.TextNote,
		Content:   "Hello",
		Status:    status,
		CreatedAt: t0,
		UpdatedAt: t0,
	}
	switch status {
	case models.StatusArchived:
		n.ArchivedAt = timePtr(t0)
	case models.StatusTrashed:
		n.TrashedAt = timePtr(t0)
	}
	return n
}

var allStatuses = []models.NoteStatus{models.StatusActive, models.StatusArchived, models.StatusTrashed}

var allActions = []models.LifecycleAction{
	models.ActionArchive,
	models.ActionUnarchive,
	models.ActionTrash,
	models.ActionRestore,
	models.ActionDeletePermanently,
}

// ── Apply ──────────────────────────────────────────────────────────────────

func TestApply_TransitionTable(t *testing.T) {
	tests := []struct {
		from        models.NoteStatus
		action      models.LifecycleAction
		wantStatus  models.NoteStatus
		wantRemoved bool
		wantErr     bool
	}{
		{from: models.StatusActive, action: models.ActionArchive, wantStatus: models.StatusArchived},
		{from: models.StatusActive, action: models.ActionTrash, wantStatus: models.StatusTrashed},
		{from: models.StatusActive, action: models.ActionUnarchive, wantErr: true},
		{from: models.StatusActive, action: models.ActionRestore, wantErr: true},
		{from: models.StatusActive, action: models.ActionDeletePermanently, wantErr: true},

		{from: models.StatusArchived, action: models.ActionUnarchive, wantStatus: models.StatusActive},
		{from: models.StatusArchived, action: models.ActionTrash, wantStatus: models.StatusTrashed},
		{from: models.StatusArchived, action: models.ActionArchive, wantErr: true},
		{from: models.StatusArchived, action: models.ActionRestore, wantErr: true},
		{from: models.StatusArchived, action: models.ActionDeletePermanently, wantErr: true},

		{from: models.StatusTrashed, action: models.ActionRestore, wantStatus: models.StatusActive},
		{from: models.StatusTrashed, action: models.ActionDeletePermanently, wantRemoved: true},
		{from: models.StatusTrashed, action: models.ActionArchive, wantErr: true},
		{from: models.StatusTrashed, action: models.ActionUnarchive, wantErr: true},
		{from: models.StatusTrashed, action: models.ActionTrash, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			in := noteIn(tt.from)

			out, removed, err := Apply(in, tt.action, now)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTransition)
				assert.False(t, removed)
				assert.Equal(t, in, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemoved, removed)
			if tt.wantRemoved {
				return
			}
			assert.Equal(t, tt.wantStatus, out.Status)
			assert.Equal(t, now, out.UpdatedAt)
			assert.True(t, Consistent(out))
			assert.Equal(t, tt.wantStatus == models.StatusArchived, out.ArchivedAt != nil)
			assert.Equal(t, tt.wantStatus == models.StatusTrashed, out.TrashedAt != nil)
		})
	}
}

func TestApply_SetsTimestampsToNow(t *testing.T) {
	archived, _, err := Apply(noteIn(models.StatusActive), models.ActionArchive, now)
	require.NoError(t, err)
	require.NotNil(t, archived.ArchivedAt)
	assert.Equal(t, now, *archived.ArchivedAt)
	assert.Nil(t, archived.TrashedAt)

	later := now.Add(time.Minute)
	trashed, _, err := Apply(archived, models.ActionTrash, later)
	require.NoError(t, err)
	require.NotNil(t, trashed.TrashedAt)
	assert.Equal(t, later, *trashed.TrashedAt)
	assert.Nil(t, trashed.ArchivedAt)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := noteIn(models.StatusArchived)
	archivedAt := *in.ArchivedAt

	_, _, err := Apply(in, models.ActionTrash, now)
	require.NoError(t, err)

	assert.Equal(t, models.StatusArchived, in.Status)
	assert.Equal(t, archivedAt, *in.ArchivedAt)
}

func TestApply_ArchiveKeepsPin(t *testing.T) {
	in := noteIn(models.StatusActive)
	in.IsPinned = true

	out, _, err := Apply(in, models.ActionArchive, now)
	require.NoError(t, err)
	assert.True(t, out.IsPinned)
}

func TestApply_ArchiveTwice(t *testing.T) {
	archived, _, err := Apply(noteIn(models.StatusActive), models.ActionArchive, now)
	require.NoError(t, err)

	again, _, err := Apply(archived, models.ActionArchive, now.Add(time.Minute))
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, archived, again)
}

func TestApply_UnknownAction(t *testing.T) {
	_, _, err := Apply(noteIn(models.StatusActive), "explode", now)
	require.ErrorIs(t, err, ErrUnknownAction)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// ── CanEdit / Consistent / Expired ────────────────────────────────────────

func TestCanEdit(t *testing.T) {
	assert.NoError(t, CanEdit(noteIn(models.StatusActive)))
	assert.ErrorIs(t, CanEdit(noteIn(models.StatusArchived)), ErrNoteNotEditable)
	assert.ErrorIs(t, CanEdit(noteIn(models.StatusTrashed)), ErrNoteNotEditable)
}

func TestConsistent(t *testing.T) {
	for _, s := range allStatuses {
		assert.True(t, Consistent(noteIn(s)), s)
	}

	broken := noteIn(models.StatusActive)
	broken.TrashedAt = timePtr(t0)
	assert.False(t, Consistent(broken))

	assert.False(t, Consistent(models.Note{Status: "gone"}))
}

func TestExpired(t *testing.T) {
	retention := 30 * 24 * time.Hour
	trashed := noteIn(models.StatusTrashed)

	tests := []struct {
		name      string
		note      models.Note
		retention time.Duration
		now       time.Time
		want      bool
	}{
		{name: "inside window", note: trashed, retention: retention, now: t0.Add(retention - time.Second)},
		{name: "at boundary", note: trashed, retention: retention, now: t0.Add(retention), want: true},
		{name: "past window", note: trashed, retention: retention, now: t0.Add(2 * retention), want: true},
		{name: "disabled", note: trashed, retention: 0, now: t0.Add(2 * retention)},
		{name: "active note", note: noteIn(models.StatusActive), retention: retention, now: t0.Add(2 * retention)},
		{name: "missing trashedAt", note: models.Note{Status: models.StatusTrashed}, retention: retention, now: t0.Add(2 * retention)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expired(tt.note, tt.retention, tt.now))
		})
	}
}

// ── Properties ────────────────────────────────────────────────────────────

// TestApply_Properties drives random action sequences and checks that only
// table transitions change the note and that timestamps stay consistent.
func TestApply_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		note := noteIn(models.StatusActive)
		clock := t0

		steps := rapid.IntRange(1, 30).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			action := rapid.SampledFrom(allActions).Draw(rt, "action")
			clock = clock.Add(time.Duration(rapid.IntRange(1, 3600).Draw(rt, "advance")) * time.Second)

			legal := Allowed(note.Status, action)
			out, removed, err := Apply(note, action, clock)

			if !legal {
				if !errors.Is(err, ErrInvalidTransition) {
					rt.Fatalf("expected ErrInvalidTransition for %s on %s, got %v", action, note.Status, err)
				}
				if out.Status != note.Status || out.UpdatedAt != note.UpdatedAt {
					rt.Fatalf("illegal %s changed the note", action)
				}
				continue
			}
			if err != nil {
				rt.Fatalf("legal %s on %s failed: %v", action, note.Status, err)
			}
			if removed {
				if note.Status != models.StatusTrashed {
					rt.Fatalf("removed a note in status %s", note.Status)
				}
				return
			}
			if !Consistent(out) {
				rt.Fatalf("inconsistent note after %s: %+v", action, out)
			}
			if !out.UpdatedAt.After(note.UpdatedAt) {
				rt.Fatalf("updatedAt did not advance after %s", action)
			}
			note = out
		}
	})
}
