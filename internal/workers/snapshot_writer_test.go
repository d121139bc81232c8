package workers

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/mock"
	"github.com/MKhiriev/sticky-canvas/internal/store"
	"github.com/MKhiriev/sticky-canvas/models"
)

// recordingPersistence remembers the IDs of every saved snapshot. When gate
// is set, Save announces itself on entered and waits for gate to close.
type recordingPersistence struct {
	mu    sync.Mutex
	saved [][]string

	entered chan struct{}
	gate    chan struct{}
}

func (r *recordingPersistence) Load(context.Context) store.LoadResult {
	return store.LoadResult{}
}

func (r *recordingPersistence) Save(_ context.Context, notes []models.Note) {
	if r.gate != nil {
		r.entered <- struct{}{}
		<-r.gate
	}

	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}

	r.mu.Lock()
	r.saved = append(r.saved, ids)
	r.mu.Unlock()
}

func (r *recordingPersistence) snapshots() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.saved...)
}

func notesWithIDs(ids ...string) []models.Note {
	out := make([]models.Note, len(ids))
	for i, id := range ids {
		out[i] = models.Note{ID: id}
	}
	return out
}

func TestSnapshotWriter_WritesInBackground(t *testing.T) {
	p := &recordingPersistence{}
	w := NewSnapshotWriter(p, logger.Nop())
	w.Run(context.Background())
	defer w.Stop()

	w.Save(context.Background(), notesWithIDs("a"))

	require.Eventually(t, func() bool {
		return len(p.snapshots()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, [][]string{{"a"}}, p.snapshots())
}

func TestSnapshotWriter_CoalescesPendingSnapshots(t *testing.T) {
	p := &recordingPersistence{
		entered: make(chan struct{}),
		gate:    make(chan struct{}),
	}
	w := NewSnapshotWriter(p, logger.Nop())
	w.Run(context.Background())

	w.Save(context.Background(), notesWithIDs("first"))
	<-p.entered // the writer is busy with "first"

	w.Save(context.Background(), notesWithIDs("second"))
	w.Save(context.Background(), notesWithIDs("third"))

	go func() {
		for range p.entered {
		}
	}()
	close(p.gate)
	w.Stop()
	close(p.entered)

	assert.Equal(t, [][]string{{"first"}, {"third"}}, p.snapshots())
}

func TestSnapshotWriter_Save_DoesNotBlock(t *testing.T) {
	p := &recordingPersistence{
		entered: make(chan struct{}, 16),
		gate:    make(chan struct{}),
	}
	w := NewSnapshotWriter(p, logger.Nop())
	w.Run(context.Background())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			w.Save(context.Background(), notesWithIDs("n"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Save blocked while storage was busy")
	}

	close(p.gate)
	w.Stop()
}

func TestSnapshotWriter_Stop_FlushesWithoutRun(t *testing.T) {
	p := &recordingPersistence{}
	w := NewSnapshotWriter(p, logger.Nop())

	w.Save(context.Background(), notesWithIDs("a", "b"))
	assert.Empty(t, p.snapshots())

	w.Stop()
	w.Stop()

	assert.Equal(t, [][]string{{"a", "b"}}, p.snapshots())
}

func TestSnapshotWriter_Stop_AfterContextCancel(t *testing.T) {
	p := &recordingPersistence{}
	w := NewSnapshotWriter(p, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)
	cancel()

	w.Save(context.Background(), notesWithIDs("late"))
	w.Stop()

	assert.Contains(t, p.snapshots(), []string{"late"})
}

func TestSnapshotWriter_Load_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persistence := mock.NewMockNotePersistence(ctrl)
	want := store.LoadResult{Notes: notesWithIDs("x"), Found: true}
	persistence.EXPECT().Load(gomock.Any()).Return(want)

	w := NewSnapshotWriter(persistence, logger.Nop())

	assert.Equal(t, want, w.Load(context.Background()))
}

func TestSnapshotWriter_SaveContextCarriesLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	persistence := mock.NewMockNotePersistence(ctrl)
	persistence.EXPECT().Save(gomock.Any(), gomock.Any()).Do(func(ctx context.Context, _ []models.Note) {
		logger.FromContext(ctx).Warn().Msg("snapshot write failed")
	})

	w := NewSnapshotWriter(persistence, logger.NewLogger("test", &buf, "debug"))
	w.Run(context.Background())
	w.Save(context.Background(), notesWithIDs("a"))
	w.Stop()

	assert.Contains(t, buf.String(), "snapshot write failed")
}
