package service

import (
	"context"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/MKhiriev/sticky-canvas/internal/lifecycle"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/store"
	"github.com/MKhiriev/sticky-canvas/models"
)

var allActions = []models.LifecycleAction{
	models.ActionArchive,
	models.ActionUnarchive,
	models.ActionTrash,
	models.ActionRestore,
	models.ActionDeletePermanently,
}

// TestNoteService_Properties runs random operation sequences and checks
// after each step that every note is internally consistent, that UpdatedAt
// only grows, and that rejected operations change nothing.
func TestNoteService_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		step := time.Duration(rapid.IntRange(0, 2).Draw(t, "clockStep")) * time.Second
		svc := NewNoteService(
			store.NewNotePersistence(store.NewMemoryKeyValueStorage(), "notes", logger.Nop()),
			nil,
			logger.Nop(),
			WithClock(&stepClock{t: t0, step: step}),
			WithIDGenerator(&seqIDs{}),
			WithWelcomeNotes(false),
		).(*noteService)
		c := context.Background()

		lastUpdated := map[string]time.Time{}
		var ids []string

		for range rapid.IntRange(1, 40).Draw(t, "steps") {
			op := rapid.IntRange(0, 2).Draw(t, "op")
			if len(ids) == 0 {
				op = 0
			}

			switch op {
			case 0:
				n, err := svc.Create(c, models.NoteDraft{Content: rapid.String().Draw(t, "content")})
				if err != nil {
					t.Fatalf("create: %v", err)
				}
				ids = append(ids, n.ID)
				lastUpdated[n.ID] = n.UpdatedAt

			case 1:
				id := rapid.SampledFrom(ids).Draw(t, "updateID")
				before, _ := svc.Get(c, id)
				got, err := svc.Update(c, id, models.NoteUpdate{IsPinned: models.Ptr(rapid.Bool().Draw(t, "pin"))})
				if err != nil {
					after, _ := svc.Get(c, id)
					if before.Status == models.StatusActive || !equalNotes(before, after) {
						t.Fatalf("rejected update changed state or failed on an active note: %v", err)
					}
					continue
				}
				if !got.UpdatedAt.After(lastUpdated[id]) {
					t.Fatalf("updatedAt did not increase: %v -> %v", lastUpdated[id], got.UpdatedAt)
				}
				lastUpdated[id] = got.UpdatedAt

			case 2:
				id := rapid.SampledFrom(ids).Draw(t, "transitionID")
				action := rapid.SampledFrom(allActions).Draw(t, "action")
				before, err := svc.Get(c, id)
				if err != nil {
					continue
				}
				out, err := svc.Transition(c, id, action)
				legal := lifecycle.Allowed(before.Status, action)
				if legal != (err == nil) {
					t.Fatalf("%s from %s: legal=%v err=%v", action, before.Status, legal, err)
				}
				if err != nil {
					after, _ := svc.Get(c, id)
					if !equalNotes(before, after) {
						t.Fatalf("rejected transition changed the note")
					}
					continue
				}
				if action == models.ActionDeletePermanently {
					if out != nil {
						t.Fatalf("deletePermanently returned a note")
					}
					delete(lastUpdated, id)
					continue
				}
				if !out.UpdatedAt.After(lastUpdated[id]) {
					t.Fatalf("updatedAt did not increase on transition")
				}
				lastUpdated[id] = out.UpdatedAt
			}

			for n := range svc.List(c, models.NoteFilter{}) {
				if !lifecycle.Consistent(n) {
					t.Fatalf("inconsistent note %+v", n)
				}
				if n.UpdatedAt.Before(n.CreatedAt) {
					t.Fatalf("updatedAt before createdAt: %+v", n)
				}
			}
		}
	})
}

func equalNotes(a, b models.Note) bool {
	return a.ID == b.ID &&
		a.Status == b.Status &&
		a.IsPinned == b.IsPinned &&
		a.UpdatedAt.Equal(b.UpdatedAt) &&
		(a.ArchivedAt == nil) == (b.ArchivedAt == nil) &&
		(a.TrashedAt == nil) == (b.TrashedAt == nil)
}
