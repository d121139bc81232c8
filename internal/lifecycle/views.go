package lifecycle

import (
	"slices"
	"time"

	"github.com/MKhiriev/sticky-canvas/models"
)

// ActiveView returns the active notes: pinned first by UpdatedAt descending,
// then unpinned by CreatedAt descending. Ties fall back to ID.
func ActiveView(notes []models.Note) []models.Note {
	view := subset(notes, models.StatusActive)
	slices.SortStableFunc(view, func(a, b models.Note) int {
		if a.IsPinned != b.IsPinned {
			if a.IsPinned {
				return -1
			}
			return 1
		}
		if a.IsPinned {
			return byTimeDesc(a.UpdatedAt, b.UpdatedAt, a.ID, b.ID)
		}
		return byTimeDesc(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})
	return view
}

// ArchivedView returns archived notes by ArchivedAt descending, notes
// without the timestamp last.
func ArchivedView(notes []models.Note) []models.Note {
	view := subset(notes, models.StatusArchived)
	slices.SortStableFunc(view, func(a, b models.Note) int {
		return byOptionalTimeDesc(a.ArchivedAt, b.ArchivedAt, a.ID, b.ID)
	})
	return view
}

// TrashedView returns trashed notes by TrashedAt descending, notes without
// the timestamp last.
func TrashedView(notes []models.Note) []models.Note {
	view := subset(notes, models.StatusTrashed)
	slices.SortStableFunc(view, func(a, b models.Note) int {
		return byOptionalTimeDesc(a.TrashedAt, b.TrashedAt, a.ID, b.ID)
	})
	return view
}

// View dispatches to the ordering of the given status.
func View(notes []models.Note, status models.NoteStatus) []models.Note {
	switch status {
	case models.StatusArchived:
		return ArchivedView(notes)
	case models.StatusTrashed:
		return TrashedView(notes)
	default:
		return ActiveView(notes)
	}
}

func subset(notes []models.Note, status models.NoteStatus) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if n.Status == status {
			out = append(out, n.Clone())
		}
	}
	return out
}

func byTimeDesc(a, b time.Time, aID, bID string) int {
	if c := b.Compare(a); c != 0 {
		return c
	}
	return compareIDs(aID, bID)
}

func byOptionalTimeDesc(a, b *time.Time, aID, bID string) int {
	switch {
	case a == nil && b == nil:
		return compareIDs(aID, bID)
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return byTimeDesc(*a, *b, aID, bID)
	}
}

func compareIDs(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
