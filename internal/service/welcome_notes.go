package service

import (
	"time"

	"github.com/MKhiriev/sticky-canvas/models"
)

// welcomeNotes builds the notes shown on a first run. The first note is a
// day older than the others so it sorts below the fresh ones.
func welcomeNotes(now time.Time, ids IDGenerator) []models.Note {
	yesterday := now.Add(-24 * time.Hour)

	return []models.Note{
		{
			ID:        ids.Generate(),
			Content:   "Welcome to StickyCanvas! This is your first note. Press enter to edit, or use the menu for more options.",
			Type:      models.TextNote,
			Color:     "#FFFACD",
			Tags:      []models.Tag{{ID: ids.Generate(), Name: "Welcome"}},
			ImageURL:  "https://placehold.co/600x400.png",
			Status:    models.StatusActive,
			CreatedAt: yesterday,
			UpdatedAt: now,
		},
		{
			ID:      ids.Generate(),
			Content: "Pin important notes to keep them at the top! This note is pinned.",
			Type:    models.TextNote,
			Color:   "#ADD8E6",
			Tags: []models.Tag{
				{ID: ids.Generate(), Name: "Tip"},
				{ID: ids.Generate(), Name: "Important"},
			},
			IsPinned:  true,
			Status:    models.StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        ids.Generate(),
			Content:   "Try summarizing a long note from the note menu. It helps to get a quick overview.",
			Type:      models.TextNote,
			Color:     "#90EE90",
			Tags:      []models.Tag{{ID: ids.Generate(), Name: "Feature"}},
			Status:    models.StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
