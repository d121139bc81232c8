package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/sticky-canvas/models"
)

// snapshotVersion is written into every envelope. Readers reject anything
// newer.
const snapshotVersion = 1

// snapshotEnvelope is the stored layout:
//
//	{"version": 1, "notes": [ ... ]}
//
// Releases before the envelope stored the bare notes array; decodeSnapshot
// still reads that form.
type snapshotEnvelope struct {
	Version int           `json:"version"`
	Notes   []models.Note `json:"notes"`
}

func encodeSnapshot(notes []models.Note) ([]byte, error) {
	if notes == nil {
		notes = []models.Note{}
	}
	return json.Marshal(snapshotEnvelope{Version: snapshotVersion, Notes: notes})
}

// decodeSnapshot parses an envelope or a legacy array. Every failure wraps
// ErrParse.
func decodeSnapshot(data []byte) ([]models.Note, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrParse)
	}

	var notes []models.Note
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &notes); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	case '{':
		var env snapshotEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if env.Version < 1 || env.Version > snapshotVersion {
			return nil, fmt.Errorf("%w: %w: %d", ErrParse, ErrUnsupportedVersion, env.Version)
		}
		notes = env.Notes
	default:
		return nil, fmt.Errorf("%w: unexpected leading byte %q", ErrParse, trimmed[0])
	}

	for i := range notes {
		normalizeLegacy(&notes[i])
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// normalizeLegacy fills fields that early snapshots did not write.
func normalizeLegacy(n *models.Note) {
	if n.Type == "" {
		n.Type = models.TextNote
	}
	if n.Status == "" {
		n.Status = models.StatusActive
	}
	if n.Color == "" {
		n.Color = models.DefaultNoteColor
	}
	if n.Tags == nil {
		n.Tags = []models.Tag{}
	}
	if n.UpdatedAt.Before(n.CreatedAt) {
		n.UpdatedAt = n.CreatedAt
	}
}
