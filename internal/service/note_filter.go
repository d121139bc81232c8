package service

import (
	"strings"

	"github.com/MKhiriev/sticky-canvas/models"
)

func matchesFilter(n models.Note, f models.NoteFilter) bool {
	if f.Status != nil && n.Status != *f.Status {
		return false
	}
	if f.Type != nil && n.Type != *f.Type {
		return false
	}
	if f.TagID != "" && !n.HasTag(f.TagID) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		return containsFold(n, q)
	}
	return true
}

// containsFold matches a lower-cased query against title, content, summary
// and tag names.
func containsFold(n models.Note, q string) bool {
	for _, s := range []string{n.Title, n.Content, n.Summary} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t.Name), q) {
			return true
		}
	}
	return false
}
