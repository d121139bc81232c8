package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sticky-canvas/models"
)

func TestNextView(t *testing.T) {
	assert.Equal(t, models.StatusArchived, nextView(models.StatusActive, 1))
	assert.Equal(t, models.StatusTrashed, nextView(models.StatusArchived, 1))
	assert.Equal(t, models.StatusActive, nextView(models.StatusTrashed, 1))
	assert.Equal(t, models.StatusTrashed, nextView(models.StatusActive, -1))
	assert.Equal(t, models.StatusActive, nextView("bogus", 1))
}

func TestNextTag(t *testing.T) {
	tags := []models.Tag{{ID: "a", Name: "alpha"}, {ID: "b", Name: "beta"}}

	tests := []struct {
		name    string
		tags    []models.Tag
		current models.Tag
		want    string
	}{
		{name: "no tags", tags: nil, current: models.Tag{}, want: ""},
		{name: "start", tags: tags, current: models.Tag{}, want: "a"},
		{name: "advance", tags: tags, current: tags[0], want: "b"},
		{name: "wrap to no filter", tags: tags, current: tags[1], want: ""},
		{name: "vanished tag resets", tags: tags, current: models.Tag{ID: "gone"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextTag(tt.tags, tt.current).ID)
		})
	}
}

func TestListModel_SetItemsKeepsSelection(t *testing.T) {
	m := newListModel()
	m.setItems([]models.Note{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	m.idx = 1

	m.setItems([]models.Note{{ID: "x"}, {ID: "a"}, {ID: "b"}})
	cur, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, "b", cur.ID)
	assert.False(t, m.loading)
}

func TestListModel_SetItemsClampsCursor(t *testing.T) {
	m := newListModel()
	m.setItems([]models.Note{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	m.idx = 2

	m.setItems([]models.Note{{ID: "x"}})
	assert.Equal(t, 0, m.idx)

	m.setItems(nil)
	assert.Equal(t, 0, m.idx)
	_, ok := m.current()
	assert.False(t, ok)
}

func TestListModel_Filter(t *testing.T) {
	m := newListModel()
	m.view = models.StatusTrashed
	m.tag = models.Tag{ID: "t1", Name: "work"}
	m.search.SetValue("  milk ")

	f := m.filter()
	require.NotNil(t, f.Status)
	assert.Equal(t, models.StatusTrashed, *f.Status)
	assert.Equal(t, "t1", f.TagID)
	assert.Equal(t, "milk", f.Query)
	assert.True(t, m.hasFilter())
}

func TestListModel_ViewMarksPinnedAndSummarizing(t *testing.T) {
	m := newListModel()
	m.setItems([]models.Note{
		{ID: "a", Title: "Pinned one", IsPinned: true, Type: models.TextNote, Tags: []models.Tag{{ID: "t", Name: "work"}}},
		{ID: "b", Type: models.CanvasNote},
	})
	m.summarizing["a"] = true

	view := m.View()
	assert.Contains(t, view, "* [T]")
	assert.Contains(t, view, "#work")
	assert.Contains(t, view, "[C]")
	assert.Contains(t, view, "Canvas note")
	assert.Contains(t, view, "2 notes")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "привет", fitText("привет", 6), "counts runes, not bytes")
	assert.Equal(t, "unbounded", fitText("unbounded", 0))
}
