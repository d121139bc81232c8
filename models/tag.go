package models

// Tag is a label attached to a note. Identity is ID; names may repeat.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}
