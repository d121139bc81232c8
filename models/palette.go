// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultNoteColor is the background of a freshly created note.
const DefaultNoteColor = "#FFFFFF"

// Palette lists the note background colors offered by the UI. The store
// accepts any non-empty color string; the palette only drives the pickers.
var Palette = []string{
	"#FFFFFF", // white
	"#FFFACD", // lemon chiffon
	"#ADD8E6", // light blue
	"#90EE90", // light green
	"#FFB6C1", // light pink
	"#FFDAB9", // peach puff
	"#E6E6FA", // lavender
	"#D3D3D3", // light gray
}

// NextPaletteColor returns the palette entry that follows current, wrapping
// around. Unknown colors restart the cycle at the first entry.
func NextPaletteColor(current string) string {
	for i, c := range Palette {
		if c == current {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}
