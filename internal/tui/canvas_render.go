package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/MKhiriev/sticky-canvas/internal/canvas"
	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/models"
	"github.com/charmbracelet/lipgloss"
)

// The editor grid. Every cell shows two vertically stacked samples with an
// upper half block, so a 50x20 grid samples the raster at 50x40.
const (
	gridCols = 50
	gridRows = 20

	halfBlock = "▀"
)

var cursorStyle = lipgloss.NewStyle().Reverse(true).Bold(true)

// cellToPixel returns the raster point at the centre of grid cell cx, cy.
func cellToPixel(bounds image.Rectangle, cx, cy int) image.Point {
	w, h := bounds.Dx(), bounds.Dy()
	return image.Point{
		X: bounds.Min.X + (2*cx+1)*w/(2*gridCols),
		Y: bounds.Min.Y + (2*cy+1)*h/(2*gridRows),
	}
}

// samplePoint returns the raster point for sample sx, sy of the doubled
// vertical resolution.
func samplePoint(bounds image.Rectangle, sx, sy int) image.Point {
	w, h := bounds.Dx(), bounds.Dy()
	return image.Point{
		X: bounds.Min.X + (2*sx+1)*w/(2*gridCols),
		Y: bounds.Min.Y + (2*sy+1)*h/(4*gridRows),
	}
}

// renderRaster draws img on the terminal grid. Transparent samples keep the
// terminal background. cursor is highlighted unless it is nil.
func renderRaster(img image.Image, cursor *image.Point) string {
	bounds := img.Bounds()
	var b strings.Builder

	for cy := range gridRows {
		for cx := range gridCols {
			if cursor != nil && cursor.X == cx && cursor.Y == cy {
				b.WriteString(cursorStyle.Render("+"))
				continue
			}

			top := rgbaAt(img, samplePoint(bounds, cx, 2*cy))
			bottom := rgbaAt(img, samplePoint(bounds, cx, 2*cy+1))

			style := lipgloss.NewStyle()
			if top.A > 0 {
				style = style.Foreground(lipgloss.Color(canvas.FormatHexColor(top)))
			}
			if bottom.A > 0 {
				style = style.Background(lipgloss.Color(canvas.FormatHexColor(bottom)))
			}
			if top.A == 0 && bottom.A == 0 {
				b.WriteString(" ")
				continue
			}
			b.WriteString(style.Render(halfBlock))
		}
		if cy < gridRows-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func rgbaAt(img image.Image, p image.Point) color.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba.RGBAAt(p.X, p.Y)
	}
	return color.RGBAModel.Convert(img.At(p.X, p.Y)).(color.RGBA)
}

// renderCanvasPreview decodes the note drawing and renders it without a
// cursor.
func renderCanvasPreview(note models.Note, cfg config.ClientCanvas) (string, error) {
	surface, err := canvas.NewForNote(note, cfg.Width, cfg.Height, 1)
	if err != nil {
		return "", err
	}
	return renderRaster(surface.Image(), nil), nil
}
