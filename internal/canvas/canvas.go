// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package canvas

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"slices"
	"strings"

	"github.com/MKhiriev/sticky-canvas/models"
)

// Tool selects what a stroke does to the raster.
type Tool string

const (
	ToolPencil Tool = "pencil"
	ToolEraser Tool = "eraser"
)

const (
	DefaultWidth        = 500
	DefaultHeight       = 400
	DefaultHistoryLimit = 50
	DefaultStrokeWidth  = 3

	MinStrokeWidth = 1
	MaxStrokeWidth = 50

	// EraserScale multiplies the stroke width while erasing.
	EraserScale = 5

	// MaxSide bounds both raster dimensions.
	MaxSide = 4096
)

const dataURLPrefix = "data:image/png;base64,"

var transparent = color.RGBA{}

// Option configures a new [Canvas].
type Option func(*Canvas) error

// WithBackground fills the raster with the given #RRGGBB color instead of
// white.
func WithBackground(hex string) Option {
	return func(c *Canvas) error {
		bg, err := ParseHexColor(hex)
		if err != nil {
			return err
		}
		c.background = bg
		return nil
	}
}

// WithHistoryLimit bounds the number of kept snapshots. Values below 1 are
// raised to 1.
func WithHistoryLimit(n int) Option {
	return func(c *Canvas) error {
		c.historyLimit = max(n, 1)
		return nil
	}
}

// Canvas is a raster drawing surface. It is not safe for concurrent use.
type Canvas struct {
	img        *image.RGBA
	background color.RGBA

	tool        Tool
	strokeWidth int
	color       color.RGBA

	history      [][]byte
	historyLimit int

	drawing bool
	lastX   int
	lastY   int
}

// New creates a width x height canvas filled with the background color.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width < 1 || height < 1 || width > MaxSide || height > MaxSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	c := &Canvas{
		img:          image.NewRGBA(image.Rect(0, 0, width, height)),
		background:   color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		tool:         ToolPencil,
		strokeWidth:  DefaultStrokeWidth,
		color:        color.RGBA{A: 0xff},
		historyLimit: DefaultHistoryLimit,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.fill()
	c.resetHistory()
	return c, nil
}

// NewForNote creates a canvas whose background is the note color, falling
// back to white when the color does not parse. An existing drawing on the
// note is loaded.
func NewForNote(note models.Note, width, height, historyLimit int) (*Canvas, error) {
	opts := []Option{WithHistoryLimit(historyLimit)}
	if _, err := ParseHexColor(note.Color); err == nil {
		opts = append(opts, WithBackground(note.Color))
	}

	c, err := New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	if note.CanvasData != "" {
		if err = c.LoadImage(note.CanvasData); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Image returns the live raster. Callers must not modify it.
func (c *Canvas) Image() image.Image { return c.img }

// At returns the pixel at x, y.
func (c *Canvas) At(x, y int) color.RGBA { return c.img.RGBAAt(x, y) }

func (c *Canvas) Tool() Tool { return c.tool }

func (c *Canvas) SetTool(t Tool) {
	if t == ToolEraser {
		c.tool = ToolEraser
		return
	}
	c.tool = ToolPencil
}

func (c *Canvas) StrokeWidth() int { return c.strokeWidth }

// SetStrokeWidth accepts widths from MinStrokeWidth to MaxStrokeWidth.
func (c *Canvas) SetStrokeWidth(w int) error {
	if w < MinStrokeWidth || w > MaxStrokeWidth {
		return fmt.Errorf("%w: %d", ErrInvalidStrokeWidth, w)
	}
	c.strokeWidth = w
	return nil
}

// Color returns the pencil color as #RRGGBB.
func (c *Canvas) Color() string { return FormatHexColor(c.color) }

// SetColor sets the pencil color and selects the pencil, like picking a
// swatch in the editor does.
func (c *Canvas) SetColor(hex string) error {
	col, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	c.color = col
	c.tool = ToolPencil
	return nil
}

// Drawing reports whether a stroke has begun and not yet ended.
func (c *Canvas) Drawing() bool { return c.drawing }

// BeginStroke starts a stroke at x, y and stamps the first dot.
func (c *Canvas) BeginStroke(x, y int) {
	c.drawing = true
	c.lastX, c.lastY = x, y
	c.stamp(float64(x), float64(y))
}

// LineTo extends the current stroke to x, y. Without a current stroke it
// does nothing.
func (c *Canvas) LineTo(x, y int) {
	if !c.drawing {
		return
	}

	x0, y0 := float64(c.lastX), float64(c.lastY)
	dx, dy := float64(x)-x0, float64(y)-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.stamp(x0+dx*t, y0+dy*t)
	}

	c.lastX, c.lastY = x, y
}

// EndStroke finishes the current stroke and records a history snapshot.
func (c *Canvas) EndStroke() {
	if !c.drawing {
		return
	}
	c.drawing = false
	c.pushHistory()
}

// Clear refills the raster with the background and records a snapshot.
func (c *Canvas) Clear() {
	c.drawing = false
	c.fill()
	c.pushHistory()
}

// CanUndo reports whether a previous snapshot exists.
func (c *Canvas) CanUndo() bool { return len(c.history) > 1 }

// Undo restores the previous snapshot. It returns false when there is
// nothing to undo. An unfinished stroke is discarded.
func (c *Canvas) Undo() bool {
	if c.drawing {
		c.drawing = false
		copy(c.img.Pix, c.history[len(c.history)-1])
		return true
	}
	if !c.CanUndo() {
		return false
	}
	c.history = c.history[:len(c.history)-1]
	copy(c.img.Pix, c.history[len(c.history)-1])
	return true
}

// HistoryLen returns the number of kept snapshots, the current one
// included.
func (c *Canvas) HistoryLen() int { return len(c.history) }

// CaptureImage encodes the raster as a PNG data URL.
func (c *Canvas) CaptureImage() (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// LoadImage replaces the raster with a captured PNG data URL drawn over the
// background, and makes it the initial history entry. Pixels outside the
// decoded image keep the background.
func (c *Canvas) LoadImage(dataURL string) error {
	payload, ok := strings.CutPrefix(strings.TrimSpace(dataURL), dataURLPrefix)
	if !ok {
		return fmt.Errorf("%w: expected %s prefix", ErrInvalidDataURL, dataURLPrefix)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}

	src, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}

	c.drawing = false
	c.fill()
	draw.Draw(c.img, c.img.Bounds(), src, src.Bounds().Min, draw.Over)
	c.resetHistory()
	return nil
}

func (c *Canvas) fill() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
}

func (c *Canvas) resetHistory() {
	c.history = [][]byte{slices.Clone(c.img.Pix)}
}

func (c *Canvas) pushHistory() {
	c.history = append(c.history, slices.Clone(c.img.Pix))
	if over := len(c.history) - c.historyLimit; over > 0 {
		c.history = slices.Delete(c.history, 0, over)
	}
}

// stamp paints a filled disc centred on x, y with the current tool.
func (c *Canvas) stamp(cx, cy float64) {
	width := c.strokeWidth
	paint := c.color
	if c.tool == ToolEraser {
		width *= EraserScale
		paint = transparent
	}

	r := float64(width) / 2
	if r < 0.5 {
		r = 0.5
	}
	b := c.img.Bounds()
	minX := max(int(math.Floor(cx-r)), b.Min.X)
	maxX := min(int(math.Ceil(cx+r)), b.Max.X-1)
	minY := max(int(math.Floor(cy-r)), b.Min.Y)
	maxY := min(int(math.Ceil(cy+r)), b.Max.Y-1)

	r2 := r * r
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r2 {
				c.img.SetRGBA(x, y, paint)
			}
		}
	}
}
