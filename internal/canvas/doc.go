// Package canvas implements the drawing surface behind canvas notes.
//
// A [Canvas] is an RGBA raster filled with a background color. Strokes are
// drawn with round caps by the pencil, or cleared to transparent pixels by
// the eraser, which is five times wider than the pencil. Every completed
// stroke and every Clear pushes a full raster snapshot onto a bounded
// history; Undo returns to the previous snapshot. The initial state cannot
// be undone.
//
// CaptureImage encodes the raster as a PNG data URL, the form stored in a
// note's canvasData; LoadImage reverses it.
package canvas
