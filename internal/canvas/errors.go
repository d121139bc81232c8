package canvas

import "errors"

var (
	ErrInvalidSize        = errors.New("invalid canvas size")
	ErrInvalidStrokeWidth = errors.New("stroke width out of range")
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidDataURL     = errors.New("invalid image data url")
)
