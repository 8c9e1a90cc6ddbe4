package renderer

import "errors"

var (
	ErrInvalidSize    = errors.New("renderer: image width and height must be positive")
	ErrInvalidSamples = errors.New("renderer: samples per pixel must be positive")
	ErrNoCamera       = errors.New("renderer: no camera defined")
	ErrNoWorld        = errors.New("renderer: no world defined")
)
