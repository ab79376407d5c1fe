package universe

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions  = errors.New("invalid universe dimensions")
	ErrInvalidProbability = errors.New("invalid walker probability")
	ErrUnknownTemplate    = errors.New("unknown template")
)

//DimensionError reports the rejected width and height
type DimensionError struct {
	Width  int
	Height int
}

func (e *DimensionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %d x %d", ErrInvalidDimensions, e.Width, e.Height)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidDimensions }
