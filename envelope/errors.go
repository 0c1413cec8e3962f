package envelope

import "errors"

var (
	ErrShapeNotFound    = errors.New("shape not found")
	ErrMissingParameter = errors.New("missing parameter")
)
