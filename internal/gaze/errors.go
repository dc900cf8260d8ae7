package gaze

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	ErrMissingOrigin    = errors.New("gaze: ray origin source is required")
	ErrMissingWorld     = errors.New("gaze: world hit-tester is required")
	ErrMissingSurface   = errors.New("gaze: surface hit-tester is required")
	ErrMissingProjector = errors.New("gaze: screen projector is required")
	ErrMissingInput     = errors.New("gaze: input source is required")
	ErrAlreadyStarted   = errors.New("gaze: resolver already started")
	ErrInvalidRayLength = errors.New("gaze: ray length must be positive")
)

// missing reports whether a collaborator is absent, including a nil pointer
// stored in the interface.
func missing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
