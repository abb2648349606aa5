package fireworks

import (
	"errors"
	"fmt"
)

var (
	// ErrSceneLoad classifies every failure to fetch, parse or build a scene.
	ErrSceneLoad = errors.New("scene load failed")

	// ErrUnknownElementType is returned for a descriptor whose type tag is
	// not a known fire element.
	ErrUnknownElementType = errors.New("unknown fire element type")

	// ErrMissingVelocity is returned for a rocket descriptor without a
	// Velocity.
	ErrMissingVelocity = errors.New("rocket has no velocity")
)

// SceneLoadError reports why a scene could not be loaded.
// It matches ErrSceneLoad with errors.Is and unwraps to the cause.
type SceneLoadError struct {
	Source string
	Err    error
}

func (e *SceneLoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%v: %v", ErrSceneLoad, e.Err)
	}
	return fmt.Sprintf("%v from %s: %v", ErrSceneLoad, e.Source, e.Err)
}

func (e *SceneLoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSceneLoad.
func (e *SceneLoadError) Is(target error) bool {
	return target == ErrSceneLoad
}
