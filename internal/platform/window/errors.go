package window

import "fmt"

// Stage names an initialization step of the window renderer.
type Stage string

const (
	StageWindow  Stage = "window"
	StageSurface Stage = "surface"
	StageImage   Stage = "image"
	StageTexture Stage = "texture"
)

// InitError reports a failed initialization stage. Every InitError is fatal.
type InitError struct {
	Stage Stage
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

func initErr(stage Stage, err error) *InitError {
	return &InitError{Stage: stage, Err: err}
}
