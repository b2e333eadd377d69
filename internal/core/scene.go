package core

import "image/color"

// Size describes the dimensions of a scene grid.
type Size struct {
	W int
	H int
}

// Scene defines the minimal contract an animated grid scene must
// implement. Cells returns the current frame in row-major order;
// Palette maps cell values to display colors.
type Scene interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
	Palette() []color.RGBA
}

// Factory constructs a Scene using an optional configuration map.
type Factory func(cfg map[string]string) Scene

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}
