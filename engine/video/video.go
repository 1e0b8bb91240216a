// Package video owns the SDL video subsystem and the window wrapper.
package video

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sorenkal/fjord/engine/core"
)

// Init brings up the SDL video subsystem. Safe to call more than once.
func Init() error {
	if sdl.WasInit(sdl.INIT_VIDEO) != 0 {
		return nil
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return core.Backend("video.Init", err)
	}
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "linear")
	core.Logger().Info("video init")
	return nil
}

// Quit tears down SDL. Call once on application exit.
func Quit() { sdl.Quit() }
