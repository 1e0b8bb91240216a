package scene

import "github.com/sorenkal/fjord/engine/core"

// CamController2D: WASD pans the camera.
type CamController2D struct {
	MoveSpeed float64 // pixels per second
	Camera    *Camera2D
}

func NewCamController2D(cam *Camera2D) *CamController2D {
	return &CamController2D{
		MoveSpeed: 240,
		Camera:    cam,
	}
}

func (cc *CamController2D) Update(e *core.Engine, dt float64) {
	in := e.Input
	speed := cc.MoveSpeed * dt

	if in.IsKeyDown(core.KeyW) {
		cc.Camera.Move(0, -speed)
	}
	if in.IsKeyDown(core.KeyS) {
		cc.Camera.Move(0, speed)
	}
	if in.IsKeyDown(core.KeyA) {
		cc.Camera.Move(-speed, 0)
	}
	if in.IsKeyDown(core.KeyD) {
		cc.Camera.Move(speed, 0)
	}
}
