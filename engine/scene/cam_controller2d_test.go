package scene

import (
	"testing"

	"github.com/sorenkal/fjord/engine/core"
)

func TestCamControllerPansWithKeys(t *testing.T) {
	eng := &core.Engine{Input: core.NewInput()}
	cam := NewCamera2D()
	cc := NewCamController2D(cam)
	cc.MoveSpeed = 100

	eng.Input.Handle(core.EventKey{Key: core.KeyD, Down: true})
	cc.Update(eng, 0.5)
	if cam.X != 50 || cam.Y != 0 {
		t.Fatalf("position = (%v, %v)", cam.X, cam.Y)
	}

	eng.Input.Handle(core.EventKey{Key: core.KeyD, Down: false})
	eng.Input.Handle(core.EventKey{Key: core.KeyW, Down: true})
	cc.Update(eng, 0.5)
	if cam.X != 50 || cam.Y != -50 {
		t.Fatalf("position = (%v, %v)", cam.X, cam.Y)
	}
}

func TestCamControllerIdleWithoutKeys(t *testing.T) {
	eng := &core.Engine{Input: core.NewInput()}
	cam := NewCamera2D()
	cc := NewCamController2D(cam)
	cc.Update(eng, 1)
	if cam.X != 0 || cam.Y != 0 {
		t.Fatalf("camera moved with no input: (%v, %v)", cam.X, cam.Y)
	}
}
