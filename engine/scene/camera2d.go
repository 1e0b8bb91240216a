package scene

// Camera2D is a pixel-space camera. The render offset it yields is the
// negated camera position, so moving the camera right scrolls the world
// left.
type Camera2D struct {
	X, Y float64
}

func NewCamera2D() *Camera2D { return &Camera2D{} }

func (c *Camera2D) Move(dx, dy float64) { c.X += dx; c.Y += dy }

func (c *Camera2D) SetPosition(x, y float64) { c.X, c.Y = x, y }

// Offset returns the relative offset to pass to the sprite renderers.
func (c *Camera2D) Offset() (int32, int32) {
	return int32(-c.X), int32(-c.Y)
}

// CenterOn places the camera so that (x, y) sits mid-viewport.
func (c *Camera2D) CenterOn(x, y int32, viewW, viewH int32) {
	c.X = float64(x) - float64(viewW)/2
	c.Y = float64(y) - float64(viewH)/2
}
