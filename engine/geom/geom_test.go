package geom

import "testing"

func TestAreaOf(t *testing.T) {
	tests := []struct {
		x, y, w, h int32
		want       Area
	}{
		{0, 0, 10, 20, Area{0, 0, 10, 20}},
		{5, 7, 3, 4, Area{5, 7, 8, 11}},
		{-10, -10, 10, 10, Area{-10, -10, 0, 0}},
		{1, 2, 0, 0, Area{1, 2, 1, 2}},
	}
	for _, tt := range tests {
		if got := AreaOf(tt.x, tt.y, tt.w, tt.h); got != tt.want {
			t.Errorf("AreaOf(%d, %d, %d, %d) = %v, want %v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestSizeIsZero(t *testing.T) {
	if !(Size{}).IsZero() {
		t.Fatal("zero size not reported as zero")
	}
	if (Size{W: 1}).IsZero() || (Size{H: 1}).IsZero() {
		t.Fatal("non-zero size reported as zero")
	}
}

func TestSDLConversions(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}.SDL()
	if r.X != 1 || r.Y != 2 || r.W != 3 || r.H != 4 {
		t.Fatalf("Rect.SDL = %+v", r)
	}
	p := Point{X: 5, Y: 6}.SDL()
	if p.X != 5 || p.Y != 6 {
		t.Fatalf("Point.SDL = %+v", p)
	}
}
