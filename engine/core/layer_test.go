package core

import "testing"

type recordLayer struct {
	name string
	log  *[]string
}

func (l *recordLayer) OnAttach(e *Engine)                { *l.log = append(*l.log, l.name+" attach") }
func (l *recordLayer) OnDetach(e *Engine)                { *l.log = append(*l.log, l.name+" detach") }
func (l *recordLayer) OnUpdate(e *Engine, dt float64)    { *l.log = append(*l.log, l.name+" update") }
func (l *recordLayer) OnRender(e *Engine, alpha float64) {}
func (l *recordLayer) OnEvent(e *Engine, ev Event) bool {
	*l.log = append(*l.log, l.name+" event")
	return l.name == "top" // top layer consumes
}

func TestLayerStackLifecycle(t *testing.T) {
	var log []string
	var ls LayerStack
	ls.Push(&recordLayer{"bottom", &log})
	ls.Push(&recordLayer{"top", &log})
	if ls.Len() != 2 {
		t.Fatalf("Len = %d", ls.Len())
	}

	ls.Clear()
	want := []string{"bottom attach", "top attach", "top detach", "bottom detach"}
	if len(log) != len(want) {
		t.Fatalf("log = %v", log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestLayerStackEventOrder(t *testing.T) {
	var log []string
	var ls LayerStack
	ls.Push(&recordLayer{"bottom", &log})
	ls.Push(&recordLayer{"top", &log})
	log = log[:0]

	// Events walk top-down and stop at the first handler.
	ls.ForEachReverse(func(l Layer) bool { return l.OnEvent(nil, EventCloseRequested{}) })
	if len(log) != 1 || log[0] != "top event" {
		t.Fatalf("log = %v", log)
	}
}

func TestLayerStackUpdateOrder(t *testing.T) {
	var log []string
	var ls LayerStack
	ls.Push(&recordLayer{"bottom", &log})
	ls.Push(&recordLayer{"top", &log})
	log = log[:0]

	ls.ForEach(func(l Layer) { l.OnUpdate(nil, 0) })
	if len(log) != 2 || log[0] != "bottom update" || log[1] != "top update" {
		t.Fatalf("log = %v", log)
	}
}

func TestLayerStackPopEmpty(t *testing.T) {
	var ls LayerStack
	if _, ok := ls.Pop(); ok {
		t.Fatal("Pop on empty stack reported ok")
	}
}
