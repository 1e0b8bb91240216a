package assets

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"sprite.png", true},
		{"dir/TILE.PNG", true},
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"icon.bmp", true},
		{"notes.txt", false},
		{"shader.glsl", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := isImageFile(tt.path); got != tt.want {
			t.Errorf("isImageFile(%q) = %t", tt.path, got)
		}
	}
}

func TestWatchReportsImageChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ignored := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(ignored, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "tile.png")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != target {
			t.Fatalf("event = %q, want %q", got, target)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestWatchMissingDir(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("want error for missing directory")
	}
}

func TestWatcherCloseDuringEvents(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	if err != nil {
		t.Fatal(err)
	}

	// Hammer the watcher with events while Close races against the
	// forwarding goroutine's sends.
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for i := 0; i < 200; i++ {
			name := filepath.Join(dir, "s"+strconv.Itoa(i)+".png")
			_ = os.WriteFile(name, []byte("x"), 0o644)
		}
	}()

	time.Sleep(10 * time.Millisecond)
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	<-writerDone

	// Close stops the forwarder, which closes Events on its way out;
	// draining must terminate.
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for range w.Events {
		}
	}()
	select {
	case <-drained:
	case <-time.After(5 * time.Second):
		t.Fatal("events channel never closed after Close")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w, err := Watch(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}
