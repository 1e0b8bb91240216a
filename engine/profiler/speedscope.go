//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"syscall"
)

// OpenProfilerGraph writes the captured events into a temporary
// speedscope file and launches the viewer on it.
func OpenProfilerGraph() (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", fmt.Errorf("profiler: no events to dump")
	}

	profilePath := filepath.Join(os.TempDir(), "fjord.profile.speedscope.json")
	if err := dumpSpeedscope(evs, profilePath); err != nil {
		return "", err
	}

	cmd := exec.Command("speedscope", profilePath)
	if runtime.GOOS == "windows" {
		if spa, ok := hideWindowAttr().(*syscall.SysProcAttr); ok {
			cmd.SysProcAttr = spa
		}
	}
	if err := cmd.Start(); err != nil {
		fmt.Printf("Error launching speedscope: %v\n", err)
	}
	return profilePath, nil
}

type ssFile struct {
	Schema             string      `json:"$schema"`
	Shared             ssShared    `json:"shared"`
	Profiles           []ssProfile `json:"profiles"`
	ActiveProfileIndex int         `json:"activeProfileIndex,omitempty"`
	Exporter           string      `json:"exporter,omitempty"`
	Name               string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"` // "evented"
	Name       string    `json:"name"`
	Unit       string    `json:"unit"` // "microseconds"
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since first event
	Frame int    `json:"frame"`
}

func dumpSpeedscope(evs []event, path string) error {
	muScopes.Lock()
	fs := make([]ssFrame, len(scopes))
	for i, name := range scopes {
		fs[i] = ssFrame{Name: name}
	}
	muScopes.Unlock()

	base := evs[0].AtNS
	endUS := int64(0)

	// Stream in write order, filtering unbalanced closes with a small
	// stack so speedscope always sees matched events.
	out := make([]ssEvent, 0, len(evs)+16)
	stack := make([]int, 0, 64)
	lastUS := int64(-1)

	for _, e := range evs {
		atUS := (e.AtNS - base) / 1000
		if atUS < lastUS {
			atUS = lastUS // keep µs monotonic
		}
		if e.Open {
			out = append(out, ssEvent{Type: "O", At: atUS, Frame: e.Scope})
			stack = append(stack, e.Scope)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.Scope {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: atUS, Frame: e.Scope})
		}
		lastUS = atUS
		if atUS > endUS {
			endUS = atUS
		}
	}

	// Close anything still open (LIFO) at the final timestamp so the
	// capture stays balanced when it ends mid-frame.
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: stack[i]})
	}

	if len(out) == 0 {
		return fmt.Errorf("no usable events after filtering")
	}

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:       "evented",
			Name:       "fjord (evented)",
			Unit:       "microseconds",
			StartValue: 0,
			EndValue:   endUS,
			Events:     out,
		}},
		ActiveProfileIndex: 0,
		Exporter:           "fjord-profiler",
		Name:               "fjord capture",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
