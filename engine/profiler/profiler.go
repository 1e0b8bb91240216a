//go:build profile

// Package profiler records scope open/close events into a fixed ring and
// dumps them as a speedscope capture. Enabled with the "profile" tag;
// otherwise every call is a no-op.
package profiler

import (
	"sync"
	"sync/atomic"
	"time"
)

// Init must be called once (e.g. on app start) with a capacity (#events).
// Example: profiler.Init(1 << 20)
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start begins a scope and returns an end func to be deferred.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	open := time.Now().UnixNano()
	ring.push(event{AtNS: open, Scope: id, Open: true})
	return func() {
		end := time.Now().UnixNano()
		// Keep end >= start even if the clock ties at this granularity.
		if end < open {
			end = open
		}
		ring.push(event{AtNS: end, Scope: id, Open: false})
	}
}

// ---------- event ring ----------

type event struct {
	AtNS  int64
	Scope int
	Open  bool
}

type eventRing struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []event
}

func (r *eventRing) init(capacity int) {
	r.cap = uint64(capacity)
	r.evs = make([]event, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot preserves write order so the dump never has to sort.
func (r *eventRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

var ring eventRing

// ---------- scope-name interner ----------

var (
	muScopes sync.Mutex
	scopes   []string
	scopeIdx = map[string]int{}
)

func intern(name string) int {
	muScopes.Lock()
	defer muScopes.Unlock()
	if id, ok := scopeIdx[name]; ok {
		return id
	}
	id := len(scopes)
	scopeIdx[name] = id
	scopes = append(scopes, name)
	return id
}
