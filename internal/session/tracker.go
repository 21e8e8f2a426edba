package session

import (
	"context"
	"sync"
)

// Surface names an independent request stream on the page.
type Surface string

const (
	SurfacePrimary  Surface = "primary"
	SurfaceFollowup Surface = "followup"
	SurfaceSearch   Surface = "search"
)

type slot struct {
	owner   string
	surface Surface
}

type flight struct {
	gen    uint64
	cancel context.CancelFunc
}

// Tracker remembers the latest request per owner and surface. An owner is
// one loaded page, so two tabs of the same browser never cancel each other.
// Starting a new request cancels the one it supersedes, so only the newest
// response is ever applied.
type Tracker struct {
	mu      sync.Mutex
	gen     uint64
	flights map[slot]*flight
}

func NewTracker() *Tracker {
	return &Tracker{flights: make(map[slot]*flight)}
}

// Ticket identifies one request started with Begin.
type Ticket struct {
	t      *Tracker
	key    slot
	gen    uint64
	cancel context.CancelFunc
}

// Begin registers a new request for owner on surface and cancels the
// previous one. The returned context is cancelled when the request is
// superseded or when Done is called.
func (t *Tracker) Begin(parent context.Context, owner string, surface Surface) (context.Context, *Ticket) {
	ctx, cancel := context.WithCancel(parent)
	key := slot{owner: owner, surface: surface}

	t.mu.Lock()
	t.gen++
	gen := t.gen
	if prev, ok := t.flights[key]; ok {
		prev.cancel()
	}
	t.flights[key] = &flight{gen: gen, cancel: cancel}
	t.mu.Unlock()

	return ctx, &Ticket{t: t, key: key, gen: gen, cancel: cancel}
}

// Current reports whether no newer request has started on the same surface.
func (tk *Ticket) Current() bool {
	tk.t.mu.Lock()
	defer tk.t.mu.Unlock()
	f, ok := tk.t.flights[tk.key]
	return ok && f.gen == tk.gen
}

// Done releases the request.
func (tk *Ticket) Done() {
	tk.t.mu.Lock()
	if f, ok := tk.t.flights[tk.key]; ok && f.gen == tk.gen {
		delete(tk.t.flights, tk.key)
	}
	tk.t.mu.Unlock()
	tk.cancel()
}

// InFlight returns the number of requests currently tracked.
func (t *Tracker) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.flights)
}
