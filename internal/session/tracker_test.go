package session

import (
	"context"
	"sync"
	"testing"
)

func TestTrackerSupersedes(t *testing.T) {
	tr := NewTracker()

	ctx1, first := tr.Begin(context.Background(), "c1", SurfacePrimary)
	if !first.Current() {
		t.Fatal("first ticket should be current")
	}

	ctx2, second := tr.Begin(context.Background(), "c1", SurfacePrimary)
	if first.Current() {
		t.Error("first ticket should be superseded")
	}
	if ctx1.Err() == nil {
		t.Error("superseded request context should be cancelled")
	}
	if !second.Current() {
		t.Error("second ticket should be current")
	}
	if ctx2.Err() != nil {
		t.Error("current request context should be live")
	}

	first.Done()
	if !second.Current() {
		t.Error("finishing a stale ticket must not release the current one")
	}
	second.Done()
	if ctx2.Err() == nil {
		t.Error("Done should cancel the request context")
	}
	if tr.InFlight() != 0 {
		t.Errorf("InFlight = %d, want 0", tr.InFlight())
	}
}

func TestTrackerSurfacesAreIndependent(t *testing.T) {
	tr := NewTracker()

	_, primary := tr.Begin(context.Background(), "c1", SurfacePrimary)
	_, search := tr.Begin(context.Background(), "c1", SurfaceSearch)
	_, followup := tr.Begin(context.Background(), "c1", SurfaceFollowup)
	_, other := tr.Begin(context.Background(), "c2", SurfacePrimary)

	for name, tk := range map[string]*Ticket{"primary": primary, "search": search, "followup": followup, "other client": other} {
		if !tk.Current() {
			t.Errorf("%s ticket should still be current", name)
		}
	}
	if tr.InFlight() != 4 {
		t.Errorf("InFlight = %d, want 4", tr.InFlight())
	}
}

func TestTrackerParentCancellation(t *testing.T) {
	tr := NewTracker()
	parent, cancel := context.WithCancel(context.Background())
	ctx, tk := tr.Begin(parent, "c1", SurfaceSearch)
	defer tk.Done()

	cancel()
	if ctx.Err() == nil {
		t.Error("request context should follow its parent")
	}
	if !tk.Current() {
		t.Error("parent cancellation does not supersede the ticket")
	}
}

func TestTrackerConcurrentBegin(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	tickets := make([]*Ticket, 50)
	for i := range tickets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, tickets[i] = tr.Begin(context.Background(), "c1", SurfacePrimary)
		}(i)
	}
	wg.Wait()

	current := 0
	for _, tk := range tickets {
		if tk.Current() {
			current++
		}
	}
	if current != 1 {
		t.Errorf("current tickets = %d, want exactly 1", current)
	}
}
