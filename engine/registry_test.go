package engine

import (
	"fmt"
	"sync"
	"testing"

	"golang.org/x/exp/rand"
)

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry()

	g1 := r.GetOrCreate("room-a")
	g2 := r.GetOrCreate("room-a")
	if g1 != g2 {
		t.Fatalf("same room id must map to the same game")
	}
	if r.Get("room-b") != nil {
		t.Fatalf("unknown room should be nil")
	}

	r.Delete("room-a")
	if r.Get("room-a") != nil {
		t.Fatalf("deleted room should be gone")
	}
}

func TestRegistryAllSorted(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"c", "a", "b"} {
		r.GetOrCreate(id)
	}
	games := r.All()
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	for i, want := range []string{"a", "b", "c"} {
		if games[i].RoomID != want {
			t.Fatalf("expected sorted order, got %q at %d", games[i].RoomID, i)
		}
	}
}

func TestRegistryWithRNG(t *testing.T) {
	newSeeded := func() *rand.Rand { return rand.New(rand.NewSource(7)) }

	r1 := NewRegistry(WithRNG(newSeeded))
	r2 := NewRegistry(WithRNG(newSeeded))
	g1 := r1.GetOrCreate("room")
	g2 := r2.GetOrCreate("room")

	for i, g := range []*Game{g1, g2} {
		for pos := 0; pos < 4; pos++ {
			name := fmt.Sprintf("P%d", pos)
			if err := g.Join(name, name); err != nil {
				t.Fatalf("join failed: %v", err)
			}
		}
		if err := g.Start(); err != nil {
			t.Fatalf("start %d failed: %v", i, err)
		}
	}
	for i := range g1.Deck {
		if g1.Deck[i] != g2.Deck[i] {
			t.Fatalf("same seed must shuffle identically, diverged at card %d", i)
		}
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("room-%d", n%4)
			g := r.GetOrCreate(id)
			if g.RoomID != id {
				t.Errorf("room id mismatch: %s vs %s", g.RoomID, id)
			}
			r.All()
		}(i)
	}
	wg.Wait()

	if got := len(r.All()); got != 4 {
		t.Fatalf("expected 4 rooms, got %d", got)
	}
}
