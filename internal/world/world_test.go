package world

import (
	"testing"

	"github.com/samdwyer/chupacabra/internal/gamedata"
)

func TestRemoveItemIdempotent(t *testing.T) {
	room := NewRoom("garage", &Item{Name: "rope", Use: "tie up el Chupacabras"}, nil)

	if !room.HasItem() {
		t.Fatal("Room should start with its item")
	}

	room.RemoveItem()
	if room.HasItem() {
		t.Error("Item should be gone after removal")
	}

	// Second removal is a no-op, not a failure.
	room.RemoveItem()
	if room.HasItem() {
		t.Error("Item should stay absent after repeated removal")
	}
}

func TestDescribe(t *testing.T) {
	bathroom := NewRoom("bathroom", &Item{Name: "shampoo bottle", Use: "blind el Chupacabras"}, nil)
	want := "There is a shampoo bottle. You can use it to blind el Chupacabras."
	if got := bathroom.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}

	bathroom.RemoveItem()
	want = "There are no items in this room."
	if got := bathroom.Describe(); got != want {
		t.Errorf("Describe() after removal = %q, want %q", got, want)
	}
}

func TestExitMissing(t *testing.T) {
	room := NewRoom("garage", nil, map[Direction]string{South: "kitchen"})

	if target, ok := room.Exit(South); !ok || target != "kitchen" {
		t.Errorf("Exit(south) = %q, %v; want kitchen, true", target, ok)
	}

	for _, dir := range []Direction{North, East, West} {
		if _, ok := room.Exit(dir); ok {
			t.Errorf("Exit(%s) should report no room in that direction", dir)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, dir := range Directions() {
		parsed, ok := ParseDirection(string(dir))
		if !ok || parsed != dir {
			t.Errorf("ParseDirection(%q) = %q, %v", dir, parsed, ok)
		}
	}

	for _, bad := range []string{"up", "down", "North", "", "n"} {
		if _, ok := ParseDirection(bad); ok {
			t.Errorf("ParseDirection(%q) should fail", bad)
		}
	}
}

func TestBuildRoomsOwnership(t *testing.T) {
	registry := gamedata.MustLoadRoomRegistry()

	first := BuildRooms(registry)
	second := BuildRooms(registry)

	if len(first) != registry.Count() {
		t.Fatalf("Expected %d rooms, got %d", registry.Count(), len(first))
	}
	if CountItems(first) != registry.ItemCount() {
		t.Errorf("Expected %d items, got %d", registry.ItemCount(), CountItems(first))
	}

	// Mutating one graph must not touch another session's graph.
	first["garage"].RemoveItem()
	if !second["garage"].HasItem() {
		t.Error("Item removal leaked between independently built graphs")
	}
}

func TestBuildRoomsReverseEdges(t *testing.T) {
	registry := gamedata.MustLoadRoomRegistry()
	rooms := BuildRooms(registry)

	// The declared reverse pairs in the fixed topology. Not every edge has
	// a reverse (storage room -> backyard is one-way back through west).
	reverse := map[Direction]Direction{
		North: South,
		South: North,
		East:  West,
		West:  East,
	}

	pairs := []struct {
		from string
		dir  Direction
	}{
		{"bedroom", North},
		{"bedroom", East},
		{"living room", North},
		{"living room", East},
		{"living room", West},
		{"kitchen", North},
	}

	for _, p := range pairs {
		target, ok := rooms[p.from].Exit(p.dir)
		if !ok {
			t.Fatalf("Room %q has no exit %s", p.from, p.dir)
		}
		back, ok := rooms[target].Exit(reverse[p.dir])
		if !ok || back != p.from {
			t.Errorf("Moving %s from %q to %q does not round-trip via %s (got %q, %v)",
				p.dir, p.from, target, reverse[p.dir], back, ok)
		}
	}
}
