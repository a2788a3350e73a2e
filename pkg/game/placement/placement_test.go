package placement

import (
	"math/rand/v2"
	"testing"

	"solitaire/pkg/game/catalog"
)

func TestPlace_EmptySlot(t *testing.T) {
	s := NewStore(4)
	if !s.Place(3, 0) {
		t.Fatal("Place(3, 0) = false, want true")
	}
	snap := s.Snapshot()
	if id, ok := snap.At(0); !ok || id != 3 {
		t.Errorf("At(0) = %d, %v; want 3, true", id, ok)
	}
	if slot, ok := snap.SlotOf(3); !ok || slot != 0 {
		t.Errorf("SlotOf(3) = %d, %v; want 0, true", slot, ok)
	}
}

func TestPlace_OccupiedSlotIsNoOp(t *testing.T) {
	s := NewStore(4)
	s.Place(1, 0)
	if s.Place(2, 0) {
		t.Error("Place(2, 0) on occupied slot = true, want false")
	}
	if id, _ := s.Snapshot().At(0); id != 1 {
		t.Errorf("slot 0 holds %d, want 1", id)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestPlace_AlreadyPlacedItemIsNoOp(t *testing.T) {
	s := NewStore(4)
	s.Place(1, 0)
	if s.Place(1, 2) {
		t.Error("Place(1, 2) for placed item = true, want false")
	}
	snap := s.Snapshot()
	if snap.Filled(2) {
		t.Error("slot 2 filled after rejected drop")
	}
	if slot, _ := snap.SlotOf(1); slot != 0 {
		t.Errorf("SlotOf(1) = %d, want 0", slot)
	}
}

func TestPlace_OutOfRangeSlot(t *testing.T) {
	s := NewStore(2)
	for _, slot := range []int{-1, 2, 100} {
		if s.Place(1, slot) {
			t.Errorf("Place(1, %d) = true, want false", slot)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestRemove(t *testing.T) {
	s := NewStore(3)
	s.Place(1, 0)
	s.Place(2, 1)
	if !s.Remove(1) {
		t.Fatal("Remove(1) = false, want true")
	}
	snap := s.Snapshot()
	if snap.Filled(0) {
		t.Error("slot 0 still filled after Remove(1)")
	}
	if _, ok := snap.SlotOf(1); ok {
		t.Error("item 1 still placed after Remove(1)")
	}
	// The freed slot and item can be reused.
	if !s.Place(3, 0) {
		t.Error("Place(3, 0) into freed slot = false, want true")
	}
	if !s.Place(1, 2) {
		t.Error("Place(1, 2) for removed item = false, want true")
	}
}

func TestRemove_AbsentIsIdempotent(t *testing.T) {
	s := NewStore(3)
	s.Place(1, 0)
	before := s.Snapshot().Placements()
	if s.Remove(7) {
		t.Error("Remove(7) = true, want false")
	}
	after := s.Snapshot().Placements()
	if len(before) != len(after) || before[0] != after[0] {
		t.Errorf("placements changed from %v to %v", before, after)
	}
}

func TestClear(t *testing.T) {
	s := NewStore(3)
	s.Place(1, 0)
	s.Place(2, 1)
	s.Clear()
	if s.Len() != 0 || s.Snapshot().Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", s.Len())
	}
	if !s.Place(1, 1) {
		t.Error("Place after Clear rejected")
	}
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	s := NewStore(3)
	s.Place(1, 0)
	snap := s.Snapshot()
	s.Place(2, 1)
	s.Remove(1)
	if snap.Len() != 1 || !snap.Filled(0) || snap.Filled(1) {
		t.Errorf("snapshot changed after store mutation: %v", snap.Placements())
	}
}

func TestPlacements_SortedBySlot(t *testing.T) {
	s := NewStore(4)
	s.Place(10, 3)
	s.Place(11, 0)
	s.Place(12, 2)
	got := s.Snapshot().Placements()
	want := []Placement{{Item: 11, Slot: 0}, {Item: 12, Slot: 2}, {Item: 10, Slot: 3}}
	if len(got) != len(want) {
		t.Fatalf("Placements() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Placements()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewSet_DropsConflicts(t *testing.T) {
	set := NewSet(3,
		Placement{Item: 1, Slot: 0},
		Placement{Item: 2, Slot: 0}, // slot taken
		Placement{Item: 1, Slot: 2}, // item placed
		Placement{Item: 3, Slot: 5}, // out of range
		Placement{Item: 4, Slot: 1},
	)
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (%v)", set.Len(), set.Placements())
	}
}

// TestInvariants_RandomOperations fuzzes place/remove/clear sequences and
// checks that no slot or card is ever shared and the size bound holds.
func TestInvariants_RandomOperations(t *testing.T) {
	const n = 5
	rng := rand.New(rand.NewPCG(11, 13))
	s := NewStore(n)

	for step := 0; step < 5000; step++ {
		item := catalog.ItemID(rng.IntN(n + 2))
		switch op := rng.IntN(10); {
		case op < 6:
			s.Place(item, rng.IntN(n+2)-1)
		case op < 9:
			s.Remove(item)
		default:
			s.Clear()
		}

		snap := s.Snapshot()
		if snap.Len() > n {
			t.Fatalf("step %d: %d placements exceed %d slots", step, snap.Len(), n)
		}
		slots := make(map[int]bool)
		items := make(map[catalog.ItemID]bool)
		for _, p := range snap.Placements() {
			if slots[p.Slot] {
				t.Fatalf("step %d: slot %d shared", step, p.Slot)
			}
			if items[p.Item] {
				t.Fatalf("step %d: item %d placed twice", step, p.Item)
			}
			if p.Slot < 0 || p.Slot >= n {
				t.Fatalf("step %d: slot %d out of range", step, p.Slot)
			}
			slots[p.Slot] = true
			items[p.Item] = true
		}
	}
}
