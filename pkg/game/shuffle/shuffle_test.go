package shuffle

import (
	"slices"
	"testing"

	"solitaire/pkg/game/catalog"
)

func cards(ids ...catalog.ItemID) []catalog.Item {
	out := make([]catalog.Item, len(ids))
	for i, id := range ids {
		out[i] = catalog.Item{ID: id}
	}
	return out
}

func sortedIDs(items []catalog.Item) []catalog.ItemID {
	ids := make([]catalog.ItemID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	slices.Sort(ids)
	return ids
}

func TestShuffle_IsPermutation(t *testing.T) {
	s := NewSeeded(1, 2)
	in := cards(1, 2, 3, 4, 5, 6)
	for i := 0; i < 50; i++ {
		out := s.Shuffle(in)
		if got, want := sortedIDs(out), sortedIDs(in); !slices.Equal(got, want) {
			t.Fatalf("Shuffle() ids = %v, want permutation of %v", got, want)
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	s := NewSeeded(7, 7)
	in := cards(1, 2, 3, 4)
	before := append([]catalog.Item(nil), in...)
	out := s.Shuffle(in)
	if !slices.Equal(in, before) {
		t.Errorf("input changed to %v, want %v", in, before)
	}
	if len(out) > 0 && &out[0] == &in[0] {
		t.Error("Shuffle() returned the input backing array")
	}
}

func TestShuffle_SameSeedSameOrder(t *testing.T) {
	in := cards(1, 2, 3, 4, 5, 6, 7, 8)
	a := NewSeeded(42, 99).Shuffle(in)
	b := NewSeeded(42, 99).Shuffle(in)
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestShuffle_ReachesEveryPosition(t *testing.T) {
	// Every card should land in every position at least once over many deals.
	s := NewSeeded(3, 5)
	in := cards(1, 2, 3, 4)
	seen := make(map[[2]int]bool)
	for i := 0; i < 500; i++ {
		for pos, it := range s.Shuffle(in) {
			seen[[2]int{int(it.ID), pos}] = true
		}
	}
	if len(seen) != 16 {
		t.Errorf("saw %d card/position pairs, want 16", len(seen))
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	s := NewSeeded(0, 0)
	if out := s.Shuffle(nil); len(out) != 0 {
		t.Errorf("Shuffle(nil) = %v, want empty", out)
	}
	if out := s.Shuffle(cards(9)); len(out) != 1 || out[0].ID != 9 {
		t.Errorf("Shuffle([9]) = %v", out)
	}
}

func TestNewSeed(t *testing.T) {
	a1, a2, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed() error = %v", err)
	}
	b1, b2, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed() error = %v", err)
	}
	if a1 == b1 && a2 == b2 {
		t.Error("two NewSeed() calls returned the same seed")
	}
}
