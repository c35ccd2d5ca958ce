package level

import (
	"errors"
	"testing"

	"github.com/pthm-cable/aquarium/components"
)

func mustLevel(t *testing.T, target int, nodes ...PopulationNode) *Level {
	t.Helper()
	l, err := New(target, nodes...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		target  int
		nodes   []PopulationNode
		wantErr error
	}{
		{
			name:   "valid",
			target: 10,
			nodes: []PopulationNode{
				{Kind: components.KindBaseFish, Population: 3},
				{Kind: components.KindClownFish, Population: 1},
			},
		},
		{
			name:    "duplicate kind",
			target:  10,
			nodes:   []PopulationNode{{Kind: components.KindBaseFish, Population: 1}, {Kind: components.KindBaseFish, Population: 2}},
			wantErr: ErrDuplicateKind,
		},
		{
			name:    "player kind",
			target:  10,
			nodes:   []PopulationNode{{Kind: components.KindPlayer, Population: 1}},
			wantErr: ErrInvalidKind,
		},
		{
			name:    "unknown kind",
			target:  10,
			nodes:   []PopulationNode{{Kind: components.Kind(200), Population: 1}},
			wantErr: ErrInvalidKind,
		},
		{
			name:    "negative population",
			target:  10,
			nodes:   []PopulationNode{{Kind: components.KindBaseFish, Population: -1}},
			wantErr: ErrNegative,
		},
		{
			name:    "negative target",
			target:  -5,
			wantErr: ErrNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.target, tt.nodes...)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRepopulateReservesSlots(t *testing.T) {
	l := mustLevel(t, 10,
		PopulationNode{Kind: components.KindBaseFish, Population: 3},
		PopulationNode{Kind: components.KindBiggerFish, Population: 1},
	)

	got := l.Repopulate()
	want := []components.Kind{
		components.KindBaseFish, components.KindBaseFish, components.KindBaseFish,
		components.KindBiggerFish,
	}
	if len(got) != len(want) {
		t.Fatalf("Repopulate() returned %d kinds, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Repopulate()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if again := l.Repopulate(); len(again) != 0 {
		t.Errorf("second Repopulate() = %v, want empty", again)
	}
}

func TestConsumePopulation(t *testing.T) {
	l := mustLevel(t, 3, PopulationNode{Kind: components.KindBaseFish, Population: 2})

	// Nothing live yet: no credit.
	l.ConsumePopulation(components.KindBaseFish, 1)
	if l.Score() != 0 {
		t.Fatalf("score = %d after consuming empty node, want 0", l.Score())
	}

	l.Repopulate()
	l.ConsumePopulation(components.KindBaseFish, 1)
	if l.Score() != 1 {
		t.Errorf("score = %d, want 1", l.Score())
	}
	if n := l.Nodes()[0]; n.CurrentPopulation != 1 {
		t.Errorf("current population = %d, want 1", n.CurrentPopulation)
	}

	// Unknown kind for this level is ignored.
	l.ConsumePopulation(components.KindClownFish, 5)
	if l.Score() != 1 {
		t.Errorf("score = %d after foreign kind, want 1", l.Score())
	}

	// Refill exactly the consumed slot.
	if refill := l.Repopulate(); len(refill) != 1 || refill[0] != components.KindBaseFish {
		t.Errorf("Repopulate() = %v, want [BaseFish]", refill)
	}
}

func TestCompletionAndReset(t *testing.T) {
	l := mustLevel(t, 2, PopulationNode{Kind: components.KindBiggerFish, Population: 1})
	l.Repopulate()

	if l.IsCompleted() {
		t.Fatal("level completed before any score")
	}
	l.ConsumePopulation(components.KindBiggerFish, 5)
	if !l.IsCompleted() {
		t.Fatal("level not completed with score 5 >= 2")
	}

	l.Reset()
	if l.Score() != 0 || l.IsCompleted() {
		t.Errorf("after Reset: score = %d, completed = %v", l.Score(), l.IsCompleted())
	}
	for _, n := range l.Nodes() {
		if n.CurrentPopulation != 0 {
			t.Errorf("%s current population = %d after Reset", n.Kind, n.CurrentPopulation)
		}
	}
	if got := l.Repopulate(); len(got) != 1 {
		t.Errorf("Repopulate() after Reset returned %d, want 1", len(got))
	}
}

func TestZeroTargetCompletesImmediately(t *testing.T) {
	l := mustLevel(t, 0)
	if !l.IsCompleted() {
		t.Error("zero-target level should be completed")
	}
}

func TestNodesIsCopy(t *testing.T) {
	l := mustLevel(t, 1, PopulationNode{Kind: components.KindBaseFish, Population: 2})
	nodes := l.Nodes()
	nodes[0].Population = 99
	if l.Nodes()[0].Population != 2 {
		t.Error("mutating Nodes() result changed the level")
	}
}
