// Package level implements the per-level population model: which creature
// kinds a level keeps in the tank, how many of each, and the score it takes
// to clear it.
package level

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/aquarium/components"
)

var (
	// ErrDuplicateKind is returned when two nodes target the same kind.
	ErrDuplicateKind = errors.New("level: duplicate kind")
	// ErrInvalidKind is returned for the player kind or an unknown kind.
	ErrInvalidKind = errors.New("level: invalid kind")
	// ErrNegative is returned for negative targets.
	ErrNegative = errors.New("level: negative target")
)

// PopulationNode tracks one creature kind's target and live count.
type PopulationNode struct {
	Kind              components.Kind
	Population        int
	CurrentPopulation int
}

// Shortfall is how many creatures the node is missing.
func (n PopulationNode) Shortfall() int {
	if d := n.Population - n.CurrentPopulation; d > 0 {
		return d
	}
	return 0
}

// Level is an ordered set of population nodes plus a score goal.
type Level struct {
	nodes       []PopulationNode
	targetScore int
	score       int
}

// New builds a level. Each NPC kind may appear at most once.
func New(targetScore int, nodes ...PopulationNode) (*Level, error) {
	if targetScore < 0 {
		return nil, fmt.Errorf("target score %d: %w", targetScore, ErrNegative)
	}

	seen := make(map[components.Kind]bool, len(nodes))
	l := &Level{targetScore: targetScore, nodes: make([]PopulationNode, 0, len(nodes))}
	for _, n := range nodes {
		if !n.Kind.IsNPC() {
			return nil, fmt.Errorf("node %s: %w", n.Kind, ErrInvalidKind)
		}
		if n.Population < 0 {
			return nil, fmt.Errorf("node %s population %d: %w", n.Kind, n.Population, ErrNegative)
		}
		if seen[n.Kind] {
			return nil, fmt.Errorf("node %s: %w", n.Kind, ErrDuplicateKind)
		}
		seen[n.Kind] = true
		n.CurrentPopulation = 0
		l.nodes = append(l.nodes, n)
	}
	return l, nil
}

// ConsumePopulation records that a creature of kind k was eaten, crediting
// power to the level score. Nothing happens if no live creature of that
// kind is accounted for.
func (l *Level) ConsumePopulation(k components.Kind, power int) {
	for i := range l.nodes {
		n := &l.nodes[i]
		if n.Kind != k {
			continue
		}
		if n.CurrentPopulation == 0 {
			return
		}
		n.CurrentPopulation--
		l.score += power
		return
	}
}

// Repopulate returns one kind per missing creature, in node order, and
// reserves those slots immediately. Calling it again before anything is
// consumed returns nothing.
func (l *Level) Repopulate() []components.Kind {
	var out []components.Kind
	for i := range l.nodes {
		n := &l.nodes[i]
		short := n.Shortfall()
		for j := 0; j < short; j++ {
			out = append(out, n.Kind)
		}
		n.CurrentPopulation += short
	}
	return out
}

// IsCompleted reports whether the accumulated score reached the target.
func (l *Level) IsCompleted() bool {
	return l.score >= l.targetScore
}

// PopulationReset zeroes every node's live count.
func (l *Level) PopulationReset() {
	for i := range l.nodes {
		l.nodes[i].CurrentPopulation = 0
	}
}

// Reset clears the score and live counts so the level can be replayed.
func (l *Level) Reset() {
	l.score = 0
	l.PopulationReset()
}

func (l *Level) Score() int       { return l.score }
func (l *Level) TargetScore() int { return l.targetScore }

// Nodes returns a copy of the population nodes.
func (l *Level) Nodes() []PopulationNode {
	out := make([]PopulationNode, len(l.nodes))
	copy(out, l.nodes)
	return out
}
