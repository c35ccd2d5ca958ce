// Package aquarium owns the tank: the live NPC creatures, their per-frame
// movement and mutual bounces, and the level sequence that decides what to
// spawn next.
package aquarium

import (
	"errors"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/level"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
)

// ErrNoLevels is returned by New when no level was supplied.
var ErrNoLevels = errors.New("aquarium: at least one level is required")

// CreatureSpec holds the per-kind constants of an NPC.
type CreatureSpec struct {
	Radius float64
	Value  int
}

// Config holds tank parameters.
type Config struct {
	Width, Height  float64
	Margin         float64
	WanderInterval int
	MinSpeed       int
	MaxSpeed       int
	Creatures      map[components.Kind]CreatureSpec
}

// Creature is a read-only snapshot of a live NPC.
type Creature struct {
	Entity   ecs.Entity
	Kind     components.Kind
	Value    int
	Position components.Position
	Motion   components.Motion
	Radius   float64
	Sprite   components.Sprite
}

// Collider returns the creature's collision circle.
func (c Creature) Collider() components.Collider {
	return components.Collider{X: c.Position.X, Y: c.Position.Y, Radius: c.Radius}
}

// Aquarium holds the live creatures and the level sequence.
type Aquarium struct {
	cfg     Config
	bounds  components.Bounds
	sprites SpriteProvider
	rng     *rand.Rand
	sink    telemetry.Sink

	world       *ecs.World
	creatureMap *ecs.Map5[components.Position, components.Motion, components.Body, components.Species, components.Sprite]
	wanderMap   *ecs.Map1[components.Wander]
	speciesView *ecs.Filter1[components.Species]

	// order holds live entities in insertion order; collision scans and
	// CreatureAt follow it.
	order []ecs.Entity

	levels       []*level.Level
	currentLevel int
}

// New creates an aquarium. Nil levels are skipped; at least one level must
// remain.
func New(cfg Config, sprites SpriteProvider, rng *rand.Rand, levels ...*level.Level) (*Aquarium, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.MinSpeed < 1 {
		cfg.MinSpeed = 1
	}
	if cfg.MaxSpeed < cfg.MinSpeed {
		cfg.MaxSpeed = cfg.MinSpeed
	}

	world := ecs.NewWorld()
	a := &Aquarium{
		cfg:     cfg,
		bounds:  components.Inset(cfg.Width, cfg.Height, cfg.Margin),
		sprites: sprites,
		rng:     rng,
		sink:    telemetry.Discard,

		world: world,
		creatureMap: ecs.NewMap5[
			components.Position,
			components.Motion,
			components.Body,
			components.Species,
			components.Sprite,
		](world),
		wanderMap:   ecs.NewMap1[components.Wander](world),
		speciesView: ecs.NewFilter1[components.Species](world),
	}

	for _, l := range levels {
		a.AddLevel(l)
	}
	if len(a.levels) == 0 {
		return nil, ErrNoLevels
	}
	return a, nil
}

// SetSink sets where events are reported. Nil discards them.
func (a *Aquarium) SetSink(s telemetry.Sink) {
	if s == nil {
		s = telemetry.Discard
	}
	a.sink = s
}

// AddLevel appends a level to the sequence.
func (a *Aquarium) AddLevel(l *level.Level) {
	if l == nil {
		return
	}
	a.levels = append(a.levels, l)
}

// Bounds returns the region creatures are kept inside.
func (a *Aquarium) Bounds() components.Bounds { return a.bounds }

// CurrentLevel returns the raw level counter. It keeps growing as levels
// cycle; use LevelIndex for the position in the sequence.
func (a *Aquarium) CurrentLevel() int { return a.currentLevel }

// LevelIndex returns the index of the current level in the sequence.
func (a *Aquarium) LevelIndex() int { return a.currentLevel % len(a.levels) }

// Level returns the current level.
func (a *Aquarium) Level() *level.Level { return a.levels[a.LevelIndex()] }

// LevelCount returns the number of levels in the sequence.
func (a *Aquarium) LevelCount() int { return len(a.levels) }

// AddCreature registers a new NPC with the tank bounds applied and returns
// its entity.
func (a *Aquarium) AddCreature(kind components.Kind, pos components.Position, mot components.Motion, spr components.Sprite) (ecs.Entity, bool) {
	spec, ok := a.cfg.Creatures[kind]
	if !kind.IsNPC() || !ok {
		return ecs.Entity{}, false
	}

	body := components.Body{Radius: spec.Radius, Bounds: a.bounds}
	species := components.Species{Kind: kind, Value: spec.Value}
	mot.DX, mot.DY = systems.Normalize(mot.DX, mot.DY)
	systems.HandleBounds(&pos, &mot, body.Bounds)
	spr.Flipped = mot.DX < 0

	e := a.creatureMap.NewEntity(&pos, &mot, &body, &species, &spr)
	if systems.PolicyFor(kind).Wanders {
		w := components.Wander{Timer: components.NewTicker(a.cfg.WanderInterval)}
		a.wanderMap.Add(e, &w)
	}
	a.order = append(a.order, e)
	return e, true
}

// SpawnCreature creates a creature of kind at a random spot with a random
// speed and heading. Kinds without a spec or sprite are rejected.
func (a *Aquarium) SpawnCreature(kind components.Kind) (ecs.Entity, bool) {
	ev := telemetry.Event{Kind: telemetry.EventSpawnRejected, Level: a.currentLevel, Creature: kind}

	if _, ok := a.cfg.Creatures[kind]; !ok || !kind.IsNPC() {
		a.sink.Record(ev)
		return ecs.Entity{}, false
	}
	var spr components.Sprite
	if a.sprites != nil {
		s, ok := a.sprites.GetSprite(kind)
		if !ok {
			a.sink.Record(ev)
			return ecs.Entity{}, false
		}
		spr = s
	}

	pos := components.Position{
		X: a.rng.Float64() * a.cfg.Width,
		Y: a.rng.Float64() * a.cfg.Height,
	}
	speed := a.cfg.MinSpeed + a.rng.Intn(a.cfg.MaxSpeed-a.cfg.MinSpeed+1)
	mot := components.Motion{Speed: float64(speed)}
	mot.DX, mot.DY = systems.RandomDirection(a.rng)

	e, ok := a.AddCreature(kind, pos, mot, spr)
	if !ok {
		a.sink.Record(ev)
		return e, false
	}

	ev.Kind = telemetry.EventSpawned
	ev.Value = a.cfg.Creatures[kind].Value
	ev.X, ev.Y = pos.X, pos.Y
	a.sink.Record(ev)
	return e, true
}

// Update moves every creature, bounces colliding NPC pairs apart and
// refills the tank.
func (a *Aquarium) Update() {
	for _, e := range a.order {
		a.move(e)
	}

	for i := 0; i < len(a.order); i++ {
		ea := a.order[i]
		posA, motA, bodyA, speciesA, _ := a.creatureMap.Get(ea)
		for j := i + 1; j < len(a.order); j++ {
			eb := a.order[j]
			posB, motB, bodyB, _, _ := a.creatureMap.Get(eb)

			ca := components.Collider{X: posA.X, Y: posA.Y, Radius: bodyA.Radius}
			cb := components.Collider{X: posB.X, Y: posB.Y, Radius: bodyB.Radius}
			if !systems.CheckCollision(ca, cb) {
				continue
			}

			systems.Bounce(posA, motA, posB, motB)
			a.move(ea)
			a.move(eb)

			a.sink.Record(telemetry.Event{
				Kind:     telemetry.EventNPCBounce,
				Level:    a.currentLevel,
				Creature: speciesA.Kind,
				X:        (posA.X + posB.X) / 2,
				Y:        (posA.Y + posB.Y) / 2,
			})
		}
	}

	a.Repopulate()
}

// move advances one creature a single step. Wanderers tick their timer
// on every move, bounce re-moves included.
func (a *Aquarium) move(e ecs.Entity) {
	pos, mot, body, species, spr := a.creatureMap.Get(e)
	if a.wanderMap.HasAll(e) {
		systems.Wander(a.wanderMap.Get(e), mot, a.rng)
	}
	systems.Move(species.Kind, pos, mot, body, spr)
}

// RemoveCreature removes e from the tank, crediting the current level with
// its value. Unknown entities are ignored.
func (a *Aquarium) RemoveCreature(e ecs.Entity) bool {
	idx := a.indexOf(e)
	if idx < 0 {
		return false
	}

	_, _, _, species, _ := a.creatureMap.Get(e)
	a.Level().ConsumePopulation(species.Kind, species.Value)

	a.world.RemoveEntity(e)
	a.order = append(a.order[:idx], a.order[idx+1:]...)
	return true
}

// Repopulate advances past a completed level, then spawns whatever the
// current level is short of.
func (a *Aquarium) Repopulate() {
	cur := a.Level()
	if cur.IsCompleted() {
		score := cur.Score()
		cur.Reset()
		a.currentLevel++
		a.ClearCreatures()

		a.sink.Record(telemetry.Event{
			Kind:  telemetry.EventLevelCompleted,
			Level: a.currentLevel,
			Value: score,
		})
		cur = a.Level()
	}

	for _, kind := range cur.Repopulate() {
		a.SpawnCreature(kind)
	}
}

// ClearCreatures removes every creature without crediting any level.
func (a *Aquarium) ClearCreatures() {
	for _, e := range a.order {
		a.world.RemoveEntity(e)
	}
	a.order = a.order[:0]
}

// CreatureCount returns the number of live creatures.
func (a *Aquarium) CreatureCount() int { return len(a.order) }

// CreatureAt returns the i-th creature in insertion order.
func (a *Aquarium) CreatureAt(i int) (Creature, bool) {
	if i < 0 || i >= len(a.order) {
		return Creature{}, false
	}
	return a.snapshot(a.order[i]), true
}

// Creatures returns snapshots of every live creature in insertion order.
func (a *Aquarium) Creatures() []Creature {
	out := make([]Creature, len(a.order))
	for i, e := range a.order {
		out[i] = a.snapshot(e)
	}
	return out
}

// FirstOverlap returns the first creature, in insertion order, whose circle
// touches c.
func (a *Aquarium) FirstOverlap(c components.Collider) (Creature, bool) {
	for _, e := range a.order {
		pos, _, body, _, _ := a.creatureMap.Get(e)
		if systems.CheckCollision(c, components.Collider{X: pos.X, Y: pos.Y, Radius: body.Radius}) {
			return a.snapshot(e), true
		}
	}
	return Creature{}, false
}

// Lookup returns the snapshot of e if it is still in the tank.
func (a *Aquarium) Lookup(e ecs.Entity) (Creature, bool) {
	if a.indexOf(e) < 0 {
		return Creature{}, false
	}
	return a.snapshot(e), true
}

// Pick returns the topmost creature whose circle contains (x, y). Later
// creatures are drawn over earlier ones, so the search runs backwards.
func (a *Aquarium) Pick(x, y float64) (Creature, bool) {
	point := components.Collider{X: x, Y: y}
	for i := len(a.order) - 1; i >= 0; i-- {
		e := a.order[i]
		pos, _, body, _, _ := a.creatureMap.Get(e)
		if systems.CheckCollision(point, components.Collider{X: pos.X, Y: pos.Y, Radius: body.Radius}) {
			return a.snapshot(e), true
		}
	}
	return Creature{}, false
}

// Population counts live creatures per kind.
func (a *Aquarium) Population() map[components.Kind]int {
	counts := make(map[components.Kind]int)
	query := a.speciesView.Query()
	for query.Next() {
		species := query.Get()
		counts[species.Kind]++
	}
	return counts
}

// Speeds returns the effective speed of every live creature.
func (a *Aquarium) Speeds() []float64 {
	out := make([]float64, 0, len(a.order))
	for _, e := range a.order {
		_, mot, _, species, _ := a.creatureMap.Get(e)
		out = append(out, systems.EffectiveSpeed(species.Kind, mot.Speed))
	}
	return out
}

// Draw draws every creature in insertion order.
func (a *Aquarium) Draw(d Drawer) {
	if d == nil {
		return
	}
	for _, e := range a.order {
		pos, _, _, _, spr := a.creatureMap.Get(e)
		d.DrawSprite(*spr, pos.X, pos.Y, components.TintNone)
	}
}

func (a *Aquarium) indexOf(e ecs.Entity) int {
	if !a.world.Alive(e) {
		return -1
	}
	for i, o := range a.order {
		if o == e {
			return i
		}
	}
	return -1
}

func (a *Aquarium) snapshot(e ecs.Entity) Creature {
	pos, mot, body, species, spr := a.creatureMap.Get(e)
	return Creature{
		Entity:   e,
		Kind:     species.Kind,
		Value:    species.Value,
		Position: *pos,
		Motion:   *mot,
		Radius:   body.Radius,
		Sprite:   *spr,
	}
}
