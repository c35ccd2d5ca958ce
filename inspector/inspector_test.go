package inspector

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/aquarium/aquarium"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/level"
)

func newTank(t *testing.T) *aquarium.Aquarium {
	t.Helper()
	lv, err := level.New(10)
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}
	cfg := aquarium.Config{
		Width: 800, Height: 600, Margin: 20,
		WanderInterval: 60, MinSpeed: 1, MaxSpeed: 25,
		Creatures: map[components.Kind]aquarium.CreatureSpec{
			components.KindBaseFish:   {Radius: 30, Value: 1},
			components.KindBiggerFish: {Radius: 60, Value: 5},
		},
	}
	sprites := aquarium.SpriteTable{
		components.KindBaseFish:   {Texture: 1, Width: 70, Height: 70, Scale: 1},
		components.KindBiggerFish: {Texture: 2, Width: 120, Height: 120, Scale: 1},
	}
	tank, err := aquarium.New(cfg, sprites, rand.New(rand.NewSource(1)), lv)
	if err != nil {
		t.Fatalf("aquarium.New: %v", err)
	}
	return tank
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag    string
		widget Widget
		opts   map[string]string
	}{
		{"", WidgetAuto, map[string]string{}},
		{"bar,max:40", WidgetBar, map[string]string{"max": "40"}},
		{"label,fmt:%.0f", WidgetLabel, map[string]string{"fmt": "%.0f"}},
		{"angle", WidgetAngle, map[string]string{}},
		{"skip", WidgetSkip, map[string]string{}},
		{"mystery", WidgetAuto, map[string]string{}},
	}
	for _, tt := range tests {
		w, opts := ParseTag(tt.tag)
		if w != tt.widget {
			t.Errorf("ParseTag(%q) widget = %d, want %d", tt.tag, w, tt.widget)
		}
		if len(opts) != len(tt.opts) {
			t.Errorf("ParseTag(%q) options = %v, want %v", tt.tag, opts, tt.opts)
		}
		for k, v := range tt.opts {
			if opts[k] != v {
				t.Errorf("ParseTag(%q)[%q] = %q, want %q", tt.tag, k, opts[k], v)
			}
		}
	}
}

func TestExtractFields(t *testing.T) {
	type sample struct {
		Name   string
		Hidden int `inspect:"skip"`
		Alive  bool
		Speed  float64 `inspect:"bar,max:10"`
		secret int
	}
	fields := ExtractFields(&sample{Name: "a", Alive: true, Speed: 5, secret: 1})
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(fields))
	}
	want := []struct {
		name   string
		widget Widget
	}{
		{"Name", WidgetLabel},
		{"Alive", WidgetBool},
		{"Speed", WidgetBar},
	}
	for i, w := range want {
		if fields[i].Name != w.name || fields[i].Widget != w.widget {
			t.Errorf("field %d = %s/%d, want %s/%d", i, fields[i].Name, fields[i].Widget, w.name, w.widget)
		}
	}
	if ExtractFields(42) != nil {
		t.Error("ExtractFields on a non-struct should return nil")
	}
}

func TestFormatAndRatio(t *testing.T) {
	if got := FormatValue(1.234, ""); got != "1.23" {
		t.Errorf("FormatValue(1.234) = %q", got)
	}
	if got := FormatValue(12.6, "%.0f"); got != "13" {
		t.Errorf("FormatValue(12.6, %%.0f) = %q", got)
	}
	if got := GetMax(map[string]string{"max": "40"}); got != 40 {
		t.Errorf("GetMax = %v, want 40", got)
	}
	if got := GetMax(map[string]string{"max": "zero"}); got != 1 {
		t.Errorf("GetMax(bad) = %v, want 1", got)
	}
	for _, tt := range []struct{ v, max, want float64 }{
		{5, 10, 0.5},
		{-1, 10, 0},
		{20, 10, 1},
	} {
		if got := Ratio(tt.v, tt.max); got != tt.want {
			t.Errorf("Ratio(%v, %v) = %v, want %v", tt.v, tt.max, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	c := aquarium.Creature{
		Kind:     components.KindBiggerFish,
		Value:    5,
		Position: components.Position{X: 100, Y: 200},
		Motion:   components.Motion{DX: 0, DY: 1, Speed: 4},
		Radius:   60,
	}
	weak := Describe(c, 1)
	if weak.Edible {
		t.Error("power 1 player should not be able to eat a value 5 fish")
	}
	if !Describe(c, 5).Edible {
		t.Error("power 5 player should be able to eat a value 5 fish")
	}
	if math.Abs(weak.Heading-math.Pi/2) > 1e-9 {
		t.Errorf("heading = %v, want pi/2", weak.Heading)
	}
	if weak.Kind != components.KindBiggerFish.String() || weak.X != 100 || weak.Y != 200 {
		t.Errorf("unexpected details %+v", weak)
	}
}

func TestSelectionLifecycle(t *testing.T) {
	tank := newTank(t)
	mot := components.Motion{DX: 1, Speed: 1}
	e, _ := tank.AddCreature(components.KindBaseFish, components.Position{X: 100, Y: 300},
		mot, components.Sprite{Texture: 1, Width: 70, Height: 70, Scale: 1})

	ins := NewInspector(800)
	if ins.HandleClick(700, 550, 700, 550, tank) {
		t.Error("click on empty water should not be consumed")
	}
	if _, ok := ins.Selected(tank); ok {
		t.Fatal("nothing should be selected yet")
	}

	if !ins.HandleClick(100, 300, 100, 300, tank) {
		t.Fatal("click on a fish should select it")
	}
	c, ok := ins.Selected(tank)
	if !ok || c.Entity != e {
		t.Fatalf("Selected = %v, %v; want the clicked fish", c.Entity, ok)
	}

	// Inside the panel the click is swallowed even if a fish is behind it.
	if !ins.HandleClick(ins.panelX+50, ins.panelY+HeaderHeight+5, 0, 0, tank) {
		t.Error("click on the panel should be consumed")
	}

	closeX := ins.panelX + PanelWidth - closeSize
	if !ins.HandleClick(closeX, ins.panelY+10, 0, 0, tank) {
		t.Error("close button click should be consumed")
	}
	if _, ok := ins.Selected(tank); ok {
		t.Error("close button should clear the selection")
	}

	ins.Select(tank, 100, 300)
	tank.RemoveCreature(e)
	if _, ok := ins.Selected(tank); ok {
		t.Error("selection should clear once the creature is gone")
	}
	if ins.hasSelected {
		t.Error("stale selection flag left set")
	}
}
