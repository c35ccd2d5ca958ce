package components

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPlayer, "Player"},
		{KindBaseFish, "BaseFish"},
		{KindBiggerFish, "BiggerFish"},
		{KindPescaoCute, "PescaoCute"},
		{KindClownFish, "ClownFish"},
		{Kind(42), "UnknownFish"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"BaseFish", KindBaseFish, false},
		{"NPCreature", KindBaseFish, false},
		{"biggerfish", KindBiggerFish, false},
		{" ClownFish ", KindClownFish, false},
		{"Shark", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestKindIsNPC(t *testing.T) {
	if KindPlayer.IsNPC() {
		t.Error("player must not be an NPC")
	}
	for _, k := range NPCKinds() {
		if !k.IsNPC() {
			t.Errorf("%v should be an NPC", k)
		}
	}
	if Kind(99).IsNPC() {
		t.Error("undeclared kind must not be an NPC")
	}
}

func TestTickerFiresEveryInterval(t *testing.T) {
	tk := NewTicker(3)
	var fired []int
	for frame := 1; frame <= 9; frame++ {
		if tk.Tick() {
			fired = append(fired, frame)
		}
	}
	want := []int{3, 6, 9}
	if len(fired) != len(want) {
		t.Fatalf("fired on %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired on %v, want %v", fired, want)
		}
	}
}

func TestTickerElapsed(t *testing.T) {
	tk := NewTicker(3)
	for _, want := range []int{1, 2, 0, 1} {
		tk.Tick()
		if got := tk.Elapsed(); got != want {
			t.Errorf("Elapsed() = %d, want %d", got, want)
		}
	}
	tk.Reset()
	if tk.Elapsed() != 0 {
		t.Error("Reset did not rewind the counter")
	}
}

func TestTickerZeroIntervalFiresEveryFrame(t *testing.T) {
	tk := NewTicker(0)
	for i := 0; i < 5; i++ {
		if !tk.Tick() {
			t.Fatalf("frame %d did not fire", i)
		}
	}
}

func TestInsetBounds(t *testing.T) {
	b := Inset(800, 600, 20)
	if b.MinX != 20 || b.MinY != 20 || b.MaxX != 780 || b.MaxY != 580 {
		t.Errorf("unexpected bounds %+v", b)
	}
	if !b.Contains(20, 580) {
		t.Error("edges should be contained")
	}
	if b.Contains(10, 300) {
		t.Error("point in the margin should not be contained")
	}
}
