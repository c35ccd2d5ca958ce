package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/aquarium/components"
)

func TestComputeSpeedStats(t *testing.T) {
	tests := []struct {
		name                      string
		values                    []float64
		wantMean, wantStd         float64
		wantP10, wantP50, wantP90 float64
	}{
		{"empty", nil, 0, 0, 0, 0, 0},
		{"single", []float64{7}, 7, 0, 7, 7, 7},
		{
			name:     "one to ten",
			values:   []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
			wantMean: 5.5,
			wantStd:  3.0277,
			wantP10:  1,
			wantP50:  5,
			wantP90:  9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, p10, p50, p90 := ComputeSpeedStats(tt.values)
			got := []float64{mean, std, p10, p50, p90}
			want := []float64{tt.wantMean, tt.wantStd, tt.wantP10, tt.wantP50, tt.wantP90}
			names := []string{"mean", "std", "p10", "p50", "p90"}
			for i := range got {
				if math.Abs(got[i]-want[i]) > 0.001 {
					t.Errorf("%s = %v, want %v", names[i], got[i], want[i])
				}
			}
		})
	}
}

func TestComputeSpeedStatsLeavesInputUnsorted(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeSpeedStats(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(1, 1.0/60)

	if c.WindowDurationTicks() != 60 {
		t.Fatalf("WindowDurationTicks() = %d, want 60", c.WindowDurationTicks())
	}
	if c.ShouldFlush(59) {
		t.Error("ShouldFlush(59) = true, want false")
	}
	if !c.ShouldFlush(60) {
		t.Error("ShouldFlush(60) = false, want true")
	}

	c.Record(Event{Kind: EventEaten})
	c.Record(Event{Kind: EventEaten})
	c.Record(Event{Kind: EventDamaged})
	c.Record(Event{Kind: EventSpawned})

	stats := c.Flush(60, Snapshot{
		Level: 1,
		Score: 12,
		Lives: 2,
		Power: 3,
		Population: map[components.Kind]int{
			components.KindBaseFish:   4,
			components.KindBiggerFish: 1,
		},
		Speeds: []float64{2, 4},
	})

	if stats.Eaten != 2 || stats.Damaged != 1 || stats.Spawned != 1 {
		t.Errorf("counts eaten=%d damaged=%d spawned=%d", stats.Eaten, stats.Damaged, stats.Spawned)
	}
	if stats.Creatures != 5 || stats.BaseFish != 4 || stats.BiggerFish != 1 {
		t.Errorf("population creatures=%d base=%d bigger=%d", stats.Creatures, stats.BaseFish, stats.BiggerFish)
	}
	if math.Abs(stats.EatRate-2) > 1e-9 {
		t.Errorf("EatRate = %v, want 2", stats.EatRate)
	}
	if math.Abs(stats.SimTimeSec-1) > 1e-9 {
		t.Errorf("SimTimeSec = %v, want 1", stats.SimTimeSec)
	}
	if stats.SpeedMean != 3 {
		t.Errorf("SpeedMean = %v, want 3", stats.SpeedMean)
	}

	// Counters reset for the next window.
	if c.Count(EventEaten) != 0 {
		t.Errorf("Count(eaten) = %d after flush, want 0", c.Count(EventEaten))
	}
	if c.ShouldFlush(100) {
		t.Error("ShouldFlush(100) = true right after flushing at 60")
	}
}
