package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int     `csv:"-"`
	WindowEndTick   int     `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Player state at window end
	Level     int  `csv:"level"`
	Score     int  `csv:"score"`
	Lives     int  `csv:"lives"`
	Power     int  `csv:"power"`
	PoweredUp bool `csv:"powered_up"`

	// Tank population at window end
	Creatures  int `csv:"creatures"`
	BaseFish   int `csv:"base_fish"`
	BiggerFish int `csv:"bigger_fish"`
	PescaoCute int `csv:"pescao_cute"`
	ClownFish  int `csv:"clown_fish"`

	// Events during window
	Spawned         int     `csv:"spawned"`
	SpawnRejected   int     `csv:"spawn_rejected"`
	Bounces         int     `csv:"bounces"`
	Eaten           int     `csv:"eaten"`
	Damaged         int     `csv:"damaged"`
	DamageIgnored   int     `csv:"damage_ignored"`
	LivesGained     int     `csv:"lives_gained"`
	PowerUps        int     `csv:"powerups"`
	LevelsCompleted int     `csv:"levels_completed"`
	EatRate         float64 `csv:"eat_rate"` // eaten per sim second

	// NPC speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// ComputeSpeedStats returns mean, sample standard deviation and empirical
// percentiles of values. Empty input yields zeros.
func ComputeSpeedStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	if n == 1 {
		mean = values[0]
	} else {
		mean, std = stat.MeanStdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("level", s.Level),
		slog.Int("score", s.Score),
		slog.Int("lives", s.Lives),
		slog.Int("power", s.Power),
		slog.Bool("powered_up", s.PoweredUp),
		slog.Int("creatures", s.Creatures),
		slog.Int("base_fish", s.BaseFish),
		slog.Int("bigger_fish", s.BiggerFish),
		slog.Int("pescao_cute", s.PescaoCute),
		slog.Int("clown_fish", s.ClownFish),
		slog.Int("spawned", s.Spawned),
		slog.Int("spawn_rejected", s.SpawnRejected),
		slog.Int("bounces", s.Bounces),
		slog.Int("eaten", s.Eaten),
		slog.Int("damaged", s.Damaged),
		slog.Int("damage_ignored", s.DamageIgnored),
		slog.Int("lives_gained", s.LivesGained),
		slog.Int("powerups", s.PowerUps),
		slog.Int("levels_completed", s.LevelsCompleted),
		slog.Float64("eat_rate", s.EatRate),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p50", s.SpeedP50),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
