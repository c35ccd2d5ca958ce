package components

// Ticker is a frame-counter gate that fires once every Interval calls.
type Ticker struct {
	Interval int
	elapsed  int
}

// NewTicker returns a ticker firing every interval frames. Intervals below
// one fire every frame.
func NewTicker(interval int) Ticker {
	if interval < 1 {
		interval = 1
	}
	return Ticker{Interval: interval}
}

// Tick advances the counter and reports whether the gate fired.
func (t *Ticker) Tick() bool {
	t.elapsed++
	if t.elapsed >= t.Interval {
		t.elapsed = 0
		return true
	}
	return false
}

// Elapsed returns the ticks counted since the gate last fired.
func (t Ticker) Elapsed() int { return t.elapsed }

// Reset rewinds the counter.
func (t *Ticker) Reset() {
	t.elapsed = 0
}
