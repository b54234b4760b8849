package run

import (
	"time"
)

// Periodic is a ticker which exists only while it is active, so a loop
// selecting on C never receives ticks after the run ends.
type Periodic struct {
	interval time.Duration
	ticker   *time.Ticker
}

func NewPeriodic(interval time.Duration) *Periodic {
	return &Periodic{interval: interval}
}

// Sync starts or stops the ticker and returns its channel.
// The channel is nil while inactive.
func (p *Periodic) Sync(active bool) <-chan time.Time {
	switch {
	case active && p.ticker == nil:
		p.ticker = time.NewTicker(p.interval)
	case !active && p.ticker != nil:
		p.ticker.Stop()
		p.ticker = nil
	}
	return p.C()
}

func (p *Periodic) C() <-chan time.Time {
	if p.ticker == nil {
		return nil
	}
	return p.ticker.C
}

func (p *Periodic) Active() bool {
	return p.ticker != nil
}

func (p *Periodic) Stop() {
	p.Sync(false)
}
