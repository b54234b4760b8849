package main

import (
	"time"
)

const clickGuardDuration = 100 * time.Millisecond

// clickGuard drops the canvas click which follows the begin confirmation,
// so the click releasing the overlay is not counted as a shot.
type clickGuard struct {
	deadline time.Time
}

func (c *clickGuard) Arm() {
	c.deadline = time.Now().Add(clickGuardDuration)
}

func (c *clickGuard) Click() bool {
	return c.deadline.IsZero() || c.deadline.Before(time.Now())
}
