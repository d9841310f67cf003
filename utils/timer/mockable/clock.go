// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package mockable provides the wall clock used as the locker's time
// oracle. Tests fake it to step through unlock dates and vesting periods.
package mockable

import (
	"sync"
	"time"
)

// Clock wraps the global time so that it can be frozen and advanced in
// tests. It is safe for concurrent use.
type Clock struct {
	mu    sync.RWMutex
	faked bool
	time  time.Time
}

// Set freezes the clock at t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.faked = true
	c.time = t
}

// SetUnix freezes the clock at the given unix timestamp in seconds.
func (c *Clock) SetUnix(unix uint64) {
	c.Set(time.Unix(int64(unix), 0))
}

// Advance moves a frozen clock forward by d. On a live clock it freezes
// the clock at now+d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.faked {
		c.time = time.Now()
		c.faked = true
	}
	c.time = c.time.Add(d)
}

// Sync this clock with global time
func (c *Clock) Sync() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.faked = false
}

// Time returns the time on this clock
func (c *Clock) Time() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.faked {
		return c.time
	}
	return time.Now()
}

// Unix returns the unix timestamp on this clock, in seconds. Times before
// the epoch read as 0.
func (c *Clock) Unix() uint64 {
	unix := max(c.Time().Unix(), 0)
	return uint64(unix)
}
