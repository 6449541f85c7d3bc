package preview

import (
	"sync"
	"time"
)

// DefaultDebounce is how long the preview waits after the last edit
// before re-rendering.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces bursts of triggers into a single callback after a
// quiet period. Rapid keystrokes and editor-save events both funnel
// through it so the renderer only runs once per pause.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
	fn    func()
}

func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules the callback, resetting the timer if one is pending.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
