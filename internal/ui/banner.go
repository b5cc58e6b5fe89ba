package ui

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Rotator drives the banner slideshow: a fixed-interval advance through a
// ring of slides, stoppable and restartable. Opening the mobile menu stops
// it outright (the timer is halted, not paused) and closing restarts it.
type Rotator struct {
	mu       sync.Mutex
	slides   int
	current  int
	interval time.Duration
	onChange func(index int)
	logger   *zap.Logger

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewRotator(slides int, interval time.Duration, onChange func(index int), logger *zap.Logger) *Rotator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if slides == 0 {
		logger.Warn("no slides found, banner disabled")
	}
	if onChange == nil {
		onChange = func(int) {}
	}

	return &Rotator{
		slides:   slides,
		interval: interval,
		onChange: onChange,
		logger:   logger,
	}
}

// Start begins automatic rotation. A single slide never rotates; starting an
// already running rotator is a no-op.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stop != nil || r.slides < 2 {
		return
	}

	r.stop = make(chan struct{})
	r.wg.Add(1)
	go r.loop(r.stop)
}

func (r *Rotator) loop(stop chan struct{}) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Next()
		case <-stop:
			return
		}
	}
}

// Stop halts rotation entirely. Restart with Start.
func (r *Rotator) Stop() {
	r.mu.Lock()
	if r.stop == nil {
		r.mu.Unlock()
		return
	}
	close(r.stop)
	r.stop = nil
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Rotator) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.stop != nil
}

// Next advances to the following slide, wrapping around.
func (r *Rotator) Next() {
	r.mu.Lock()
	if r.slides == 0 {
		r.mu.Unlock()
		return
	}
	r.current = (r.current + 1) % r.slides
	current := r.current
	r.mu.Unlock()

	r.onChange(current)
}

// GoTo jumps to a slide directly, the indicator-click path.
func (r *Rotator) GoTo(index int) {
	r.mu.Lock()
	if index < 0 || index >= r.slides {
		r.mu.Unlock()
		return
	}
	r.current = index
	r.mu.Unlock()

	r.onChange(index)
}

func (r *Rotator) Current() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current
}

// Indicators reports which indicator is lit, one flag per slide.
func (r *Rotator) Indicators() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, r.slides)
	if r.slides > 0 {
		out[r.current] = true
	}
	return out
}
