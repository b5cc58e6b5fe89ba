package ui

import (
	"strconv"
	"sync"
	"time"

	"github.com/lapescados/storefront/internal/domain"
	"github.com/lapescados/storefront/internal/timing"
)

const (
	// scrolledThreshold is the offset past which the header takes its
	// compact, shadowed style.
	scrolledThreshold = 100

	// hideThreshold is the offset past which scrolling down hides the
	// header; scrolling up always shows it again.
	hideThreshold = 200
)

// Header tracks the scroll-driven header style. Scroll positions arrive at
// event frequency; the throttle guarantees at most one state update per
// frame interval.
type Header struct {
	mu       sync.Mutex
	lastY    int
	latestY  int
	scrolled bool
	hidden   bool

	throttle *timing.Throttle
}

func NewHeader(frame time.Duration) *Header {
	return &Header{throttle: timing.NewThrottle(frame)}
}

// OnScroll records the newest position and requests a frame-aligned update.
// Bursts coalesce: the update reads the latest position when it runs.
func (h *Header) OnScroll(y int) {
	h.mu.Lock()
	h.latestY = y
	h.mu.Unlock()

	h.throttle.Request(h.apply)
}

// Apply runs the pending update immediately, for callers driving frames
// themselves.
func (h *Header) Apply() {
	h.apply()
}

func (h *Header) apply() {
	h.mu.Lock()
	defer h.mu.Unlock()

	y := h.latestY
	h.scrolled = y > scrolledThreshold
	h.hidden = y > h.lastY && y > hideThreshold
	h.lastY = y
}

// State reports the current header style flags.
func (h *Header) State() (scrolled, hidden bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.scrolled, h.hidden
}

func (h *Header) Stop() {
	h.throttle.Stop()
}

// Badge is the cart counter in the header. It re-derives its display from
// each published cart snapshot.
type Badge struct {
	mu      sync.Mutex
	text    string
	visible bool
}

func NewBadge() *Badge {
	return &Badge{text: "0"}
}

// HandleCartChange is the broadcast handler updating the counter.
func (b *Badge) HandleCartChange(cart domain.Cart) {
	total := cart.TotalQuantity()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.text = badgeText(total)
	b.visible = total > 0
}

func (b *Badge) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.text
}

func (b *Badge) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.visible
}

func badgeText(total int) string {
	if total > 99 {
		return "99+"
	}
	return strconv.Itoa(total)
}
