package ui

import (
	"sync"

	"go.uber.org/zap"
)

// Menu is the mobile navigation drawer: open/close state plus listeners
// notified on every real state change. Collaborators (the banner rotator,
// scroll locking) are wired through listeners, never through back-references.
type Menu struct {
	mu        sync.Mutex
	open      bool
	listeners []func(open bool)
	logger    *zap.Logger
}

func NewMenu(logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Menu{logger: logger}
}

// OnStateChange registers a listener invoked with the new state after every
// open/close transition.
func (m *Menu) OnStateChange(fn func(open bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listeners = append(m.listeners, fn)
}

func (m *Menu) Open() {
	m.setOpen(true)
}

func (m *Menu) Close() {
	m.setOpen(false)
}

func (m *Menu) Toggle() {
	m.mu.Lock()
	target := !m.open
	m.mu.Unlock()

	m.setOpen(target)
}

func (m *Menu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.open
}

func (m *Menu) setOpen(open bool) {
	m.mu.Lock()
	if m.open == open {
		m.mu.Unlock()
		return
	}
	m.open = open
	listeners := make([]func(bool), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(open)
	}
}
