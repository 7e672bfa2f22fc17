package session

import (
	"sync"

	"lumis/internal/contact/controller"
)

const maxFlash = 8

// Flash queues notifications until the next page render drains them.
type Flash struct {
	mu    sync.Mutex
	items []controller.Notification
}

func (f *Flash) Notify(n controller.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, n)
	if len(f.items) > maxFlash {
		f.items = f.items[len(f.items)-maxFlash:]
	}
}

func (f *Flash) Drain() []controller.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := f.items
	f.items = nil
	return items
}
