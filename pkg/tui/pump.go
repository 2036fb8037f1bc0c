package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Pump forwards messages to a running program in order. Push never
// blocks, so it is safe to call from inside Update, which is where
// mission intents emit their first events.
type Pump struct {
	mu      sync.Mutex
	queue   []tea.Msg
	wake    chan struct{}
	done    chan struct{}
	stopped bool
}

// NewPump creates an idle pump. Messages pushed before Start are held.
func NewPump() *Pump {
	return &Pump{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Push queues msg for delivery.
func (p *Pump) Push(msg tea.Msg) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.queue = append(p.queue, msg)
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Drain removes and returns everything queued.
func (p *Pump) Drain() []tea.Msg {
	p.mu.Lock()
	defer p.mu.Unlock()
	msgs := p.queue
	p.queue = nil
	return msgs
}

// Start delivers queued messages to send on a background goroutine until
// Stop is called.
func (p *Pump) Start(send func(tea.Msg)) {
	go func() {
		for {
			for _, msg := range p.Drain() {
				send(msg)
			}
			select {
			case <-p.wake:
			case <-p.done:
				return
			}
		}
	}()
}

// Stop ends delivery and drops anything still queued.
func (p *Pump) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	p.stopped = true
	p.queue = nil
	close(p.done)
}
