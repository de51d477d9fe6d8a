package widget

import (
	"sync"

	"github.com/npillmayer/tcss/dom"
)

// Screen is the root of a widget tree.
type Screen struct {
	*Widget
	Width, Height int
	subs          []subscription
	serial        dom.Subscription
	focused       *Widget
	frame         string
	paints        int
	mu            sync.Mutex // guards posted
	posted        []func()
	wake          chan struct{}
}

type subscription struct {
	id      dom.Subscription
	event   dom.EventType
	handler dom.Handler
}

// NewScreen creates an empty screen of a given size in cells.
func NewScreen(width, height int, opts ...Option) *Screen {
	s := &Screen{
		Widget: New("screen", opts...),
		Width:  width,
		Height: height,
		wake:   make(chan struct{}, 1),
	}
	s.Widget.screen = s
	return s
}

// Subscribe registers an event handler.
func (s *Screen) Subscribe(et dom.EventType, h dom.Handler) dom.Subscription {
	s.serial++
	s.subs = append(s.subs, subscription{id: s.serial, event: et, handler: h})
	return s.serial
}

// Unsubscribe removes an event handler.
func (s *Screen) Unsubscribe(id dom.Subscription) {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// Subscribers returns the number of registered event handlers.
func (s *Screen) Subscribers() int {
	return len(s.subs)
}

// Focused returns the widget having the focus, or nil.
func (s *Screen) Focused() *Widget {
	return s.focused
}

// emit delivers an event to all handlers subscribed to its type.
func (s *Screen) emit(et dom.EventType, target, related *Widget) {
	if s == nil {
		return
	}
	ev := dom.Event{Type: et, Target: target.node()}
	if related != nil {
		ev.Related = related.node()
	}
	tracer().Debugf("%s event for %s", et, target)
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		if sub.event == et {
			sub.handler(ev)
		}
	}
}

// Repaint emits EventPreRender and draws the widget tree. The result is
// available with Frame.
func (s *Screen) Repaint() error {
	s.emit(dom.EventPreRender, s.Widget, nil)
	s.frame = s.Render()
	s.paints++
	return nil
}

// Frame returns the result of the last repaint.
func (s *Screen) Frame() string {
	return s.frame
}

// Paints returns the number of repaints so far.
func (s *Screen) Paints() int {
	return s.paints
}

var _ dom.Root = &Screen{}

// --- Event loop ------------------------------------------------------------

// Post queues a task for the event loop of the screen. It is safe to call
// Post from any goroutine. Queued tasks run when the event loop calls
// Dispatch.
func (s *Screen) Post(task func()) {
	s.mu.Lock()
	s.posted = append(s.posted, task)
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Wake returns a channel which receives a value after tasks have been
// posted. Event loops select on it and call Dispatch.
func (s *Screen) Wake() <-chan struct{} {
	return s.wake
}

// Dispatch runs all queued tasks on the calling goroutine, in the order
// they have been posted, and returns the number of tasks run.
func (s *Screen) Dispatch() int {
	s.mu.Lock()
	tasks := s.posted
	s.posted = nil
	s.mu.Unlock()
	for _, task := range tasks {
		task()
	}
	return len(tasks)
}
