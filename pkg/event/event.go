// Package event connects the order intake path to its in-process
// listeners: the service fires "order.created" after a successful insert
// and the websocket feed subscribes at boot.
package event

import "sync"

// Handler receives an event payload.
type Handler func(payload interface{})

// dispatcher holds the listener table. One package-level instance serves
// the process; Flush resets it between tests.
type dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

var std = &dispatcher{handlers: make(map[string][]Handler)}

// Listen registers handler for the named event.
func Listen(event string, handler Handler) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.handlers[event] = append(std.handlers[event], handler)
}

// Fire dispatches payload synchronously to every listener registered for
// event, on the caller's goroutine and in registration order. Listeners
// that need to be non-blocking (like the websocket hub) buffer internally.
func Fire(event string, payload interface{}) {
	std.mu.RLock()
	hs := make([]Handler, len(std.handlers[event]))
	copy(hs, std.handlers[event])
	std.mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// Flush drops every registered listener.
func Flush() {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.handlers = make(map[string][]Handler)
}
