// Package notify shows one-time warnings to the user of the host process.
package notify

import "sync"

// Notifier shows a warning to the user. It must not block on user input for
// longer than the platform dialog itself does.
type Notifier interface {
	Warn(title, message string)
}

// Func adapts a function to Notifier.
type Func func(title, message string)

// Warn calls f.
func (f Func) Warn(title, message string) { f(title, message) }

// Once forwards the first Warn to its Notifier and drops the rest.
type Once struct {
	n    Notifier
	once sync.Once
}

// NewOnce returns a Once forwarding to n. A nil n uses System().
func NewOnce(n Notifier) *Once {
	if n == nil {
		n = System()
	}
	return &Once{n: n}
}

// Warn forwards the first call and ignores every later one.
func (o *Once) Warn(title, message string) {
	o.once.Do(func() { o.n.Warn(title, message) })
}
