// Package clock abstrae la hora actual para que los casos de uso sean deterministas en tests.
package clock

import (
	"sync"
	"time"
)

// Clock fuente de la hora actual.
type Clock interface {
	Now() time.Time
}

// System usa time.Now.
type System struct{}

// Now implementa Clock.
func (System) Now() time.Time { return time.Now() }

// Fake reloj fijo y avanzable manualmente.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake crea un reloj detenido en t (UTC).
func NewFake(t time.Time) *Fake {
	return &Fake{now: t.UTC()}
}

// Now implementa Clock.
func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance mueve el reloj d hacia adelante.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set fija el reloj en t (UTC).
func (c *Fake) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC()
}
