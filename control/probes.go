// File: control/probes.go
//
// Named debug probes for internal inspection.

package control

import "sync"

// Probes holds registered probe functions.
type Probes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewProbes creates an empty probe registry.
func NewProbes() *Probes {
	return &Probes{probes: make(map[string]func() any)}
}

// Register inserts a named debug hook, replacing any previous one.
func (p *Probes) Register(name string, fn func() any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probes[name] = fn
}

// Dump returns the output of all registered probes.
func (p *Probes) Dump() map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]any, len(p.probes))
	for name, fn := range p.probes {
		out[name] = fn()
	}
	return out
}
