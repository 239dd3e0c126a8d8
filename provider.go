package scpjp

import "sync"

// Provider enables runtime hot-swap of a client value. An embedding
// application (typically a long-lived bot) holds one Provider per service and
// replaces the client when its credentials rotate, without restarting.
// The zero value is not usable; create one with NewProvider.
type Provider[C any] struct {
	mu     sync.RWMutex
	client *C
}

// NewProvider creates a provider holding the given initial client.
// client may be nil when no credentials are available at startup.
func NewProvider[C any](client *C) *Provider[C] {
	return &Provider[C]{client: client}
}

// Get returns the current client. Callers should check for nil if the
// provider was created without an initial client.
func (p *Provider[C]) Get() *C {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.client
}

// Replace swaps in a new client. The next caller of Get receives it.
func (p *Provider[C]) Replace(client *C) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.client = client
}

// HasClient reports whether a non-nil client is currently held.
func (p *Provider[C]) HasClient() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.client != nil
}
