package backend

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/d3d8/modern"
)

// ProviderFactory creates a new provider instance.
type ProviderFactory func() Provider

// registry holds registered providers.
var (
	registryMu sync.RWMutex
	providers  = make(map[string]ProviderFactory)
	// Priority order for provider selection (first available wins).
	// The native runtime is preferred over translation through the HAL.
	providerPriority = []string{BackendD3D9, BackendHAL}
)

// Register registers a provider factory with the given name.
// This is typically called from init() functions in backend packages.
// If a provider with the same name is already registered, it will be replaced.
func Register(name string, factory ProviderFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	providers[name] = factory
}

// Unregister removes a provider from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(providers, name)
}

// Available returns the registered provider names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a provider with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := providers[name]
	return ok
}

// Get returns a provider instance by name.
// Returns nil if the provider is not registered.
func Get(name string) Provider {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := providers[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available provider based on priority.
// Priority order: d3d9 > hal
// Returns nil if no providers are registered.
func Default() Provider {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range providerPriority {
		if factory, ok := providers[name]; ok {
			if p := factory(); p != nil {
				return p
			}
		}
	}

	// Fallback: first available in name order.
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if p := providers[name](); p != nil {
			return p
		}
	}

	return nil
}

// Open opens the runtime of the named provider, or of the default provider
// when name is empty.
func Open(name string) (modern.Runtime, error) {
	var p Provider
	if name == "" {
		p = Default()
	} else {
		p = Get(name)
	}
	if p == nil {
		if name == "" {
			return nil, ErrBackendNotAvailable
		}
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}

	rt, err := p.Open()
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", p.Name(), err)
	}
	if rt == nil {
		return nil, fmt.Errorf("backend %s: %w", p.Name(), ErrNoRuntime)
	}
	return rt, nil
}
