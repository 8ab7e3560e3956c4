package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/d3d8/internal/fake"
	"github.com/gogpu/d3d8/modern"
)

type testProvider struct {
	name string
	rt   modern.Runtime
	err  error
}

func (p *testProvider) Name() string                  { return p.name }
func (p *testProvider) Open() (modern.Runtime, error) { return p.rt, p.err }

// withRegistry runs a test against an empty registry and restores it after.
func withRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := providers
	providers = make(map[string]ProviderFactory)
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		providers = saved
		registryMu.Unlock()
	})
}

func TestRegistry(t *testing.T) {
	withRegistry(t)

	if Default() != nil {
		t.Fatal("Default() on empty registry is not nil")
	}

	Register("zeta", func() Provider { return &testProvider{name: "zeta"} })
	Register(BackendHAL, func() Provider { return &testProvider{name: BackendHAL} })

	if got := Available(); !slices.Equal(got, []string{BackendHAL, "zeta"}) {
		t.Errorf("Available() = %v", got)
	}
	if !IsRegistered(BackendHAL) || IsRegistered(BackendD3D9) {
		t.Error("IsRegistered reports wrong state")
	}
	if got := Default().Name(); got != BackendHAL {
		t.Errorf("Default() = %q, want %q", got, BackendHAL)
	}

	Register(BackendD3D9, func() Provider { return &testProvider{name: BackendD3D9} })
	if got := Default().Name(); got != BackendD3D9 {
		t.Errorf("Default() = %q, want %q", got, BackendD3D9)
	}

	Unregister(BackendD3D9)
	Unregister(BackendHAL)
	if got := Default().Name(); got != "zeta" {
		t.Errorf("Default() fallback = %q, want zeta", got)
	}
	if Get("missing") != nil {
		t.Error("Get(missing) is not nil")
	}
}

func TestOpen(t *testing.T) {
	withRegistry(t)

	rt := fake.NewRuntime()
	openErr := errors.New("no device")
	Register(BackendHAL, func() Provider { return &testProvider{name: BackendHAL, rt: rt} })
	Register("broken", func() Provider { return &testProvider{name: "broken", err: openErr} })
	Register("empty", func() Provider { return &testProvider{name: "empty"} })

	got, err := Open("")
	if err != nil || got != rt {
		t.Errorf("Open(\"\") = %v, %v", got, err)
	}
	if _, err := Open("broken"); !errors.Is(err, openErr) {
		t.Errorf("Open(broken) error = %v, want wrapped open error", err)
	}
	if _, err := Open("empty"); !errors.Is(err, ErrNoRuntime) {
		t.Errorf("Open(empty) error = %v, want ErrNoRuntime", err)
	}
	if _, err := Open("missing"); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Open(missing) error = %v, want ErrBackendNotAvailable", err)
	}
}
