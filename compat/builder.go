// FILE: compat/builder.go
package compat

import (
	"fmt"

	"github.com/dfsio/dfslog"
)

// Builder resolves a shared dfslog.Manager for a set of adapters. It can use
// an existing Manager or create one from a dfslog.Config, so gnet and
// fasthttp servers share the filter state of the rest of the application.
type Builder struct {
	mgr    *dfslog.Manager
	logCfg *dfslog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithManager specifies an existing manager to use for the adapters.
// Recommended for applications that already have a central instance.
// If this is set, WithConfig is ignored.
func (b *Builder) WithManager(m *dfslog.Manager) *Builder {
	if m == nil {
		b.err = fmt.Errorf("dfslog/compat: provided manager cannot be nil")
		return b
	}
	b.mgr = m
	return b
}

// WithConfig provides a configuration for a new manager instance, used only
// when no existing manager is provided via WithManager.
func (b *Builder) WithConfig(cfg *dfslog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getManager resolves the manager, creating one if necessary
func (b *Builder) getManager() (*dfslog.Manager, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.mgr != nil {
		return b.mgr, nil
	}

	m := dfslog.NewManager()
	cfg := b.logCfg
	if cfg == nil {
		cfg = dfslog.DefaultConfig()
	}
	if err := m.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	// Cache for subsequent builds with this builder
	b.mgr = m
	return m, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	m, err := b.getManager()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(m, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	m, err := b.getManager()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(m, opts...), nil
}

// GetManager returns the underlying manager, initializing it if needed
func (b *Builder) GetManager() (*dfslog.Manager, error) {
	return b.getManager()
}
