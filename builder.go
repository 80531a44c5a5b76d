// FILE: builder.go
package dfslog

// Builder provides a fluent API for constructing a configured Manager.
// It wraps a Config instance and provides chainable methods for setting
// values, accumulating errors for deferred handling.
type Builder struct {
	cfg *Config
	err error
}

// NewBuilder creates a new builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a Manager with the built configuration applied.
func (b *Builder) Build() (*Manager, error) {
	if b.err != nil {
		return nil, b.err
	}

	mgr := NewManagerWithSink(nil)
	if err := mgr.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return mgr, nil
}

// Level sets the minimum accepted level.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = level.String()
	return b
}

// LevelString sets the minimum accepted level from a name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := LevelFromString(level); err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = level
	return b
}

// Components sets the enabled component set from a comma-separated list,
// or "all".
func (b *Builder) Components(list string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ComponentsFromString(list); err != nil {
		b.err = err
		return b
	}
	b.cfg.Components = list
	return b
}

// Sink selects the sink kind: "console", "callback", "capture", or "none".
func (b *Builder) Sink(kind string) *Builder {
	b.cfg.Sink = kind
	return b
}

// ConsoleTarget selects "stderr" or "stdout" for the console sink.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// ShowTimestamp toggles the console timestamp tag.
func (b *Builder) ShowTimestamp(show bool) *Builder {
	b.cfg.ShowTimestamp = show
	return b
}

// ShowLevel toggles the console level tag.
func (b *Builder) ShowLevel(show bool) *Builder {
	b.cfg.ShowLevel = show
	return b
}

// ShowComponent toggles the console component tag.
func (b *Builder) ShowComponent(show bool) *Builder {
	b.cfg.ShowComponent = show
	return b
}

// ShowGoroutine toggles the console goroutine-id tag.
func (b *Builder) ShowGoroutine(show bool) *Builder {
	b.cfg.ShowGoroutine = show
	return b
}

// TimestampFormat sets the console timestamp layout.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// Example usage:
// mgr, err := dfslog.NewBuilder().
//
//	LevelString("warn").
//	Components("rpc,filesystem").
//	ShowTimestamp(false).
//	Build()
//
// if err == nil {
//
//	 mgr.Warn(dfslog.ComponentRPC).Str("retrying connection").Done()
//
// }
