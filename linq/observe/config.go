package observe

import (
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// InstrumentConfig holds configuration options for the metric and logging
// decorators.
type InstrumentConfig struct {
	// Attributes are attached to every recorded measurement and log record.
	Attributes []attribute.KeyValue
	// Level is the level Logged writes at.
	Level slog.Level
}

// InstrumentOption is a functional option for configuring decorators.
type InstrumentOption func(*InstrumentConfig)

// WithAttributes adds attributes to every measurement and log record.
func WithAttributes(attrs ...attribute.KeyValue) InstrumentOption {
	return func(c *InstrumentConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// WithLevel sets the level Logged writes at. The default is slog.LevelDebug.
func WithLevel(level slog.Level) InstrumentOption {
	return func(c *InstrumentConfig) {
		c.Level = level
	}
}

func defaultConfig() InstrumentConfig {
	return InstrumentConfig{
		Level: slog.LevelDebug,
	}
}

func applyOptions(opts ...InstrumentOption) InstrumentConfig {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// slogAttrs converts the configured attributes for log records.
func (c InstrumentConfig) slogAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, len(c.Attributes))
	for _, kv := range c.Attributes {
		attrs = append(attrs, slog.String(string(kv.Key), kv.Value.Emit()))
	}
	return attrs
}
