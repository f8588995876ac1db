package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-linq/linq/core"
)

// NewCallCounter creates the counter Meter records into.
func NewCallCounter(meter metric.Meter, name string) (metric.Int64Counter, error) {
	counter, err := meter.Int64Counter(name,
		metric.WithDescription("number of functor invocations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("observe: create counter %q: %w", name, err)
	}
	return counter, nil
}

// Metered adds one to an OpenTelemetry counter per invocation of Func.
//
// Invoke has no context parameter, so the context given to Meter is used
// for every measurement.
type Metered[In, Out any, F core.Func[In, Out]] struct {
	Func F

	ctx     context.Context
	counter metric.Int64Counter
	opts    []metric.AddOption
}

// Invoke implements core.Func.
func (m Metered[In, Out, F]) Invoke(in In) Out {
	m.counter.Add(m.ctx, 1, m.opts...)
	return m.Func.Invoke(in)
}

// Meter wraps fn so that each invocation is recorded in counter.
func Meter[In, Out any, F core.Func[In, Out]](ctx context.Context, counter metric.Int64Counter, fn F, opts ...InstrumentOption) Metered[In, Out, F] {
	cfg := applyOptions(opts...)
	m := Metered[In, Out, F]{Func: fn, ctx: ctx, counter: counter}
	if len(cfg.Attributes) > 0 {
		set := attribute.NewSet(cfg.Attributes...)
		m.opts = []metric.AddOption{metric.WithAttributeSet(set)}
	}
	return m
}
