package observe

import (
	"context"
	"log/slog"

	"github.com/lguimbarda/min-linq/linq/core"
)

// Logged writes one log record per invocation of Func with its input and
// output.
type Logged[In, Out any, F core.Func[In, Out]] struct {
	Func F

	logger *slog.Logger
	name   string
	level  slog.Level
	attrs  []slog.Attr
}

// Invoke implements core.Func.
func (l Logged[In, Out, F]) Invoke(in In) Out {
	out := l.Func.Invoke(in)
	ctx := context.Background()
	if !l.logger.Enabled(ctx, l.level) {
		return out
	}
	attrs := make([]slog.Attr, 0, len(l.attrs)+3)
	attrs = append(attrs, slog.String("functor", l.name), slog.Any("in", in), slog.Any("out", out))
	attrs = append(attrs, l.attrs...)
	l.logger.LogAttrs(ctx, l.level, "functor invoked", attrs...)
	return out
}

// Log wraps fn so that each invocation is logged to logger under name. A
// nil logger uses slog.Default().
func Log[In, Out any, F core.Func[In, Out]](logger *slog.Logger, name string, fn F, opts ...InstrumentOption) Logged[In, Out, F] {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := applyOptions(opts...)
	return Logged[In, Out, F]{
		Func:   fn,
		logger: logger,
		name:   name,
		level:  cfg.Level,
		attrs:  cfg.slogAttrs(),
	}
}
