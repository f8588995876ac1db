package observe_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lguimbarda/min-linq/linq"
	"github.com/lguimbarda/min-linq/linq/observe"
)

type isEven struct{}

func (isEven) Invoke(n int) bool { return n%2 == 0 }

func TestCount(t *testing.T) {
	var counter observe.Counter
	pred := observe.Count[int, bool](isEven{}, &counter)

	assert.Equal(t, 2, linq.Where([]int{1, 2, 3, 4}, pred).Count())
	assert.Equal(t, int64(4), counter.Calls())

	counter.Reset()
	assert.Equal(t, int64(0), counter.Calls())
}

func TestCount_Concurrent(t *testing.T) {
	var counter observe.Counter
	pred := observe.Count[int, bool](isEven{}, &counter)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				pred.Invoke(n)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(800), counter.Calls())
}

func TestTap(t *testing.T) {
	var seen []int
	pred := observe.Tap[int, bool](isEven{}, func(n int) { seen = append(seen, n) })

	assert.Equal(t, []int{2}, linq.Where([]int{1, 2, 3}, pred).ToSlice())
	assert.Equal(t, []int{1, 2, 3}, seen)
}

// recordingCounter captures Add calls made by Metered.
type recordingCounter struct {
	noop.Int64Counter

	mu    sync.Mutex
	total int64
	sets  []attribute.Set
}

func (c *recordingCounter) Add(_ context.Context, incr int64, opts ...metric.AddOption) {
	cfg := metric.NewAddConfig(opts)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total += incr
	c.sets = append(c.sets, cfg.Attributes())
}

func TestMeter(t *testing.T) {
	counter := &recordingCounter{}
	pred := observe.Meter[int, bool](context.Background(), counter, isEven{},
		observe.WithAttributes(attribute.String("stage", "evens")))

	assert.Equal(t, 3, linq.Where([]int{1, 2, 3, 4, 5, 6}, pred).Count())
	assert.Equal(t, int64(6), counter.total)

	require.Len(t, counter.sets, 6)
	v, ok := counter.sets[0].Value("stage")
	require.True(t, ok)
	assert.Equal(t, "evens", v.AsString())
}

func TestNewCallCounter_Noop(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("min-linq/test")

	counter, err := observe.NewCallCounter(meter, "linq.predicate.calls")
	require.NoError(t, err)

	pred := observe.Meter[int, bool](context.Background(), counter, isEven{})
	assert.True(t, linq.Where([]int{1, 2}, pred).Any())
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pred := observe.Log[int, bool](logger, "isEven", isEven{},
		observe.WithAttributes(attribute.String("stage", "filter")))
	_ = linq.Where([]int{3}, pred).Count()

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "functor invoked", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "isEven", record["functor"])
	assert.Equal(t, float64(3), record["in"])
	assert.Equal(t, false, record["out"])
	assert.Equal(t, "filter", record["stage"])
}

func TestLog_LevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	quiet := observe.Log[int, bool](logger, "isEven", isEven{})
	assert.Equal(t, 1, linq.Where([]int{1, 2}, quiet).Count())
	assert.Empty(t, buf.String())

	loud := observe.Log[int, bool](logger, "isEven", isEven{}, observe.WithLevel(slog.LevelWarn))
	assert.Equal(t, 1, linq.Where([]int{1, 2}, loud).Count())
	assert.Contains(t, buf.String(), "level=WARN")
}
