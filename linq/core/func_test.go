package core_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/min-linq/linq/core"
)

type isEven struct{}

func (isEven) Invoke(n int) bool { return n%2 == 0 }

type greaterThan struct{ limit int }

func (g greaterThan) Invoke(n int) bool { return n > g.limit }

type itoa struct{}

func (itoa) Invoke(n int) string { return strconv.Itoa(n) }

// recording counts its own calls through a shared pointer so copies made by
// the combinators still report into the test.
type recording struct {
	calls  *int
	result bool
}

func (r recording) Invoke(int) bool {
	*r.calls++
	return r.result
}

type point struct{ X, Y int }

type onDiagonal struct{}

func (onDiagonal) InvokeRef(p *point) bool { return p.X == p.Y }

func TestFuncOf(t *testing.T) {
	double := core.Fn(func(n int) int { return n * 2 })
	assert.Equal(t, 8, double.Invoke(4))

	positive := core.Pred(func(n int) bool { return n > 0 })
	assert.True(t, positive.Invoke(1))
	assert.False(t, positive.Invoke(-1))
}

func TestRefFunc(t *testing.T) {
	byRef := core.Ref[point, bool](onDiagonal{})
	assert.True(t, byRef.Invoke(point{X: 2, Y: 2}))
	assert.False(t, byRef.Invoke(point{X: 1, Y: 2}))

	sumRef := core.RefFuncOf[point, int](func(p *point) int { return p.X + p.Y })
	assert.Equal(t, 7, sumRef.InvokeRef(&point{X: 3, Y: 4}))
}

func TestByRef_DoesNotExposeCallerStorage(t *testing.T) {
	mutate := core.Ref[point, int](core.RefFuncOf[point, int](func(p *point) int {
		p.X = 100
		return p.Y
	}))

	original := point{X: 1, Y: 2}
	assert.Equal(t, 2, mutate.Invoke(original))
	assert.Equal(t, 1, original.X)
}

func TestAlwaysAndIdentity(t *testing.T) {
	assert.True(t, core.Always[int]{}.Invoke(-1))
	assert.Equal(t, "x", core.Identity[string]{}.Invoke("x"))
}

func TestPredicateAnd(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  bool
	}{
		{"both true", 6, true},
		{"first false", 5, false},
		{"second false", 2, false},
	}

	and := core.PredicateAnd[int](isEven{}, greaterThan{limit: 3})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, and.Invoke(tt.input))
		})
	}
}

func TestPredicateAnd_ShortCircuits(t *testing.T) {
	var firstCalls, secondCalls int
	and := core.PredicateAnd[int](
		recording{calls: &firstCalls, result: false},
		recording{calls: &secondCalls, result: true},
	)

	for i := 0; i < 5; i++ {
		assert.False(t, and.Invoke(i))
	}
	assert.Equal(t, 5, firstCalls)
	assert.Equal(t, 0, secondCalls)
}

func TestSelectorCompose(t *testing.T) {
	hasTwoDigits := core.Pred(func(s string) bool { return len(s) == 2 })
	composed := core.SelectorCompose[int, string](itoa{}, hasTwoDigits)

	assert.True(t, composed.Invoke(42))
	assert.False(t, composed.Invoke(7))
	assert.False(t, composed.Invoke(123))
}

func TestFuncOf_PanicsPropagate(t *testing.T) {
	boom := errors.New("boom")
	fn := core.Fn(func(int) int { panic(boom) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Equal(t, boom, r)
	}()
	fn.Invoke(1)
}

func TestSourceError(t *testing.T) {
	err := error(&core.SourceError{Kind: "list", Op: "linq.WhereList"})

	assert.ErrorIs(t, err, core.ErrNilSource)
	assert.Equal(t, "linq.WhereList: list source is nil", err.Error())

	var srcErr *core.SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "list", srcErr.Kind)
}
