package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustPanicWith runs fn and requires that it panics with an error
// wrapping sentinel.
func mustPanicWith(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		require.ErrorIs(t, err, sentinel)
	}()
	fn()
}

func TestPointZeroValue(t *testing.T) {
	var p Point
	require.Equal(t, Pt(0, 0), p)
}

func TestPointArithmetic(t *testing.T) {
	require.Equal(t, Pt(18, -4), Pt(20, -5).Add(Pt(-2, 1)))
	require.Equal(t, Pt(22, -6), Pt(20, -5).Sub(Pt(-2, 1)))
	require.Equal(t, Pt(-20, 5), Pt(20, -5).Neg())
	require.Equal(t, Pt(-6, 9), Pt(-2, 3).Mul(3))
}

func TestPointDivTruncatesTowardZero(t *testing.T) {
	require.Equal(t, Pt(6, 2), Pt(-24, -8).Div(-4))
	require.Equal(t, Pt(-3, 2), Pt(-7, 5).Div(2))
}

func TestPointModTakesDividendSign(t *testing.T) {
	require.Equal(t, Pt(1, 2), Pt(7, 5).Mod(3))
	require.Equal(t, Pt(2, 1), Pt(8, 10).Mod(3))
	require.Equal(t, Pt(-1, 1), Pt(-7, 5).Mod(2))
}

func TestPointAbs(t *testing.T) {
	require.Equal(t, Pt(3, 4), Pt(-3, 4).Abs())
	for _, p := range []Point{Pt(0, 0), Pt(5, -7), Pt(-5, 7), Pt(-5, -7)} {
		a := p.Abs()
		require.GreaterOrEqual(t, a.X, 0)
		require.GreaterOrEqual(t, a.Y, 0)
		require.Equal(t, a, p.Neg().Abs())
	}
}

func TestPointLess(t *testing.T) {
	require.True(t, Pt(1, 9).Less(Pt(2, 0)))
	require.True(t, Pt(1, 2).Less(Pt(1, 3)))
	require.False(t, Pt(1, 2).Less(Pt(1, 2)))
	require.False(t, Pt(2, 0).Less(Pt(1, 9)))
}

func TestPointComponent(t *testing.T) {
	p := Pt(3, 7)
	require.Equal(t, 3, p.Component(0))
	require.Equal(t, 7, p.Component(1))

	p.SetComponent(0, -1)
	p.SetComponent(1, 12)
	require.Equal(t, Pt(-1, 12), p)

	mustPanicWith(t, ErrComponentIndex, func() { p.Component(2) })
	mustPanicWith(t, ErrComponentIndex, func() { p.Component(-1) })
	mustPanicWith(t, ErrComponentIndex, func() { p.SetComponent(2, 0) })
	mustPanicWith(t, ErrComponentIndex, func() { p.SetComponent(-1, 0) })
}

func TestPointHash(t *testing.T) {
	require.Equal(t, Pt(1, 2).Hash(), Pt(1, 2).Hash())
	require.NotEqual(t, Pt(1, 2).Hash(), Pt(2, 1).Hash())
}

func TestPointStrings(t *testing.T) {
	require.Equal(t, "1, 2", Pt(1, 2).String())
	require.Equal(t, "Point(x=1, y=2)", Pt(1, 2).GoString())
	require.Equal(t, "-3, 0", Pt(-3, 0).String())
}

func TestPointJSON(t *testing.T) {
	data, err := json.Marshal(Pt(-3, 12))
	require.NoError(t, err)
	require.JSONEq(t, "[-3, 12]", string(data))

	var p Point
	require.NoError(t, json.Unmarshal(data, &p))
	require.Equal(t, Pt(-3, 12), p)

	require.Error(t, json.Unmarshal([]byte("[1]"), &p))
	require.Error(t, json.Unmarshal([]byte("[1, 2, 3]"), &p))
	require.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &p))
}
