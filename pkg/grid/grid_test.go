package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"oatmeal/pkg/geom"
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

func TestNewUniformFill(t *testing.T) {
	g := New(3, 2, 7)
	require.Equal(t, 3, g.XCount())
	require.Equal(t, 3, g.ColCount())
	require.Equal(t, 2, g.YCount())
	require.Equal(t, 2, g.RowCount())
	require.Equal(t, 6, g.Count())
	for v := range g.Values() {
		require.Equal(t, 7, v)
	}
}

func TestNewFuncRowMajorOrder(t *testing.T) {
	var calls []geom.Point
	g := NewFunc(3, 2, func(x, y int) int {
		calls = append(calls, geom.Pt(x, y))
		return y*10 + x
	})

	want := []geom.Point{
		geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0),
		geom.Pt(0, 1), geom.Pt(1, 1), geom.Pt(2, 1),
	}
	require.Equal(t, want, calls)

	var got []int
	for v := range g.Values() {
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2, 10, 11, 12}, got)
}

func TestNewInvalidDimensions(t *testing.T) {
	mustPanicWith(t, ErrInvalidDimension, func() { New(0, 5, 0) })
	mustPanicWith(t, ErrInvalidDimension, func() { New(5, 0, 0) })
	mustPanicWith(t, ErrInvalidDimension, func() { New(-1, 5, 0) })
	mustPanicWith(t, ErrInvalidDimension, func() {
		NewFunc(0, 0, func(x, y int) int { return 0 })
	})
}

func TestAtSetIndex(t *testing.T) {
	g := New(3, 2, 0)
	require.Equal(t, 4, g.Index(geom.Pt(1, 1)))
	require.Equal(t, 5, g.Index(geom.Pt(2, 1)))

	g.Set(geom.Pt(1, 1), 42)
	require.Equal(t, 42, g.At(geom.Pt(1, 1)))
	require.Equal(t, 0, g.At(geom.Pt(0, 0)))
}

func TestOutOfBounds(t *testing.T) {
	g := New(3, 2, 0)
	bad := []geom.Point{
		geom.Pt(-1, 0),
		geom.Pt(0, -1),
		geom.Pt(-1, -1),
		geom.Pt(3, 0),
		geom.Pt(0, 2),
		geom.Pt(2, 3),
	}
	for _, p := range bad {
		mustPanicWith(t, ErrOutOfBounds, func() { g.At(p) })
		mustPanicWith(t, ErrOutOfBounds, func() { g.Set(p, 1) })
		mustPanicWith(t, ErrOutOfBounds, func() { g.Index(p) })
		require.False(t, g.ContainsPoint(p))
	}
}

func TestContainsPoint(t *testing.T) {
	g := New(3, 2, 0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			require.True(t, g.ContainsPoint(geom.Pt(x, y)))
		}
	}
	require.False(t, g.ContainsPoint(geom.Pt(3, 1)))
	require.False(t, g.ContainsPoint(geom.Pt(2, 2)))
}

func TestCellsMutation(t *testing.T) {
	g := New(2, 2, 0)
	cells := g.Cells()
	require.Len(t, cells, 4)
	cells[3] = 9
	require.Equal(t, 9, g.At(geom.Pt(1, 1)))
}

func TestValuesRestartable(t *testing.T) {
	g := NewFunc(2, 2, func(x, y int) int { return y*2 + x })

	collect := func() []int {
		var out []int
		for v := range g.Values() {
			out = append(out, v)
		}
		return out
	}
	require.Equal(t, []int{0, 1, 2, 3}, collect())
	require.Equal(t, []int{0, 1, 2, 3}, collect())

	var first []int
	for v := range g.Values() {
		first = append(first, v)
		break
	}
	require.Equal(t, []int{0}, first)
}

func TestRows(t *testing.T) {
	g := New(3, 5, 0)
	var rows []int
	for y := range g.Rows() {
		rows = append(rows, y)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, rows)
}

func TestRowRange(t *testing.T) {
	g := New(3, 5, 0)

	var rows []int
	for y := range g.RowRange(1, 4) {
		rows = append(rows, y)
	}
	require.Equal(t, []int{1, 2, 3, 4}, rows)

	mustPanicWith(t, ErrOutOfBounds, func() { g.RowRange(4, 3) })
	mustPanicWith(t, ErrOutOfBounds, func() { g.RowRange(5, 1) })
	mustPanicWith(t, ErrOutOfBounds, func() { g.RowRange(-1, 2) })
	mustPanicWith(t, ErrOutOfBounds, func() { g.RowRange(0, 6) })
}

func TestRowColumnDescriptors(t *testing.T) {
	g := New(3, 2, 0)

	var row []geom.Point
	for p := range g.Row(1).All() {
		row = append(row, p)
	}
	require.Equal(t, []geom.Point{geom.Pt(0, 1), geom.Pt(1, 1), geom.Pt(2, 1)}, row)

	var col []geom.Point
	for p := range g.Column(1).All() {
		col = append(col, p)
	}
	require.Equal(t, []geom.Point{geom.Pt(1, 0), geom.Pt(1, 1)}, col)

	require.Equal(t, 6, g.Points().Len())
	var all []geom.Point
	for p := range g.Points().All() {
		all = append(all, p)
	}
	require.Equal(t, []geom.Point{
		geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0),
		geom.Pt(0, 1), geom.Pt(1, 1), geom.Pt(2, 1),
	}, all)

	mustPanicWith(t, ErrOutOfBounds, func() { g.Row(2) })
	mustPanicWith(t, ErrOutOfBounds, func() { g.Row(-1) })
	mustPanicWith(t, ErrOutOfBounds, func() { g.Column(3) })
	mustPanicWith(t, ErrOutOfBounds, func() { g.Column(-1) })
}

func TestFill(t *testing.T) {
	g := NewFunc(2, 2, func(x, y int) int { return y*2 + x })
	g.Fill(5)
	for v := range g.Values() {
		require.Equal(t, 5, v)
	}
}

func TestFromLines(t *testing.T) {
	g, err := FromLines([]string{"abc", "def"})
	require.NoError(t, err)
	require.Equal(t, 3, g.XCount())
	require.Equal(t, 2, g.YCount())
	require.Equal(t, byte('a'), g.At(geom.Pt(0, 0)))
	require.Equal(t, byte('f'), g.At(geom.Pt(2, 1)))

	_, err = FromLines(nil)
	require.Error(t, err)
	_, err = FromLines([]string{""})
	require.Error(t, err)
	_, err = FromLines([]string{"abc", "de"})
	require.Error(t, err)
}
