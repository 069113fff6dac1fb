package vector

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pavanmanishd/vector/alloc"
)

func TestCursorArithmetic(t *testing.T) {
	v := fromInts(t, 10, 20, 30, 40)

	b, e := v.Begin(), v.End()
	assert.Equal(t, 4, e.Sub(b))
	assert.True(t, b.Less(e))
	assert.False(t, e.Less(b))
	assert.True(t, b.Advance(4).Equal(e))
	assert.True(t, e.Prev().Equal(b.Next().Next().Next()))

	var got []int
	for c := v.Begin(); !c.Equal(v.End()); c = c.Next() {
		got = append(got, c.Get())
	}
	assert.Equal(t, []int{10, 20, 30, 40}, got)

	c := v.Begin().Advance(2)
	c.Set(33)
	*c.Next().Ptr() = 44
	assert.Equal(t, []int{10, 20, 33, 44}, v.Data())

	cc := c.Const()
	assert.Equal(t, 33, cc.Get())
	assert.Equal(t, 2, cc.Index())
	assert.True(t, cc.Equal(c))
	assert.True(t, v.CBegin().Less(v.CEnd()))
	assert.Equal(t, 4, v.CEnd().Sub(v.CBegin()))
}

func TestCursorsFromOtherVectorsDiffer(t *testing.T) {
	a := fromInts(t, 1, 2)
	b := fromInts(t, 1, 2)
	assert.False(t, a.Begin().Equal(b.Begin()))

	empty := New[int]()
	assert.True(t, empty.Begin().Equal(empty.End()))
	assert.False(t, empty.Begin().Equal(New[int]().Begin()))
}

func TestForeignCursorOfZeroSizeElements(t *testing.T) {
	a, err := NewFilled(2, struct{}{})
	require.NoError(t, err)
	b, err := NewFilled(2, struct{}{})
	require.NoError(t, err)

	assert.ErrorIs(t, b.Erase(a.Begin()), ErrOutOfRange)
	assert.ErrorIs(t, b.EraseRange(a.Begin(), a.End()), ErrOutOfRange)
	_, err = b.EmplaceAt(a.End(), func() (struct{}, error) { return struct{}{}, nil })
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 2, b.Len())

	require.NoError(t, b.Erase(b.Begin()))
	assert.Equal(t, 1, b.Len())
}

func TestCursorFromReleasedBuffer(t *testing.T) {
	v := New(WithStrategy[int](alloc.NewPool[int]()))
	require.NoError(t, v.PushBack(1))
	stale := v.Begin()

	v.Release()
	require.NoError(t, v.PushBack(2))
	assert.ErrorIs(t, v.Erase(stale), ErrOutOfRange)
	assert.Equal(t, []int{2}, v.Data())
}

func TestCursorAfterSwapAndMove(t *testing.T) {
	a := fromInts(t, 1, 2)
	b := fromInts(t, 3, 4)
	ca, cb := a.Begin(), b.Begin()

	a.Swap(b)
	assert.ErrorIs(t, a.Erase(ca), ErrOutOfRange)
	assert.ErrorIs(t, a.Erase(cb), ErrOutOfRange)

	c := a.Begin()
	m := a.Move()
	assert.ErrorIs(t, m.Erase(c), ErrOutOfRange)
	assert.ErrorIs(t, a.Erase(c), ErrOutOfRange)
	assert.Equal(t, []int{3, 4}, m.Data())
}

func TestCursorSurvivesInPlaceEdits(t *testing.T) {
	v := fromInts(t, 1, 2, 3)
	require.NoError(t, v.Reserve(10))
	first := v.Begin()
	require.NoError(t, v.PushBack(4))
	require.NoError(t, v.InsertAt(1, 9))
	require.NoError(t, v.Erase(first))
	assert.Equal(t, []int{9, 2, 3, 4}, v.Data())
}

func TestConstCursorPositions(t *testing.T) {
	v := fromInts(t, 1, 2, 3, 4)
	require.NoError(t, v.Erase(v.CBegin().Next()))
	require.NoError(t, v.EraseRange(v.CBegin(), v.CBegin().Next()))
	assert.Equal(t, []int{3, 4}, v.Data())

	c, err := v.EmplaceAt(v.CEnd(), func() (int, error) { return 5, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, []int{3, 4, 5}, v.Data())
}

func TestReverseCursor(t *testing.T) {
	v := fromInts(t, 1, 2, 3)

	var got []int
	for r := v.RBegin(); !r.Equal(v.REnd()); r = r.Next() {
		got = append(got, r.Get())
	}
	assert.Equal(t, []int{3, 2, 1}, got)

	r := v.RBegin()
	assert.Equal(t, 2, r.Index())
	assert.True(t, r.Base().Equal(v.End()))
	assert.Equal(t, 1, r.Advance(2).Get())
	assert.Equal(t, 3, r.Advance(2).Prev().Prev().Get())

	r.Next().Set(20)
	*r.Ptr() = 30
	assert.Equal(t, []int{1, 20, 30}, v.Data())

	empty := New[int]()
	assert.True(t, empty.RBegin().Equal(empty.REnd()))
}

func TestEqualAndCompare(t *testing.T) {
	a := fromInts(t, 1, 2, 3)
	b, err := NewFilled(0, 0)
	require.NoError(t, err)
	require.NoError(t, b.Reserve(50))
	require.NoError(t, b.AppendRange(Slice[int]{1, 2, 3}))

	assert.True(t, Equal(a, b), "capacity is ignored")
	assert.Zero(t, Compare(a, b))

	short := fromInts(t, 1, 2)
	bigger := fromInts(t, 1, 3)
	assert.False(t, Equal(a, short))
	assert.Equal(t, 1, Compare(a, short), "proper prefix sorts first")
	assert.Equal(t, -1, Compare(short, a))
	assert.Equal(t, -1, Compare(a, bigger))
	assert.Equal(t, -1, Compare(New[int](), short))

	strs, err := FromSlice([]string{"1", "2", "3"})
	require.NoError(t, err)
	assert.True(t, EqualFunc(a, strs, func(x int, s string) bool { return s == string(rune('0'+x)) }))
	assert.Equal(t, 0, CompareFunc(a, b, func(x, y int) int { return x - y }))
}

func TestCollateStrings(t *testing.T) {
	words, err := FromSlice([]string{"zebra", "Äpfel", "apple", "Zoo"})
	require.NoError(t, err)

	cmp := CollateStrings(language.German)
	sorted := slices.Clone(words.Data())
	slices.SortFunc(sorted, cmp)
	assert.Equal(t, []string{"Äpfel", "apple", "zebra", "Zoo"}, sorted)

	loose := CollateStrings(language.English, collate.IgnoreCase)
	a, err := FromSlice([]string{"Hello", "World"})
	require.NoError(t, err)
	b, err := FromSlice([]string{"hello", "world"})
	require.NoError(t, err)
	assert.Zero(t, CompareFunc(a, b, loose))
	assert.NotZero(t, Compare(a, b))
}
