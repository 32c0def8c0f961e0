package engine

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexlattice/graphbridge/errors"
)

func TestLongSet_OrderedIteration(t *testing.T) {
	s := NewLongSet(true)

	require.True(t, s.Add(30))
	require.True(t, s.Add(10))
	require.True(t, s.Add(20))
	require.False(t, s.Add(10), "re-adding must report not newly inserted")
	require.Equal(t, int64(3), s.Size())

	require.Equal(t, []int64{30, 10, 20}, s.Values(), "insertion order preserved")

	s.Remove(10)
	require.False(t, s.Contains(10))
	require.Equal(t, []int64{30, 20}, s.Values())

	s.Clear()
	require.Equal(t, int64(0), s.Size())
}

func TestLongSet_UnorderedCoversAll(t *testing.T) {
	s := NewLongSet(false)
	for i := int64(0); i < 50; i++ {
		require.True(t, s.Add(i))
	}

	got := s.Values()
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	require.Len(t, got, 50)
	for i := int64(0); i < 50; i++ {
		require.Equal(t, i, got[i])
	}
}

func TestDoubleSet(t *testing.T) {
	s := NewDoubleSet(true)
	require.True(t, s.Add(1.5))
	require.True(t, s.Add(2.5))
	require.False(t, s.Add(1.5))
	require.True(t, s.Contains(2.5))

	it := s.Iterator()
	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 1.5, v)
}

func TestLongLongMap(t *testing.T) {
	m := NewLongLongMap(true)

	m.Put(1, 100)
	m.Put(2, 200)
	m.Put(1, 111) // upsert
	require.Equal(t, int64(2), m.Size())

	v, err := m.Get(1)
	require.NoError(t, err)
	require.Equal(t, int64(111), v)

	_, err = m.Get(9)
	require.Equal(t, errors.StatusNoSuchElement, errors.StatusOf(err))
	require.True(t, m.ContainsKey(2))
	require.False(t, m.ContainsKey(9))

	removed, err := m.Remove(2)
	require.NoError(t, err)
	require.Equal(t, int64(200), removed)
	_, err = m.Remove(2)
	require.Equal(t, errors.StatusNoSuchElement, errors.StatusOf(err))
}

func TestLongDoubleMap_Iterators(t *testing.T) {
	m := NewLongDoubleMap(true)
	m.Put(7, 0.5)
	m.Put(8, 1.5)

	keys := m.Keys()
	k1, err := keys.Next()
	require.NoError(t, err)
	require.Equal(t, int64(7), k1)
	k2, err := keys.Next()
	require.NoError(t, err)
	require.Equal(t, int64(8), k2)
	require.False(t, keys.HasNext())

	vals := m.Values()
	v1, err := vals.Next()
	require.NoError(t, err)
	require.Equal(t, 0.5, v1)
}

func TestIterator_Exhaustion(t *testing.T) {
	it := NewLongIterator([]int64{1, 2, 3})

	for i := 0; i < 3; i++ {
		require.True(t, it.HasNext())
		_, err := it.Next()
		require.NoError(t, err)
	}

	// Exhaustion is terminal and idempotently observable.
	require.False(t, it.HasNext())
	require.False(t, it.HasNext())

	_, err := it.Next()
	require.Equal(t, errors.StatusNoSuchElement, errors.StatusOf(err))
	_, err = it.Next()
	require.Equal(t, errors.StatusNoSuchElement, errors.StatusOf(err))
}

func TestIterator_NextWithoutHasNext(t *testing.T) {
	it := NewDoubleIterator([]float64{4.2})

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 4.2, v)

	_, err = it.Next()
	require.Equal(t, errors.StatusNoSuchElement, errors.StatusOf(err))
}

func TestObjectIterator(t *testing.T) {
	a := NewLongSet(true)
	b := NewLongSet(true)
	it := NewObjectIterator([]any{a, b})

	first, err := it.Next()
	require.NoError(t, err)
	require.Same(t, a, first)

	second, err := it.Next()
	require.NoError(t, err)
	require.Same(t, b, second)

	require.False(t, it.HasNext())
}

func TestGraphPath(t *testing.T) {
	p := &GraphPath{
		Start:    0,
		End:      2,
		Vertices: []int64{0, 1, 2},
		Edges:    []int64{10, 11},
		Weight:   2.0,
	}

	require.Equal(t, int64(2), p.Length())

	edges := p.EdgeIterator()
	e, err := edges.Next()
	require.NoError(t, err)
	require.Equal(t, int64(10), e)

	verts := p.VertexIterator()
	v, err := verts.Next()
	require.NoError(t, err)
	require.Equal(t, int64(0), v)
}
