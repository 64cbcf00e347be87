package redfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A key of another type whose hash can match a FrozenStateSet's.
type otherKey uint64

func (k otherKey) Hash() uint64 {
	return uint64(k)
}

func (k otherKey) Equals(other Hashable) bool {
	o, ok := other.(otherKey)
	return ok && k == o
}

func TestHashMapStateSets(t *testing.T) {
	t.Run("InsertAndGet", func(t *testing.T) {
		hm := NewHashMap[int](WithCapacity(8))
		hm.Set(NewFrozenStateSet([]int{0, 2, 3}), 0)
		hm.Set(NewFrozenStateSet([]int{1}), 1)

		v, ok := hm.Get(NewFrozenStateSet([]int{3, 2, 0}))
		assert.True(t, ok)
		assert.Equal(t, 0, v)

		_, ok = hm.Get(NewFrozenStateSet([]int{0, 2}))
		assert.False(t, ok)
		assert.Equal(t, 2, hm.Size())
	})

	t.Run("UpdateValue", func(t *testing.T) {
		hm := NewHashMap[int](WithCapacity(8))
		hm.Set(NewFrozenStateSet([]int{4, 5}), 1)
		hm.Set(NewFrozenStateSet([]int{5, 4}), 2)

		v, ok := hm.Get(NewFrozenStateSet([]int{4, 5}))
		assert.True(t, ok)
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, hm.Size())
	})

	t.Run("EmptySetIsAKey", func(t *testing.T) {
		hm := NewHashMap[int]()
		_, ok := hm.Get(NewFrozenStateSet(nil))
		assert.False(t, ok)

		hm.Set(NewFrozenStateSet(nil), 3)
		v, ok := hm.Get(NewFrozenStateSet([]int{}))
		assert.True(t, ok)
		assert.Equal(t, 3, v)
	})
}

func TestHashMapHashCollision(t *testing.T) {
	a := NewFrozenStateSet([]int{37, 1254})
	b := NewFrozenStateSet([]int{46, 209})
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equals(b))

	hm := NewHashMap[int](WithCapacity(16))
	hm.Set(a, 1)
	hm.Set(b, 2)
	assert.Equal(t, 2, hm.Size())

	v, ok := hm.Get(NewFrozenStateSet([]int{1254, 37}))
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = hm.Get(NewFrozenStateSet([]int{209, 46}))
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestHashMapBucketCollision(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(16))
	a := NewFrozenStateSet([]int{1})
	b := NewFrozenStateSet([]int{3})

	// Different hashes, same bucket of a 16 slot table.
	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash()&hm.mask, b.Hash()&hm.mask)

	hm.Set(a, 1)
	hm.Set(b, 3)
	v, ok := hm.Get(a)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = hm.Get(b)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestHashMapKeyTypeSafety(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(8))
	set := NewFrozenStateSet([]int{2, 7})
	hm.Set(set, 1)

	_, ok := hm.Get(otherKey(set.Hash()))
	assert.False(t, ok)
}

func TestHashMapResize(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(2))

	for i := 0; i < 100; i++ {
		hm.Set(NewFrozenStateSet([]int{i, i + 1}), i)
	}
	assert.Equal(t, 100, hm.Size())
	assert.GreaterOrEqual(t, len(hm.buckets), 128)

	for i := 0; i < 100; i++ {
		v, ok := hm.Get(NewFrozenStateSet([]int{i, i + 1}))
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
}
