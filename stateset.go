package redfa

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

var _ Hashable = &FrozenStateSet{}

// FrozenStateSet An immutable sorted set of NFA states with a precomputed hash. It names a DFA
// state during subset construction.
type FrozenStateSet struct {
	values   []int
	hashCode uint64
}

// NewFrozenStateSet Returns the frozen set of values, which need not be sorted or distinct.
func NewFrozenStateSet(values []int) *FrozenStateSet {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	// Same members will always have the same hashCode
	hashCode := uint64(len(sorted))
	for _, v := range sorted {
		hashCode += uint64(mix32(v))
	}
	return &FrozenStateSet{values: sorted, hashCode: hashCode}
}

func freeze(set *bitset.BitSet) *FrozenStateSet {
	values := make([]int, 0, set.Count())
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		values = append(values, int(s))
	}
	return NewFrozenStateSet(values)
}

func (f *FrozenStateSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenStateSet) Equals(other Hashable) bool {
	o, ok := other.(*FrozenStateSet)
	if !ok {
		return false
	}
	if f == nil || o == nil {
		return f == o
	}
	return f.hashCode == o.hashCode && slices.Equal(f.values, o.values)
}

func (f *FrozenStateSet) GetArray() []int {
	return f.values
}

func (f *FrozenStateSet) Size() int {
	return len(f.values)
}

func (f *FrozenStateSet) Contains(state int) bool {
	_, found := slices.BinarySearch(f.values, state)
	return found
}

// The 32 bit finalization mix of MurmurHash3.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}
