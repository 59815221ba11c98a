package storage

import (
	"strconv"

	"github.com/silicalabs/silica-sdk/types"
)

// Vector is a typed sequence under a caller-chosen prefix: a length field at
// "<prefix>::len" and one entry per index at "<prefix>::item::<i>". Indices
// [0, len) are always populated: Push writes the item before bumping the
// length, Pop removes it before dropping the length, so a failure between the
// two writes never leaves a hole inside the populated range.
//
// The length is re-read from storage on every call; nothing is cached across
// calls, at the cost of one extra storage round trip per mutation.
type Vector[T any] struct {
	prefix string
	store  *Storage
}

// NewVector creates a Vector over store. Prefix rules are the same as for
// Map.
func NewVector[T any](store *Storage, prefix string) *Vector[T] {
	return &Vector[T]{prefix: prefix, store: store}
}

func (v *Vector[T]) lenKey() string {
	return v.prefix + "::len"
}

func (v *Vector[T]) itemKey(index uint64) string {
	return v.prefix + "::item::" + strconv.FormatUint(index, 10)
}

// Len returns the element count, 0 when the length field is absent.
func (v *Vector[T]) Len() (uint64, error) {
	var length uint64
	if _, err := v.store.Get(v.lenKey(), &length); err != nil {
		return 0, err
	}
	return length, nil
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() (bool, error) {
	length, err := v.Len()
	if err != nil {
		return false, err
	}
	return length == 0, nil
}

// Get returns the element at index, or false when index is out of range.
func (v *Vector[T]) Get(index uint64) (T, bool, error) {
	var zero T
	length, err := v.Len()
	if err != nil {
		return zero, false, err
	}
	if index >= length {
		return zero, false, nil
	}

	var out T
	ok, err := v.store.Get(v.itemKey(index), &out)
	if err != nil {
		return zero, false, err
	}
	return out, ok, nil
}

// Set overwrites the element at an existing index. Indices outside [0, len)
// fail with InvalidArgument; a Vector never grows implicitly.
func (v *Vector[T]) Set(index uint64, value T) error {
	length, err := v.Len()
	if err != nil {
		return err
	}
	if index >= length {
		return types.InvalidArgument("index out of bounds")
	}
	return v.store.Set(v.itemKey(index), value)
}

// Push appends value at the end.
func (v *Vector[T]) Push(value T) error {
	length, err := v.Len()
	if err != nil {
		return err
	}
	if err := v.store.Set(v.itemKey(length), value); err != nil {
		return err
	}
	return v.store.Set(v.lenKey(), length+1)
}

// Pop removes and returns the last element. An empty vector returns false
// without mutating anything.
func (v *Vector[T]) Pop() (T, bool, error) {
	var zero T
	length, err := v.Len()
	if err != nil {
		return zero, false, err
	}
	if length == 0 {
		return zero, false, nil
	}

	itemKey := v.itemKey(length - 1)
	var out T
	ok, err := v.store.Get(itemKey, &out)
	if err != nil {
		return zero, false, err
	}
	if err := v.store.Remove(itemKey); err != nil {
		return zero, false, err
	}
	if err := v.store.Set(v.lenKey(), length-1); err != nil {
		return zero, false, err
	}
	return out, ok, nil
}
