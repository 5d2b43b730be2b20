package array

import (
	"iter"

	"github.com/Robin-3/data-structures/internal/errs"
	"github.com/Robin-3/data-structures/internal/render"
)

const dynamicArrayBaseCapacity = 4

// DynamicArray keeps its live elements contiguous in slots[0:len]. Slots in
// [len, cap) always hold the zero value. Capacity doubles when a write finds
// the array full and halves when a removal leaves it less than half used.
type DynamicArray[T any] struct {
	slots []T
	len   int
}

func NewDynamicArray[T any](capacity int) *DynamicArray[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &DynamicArray[T]{
		slots: make([]T, capacity),
	}
}

// DynamicArrayWithValues copies at most capacity values from the front of
// values; the rest are dropped.
func DynamicArrayWithValues[T any](capacity int, values []T) *DynamicArray[T] {
	a := NewDynamicArray[T](capacity)
	a.len = copy(a.slots, values)
	return a
}

func (a *DynamicArray[T]) Get(index int) (T, error) {
	if !a.inBounds(index) {
		var zero T
		return zero, errs.ErrIndexOutOfBounds
	}
	return a.slots[index], nil
}

// Ptr returns a pointer into the backing storage. It is invalidated by any
// operation that resizes the array.
func (a *DynamicArray[T]) Ptr(index int) (*T, error) {
	if !a.inBounds(index) {
		return nil, errs.ErrIndexOutOfBounds
	}
	return &a.slots[index], nil
}

func (a *DynamicArray[T]) Set(index int, value T) error {
	if !a.inBounds(index) {
		return errs.ErrIndexOutOfBounds
	}
	a.slots[index] = value
	return nil
}

func (a *DynamicArray[T]) Push(value T) {
	a.grow()
	a.slots[a.len] = value
	a.len++
}

func (a *DynamicArray[T]) Unshift(value T) {
	a.grow()
	copy(a.slots[1:a.len+1], a.slots[:a.len])
	a.slots[0] = value
	a.len++
}

// Insert places value at index and shifts the tail right. index must address
// a live element: inserting at Len() is rejected, use Push to append.
func (a *DynamicArray[T]) Insert(index int, value T) error {
	if !a.inBounds(index) {
		return errs.ErrIndexOutOfBounds
	}
	if a.len == len(a.slots) {
		a.resize(len(a.slots) * 2)
	}

	copy(a.slots[index+1:a.len+1], a.slots[index:a.len])
	a.slots[index] = value
	a.len++
	return nil
}

func (a *DynamicArray[T]) Remove(index int) (T, error) {
	if !a.inBounds(index) {
		var zero T
		return zero, errs.ErrIndexOutOfBounds
	}

	value := a.slots[index]
	copy(a.slots[index:a.len-1], a.slots[index+1:a.len])

	var zero T
	a.slots[a.len-1] = zero
	a.len--

	if a.len < len(a.slots)/2 && len(a.slots) > 1 {
		a.resize(len(a.slots) / 2)
	}
	return value, nil
}

func (a *DynamicArray[T]) Len() int {
	return a.len
}

func (a *DynamicArray[T]) Cap() int {
	return len(a.slots)
}

func (a *DynamicArray[T]) IsEmpty() bool {
	return a.len == 0
}

// All yields live elements in index order. The sequence reads the array
// when it is ranged over, so it can be reused after mutations.
func (a *DynamicArray[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.len; i++ {
			if !yield(a.slots[i]) {
				return
			}
		}
	}
}

func (a *DynamicArray[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.len - 1; i >= 0; i-- {
			if !yield(i, a.slots[i]) {
				return
			}
		}
	}
}

func (a *DynamicArray[T]) Values() []T {
	result := make([]T, a.len)
	copy(result, a.slots[:a.len])
	return result
}

func (a *DynamicArray[T]) String() string {
	return render.List(a.All())
}

func (a *DynamicArray[T]) inBounds(index int) bool {
	return index >= 0 && index < a.len
}

// grow makes room for one more element ahead of an append or unshift.
func (a *DynamicArray[T]) grow() {
	switch {
	case len(a.slots) == 0:
		a.resize(dynamicArrayBaseCapacity)
	case a.len == len(a.slots):
		a.resize(len(a.slots) * 2)
	}
}

func (a *DynamicArray[T]) resize(capacity int) {
	slots := make([]T, capacity)
	copy(slots, a.slots[:a.len])
	a.slots = slots
}
