package array

import (
	"iter"

	"github.com/Robin-3/data-structures/internal/errs"
	"github.com/Robin-3/data-structures/internal/render"
)

// StaticArray never reallocates. Writes that would overflow it either fail
// (Push) or push the last element off the end (Unshift, Insert).
type StaticArray[T any] struct {
	slots []T
	len   int
}

func NewStaticArray[T any](capacity int) *StaticArray[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &StaticArray[T]{
		slots: make([]T, capacity),
	}
}

func StaticArrayWithValues[T any](capacity int, values []T) *StaticArray[T] {
	a := NewStaticArray[T](capacity)
	a.len = copy(a.slots, values)
	return a
}

func (a *StaticArray[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.len {
		var zero T
		return zero, errs.ErrIndexOutOfBounds
	}
	return a.slots[index], nil
}

func (a *StaticArray[T]) Set(index int, value T) error {
	if index < 0 || index >= a.len {
		return errs.ErrIndexOutOfBounds
	}
	a.slots[index] = value
	return nil
}

func (a *StaticArray[T]) Push(value T) error {
	if a.len == len(a.slots) {
		return errs.ErrIndexOutOfBounds
	}
	a.slots[a.len] = value
	a.len++
	return nil
}

// Unshift does nothing on a zero-capacity array.
func (a *StaticArray[T]) Unshift(value T) {
	if len(a.slots) == 0 {
		return
	}
	a.shiftRight(0)
	a.slots[0] = value
	if a.len < len(a.slots) {
		a.len++
	}
}

func (a *StaticArray[T]) Insert(index int, value T) error {
	if index < 0 || index >= a.len {
		return errs.ErrIndexOutOfBounds
	}
	a.shiftRight(index)
	a.slots[index] = value
	if a.len < len(a.slots) {
		a.len++
	}
	return nil
}

func (a *StaticArray[T]) Remove(index int) (T, error) {
	var zero T
	if index < 0 || index >= a.len {
		return zero, errs.ErrIndexOutOfBounds
	}

	value := a.slots[index]
	copy(a.slots[index:a.len-1], a.slots[index+1:a.len])
	a.slots[a.len-1] = zero
	a.len--
	return value, nil
}

func (a *StaticArray[T]) Len() int {
	return a.len
}

func (a *StaticArray[T]) Cap() int {
	return len(a.slots)
}

func (a *StaticArray[T]) IsEmpty() bool {
	return a.len == 0
}

func (a *StaticArray[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.len; i++ {
			if !yield(a.slots[i]) {
				return
			}
		}
	}
}

func (a *StaticArray[T]) Values() []T {
	result := make([]T, a.len)
	copy(result, a.slots[:a.len])
	return result
}

// String shows every slot, unused ones as None.
func (a *StaticArray[T]) String() string {
	return render.Slots(a.slots, func(i int) bool { return i < a.len })
}

// shiftRight moves slots [from, len) one place right, discarding the last
// element when the array is full.
func (a *StaticArray[T]) shiftRight(from int) {
	end := a.len
	if end == len(a.slots) {
		end--
	}
	copy(a.slots[from+1:end+1], a.slots[from:end])
}
