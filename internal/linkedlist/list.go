package linkedlist

import (
	"iter"

	"github.com/Robin-3/data-structures/internal/errs"
	"github.com/Robin-3/data-structures/internal/render"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// SinglyLinkedList owns its nodes through forward links only. There is no
// tail pointer, so Push and Pop walk the whole list.
type SinglyLinkedList[T any] struct {
	head *node[T]
	len  int
}

func New[T any]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

func WithData[T any](value T) *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{
		head: &node[T]{value: value},
		len:  1,
	}
}

func FromSlice[T any](values []T) *SinglyLinkedList[T] {
	l := New[T]()
	for i := len(values) - 1; i >= 0; i-- {
		l.Unshift(values[i])
	}
	return l
}

func (l *SinglyLinkedList[T]) Get(index int) (T, error) {
	n, err := l.nodeAt(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

func (l *SinglyLinkedList[T]) Ptr(index int) (*T, error) {
	n, err := l.nodeAt(index)
	if err != nil {
		return nil, err
	}
	return &n.value, nil
}

func (l *SinglyLinkedList[T]) Set(index int, value T) error {
	n, err := l.nodeAt(index)
	if err != nil {
		return err
	}
	n.value = value
	return nil
}

func (l *SinglyLinkedList[T]) Unshift(value T) {
	l.head = &node[T]{value: value, next: l.head}
	l.len++
}

func (l *SinglyLinkedList[T]) Push(value T) {
	n := &node[T]{value: value}
	if l.head == nil {
		l.head = n
		l.len++
		return
	}

	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
	l.len++
}

// Insert rejects index == Len(); Push appends.
func (l *SinglyLinkedList[T]) Insert(index int, value T) error {
	if index < 0 || index >= l.len {
		return errs.ErrIndexOutOfBounds
	}
	if index == 0 {
		l.Unshift(value)
		return nil
	}

	pred, err := l.nodeAt(index - 1)
	if err != nil {
		return err
	}
	pred.next = &node[T]{value: value, next: pred.next}
	l.len++
	return nil
}

func (l *SinglyLinkedList[T]) Shift() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errs.NoSuchElement(errs.MsgListEmpty)
	}

	n := l.head
	l.head = n.next
	l.len--
	return n.value, nil
}

func (l *SinglyLinkedList[T]) Pop() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errs.NoSuchElement(errs.MsgListEmpty)
	}
	return l.Remove(l.len - 1)
}

func (l *SinglyLinkedList[T]) Remove(index int) (T, error) {
	var zero T
	if l.head == nil {
		return zero, errs.NoSuchElement(errs.MsgListEmpty)
	}
	if index < 0 || index >= l.len {
		return zero, errs.ErrIndexOutOfBounds
	}
	if index == 0 {
		return l.Shift()
	}

	pred, err := l.nodeAt(index - 1)
	if err != nil {
		return zero, err
	}
	target := pred.next
	if target == nil {
		return zero, errs.NoSuchElement(errs.MsgElementNotFound)
	}
	pred.next = target.next
	l.len--
	return target.value, nil
}

func (l *SinglyLinkedList[T]) Len() int {
	return l.len
}

func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.len == 0
}

func (l *SinglyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *SinglyLinkedList[T]) Values() []T {
	result := make([]T, 0, l.len)
	for v := range l.All() {
		result = append(result, v)
	}
	return result
}

func (l *SinglyLinkedList[T]) String() string {
	return render.List(l.All())
}

// InsertAfter links value behind the first node holding pred.
func InsertAfter[T comparable](l *SinglyLinkedList[T], pred, value T) error {
	for n := l.head; n != nil; n = n.next {
		if n.value == pred {
			n.next = &node[T]{value: value, next: n.next}
			l.len++
			return nil
		}
	}
	return errs.NoSuchElement(errs.MsgPredecessorNotFound)
}

func (l *SinglyLinkedList[T]) nodeAt(index int) (*node[T], error) {
	if index < 0 || index >= l.len {
		return nil, errs.ErrIndexOutOfBounds
	}

	i := 0
	for n := l.head; n != nil; n = n.next {
		if i == index {
			return n, nil
		}
		i++
	}
	return nil, errs.NoSuchElement(errs.MsgElementNotFound)
}
