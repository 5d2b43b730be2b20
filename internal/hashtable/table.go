package hashtable

import (
	"errors"
	"iter"

	"github.com/Robin-3/data-structures/internal/errs"
	"github.com/Robin-3/data-structures/internal/render"
)

var ErrInvalidBucketCount = errors.New("bucket count must be positive")

// Table maps string keys to values with separate chaining. The bucket count
// only changes through Rehash; there is no load factor trigger.
type Table[V any] struct {
	buckets []bucket[V]
	entries int
}

func New[V any](bucketCount int) (*Table[V], error) {
	if bucketCount <= 0 {
		return nil, ErrInvalidBucketCount
	}
	return &Table[V]{
		buckets: make([]bucket[V], bucketCount),
	}, nil
}

func MustNew[V any](bucketCount int) *Table[V] {
	t, err := New[V](bucketCount)
	if err != nil {
		panic(err)
	}
	return t
}

// Hash sums the key's bytes with wraparound. It collides easily on purpose.
func Hash(key string) uint {
	var h uint
	for i := 0; i < len(key); i++ {
		h += uint(key[i])
	}
	return h
}

func (t *Table[V]) Get(key string) (V, error) {
	e := t.find(key)
	if e == nil {
		var zero V
		return zero, errs.ErrKeyNotInitialized
	}
	return e.value, nil
}

// Ptr returns a pointer to the stored value. It stays valid across Rehash.
func (t *Table[V]) Ptr(key string) (*V, error) {
	e := t.find(key)
	if e == nil {
		return nil, errs.ErrKeyNotInitialized
	}
	return &e.value, nil
}

// Set overwrites an existing value; it never creates an entry.
func (t *Table[V]) Set(key string, value V) error {
	e := t.find(key)
	if e == nil {
		return errs.ErrKeyNotInitialized
	}
	e.value = value
	return nil
}

func (t *Table[V]) Insert(key string, value V) error {
	idx := t.index(key)
	if t.buckets[idx].lookup(key) >= 0 {
		return errs.ErrDuplicateKey
	}
	t.buckets[idx] = append(t.buckets[idx], &entry[V]{key: key, value: value})
	t.entries++
	return nil
}

func (t *Table[V]) Remove(key string) (V, error) {
	idx := t.index(key)
	chain := t.buckets[idx]
	i := chain.lookup(key)
	if i < 0 {
		var zero V
		return zero, errs.ErrKeyNotInitialized
	}

	e := chain[i]
	copy(chain[i:], chain[i+1:])
	chain[len(chain)-1] = nil
	t.buckets[idx] = chain[:len(chain)-1]
	t.entries--
	return e.value, nil
}

func (t *Table[V]) Contains(key string) bool {
	return t.find(key) != nil
}

func (t *Table[V]) EntriesLen() int {
	return t.entries
}

// BucketsLen counts buckets that hold at least one entry.
func (t *Table[V]) BucketsLen() int {
	used := 0
	for _, b := range t.buckets {
		if len(b) > 0 {
			used++
		}
	}
	return used
}

func (t *Table[V]) BucketCount() int {
	return len(t.buckets)
}

func (t *Table[V]) IsEmpty() bool {
	return t.entries == 0
}

// Rehash rebuilds the table with bucketCount buckets, reinserting entries
// bucket by bucket in chain order.
func (t *Table[V]) Rehash(bucketCount int) error {
	if bucketCount <= 0 {
		return ErrInvalidBucketCount
	}

	old := t.buckets
	t.buckets = make([]bucket[V], bucketCount)
	for _, b := range old {
		for _, e := range b {
			idx := t.index(e.key)
			t.buckets[idx] = append(t.buckets[idx], e)
		}
	}
	return nil
}

// All yields every pair in bucket order, then chain order.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, b := range t.buckets {
			for _, e := range b {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (t *Table[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (t *Table[V]) String() string {
	return render.Buckets(len(t.buckets), t.chain)
}

func (t *Table[V]) chain(idx int) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, e := range t.buckets[idx] {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

func (t *Table[V]) index(key string) int {
	return int(Hash(key) % uint(len(t.buckets)))
}

func (t *Table[V]) find(key string) *entry[V] {
	b := t.buckets[t.index(key)]
	if i := b.lookup(key); i >= 0 {
		return b[i]
	}
	return nil
}
