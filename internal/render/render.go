package render

import (
	"fmt"
	"iter"

	"github.com/valyala/bytebufferpool"
)

const emptySlot = "None"

// List renders a sequence as [a, b, c] using Go-syntax values.
func List[T any](seq iter.Seq[T]) string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	b.WriteByte('[')
	i := 0
	for v := range seq {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%#v", v)
		i++
	}
	b.WriteByte(']')
	return b.String()
}

// Slots renders fixed storage where unset slots show as None.
func Slots[T any](slots []T, present func(i int) bool) string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	b.WriteByte('[')
	for i, v := range slots {
		if i > 0 {
			b.WriteString(", ")
		}
		if present(i) {
			fmt.Fprintf(b, "%#v", v)
		} else {
			b.WriteString(emptySlot)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Buckets renders one chain per bucket: [[("k", v)], [], ...].
func Buckets[V any](bucketCount int, chain func(bucket int) iter.Seq2[string, V]) string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	b.WriteByte('[')
	for i := 0; i < bucketCount; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		n := 0
		for k, v := range chain(i) {
			if n > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "(%q, %#v)", k, v)
			n++
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
