package hashtable

type entry[V any] struct {
	key   string
	value V
}

type bucket[V any] []*entry[V]

func (b bucket[V]) lookup(key string) int {
	for i, e := range b {
		if e.key == key {
			return i
		}
	}
	return -1
}
