package lazy

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/iterators"
)

// Cached returns a view that memoizes the elements pulled from the sequence,
// keyed by their traversal position, in an LRU cache of the given size.
// Re-traversals serve the already seen positions from the cache
// instead of running the source again,
// which pays off when producing an element of the source is expensive.
//
// The source must be multi pass: on a cache miss beyond the cached range,
// a fresh source iterator is opened and fast forwarded to the missing position.
func Cached[V any](seq sequences.Sequence[V], size int) (*CachedSequence[V], error) {
	cache, err := lru.New[int, V](size)
	if err != nil {
		return nil, err
	}
	return &CachedSequence[V]{src: seq, cache: cache}, nil
}

type CachedSequence[V any] struct {
	src   sequences.Sequence[V]
	cache *lru.Cache[int, V]
}

func (seq *CachedSequence[V]) Iterate() sequences.Iterator[V] {
	return &cachedIter[V]{seq: seq}
}

type cachedIter[V any] struct {
	seq *CachedSequence[V]

	position int
	base     sequences.Iterator[V]
	value    V
	done     bool
}

func (i *cachedIter[V]) Close() error {
	i.done = true
	if i.base == nil {
		return nil
	}
	return i.base.Close()
}

func (i *cachedIter[V]) Err() error {
	if i.base == nil {
		return nil
	}
	return i.base.Err()
}

func (i *cachedIter[V]) Next() bool {
	if i.done {
		return false
	}

	if i.base == nil {
		if v, ok := i.seq.cache.Get(i.position); ok {
			i.value = v
			i.position++
			return true
		}

		i.base = iterators.LazyDropFirst(i.seq.src.Iterate(), i.position)
	}

	if !i.base.Next() {
		i.done = true
		return false
	}

	i.value = i.base.Value()
	i.seq.cache.Add(i.position, i.value)
	i.position++
	return true
}

func (i *cachedIter[V]) Value() V {
	return i.value
}
