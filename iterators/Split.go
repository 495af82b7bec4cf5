package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Split partitions the iterator into groups, scanning left to right
// and splitting at every element for which isSeparator reports true.
// Separator elements themselves are not part of any group.
//
// At most maxSplits splits are performed, so the result holds at most maxSplits+1 groups.
// Once the split budget is exhausted, every remaining element goes into the final group,
// further separators included. Pass UnlimitedSplits to place no bound on the splitting,
// any other negative maxSplits yields ErrNegativeCount before anything would be consumed.
//
// When omitEmpty is true, zero length groups are dropped from the result,
// including the leading and trailing ones caused by separators at the boundaries.
//
// An error returned by isSeparator aborts the operation and propagates unchanged,
// no partial result is retained on this path.
func Split[V any](i sequences.Iterator[V], maxSplits int, omitEmpty bool, isSeparator func(V) (bool, error)) ([][]V, error) {
	if maxSplits < 0 && maxSplits != UnlimitedSplits {
		return nil, ErrNegativeCount
	}

	defer i.Close()

	var (
		groups  [][]V
		current []V
		splits  int
	)
	flush := func() {
		if omitEmpty && len(current) == 0 {
			current = nil
			return
		}
		groups = append(groups, current)
		current = nil
	}

	for i.Next() {
		v := i.Value()

		if maxSplits == UnlimitedSplits || splits < maxSplits {
			ok, err := isSeparator(v)
			if err != nil {
				return nil, err
			}
			if ok {
				splits++
				flush()
				continue
			}
		}

		current = append(current, v)
	}

	if err := i.Err(); err != nil {
		return nil, err
	}

	flush()
	return groups, nil
}

// SplitBy partitions the iterator at every element that is equal to the given separator.
// It delegates to Split with an unlimited split budget and with empty groups omitted.
func SplitBy[V comparable](i sequences.Iterator[V], separator V) ([][]V, error) {
	return Split(i, UnlimitedSplits, true, func(v V) (bool, error) {
		return v == separator, nil
	})
}
