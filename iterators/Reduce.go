package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Reduce folds the iterator into a single value, starting from the given initial one.
// The block either returns the next accumulated value,
// or the next accumulated value plus an error that aborts the folding.
func Reduce[
	V, Result any,
	BLK func(Result, V) Result |
		func(Result, V) (Result, error),
](i sequences.Iterator[V], initial Result, blk BLK) (rv Result, rErr error) {
	var do func(Result, V) (Result, error)
	switch blk := any(blk).(type) {
	case func(Result, V) Result:
		do = func(result Result, v V) (Result, error) {
			return blk(result, v), nil
		}
	case func(Result, V) (Result, error):
		do = blk
	}
	defer func() {
		cErr := i.Close()
		if rErr != nil {
			return
		}
		rErr = cErr
	}()
	var v = initial
	for i.Next() {
		var err error
		v, err = do(v, i.Value())
		if err != nil {
			return v, err
		}
	}
	return v, i.Err()
}
