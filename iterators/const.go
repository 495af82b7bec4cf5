package iterators

import (
	"github.com/adamluzsi/sequences"
)

const (
	// ErrNegativeCount is the value that will be returned when a length or count argument is negative.
	// It is reported before any element would be consumed from the source.
	ErrNegativeCount sequences.Error = "NegativeCount"
)

// UnlimitedSplits tells Split to place no upper bound on the number of splits it performs.
const UnlimitedSplits = -1
