package sequences

// Error is a string based error implementation,
// which makes it possible to declare errors as constants.
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

const (
	// ErrNotFound is returned when a value was expected from a source, but the source was empty.
	ErrNotFound Error = "NotFound"
)
