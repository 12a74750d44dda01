package mutate

import "fmt"

// IndexError reports a structural edit aimed at a position that is not
// currently valid. This is a caller bug (typically a stale index held
// across a previous structural edit), not a recoverable runtime condition.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}
