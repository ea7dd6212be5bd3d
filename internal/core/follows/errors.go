package follows

import "errors"

// ErrSelfFollow is returned when a user attempts to follow themselves.
// This is the only invalid operation on the graph; duplicate follows and
// missing unfollows are no-ops, not errors.
var ErrSelfFollow = errors.New("cannot follow yourself")
