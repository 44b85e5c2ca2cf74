package inspect

import "errors"

// ErrInvalidLimit is returned for a limit query parameter that is not a
// positive integer.
var ErrInvalidLimit = errors.New("limit must be a positive integer")
