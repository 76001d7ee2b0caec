package interval

import "errors"

// ErrInvalidInterval indicates New was called with an end strictly less
// than its start.
var ErrInvalidInterval = errors.New("interval: end must be >= start")
