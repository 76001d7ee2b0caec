package spline

import "errors"

// ErrInvalidChunking indicates ToCubicScalars was called with a control
// sequence too short, a stride outside {1, 2, 3}, or a sequence length not
// reachable from 4 by whole steps of stride.
var ErrInvalidChunking = errors.New("spline: control sequence length is incompatible with stride")
