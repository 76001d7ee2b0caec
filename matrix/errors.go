package matrix

import "errors"

// ErrSingularMatrix indicates that SolveSystem was asked to solve a linear
// system whose coefficient matrix has a determinant that rounds to zero.
var ErrSingularMatrix = errors.New("matrix: coefficient matrix is singular")
