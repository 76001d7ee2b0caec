package spline

// ToCubicScalars partitions seq into overlapping windows of length 4,
// advancing by stride. It fails with ErrInvalidChunking when seq has fewer
// than 4 elements, stride is outside {1, 2, 3}, or (len(seq)-4) isn't an
// exact multiple of stride.
func ToCubicScalars(seq []float64, stride int) ([][4]float64, error) {
	if len(seq) < 4 {
		return nil, ErrInvalidChunking
	}
	if stride < 1 || stride > 3 {
		return nil, ErrInvalidChunking
	}
	if (len(seq)-4)%stride != 0 {
		return nil, ErrInvalidChunking
	}
	chunks := make([][4]float64, 0, (len(seq)-4)/stride+1)
	for i := 0; i+4 <= len(seq); i += stride {
		chunks = append(chunks, [4]float64{seq[i], seq[i+1], seq[i+2], seq[i+3]})
	}
	return chunks, nil
}

// ToBezierSegments chunks seq for the Bezier family (stride 3).
func ToBezierSegments(seq []float64) ([][4]float64, error) {
	return ToCubicScalars(seq, StrideBezier)
}

// ToHermiteSegments chunks seq for the Hermite family (stride 2).
func ToHermiteSegments(seq []float64) ([][4]float64, error) {
	return ToCubicScalars(seq, StrideHermite)
}

// ToCardinalSegments chunks seq for the Cardinal family (stride 1).
func ToCardinalSegments(seq []float64) ([][4]float64, error) {
	return ToCubicScalars(seq, StrideCardinal)
}

// ToCatmullRomSegments chunks seq for the Catmull-Rom family (stride 1).
func ToCatmullRomSegments(seq []float64) ([][4]float64, error) {
	return ToCubicScalars(seq, StrideCatmullRom)
}

// ToBSplineSegments chunks seq for the basis family (stride 1).
func ToBSplineSegments(seq []float64) ([][4]float64, error) {
	return ToCubicScalars(seq, StrideBasis)
}

// DuplicateEndpoints prepends and appends copies extra copies of seq's
// first and last elements. Cardinal and Catmull-Rom curves use copies=1 so
// that an open control sequence still interpolates its first and last
// point (each end needs one phantom point to define the tangent there).
// Basis curves use copies=2, so that the endpoint appears three times
// total ("triplication") and the curve touches it exactly, the way a
// clamped uniform B-spline does.
func DuplicateEndpoints(seq []float64, copies int) []float64 {
	if len(seq) == 0 || copies <= 0 {
		return seq
	}
	out := make([]float64, 0, len(seq)+2*copies)
	for i := 0; i < copies; i++ {
		out = append(out, seq[0])
	}
	out = append(out, seq...)
	for i := 0; i < copies; i++ {
		out = append(out, seq[len(seq)-1])
	}
	return out
}
