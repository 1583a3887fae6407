package core

// Clone returns a copy of src backed by a new array.
func Clone(src []float64) []float64 {
	if src == nil {
		return nil
	}

	out := make([]float64, len(src))
	copy(out, src)

	return out
}

// Reverse reverses buf in place.
func Reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
