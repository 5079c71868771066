package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Deinterleave splits interleaved frames from src into the planes of dst.
// It returns the number of frames written, bounded by the shortest plane.
func Deinterleave(dst [][]float64, src []float64) int {
	channels := len(dst)
	if channels == 0 {
		return 0
	}

	frames := len(src) / channels
	for ch := range dst {
		if len(dst[ch]) < frames {
			frames = len(dst[ch])
		}
	}

	for ch, plane := range dst {
		for i := 0; i < frames; i++ {
			plane[i] = src[i*channels+ch]
		}
	}

	return frames
}

// Interleave writes the first frames samples of each plane into dst.
func Interleave(dst []float64, src [][]float64, frames int) {
	channels := len(src)
	for ch, plane := range src {
		for i := 0; i < frames; i++ {
			dst[i*channels+ch] = plane[i]
		}
	}
}
