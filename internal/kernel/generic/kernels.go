// Package generic holds the pure Go float64 block kernels.
//
// Every kernel panics on mismatched slice lengths; the vector layer validates
// shapes and reports errors before calling in here.
package generic

const errLengthMismatch = "kernel: slice length mismatch"

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(errLengthMismatch)
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// SubBlock performs dst[i] = a[i] + (-b[i]).
func SubBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(errLengthMismatch)
	}
	for i := range dst {
		dst[i] = a[i] + (-b[i])
	}
}

// NegBlock performs dst[i] = -src[i].
func NegBlock(dst, src []float64) {
	if len(dst) != len(src) {
		panic(errLengthMismatch)
	}
	for i := range dst {
		dst[i] = -src[i]
	}
}

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(errLengthMismatch)
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// ScaleBlock performs dst[i] = src[i] * scalar.
func ScaleBlock(dst, src []float64, scalar float64) {
	if len(dst) != len(src) {
		panic(errLengthMismatch)
	}
	for i := range dst {
		dst[i] = src[i] * scalar
	}
}

// Dot returns sum(a[i] * b[i]).
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(errLengthMismatch)
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Sum returns sum(x[i]).
func Sum(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum
}
