package vectorindex

import (
	"errors"
	"math"
)

// ErrVectorLengthMismatch is returned when two vectors of different
// dimensions are compared.
var ErrVectorLengthMismatch = errors.New("vector length mismatch")

// Cosine computes cosine similarity between two vectors of equal length.
// Zero vectors yield similarity 0.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrVectorLengthMismatch
	}
	var dot float64
	var na float64
	var nb float64
	for i := 0; i < len(a); i++ {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		return 0, nil
	}
	return dot / den, nil
}
