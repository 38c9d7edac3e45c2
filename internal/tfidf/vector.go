package tfidf

import "math"

// Vector is a sparse weight vector. Indices are strictly increasing.
type Vector struct {
	Indices []int     `json:"i"`
	Weights []float64 `json:"w"`
}

// Len returns the number of non-zero entries.
func (v Vector) Len() int { return len(v.Indices) }

// Norm returns the L2 norm.
func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v.Weights {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product of two sparse vectors.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Weights[i] * b.Weights[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Cosine returns the cosine similarity of a and b, or 0 if either is a zero vector.
func Cosine(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return Dot(a, b) / (na * nb)
}

// normalize scales v to unit length in place. A zero vector is left untouched.
func normalize(v Vector) Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}
	for i := range v.Weights {
		v.Weights[i] /= n
	}
	return v
}
