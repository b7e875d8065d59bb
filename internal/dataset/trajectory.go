package dataset

// Trajectory holds one sampled run of the oscillator for a single damping
// coefficient: time, position, velocity and mechanical energy, all the
// same length. It is loaded once per analysis pass and never mutated.
type Trajectory struct {
	B float64 // damping coefficient the file was generated with

	T []float64
	X []float64
	V []float64
	E []float64

	CommentLines int // header lines skipped during load
}

func (tr *Trajectory) Len() int { return len(tr.T) }

// Dt returns the first sampling interval, or 0 for fewer than two samples.
func (tr *Trajectory) Dt() float64 {
	if len(tr.T) < 2 {
		return 0
	}
	return tr.T[1] - tr.T[0]
}

// Tail returns the final portion of the sample range by index count.
// fraction 0.25 yields the last quarter. The returned slices alias the
// trajectory's storage.
func (tr *Trajectory) Tail(fraction float64) (x, v, e []float64) {
	n := tr.Len()
	start := n - int(float64(n)*fraction)
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	return tr.X[start:], tr.V[start:], tr.E[start:]
}
