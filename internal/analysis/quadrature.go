package analysis

// Trapezoid integrates y over t with the composite trapezoidal rule.
// t and y must have equal length; fewer than two samples integrate to 0.
func Trapezoid(t, y []float64) float64 {
	sum := 0.0
	for i := 1; i < len(t) && i < len(y); i++ {
		sum += 0.5 * (y[i] + y[i-1]) * (t[i] - t[i-1])
	}
	return sum
}

// Simpson integrates y over t with the composite Simpson rule, assuming
// approximately uniform spacing. With an even sample count the trailing
// interval falls back to the trapezoid rule.
func Simpson(t, y []float64) float64 {
	n := len(t)
	if len(y) < n {
		n = len(y)
	}
	if n < 3 {
		return Trapezoid(t[:n], y[:n])
	}

	// largest odd sample count covered by full parabolic panels
	m := n
	if m%2 == 0 {
		m--
	}

	sum := 0.0
	for i := 0; i+2 < m; i += 2 {
		h := (t[i+2] - t[i]) / 2
		sum += h / 3 * (y[i] + 4*y[i+1] + y[i+2])
	}

	if m < n {
		sum += 0.5 * (y[n-1] + y[n-2]) * (t[n-1] - t[n-2])
	}

	return sum
}

// Rectangle integrates y over t with the left rectangle rule using the
// first sampling interval as the step, matching a uniform-grid sum.
func Rectangle(t, y []float64) float64 {
	if len(t) < 2 {
		return 0
	}
	dt := t[1] - t[0]
	sum := 0.0
	for _, v := range y {
		sum += v
	}
	return sum * dt
}

// RelativeDifference returns |a-b|/|a|, with a as the reference value.
// A zero reference yields 0 when b is also zero, otherwise +Inf semantics
// are avoided by returning 1.
func RelativeDifference(a, b float64) float64 {
	if a == 0 {
		if b == 0 {
			return 0
		}
		return 1
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	if a < 0 {
		a = -a
	}
	return d / a
}
