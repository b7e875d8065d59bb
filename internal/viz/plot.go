// Package viz renders trajectories in the terminal: one asciigraph per
// series plus an ASCII phase portrait. Image-file rendering is left to
// external tooling consuming the same trajectory data.
package viz

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/oscheck/internal/dataset"
)

const (
	plotWidth  = 80
	plotHeight = 10
)

// Series plots position, velocity and energy against time.
func Series(w io.Writer, tr *dataset.Trajectory) {
	plots := []struct {
		caption string
		data    []float64
	}{
		{"position x(t)", tr.X},
		{"velocity v(t)", tr.V},
		{"mechanical energy E(t)", tr.E},
	}

	fmt.Fprintf(w, "b=%.2f, %d samples, dt=%.4fs\n\n", tr.B, tr.Len(), tr.Dt())

	for _, p := range plots {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(p.caption),
		)
		fmt.Fprintln(w, graph)
		fmt.Fprintln(w)
	}
}

// PhasePortrait draws the (x, v) trajectory as an ASCII scatter plot.
// Early points render as '.', middle as 'o', late as '*' so the spiral
// toward the origin reads off the density.
func PhasePortrait(w io.Writer, tr *dataset.Trajectory, width, height int) {
	if tr.Len() == 0 || width < 2 || height < 2 {
		return
	}

	xMin, xMax := bounds(tr.X)
	yMin, yMax := bounds(tr.V)
	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	n := tr.Len()
	for i := 0; i < n; i++ {
		px := int(float64(width-1) * (tr.X[i] - xMin) / xRange)
		py := int(float64(height-1) * (tr.V[i] - yMin) / yRange)
		py = height - 1 - py
		if px < 0 || px >= width || py < 0 || py >= height {
			continue
		}
		switch {
		case i < n/3:
			canvas[py][px] = '.'
		case i < 2*n/3:
			canvas[py][px] = 'o'
		default:
			canvas[py][px] = '*'
		}
	}

	fmt.Fprintf(w, "phase portrait (x, v), b=%.2f\n", tr.B)
	fmt.Fprintf(w, "%8.3f +", yMax)
	for i := 0; i < width; i++ {
		fmt.Fprint(w, "-")
	}
	fmt.Fprintln(w, "+")

	for _, row := range canvas {
		fmt.Fprint(w, "         |")
		fmt.Fprint(w, string(row))
		fmt.Fprintln(w, "|")
	}

	fmt.Fprintf(w, "%8.3f +", yMin)
	for i := 0; i < width; i++ {
		fmt.Fprint(w, "-")
	}
	fmt.Fprintln(w, "+")
	fmt.Fprintf(w, "          %-.3f%*s%.3f\n", xMin, width-12, "", xMax)
	fmt.Fprintln(w, "          legend: . early  o middle  * late")
}

func bounds(xs []float64) (min, max float64) {
	min, max = xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
