package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const commentMarker = "#"

// Filename maps a damping coefficient to its conventional file name,
// e.g. b=0.5 -> resultados_b0.50.dat.
func Filename(dir, pattern string, b float64) string {
	return filepath.Join(dir, fmt.Sprintf(pattern, b))
}

// Load reads a trajectory file: comment lines start with '#', every data
// line carries exactly four whitespace-separated floats (t, x, v, E).
// Time must be strictly increasing.
func Load(path string) (*Trajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	tr := &Trajectory{}
	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, commentMarker) {
			tr.CommentLines++
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, &FormatError{
				Path:   path,
				Line:   lineNo,
				Reason: fmt.Sprintf("expected 4 fields, got %d", len(fields)),
			}
		}

		vals := make([]float64, 4)
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &FormatError{
					Path:   path,
					Line:   lineNo,
					Reason: fmt.Sprintf("bad float %q", field),
				}
			}
			vals[i] = v
		}

		if n := len(tr.T); n > 0 && vals[0] <= tr.T[n-1] {
			return nil, &FormatError{
				Path:   path,
				Line:   lineNo,
				Reason: fmt.Sprintf("time not strictly increasing: %g after %g", vals[0], tr.T[len(tr.T)-1]),
			}
		}

		tr.T = append(tr.T, vals[0])
		tr.X = append(tr.X, vals[1])
		tr.V = append(tr.V, vals[2])
		tr.E = append(tr.E, vals[3])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(tr.T) == 0 {
		return nil, &FormatError{Path: path, Reason: "no data lines"}
	}

	return tr, nil
}

// LoadCoefficient loads the trajectory for one damping coefficient by the
// naming convention and tags it with b.
func LoadCoefficient(dir, pattern string, b float64) (*Trajectory, error) {
	tr, err := Load(Filename(dir, pattern, b))
	if err != nil {
		return nil, err
	}
	tr.B = b
	return tr, nil
}
