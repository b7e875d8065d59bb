package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/oscheck/internal/dataset"
	"github.com/san-kum/oscheck/internal/validate"
)

type Data struct {
	B       float64           `json:"damping_coefficient"`
	Samples int               `json:"samples"`
	Times   []float64         `json:"times"`
	X       []float64         `json:"position"`
	V       []float64         `json:"velocity"`
	E       []float64         `json:"energy"`
	Checks  []validate.Result `json:"checks,omitempty"`
}

// JSON writes the trajectory and its check results as indented JSON.
func JSON(w io.Writer, tr *dataset.Trajectory, results []validate.Result) error {
	data := Data{
		B:       tr.B,
		Samples: tr.Len(),
		Times:   tr.T,
		X:       tr.X,
		V:       tr.V,
		E:       tr.E,
		Checks:  results,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// CSV writes the trajectory as time,position,velocity,energy rows with a
// header line.
func CSV(w io.Writer, tr *dataset.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"time", "position", "velocity", "energy"}); err != nil {
		return err
	}

	for i := 0; i < tr.Len(); i++ {
		row := []string{
			strconv.FormatFloat(tr.T[i], 'f', 6, 64),
			strconv.FormatFloat(tr.X[i], 'g', -1, 64),
			strconv.FormatFloat(tr.V[i], 'g', -1, 64),
			strconv.FormatFloat(tr.E[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
