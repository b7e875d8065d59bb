package validate

import "fmt"

// Category groups related checks for report aggregation.
type Category string

const (
	CategoryDataset   Category = "dataset"
	CategoryPhysics   Category = "physics"
	CategoryEnergy    Category = "energy"
	CategoryStability Category = "stability"
	CategoryRegime    Category = "regime"
)

// Result is the outcome of one check on one trajectory. Results are
// immutable once produced; a failing Result never stops sibling checks.
type Result struct {
	Check    string
	Category Category
	B        float64 // damping coefficient, 0 for coefficient-independent checks
	Passed   bool
	Warning  bool // passed, but with a caveat worth surfacing
	Message  string
	Err      float64 // measured discrepancy magnitude, 0 when not applicable
}

func pass(cat Category, check string, b float64, format string, args ...any) Result {
	return Result{
		Check:    check,
		Category: cat,
		B:        b,
		Passed:   true,
		Message:  fmt.Sprintf(format, args...),
	}
}

func fail(cat Category, check string, b, measured float64, format string, args ...any) Result {
	return Result{
		Check:    check,
		Category: cat,
		B:        b,
		Err:      measured,
		Message:  fmt.Sprintf(format, args...),
	}
}

func warn(cat Category, check string, b, measured float64, format string, args ...any) Result {
	return Result{
		Check:    check,
		Category: cat,
		B:        b,
		Passed:   true,
		Warning:  true,
		Err:      measured,
		Message:  fmt.Sprintf(format, args...),
	}
}
