package validate

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/oscheck/internal/config"
	"github.com/san-kum/oscheck/internal/dataset"
)

var _ = Describe("EnergyAnalyzer", func() {
	var (
		cfg *config.Config
		ea  *EnergyAnalyzer
	)

	BeforeEach(func() {
		cfg = config.Default()
		ea = NewEnergyAnalyzer(cfg)
	})

	DescribeTable("dissipated energy matches E0 within 1%",
		func(b float64) {
			tr := analyticTrajectory(cfg, b, 5000, 0.001)
			r, ok := resultByCheck(ea.Analyze(tr), "dissipated_energy")
			Expect(ok).To(BeTrue())
			Expect(r.Passed).To(BeTrue(), "%s", r.Message)
			Expect(r.Err).To(BeNumerically("<", cfg.Tolerances.Dissipation))
		},
		Entry("underdamped b=0.5", 0.5),
		Entry("near-critical b=2.0", 2.0),
		Entry("overdamped b=3.0", 3.0),
	)

	DescribeTable("trapezoid and simpson agree within 1%",
		func(b float64) {
			tr := analyticTrajectory(cfg, b, 5000, 0.001)
			r, ok := resultByCheck(ea.Analyze(tr), "quadrature_convergence")
			Expect(ok).To(BeTrue())
			Expect(r.Passed).To(BeTrue())
			Expect(r.Warning).To(BeFalse(), "%s", r.Message)
		},
		Entry("underdamped b=0.5", 0.5),
		Entry("near-critical b=2.0", 2.0),
		Entry("overdamped b=3.0", 3.0),
	)

	It("reports a non-fatal warning when quadrature rules disagree", func() {
		// three wildly spaced samples are enough to split the rules
		tr := &dataset.Trajectory{
			B: 0.5,
			T: []float64{0, 0.1, 2.0},
			X: []float64{1, 0.5, 0},
			V: []float64{0, -2, -0.1},
			E: []float64{2, 1, 0.5},
		}

		r, ok := resultByCheck(ea.Analyze(tr), "quadrature_convergence")
		Expect(ok).To(BeTrue())
		Expect(r.Warning).To(BeTrue())
		Expect(r.Passed).To(BeTrue(), "a convergence warning must not fail the run")
	})

	It("allows zero increases above the noise floor", func() {
		tr := analyticTrajectory(cfg, 0.5, 5000, 0.001)
		r, ok := resultByCheck(ea.Analyze(tr), "energy_monotonicity")
		Expect(ok).To(BeTrue())
		Expect(r.Passed).To(BeTrue(), "%s", r.Message)
	})

	It("fails monotonicity on a single increase above the noise floor", func() {
		tr := analyticTrajectory(cfg, 0.5, 5000, 0.001)
		tr.E[2500] = tr.E[2499] + 1e-6

		r, _ := resultByCheck(ea.Analyze(tr), "energy_monotonicity")
		Expect(r.Passed).To(BeFalse())
		Expect(r.Err).To(BeNumerically("~", 1e-6, 1e-7))
	})

	It("tolerates increases below the noise floor", func() {
		tr := analyticTrajectory(cfg, 0.5, 100, 0.001)
		tr.E[50] = tr.E[49] + 1e-12

		r, _ := resultByCheck(ea.Analyze(tr), "energy_monotonicity")
		Expect(r.Passed).To(BeTrue())
	})

	It("confirms asymptotic decay for strongly damped runs", func() {
		for _, b := range []float64{2.0, 3.0} {
			tr := analyticTrajectory(cfg, b, 5000, 0.001)
			results := ea.Analyze(tr)
			for _, check := range []string{"asymptotic_energy", "asymptotic_position", "asymptotic_velocity"} {
				r, ok := resultByCheck(results, check)
				Expect(ok).To(BeTrue())
				Expect(r.Passed).To(BeTrue(), "b=%.1f %s: %s", b, check, r.Message)
			}
		}
	})

	It("fails asymptotic decay when the tail has not settled", func() {
		// weakly damped and cut short: the tail still swings
		weak := analyticTrajectory(cfg, 0.1, 2000, 0.001)

		r, ok := resultByCheck(ea.Analyze(weak), "asymptotic_position")
		Expect(ok).To(BeTrue())
		Expect(r.Passed).To(BeFalse())
		Expect(math.Abs(r.Err)).To(BeNumerically(">", cfg.Asymptotic.PositionBound))
	})
})
