package validate

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/oscheck/internal/config"
)

// crossingTrajectory builds a position series with exactly n sign flips.
func crossingSeries(n int) []float64 {
	x := make([]float64, (n+1)*10)
	for i := range x {
		seg := i / 10
		v := 1.0 - 0.05*float64(seg) // shrinking amplitude, sign set below
		if seg%2 == 1 {
			v = -v
		}
		x[i] = v
	}
	return x
}

var _ = Describe("RegimeClassifier", func() {
	var rc *RegimeClassifier

	BeforeEach(func() {
		rc = NewRegimeClassifier(config.Default())
	})

	DescribeTable("classifies by oscillation count",
		func(crossings int, want DampingRegime) {
			regime, oscillations := rc.Classify(crossingSeries(crossings))
			Expect(oscillations).To(Equal(crossings / 2))
			Expect(regime).To(Equal(want))
		},
		Entry("8 crossings is underdamped", 8, Underdamped),
		Entry("2 crossings is near-critical", 2, NearCritical),
		Entry("7 crossings is near-critical (3 oscillations)", 7, NearCritical),
		Entry("1 crossing rounds down to zero oscillations", 1, OverdampedOrCritical),
		Entry("0 crossings is overdamped or critical", 0, OverdampedOrCritical),
	)

	It("classifies a decaying cosine as underdamped", func() {
		// four and a half periods: 9 crossings, 4 oscillations
		n := 4500
		x := make([]float64, n)
		for i := range x {
			t := float64(i) * 0.001
			x[i] = math.Exp(-0.3*t) * math.Cos(2*math.Pi*t)
		}

		regime, _ := rc.Classify(x)
		Expect(regime).To(Equal(Underdamped))
	})

	It("classifies a pure exponential decay as overdamped", func() {
		n := 5000
		x := make([]float64, n)
		for i := range x {
			x[i] = 2*math.Exp(-2*float64(i)*0.001) - math.Exp(-4*float64(i)*0.001)
		}

		regime, oscillations := rc.Classify(x)
		Expect(oscillations).To(BeZero())
		Expect(regime).To(Equal(OverdampedOrCritical))
	})

	It("honors configured thresholds", func() {
		cfg := config.Default()
		cfg.Regime.UnderdampedMin = 1
		rc := NewRegimeClassifier(cfg)

		regime, _ := rc.Classify(crossingSeries(4)) // 2 oscillations
		Expect(regime).To(Equal(Underdamped))
	})
})
