// Package validate judges sampled oscillator trajectories against
// analytic mechanics and numerical-soundness criteria.
//
// The checkers run independently per trajectory and never short-circuit:
//
//   - [PhysicsValidator]: theoretical constants and initial conditions
//   - [EnergyAnalyzer]: dissipation law, monotonic decay, asymptotics
//   - [StabilityChecker]: NaN/Inf and energy-sign screening
//   - [RegimeClassifier]: zero-crossing damping-regime heuristic
//
// [Runner] wires them together over the configured coefficient sweep.
// A missing data file skips its coefficient in [Runner.Sweep]; the
// strict [CheckFilesExist] treats the same condition as fatal.
package validate
