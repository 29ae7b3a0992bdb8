// Package simulate projects referral network growth over time and searches
// hiring levers (time horizons, referral bonuses) against those projections.
//
// What
//
//   - Simulator.Run(p, days) plays out daily referral attempts at success
//     probability p and returns the cumulative hires after each day.
//   - Simulator.RunExpected(p, days) returns the deterministic expected-value
//     series of the same process, in fractional hires.
//   - Simulator.DaysToTarget(p, target) binary-searches the smallest horizon
//     whose expected hires reach the target.
//   - BonusOptimizer.MinBonusForTarget(days, target, adoptionProb, eps)
//     binary-searches the smallest $10-rounded bonus whose adoption
//     probability meets the target within the horizon.
//   - BonusOptimizer.AnalyzeBonus packages the same search as a report with
//     cost figures instead of an error on unreachable targets.
//
// Model
//
//	A fixed cohort of referrers starts on day zero. Each day, every referrer
//	still under their lifetime capacity succeeds with probability p and adds
//	one hire. Hires do not become referrers themselves, so growth flattens
//	as the cohort saturates at InitialReferrers × Capacity.
//
//	The expected-value variant advances every under-capacity referrer by p
//	fractional hires per day. A referrer's tally can overshoot capacity by
//	less than one attempt, matching the stochastic process it averages.
//
// Determinism
//
//   - Run derives a fresh random stream from the configured seed on every
//     call: same Simulator, same arguments ⇒ identical series.
//   - RunExpected, DaysToTarget and the bonus searches involve no
//     randomness at all.
//
// Binary searches assume monotonicity: expected hires never shrink with
// more days, and adoption curves must not decrease with higher bonuses.
//
// Usage
//
//	sim, err := simulate.New(simulate.WithSeed(42))
//	if err != nil {
//	    log.Fatalf("simulate.New: %v", err)
//	}
//	series, err := sim.Run(0.3, 30)
//	if err != nil {
//	    log.Fatalf("Run: %v", err)
//	}
//	fmt.Println("hires after 30 days:", series[len(series)-1])
//
// Options
//
//   - WithInitialReferrers(k): day-zero cohort size (default 100).
//   - WithCapacity(c): lifetime referrals per referrer (default 10).
//   - WithSeed(s): fix the random stream (0 selects the stable default).
//
// Errors
//
//   - ErrOptionViolation: an invalid Option was supplied to New.
//   - ErrBadProbability: a probability (or adoption-curve output) left [0, 1].
//   - ErrNegativeDays: a negative horizon was requested.
//   - ErrNilAdoptionProb: no adoption curve was supplied.
//   - ErrBadTolerance: a non-positive tolerance was supplied.
//   - ErrTargetUnreachable: no searched value meets the target.
package simulate
