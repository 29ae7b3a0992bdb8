// Package simulate: daily growth runs and horizon search.
package simulate

import (
	"fmt"
	"math"
)

// Run plays out days of stochastic referral growth at success probability p
// and returns cumulative hires after each day (len == days). Day zero is not
// included; days == 0 yields an empty, non-nil series.
//
// Each call derives a fresh random stream from the configured seed, so the
// same Simulator and arguments always produce the identical series.
//
// Complexity: O(days · InitialReferrers).
func (s *Simulator) Run(p float64, days int) ([]int, error) {
	// 1) Validate inputs before any simulation work.
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadProbability, p)
	}
	if days < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeDays, days)
	}

	// 2) Fresh deterministic stream per call.
	rng := rngFromSeed(s.seed)

	// 3) Daily attempts; a referrer retires once at capacity.
	counts := make([]int, s.initial)
	series := make([]int, 0, days)
	total := 0
	for day := 0; day < days; day++ {
		for i := range counts {
			if counts[i] >= s.capacity {
				continue
			}
			if rng.Float64() < p {
				counts[i]++
				total++
			}
		}
		series = append(series, total)
	}
	return series, nil
}

// RunExpected returns the expected-value series of Run: cumulative expected
// hires after each day, in fractional hires. Every under-capacity referrer
// advances by p per day, so a tally may overshoot capacity by less than one
// attempt, exactly like the stochastic process it averages.
//
// Complexity: O(days · InitialReferrers).
func (s *Simulator) RunExpected(p float64, days int) ([]float64, error) {
	// 1) Same input contract as Run.
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadProbability, p)
	}
	if days < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeDays, days)
	}

	// 2) Fractional per-referrer tallies; no randomness involved.
	counts := make([]float64, s.initial)
	series := make([]float64, 0, days)
	var total float64
	for day := 0; day < days; day++ {
		for i := range counts {
			if counts[i] >= float64(s.capacity) {
				continue
			}
			counts[i] += p
			total += p
		}
		series = append(series, total)
	}
	return series, nil
}

// DaysToTarget binary-searches the smallest horizon whose expected hires
// reach target. A target of zero or less needs no days at all. Returns
// ErrTargetUnreachable when even maxSimulationDays cannot meet the target
// (zero success probability included).
//
// Complexity: O(log(maxDays) · maxDays · InitialReferrers).
func (s *Simulator) DaysToTarget(p float64, target int) (int, error) {
	// 1) Degenerate targets and probabilities first.
	if target <= 0 {
		return 0, nil
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: got %v", ErrBadProbability, p)
	}
	if p == 0 {
		return 0, fmt.Errorf("%w: zero success probability cannot yield %d hires",
			ErrTargetUnreachable, target)
	}

	// 2) Lower-bound search over the horizon; expected hires never shrink
	//    with more days, so the predicate is monotone.
	left, right := 1, maxSimulationDays
	for left < right {
		mid := (left + right) / 2
		series, err := s.RunExpected(p, mid)
		if err != nil {
			return 0, err
		}
		if reached(series, target, 0) {
			right = mid
		} else {
			left = mid + 1
		}
	}

	// 3) Verify the candidate; the search may simply have hit the cap.
	series, err := s.RunExpected(p, left)
	if err != nil {
		return 0, err
	}
	if !reached(series, target, 0) {
		return 0, fmt.Errorf("%w: expected hires stay below %d within %d days",
			ErrTargetUnreachable, target, maxSimulationDays)
	}
	return left, nil
}
