// Package simulate: referral-bonus search over expected growth.
package simulate

import (
	"errors"
	"fmt"
	"math"
)

// probeProbability evaluates the adoption curve at one bonus level and
// validates the returned probability.
func probeProbability(adoptionProb func(bonus int) float64, bonus int) (float64, error) {
	p := adoptionProb(bonus)
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: adoption curve returned %v at bonus $%d", ErrBadProbability, p, bonus)
	}
	return p, nil
}

// reached reports whether the series' final value meets the target, with eps
// absorbing accumulated floating-point drift.
func reached(series []float64, target int, eps float64) bool {
	if len(series) == 0 {
		return false
	}
	return series[len(series)-1] >= float64(target)-eps
}

// MinBonusForTarget returns the smallest bonus, rounded down to $10, whose
// adoption probability lets the cohort reach targetHires within days.
// adoptionProb maps a bonus in dollars to a success probability and must be
// non-decreasing; eps absorbs floating-point drift when comparing expected
// hires against the target.
//
// Returns ErrTargetUnreachable when even the $10000 search bound cannot meet
// the target, and ErrNilAdoptionProb / ErrBadTolerance / ErrBadProbability
// on contract violations.
//
// Complexity: O(log(maxBonus/step) · days · InitialReferrers).
func (b *BonusOptimizer) MinBonusForTarget(days, targetHires int, adoptionProb func(bonus int) float64, eps float64) (int, error) {
	// 1) Contract checks before any simulation.
	if days <= 0 || targetHires <= 0 {
		return 0, fmt.Errorf("%w: need a positive horizon and target (days=%d, target=%d)",
			ErrTargetUnreachable, days, targetHires)
	}
	if adoptionProb == nil {
		return 0, ErrNilAdoptionProb
	}
	if math.IsNaN(eps) || eps <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrBadTolerance, eps)
	}

	// 2) Achievability at the search bound decides early.
	pMax, err := probeProbability(adoptionProb, maxBonus)
	if err != nil {
		return 0, err
	}
	series, err := b.sim.RunExpected(pMax, days)
	if err != nil {
		return 0, err
	}
	if !reached(series, targetHires, eps) {
		return 0, fmt.Errorf("%w: %d hires in %d days even at the $%d bonus cap",
			ErrTargetUnreachable, targetHires, days, maxBonus)
	}

	// 3) Lower-bound search on $10 boundaries; both bounds stay multiples
	//    of bonusStep, so the floor keeps every probe on the grid.
	left, right := 0, maxBonus
	for left < right {
		mid := (left + right) / 2
		mid -= mid % bonusStep
		p, perr := probeProbability(adoptionProb, mid)
		if perr != nil {
			return 0, perr
		}
		series, err = b.sim.RunExpected(p, days)
		if err != nil {
			return 0, err
		}
		if reached(series, targetHires, eps) {
			right = mid
		} else {
			left = mid + bonusStep
		}
	}

	// 4) Verify the candidate; monotonicity is assumed, not enforced.
	p, err := probeProbability(adoptionProb, left)
	if err != nil {
		return 0, err
	}
	series, err = b.sim.RunExpected(p, days)
	if err != nil {
		return 0, err
	}
	if !reached(series, targetHires, eps) {
		return 0, fmt.Errorf("%w: search converged to $%d without meeting %d hires",
			ErrTargetUnreachable, left, targetHires)
	}
	return left, nil
}

// AnalyzeBonus runs MinBonusForTarget and packages the outcome as a report.
// An unreachable target yields Achievable == false with no error; contract
// violations (nil curve, bad tolerance, bad probability) still error.
func (b *BonusOptimizer) AnalyzeBonus(days, targetHires int, adoptionProb func(bonus int) float64, eps float64) (BonusAnalysis, error) {
	bonus, err := b.MinBonusForTarget(days, targetHires, adoptionProb, eps)
	if err != nil {
		if errors.Is(err, ErrTargetUnreachable) {
			return BonusAnalysis{
				Achievable:   false,
				DaysRequired: days,
				TargetHires:  targetHires,
			}, nil
		}
		return BonusAnalysis{}, err
	}
	return BonusAnalysis{
		Achievable:   true,
		MinBonus:     bonus,
		TotalCost:    bonus * targetHires,
		CostPerHire:  bonus,
		DaysRequired: days,
		TargetHires:  targetHires,
	}, nil
}
