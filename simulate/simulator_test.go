package simulate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/refnet/simulate"
)

// TestNew_Defaults: the default cohort is 100 referrers with capacity 10,
// observable through the expected-value series at certain success.
func TestNew_Defaults(t *testing.T) {
	sim, err := simulate.New()
	require.NoError(t, err)

	series, err := sim.RunExpected(1, 12)
	require.NoError(t, err)
	require.Len(t, series, 12)
	assert.Equal(t, 100.0, series[0], "100 referrers hire 100 on day one")
	assert.Equal(t, 1000.0, series[9], "cohort saturates at 100×10")
	assert.Equal(t, 1000.0, series[11], "no growth past saturation")
}

func TestNew_OptionViolations(t *testing.T) {
	cases := map[string]simulate.Option{
		"zero referrers":    simulate.WithInitialReferrers(0),
		"negative capacity": simulate.WithCapacity(-5),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			sim, err := simulate.New(opt)
			require.ErrorIs(t, err, simulate.ErrOptionViolation)
			assert.Nil(t, sim)
		})
	}
}

func TestRun_ValidatesInputs(t *testing.T) {
	sim, err := simulate.New()
	require.NoError(t, err)

	for _, p := range []float64{-0.1, 1.5, math.NaN()} {
		_, rerr := sim.Run(p, 5)
		assert.ErrorIs(t, rerr, simulate.ErrBadProbability, "p=%v", p)
	}
	_, err = sim.Run(0.5, -1)
	assert.ErrorIs(t, err, simulate.ErrNegativeDays)
}

func TestRun_ZeroDays(t *testing.T) {
	sim, err := simulate.New()
	require.NoError(t, err)

	series, err := sim.Run(0.5, 0)
	require.NoError(t, err)
	require.NotNil(t, series)
	assert.Empty(t, series)
}

// TestRun_SameSeedSameSeries: repeated runs and sibling simulators on the
// same seed reproduce the series exactly.
func TestRun_SameSeedSameSeries(t *testing.T) {
	simA, err := simulate.New(simulate.WithSeed(42))
	require.NoError(t, err)
	simB, err := simulate.New(simulate.WithSeed(42))
	require.NoError(t, err)

	first, err := simA.Run(0.3, 25)
	require.NoError(t, err)
	again, err := simA.Run(0.3, 25)
	require.NoError(t, err)
	sibling, err := simB.Run(0.3, 25)
	require.NoError(t, err)

	assert.Equal(t, first, again, "same simulator must replay the identical series")
	assert.Equal(t, first, sibling, "same seed must replay the identical series")
}

func TestRun_DifferentSeedsDiverge(t *testing.T) {
	simA, err := simulate.New(simulate.WithSeed(1))
	require.NoError(t, err)
	simB, err := simulate.New(simulate.WithSeed(2))
	require.NoError(t, err)

	a, err := simA.Run(0.5, 20)
	require.NoError(t, err)
	b, err := simB.Run(0.5, 20)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// TestRun_MonotonicAndBounded: cumulative hires never shrink, daily growth
// never exceeds the cohort, and the series never exceeds saturation.
func TestRun_MonotonicAndBounded(t *testing.T) {
	sim, err := simulate.New(simulate.WithSeed(7))
	require.NoError(t, err)

	series, err := sim.Run(0.7, 30)
	require.NoError(t, err)
	require.Len(t, series, 30)

	prev := 0
	for day, total := range series {
		assert.GreaterOrEqual(t, total, prev, "day %d must not lose hires", day+1)
		assert.LessOrEqual(t, total-prev, 100, "day %d cannot exceed one hire per referrer", day+1)
		prev = total
	}
	assert.LessOrEqual(t, series[len(series)-1], 1000, "series cannot pass 100 referrers × capacity 10")
}

// TestRun_CertainSuccessSaturates: at p == 1 every active referrer hires
// daily, so the series is fully deterministic regardless of seed.
func TestRun_CertainSuccessSaturates(t *testing.T) {
	sim, err := simulate.New(simulate.WithSeed(99))
	require.NoError(t, err)

	series, err := sim.Run(1, 15)
	require.NoError(t, err)
	require.Len(t, series, 15)
	for day, total := range series {
		want := 100 * (day + 1)
		if want > 1000 {
			want = 1000
		}
		assert.Equal(t, want, total, "day %d", day+1)
	}
}

// TestRunExpected_ExactWithBinaryProbability: p = 0.5 sums exactly in
// float64, so the expected series is checkable to the last bit.
func TestRunExpected_ExactWithBinaryProbability(t *testing.T) {
	sim, err := simulate.New()
	require.NoError(t, err)

	series, err := sim.RunExpected(0.5, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 100, 150}, series)
}

// TestRunExpected_SmallCohortCapacityStop: five referrers with capacity
// three flatten after day three.
func TestRunExpected_SmallCohortCapacityStop(t *testing.T) {
	sim, err := simulate.New(
		simulate.WithInitialReferrers(5),
		simulate.WithCapacity(3),
	)
	require.NoError(t, err)

	series, err := sim.RunExpected(1, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 10, 15, 15, 15}, series)
}

// TestRunExpected_OvershootStaysBelowOneAttempt: a fractional tally may
// pass capacity by less than one day's probability, never more.
func TestRunExpected_OvershootStaysBelowOneAttempt(t *testing.T) {
	sim, err := simulate.New(
		simulate.WithInitialReferrers(1),
		simulate.WithCapacity(1),
	)
	require.NoError(t, err)

	series, err := sim.RunExpected(0.6, 3)
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.InDelta(t, 0.6, series[0], 1e-9)
	assert.InDelta(t, 1.2, series[1], 1e-9, "active below capacity, so one more attempt lands")
	assert.InDelta(t, 1.2, series[2], 1e-9, "retired at 1.2 ≥ capacity 1")
}

func TestRunExpected_ValidatesInputs(t *testing.T) {
	sim, err := simulate.New()
	require.NoError(t, err)

	_, err = sim.RunExpected(-0.5, 3)
	assert.ErrorIs(t, err, simulate.ErrBadProbability)
	_, err = sim.RunExpected(0.5, -3)
	assert.ErrorIs(t, err, simulate.ErrNegativeDays)
}

func TestDaysToTarget(t *testing.T) {
	sim, err := simulate.New()
	require.NoError(t, err)

	t.Run("certain success saturation", func(t *testing.T) {
		days, derr := sim.DaysToTarget(1, 1000)
		require.NoError(t, derr)
		assert.Equal(t, 10, days, "100 referrers × capacity 10 lands exactly on day 10")
	})

	t.Run("single hire on day one", func(t *testing.T) {
		days, derr := sim.DaysToTarget(1, 1)
		require.NoError(t, derr)
		assert.Equal(t, 1, days)
	})

	t.Run("half probability halves the pace", func(t *testing.T) {
		days, derr := sim.DaysToTarget(0.5, 100)
		require.NoError(t, derr)
		assert.Equal(t, 2, days, "expected hires are 50/day until saturation")
	})

	t.Run("zero target needs zero days", func(t *testing.T) {
		for _, target := range []int{0, -5} {
			days, derr := sim.DaysToTarget(0.5, target)
			require.NoError(t, derr)
			assert.Zero(t, days)
		}
	})

	t.Run("zero probability is unreachable", func(t *testing.T) {
		_, derr := sim.DaysToTarget(0, 1)
		assert.ErrorIs(t, derr, simulate.ErrTargetUnreachable)
	})

	t.Run("target beyond saturation is unreachable", func(t *testing.T) {
		_, derr := sim.DaysToTarget(1, 1001)
		assert.ErrorIs(t, derr, simulate.ErrTargetUnreachable)
	})

	t.Run("probability above one is rejected", func(t *testing.T) {
		_, derr := sim.DaysToTarget(1.5, 10)
		assert.ErrorIs(t, derr, simulate.ErrBadProbability)
	})
}

// TestDaysToTarget_IsMinimal: one day fewer must miss the target.
func TestDaysToTarget_IsMinimal(t *testing.T) {
	sim, err := simulate.New()
	require.NoError(t, err)

	days, err := sim.DaysToTarget(1, 1000)
	require.NoError(t, err)
	require.Equal(t, 10, days)

	series, err := sim.RunExpected(1, days-1)
	require.NoError(t, err)
	assert.Less(t, series[len(series)-1], 1000.0)
}
