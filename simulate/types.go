// Package simulate provides tunable options and error definitions for
// referral growth simulation and bonus planning.
package simulate

import (
	"errors"
	"fmt"
)

// Sentinel errors for simulation and bonus planning.
var (
	// ErrBadProbability is returned when a probability leaves [0, 1].
	ErrBadProbability = errors.New("simulate: probability must be within [0,1]")

	// ErrNegativeDays is returned when a negative horizon is requested.
	ErrNegativeDays = errors.New("simulate: days cannot be negative")

	// ErrNilAdoptionProb is returned when no adoption curve is supplied.
	ErrNilAdoptionProb = errors.New("simulate: adoption probability function is nil")

	// ErrBadTolerance is returned when a non-positive tolerance is supplied.
	ErrBadTolerance = errors.New("simulate: tolerance must be positive")

	// ErrTargetUnreachable is returned when no searched value meets the target.
	ErrTargetUnreachable = errors.New("simulate: target cannot be reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simulate: invalid option supplied")
)

// Simulation bounds and search granularity.
const (
	// defaultInitialReferrers is the cohort size when none is configured.
	defaultInitialReferrers = 100

	// defaultReferralCapacity caps how many hires one referrer can make.
	defaultReferralCapacity = 10

	// maxSimulationDays bounds the horizon searched by DaysToTarget.
	maxSimulationDays = 1000

	// bonusStep is the $10 granularity of bonus search results.
	bonusStep = 10

	// maxBonus bounds the bonus search space in dollars.
	maxBonus = 10000
)

// Option configures a Simulator via functional arguments.
// If an Option is invalid (e.g. non-positive cohort), it is recorded
// internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the simulation parameters.
type Options struct {
	// InitialReferrers is the number of active referrers on day zero.
	InitialReferrers int

	// Capacity is the lifetime referral limit per referrer.
	Capacity int

	// Seed drives the random stream; 0 selects the stable default seed.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - 100 initial referrers
//   - capacity of 10 referrals each
//   - the stable default seed (Seed == 0)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		InitialReferrers: defaultInitialReferrers,
		Capacity:         defaultReferralCapacity,
		Seed:             0,
		err:              nil,
	}
}

// WithInitialReferrers sets the day-zero cohort size.
//
//	k > 0:  use k referrers
//	k <= 0: invalid option → ErrOptionViolation
func WithInitialReferrers(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: InitialReferrers must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.InitialReferrers = k
	}
}

// WithCapacity sets the lifetime referral limit per referrer.
//
//	c > 0:  each referrer stops after c successful referrals
//	c <= 0: invalid option → ErrOptionViolation
func WithCapacity(c int) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: Capacity must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.Capacity = c
	}
}

// WithSeed fixes the random stream. Zero selects the stable default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// Simulator runs referral growth projections over a fixed cohort of
// referrers. All methods are read-only, so a single Simulator may be
// shared across goroutines.
type Simulator struct {
	initial  int   // day-zero cohort size
	capacity int   // lifetime referral limit per referrer
	seed     int64 // random stream seed; 0 means default
}

// New builds a Simulator from the supplied options.
// Returns ErrOptionViolation if any option recorded an invalid value.
func New(opts ...Option) (*Simulator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Simulator{
		initial:  o.InitialReferrers,
		capacity: o.Capacity,
		seed:     o.Seed,
	}, nil
}

// defaultSimulator returns a Simulator on DefaultOptions.
func defaultSimulator() *Simulator {
	return &Simulator{
		initial:  defaultInitialReferrers,
		capacity: defaultReferralCapacity,
		seed:     0,
	}
}

// BonusOptimizer searches referral-bonus levels against hiring targets
// using a Simulator's expected-growth projections.
type BonusOptimizer struct {
	sim *Simulator
}

// NewBonusOptimizer wraps a Simulator for bonus planning.
// A nil Simulator selects the default configuration.
func NewBonusOptimizer(sim *Simulator) *BonusOptimizer {
	if sim == nil {
		sim = defaultSimulator()
	}
	return &BonusOptimizer{sim: sim}
}

// BonusAnalysis reports the outcome of a bonus search in one shot.
type BonusAnalysis struct {
	// Achievable is false when no bonus within bounds meets the target.
	Achievable bool

	// MinBonus is the smallest $10-rounded bonus meeting the target.
	MinBonus int

	// TotalCost is MinBonus paid out for every targeted hire.
	TotalCost int

	// CostPerHire equals MinBonus under per-hire payout.
	CostPerHire int

	// DaysRequired echoes the analyzed horizon.
	DaysRequired int

	// TargetHires echoes the analyzed hiring target.
	TargetHires int
}
