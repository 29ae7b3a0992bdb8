// Package core: central Network type declarations.
//
// This file declares the Network and Stats types, sentinel errors,
// and the New constructor. Method implementations live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for referral network mutations.
var (
	// ErrEmptyUserID indicates that a referrer or candidate ID is the empty string.
	ErrEmptyUserID = errors.New("core: user ID is empty")

	// ErrSelfReferral indicates that a user attempted to refer themselves.
	ErrSelfReferral = errors.New("core: self-referral not allowed")

	// ErrDuplicateReferrer indicates that the candidate already has a referrer.
	ErrDuplicateReferrer = errors.New("core: candidate already has a referrer")

	// ErrCycle indicates that the referral would close a directed cycle.
	ErrCycle = errors.New("core: referral would create a cycle")
)

// Stats summarizes the shape of a Network at a point in time.
type Stats struct {
	// TotalUsers is the number of distinct users seen in accepted referrals.
	TotalUsers int

	// TotalReferrals is the number of accepted referral edges.
	TotalReferrals int

	// ActiveReferrers is the number of users with at least one direct referral.
	ActiveReferrers int
}

// Network is the core in-memory referral graph.
//
// It maintains three mutually consistent views of the same edge set:
// referrerOf answers "who referred this candidate?" in O(1),
// referrals answers "whom did this user refer?" in O(1),
// and users is the set of everyone seen so far.
// A single mu guards all three; AddReferral updates them atomically.
type Network struct {
	mu sync.RWMutex // guards referrerOf, referrals, users

	// Storage
	referrerOf map[string]string              // candidate ID → referrer ID
	referrals  map[string]map[string]struct{} // referrer ID → set of direct candidates
	users      map[string]struct{}            // every user appearing in an accepted referral
}

// New creates an empty Network.
// Complexity: O(1)
func New() *Network {
	return &Network{
		referrerOf: make(map[string]string),
		referrals:  make(map[string]map[string]struct{}),
		users:      make(map[string]struct{}),
	}
}
