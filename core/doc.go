// Package core provides a high-performance, thread-safe in-memory referral
// Network implementation with a minimal, composable API surface.
//
// The Network is a directed acyclic graph in which an edge referrer→candidate
// records that referrer successfully referred candidate. Three structural
// rules hold at all times:
//
//   - No self-referrals: a user can never refer themselves.
//   - Unique referrer: a candidate is referred at most once, ever.
//   - Acyclicity: no sequence of referrals may loop back on itself.
//
// AddReferral validates all three rules (plus non-empty IDs) before touching
// any state, so a rejected call leaves the Network exactly as it was. Users
// come into existence implicitly with their first accepted referral; there is
// no separate registration step.
//
// Why use core.Network?
//
//   - Single writer entry point — AddReferral is the only mutation, which keeps
//     every invariant checkable in one place.
//   - Deterministic iteration — DirectReferrals(), Users(), Adjacency() all
//     return sorted results.
//   - Snapshot reads — Adjacency() copies the whole graph under one read lock,
//     so analytics traverse a consistent point-in-time view while writers
//     continue unimpeded.
//   - One sync.RWMutex guards all three internal views (candidate→referrer,
//     referrer→candidates, user set); they always move together.
//
// Core Methods:
//
//	// Mutation
//	AddReferral(referrer, candidate string) error // O(V) worst case (cycle guard)
//
//	// Query
//	DirectReferrals(user string) []string // O(d·log d), sorted copy
//	ReferrerOf(user string) (string, bool)// O(1)
//	HasUser(id string) bool               // O(1)
//	Users() []string                      // O(V·log V), sorted
//	Adjacency() map[string][]string       // O(V+E), point-in-time snapshot
//
//	// Counts
//	UserCount() int     // O(1)
//	ReferralCount() int // O(1)
//	Stats() Stats       // O(V)
//
// Errors:
//
//	ErrEmptyUserID       – zero-length referrer or candidate ID
//	ErrSelfReferral      – referrer and candidate are the same user
//	ErrDuplicateReferrer – candidate was already referred by someone
//	ErrCycle             – referral would close a directed cycle
//
// All four are rejected before any state changes, so callers may retry with
// corrected input against an unmodified Network.
package core
