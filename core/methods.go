// Package core: Network method implementations.
//
// This file provides the single mutation entry point (AddReferral) and the
// thread-safe query methods on the Network type defined in types.go.
// All validation happens before any write, so rejected referrals leave no
// partial state behind. Every slice-returning query hands out a sorted copy;
// internal maps never escape.

package core

import (
	"fmt"
	"sort"
)

// AddReferral records that referrer successfully referred candidate.
// Both users are created implicitly if they were not seen before.
//
// Validation order:
//
//	ErrEmptyUserID       if either ID is empty,
//	ErrSelfReferral      if referrer == candidate,
//	ErrDuplicateReferrer if candidate was already referred,
//	ErrCycle             if referrer is reachable from candidate.
//
// On any error the Network is left unchanged.
// Complexity: O(V + E) worst case, dominated by the cycle guard.
func (n *Network) AddReferral(referrer, candidate string) error {
	// 1) Input validation: empty IDs are not allowed
	if referrer == "" || candidate == "" {
		return ErrEmptyUserID
	}
	// 2) Self-referral constraint
	if referrer == candidate {
		return fmt.Errorf("%w: %q", ErrSelfReferral, referrer)
	}

	// Acquire the write lock; every check below must see a stable graph.
	n.mu.Lock()
	defer n.mu.Unlock()

	// 3) Unique-referrer constraint
	if prev, exists := n.referrerOf[candidate]; exists {
		return fmt.Errorf("%w: %q was referred by %q", ErrDuplicateReferrer, candidate, prev)
	}
	// 4) Acyclicity constraint: the new edge referrer→candidate closes a cycle
	//    exactly when referrer is already downstream of candidate.
	if n.reachableLocked(candidate, referrer) {
		return fmt.Errorf("%w: %q is downstream of %q", ErrCycle, referrer, candidate)
	}

	// 5) Commit: all three views move together under the same critical section.
	n.users[referrer] = struct{}{}
	n.users[candidate] = struct{}{}
	n.referrerOf[candidate] = referrer
	if n.referrals[referrer] == nil {
		n.referrals[referrer] = make(map[string]struct{})
	}
	n.referrals[referrer][candidate] = struct{}{}

	return nil
}

// reachableLocked reports whether target is reachable from start by following
// referral edges downstream. Caller must hold mu (read or write).
// Complexity: O(V + E).
func (n *Network) reachableLocked(start, target string) bool {
	// 1) Iterative DFS over the referrer→candidates view; the graph is acyclic
	//    on entry, so the walk terminates without cycle bookkeeping.
	visited := make(map[string]struct{}, len(n.users))
	stack := []string{start}

	for len(stack) > 0 {
		// 2) Pop the next frontier vertex
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == target {
			return true
		}
		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}

		// 3) Push every direct referral of current
		for next := range n.referrals[current] {
			if _, seen := visited[next]; !seen {
				stack = append(stack, next)
			}
		}
	}

	return false
}

// DirectReferrals returns the users directly referred by user,
// sorted ascending for determinism. Unknown users yield an empty slice.
// The result is a copy; mutating it does not affect the Network.
// Complexity: O(d·log d), where d is the user's direct referral count.
func (n *Network) DirectReferrals(user string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]string, 0, len(n.referrals[user]))
	for candidate := range n.referrals[user] {
		out = append(out, candidate)
	}
	sort.Strings(out)

	return out
}

// ReferrerOf returns the user who referred candidate and whether such a
// referral exists. Complexity: O(1).
func (n *Network) ReferrerOf(candidate string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	referrer, ok := n.referrerOf[candidate]

	return referrer, ok
}

// HasUser reports whether id appears in any accepted referral.
// Complexity: O(1).
func (n *Network) HasUser(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, exists := n.users[id]

	return exists
}

// Users returns all user IDs in sorted order.
// Complexity: O(V·logV)
func (n *Network) Users() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	ids := make([]string, 0, len(n.users))
	for id := range n.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// UserCount returns the total number of users. O(1).
func (n *Network) UserCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.users)
}

// ReferralCount returns the total number of accepted referrals. O(1).
func (n *Network) ReferralCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.referrerOf)
}

// Adjacency returns a snapshot of the referral graph: one entry per user,
// mapping to that user's direct referrals in sorted order. Users without
// referrals map to an empty slice, so len(result) equals UserCount().
//
// The snapshot is taken under a single read lock; analytics that traverse it
// observe one consistent point in time regardless of concurrent writers.
// Complexity: O(V + E·logE)
func (n *Network) Adjacency() map[string][]string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make(map[string][]string, len(n.users))
	for id := range n.users {
		candidates := make([]string, 0, len(n.referrals[id]))
		for candidate := range n.referrals[id] {
			candidates = append(candidates, candidate)
		}
		sort.Strings(candidates)
		out[id] = candidates
	}

	return out
}

// Stats returns the current network statistics.
// A user counts as an active referrer when they have at least one direct
// referral; in an acyclic single-referrer graph that coincides with having
// any downstream referral at all.
// Complexity: O(1) for counts sourced from map sizes.
func (n *Network) Stats() Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return Stats{
		TotalUsers:      len(n.users),
		TotalReferrals:  len(n.referrerOf),
		ActiveReferrers: len(n.referrals),
	}
}
