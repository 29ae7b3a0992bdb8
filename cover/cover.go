// Package cover: greedy unique-reach influencer selection.
package cover

import (
	"sort"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/reach"
)

// Selection is one greedy pick: the chosen user and the number of
// previously uncovered users that pick contributed.
type Selection struct {
	ID   string // selected user
	Gain int    // uncovered users added by this selection
}

// Expansion computes reach sets for every user of n and runs the greedy
// unique-reach selection over them. A nil network yields an empty slice.
//
// Returns selections in pick order; gains are non-increasing.
//
// Complexity: O(V·(V+E)) for the reach sets, then O(R²·S) for the rounds.
func Expansion(n *core.Network) []Selection {
	if n == nil {
		return []Selection{}
	}
	return Select(reach.Sets(n))
}

// Select runs the greedy unique-reach selection over caller-supplied reach
// sets. Keys are candidate users; values are the users they reach. Entries
// with empty reach are never selected. The pool to cover is the union of
// all reach sets.
//
// Each round picks the candidate covering the most still-uncovered users,
// breaking ties by ascending user ID, then removes that candidate's entire
// reach set from the pool. Selection stops once the best gain hits zero.
//
// Complexity: O(R²·S), R = #candidates, S = average reach-set size.
func Select(reaches map[string]reach.Set) []Selection {
	// 1) Collect candidates with non-empty reach and the union pool.
	candidates := make(map[string]reach.Set, len(reaches))
	uncovered := make(map[string]struct{})
	for id, set := range reaches {
		if len(set) == 0 {
			continue
		}
		candidates[id] = set
		for member := range set {
			uncovered[member] = struct{}{}
		}
	}

	// 2) Freeze a sorted candidate order once: scanning in ascending ID
	//    order with a strict improvement test makes ties deterministic.
	order := make([]string, 0, len(candidates))
	for id := range candidates {
		order = append(order, id)
	}
	sort.Strings(order)

	// 3) Greedy rounds: best marginal gain wins, lowest ID on ties.
	selections := make([]Selection, 0, len(candidates))
	for len(uncovered) > 0 && len(candidates) > 0 {
		best, bestGain := "", 0
		for _, id := range order {
			set, ok := candidates[id]
			if !ok {
				continue
			}
			gain := 0
			for member := range set {
				if _, hit := uncovered[member]; hit {
					gain++
				}
			}
			if gain > bestGain {
				best, bestGain = id, gain
			}
		}
		if bestGain == 0 {
			break
		}
		// 4) Commit the pick: drop its whole reach from the pool so later
		//    rounds only reward genuinely new coverage.
		for member := range candidates[best] {
			delete(uncovered, member)
		}
		delete(candidates, best)
		selections = append(selections, Selection{ID: best, Gain: bestGain})
	}
	return selections
}
