// Package cover selects influencers by greedy unique-reach expansion:
// the smallest-effort ordering of referrers that still covers everyone
// reachable in the network.
//
// What
//
//   - Expansion(n) runs the selection over the live network's reach sets.
//   - Select(reaches) runs the same greedy loop over caller-supplied reach
//     sets, for pipelines that already hold them (or want to adjust them).
//   - Each Selection records the user and the marginal gain at the moment
//     of selection: how many not-yet-covered users that pick contributed.
//
// Why
//
//	Raw reach double-counts audiences: two big referrers may funnel the same
//	people. Picking by marginal gain (classic greedy set cover) yields a
//	short list whose coverage does not overlap.
//
// Algorithm
//
//  1. Candidates are users with non-empty reach; the pool to cover is the
//     union of all reach sets (users nobody reaches need no covering).
//  2. Each round selects the candidate adding the most uncovered users;
//     ties break by ascending user ID.
//  3. The selected user's entire reach set leaves the pool, the user leaves
//     the candidate set, and the round repeats.
//  4. Selection stops when the pool is empty or the best gain is zero.
//
// Marginal gains never increase from one round to the next, so the returned
// slice is simultaneously in selection order and sorted by gain descending.
//
// Complexity (R = #candidates, S = average reach-set size)
//
//   - Time:   O(R²·S) for the greedy rounds (plus reach computation in Expansion)
//   - Memory: O(R·S)
//
// Usage
//
//	picks := cover.Expansion(n)
//	for _, sel := range picks {
//	    fmt.Printf("%s adds %d new users\n", sel.ID, sel.Gain)
//	}
//
// An empty network (or reach-set map) yields an empty, non-nil slice.
package cover
