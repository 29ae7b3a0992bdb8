// Package reach computes downstream reach over a core.Network,
// returning reach sets, transitive referral counts, and top-k rankings.
//
// What
//
//   - From(n, user) returns the Set of users transitively referred by user
//     (direct and indirect, the user excluded).
//   - TotalCount(n, user) is the size of that set.
//   - Sets(n) computes the reach set of every user over one shared snapshot.
//   - TopReferrers(n, k) ranks users by reach, descending, ties broken by
//     ascending user ID; users with zero reach are omitted.
//   - Supports an OnVisit hook for observability during traversal.
//
// Why
//
//   - "How many hires did this referrer ultimately produce?" is the basic
//     influence question; BFS answers it in O(V + E).
//   - Reach sets are the raw material for influencer selection (package cover).
//
// Determinism
//
//	Every traversal runs over a core.Adjacency() snapshot whose neighbor
//	slices are sorted, so visit order is fully reproducible, and every
//	ranked output carries a total order (count descending, ID ascending).
//
// Freshness
//
//	Results are derived from the network state at call time and are not
//	cached; call again after mutations for current values. Each entry point
//	takes exactly one snapshot, so a single call is never torn by writers.
//
// Complexity (V = |Users|, E = |Referrals|)
//
//   - From/TotalCount: O(V + E) time, O(V) memory
//   - Sets:            O(V·(V + E)) time, O(V²) memory
//   - TopReferrers:    O(V·(V + E) + V·logV) time
//
// Usage
//
//	set := reach.From(n, "alice")
//	if set.Contains("dave") {
//	    fmt.Println("alice ultimately brought dave in")
//	}
//	top := reach.TopReferrers(n, 3)
//
// Unknown users are not an error: they yield an empty Set and a zero count.
package reach
