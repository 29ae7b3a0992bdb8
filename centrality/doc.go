// Package centrality measures which users sit on the referral paths
// between other users, via all-pairs shortest distances and flow
// centrality over a core.Network snapshot.
//
// What
//
//   - ShortestFrom(n, user) returns BFS distances (in referral hops) from
//     one user to every user they transitively referred.
//   - Flow(n, opts...) counts, per user v, the ordered pairs (s, t) with
//     s ≠ t ≠ v whose shortest path passes through v, detected by the
//     distance identity dist(s,v) + dist(v,t) == dist(s,t).
//   - Ranked(n, opts...) presents the same scores sorted by brokered
//     pairs descending, then user ID ascending.
//
// Why
//
//	Reach alone crowns the biggest upstream sources. Flow centrality finds
//	the brokers instead: cut a high-flow user and referral paths between
//	whole regions of the network disappear. Endpoints of a pair never score
//	for that pair, so pure sources and pure sinks rank low.
//
// Determinism
//
//	Distances come from BFS over ID-sorted adjacency, and every (s, t, v)
//	combination is enumerated over the same sorted user list, so repeated
//	runs over an unchanged network return identical results at any worker
//	count. Each call snapshots the network once and never observes writes
//	made after it starts.
//
// Complexity (V = users, E = referrals)
//
//   - Time:   O(V·(V+E)) for all-pairs BFS, plus O(V³) pair counting
//   - Memory: O(V²) for the distance table
//
// Usage
//
//	scores, err := centrality.Flow(n)
//	if err != nil {
//	    log.Fatalf("flow centrality: %v", err)
//	}
//	fmt.Println("alice brokers", scores["alice"], "pairs")
//
// Options
//
//   - WithWorkers(w): bound concurrent BFS passes (default 1, sequential).
//
// Errors
//
//   - ErrOptionViolation: an invalid Option was supplied.
//
// A nil network yields empty results and no error.
package centrality
