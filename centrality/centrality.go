// Package centrality: all-pairs shortest paths and flow centrality.
package centrality

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/refnet/core"
)

// unreachable marks pairs with no referral path in the distance table.
const unreachable = -1

// engine holds one all-pairs computation over a frozen adjacency snapshot.
type engine struct {
	users []string       // sorted user IDs; position == row/column in dist
	index map[string]int // user ID → position in users
	next  [][]int        // index-based adjacency, ascending per row
	dist  [][]int        // dist[s][t] in hops; unreachable when no path
}

// newEngine converts an adjacency snapshot into index-based form.
func newEngine(adj map[string][]string) *engine {
	// 1) Sorted user list fixes row/column order for every pass.
	users := make([]string, 0, len(adj))
	for id := range adj {
		users = append(users, id)
	}
	sort.Strings(users)

	index := make(map[string]int, len(users))
	for i, id := range users {
		index[id] = i
	}

	// 2) Translate child lists to positions; sorted IDs keep rows ascending.
	next := make([][]int, len(users))
	for i, id := range users {
		children := adj[id]
		row := make([]int, len(children))
		for j, child := range children {
			row[j] = index[child]
		}
		next[i] = row
	}

	return &engine{
		users: users,
		index: index,
		next:  next,
		dist:  make([][]int, len(users)),
	}
}

// bfsFrom computes hop distances from one source over the frozen snapshot.
// Complexity: O(V+E).
func (e *engine) bfsFrom(src int) []int {
	dist := make([]int, len(e.users))
	for i := range dist {
		dist[i] = unreachable
	}
	dist[src] = 0

	queue := make([]int, 1, len(e.users))
	queue[0] = src
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, nb := range e.next[cur] {
			if dist[nb] == unreachable {
				dist[nb] = dist[cur] + 1
				queue = append(queue, nb)
			}
		}
	}
	return dist
}

// computeDistances fills the table, one BFS per source. workers > 1 runs
// sources concurrently; each goroutine writes only its own row.
func (e *engine) computeDistances(workers int) {
	if workers <= 1 {
		for i := range e.users {
			e.dist[i] = e.bfsFrom(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range e.users {
		i := i // per-iteration copy: goroutines must not share the row index under pre-1.22 loopvar semantics
		g.Go(func() error {
			e.dist[i] = e.bfsFrom(i)
			return nil
		})
	}
	_ = g.Wait() // per-source BFS never fails
}

// onShortestPath reports whether v lies on a shortest s→t path: both legs
// must be reachable and their hop counts must sum to the s→t distance.
func (e *engine) onShortestPath(s, t, v int) bool {
	dsv, dvt, dst := e.dist[s][v], e.dist[v][t], e.dist[s][t]
	if dsv == unreachable || dvt == unreachable || dst == unreachable {
		return false
	}
	return dsv+dvt == dst
}

// countFlow tallies, per intermediary v, the ordered reachable pairs (s, t)
// whose shortest path runs through v. Endpoints never score.
func (e *engine) countFlow() map[string]int {
	scores := make(map[string]int, len(e.users))
	for _, id := range e.users {
		scores[id] = 0
	}

	for s := range e.users {
		for t := range e.users {
			if s == t || e.dist[s][t] == unreachable {
				continue
			}
			for v := range e.users {
				if v == s || v == t {
					continue
				}
				if e.onShortestPath(s, t, v) {
					scores[e.users[v]]++
				}
			}
		}
	}
	return scores
}

// ShortestFrom returns BFS distances, in referral hops, from user to every
// user they transitively referred. The origin maps to 0; users with no path
// from the origin are absent. Unknown users and nil networks yield an empty,
// non-nil map.
//
// Complexity: O(V+E).
func ShortestFrom(n *core.Network, user string) map[string]int {
	out := make(map[string]int)
	if n == nil {
		return out
	}

	e := newEngine(n.Adjacency())
	src, ok := e.index[user]
	if !ok {
		return out
	}

	for i, d := range e.bfsFrom(src) {
		if d != unreachable {
			out[e.users[i]] = d
		}
	}
	return out
}

// Flow computes flow centrality for every user of n: the number of ordered
// (source, target) pairs whose shortest referral path passes through the
// user as a strict intermediary. Every user appears in the result, zero
// scores included. A nil network yields an empty map and no error.
//
// Complexity: O(V·(V+E)) for distances, plus O(V³) pair counting.
func Flow(n *core.Network, opts ...Option) (map[string]int, error) {
	// 1) Apply options and surface any recorded violation.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Trivial store: nothing to broker.
	if n == nil {
		return map[string]int{}, nil
	}

	// 3) One snapshot feeds every pass; writes after this point are invisible.
	e := newEngine(n.Adjacency())

	// 4) All-pairs distance table, optionally bounded-parallel.
	e.computeDistances(o.Workers)

	// 5) Tally brokered pairs per intermediary.
	return e.countFlow(), nil
}

// Ranked returns flow centrality as a list sorted by brokered pairs
// descending, ties by ascending user ID. Zero scorers are included, so the
// list always names every user of the network.
func Ranked(n *core.Network, opts ...Option) ([]Score, error) {
	scores, err := Flow(n, opts...)
	if err != nil {
		return nil, err
	}

	ranked := make([]Score, 0, len(scores))
	for id, pairs := range scores {
		ranked = append(ranked, Score{ID: id, Pairs: pairs})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Pairs != ranked[j].Pairs {
			return ranked[i].Pairs > ranked[j].Pairs
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked, nil
}
