// Package reach implements breadth-first reach computation over a
// core.Network: reach sets, transitive counts, and top-k referrer rankings.
package reach

import (
	"sort"

	"github.com/katalvlaran/refnet/core"
)

// queueItem pairs a user ID with its BFS depth from the origin.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for one reach computation.
type walker struct {
	adj   map[string][]string
	opts  Options
	queue []queueItem
	seen  map[string]struct{}
	set   Set
}

// From returns the set of users transitively referred by user: everyone
// reachable by following referral edges downstream, the origin excluded.
// Unknown users (and nil networks) yield an empty Set.
// Complexity: O(V + E).
func From(n *core.Network, user string, opts ...Option) Set {
	// Build options; invalid hooks are simply ignored by the With* setters.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if n == nil {
		return Set{}
	}

	return fromAdjacency(n.Adjacency(), user, o)
}

// TotalCount returns the number of users transitively referred by user
// (direct and indirect). Unknown users yield 0.
// Complexity: O(V + E).
func TotalCount(n *core.Network, user string, opts ...Option) int {
	return len(From(n, user, opts...))
}

// Sets returns the reach set of every user, all computed over one shared
// snapshot so the results are mutually consistent.
// Complexity: O(V·(V + E)).
func Sets(n *core.Network) map[string]Set {
	if n == nil {
		return map[string]Set{}
	}
	adj := n.Adjacency()
	o := DefaultOptions()

	out := make(map[string]Set, len(adj))
	for id := range adj {
		out[id] = fromAdjacency(adj, id, o)
	}

	return out
}

// TopReferrers returns up to k users ranked by transitive reach, descending,
// with ties broken by ascending user ID. Users with zero reach are omitted,
// so fewer than k entries may be returned. k ≤ 0 yields an empty slice.
// Complexity: O(V·(V + E) + V·logV).
func TopReferrers(n *core.Network, k int) []Referrer {
	out := make([]Referrer, 0)
	if n == nil || k <= 0 {
		return out
	}

	// 1) One snapshot for every per-user traversal
	adj := n.Adjacency()
	o := DefaultOptions()

	// 2) Collect nonzero reach counts
	for id := range adj {
		if count := len(fromAdjacency(adj, id, o)); count > 0 {
			out = append(out, Referrer{ID: id, Reach: count})
		}
	}

	// 3) Total order: reach descending, then ID ascending
	sort.Slice(out, func(i, j int) bool {
		if out[i].Reach != out[j].Reach {
			return out[i].Reach > out[j].Reach
		}
		return out[i].ID < out[j].ID
	})

	// 4) Truncate to k
	if k < len(out) {
		out = out[:k]
	}

	return out
}

// fromAdjacency runs the BFS over a prepared adjacency snapshot.
func fromAdjacency(adj map[string][]string, user string, o Options) Set {
	set := make(Set)
	// Unknown origin: nothing to walk.
	if _, ok := adj[user]; !ok {
		return set
	}

	w := &walker{
		adj:   adj,
		opts:  o,
		queue: make([]queueItem, 0, len(adj)),
		seen:  make(map[string]struct{}, len(adj)),
		set:   set,
	}
	w.enqueue(user, 0)
	w.loop()

	return w.set
}

// enqueue marks id seen and adds it to the queue.
func (w *walker) enqueue(id string, depth int) {
	w.seen[id] = struct{}{}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// loop processes the queue until empty, visiting each user exactly once and
// recording every user except the origin into the reach set.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.opts.OnVisit(item.id, item.depth)
		if item.depth > 0 {
			w.set[item.id] = struct{}{}
		}

		// Neighbor slices in the snapshot are sorted, so enqueue order
		// (and therefore hook order) is reproducible.
		for _, next := range w.adj[item.id] {
			if _, ok := w.seen[next]; ok {
				continue
			}
			w.enqueue(next, item.depth+1)
		}
	}
}
