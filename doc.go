// Package refnet is your in-memory toolkit for building, querying,
// and analyzing referral networks — from the constraint-safe graph core
// to reach analytics, influencer selection and growth simulation.
//
// 🚀 What is refnet?
//
//	A modern, thread-safe library for one-to-one referral programs that brings together:
//		• Core primitives: record referrals safely under locks, with every
//		  structural rule (no self-referrals, one referrer per candidate,
//		  no cycles) enforced atomically at insertion time
//		• Reach analytics: direct and transitive referral counts, top-k rankings
//		• Influencer selection: greedy unique-reach expansion (set cover)
//		• Flow centrality: all-pairs shortest-path brokerage scores
//		• Growth planning: seeded referral simulations and bonus optimization
//
// ✨ Why choose refnet?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, atomic rejection, in-code docs & hooks
//   - Deterministic – every ranked output carries a total order; seeded RNG only
//   - Extensible – add custom hooks (OnVisit…) for observability or custom logic
//
// Under the hood, everything is organized under five subpackages:
//
//	core/       — fundamental Network type, referral constraints & thread-safe primitives
//	reach/      — BFS reach sets, total referral counts, top-k referrers
//	cover/      — greedy unique-reach expansion for influencer selection
//	centrality/ — all-pairs BFS shortest paths & flow-centrality scoring
//	simulate/   — network growth simulation & referral bonus optimization
//
// Quick ASCII example:
//
//	    A──►B──►C
//	    │
//	    └──►D
//
//	represents user A referring B and D, with B referring C in turn.
//
// Dive into the per-package docs for full examples, invariants, and the
// complexity of each operation.
//
//	go get github.com/katalvlaran/refnet
package refnet
