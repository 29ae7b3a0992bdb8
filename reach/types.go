// Package reach: options and result types for reach traversals.
package reach

// Set is a set of user IDs, keyed by ID.
type Set map[string]struct{}

// Contains reports whether id is a member of the set.
func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Referrer pairs a user with their transitive reach count.
type Referrer struct {
	// ID is the user's identifier.
	ID string

	// Reach is the number of users transitively referred by ID.
	Reach int
}

// Option configures reach traversals via functional arguments.
type Option func(*Options)

// Options holds callbacks to customize traversal execution.
type Options struct {
	// OnVisit is called once per visited user, including the origin
	// (origin at depth 0, direct referrals at depth 1, and so on).
	OnVisit func(id string, depth int)
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(string, int) {},
	}
}

// WithOnVisit registers a callback to run on every visited user.
func WithOnVisit(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
