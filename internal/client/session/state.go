// Package session holds the client's authentication state machine: a single
// State value advanced by a pure transition function over tagged events, a
// Manager that serializes credential-mutating operations, and a Guard that
// decides what protected views may show.
package session

import "github.com/taskhive/task-manager/internal/core/domain"

// Phase is the coarse authentication status.
type Phase int

const (
	// Bootstrapping means the stored credential has not been checked yet.
	Bootstrapping Phase = iota
	Unauthenticated
	Authenticated
)

func (p Phase) String() string {
	switch p {
	case Bootstrapping:
		return "bootstrapping"
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is the single client-side record of authentication status. It is a
// value type; Reduce returns a new State and never mutates shared data.
type State struct {
	Phase   Phase
	Token   string
	User    *domain.User
	Loading bool
	Err     string
	// Gen identifies the in-flight operation. Response events tagged with an
	// older generation are ignored, so a superseded request can never
	// overwrite newer state.
	Gen uint64
}

// Resolved reports whether the initial credential check has completed.
func (s State) Resolved() bool {
	return s.Phase != Bootstrapping
}
