package session

// Reduce advances the session state by one event. It is a pure function:
// no I/O, no mutation of the input, deterministic for a given (state, event)
// pair, which keeps every transition unit-testable without a UI harness.
//
// Events that carry a generation are dropped when it does not match the
// state's current generation; they belong to a superseded request.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case SubmitStarted:
		s.Gen = e.Gen
		s.Loading = true
		s.Err = ""
		return s

	case AuthSucceeded:
		if e.Gen != s.Gen {
			return s
		}
		s.Phase = Authenticated
		s.Token = e.Token
		s.Err = ""
		return s

	case AuthFailed:
		if e.Gen != s.Gen {
			return s
		}
		return State{Phase: Unauthenticated, Err: e.Message, Gen: s.Gen}

	case IdentityLoaded:
		if e.Gen != s.Gen {
			return s
		}
		s.Phase = Authenticated
		s.User = e.User
		s.Loading = false
		return s

	case IdentityRejected:
		if e.Gen != s.Gen {
			return s
		}
		return State{Phase: Unauthenticated, Err: e.Message, Gen: s.Gen}

	case NoStoredCredential:
		s.Phase = Unauthenticated
		s.Loading = false
		return s

	case LoggedOut:
		return State{Phase: Unauthenticated, Gen: s.Gen}

	case ErrorCleared:
		s.Err = ""
		return s
	}
	return s
}
