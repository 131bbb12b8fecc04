package session

// Decision is what a protected view should do for a given session state.
type Decision int

const (
	// ShowLoading covers bootstrap and in-flight transitions; protected
	// content must not flash before identity resolution completes.
	ShowLoading Decision = iota
	RedirectToLogin
	Render
)

func (d Decision) String() string {
	switch d {
	case ShowLoading:
		return "loading"
	case RedirectToLogin:
		return "redirect-to-login"
	case Render:
		return "render"
	default:
		return "unknown"
	}
}

// Guard is a pure function of the session state. Content renders only after
// the credential check has resolved to a live identity.
func Guard(s State) Decision {
	if !s.Resolved() || s.Loading {
		return ShowLoading
	}
	if s.User == nil {
		return RedirectToLogin
	}
	return Render
}
