package session

// Decision is the gate's verdict for a navigation.
type Decision int

const (
	// RenderPublic serves the requested public view.
	RenderPublic Decision = iota
	// RenderProtected serves the requested view inside the app layout.
	RenderProtected
	// RedirectLogin sends the visitor to the login view.
	RedirectLogin
	// RedirectDashboard sends the visitor to the default landing view.
	RedirectDashboard
)

const (
	RootPath      = "/"
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Decide is the route guard: a pure function of session presence and the
// requested path. Every path other than the root and the login view
// requires a session.
func Decide(authenticated bool, path string) Decision {
	switch path {
	case RootPath:
		if authenticated {
			return RedirectDashboard
		}
		return RedirectLogin
	case LoginPath:
		if authenticated {
			return RedirectDashboard
		}
		return RenderPublic
	default:
		if authenticated {
			return RenderProtected
		}
		return RedirectLogin
	}
}
