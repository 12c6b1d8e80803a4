package client

// Route paths understood by the host router. The client never manipulates the
// address bar itself; it only hands one of these to its navigation callback.
const (
	RouteLogin     = "/"
	RouteBills     = "#employee/bills"
	RouteNewBill   = "#employee/bill/new"
	RouteDashboard = "#admin/dashboard"
)

// NavigateFunc is the navigation callback provided by the host router.
type NavigateFunc func(path string)

// Navigation wraps the router callback and remembers the last route reached,
// so controllers that need "where the user came from" share an explicit
// context object instead of package-level state.
type Navigation struct {
	onNavigate NavigateFunc
	previous   string
}

func NewNavigation(fn NavigateFunc) *Navigation {
	return &Navigation{onNavigate: fn}
}

func (n *Navigation) Go(path string) {
	if n.onNavigate != nil {
		n.onNavigate(path)
	}
	n.previous = path
}

// Previous returns the last route navigated to, or "" when none.
func (n *Navigation) Previous() string {
	return n.previous
}
