package contact

import "context"

// ChangeNotifier fans a "contacts changed" signal out to every connected
// subscriber. Implementations never fail the triggering call; delivery
// problems are handled (and logged) on their side of the boundary.
type ChangeNotifier interface {
	ContactsChanged(ctx context.Context)
}
