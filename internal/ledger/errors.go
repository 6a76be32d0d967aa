package ledger

import (
	"errors"
	"fmt"
)

// Expected business failures. Callers branch on these with errors.Is; they are
// normal control flow, not exceptional conditions.
var (
	ErrOutOfStock     = errors.New("item out of stock")
	ErrNoActiveRental = errors.New("no active rental")
	ErrUnknownItem    = errors.New("item not in catalog")
	ErrItemExists     = errors.New("item already in catalog")
)

// ErrInconsistency signals a broken invariant: an active record exists but the
// item refused the release. It must never occur in a healthy ledger and is
// kept distinguishable from the expected failures above so tests can assert
// its absence.
var ErrInconsistency = errors.New("ledger state inconsistent")

// Failure wraps one of the sentinel errors with the user and item it applies
// to, so callers can build a human-readable message without parsing anything.
type Failure struct {
	Reason   error
	UserID   string
	ItemName string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s (user=%s item=%s)", f.Reason, f.UserID, f.ItemName)
}

func (f *Failure) Unwrap() error { return f.Reason }

func failure(reason error, userID, itemName string) *Failure {
	return &Failure{Reason: reason, UserID: userID, ItemName: itemName}
}
