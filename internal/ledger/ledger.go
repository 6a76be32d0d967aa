package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/policy"
)

// Ledger is the sole mutator of the item catalog and the rental history. All
// reservation and settlement traffic goes through Rent and Return; everything
// else only gets read-only snapshots. A single mutex makes the check-then-act
// sequences (stock check + reserve, record lookup + settle) atomic in case
// several goroutines share one ledger.
type Ledger struct {
	mu      sync.Mutex
	items   map[string]*domain.Item
	order   []string
	history []*domain.RentalRecord
	now     func() time.Time
}

// Settlement is the outcome of a successful return: the policy that was
// applied and the amount of the deposit that came back.
type Settlement struct {
	PolicyName        string              `json:"policy_name"`
	RefundAmountCents int64               `json:"refund_amount_cents"`
	Record            domain.RentalRecord `json:"record"`
}

func New() *Ledger {
	return NewWithClock(time.Now)
}

// NewWithClock builds a ledger with an injectable time source.
func NewWithClock(now func() time.Time) *Ledger {
	return &Ledger{
		items: make(map[string]*domain.Item),
		now:   now,
	}
}

// Hydrate loads a previously persisted catalog and history. Observer lists
// are not part of persisted state, so every item starts with no subscribers
// and interested parties must re-subscribe.
func (l *Ledger) Hydrate(items []*domain.Item, records []*domain.RentalRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range items {
		if _, dup := l.items[it.Name]; dup {
			continue
		}
		l.items[it.Name] = it
		l.order = append(l.order, it.Name)
	}
	l.history = append(l.history, records...)
}

// AddItem puts a new item into the catalog. Item names are unique.
func (l *Ledger) AddItem(item *domain.Item) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, dup := l.items[item.Name]; dup {
		return failure(ErrItemExists, "", item.Name)
	}
	l.items[item.Name] = item
	l.order = append(l.order, item.Name)
	return nil
}

// RemoveItem drops an item from the catalog. Rental records reference items
// by name, so existing history is untouched.
func (l *Ledger) RemoveItem(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.items[name]; !ok {
		return failure(ErrUnknownItem, "", name)
	}
	delete(l.items, name)
	for i, n := range l.order {
		if n == name {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return nil
}

// Subscribe registers an observer on the named item.
func (l *Ledger) Subscribe(name string, o domain.Observer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	item, ok := l.items[name]
	if !ok {
		return failure(ErrUnknownItem, "", name)
	}
	item.Subscribe(o)
	return nil
}

// SubscribeAll registers an observer on every cataloged item.
func (l *Ledger) SubscribeAll(o domain.Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, name := range l.order {
		l.items[name].Subscribe(o)
	}
}

// Rent reserves one unit of the named item for the user and appends the
// resulting ACTIVE record to history. The record snapshots the item's deposit
// and deadline as they are right now; later catalog edits never change it.
// Expected failures: ErrUnknownItem, ErrOutOfStock.
func (l *Ledger) Rent(user *domain.User, itemName string) (domain.RentalRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[itemName]
	if !ok {
		return domain.RentalRecord{}, failure(ErrUnknownItem, user.ID, itemName)
	}
	if !item.Reserve(user.ID) {
		return domain.RentalRecord{}, failure(ErrOutOfStock, user.ID, itemName)
	}

	now := l.now()
	rec := &domain.RentalRecord{
		ID:               uuid.NewString(),
		UserID:           user.ID,
		UserName:         user.Name,
		ItemName:         item.Name,
		RentalTime:       now,
		DueDate:          now.AddDate(0, 0, item.ReturnDeadlineDays),
		DepositPaidCents: item.DepositCents,
		Status:           domain.RecordStatusActive,
	}
	l.history = append(l.history, rec)
	return *rec, nil
}

// Return settles the oldest ACTIVE record the user has for the named item.
// The item releases one unit, the refund policy is selected from the user's
// category and whether the return instant is strictly after the due date, and
// the record's terminal status is committed together with the settlement
// values. Expected failures: ErrNoActiveRental, ErrUnknownItem. A release
// refusal while an active record exists surfaces as ErrInconsistency.
func (l *Ledger) Return(user *domain.User, itemName string) (Settlement, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var rec *domain.RentalRecord
	for _, r := range l.history {
		if r.UserID == user.ID && r.ItemName == itemName && r.Status == domain.RecordStatusActive {
			rec = r
			break
		}
	}
	if rec == nil {
		return Settlement{}, failure(ErrNoActiveRental, user.ID, itemName)
	}

	item, ok := l.items[itemName]
	if !ok {
		return Settlement{}, failure(ErrUnknownItem, user.ID, itemName)
	}
	if !item.Release(user.ID) {
		return Settlement{}, failure(ErrInconsistency, user.ID, itemName)
	}

	now := l.now()
	late := now.After(rec.DueDate)
	p := policy.SelectRefund(user.Category, late)

	rec.ReturnTime = &now
	rec.RefundAmountCents = p.Calculate(rec.DepositPaidCents)
	rec.RefundPolicy = p.Name
	if late {
		rec.Status = domain.RecordStatusReturnedLate
	} else {
		rec.Status = domain.RecordStatusReturnedOnTime
	}

	return Settlement{
		PolicyName:        p.Name,
		RefundAmountCents: rec.RefundAmountCents,
		Record:            *rec,
	}, nil
}

// Items returns a snapshot of the catalog in insertion order. Holder lists
// are copied; mutating the snapshot has no effect on the ledger.
func (l *Ledger) Items() []domain.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Item, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, snapshotItem(l.items[name]))
	}
	return out
}

// GetItem returns a snapshot of one item.
func (l *Ledger) GetItem(name string) (domain.Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	item, ok := l.items[name]
	if !ok {
		return domain.Item{}, false
	}
	return snapshotItem(item), true
}

// History returns a copy of the full record list, oldest first.
func (l *Ledger) History() []domain.RentalRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.RentalRecord, 0, len(l.history))
	for _, r := range l.history {
		out = append(out, *r)
	}
	return out
}

// HistoryForUser returns a copy of the user's records, oldest first.
func (l *Ledger) HistoryForUser(userID string) []domain.RentalRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.RentalRecord
	for _, r := range l.history {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out
}

// ActiveDueBefore returns copies of ACTIVE records whose due date is strictly
// before t. Used by the overdue sweep; it reads only, records stay ACTIVE
// until the actual return decides late versus on-time.
func (l *Ledger) ActiveDueBefore(t time.Time) []domain.RentalRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.RentalRecord
	for _, r := range l.history {
		if r.Status == domain.RecordStatusActive && r.DueDate.Before(t) {
			out = append(out, *r)
		}
	}
	return out
}

func snapshotItem(item *domain.Item) domain.Item {
	cp := *item
	cp.Holders = append([]string(nil), item.Holders...)
	return cp
}
