package domain

// Item is a pool of identical rentable units. Holders lists the user IDs
// currently holding one unit each; available stock is derived from it rather
// than tracked separately so the holder list stays the single source of truth.
type Item struct {
	Name               string   `json:"name"`
	MaxStock           int      `json:"max_stock"`
	BaseFeeCents       int64    `json:"base_fee_cents"`
	DepositCents       int64    `json:"deposit_cents"`
	ReturnDeadlineDays int      `json:"return_deadline_days"`
	Holders            []string `json:"holders"`

	// Observer registrations are runtime-only. They are never persisted and
	// start empty after an item is reconstructed from storage.
	observers []Observer
}

func NewItem(name string, initialStock int, baseFeeCents, depositCents int64, returnDeadlineDays int) *Item {
	return &Item{
		Name:               name,
		MaxStock:           initialStock,
		BaseFeeCents:       baseFeeCents,
		DepositCents:       depositCents,
		ReturnDeadlineDays: returnDeadlineDays,
		Holders:            []string{},
	}
}

// CurrentStock returns the number of unreserved units.
func (i *Item) CurrentStock() int {
	return i.MaxStock - len(i.Holders)
}

// Reserve hands one unit to userID. It fails without any state change when no
// stock is left. On success every registered observer is notified before
// Reserve returns. The same user may hold several units as long as stock
// allows it.
func (i *Item) Reserve(userID string) bool {
	if i.CurrentStock() <= 0 {
		return false
	}
	i.Holders = append(i.Holders, userID)
	i.notifyObservers()
	return true
}

// Release takes one unit back from userID. It fails without any state change
// when the user holds no unit of this item.
func (i *Item) Release(userID string) bool {
	for idx, h := range i.Holders {
		if h == userID {
			i.Holders = append(i.Holders[:idx], i.Holders[idx+1:]...)
			i.notifyObservers()
			return true
		}
	}
	return false
}

// Holds reports whether userID currently holds at least one unit.
func (i *Item) Holds(userID string) bool {
	for _, h := range i.Holders {
		if h == userID {
			return true
		}
	}
	return false
}

// Subscribe registers an observer for availability changes. The item keeps a
// non-owning reference only; callers must re-subscribe after the item is
// reloaded from storage.
func (i *Item) Subscribe(o Observer) {
	i.observers = append(i.observers, o)
}

func (i *Item) notifyObservers() {
	for _, o := range i.observers {
		o.ItemChanged(i)
	}
}
