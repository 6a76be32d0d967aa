package domain

// Observer receives a synchronous callback whenever an item's holder list
// changes. Callbacks run on the goroutine that performed the mutation.
type Observer interface {
	ItemChanged(item *Item)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(item *Item)

func (f ObserverFunc) ItemChanged(item *Item) { f(item) }
