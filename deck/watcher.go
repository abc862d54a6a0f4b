package deck

// Observer receives deck composition updates after every deal or rebuild.
type Observer interface {
	DeckUpdated(comp Composition)
}

// Watcher notifies observers of deck changes synchronously, in
// registration order. Observers must not attach or detach from inside
// a notification callback.
type Watcher struct {
	observers []Observer
}

// Attach registers an observer. Attaching the same observer twice is a
// no-op.
func (w *Watcher) Attach(o Observer) {
	for _, existing := range w.observers {
		if existing == o {
			return
		}
	}
	w.observers = append(w.observers, o)
}

// Detach removes a registered observer.
func (w *Watcher) Detach(o Observer) {
	for i, existing := range w.observers {
		if existing == o {
			w.observers = append(w.observers[:i], w.observers[i+1:]...)
			return
		}
	}
}

// Notify delivers a composition snapshot to every observer in order.
func (w *Watcher) Notify(comp Composition) {
	for _, o := range w.observers {
		o.DeckUpdated(comp)
	}
}
