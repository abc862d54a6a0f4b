package deck

import "testing"

type recordingObserver struct {
	id      int
	order   *[]int
	updates int
}

func (r *recordingObserver) DeckUpdated(Composition) {
	r.updates++
	*r.order = append(*r.order, r.id)
}

func TestWatcher_NotifiesInRegistrationOrder(t *testing.T) {
	var order []int
	first := &recordingObserver{id: 1, order: &order}
	second := &recordingObserver{id: 2, order: &order}

	var w Watcher
	w.Attach(first)
	w.Attach(second)
	w.Attach(first) // duplicate, ignored

	w.Notify(Composition{})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected delivery order [1 2], got %v", order)
	}
}

func TestWatcher_Detach(t *testing.T) {
	var order []int
	first := &recordingObserver{id: 1, order: &order}
	second := &recordingObserver{id: 2, order: &order}

	var w Watcher
	w.Attach(first)
	w.Attach(second)
	w.Detach(first)

	w.Notify(Composition{})
	if first.updates != 0 {
		t.Fatal("detached observer must not be notified")
	}
	if second.updates != 1 {
		t.Fatalf("expected 1 update, got %d", second.updates)
	}
}
