package observable

import (
	"reflect"
	"testing"
)

func TestSetNotifiesListenersInOrderWithPrevious(t *testing.T) {
	v := New(1)
	var calls []string
	v.Subscribe(func(cur, prev int) {
		calls = append(calls, "a")
		if cur != 2 || prev != 1 {
			t.Fatalf("listener a got cur=%d prev=%d", cur, prev)
		}
	})
	v.Subscribe(func(cur, prev int) {
		calls = append(calls, "b")
	})

	v.Set(2)

	if !reflect.DeepEqual(calls, []string{"a", "b"}) {
		t.Fatalf("unexpected call order %v", calls)
	}
	if got := v.Get(); got != 2 {
		t.Fatalf("expected committed value 2, got %d", got)
	}
}

func TestUnsubscribeStopsDeliveryAndIsIdempotent(t *testing.T) {
	v := New("")
	count := 0
	unsubscribe := v.Subscribe(func(string, string) { count++ })
	other := v.Subscribe(func(string, string) {})

	v.Set("x")
	unsubscribe()
	unsubscribe()
	v.Set("y")

	if count != 1 {
		t.Fatalf("expected 1 delivery, got %d", count)
	}
	if v.Len() != 1 {
		t.Fatalf("expected remaining listener to survive double unsubscribe, got %d", v.Len())
	}
	other()
	if v.Len() != 0 {
		t.Fatalf("expected no listeners, got %d", v.Len())
	}
}

func TestListenerCanReadCommittedValue(t *testing.T) {
	v := New(0)
	var seen int
	v.Subscribe(func(int, int) { seen = v.Get() })

	v.Set(7)
	if seen != 7 {
		t.Fatalf("expected listener to observe committed value 7, got %d", seen)
	}
}

func TestListenerAddedDuringDispatchMissesInFlightChange(t *testing.T) {
	v := New(0)
	late := 0
	v.Subscribe(func(int, int) {
		v.Subscribe(func(int, int) { late++ })
	})

	v.Set(1)
	if late != 0 {
		t.Fatalf("late listener should not see in-flight change, got %d calls", late)
	}
	v.Set(2)
	if late != 1 {
		t.Fatalf("late listener should see the next change, got %d calls", late)
	}
}

func TestUpdateDerivesFromCurrent(t *testing.T) {
	v := New([]string{"a"})
	v.Update(func(cur []string) []string { return append([]string{"b"}, cur...) })
	if got := v.Get(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("unexpected value %v", got)
	}
}
