package ecs

import (
	"errors"
	"testing"
)

// stub components used only in tests
type testComp struct{ val int }

func (testComp) Type() ComponentType { return 1 }

type otherComp struct{}

func (otherComp) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
}

func TestAddAndLookupComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 42})

	tc, ok := Lookup[testComp](w, id)
	if !ok {
		t.Fatal("expected component, got none")
	}
	if tc.val != 42 {
		t.Fatalf("expected val=42, got %d", tc.val)
	}
	if _, ok := Lookup[otherComp](w, id); ok {
		t.Fatal("Lookup returned a component that was never added")
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 7})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after DestroyEntity")
	}
}

func TestReusedSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	w.Add(old, testComp{val: 1})
	w.DestroyEntity(old)

	reused := w.CreateEntity()
	if reused.Index() != old.Index() {
		t.Fatalf("expected slot %d to be reused, got %d", old.Index(), reused.Index())
	}
	if reused.Generation() == old.Generation() {
		t.Fatal("reused slot must carry a new generation")
	}
	if w.Alive(old) {
		t.Fatal("stale id must not resolve to the new entity")
	}
	w.Add(old, testComp{val: 99})
	if w.Has(reused, ComponentType(1)) {
		t.Fatal("Add through a stale id leaked onto the new entity")
	}
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()

	// entity with both A and B
	both := w.CreateEntity()
	w.Add(both, testComp{})
	w.Add(both, otherComp{})

	// entity with only A
	onlyA := w.CreateEntity()
	w.Add(onlyA, testComp{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0] != both {
		t.Fatalf("expected entity %v in results, got %v", both, results[0])
	}

	without := w.Select(ComponentType(1)).Without(ComponentType(2)).IDs()
	if len(without) != 1 || without[0] != onlyA {
		t.Fatalf("Without filter = %v; want [%v]", without, onlyA)
	}
}

func TestQueryCreationOrder(t *testing.T) {
	w := NewWorld()
	var want []EntityID
	for i := 0; i < 20; i++ {
		id := w.CreateEntity()
		w.Add(id, testComp{val: i})
		want = append(want, id)
	}
	// Punch a hole and refill it: the refilled slot goes to the back.
	w.DestroyEntity(want[3])
	refill := w.CreateEntity()
	w.Add(refill, testComp{})
	want = append(append(want[:3:3], want[4:]...), refill)

	got := w.Query(ComponentType(1))
	if len(got) != len(want) {
		t.Fatalf("got %d entities; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %v; want %v", i, got[i], want[i])
		}
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 5})

	w.Remove(id, ComponentType(1))

	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be nil after Remove")
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	// Removing a component type that was never added must not panic.
	w.Remove(id, ComponentType(99))
}

func TestHasComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false before Add")
	}
	w.Add(id, testComp{val: 1})
	if !w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return true after Add")
	}
	w.Remove(id, ComponentType(1))
	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false after Remove")
	}
}

func TestQueryExcludesDeadEntities(t *testing.T) {
	w := NewWorld()
	alive := w.CreateEntity()
	w.Add(alive, testComp{})

	dead := w.CreateEntity()
	w.Add(dead, testComp{})
	w.DestroyEntity(dead)

	results := w.Query(ComponentType(1))
	for _, id := range results {
		if id == dead {
			t.Fatal("Query returned a destroyed entity")
		}
	}
	if len(results) != 1 || results[0] != alive {
		t.Fatalf("expected only the alive entity; got %v", results)
	}
}

func TestQueueDestroyDefersRemoval(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 3})

	w.QueueDestroy(id)
	w.QueueDestroy(id)
	if !w.Alive(id) || !w.Pending(id) {
		t.Fatal("queued entity must stay alive and pending until Flush")
	}
	if tc, ok := Lookup[testComp](w, id); !ok || tc.val != 3 {
		t.Fatal("queued entity must stay readable until Flush")
	}

	if n := w.Flush(); n != 1 {
		t.Fatalf("Flush removed %d entities; want 1", n)
	}
	if w.Alive(id) || w.Pending(id) {
		t.Fatal("entity must be gone after Flush")
	}
	if n := w.Flush(); n != 0 {
		t.Fatalf("second Flush removed %d entities; want 0", n)
	}
}

func TestSingle(t *testing.T) {
	w := NewWorld()
	if _, err := w.Single(ComponentType(1)); !errors.Is(err, ErrMissingSingleton) {
		t.Fatalf("zero matches: err = %v; want ErrMissingSingleton", err)
	}

	a := w.CreateEntity()
	w.Add(a, testComp{})
	got, err := w.Single(ComponentType(1))
	if err != nil || got != a {
		t.Fatalf("Single = %v, %v; want %v, nil", got, err, a)
	}

	b := w.CreateEntity()
	w.Add(b, testComp{})
	if _, err := w.Single(ComponentType(1)); !errors.Is(err, ErrMissingSingleton) {
		t.Fatalf("two matches: err = %v; want ErrMissingSingleton", err)
	}
}
