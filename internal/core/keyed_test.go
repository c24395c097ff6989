package core

import (
	"slices"
	"testing"
)

type payload struct {
	name string
	tags []string // makes the type non-comparable
}

func TestKeyedOrdering(t *testing.T) {
	a := NewKeyed(payload{name: "a"}, 5)
	b := NewKeyed(payload{name: "b"}, 2)

	if !b.Less(a) || a.Less(b) {
		t.Error("key 2 should sort before key 5")
	}
	if a.Compare(b) != 1 || b.Compare(a) != -1 {
		t.Errorf("Compare = %d / %d", a.Compare(b), b.Compare(a))
	}

	c := NewKeyed(payload{name: "c", tags: []string{"x"}}, 5)
	if !a.Equal(c) {
		t.Error("wrappers with equal keys should be equal regardless of value")
	}

	items := []Keyed[payload, int]{a, b}
	slices.SortFunc(items, Keyed[payload, int].Compare)
	if items[0].Value.name != "b" {
		t.Errorf("sorted first = %q, expected \"b\"", items[0].Value.name)
	}
}

func TestMinQueue(t *testing.T) {
	q := NewMinQueue[string, int]()
	q.Push("a", 5)
	q.Push("b", 2)
	q.Push("c", 9)

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}
	if head, _ := q.Peek(); head.Value != "b" {
		t.Errorf("Peek() = %q, expected \"b\"", head.Value)
	}

	var order []string
	for q.Len() > 0 {
		k, ok := q.Pop()
		if !ok {
			t.Fatal("Pop() failed on non-empty queue")
		}
		order = append(order, k.Value)
	}
	if !slices.Equal(order, []string{"b", "a", "c"}) {
		t.Errorf("pop order = %v", order)
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue should fail")
	}
}

func TestMaxQueue(t *testing.T) {
	q := NewMaxQueue[Coord, uint64]()
	q.PushKeyed(NewKeyed(C(0, 0), uint64(1)))
	q.Push(C(1, 1), 7)
	q.Push(C(2, 2), 3)

	k, _ := q.Pop()
	if k.Value != C(1, 1) || k.Key != 7 {
		t.Errorf("Pop() = %+v, expected key 7", k)
	}
}
