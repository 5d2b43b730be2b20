package array

import (
	"errors"
	"testing"

	"github.com/Robin-3/data-structures/internal/errs"
	"github.com/google/go-cmp/cmp"
)

func TestStaticArrayPushUntilFull(t *testing.T) {
	a := NewStaticArray[int](2)

	if err := a.Push(1); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := a.Push(2); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := a.Push(3); !errors.Is(err, errs.ErrIndexOutOfBounds) {
		t.Errorf("Expected ErrIndexOutOfBounds when full, got %v", err)
	}
	if a.Cap() != 2 || a.Len() != 2 {
		t.Errorf("Expected length 2 capacity 2, got %d and %d", a.Len(), a.Cap())
	}
}

func TestStaticArrayUnshiftDropsLast(t *testing.T) {
	a := StaticArrayWithValues(3, []string{"a", "b"})

	a.Unshift("z")
	if diff := cmp.Diff([]string{"z", "a", "b"}, a.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	a.Unshift("y")
	if a.Len() != 3 {
		t.Errorf("Expected length to stay at 3, got %d", a.Len())
	}
	if diff := cmp.Diff([]string{"y", "z", "a"}, a.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	empty := NewStaticArray[string](0)
	empty.Unshift("x")
	if !empty.IsEmpty() {
		t.Error("Expected zero capacity array to stay empty")
	}
}

func TestStaticArrayInsert(t *testing.T) {
	a := StaticArrayWithValues(4, []int{1, 2, 3})

	if err := a.Insert(3, 9); !errors.Is(err, errs.ErrIndexOutOfBounds) {
		t.Errorf("Expected ErrIndexOutOfBounds, got %v", err)
	}

	if err := a.Insert(1, 9); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if diff := cmp.Diff([]int{1, 9, 2, 3}, a.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	if err := a.Insert(0, 0); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if diff := cmp.Diff([]int{0, 1, 9, 2}, a.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}

func TestStaticArrayRemove(t *testing.T) {
	a := StaticArrayWithValues(5, []string{"Venus", "Plutón", "Tierra", "Marte"})

	v, err := a.Remove(1)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if v != "Plutón" {
		t.Errorf("Expected Plutón, got %s", v)
	}
	if a.Cap() != 5 {
		t.Errorf("Expected capacity to stay 5, got %d", a.Cap())
	}

	expected := `["Venus", "Tierra", "Marte", None, None]`
	if a.String() != expected {
		t.Errorf("Expected %s, got %s", expected, a.String())
	}

	if _, err := a.Remove(3); !errors.Is(err, errs.ErrIndexOutOfBounds) {
		t.Errorf("Expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestStaticArrayGetSet(t *testing.T) {
	a := StaticArrayWithValues(3, []int{1, 2})

	if err := a.Set(0, 7); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := a.Get(0)
	if err != nil || v != 7 {
		t.Errorf("Expected 7, got %d (%v)", v, err)
	}
	if err := a.Set(2, 1); !errors.Is(err, errs.ErrIndexOutOfBounds) {
		t.Errorf("Expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := a.Get(-1); !errors.Is(err, errs.ErrIndexOutOfBounds) {
		t.Errorf("Expected ErrIndexOutOfBounds, got %v", err)
	}
}
