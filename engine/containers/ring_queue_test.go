package containers

import (
	"errors"
	"testing"
)

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](3)
	for i := 1; i <= 3; i++ {
		if err := rq.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	if err := rq.Enqueue(4); !errors.Is(err, ErrQueueFull) {
		t.Errorf("expected ErrQueueFull, got %v", err)
	}
	if v, _ := rq.Peek(); v != 1 {
		t.Errorf("Peek = %d", v)
	}
	for want := 1; want <= 3; want++ {
		if v, err := rq.Dequeue(); err != nil || v != want {
			t.Errorf("Dequeue = %d, %v; expected %d", v, err, want)
		}
	}
	if _, err := rq.Dequeue(); !errors.Is(err, ErrQueueEmpty) {
		t.Errorf("expected ErrQueueEmpty, got %v", err)
	}
}

func TestRingQueuePushDropsOldest(t *testing.T) {
	rq := NewRingQueue[float64](3)
	for i := 1; i <= 5; i++ {
		rq.Push(float64(i))
	}
	if rq.Len() != 3 || !rq.IsFull() {
		t.Fatalf("len = %d", rq.Len())
	}
	var got []float64
	rq.Each(func(v float64) { got = append(got, v) })
	if len(got) != 3 || got[0] != 3 || got[1] != 4 || got[2] != 5 {
		t.Errorf("Each = %v, expected [3 4 5]", got)
	}
}
