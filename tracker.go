// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

import "fmt"

// Tracker is a circular index tracker for a caller-owned backing array.
//
// Tracker issues the slot to write on enqueue and the slot to read on
// dequeue. It never touches element storage. When full, an enqueue
// overwrites the oldest element: both the newest and the oldest index
// advance and Usage stays at Capacity.
//
// Errors are reported through a sticky Flag that survives successful
// operations until ClearError, Reset or Init.
//
// Tracker is a plain value with no internal synchronization. Concurrent
// use requires a caller-held lock around each index call together with
// the array access it guards.
//
// Memory: five S-sized counters and one byte, no heap
type Tracker[S Size] struct {
	oldest   S // Next slot to dequeue
	newest   S // Last slot enqueued; capacity before the first enqueue
	count    S
	capacity S
	last     S // capacity - 1
	flag     Flag
}

// New creates a tracker with the given capacity.
// A capacity of 0 is coerced to 1 and reported as FlagInvalidSize.
func New[S Size](capacity S) (*Tracker[S], Flag) {
	t := &Tracker[S]{}
	return t, t.Init(capacity)
}

// MustNew creates a tracker with the given capacity.
// Panics if capacity < 1 or capacity > MaxCapacity[S]().
func MustNew[S Size](capacity S) *Tracker[S] {
	if capacity < 1 {
		panic("cq: capacity must be >= 1")
	}
	if capacity > MaxCapacity[S]() {
		panic("cq: capacity exceeds MaxCapacity")
	}
	t, _ := New(capacity)
	return t
}

// Init (re)initializes t with the given capacity and returns the resulting flag.
//
//   - nil t: returns FlagNullContext, nothing is touched.
//   - capacity >= 1: empty tracker, FlagNone.
//   - capacity == 0: empty tracker with capacity 1, FlagInvalidSize.
//
// Capacities above MaxCapacity[S]() are out of contract.
func (t *Tracker[S]) Init(capacity S) Flag {
	if t == nil {
		return FlagNullContext
	}

	if capacity >= 1 {
		t.flag = FlagNone
		t.capacity = capacity
	} else {
		t.flag = FlagInvalidSize
		t.capacity = 1
	}
	t.last = t.capacity - 1
	t.newest = t.capacity
	t.oldest = 0
	t.count = 0

	return t.flag
}

// next returns the slot after i. The sentinel wraps to 0.
func (t *Tracker[S]) next(i S) S {
	if i < t.last {
		return i + 1
	}
	return 0
}

// NextEnqueueSlot commits an enqueue and returns the slot to write.
//
// If the tracker is full, the oldest element is dropped: its slot is the
// one returned, and OldestSlot moves to the next element. This is the
// overwrite policy, not an error; the flag is never changed.
func (t *Tracker[S]) NextEnqueueSlot() S {
	t.newest = t.next(t.newest)

	if t.count < t.capacity {
		t.count++
	} else {
		t.oldest = t.next(t.oldest)
	}

	return t.newest
}

// NextDequeueSlot commits a dequeue and returns the slot to read.
//
// On an empty tracker it raises FlagEmpty, leaves the state unchanged and
// returns the current OldestSlot, which holds no element. Check Usage or
// ErrorState before trusting the slot when emptiness is possible, or use
// Dequeue.
func (t *Tracker[S]) NextDequeueSlot() S {
	index := t.oldest

	if t.count > 0 {
		t.count--
		t.oldest = t.next(t.oldest)
	} else {
		t.flag = FlagEmpty
	}

	return index
}

// Dequeue commits a dequeue and returns the slot to read.
// Returns (0, ErrWouldBlock) if the tracker is empty. The empty case also
// raises FlagEmpty, as NextDequeueSlot does.
func (t *Tracker[S]) Dequeue() (S, error) {
	if t.count == 0 {
		t.flag = FlagEmpty
		return 0, ErrWouldBlock
	}
	return t.NextDequeueSlot(), nil
}

// Reset abandons every element and clears the flag. Capacity is kept.
func (t *Tracker[S]) Reset() {
	t.flag = FlagNone
	t.newest = t.capacity
	t.oldest = 0
	t.count = 0
}

// ClearError sets the flag to FlagNone.
func (t *Tracker[S]) ClearError() {
	t.flag = FlagNone
}

// PeekNextEnqueueSlot returns the slot the next NextEnqueueSlot will
// return, without committing.
func (t *Tracker[S]) PeekNextEnqueueSlot() S {
	return t.next(t.newest)
}

// NewestSlot returns the slot of the most recently enqueued element.
//
// Before the first enqueue (after New, Init or Reset) it returns Capacity,
// which is not a valid slot. Do not index the backing array with it
// until an element has been enqueued.
func (t *Tracker[S]) NewestSlot() S {
	return t.newest
}

// OldestSlot returns the slot of the next element to dequeue.
func (t *Tracker[S]) OldestSlot() S {
	return t.oldest
}

// Usage returns the number of enqueued elements.
func (t *Tracker[S]) Usage() S {
	return t.count
}

// Capacity returns the maximum number of elements.
func (t *Tracker[S]) Capacity() S {
	return t.capacity
}

// Free returns how many elements can be enqueued before the oldest is
// overwritten.
func (t *Tracker[S]) Free() S {
	return t.capacity - t.count
}

// Empty reports whether Usage is 0.
func (t *Tracker[S]) Empty() bool {
	return t.count == 0
}

// Full reports whether the next enqueue overwrites the oldest element.
func (t *Tracker[S]) Full() bool {
	return t.count == t.capacity
}

// ErrorState returns the sticky flag.
// Returns FlagNullContext if t is nil or has not been initialized.
func (t *Tracker[S]) ErrorState() Flag {
	if t == nil {
		return FlagNullContext
	}
	return t.flag
}

// Err returns the sticky flag as an error, or nil for FlagNone.
// See Flag.Err.
func (t *Tracker[S]) Err() error {
	return t.ErrorState().Err()
}

func (t *Tracker[S]) String() string {
	if t == nil {
		return "cq.Tracker(nil)"
	}
	return fmt.Sprintf("cq.Tracker{usage: %d/%d, oldest: %d, newest: %d, error: %s}",
		uint64(t.count), uint64(t.capacity), uint64(t.oldest), uint64(t.newest), t.flag)
}
