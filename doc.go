// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cq provides a fixed-capacity circular index tracker.
//
// A [Tracker] manages the indices of a FIFO queue whose elements live in a
// backing array owned by the caller. It issues the slot to write on
// enqueue and the slot to read on dequeue, and never allocates, copies or
// touches element storage. Every operation is O(1) and branch-only.
//
// # Quick Start
//
//	var samples [8]uint16
//	t := cq.MustNew[uint8](uint8(len(samples)))
//
//	// Enqueue: write into the issued slot
//	samples[t.NextEnqueueSlot()] = readADC()
//
//	// Dequeue: read from the issued slot
//	for t.Usage() > 0 {
//	    process(samples[t.NextDequeueSlot()])
//	}
//
// # Index Type
//
// The type parameter S selects the unsigned type used for capacity, usage
// and slot indices. Choose the narrowest type that indexes the backing
// array; [CapacityOf] converts a slice length and reports whether it fits.
// The maximum value of S is reserved, so the largest capacity is
// [MaxCapacity].
//
// # Overwrite on Full
//
// Enqueueing into a full tracker overwrites the oldest element: the newest
// and the oldest index both advance and Usage stays at Capacity. The
// dropped element is never returned by a dequeue. This is the policy of
// the tracker, not an error.
//
//	t := cq.MustNew[uint8](3)
//	for range 4 {
//	    t.NextEnqueueSlot() // slots 0, 1, 2, 0
//	}
//	t.OldestSlot() // 1: the element in slot 0 was overwritten
//
// # Error Handling
//
// Errors are reported through a sticky [Flag]. A flag survives successful
// operations until [Tracker.ClearError], [Tracker.Reset] or
// [Tracker.Init]:
//
//	FlagNone        - no error
//	FlagNullContext - nil or uninitialized tracker
//	FlagInvalidSize - Init with capacity 0 (coerced to capacity 1)
//	FlagEmpty       - dequeue from an empty tracker
//
// NextDequeueSlot on an empty tracker raises FlagEmpty and returns a slot
// that holds no element. [Tracker.Dequeue] is the result-returning form:
//
//	slot, err := t.Dequeue()
//	if cq.IsWouldBlock(err) {
//	    // Empty - try again later
//	}
//
// [ErrWouldBlock] is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency.
//
// # Preconditions
//
// Before the first enqueue after New, Init or Reset, NewestSlot returns
// Capacity, which is not a valid slot. Callers must not index the backing
// array with NewestSlot until an element has been enqueued.
//
// # Thread Safety
//
// A Tracker has no internal synchronization. Share one between goroutines
// only under a caller-held lock, and hold it across both the index call
// and the array access it guards:
//
//	mu.Lock()
//	buf[t.NextEnqueueSlot()] = v
//	mu.Unlock()
//
// Taking the index under the lock and writing the array after releasing
// it lets a concurrent dequeue read a half-written slot.
//
// # Persistence
//
// [Tracker.Snapshot] and [Tracker.Restore] capture and reinstall the index
// state, for callers that persist the backing array. Tracker implements
// json.Marshaler and json.Unmarshaler through the same [State].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors.
package cq
