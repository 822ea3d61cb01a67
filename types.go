// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

// Queue is the combined slot-issuing interface of a circular index tracker.
//
// A Queue never stores elements. It hands out indices into a backing
// array owned by the caller, who reads and writes the array itself.
//
// Example:
//
//	var buf [8]float32
//	var q cq.Queue[uint8] = cq.MustNew[uint8](8)
//
//	buf[q.NextEnqueueSlot()] = 21.5
//	if slot, err := q.Dequeue(); err == nil {
//	    fmt.Println(buf[slot])
//	}
type Queue[S Size] interface {
	Producer[S]
	Consumer[S]
	Usage() S
	Capacity() S
	ErrorState() Flag
}

// Producer issues slots to write.
type Producer[S Size] interface {
	// NextEnqueueSlot commits an enqueue and returns the slot to write.
	// When the queue is full the oldest element is overwritten.
	NextEnqueueSlot() S
}

// Consumer issues slots to read.
type Consumer[S Size] interface {
	// NextDequeueSlot commits a dequeue and returns the slot to read.
	// On an empty queue it raises FlagEmpty and the slot is meaningless.
	NextDequeueSlot() S

	// Dequeue commits a dequeue and returns the slot to read.
	// Returns (0, ErrWouldBlock) if the queue is empty.
	Dequeue() (S, error)
}

var (
	_ Queue[uint8]   = (*Tracker[uint8])(nil)
	_ Queue[uint16]  = (*Tracker[uint16])(nil)
	_ Queue[uint32]  = (*Tracker[uint32])(nil)
	_ Queue[uint64]  = (*Tracker[uint64])(nil)
	_ Queue[uint]    = (*Tracker[uint])(nil)
	_ Queue[uintptr] = (*Tracker[uintptr])(nil)
)
