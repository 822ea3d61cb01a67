// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

// Version is the API and behavior version of the tracker.
const Version = "0.1.0"

// Size is the unsigned type used for capacity, usage and slot indices.
//
// Pick the narrowest type that can index the backing array: a tracker
// over a 200-element array fits in uint8, one over a 1M-element array
// needs uint32.
type Size interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// MaxCapacity returns the largest capacity supported by index type S.
//
// The maximum value of S itself is reserved: capacities at or above it
// are out of contract.
func MaxCapacity[S Size]() S {
	return ^S(0) - 1
}

// CapacityOf converts a backing array length to a capacity of type S.
// Reports false if n < 1 or n > MaxCapacity[S]().
//
// Example:
//
//	buf := make([]Sample, 200)
//	n, ok := cq.CapacityOf[uint8](len(buf))
//	if !ok {
//	    return errors.New("buffer does not fit uint8 indices")
//	}
//	t, _ := cq.New(n)
func CapacityOf[S Size](n int) (S, bool) {
	if n < 1 || uint64(n) > uint64(MaxCapacity[S]()) {
		return 0, false
	}
	return S(n), true
}
