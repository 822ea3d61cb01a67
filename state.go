// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// State is a snapshot of a Tracker, independent of its index type.
//
// Persist a State together with the backing array to resume the queue
// later. Newest equals Capacity before the first enqueue.
type State struct {
	Capacity uint64 `json:"capacity"`
	Usage    uint64 `json:"usage"`
	Oldest   uint64 `json:"oldest"`
	Newest   uint64 `json:"newest"`
	Error    Flag   `json:"error"`
}

// Snapshot returns the current state of t.
// A nil t yields a zero State carrying FlagNullContext.
func (t *Tracker[S]) Snapshot() State {
	if t == nil {
		return State{Error: FlagNullContext}
	}
	return State{
		Capacity: uint64(t.capacity),
		Usage:    uint64(t.count),
		Oldest:   uint64(t.oldest),
		Newest:   uint64(t.newest),
		Error:    t.flag,
	}
}

// Restore replaces the state of t with st.
//
// st must describe a state reachable by the tracker's own operations;
// otherwise Restore returns an error wrapping ErrInvalidState and t is
// left unchanged. Returns ErrNilTracker if t is nil.
func (t *Tracker[S]) Restore(st State) error {
	if t == nil {
		return ErrNilTracker
	}
	if err := validState[S](st); err != nil {
		return err
	}

	t.capacity = S(st.Capacity)
	t.last = t.capacity - 1
	t.count = S(st.Usage)
	t.oldest = S(st.Oldest)
	t.newest = S(st.Newest)
	t.flag = st.Error
	return nil
}

func validState[S Size](st State) error {
	switch {
	case st.Capacity == 0:
		return fmt.Errorf("%w: capacity 0", ErrInvalidState)
	case st.Capacity > uint64(MaxCapacity[S]()):
		return fmt.Errorf("%w: capacity %d exceeds %d", ErrInvalidState, st.Capacity, uint64(MaxCapacity[S]()))
	case st.Usage > st.Capacity:
		return fmt.Errorf("%w: usage %d exceeds capacity %d", ErrInvalidState, st.Usage, st.Capacity)
	case st.Oldest >= st.Capacity:
		return fmt.Errorf("%w: oldest slot %d out of range", ErrInvalidState, st.Oldest)
	case st.Newest > st.Capacity:
		return fmt.Errorf("%w: newest slot %d out of range", ErrInvalidState, st.Newest)
	}

	switch st.Error {
	case FlagNone, FlagEmpty:
	case FlagInvalidSize:
		if st.Capacity != 1 {
			return fmt.Errorf("%w: %s with capacity %d", ErrInvalidState, st.Error, st.Capacity)
		}
	default:
		return fmt.Errorf("%w: flag %s", ErrInvalidState, st.Error)
	}

	if st.Newest == st.Capacity {
		// Nothing enqueued since init or reset.
		if st.Usage != 0 || st.Oldest != 0 {
			return fmt.Errorf("%w: usage %d oldest %d before first enqueue", ErrInvalidState, st.Usage, st.Oldest)
		}
		return nil
	}

	// oldest trails newest by usage-1 slots; an empty queue has oldest one past newest.
	next := (st.Newest + 1) % st.Capacity
	want := next - st.Usage
	if next < st.Usage {
		want = next + (st.Capacity - st.Usage)
	}
	if st.Oldest != want {
		return fmt.Errorf("%w: oldest slot %d, want %d for newest %d usage %d",
			ErrInvalidState, st.Oldest, want, st.Newest, st.Usage)
	}
	return nil
}

// MarshalJSON encodes the Snapshot of t.
func (t *Tracker[S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Snapshot())
}

// UnmarshalJSON decodes a State and restores it into t.
// Unknown fields are rejected.
func (t *Tracker[S]) UnmarshalJSON(data []byte) error {
	var st State
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&st); err != nil {
		return err
	}
	return t.Restore(st)
}
