// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq_test

import (
	"encoding/json"
	"errors"
	"testing"

	"code.hybscloud.com/cq"
)

// TestSnapshotRestore verifies every reachable state survives a round trip.
func TestSnapshotRestore(t *testing.T) {
	const capacity = 5
	src := cq.MustNew[uint8](capacity)

	check := func(step string) {
		t.Helper()
		st := src.Snapshot()
		dst := cq.MustNew[uint16](1)
		if err := dst.Restore(st); err != nil {
			t.Fatalf("%s: Restore(%+v): %v", step, st, err)
		}
		if got := dst.Snapshot(); got != st {
			t.Fatalf("%s: Snapshot after Restore: got %+v, want %+v", step, got, st)
		}
		// Both trackers continue identically
		a, b := *src, *dst
		if uint16(a.PeekNextEnqueueSlot()) != b.PeekNextEnqueueSlot() {
			t.Fatalf("%s: PeekNextEnqueueSlot: got %d, want %d", step, b.PeekNextEnqueueSlot(), a.PeekNextEnqueueSlot())
		}
		if uint16(a.NextDequeueSlot()) != b.NextDequeueSlot() || a.ErrorState() != b.ErrorState() {
			t.Fatalf("%s: NextDequeueSlot diverged: %v vs %v", step, &a, &b)
		}
	}

	check("fresh")
	for i := range 2 * capacity {
		src.NextEnqueueSlot()
		check("enqueue")
		if i%3 == 2 {
			src.NextDequeueSlot()
			check("dequeue")
		}
	}
	for src.Usage() > 0 {
		src.NextDequeueSlot()
		check("drain")
	}
	src.NextDequeueSlot()
	check("empty")
	src.Reset()
	check("reset")

	coerced, _ := cq.New[uint8](0)
	src = coerced
	check("coerced")
}

// TestRestoreRejects verifies inconsistent snapshots are rejected untouched.
func TestRestoreRejects(t *testing.T) {
	for _, tc := range []struct {
		name string
		st   cq.State
	}{
		{"zero capacity", cq.State{Capacity: 0, Error: cq.FlagNone}},
		{"capacity above max", cq.State{Capacity: 255, Newest: 255, Error: cq.FlagNone}},
		{"usage above capacity", cq.State{Capacity: 4, Usage: 5, Newest: 3, Oldest: 0, Error: cq.FlagNone}},
		{"oldest out of range", cq.State{Capacity: 4, Oldest: 4, Newest: 3, Error: cq.FlagNone}},
		{"newest out of range", cq.State{Capacity: 4, Newest: 5, Error: cq.FlagNone}},
		{"sentinel with usage", cq.State{Capacity: 4, Usage: 1, Newest: 4, Error: cq.FlagNone}},
		{"sentinel with oldest", cq.State{Capacity: 4, Oldest: 2, Newest: 4, Error: cq.FlagNone}},
		{"oldest inconsistent", cq.State{Capacity: 4, Usage: 2, Oldest: 0, Newest: 3, Error: cq.FlagNone}},
		{"null-context flag", cq.State{Capacity: 4, Newest: 4, Error: cq.FlagNullContext}},
		{"unknown flag", cq.State{Capacity: 4, Newest: 4, Error: cq.Flag(6)}},
		{"invalid-size with capacity 4", cq.State{Capacity: 4, Newest: 4, Error: cq.FlagInvalidSize}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tr := cq.MustNew[uint8](3)
			tr.NextEnqueueSlot()
			before := tr.Snapshot()

			err := tr.Restore(tc.st)
			if !errors.Is(err, cq.ErrInvalidState) {
				t.Fatalf("Restore(%+v): got %v, want ErrInvalidState", tc.st, err)
			}
			if got := tr.Snapshot(); got != before {
				t.Fatalf("tracker changed: got %+v, want %+v", got, before)
			}
		})
	}
}

// TestRestoreWrapped verifies consistency checks across the wrap point.
func TestRestoreWrapped(t *testing.T) {
	tr := cq.MustNew[uint8](4)
	// newest 1, usage 4: oldest is 2
	if err := tr.Restore(cq.State{Capacity: 4, Usage: 4, Oldest: 2, Newest: 1, Error: cq.FlagNone}); err != nil {
		t.Fatalf("Restore full wrapped: %v", err)
	}
	// newest 3, usage 0: oldest is 0
	if err := tr.Restore(cq.State{Capacity: 4, Usage: 0, Oldest: 0, Newest: 3, Error: cq.FlagEmpty}); err != nil {
		t.Fatalf("Restore drained: %v", err)
	}
	if tr.ErrorState() != cq.FlagEmpty {
		t.Fatalf("ErrorState: got %s, want empty", tr.ErrorState())
	}
	if slot := tr.NextEnqueueSlot(); slot != 0 {
		t.Fatalf("NextEnqueueSlot: got %d, want 0", slot)
	}
}

func TestTrackerJSON(t *testing.T) {
	tr := cq.MustNew[uint16](8)
	for range 10 {
		tr.NextEnqueueSlot()
	}
	tr.NextDequeueSlot()

	data, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	const want = `{"capacity":8,"usage":7,"oldest":3,"newest":1,"error":1}`
	if string(data) != want {
		t.Fatalf("Marshal: got %s, want %s", data, want)
	}

	var back cq.Tracker[uint16]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Snapshot() != tr.Snapshot() {
		t.Fatalf("Unmarshal: got %v, want %v", &back, tr)
	}

	if err := json.Unmarshal([]byte(`{"capacity":8,"usage":9,"oldest":0,"newest":0,"error":1}`), &back); !errors.Is(err, cq.ErrInvalidState) {
		t.Fatalf("Unmarshal invalid: got %v, want ErrInvalidState", err)
	}
	if err := json.Unmarshal([]byte(`{"capacity":8,"head":3}`), &back); err == nil {
		t.Fatal("Unmarshal unknown field: got nil error")
	}
}
