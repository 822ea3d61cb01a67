// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// Flag is the sticky error state of a Tracker.
//
// Values are independent bits so callers may test them with Has, although
// a tracker only ever holds one of them at a time. The zero Flag is
// FlagNullContext: an uninitialized or nil tracker reports it.
type Flag uint8

const (
	// FlagNullContext reports an absent (nil) or uninitialized tracker.
	FlagNullContext Flag = 0
	// FlagNone reports no error.
	FlagNone Flag = 1 << 0
	// FlagInvalidSize reports an Init with capacity 0.
	// The tracker was coerced to capacity 1 and remains usable.
	FlagInvalidSize Flag = 1 << 1
	// FlagEmpty reports a dequeue from an empty tracker.
	FlagEmpty Flag = 1 << 2
)

// Has reports whether f carries g.
// FlagNullContext has no bits, so f.Has(FlagNullContext) reports f == FlagNullContext.
func (f Flag) Has(g Flag) bool {
	if g == FlagNullContext {
		return f == FlagNullContext
	}
	return f&g == g
}

func (f Flag) String() string {
	switch f {
	case FlagNullContext:
		return "null-context"
	case FlagNone:
		return "none"
	case FlagInvalidSize:
		return "invalid-size"
	case FlagEmpty:
		return "empty"
	default:
		return "invalid-flag"
	}
}

// Err returns f as an error, or nil for FlagNone.
//
//	FlagNullContext → ErrNilTracker
//	FlagInvalidSize → ErrInvalidSize
//	FlagEmpty       → ErrWouldBlock
func (f Flag) Err() error {
	switch f {
	case FlagNone:
		return nil
	case FlagNullContext:
		return ErrNilTracker
	case FlagInvalidSize:
		return ErrInvalidSize
	case FlagEmpty:
		return ErrWouldBlock
	default:
		return ErrInvalidState
	}
}

// ErrWouldBlock indicates a dequeue from an empty tracker.
//
// ErrWouldBlock is a control flow signal, not a failure. The tracker never
// waits for data: the caller decides whether to retry later, back off or
// give up.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    mu.Lock()
//	    slot, err := t.Dequeue()
//	    if err == nil {
//	        v := buf[slot]
//	        mu.Unlock()
//	        return v, nil
//	    }
//	    mu.Unlock()
//	    if !cq.IsWouldBlock(err) {
//	        return 0, err
//	    }
//	    backoff.Wait()
//	}
var ErrWouldBlock = iox.ErrWouldBlock

var (
	// ErrNilTracker is the error form of FlagNullContext.
	ErrNilTracker = errors.New("cq: nil or uninitialized tracker")

	// ErrInvalidSize is the error form of FlagInvalidSize.
	ErrInvalidSize = errors.New("cq: invalid size")

	// ErrInvalidState is returned by Restore for a snapshot that violates
	// the tracker invariants.
	ErrInvalidState = errors.New("cq: invalid state")
)

// IsWouldBlock reports whether err indicates an empty dequeue.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
