// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"errors"
	"fmt"
)

// Kind is the class of a clipping failure.
type Kind int

const (
	// InvalidArgument indicates an unknown representation, an interval
	// outside the read or a read with inconsistent buffers.
	InvalidArgument Kind = iota + 1

	// Precondition indicates the read is in a state that does not allow
	// the requested clip, for example soft clipping an unmapped read.
	Precondition

	// Contract indicates a clip the representation cannot express,
	// such as clipping bases out of the middle of a read.
	Contract
)

var kindNames = [...]string{
	InvalidArgument: "invalid argument",
	Precondition:    "precondition violated",
	Contract:        "contract violated",
}

func (k Kind) String() string {
	if k < InvalidArgument || k > Contract {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Sentinel errors matching each Kind with errors.Is.
var (
	ErrInvalidArgument = errors.New("clip: invalid argument")
	ErrPrecondition    = errors.New("clip: precondition violated")
	ErrContract        = errors.New("clip: contract violated")
)

// Error is the error returned when a clip cannot be applied to a read.
type Error struct {
	Kind     Kind
	Read     string   // Name of the offending read.
	Interval Interval // Requested clip interval.
	Msg      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("clip: %v: %s: read %q at %v", e.Kind, e.Msg, e.Read, e.Interval)
}

// Unwrap returns the sentinel error for the receiver's Kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case InvalidArgument:
		return ErrInvalidArgument
	case Precondition:
		return ErrPrecondition
	case Contract:
		return ErrContract
	}
	return nil
}

func newError(k Kind, name string, iv Interval, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Read: name, Interval: iv, Msg: fmt.Sprintf(format, args...)}
}
