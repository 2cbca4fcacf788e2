// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

import "errors"

// Reference is a mapping reference, a named contig that reads are
// aligned against.
type Reference struct {
	id   int32
	name string
	lRef int32
}

// NewReference returns a new Reference with the given name and length and
// header ID. The length must be a valid reference length according to the
// SAM specification, [1, 1<<31).
func NewReference(name string, id, length int) (*Reference, error) {
	if !validLen(length) {
		return nil, errors.New("sam: length out of range")
	}
	if name == "" {
		return nil, errors.New("sam: no name provided")
	}
	if !validPos(id) {
		return nil, errors.New("sam: reference id out of range")
	}
	return &Reference{
		id:   int32(id),
		name: name,
		lRef: int32(length),
	}, nil
}

// ID returns the header ID of the Reference.
func (r *Reference) ID() int {
	if r == nil {
		return -1
	}
	return int(r.id)
}

// Name returns the reference name.
func (r *Reference) Name() string {
	if r == nil {
		return "*"
	}
	return r.name
}

// Len returns the length of the reference sequence.
func (r *Reference) Len() int {
	if r == nil {
		return -1
	}
	return int(r.lRef)
}

// String returns a string representation of the Reference.
func (r *Reference) String() string {
	if r == nil {
		return "*"
	}
	return r.name
}
