// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clip implements clipping of SAM alignment records.
//
// A clip is described by a half-open interval of read base coordinates and
// a Representation determining how the clipped bases are recorded: masked
// with N bases or zero qualities, soft clipped in the CIGAR, or removed
// from the record and noted as hard clips. Soft clips already present on a
// read can be reverted to aligned bases.
//
// Clipping never alters the record it is given; every successful clip
// returns a new record sharing no mutable state with the input.
package clip

import (
	"fmt"

	"github.com/biogo/readclip/sam"
)

// Representation specifies how clipped bases are recorded in a read.
type Representation int

const (
	WriteNs        Representation = iota // Replace clipped bases with N.
	WriteQ0s                             // Set the quality of clipped bases to zero.
	WriteNsQ0s                           // Combination of WriteNs and WriteQ0s.
	HardClip                             // Remove clipped bases and record them as hard clips.
	SoftClip                             // Mark clipped bases as soft clips.
	RevertSoftClip                       // Turn soft clipped bases back into aligned bases.
	lastRepresentation
)

var representationNames = [...]string{
	WriteNs:        "WRITE_NS",
	WriteQ0s:       "WRITE_Q0S",
	WriteNsQ0s:     "WRITE_NS_Q0S",
	HardClip:       "HARDCLIP_BASES",
	SoftClip:       "SOFTCLIP_BASES",
	RevertSoftClip: "REVERT_SOFTCLIPPED_BASES",
}

func (r Representation) String() string {
	if r < 0 || r >= lastRepresentation {
		return fmt.Sprintf("Representation(%d)", int(r))
	}
	return representationNames[r]
}

// ParseRepresentation returns the Representation named by s.
func ParseRepresentation(s string) (Representation, error) {
	for r, name := range representationNames {
		if name == s {
			return Representation(r), nil
		}
	}
	return 0, fmt.Errorf("clip: unknown clipping representation %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Representation) MarshalText() ([]byte, error) {
	if r < 0 || r >= lastRepresentation {
		return nil, fmt.Errorf("clip: unknown clipping representation %d", int(r))
	}
	return []byte(representationNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Representation) UnmarshalText(text []byte) error {
	p, err := ParseRepresentation(string(text))
	if err != nil {
		return err
	}
	*r = p
	return nil
}

// Interval is a half-open interval of read base coordinates.
type Interval struct {
	Start int // Inclusive.
	Stop  int // Exclusive.
}

// Len returns the number of bases in the interval.
func (iv Interval) Len() int { return iv.Stop - iv.Start }

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d)", iv.Start, iv.Stop) }

// Apply returns a copy of r with the bases in iv clipped using the given
// representation. The record r is not altered.
//
// WriteNs, WriteQ0s and WriteNsQ0s mask the bases in iv, with the end of
// iv clamped to the length of the read, and leave the alignment unchanged.
// The start of iv must lie within the read.
//
// HardClip removes the bases in iv from the sequence, qualities and indel
// qualities of the read. The interval must start at zero or end at the
// read end. If no bases remain, an empty unmapped record is returned.
//
// SoftClip requires a mapped read and an interval touching an end of the
// read. At least one base is always left unclipped.
//
// RevertSoftClip ignores iv and restores soft clipped bases to aligned
// bases. Bases that would then align before the start of the reference
// are hard clipped.
//
// Errors returned by Apply are of type *Error.
func Apply(r *sam.Record, iv Interval, rep Representation) (*sam.Record, error) {
	if err := validate(r, iv, rep); err != nil {
		return nil, err
	}
	switch rep {
	case WriteNs:
		return writeNs(r.Clone(), iv), nil
	case WriteQ0s:
		return writeQ0s(r.Clone(), iv), nil
	case WriteNsQ0s:
		return writeQ0s(writeNs(r.Clone(), iv), iv), nil
	case HardClip:
		return hardClip(r, iv)
	case SoftClip:
		return softClip(r, iv)
	case RevertSoftClip:
		return revertSoftClip(r)
	default:
		return nil, newError(InvalidArgument, r.Name, iv, "unknown clipping representation %v", rep)
	}
}

func validate(r *sam.Record, iv Interval, rep Representation) error {
	if rep < 0 || rep >= lastRepresentation {
		return newError(InvalidArgument, r.Name, iv, "unknown clipping representation %v", rep)
	}
	length := r.Seq.Length
	if len(r.Qual) != 0 && len(r.Qual) != length {
		return newError(InvalidArgument, r.Name, iv, "quality length %d does not match sequence length %d", len(r.Qual), length)
	}
	if rep == RevertSoftClip {
		return validateCigar(r, iv)
	}
	if iv.Start < 0 || iv.Start > iv.Stop {
		return newError(InvalidArgument, r.Name, iv, "invalid interval")
	}
	if iv.Start > length {
		return newError(InvalidArgument, r.Name, iv, "interval starts beyond read length %d", length)
	}

	switch rep {
	case HardClip:
		if iv.Stop > length {
			return newError(InvalidArgument, r.Name, iv, "interval beyond read length %d", length)
		}
		if iv.Start > 0 && iv.Stop < length {
			return newError(Contract, r.Name, iv, "cannot hard clip the middle of a read of length %d", length)
		}
		return validateCigar(r, iv)
	case SoftClip:
		if r.IsUnmapped() {
			return newError(Precondition, r.Name, iv, "cannot soft clip an unmapped read")
		}
		if iv.Stop > length {
			return newError(InvalidArgument, r.Name, iv, "interval beyond read length %d", length)
		}
		if length == 0 {
			return newError(InvalidArgument, r.Name, iv, "no bases to soft clip")
		}
		return validateCigar(r, iv)
	}
	return nil
}

// validateCigar checks that the CIGAR of a mapped read describes the
// bases held by the read.
func validateCigar(r *sam.Record, iv Interval) error {
	if r.IsUnmapped() || len(r.Cigar) == 0 || r.Seq.Length == 0 {
		return nil
	}
	if _, read := r.Cigar.Lengths(); read != r.Seq.Length {
		return newError(InvalidArgument, r.Name, iv, "CIGAR %v describes %d bases but read has %d", r.Cigar, read, r.Seq.Length)
	}
	return nil
}
