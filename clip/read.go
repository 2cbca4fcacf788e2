// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"golang.org/x/exp/slices"

	"github.com/biogo/readclip/sam"
)

// writeNs masks the bases of r in iv with N. It alters r.
func writeNs(r *sam.Record, iv Interval) *sam.Record {
	r.Seq = r.Seq.Mask(iv.Start, iv.Stop)
	return r
}

// writeQ0s sets the qualities of r in iv to zero. It alters r.
func writeQ0s(r *sam.Record, iv Interval) *sam.Record {
	stop := iv.Stop
	if stop > len(r.Qual) {
		stop = len(r.Qual)
	}
	for i := iv.Start; i < stop; i++ {
		r.Qual[i] = 0
	}
	return r
}

// hardClip returns a copy of r with the bases in iv removed. Only left
// clips move the alignment start. Unmapped reads lose their CIGAR.
func hardClip(r *sam.Record, iv Interval) (*sam.Record, error) {
	var (
		cigar sam.Cigar
		shift Shift
	)
	mapped := !r.IsUnmapped()
	if mapped {
		cigar, shift = HardClipCigar(r.Cigar, iv.Start, iv.Stop)
	}

	n := r.Seq.Length - iv.Len() - shift.Start - shift.End
	if n <= 0 {
		return r.Empty(), nil
	}
	from := shift.Start
	if iv.Start == 0 {
		from += iv.Stop
	}
	to := from + n

	ins, del, err := r.IndelQualities()
	if err != nil {
		return nil, newError(InvalidArgument, r.Name, iv, "%v", err)
	}

	c := r.Clone()
	c.Seq = r.Seq.Slice(from, to)
	if len(r.Qual) != 0 {
		c.Qual = slices.Clone(r.Qual[from:to])
	}
	c.Cigar = cigar
	if iv.Start == 0 && mapped {
		c.Pos = r.Pos + AlignmentStartShift(r.Cigar, iv.Len())
	}
	if ins != nil {
		err = c.SetIndelQualities(ins[from:to], del[from:to])
		if err != nil {
			return nil, newError(InvalidArgument, r.Name, iv, "%v", err)
		}
	}
	return c, nil
}

// softClip returns a copy of r with the bases in iv soft clipped.
func softClip(r *sam.Record, iv Interval) (*sam.Record, error) {
	// A record cannot have all of its bases soft clipped.
	stop := iv.Stop
	if last := iv.Start + r.Seq.Length - 1; stop > last {
		stop = last
	}
	if iv.Start > 0 && stop != r.Seq.Length {
		return nil, newError(Contract, r.Name, iv, "cannot soft clip the middle of a read of length %d", r.Seq.Length)
	}

	c := r.Clone()
	c.Cigar = SoftClipCigar(r.Cigar, iv.Start, stop)
	c.Pos = r.Pos + AlignmentStartOffset(c.Cigar, r.Cigar)
	return c, nil
}

// revertSoftClip returns a copy of r with its soft clips turned back into
// aligned bases. Bases that would align before the start of the reference
// are hard clipped, leaving the returned record starting at position zero,
// or empty and unmapped when no bases remain.
func revertSoftClip(r *sam.Record) (*sam.Record, error) {
	c := r.Clone()
	if r.IsUnmapped() {
		return c, nil
	}
	c.Cigar = RevertCigar(r.Cigar)
	pos := r.Pos + RevertShift(r.Cigar, c.Cigar)
	if pos >= 0 {
		c.Pos = pos
		return c, nil
	}

	c.Pos = 0
	c, err := hardClip(c, Interval{Start: 0, Stop: -pos})
	if err != nil {
		return nil, err
	}
	if !c.IsUnmapped() {
		c.Pos = 0
	}
	return c, nil
}
