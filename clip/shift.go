// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import "github.com/biogo/readclip/sam"

// AlignmentStartOffset returns the number of reference bases the alignment
// start of a read must move when its CIGAR changes from old to clipped by
// soft clipping.
//
// The read bases preceding the first reference consuming base of clipped
// are located in old and the reference bases they span there are counted.
// Deletions and skips preceding the alignment in clipped are credited back.
// Reference lengths are weighted by Consume.Reference, so CigarBack moves the
// start backwards.
func AlignmentStartOffset(clipped, old sam.Cigar) int {
	var readBefore, refBefore int
	for _, co := range clipped {
		t := co.Type()
		if !t.ConsumesReference() {
			if t.ConsumesQuery() {
				readBefore += co.Len()
			}
			continue
		}
		if t.ConsumesQuery() {
			break
		}
		refBefore -= co.Len() * t.Consumes().Reference
	}

	var read int
	for _, co := range old {
		con := co.Type().Consumes()
		readLen, refLen := co.Len()*con.Query, co.Len()*con.Reference
		truncated := read+readLen > readBefore
		if truncated {
			readLen = readBefore - read
			refLen = readLen * con.Reference
		}
		read += readLen
		refBefore += refLen
		if read > readBefore || truncated {
			break
		}
	}

	// A negative count means only some of the leading deletions
	// and skips were clipped.
	if refBefore < 0 {
		return -refBefore
	}
	return refBefore
}

// AlignmentStartShift returns the number of reference bases spanned by the
// first n read bases of the alignment described by c. If the n bases end
// at an operation boundary, deletions, skips and backward steps immediately
// following them are included.
func AlignmentStartShift(c sam.Cigar, n int) int {
	var (
		read, ref int
		truncated bool
		i         int
	)
	for ; i < len(c); i++ {
		con := c[i].Type().Consumes()
		readLen, refLen := c[i].Len()*con.Query, c[i].Len()*con.Reference
		truncated = read+readLen > n
		if truncated {
			readLen = n - read
			refLen = readLen * con.Reference
		}
		read += readLen
		ref += refLen
		if read >= n || truncated {
			break
		}
	}

	if read == n && !truncated {
		for i++; i < len(c); i++ {
			t := c[i].Type()
			if t.ConsumesQuery() || !t.ConsumesReference() {
				break
			}
			ref += c[i].Len() * t.Consumes().Reference
		}
	}
	return ref
}

// HardSoftOffset returns the number of bases in the leading run of hard
// clips and the soft clips following it in c.
func HardSoftOffset(c sam.Cigar) int {
	var (
		n int
		i int
	)
	for ; i < len(c) && c[i].Type() == sam.CigarHardClipped; i++ {
		n += c[i].Len()
	}
	for ; i < len(c) && c[i].Type() == sam.CigarSoftClipped; i++ {
		n += c[i].Len()
	}
	return n
}

// RevertShift returns the change in alignment start when the CIGAR of a
// read is changed from old to reverted by RevertCigar. The returned value
// is zero or negative since reverted soft clips extend the alignment to
// the left.
func RevertShift(old, reverted sam.Cigar) int {
	return HardSoftOffset(reverted) - HardSoftOffset(old)
}
