// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import "github.com/biogo/readclip/sam"

// SoftClipCigar returns a copy of c with the read bases in [start, stop)
// converted to soft clips. A start of zero clips the left end of the
// alignment, otherwise the right end is clipped and stop is expected to
// be the read length. Existing hard clips are retained and adjacent
// operations of the same type are merged.
func SoftClipCigar(c sam.Cigar, start, stop int) sam.Cigar {
	left := start == 0

	var (
		clipped   sam.Cigar
		elemStart int
	)
	for _, co := range c {
		t := co.Type()
		if t == sam.CigarHardClipped {
			clipped = append(clipped, co)
			continue
		}
		elemEnd := elemStart
		if t.ConsumesQuery() {
			elemEnd += co.Len()
		}

		switch {
		case elemEnd <= start || elemStart >= stop:
			clipped = append(clipped, co)
		case !t.ConsumesQuery():
			// Deletions and skips inside the clip have no bases to keep.
		default:
			kept := start - elemStart
			if left {
				kept = elemEnd - stop
			}
			if kept < 0 {
				kept = 0
			}
			soft := sam.NewCigarOp(sam.CigarSoftClipped, co.Len()-kept)
			rest := sam.NewCigarOp(t, kept)
			if left {
				clipped = append(clipped, soft, rest)
			} else {
				clipped = append(clipped, rest, soft)
			}
		}
		elemStart = elemEnd
	}
	return clipped.Merge()
}

// HardClipCigar returns a copy of c with the read bases in [start, stop)
// removed and recorded as hard clips. A start of zero clips the left end
// of the alignment, otherwise the right end is clipped and stop is expected
// to be the read length. Hard clips already present at the clipped end
// are absorbed into the new hard clip.
//
// The returned Shift holds the number of additional read bases removed
// from each end while cleaning the result with CleanHardClipped.
func HardClipCigar(c sam.Cigar, start, stop int) (sam.Cigar, Shift) {
	left := start == 0

	leftHard := c.LeftHardClipped()
	rightHard := c.RightHardClipped()
	if left {
		leftHard += stop - start
	} else {
		rightHard += stop - start
	}

	clipped := sam.Cigar{sam.NewCigarOp(sam.CigarHardClipped, leftHard)}
	var elemStart int
	for _, co := range c {
		t := co.Type()
		if t == sam.CigarHardClipped {
			continue
		}
		elemEnd := elemStart
		if t.ConsumesQuery() {
			elemEnd += co.Len()
		}

		if elemEnd <= start || elemStart >= stop {
			clipped = append(clipped, co)
		} else {
			kept := start - elemStart
			if left {
				kept = elemEnd - stop
			}
			if kept > 0 {
				clipped = append(clipped, sam.NewCigarOp(t, kept))
			}
		}
		elemStart = elemEnd
	}
	clipped = append(clipped, sam.NewCigarOp(sam.CigarHardClipped, rightHard))

	cleaned, shift := CleanHardClipped(clipped)
	return cleaned.Merge(), shift
}

// RevertCigar returns a copy of c where each run of consecutive soft clip
// and match operations is replaced by a single match operation. All other
// operations are retained in order.
func RevertCigar(c sam.Cigar) sam.Cigar {
	var (
		reverted sam.Cigar
		matches  int
	)
	for _, co := range c {
		switch co.Type() {
		case sam.CigarSoftClipped, sam.CigarMatch:
			matches += co.Len()
			continue
		}
		if matches > 0 {
			reverted = append(reverted, sam.NewCigarOp(sam.CigarMatch, matches))
			matches = 0
		}
		reverted = append(reverted, co)
	}
	if matches > 0 {
		reverted = append(reverted, sam.NewCigarOp(sam.CigarMatch, matches))
	}
	return reverted
}
