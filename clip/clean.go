// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import "github.com/biogo/readclip/sam"

// Shift holds the number of read bases that must be removed from the
// start and end of a read in addition to a requested hard clip.
type Shift struct {
	Start, End int
}

// CleanHardClipped removes operations that consume no read bases from the
// ends of a hard clipped CIGAR, folding all hard clips found at each end
// into a single hard clip operation. Deletions and skips left at an end of
// the alignment by a hard clip no longer anchor any read base, so they are
// dropped.
//
// The end of the CIGAR is cleaned first and then the start. Since only
// operations consuming no read bases are removed, the returned Shift is
// always zero.
func CleanHardClipped(c sam.Cigar) (sam.Cigar, Shift) {
	var shift Shift
	end, n := cleanLeading(reversed(c))
	shift.End = n
	start, n := cleanLeading(reversed(end))
	shift.Start = n
	return start, shift
}

// cleanLeading returns c with leading operations up to the first query
// consuming operation replaced by a single hard clip holding the sum of
// the leading hard clips, and the number of read bases removed.
func cleanLeading(c sam.Cigar) (sam.Cigar, int) {
	var (
		cleaned sam.Cigar
		hard    int
		removed int
		started bool
	)
	for _, co := range c {
		if !started {
			t := co.Type()
			if t == sam.CigarHardClipped {
				hard += co.Len()
				continue
			}
			if !t.ConsumesQuery() {
				removed += co.Len() * t.Consumes().Query
				continue
			}
			started = true
			if hard > 0 {
				cleaned = append(cleaned, sam.NewCigarOp(sam.CigarHardClipped, hard))
			}
		}
		cleaned = append(cleaned, co)
	}
	return cleaned, removed
}

func reversed(c sam.Cigar) sam.Cigar {
	r := make(sam.Cigar, len(c))
	for i, co := range c {
		r[len(c)-1-i] = co
	}
	return r
}
