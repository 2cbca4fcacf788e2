// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

import (
	"bytes"
	"fmt"
)

// Cigar is a set of CIGAR operations.
type Cigar []CigarOp

// IsValid returns whether the CIGAR string is valid for a record of the given
// sequence length. Validity is defined by the sum of query consuming operations
// matching the given length, clipping operations only being present at the ends
// of alignments, and that CigarBack operations only result in query-consuming
// positions at or right of the start of the alignment.
func (c Cigar) IsValid(length int) bool {
	var pos int
	for i, co := range c {
		ct := co.Type()
		if ct == CigarHardClipped && i != 0 && i != len(c)-1 {
			return false
		}
		if ct == CigarSoftClipped && i != 0 && i != len(c)-1 {
			if c[i-1].Type() != CigarHardClipped && c[i+1].Type() != CigarHardClipped {
				return false
			}
		}
		con := ct.Consumes()
		if pos < 0 && con.Query != 0 {
			return false
		}
		length -= co.Len() * con.Query
		pos += co.Len() * con.Reference
	}
	return length == 0
}

// String returns the CIGAR string for c.
func (c Cigar) String() string {
	if len(c) == 0 {
		return "*"
	}
	var b bytes.Buffer
	for _, co := range c {
		fmt.Fprint(&b, co)
	}
	return b.String()
}

// Lengths returns the number of reference and read bases described by the Cigar.
func (c Cigar) Lengths() (ref, read int) {
	var con Consume
	for _, co := range c {
		con = co.Type().Consumes()
		if co.Type() != CigarBack {
			ref += co.Len() * con.Reference
		}
		read += co.Len() * con.Query
	}
	return ref, read
}

// Clone returns an independent copy of c.
func (c Cigar) Clone() Cigar { return append(c[:0:0], c...) }

// Merge returns a normalised copy of c where runs of adjacent operations of
// the same type are combined into a single operation and zero-length
// operations are removed.
func (c Cigar) Merge() Cigar {
	var m Cigar
	for _, co := range c {
		if co.Len() == 0 {
			continue
		}
		if n := len(m); n != 0 && m[n-1].Type() == co.Type() {
			m[n-1] = NewCigarOp(co.Type(), m[n-1].Len()+co.Len())
			continue
		}
		m = append(m, co)
	}
	return m
}

// LeftHardClipped returns the number of hard clipped bases at the start
// of the alignment described by c.
func (c Cigar) LeftHardClipped() int {
	var n int
	for _, co := range c {
		if co.Type() != CigarHardClipped {
			break
		}
		n += co.Len()
	}
	return n
}

// RightHardClipped returns the number of hard clipped bases at the end
// of the alignment described by c. A Cigar made only of hard clips reports
// them all as left clipped.
func (c Cigar) RightHardClipped() int {
	var n int
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Type() != CigarHardClipped {
			return n
		}
		n += c[i].Len()
	}
	return 0
}

// CigarOp is a single CIGAR operation including the operation type and the
// length of the operation.
type CigarOp uint32

// NewCigarOp returns a CIGAR operation of the specified type with length n.
func NewCigarOp(t CigarOpType, n int) CigarOp {
	return CigarOp(t) | (CigarOp(n) << 4)
}

// Type returns the type of the CIGAR operation for the CigarOp.
func (co CigarOp) Type() CigarOpType { return CigarOpType(co & 0xf) }

// Len returns the number of positions affected by the CigarOp CIGAR operation.
func (co CigarOp) Len() int { return int(co >> 4) }

// String returns the string representation of the CigarOp
func (co CigarOp) String() string { return fmt.Sprintf("%d%s", co.Len(), co.Type().String()) }

// A CigarOpType represents the type of operation described by a CigarOp.
type CigarOpType byte

const (
	CigarMatch       CigarOpType = iota // Alignment match (can be a sequence match or mismatch).
	CigarInsertion                      // Insertion to the reference.
	CigarDeletion                       // Deletion from the reference.
	CigarSkipped                        // Skipped region from the reference.
	CigarSoftClipped                    // Soft clipping (clipped sequences present in SEQ).
	CigarHardClipped                    // Hard clipping (clipped sequences NOT present in SEQ).
	CigarPadded                         // Padding (silent deletion from padded reference).
	CigarEqual                          // Sequence match.
	CigarMismatch                       // Sequence mismatch.
	CigarBack                           // Skip backwards.
	lastCigar
)

var cigarOps = []string{"M", "I", "D", "N", "S", "H", "P", "=", "X", "B", "?"}

// Consumes returns the CIGAR operation alignment consumption characteristics for the CigarOpType.
//
// The Consume values for each of the CigarOpTypes is as follows:
//
//                    Query  Reference
//  CigarMatch          1        1
//  CigarInsertion      1        0
//  CigarDeletion       0        1
//  CigarSkipped        0        1
//  CigarSoftClipped    1        0
//  CigarHardClipped    0        0
//  CigarPadded         0        0
//  CigarEqual          1        1
//  CigarMismatch       1        1
//  CigarBack           0       -1
//
func (ct CigarOpType) Consumes() Consume {
	if ct > lastCigar {
		ct = lastCigar
	}
	return consume[ct]
}

// ConsumesQuery returns whether the operation type consumes read bases.
func (ct CigarOpType) ConsumesQuery() bool { return ct.Consumes().Query != 0 }

// ConsumesReference returns whether the operation type moves along the
// reference. CigarBack is reported as consuming since it moves the
// reference position, albeit backwards.
func (ct CigarOpType) ConsumesReference() bool { return ct.Consumes().Reference != 0 }

// String returns the string representation of a CigarOpType.
func (ct CigarOpType) String() string {
	if ct > lastCigar {
		ct = lastCigar
	}
	return cigarOps[ct]
}

// Consume describes how CIGAR operations consume alignment bases.
type Consume struct {
	Query, Reference int
}

// CigarBack describes an overlap between two segments of a read,
// for example from Complete Genomics data, where the alignment moves
// backwards along the reference.
//
// http://sourceforge.net/p/samtools/mailman/message/28463294/
var consume = []Consume{
	CigarMatch:       {Query: 1, Reference: 1},
	CigarInsertion:   {Query: 1, Reference: 0},
	CigarDeletion:    {Query: 0, Reference: 1},
	CigarSkipped:     {Query: 0, Reference: 1},
	CigarSoftClipped: {Query: 1, Reference: 0},
	CigarHardClipped: {Query: 0, Reference: 0},
	CigarPadded:      {Query: 0, Reference: 0},
	CigarEqual:       {Query: 1, Reference: 1},
	CigarMismatch:    {Query: 1, Reference: 1},
	CigarBack:        {Query: 0, Reference: -1},
	lastCigar:        {},
}

var cigarOpTypeLookup [256]CigarOpType

func init() {
	for i := range cigarOpTypeLookup {
		cigarOpTypeLookup[i] = lastCigar
	}
	for op, c := range []byte{'M', 'I', 'D', 'N', 'S', 'H', 'P', '=', 'X', 'B'} {
		cigarOpTypeLookup[c] = CigarOpType(op)
	}
}

// maxCigarOpLen is the largest length representable by a CigarOp.
const maxCigarOpLen = 1 << 28

// ParseCigar returns a Cigar parsed from the provided byte slice.
// The empty CIGAR, "*", is returned as a nil Cigar.
func ParseCigar(b []byte) (Cigar, error) {
	if len(b) == 1 && b[0] == '*' {
		return nil, nil
	}
	var c Cigar
	for i := 0; i < len(b); {
		j := i
		for j < len(b) && '0' <= b[j] && b[j] <= '9' {
			j++
		}
		if j == i {
			return nil, fmt.Errorf("sam: failed to parse cigar string %q: missing operation count at %d", b, i)
		}
		if j == len(b) {
			return nil, fmt.Errorf("sam: failed to parse cigar string %q: missing operation after %q", b, b[i:j])
		}
		n, err := atoi(b[i:j], i)
		if err != nil {
			return nil, err
		}
		op := cigarOpTypeLookup[b[j]]
		if op == lastCigar {
			return nil, fmt.Errorf("sam: failed to parse cigar string %q: unknown operation %q", b, b[j])
		}
		c = append(c, NewCigarOp(op, n))
		i = j + 1
	}
	return c, nil
}

// atoi returns the integer interpretation of b which must be an ASCII decimal number representation.
func atoi(b []byte, i int) (int, error) {
	n := 0
	for _, v := range b {
		n = n*10 + int(v-'0')
		if n >= maxCigarOpLen {
			return n, fmt.Errorf("sam: invalid cigar operation count: %q at %d", b, i)
		}
	}
	return n, nil
}
