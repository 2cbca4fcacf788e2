// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sam provides the in-memory SAM alignment record model used by
// the read clipping engine.
package sam

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// A Flags represents a BAM record's alignment FLAG field.
type Flags uint16

const (
	Paired        Flags = 1 << iota // The read is paired in sequencing, no matter whether it is mapped in a pair.
	ProperPair                      // The read is mapped in a proper pair.
	Unmapped                        // The read itself is unmapped; conflictive with ProperPair.
	MateUnmapped                    // The mate is unmapped.
	Reverse                         // The read is mapped to the reverse strand.
	MateReverse                     // The mate is mapped to the reverse strand.
	Read1                           // This is read1.
	Read2                           // This is read2.
	Secondary                       // Not primary alignment.
	QCFail                          // QC failure.
	Duplicate                       // Optical or PCR duplicate.
	Supplementary                   // Supplementary alignment, indicates alignment is part of a chimeric alignment.
)

// String representation of BAM alignment flags:
//  0x001 - p - Paired
//  0x002 - P - ProperPair
//  0x004 - u - Unmapped
//  0x008 - U - MateUnmapped
//  0x010 - r - Reverse
//  0x020 - R - MateReverse
//  0x040 - 1 - Read1
//  0x080 - 2 - Read2
//  0x100 - s - Secondary
//  0x200 - f - QCFail
//  0x400 - d - Duplicate
//  0x800 - S - Supplementary
//
// Unset flags are rendered as '-'.
func (f Flags) String() string {
	// Mate related bits carry no meaning for unpaired reads.
	const pairedMask = ProperPair | MateUnmapped | MateReverse | Read1 | Read2
	if f&Paired == 0 {
		f &^= pairedMask
	}

	const flags = "pPuUrR12sfdS"

	b := make([]byte, len(flags))
	for i, c := range flags {
		if f&(1<<uint(i)) != 0 {
			b[i] = byte(c)
		} else {
			b[i] = '-'
		}
	}
	return string(b)
}

// Record represents a SAM/BAM record.
type Record struct {
	Name      string
	Ref       *Reference
	Pos       int
	MapQ      byte
	Cigar     Cigar
	Flags     Flags
	MateRef   *Reference
	MatePos   int
	TempLen   int
	Seq       Seq
	Qual      []byte
	AuxFields AuxFields
}

// NewRecord returns a Record, checking for consistency of the provided
// attributes.
func NewRecord(name string, ref, mRef *Reference, p, mPos, tLen int, mapQ byte, co []CigarOp, seq, qual []byte, aux []Aux) (*Record, error) {
	if !(validPos(p) && validPos(mPos) && validTmpltLen(tLen) && validSeqLen(len(seq))) {
		return nil, errors.New("sam: value out of range")
	}
	if len(name) == 0 || len(name) > 254 {
		return nil, errors.New("sam: name absent or too long")
	}
	if qual != nil && len(qual) != len(seq) {
		return nil, errors.New("sam: sequence/quality length mismatch")
	}
	if ref == nil && p != -1 {
		return nil, errors.New("sam: specified position != -1 without reference")
	}
	if mRef == nil && mPos != -1 {
		return nil, errors.New("sam: specified mate position != -1 without mate reference")
	}
	if len(co) != 0 && len(seq) != 0 && !Cigar(co).IsValid(len(seq)) {
		return nil, errors.New("sam: sequence/CIGAR length mismatch")
	}
	r := &Record{
		Name:      name,
		Ref:       ref,
		Pos:       p,
		MapQ:      mapQ,
		Cigar:     co,
		MateRef:   mRef,
		MatePos:   mPos,
		TempLen:   tLen,
		Seq:       NewSeq(seq),
		Qual:      qual,
		AuxFields: aux,
	}
	if ref == nil {
		r.Flags |= Unmapped
	}
	return r, nil
}

// Clone returns a deep copy of the receiver. References are shared
// since they are not altered by record operations.
func (r *Record) Clone() *Record {
	c := *r
	c.Cigar = r.Cigar.Clone()
	c.Seq = r.Seq.Clone()
	c.Qual = slices.Clone(r.Qual)
	c.AuxFields = r.AuxFields.Clone()
	return &c
}

// IsUnmapped returns whether the record is not placed on a reference,
// either by having the Unmapped flag set or by lacking a position.
func (r *Record) IsUnmapped() bool {
	return r.Flags&Unmapped != 0 || r.Ref == nil || r.Pos < 0
}

// Empty returns a new empty unmapped record derived from the receiver.
// The returned record has no sequence, qualities or CIGAR, a mapping
// quality of zero, and retains only the read group of the receiver's
// auxiliary fields.
func (r *Record) Empty() *Record {
	e := &Record{
		Name:    r.Name,
		Pos:     -1,
		Flags:   (r.Flags | Unmapped) &^ ProperPair,
		MateRef: r.MateRef,
		MatePos: r.MatePos,
		TempLen: r.TempLen,
	}
	if rg := r.AuxFields.Get(readGroupTag); rg != nil {
		e.AuxFields = AuxFields{slices.Clone(rg)}
	}
	return e
}

// Start returns the lower-coordinate end of the alignment.
func (r *Record) Start() int {
	return r.Pos
}

// Len returns the length of the alignment.
func (r *Record) Len() int {
	return r.End() - r.Start()
}

func max(a, b int) int {
	if a < b {
		return b
	}
	return a
}

// End returns the highest query-consuming coordinate end of the alignment.
// The position returned by End is not valid if r.Cigar.IsValid(r.Seq.Length)
// is false.
func (r *Record) End() int {
	pos := r.Pos
	end := pos
	for _, co := range r.Cigar {
		pos += co.Len() * co.Type().Consumes().Reference
		end = max(end, pos)
	}
	return end
}

// Strand returns an int8 indicating the strand of the alignment. A positive return indicates
// alignment in the forward orientation, a negative returns indicates alignment in the reverse
// orientation.
func (r *Record) Strand() int8 {
	if r.Flags&Reverse == Reverse {
		return -1
	}
	return 1
}

// String returns a string representation of the Record.
func (r *Record) String() string {
	end := r.End()
	return fmt.Sprintf("%s %v %v %d %s:%d..%d (%d) %s:%d %d %s %v %v",
		r.Name,
		r.Flags,
		r.Cigar,
		r.MapQ,
		r.Ref.Name(),
		r.Pos,
		end,
		end-r.Pos,
		r.MateRef.Name(),
		r.MatePos,
		r.TempLen,
		r.Seq.Expand(),
		r.Qual,
		r.AuxFields,
	)
}

// DefaultIndelQuality is the base insertion or deletion quality reported
// for a record that carries only one of the two indel quality fields.
const DefaultIndelQuality = 45

// HasIndelQualities returns whether the record carries base insertion
// or base deletion qualities.
func (r *Record) HasIndelQualities() bool {
	return r.AuxFields.Get(insertionQualityTag) != nil || r.AuxFields.Get(deletionQualityTag) != nil
}

// IndelQualities returns the base insertion and deletion qualities held
// in the BI and BD auxiliary fields of the record. If the record has
// neither field, nil slices are returned. If only one is present the
// other is filled with DefaultIndelQuality.
func (r *Record) IndelQualities() (ins, del []byte, err error) {
	if !r.HasIndelQualities() {
		return nil, nil, nil
	}
	ins, err = r.indelQualities(insertionQualityTag)
	if err != nil {
		return nil, nil, err
	}
	del, err = r.indelQualities(deletionQualityTag)
	if err != nil {
		return nil, nil, err
	}
	return ins, del, nil
}

func (r *Record) indelQualities(tag Tag) ([]byte, error) {
	q := make([]byte, r.Seq.Length)
	aux := r.AuxFields.Get(tag)
	if aux == nil {
		for i := range q {
			q[i] = DefaultIndelQuality
		}
		return q, nil
	}
	if aux.Type() != 'Z' {
		return nil, fmt.Errorf("sam: %v quality field has type %c", tag, aux.Type())
	}
	text := aux[3:]
	if len(text) != len(q) {
		return nil, fmt.Errorf("sam: %v quality length %d does not match sequence length %d", tag, len(text), len(q))
	}
	for i, v := range text {
		if v < 33 {
			return nil, fmt.Errorf("sam: invalid %v quality %q at %d", tag, v, i)
		}
		q[i] = v - 33
	}
	return q, nil
}

// SetIndelQualities sets the BI and BD auxiliary fields of the record to
// the given base insertion and deletion qualities. A nil slice removes
// the corresponding field.
func (r *Record) SetIndelQualities(ins, del []byte) error {
	fields := []struct {
		tag  Tag
		qual []byte
		aux  Aux
	}{
		{tag: insertionQualityTag, qual: ins},
		{tag: deletionQualityTag, qual: del},
	}
	for i, f := range fields {
		if f.qual == nil {
			continue
		}
		if len(f.qual) != r.Seq.Length {
			return fmt.Errorf("sam: %v quality length %d does not match sequence length %d", f.tag, len(f.qual), r.Seq.Length)
		}
		text := make([]byte, len(f.qual))
		for j, q := range f.qual {
			if q > 93 {
				return fmt.Errorf("sam: %v quality %d out of range at %d", f.tag, q, j)
			}
			text[j] = q + 33
		}
		aux, err := NewAux(f.tag, text)
		if err != nil {
			return err
		}
		fields[i].aux = aux
	}
	for _, f := range fields {
		if f.aux == nil {
			r.AuxFields = r.AuxFields.Delete(f.tag)
		} else {
			r.AuxFields = r.AuxFields.Set(f.aux)
		}
	}
	return nil
}

const wordBits = 31

func validLen(i int) bool      { return 1 <= i && i <= 1<<wordBits-1 }
func validSeqLen(i int) bool   { return 0 <= i && i <= 1<<wordBits-1 }
func validPos(i int) bool      { return -1 <= i && i <= (1<<wordBits-1)-1 } // 0-based.
func validTmpltLen(i int) bool { return -(1<<wordBits) <= i && i <= 1<<wordBits-1 }
