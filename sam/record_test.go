// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

import (
	"github.com/kortschak/utter"
	"gopkg.in/check.v1"
)

func mustReference(name string, id, length int) *Reference {
	r, err := NewReference(name, id, length)
	if err != nil {
		panic(err)
	}
	return r
}

func mustAux(a Aux, err error) Aux {
	if err != nil {
		panic(err)
	}
	return a
}

func (s *S) TestNewReference(c *check.C) {
	ref, err := NewReference("chr1", 0, 1000)
	c.Assert(err, check.IsNil)
	c.Check(ref.Name(), check.Equals, "chr1")
	c.Check(ref.ID(), check.Equals, 0)
	c.Check(ref.Len(), check.Equals, 1000)
	c.Check(ref.String(), check.Equals, "chr1")

	for _, test := range []struct {
		name       string
		id, length int
	}{
		{name: "", id: 0, length: 10},
		{name: "chr1", id: 0, length: 0},
		{name: "chr1", id: -2, length: 10},
		{name: "chr1", id: 0, length: 1 << 31},
	} {
		_, err := NewReference(test.name, test.id, test.length)
		c.Check(err, check.NotNil, check.Commentf("%+v", test))
	}

	var none *Reference
	c.Check(none.Name(), check.Equals, "*")
	c.Check(none.ID(), check.Equals, -1)
	c.Check(none.Len(), check.Equals, -1)
	c.Check(none.String(), check.Equals, "*")
}

func (s *S) TestNewRecord(c *check.C) {
	chr1 := mustReference("chr1", 0, 1000)
	seq := []byte("ACGTACGTAC")
	qual := []byte{30, 30, 30, 30, 30, 30, 30, 30, 30, 30}

	r, err := NewRecord("r001", chr1, nil, 99, -1, 0, 60, mustCigar("3S7M"), seq, qual, nil)
	c.Assert(err, check.IsNil)
	c.Check(r.IsUnmapped(), check.Equals, false)
	c.Check(r.Start(), check.Equals, 99)
	c.Check(r.End(), check.Equals, 106)
	c.Check(r.Len(), check.Equals, 7)
	c.Check(string(r.Seq.Expand()), check.Equals, string(seq))

	r, err = NewRecord("u001", nil, nil, -1, -1, 0, 0, nil, seq, nil, nil)
	c.Assert(err, check.IsNil)
	c.Check(r.IsUnmapped(), check.Equals, true)
	c.Check(r.Flags&Unmapped, check.Equals, Unmapped)

	for _, test := range []struct {
		name  string
		ref   *Reference
		pos   int
		cigar string
		qual  []byte
	}{
		{name: "", ref: chr1, pos: 0, cigar: "10M", qual: qual},
		{name: "r", ref: nil, pos: 10, cigar: "10M", qual: qual},
		{name: "r", ref: chr1, pos: -2, cigar: "10M", qual: qual},
		{name: "r", ref: chr1, pos: 0, cigar: "10M", qual: qual[:4]},
		{name: "r", ref: chr1, pos: 0, cigar: "8M", qual: qual},
	} {
		_, err := NewRecord(test.name, test.ref, nil, test.pos, -1, 0, 60, mustCigar(test.cigar), seq, test.qual, nil)
		c.Check(err, check.NotNil, check.Commentf("%+v", test))
	}
}

func (s *S) TestIsUnmapped(c *check.C) {
	chr1 := mustReference("chr1", 0, 1000)
	for _, test := range []struct {
		rec  Record
		want bool
	}{
		{rec: Record{Ref: chr1, Pos: 10}, want: false},
		{rec: Record{Ref: chr1, Pos: 0}, want: false},
		{rec: Record{Ref: chr1, Pos: 10, Flags: Unmapped}, want: true},
		{rec: Record{Ref: nil, Pos: 10}, want: true},
		{rec: Record{Ref: chr1, Pos: -1}, want: true},
	} {
		c.Check(test.rec.IsUnmapped(), check.Equals, test.want, check.Commentf("%s", utter.Sdump(test.rec)))
	}
}

func (s *S) TestRecordClone(c *check.C) {
	chr1 := mustReference("chr1", 0, 1000)
	rg := mustAux(NewAux(NewTag("RG"), "group"))
	r, err := NewRecord("r001", chr1, chr1, 99, 199, 110, 60, mustCigar("3S7M"), []byte("ACGTACGTAC"), []byte("##########"), []Aux{rg})
	c.Assert(err, check.IsNil)

	cl := r.Clone()
	c.Check(cl, check.DeepEquals, r)
	c.Check(cl.Ref == r.Ref, check.Equals, true)

	cl.Cigar[0] = NewCigarOp(CigarHardClipped, 3)
	cl.Seq.Seq[0] = 0xff
	cl.Qual[0] = 0
	cl.AuxFields[0][3] = 'x'
	c.Check(r.Cigar.String(), check.Equals, "3S7M")
	c.Check(string(r.Seq.Expand()), check.Equals, "ACGTACGTAC")
	c.Check(r.Qual[0], check.Equals, byte('#'))
	c.Check(r.AuxFields[0].Value(), check.Equals, "group")
}

func (s *S) TestRecordEmpty(c *check.C) {
	chr1 := mustReference("chr1", 0, 1000)
	chr2 := mustReference("chr2", 1, 1000)
	rg := mustAux(NewAux(NewTag("RG"), "group"))
	nm := mustAux(NewAux(NewTag("NM"), 2))
	r, err := NewRecord("r001", chr1, chr2, 99, 199, 0, 60, mustCigar("10M"), []byte("ACGTACGTAC"), []byte("##########"), []Aux{nm, rg})
	c.Assert(err, check.IsNil)
	r.Flags = Paired | ProperPair | Read1 | Reverse

	e := r.Empty()
	c.Check(e, check.DeepEquals, &Record{
		Name:      "r001",
		Pos:       -1,
		Flags:     Paired | Unmapped | Read1 | Reverse,
		MateRef:   chr2,
		MatePos:   199,
		AuxFields: AuxFields{rg},
	})
	c.Check(e.IsUnmapped(), check.Equals, true)
	c.Check(e.End(), check.Equals, -1)

	e.AuxFields[0][3] = 'x'
	c.Check(r.AuxFields.Get(NewTag("RG")).Value(), check.Equals, "group")

	r.AuxFields = AuxFields{nm}
	c.Check(r.Empty().AuxFields, check.IsNil)
}

func (s *S) TestIndelQualities(c *check.C) {
	chr1 := mustReference("chr1", 0, 1000)
	r, err := NewRecord("r001", chr1, nil, 99, -1, 0, 60, mustCigar("5M"), []byte("ACGTA"), nil, nil)
	c.Assert(err, check.IsNil)

	c.Check(r.HasIndelQualities(), check.Equals, false)
	ins, del, err := r.IndelQualities()
	c.Check(err, check.IsNil)
	c.Check(ins, check.IsNil)
	c.Check(del, check.IsNil)

	c.Assert(r.SetIndelQualities([]byte{10, 20, 30, 40, 0}, []byte{1, 2, 3, 4, 93}), check.IsNil)
	c.Check(r.HasIndelQualities(), check.Equals, true)
	c.Check(r.AuxFields.Get(NewTag("BI")).String(), check.Equals, "BI:Z:+5?I!")
	c.Check(r.AuxFields.Get(NewTag("BD")).String(), check.Equals, "BD:Z:\"#$%~")
	ins, del, err = r.IndelQualities()
	c.Assert(err, check.IsNil)
	c.Check(ins, check.DeepEquals, []byte{10, 20, 30, 40, 0})
	c.Check(del, check.DeepEquals, []byte{1, 2, 3, 4, 93})

	// Setting only insertion qualities removes the deletion qualities
	// which then default.
	c.Assert(r.SetIndelQualities([]byte{5, 5, 5, 5, 5}, nil), check.IsNil)
	c.Check(r.AuxFields.Get(NewTag("BD")), check.IsNil)
	ins, del, err = r.IndelQualities()
	c.Assert(err, check.IsNil)
	c.Check(ins, check.DeepEquals, []byte{5, 5, 5, 5, 5})
	c.Check(del, check.DeepEquals, []byte{45, 45, 45, 45, 45})

	// Failed updates leave the record unaltered.
	orig := r.AuxFields.Clone()
	c.Check(r.SetIndelQualities(nil, []byte{1, 2}), check.NotNil)
	c.Check(r.SetIndelQualities([]byte{1, 2, 3, 4, 94}, nil), check.NotNil)
	c.Check(r.AuxFields, check.DeepEquals, orig)

	c.Assert(r.SetIndelQualities(nil, nil), check.IsNil)
	c.Check(r.HasIndelQualities(), check.Equals, false)
	c.Check(r.AuxFields, check.HasLen, 0)

	r.AuxFields = AuxFields{mustAux(NewAux(NewTag("BI"), "II"))}
	_, _, err = r.IndelQualities()
	c.Check(err, check.NotNil)
	r.AuxFields = AuxFields{mustAux(NewAux(NewTag("BI"), 30))}
	_, _, err = r.IndelQualities()
	c.Check(err, check.NotNil)
}

func (s *S) TestFlagsString(c *check.C) {
	for _, test := range []struct {
		flags Flags
		want  string
	}{
		{flags: 0, want: "------------"},
		{flags: Paired | ProperPair | Read1, want: "pP----1-----"},
		{flags: Paired | MateUnmapped | MateReverse | Read2, want: "p--U-R-2----"},
		{flags: ProperPair | Reverse | Read2, want: "----r-------"},
		{flags: Unmapped | Secondary | QCFail | Duplicate | Supplementary, want: "--u-----sfdS"},
	} {
		c.Check(test.flags.String(), check.Equals, test.want)
	}
}
