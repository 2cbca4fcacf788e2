// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

import (
	"gopkg.in/check.v1"
)

var newAuxTests = []struct {
	tag   string
	value interface{}

	want      Aux
	wantValue interface{}
	wantText  string
}{
	{
		tag: "XA", value: byte('x'),
		want: Aux{'X', 'A', 'A', 'x'}, wantValue: byte('x'), wantText: "XA:A:x",
	},
	{
		tag: "NM", value: 4,
		want: Aux{'N', 'M', 'C', 0x04}, wantValue: uint8(4), wantText: "NM:i:4",
	},
	{
		tag: "NE", value: -100,
		want: Aux{'N', 'E', 'c', 0x9c}, wantValue: int8(-100), wantText: "NE:i:-100",
	},
	{
		tag: "MN", value: int16(-1000),
		want: Aux{'M', 'N', 's', 0x18, 0xfc}, wantValue: int16(-1000), wantText: "MN:i:-1000",
	},
	{
		tag: "XS", value: uint(300),
		want: Aux{'X', 'S', 'S', 0x2c, 0x01}, wantValue: uint16(300), wantText: "XS:i:300",
	},
	{
		tag: "XI", value: int32(-70000),
		want: Aux{'X', 'I', 'i', 0x90, 0xee, 0xfe, 0xff}, wantValue: int32(-70000), wantText: "XI:i:-70000",
	},
	{
		tag: "XU", value: uint32(70000),
		want: Aux{'X', 'U', 'I', 0x70, 0x11, 0x01, 0x00}, wantValue: uint32(70000), wantText: "XU:i:70000",
	},
	{
		tag: "fT", value: float32(3.14),
		want: Aux{'f', 'T', 'f', 0xc3, 0xf5, 0x48, 0x40}, wantValue: float32(3.14), wantText: "fT:f:3.14",
	},
	{
		tag: "MD", value: "2C0T2T1C13",
		want: Aux{'M', 'D', 'Z', '2', 'C', '0', 'T', '2', 'T', '1', 'C', '1', '3'}, wantValue: "2C0T2T1C13", wantText: "MD:Z:2C0T2T1C13",
	},
	{
		tag: "RG", value: []byte("group"),
		want: Aux{'R', 'G', 'Z', 'g', 'r', 'o', 'u', 'p'}, wantValue: "group", wantText: "RG:Z:group",
	},
}

func (s *S) TestNewAux(c *check.C) {
	for _, test := range newAuxTests {
		a, err := NewAux(NewTag(test.tag), test.value)
		c.Assert(err, check.IsNil, check.Commentf("%s", test.tag))
		c.Check(a, check.DeepEquals, test.want)
		c.Check(a.Tag(), check.Equals, NewTag(test.tag))
		c.Check(a.Value(), check.Equals, test.wantValue)
		c.Check(a.String(), check.Equals, test.wantText)
	}

	for _, bad := range []interface{}{int64(1), -1 << 40, uint(1) << 40, struct{}{}, nil} {
		_, err := NewAux(NewTag("XX"), bad)
		c.Check(err, check.NotNil, check.Commentf("%T", bad))
	}

	c.Check(func() { NewTag("XXX") }, check.PanicMatches, "sam: illegal tag length")
}

func (s *S) TestAuxFields(c *check.C) {
	nm := mustAux(NewAux(NewTag("NM"), 1))
	md := mustAux(NewAux(NewTag("MD"), "10"))
	rg := mustAux(NewAux(NewTag("RG"), "group"))

	var fields AuxFields
	fields = fields.Set(nm)
	fields = fields.Set(md)
	c.Check(fields, check.DeepEquals, AuxFields{nm, md})
	c.Check(fields.Get(NewTag("MD")), check.DeepEquals, md)
	c.Check(fields.Get(NewTag("RG")), check.IsNil)

	nm2 := mustAux(NewAux(NewTag("NM"), 2))
	fields = fields.Set(nm2)
	c.Check(fields, check.DeepEquals, AuxFields{nm2, md})

	fields = fields.Set(rg)
	fields = fields.Delete(NewTag("MD"))
	c.Check(fields, check.DeepEquals, AuxFields{nm2, rg})
	fields = fields.Delete(NewTag("XX"))
	c.Check(fields, check.DeepEquals, AuxFields{nm2, rg})

	cl := fields.Clone()
	c.Check(cl, check.DeepEquals, fields)
	cl[1][3] = 'G'
	c.Check(fields.Get(NewTag("RG")).Value(), check.Equals, "group")

	c.Check(AuxFields(nil).Clone(), check.IsNil)
}
