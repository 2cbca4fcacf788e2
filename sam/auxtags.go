// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// An Aux represents an auxilliary data field from a SAM alignment record.
type Aux []byte

// NewAux returns a new Aux with the given tag and value. The SAM type of the
// field is determined by the dynamic type of value:
//
//  byte                                - A
//  int, int8, int16, int32             - smallest of c, s or i holding the value
//  uint, uint16, uint32                - smallest of C, S or I holding the value
//  float32, float64                    - f
//  string, []byte                      - Z
//
// Note that a byte value is stored as a printable character, not an integer.
func NewAux(t Tag, value interface{}) (Aux, error) {
	switch v := value.(type) {
	case byte:
		return Aux{t[0], t[1], 'A', v}, nil
	case int8:
		return newIntAux(t, int64(v))
	case int16:
		return newIntAux(t, int64(v))
	case int32:
		return newIntAux(t, int64(v))
	case int:
		return newIntAux(t, int64(v))
	case uint16:
		return newUintAux(t, uint64(v))
	case uint32:
		return newUintAux(t, uint64(v))
	case uint:
		return newUintAux(t, uint64(v))
	case float32:
		return newFloatAux(t, v), nil
	case float64:
		return newFloatAux(t, float32(v)), nil
	case string:
		return append(Aux{t[0], t[1], 'Z'}, v...), nil
	case []byte:
		return append(Aux{t[0], t[1], 'Z'}, v...), nil
	default:
		return nil, fmt.Errorf("sam: unsupported aux value type %T", value)
	}
}

func newIntAux(t Tag, i int64) (Aux, error) {
	switch {
	case i >= 0:
		return newUintAux(t, uint64(i))
	case i >= math.MinInt8:
		return Aux{t[0], t[1], 'c', byte(int8(i))}, nil
	case i >= math.MinInt16:
		a := Aux{t[0], t[1], 's', 0, 0}
		binary.LittleEndian.PutUint16(a[3:5], uint16(int16(i)))
		return a, nil
	case i >= math.MinInt32:
		a := Aux{t[0], t[1], 'i', 0, 0, 0, 0}
		binary.LittleEndian.PutUint32(a[3:7], uint32(int32(i)))
		return a, nil
	default:
		return nil, fmt.Errorf("sam: integer value out of range %d < %d", i, math.MinInt32)
	}
}

func newUintAux(t Tag, u uint64) (Aux, error) {
	switch {
	case u <= math.MaxUint8:
		return Aux{t[0], t[1], 'C', byte(u)}, nil
	case u <= math.MaxUint16:
		a := Aux{t[0], t[1], 'S', 0, 0}
		binary.LittleEndian.PutUint16(a[3:5], uint16(u))
		return a, nil
	case u <= math.MaxUint32:
		a := Aux{t[0], t[1], 'I', 0, 0, 0, 0}
		binary.LittleEndian.PutUint32(a[3:7], uint32(u))
		return a, nil
	default:
		return nil, fmt.Errorf("sam: unsigned integer value out of range %d > %d", u, uint64(math.MaxUint32))
	}
}

func newFloatAux(t Tag, f float32) Aux {
	a := Aux{t[0], t[1], 'f', 0, 0, 0, 0}
	binary.LittleEndian.PutUint32(a[3:7], math.Float32bits(f))
	return a
}

var auxKind = [256]byte{
	'A': 'A',
	'c': 'i', 'C': 'i',
	's': 'i', 'S': 'i',
	'i': 'i', 'I': 'i',
	'f': 'f',
	'Z': 'Z',
}

// String returns the string representation of an Aux type.
func (a Aux) String() string {
	if a.Type() == 'A' {
		return fmt.Sprintf("%s:%c:%c", []byte(a[:2]), a.Kind(), a.Value())
	}
	return fmt.Sprintf("%s:%c:%v", []byte(a[:2]), a.Kind(), a.Value())
}

// A Tag represents an auxilliary tag label.
type Tag [2]byte

var (
	readGroupTag        = Tag{'R', 'G'}
	insertionQualityTag = Tag{'B', 'I'}
	deletionQualityTag  = Tag{'B', 'D'}
)

// NewTag returns a Tag from the tag string. It panics if len(tag) != 2.
func NewTag(tag string) Tag {
	if len(tag) != 2 {
		panic("sam: illegal tag length")
	}
	return Tag{tag[0], tag[1]}
}

// String returns a string representation of a Tag.
func (t Tag) String() string { return string(t[:]) }

// Tag returns the Tag representation of the Aux tag ID.
func (a Aux) Tag() Tag { var t Tag; copy(t[:], a[:2]); return t }

// Type returns a byte corresponding to the type of the auxilliary tag.
// Returned values are in {'A', 'c', 'C', 's', 'S', 'i', 'I', 'f', 'Z'}.
func (a Aux) Type() byte { return a[2] }

// Kind returns a byte corresponding to the kind of the auxilliary tag.
// Returned values are in {'A', 'i', 'f', 'Z'}.
func (a Aux) Kind() byte { return auxKind[a[2]] }

// Value returns v containing the value of the auxilliary tag.
func (a Aux) Value() interface{} {
	switch t := a.Type(); t {
	case 'A':
		return a[3]
	case 'c':
		return int8(a[3])
	case 'C':
		return uint8(a[3])
	case 's':
		return int16(binary.LittleEndian.Uint16(a[3:5]))
	case 'S':
		return binary.LittleEndian.Uint16(a[3:5])
	case 'i':
		return int32(binary.LittleEndian.Uint32(a[3:7]))
	case 'I':
		return binary.LittleEndian.Uint32(a[3:7])
	case 'f':
		return math.Float32frombits(binary.LittleEndian.Uint32(a[3:7]))
	case 'Z':
		return string(a[3:])
	default:
		return fmt.Errorf("%%!(UNKNOWN type=%c)", t)
	}
}

// AuxFields is a set of auxiliary fields.
type AuxFields []Aux

// Get returns the auxiliary field identified by the given tag, or nil
// if no field matches.
func (a AuxFields) Get(tag Tag) Aux {
	for _, f := range a {
		if f.Tag() == tag {
			return f
		}
	}
	return nil
}

// Set returns a with aux replacing the field with the same tag, or with
// aux appended if no field matches.
func (a AuxFields) Set(aux Aux) AuxFields {
	for i, f := range a {
		if f.Tag() == aux.Tag() {
			a[i] = aux
			return a
		}
	}
	return append(a, aux)
}

// Delete returns a with the field identified by the given tag removed.
func (a AuxFields) Delete(tag Tag) AuxFields {
	for i, f := range a {
		if f.Tag() == tag {
			return append(a[:i], a[i+1:]...)
		}
	}
	return a
}

// Clone returns a deep copy of a.
func (a AuxFields) Clone() AuxFields {
	if a == nil {
		return nil
	}
	c := make(AuxFields, len(a))
	for i, f := range a {
		c[i] = slices.Clone(f)
	}
	return c
}
