// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pool provides size stratified scratch buffers for expanding
// packed sequence data.
package pool

import (
	"math/bits"
	"sync"
)

// buffers holds []byte pools where element i returns slices with
// a capacity of 1<<i.
var buffers [63]sync.Pool

func init() {
	for i := range buffers {
		size := 1 << uint(i)
		buffers[i].New = func() interface{} {
			return make([]byte, size)
		}
	}
}

// GetBuffer returns a []byte with len size and a cap that is less
// than 2*size. The contents of the returned slice are not zeroed.
func GetBuffer(size int) []byte {
	if size <= 0 {
		return nil
	}
	return buffers[class(uint(size))].Get().([]byte)[:size]
}

// PutBuffer returns buf to the pool it was obtained from. Buffers
// not obtained from GetBuffer are accepted if their capacity is a
// power of two.
func PutBuffer(buf []byte) {
	c := cap(buf)
	if c == 0 || c&(c-1) != 0 {
		return
	}
	buffers[class(uint(c))].Put(buf[:0])
}

// class returns the ceiling of the base 2 log of size, the index
// of the pool holding buffers able to store size bytes.
func class(size uint) int {
	return bits.Len(size - 1)
}
