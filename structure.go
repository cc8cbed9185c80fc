// The MIT License (MIT)
//
// Copyright (c) 2021 The typelist Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package typelist

import (
	"strconv"

	"github.com/typelist/typelist/types"
)

// elems copies a sequence's element pack into a slice.
func elems(seq types.Seq) []types.Type {
	out := make([]types.Type, seq.Len())
	for i := range out {
		out[i] = seq.Get(i)
	}
	return out
}

// Cat concatenates two sequences, order preserved. The result is rebuilt with
// a's shape regardless of b's shape, normalizing two different sequence
// abstractions to one.
func Cat(a, b types.Seq) types.Seq {
	out := make([]types.Type, 0, a.Len()+b.Len())
	out = append(out, elems(a)...)
	out = append(out, elems(b)...)
	return a.Make(out)
}

// EraseType removes every occurrence of t from seq, preserving the relative
// order of the remaining elements.
func EraseType(seq types.Seq, t types.Type) types.Seq {
	out := make([]types.Type, 0, seq.Len())
	for i, n := 0, seq.Len(); i < n; i++ {
		if e := seq.Get(i); !types.Equal(e, t) {
			out = append(out, e)
		}
	}
	return seq.Make(out)
}

// EraseNth removes exactly the element at position n; the remaining elements
// are renumbered implicitly. Panics when n is out of range.
func EraseNth(seq types.Seq, n int) types.Seq {
	if n < 0 || n >= seq.Len() {
		panic("typelist.EraseNth: index " + strconv.Itoa(n) + " out of range [0, " + strconv.Itoa(seq.Len()) + ")")
	}
	out := elems(seq)
	return seq.Make(append(out[:n], out[n+1:]...))
}

// SubSeq extracts the contiguous half-open range [begin, end) as a new
// sequence of seq's shape. Panics when the range is invalid.
func SubSeq(seq types.Seq, begin, end int) types.Seq {
	if begin < 0 || end < begin || end > seq.Len() {
		panic("typelist.SubSeq: range [" + strconv.Itoa(begin) + ", " + strconv.Itoa(end) + ") out of bounds")
	}
	out := make([]types.Type, 0, end-begin)
	for i := begin; i < end; i++ {
		out = append(out, seq.Get(i))
	}
	return seq.Make(out)
}
