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
	"math"
	"strconv"

	"github.com/typelist/typelist/types"
)

// NotFound is the sentinel position reported by IndexOf when a token does not
// occur in a sequence.
const NotFound = math.MaxInt

// Size returns the arity of a sequence. Defined for any shape.
func Size(seq types.Seq) int { return seq.Len() }

// Nth returns the element at position n (zero-based), panicking when n is out
// of range.
func Nth(seq types.Seq, n int) types.Type {
	if n < 0 || n >= seq.Len() {
		panic("typelist.Nth: index " + strconv.Itoa(n) + " out of range [0, " + strconv.Itoa(seq.Len()) + ")")
	}
	return seq.Get(n)
}

// Front returns the first element of a sequence, panicking when it is empty.
func Front(seq types.Seq) types.Type { return Nth(seq, 0) }

// Back returns the last element of a sequence, panicking when it is empty.
func Back(seq types.Seq) types.Type { return Nth(seq, seq.Len()-1) }

// IndexOf returns the position of the first occurrence of t within seq,
// scanning front to back and short-circuiting on the first match, or NotFound
// when t does not occur.
func IndexOf(seq types.Seq, t types.Type) int {
	for i, n := 0, seq.Len(); i < n; i++ {
		if types.Equal(seq.Get(i), t) {
			return i
		}
	}
	return NotFound
}
