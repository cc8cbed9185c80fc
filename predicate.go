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
	"github.com/typelist/typelist/types"
)

// IsSame reports whether seq's elements match args positionally: the arities
// must match and each corresponding pair must be identical. This is a
// structural equality over the full ordered pack, not a set comparison.
// An empty sequence against zero args is true.
func IsSame(seq types.Seq, args ...types.Type) bool {
	if seq.Len() != len(args) {
		return false
	}
	for i, arg := range args {
		if !types.Equal(seq.Get(i), arg) {
			return false
		}
	}
	return true
}

// HasType reports whether t occurs at any position of seq.
func HasType(seq types.Seq, t types.Type) bool {
	return IndexOf(seq, t) != NotFound
}

// HasAnyType reports whether at least one element of b occurs anywhere in a.
// False when b is empty (a disjunction over an empty pack).
func HasAnyType(a, b types.Seq) bool {
	for i, n := 0, b.Len(); i < n; i++ {
		if HasType(a, b.Get(i)) {
			return true
		}
	}
	return false
}

// HasAllTypes reports whether every element of b occurs somewhere in a, each
// occurrence of a duplicate checked independently. True when b is empty
// (a conjunction over an empty pack).
func HasAllTypes(a, b types.Seq) bool {
	for i, n := 0, b.Len(); i < n; i++ {
		if !HasType(a, b.Get(i)) {
			return false
		}
	}
	return true
}
