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

// A map is not a distinct entity: any sequence whose elements are 2-element
// (key, value) sequences acts as an associative lookup table. No uniqueness
// constraint is placed on keys; lookup is first-match.

// pair matches a map element apart as a non-empty (key, value) sequence,
// panicking on a malformed element.
func pair(t types.Type) types.Seq {
	p, ok := t.(types.Seq)
	if !ok || p.Len() == 0 {
		panic("typelist: not a (key, value) pair: " + types.TypeString(t))
	}
	return p
}

// Map returns the value half of the first pair of m whose key equals key, or
// def when no pair matches. Total, first-match, linear.
func Map(m types.Seq, key, def types.Type) types.Type {
	for i, n := 0, m.Len(); i < n; i++ {
		p := pair(m.Get(i))
		if types.Equal(Front(p), key) {
			return Back(p)
		}
	}
	return def
}

// ApplyMap looks up every element of keys in m independently, collecting the
// resolved values (or defaults) in keys's shape, order preserved.
func ApplyMap(m, keys types.Seq, def types.Type) types.Seq {
	return Transform(keys, func(k types.Type) types.Type { return Map(m, k, def) })
}
