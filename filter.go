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

// inner matches an element of a sequence-of-sequences apart as a sequence,
// panicking on a malformed element.
func inner(t types.Type) types.Seq {
	s, ok := t.(types.Seq)
	if !ok {
		panic("typelist: not a sequence: " + types.TypeString(t))
	}
	return s
}

func filter(s types.Seq, keep func(types.Seq) bool) types.Seq {
	out := make([]types.Type, 0, s.Len())
	for i, n := 0, s.Len(); i < n; i++ {
		if si := inner(s.Get(i)); keep(si) {
			out = append(out, si)
		}
	}
	return s.Make(out)
}

// FilterHaveType keeps exactly the nested sequences of s that contain c,
// preserving their relative order. The result is empty if nothing matches.
func FilterHaveType(s types.Seq, c types.Type) types.Seq {
	return filter(s, func(si types.Seq) bool { return HasType(si, c) })
}

// FilterHaveAllTypes keeps the nested sequences of s that contain every
// element of cs, preserving their relative order.
func FilterHaveAllTypes(s, cs types.Seq) types.Seq {
	return filter(s, func(si types.Seq) bool { return HasAllTypes(si, cs) })
}

// FilterHaveAnyType keeps the nested sequences of s that contain at least one
// element of cs, preserving their relative order.
func FilterHaveAnyType(s, cs types.Seq) types.Seq {
	return filter(s, func(si types.Seq) bool { return HasAnyType(si, cs) })
}
