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

// Transform applies f to every element of seq, preserving position and outer
// shape.
func Transform(seq types.Seq, f func(types.Type) types.Type) types.Seq {
	out := make([]types.Type, seq.Len())
	for i := range out {
		out[i] = f(seq.Get(i))
	}
	return seq.Make(out)
}

// TransformSize applies f to every element of seq together with a fixed
// integer n shared across all elements, preserving position and outer shape.
func TransformSize(seq types.Seq, f func(types.Type, int) types.Type, n int) types.Seq {
	out := make([]types.Type, seq.Len())
	for i := range out {
		out[i] = f(seq.Get(i), n)
	}
	return seq.Make(out)
}

// Substitute rebuilds seq's element pack in shape's shape: the outer
// container changes, the elements do not. shape is an exemplar; its own
// elements are ignored.
func Substitute(seq, shape types.Seq) types.Seq {
	return shape.Make(elems(seq))
}

// Transfer substitutes every nested sequence of s into shape, collecting the
// results in s's shape. Panics when an element of s is not a sequence.
func Transfer(s, shape types.Seq) types.Seq {
	out := make([]types.Type, s.Len())
	for i := range out {
		out[i] = Substitute(inner(s.Get(i)), shape)
	}
	return s.Make(out)
}
