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

// ToTuple returns the record shape holding seq's elements by value, in order.
// Materialize it with the tuple package.
func ToTuple(seq types.Seq) *types.Record {
	return types.NewRecord(elems(seq)...)
}

// ToRefTuple returns the record shape whose slots refer to seq's elements
// instead of holding copies. Go has no reference types, so the shape is the
// pointer record; the live-view half of the contract is provided by
// tuple.Refs.
func ToRefTuple(seq types.Seq) *types.Record {
	return ToPtrTuple(seq)
}

// ToPtrTuple returns the record shape whose slots are pointers to seq's
// elements, in order.
func ToPtrTuple(seq types.Seq) *types.Record {
	out := make([]types.Type, seq.Len())
	for i := range out {
		out[i] = &types.Ptr{Elem: seq.Get(i)}
	}
	return types.NewRecord(out...)
}

// ToVariant returns the closed-sum shape whose alternatives are exactly
// seq's elements, in order. Materialize it with the variant package.
func ToVariant(seq types.Seq) *types.Variant {
	return types.NewVariant(elems(seq)...)
}

// ToPtr pointer-ifies every element of seq, keeping the outer shape
// (ToPtrTuple also changes the outer shape to a record).
func ToPtr(seq types.Seq) types.Seq {
	return Transform(seq, func(t types.Type) types.Type { return &types.Ptr{Elem: t} })
}

// NTuple returns the record shape holding t exactly n times. Panics for
// negative n.
func NTuple(t types.Type, n int) *types.Record {
	if n < 0 {
		panic("typelist.NTuple: negative arity " + strconv.Itoa(n))
	}
	out := make([]types.Type, n)
	for i := range out {
		out[i] = t
	}
	return types.NewRecord(out...)
}
