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

// SizeValue returns the arity of a value sequence.
func SizeValue(v types.ValueList) int { return v.Len() }

// NthValue returns the integer at position n (zero-based), panicking when n
// is out of range.
func NthValue(v types.ValueList, n int) int {
	if n < 0 || n >= v.Len() {
		panic("typelist.NthValue: index " + strconv.Itoa(n) + " out of range [0, " + strconv.Itoa(v.Len()) + ")")
	}
	return v.Get(n)
}

// FrontValue returns the first integer of a value sequence, panicking when it
// is empty.
func FrontValue(v types.ValueList) int { return NthValue(v, 0) }

// BackValue returns the last integer of a value sequence, panicking when it
// is empty.
func BackValue(v types.ValueList) int { return NthValue(v, v.Len()-1) }

// SumValue folds a literal integer pack into its sum, zero for the empty
// pack.
func SumValue(is ...int) int {
	sum := 0
	for _, i := range is {
		sum += i
	}
	return sum
}

// intToken projects the carried integer out of an integer-token element,
// panicking on any other token kind.
func intToken(t types.Type) int {
	sz, ok := t.(types.Size)
	if !ok {
		panic("typelist: not an integer token: " + types.TypeString(t))
	}
	return int(sz)
}

// TypeToValue projects each element's carried integer out of a sequence of
// integer tokens, producing a pure integer sequence. Panics when an element
// is not an integer token.
func TypeToValue(seq types.Seq) types.ValueList {
	b := types.NewValueListBuilder()
	for i, n := 0, seq.Len(); i < n; i++ {
		b.Append(intToken(seq.Get(i)))
	}
	return b.Build()
}

// ValueToType wraps each integer of v back into an integer token,
// round-tripping with TypeToValue.
func ValueToType(v types.ValueList) types.TypeList {
	b := types.NewTypeListBuilder()
	v.Range(func(i, n int) bool {
		b.Append(types.Size(n))
		return true
	})
	return b.Build()
}

// FunctionValue applies f to each literal in the pack, collecting the results
// as integer tokens in a type sequence.
func FunctionValue(f func(int) int, is ...int) types.TypeList {
	b := types.NewTypeListBuilder()
	for _, i := range is {
		b.Append(types.Size(f(i)))
	}
	return b.Build()
}

// Sum folds a sequence of integer tokens into its sum, zero for the empty
// sequence. Panics when an element is not an integer token.
func Sum(seq types.Seq) int {
	sum := 0
	for i, n := 0, seq.Len(); i < n; i++ {
		sum += intToken(seq.Get(i))
	}
	return sum
}

// Function applies f to each integer token of seq, producing integer tokens
// in seq's shape.
func Function(seq types.Seq, f func(int) int) types.Seq {
	return Transform(seq, func(t types.Type) types.Type {
		return types.Size(f(intToken(t)))
	})
}
