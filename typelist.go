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

// typelist provides a pure algebra over ordered sequences of type tokens and
// ordered sequences of non-negative integers.
//
// Types are treated as first-class data: a token (types.Type) identifies a
// type, a sequence (types.Seq) is a tagged, ordered, fixed-arity collection
// of tokens, and every algorithm is a pure function from sequences to
// sequences, tokens, or integers. The design is adapted from C++ typelist
// metaprogramming libraries, re-architected over immutable runtime data.
//
// The algebra is polymorphic over the sequence shape: any abstraction that
// can be matched into a tag plus an element pack (the types.Seq interface)
// flows through unchanged, and producing operations rebuild their results
// through the shape's own constructor.
//
// Supported operations:
//
//   - Sequence queries: Size, Nth, Front, Back, IndexOf
//   - Structural algebra: Cat, EraseType, EraseNth, SubSeq
//   - Predicates: IsSame, HasType, HasAnyType, HasAllTypes
//   - Filters over sequences of sequences: FilterHaveType, FilterHaveAllTypes, FilterHaveAnyType
//   - Transforms: Transform, TransformSize, Substitute, Transfer
//   - Associative lookup over (key, value) pair sequences: Map, ApplyMap
//   - Conversions: ToTuple, ToRefTuple, ToPtrTuple, ToVariant, ToPtr, NTuple
//   - Value algebra: SizeValue, NthValue, FrontValue, BackValue, SumValue,
//     TypeToValue, ValueToType, FunctionValue, Sum, Function
//   - Bounded iteration: For
//
// Sequences are immutable and every operation is total over its well-formed
// domain: positional access out of range panics, failed lookups yield a
// sentinel or a caller-supplied default, and mismatched shapes in predicates
// yield false. Callers guard risky positional access with a Size check.
//
// The tuple and variant packages materialize record and sum shapes into
// runtime values through reflection.
package typelist

import (
	"github.com/typelist/typelist/types"
)

// For invokes action once per integer in [begin, end), in ascending order.
// The index is passed as an integer token, so the action can feed it back
// into the algebra. There is no early exit: action runs unconditionally for
// every index in range, and skipping an index must be a no-op branch inside
// the action. An empty or inverted range invokes nothing.
func For(begin, end int, action func(i types.Size)) {
	for i := begin; i < end; i++ {
		action(types.Size(i))
	}
}
