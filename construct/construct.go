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

// construct provides terse constructors for tokens and sequences, intended to
// be dot-imported by hosts and tests.
package construct

import (
	"reflect"

	"github.com/typelist/typelist/types"
)

// Tokens

// Type constant: `int` or `bool`
func TConst(name string) *types.Const {
	return &types.Const{Name: name}
}

// Integer token: `3`
func TSize(n int) types.Size {
	return types.Size(n)
}

// Concrete Go type lifted into the algebra: `float64`
func TGo[T any]() *types.Go {
	return &types.Go{Rep: reflect.TypeOf((*T)(nil)).Elem()}
}

// Pointer-of token: `*float64`
func TPtr(elem types.Type) *types.Ptr {
	return &types.Ptr{Elem: elem}
}

// Sequences

// Type sequence: `{float64, int8}`
func TList(elems ...types.Type) types.TypeList {
	b := types.NewTypeListBuilder()
	for _, t := range elems {
		b.Append(t)
	}
	return b.Build()
}

// (key, value) pair: a 2-element type sequence
func TPair(key, value types.Type) types.TypeList {
	return TList(key, value)
}

// Record shape: `(float64, int8)`
func TRecord(elems ...types.Type) *types.Record {
	return types.NewRecord(elems...)
}

// Variant shape: `[float64 | int8]`
func TVariant(elems ...types.Type) *types.Variant {
	return types.NewVariant(elems...)
}

// Value sequence: `{1, 2, 3}`
func VList(is ...int) types.ValueList {
	b := types.NewValueListBuilder()
	for _, i := range is {
		b.Append(i)
	}
	return b.Build()
}
