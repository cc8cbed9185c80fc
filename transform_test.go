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

package typelist_test

import (
	"testing"

	. "github.com/typelist/typelist"
	. "github.com/typelist/typelist/construct"

	"github.com/typelist/typelist/types"
)

func TestTransform(t *testing.T) {
	list := TList(tDouble, tInt)
	got := Transform(list, func(e types.Type) types.Type { return TList(e) })
	expectString(t, "wrap each element", got, "{{double}, {int}}")

	expectString(t, "transform empty list",
		Transform(TList(), func(e types.Type) types.Type { return TList(e) }), "{}")
}

func TestTransformSize(t *testing.T) {
	list := TList(tDouble, tInt)
	got := TransformSize(list, func(e types.Type, n int) types.Type {
		return TPair(e, TSize(n))
	}, 10)
	expectString(t, "pair each element with 10", got, "{{double, 10}, {int, 10}}")
}

func TestSubstitute(t *testing.T) {
	list := TList(tDouble, tInt, tChar)
	got := Substitute(list, TRecord())
	expectString(t, "substitute into record shape", got, "(double, int, char)")

	// The exemplar's own elements are ignored.
	got = Substitute(list, TRecord(tBool, tBool))
	expectString(t, "substitute ignores exemplar elements", got, "(double, int, char)")

	got = Substitute(TRecord(tDouble, tInt), types.EmptyTypeList)
	expectString(t, "substitute into list shape", got, "{double, int}")
}

func TestTransfer(t *testing.T) {
	s := TList(TList(tDouble, tInt), TList(tChar))
	got := Transfer(s, TRecord())
	expectString(t, "transfer into record shapes", got, "{(double, int), (char)}")

	expectString(t, "transfer empty outer list", Transfer(TList(), TRecord()), "{}")

	mustPanic(t, "transfer over a flat list", func() { Transfer(TList(tDouble), TRecord()) })
}
