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

package tuple_test

import (
	"testing"

	. "github.com/typelist/typelist/construct"

	"github.com/typelist/typelist/tuple"
)

func TestNew(t *testing.T) {
	tup, err := tuple.New(TRecord(TGo[float64](), TGo[int8]()))
	if err != nil {
		t.Fatal(err)
	}
	if tup.Len() != 2 {
		t.Fatalf("len: %d", tup.Len())
	}
	if v := tup.Get(0); v != float64(0) {
		t.Fatalf("zero value 0: %v", v)
	}
	if v := tup.Get(1); v != int8(0) {
		t.Fatalf("zero value 1: %v", v)
	}
}

func TestNewAbstractElement(t *testing.T) {
	if _, err := tuple.New(TRecord(TConst("double"))); err == nil {
		t.Fatal("expected an error for an abstract element")
	}
}

func TestOf(t *testing.T) {
	rec := TRecord(TGo[int](), TGo[string](), TGo[float64]())
	tup, err := tuple.Of(rec, 1, "a", 4.5)
	if err != nil {
		t.Fatal(err)
	}
	if v := tup.Get(1); v != "a" {
		t.Fatalf("value 1: %v", v)
	}
	if v := tup.Interface(); v != struct {
		F0 int
		F1 string
		F2 float64
	}{1, "a", 4.5} {
		t.Fatalf("interface: %#v", v)
	}

	if _, err = tuple.Of(rec, 1, "a"); err == nil {
		t.Fatal("expected an arity error")
	}
	if _, err = tuple.Of(rec, 1, 2, 4.5); err == nil {
		t.Fatal("expected an assignability error")
	}
}

func TestSet(t *testing.T) {
	tup, err := tuple.New(TRecord(TGo[int]()))
	if err != nil {
		t.Fatal(err)
	}
	if err := tup.Set(0, 7); err != nil {
		t.Fatal(err)
	}
	if v := tup.Get(0); v != 7 {
		t.Fatalf("value: %v", v)
	}
	if err := tup.Set(0, "x"); err == nil {
		t.Fatal("expected an assignability error")
	}
}

func TestSub(t *testing.T) {
	rec := TRecord(TGo[int](), TGo[string](), TGo[float64](), TGo[byte](), TGo[float32]())
	tup, err := tuple.Of(rec, 1, "a", 4.5, byte('C'), float32(5.0))
	if err != nil {
		t.Fatal(err)
	}

	sub, err := tuple.Sub(tup, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	want, err := tuple.Of(TRecord(TGo[float64](), TGo[byte]()), 4.5, byte('C'))
	if err != nil {
		t.Fatal(err)
	}
	if !tuple.Equal(sub, want) {
		t.Fatalf("sub: %#v", sub.Interface())
	}

	wrong, err := tuple.Of(TRecord(TGo[byte]()), byte('C'))
	if err != nil {
		t.Fatal(err)
	}
	if tuple.Equal(sub, wrong) {
		t.Fatal("expected sub to differ from a shorter tuple")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out-of-bounds range")
		}
	}()
	tuple.Sub(tup, 3, 6)
}

func TestRefs(t *testing.T) {
	tup, err := tuple.Of(TRecord(TGo[int](), TGo[float64](), TGo[string]()), 1, 4.5, "a")
	if err != nil {
		t.Fatal(err)
	}

	view, err := tuple.Refs(tup, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if view.Len() != 2 {
		t.Fatalf("view len: %d", view.Len())
	}

	// Mutation through the view is visible in the original.
	p, ok := view.Get(0).(*float64)
	if !ok {
		t.Fatalf("view slot 0: %T", view.Get(0))
	}
	*p = 9.25
	if v := tup.Get(1); v != 9.25 {
		t.Fatalf("value after mutation: %v", v)
	}
}

func TestEqual(t *testing.T) {
	rec := TRecord(TGo[int](), TGo[string]())
	a, err := tuple.Of(rec, 1, "a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := tuple.Of(rec, 1, "a")
	if err != nil {
		t.Fatal(err)
	}
	if !tuple.Equal(a, b) {
		t.Fatal("expected equal tuples")
	}

	if err := b.Set(1, "b"); err != nil {
		t.Fatal(err)
	}
	if tuple.Equal(a, b) {
		t.Fatal("expected tuples with different values to differ")
	}

	c, err := tuple.Of(TRecord(TGo[int]()), 1)
	if err != nil {
		t.Fatal(err)
	}
	if tuple.Equal(a, c) {
		t.Fatal("expected tuples of different arity to differ")
	}
}
