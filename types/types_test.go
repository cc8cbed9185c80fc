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

package types

import (
	"reflect"
	"testing"
)

func list(elems ...Type) TypeList {
	b := NewTypeListBuilder()
	for _, t := range elems {
		b.Append(t)
	}
	return b.Build()
}

func values(is ...int) ValueList {
	b := NewValueListBuilder()
	for _, i := range is {
		b.Append(i)
	}
	return b.Build()
}

func TestEqualConst(t *testing.T) {
	if !Equal(&Const{"int"}, &Const{"int"}) {
		t.Fatal("expected int == int")
	}
	if Equal(&Const{"int"}, &Const{"bool"}) {
		t.Fatal("expected int != bool")
	}
	if Equal(&Const{"int"}, Size(1)) {
		t.Fatal("expected int != 1")
	}
}

func TestEqualSize(t *testing.T) {
	if !Equal(Size(3), Size(3)) {
		t.Fatal("expected 3 == 3")
	}
	if Equal(Size(3), Size(4)) {
		t.Fatal("expected 3 != 4")
	}
}

func TestEqualGo(t *testing.T) {
	f64 := &Go{Rep: reflect.TypeOf(float64(0))}
	if !Equal(f64, &Go{Rep: reflect.TypeOf(float64(0))}) {
		t.Fatal("expected float64 == float64")
	}
	if Equal(f64, &Go{Rep: reflect.TypeOf(int8(0))}) {
		t.Fatal("expected float64 != int8")
	}
}

func TestEqualPtr(t *testing.T) {
	if !Equal(&Ptr{Elem: &Const{"int"}}, &Ptr{Elem: &Const{"int"}}) {
		t.Fatal("expected *int == *int")
	}
	if Equal(&Ptr{Elem: &Const{"int"}}, &Const{"int"}) {
		t.Fatal("expected *int != int")
	}
}

func TestEqualSequences(t *testing.T) {
	a := list(&Const{"int"}, &Const{"bool"})
	if !Equal(a, list(&Const{"int"}, &Const{"bool"})) {
		t.Fatal("expected identical lists to be equal")
	}
	if Equal(a, list(&Const{"bool"}, &Const{"int"})) {
		t.Fatal("expected reordered lists to differ")
	}
	if Equal(a, list(&Const{"int"})) {
		t.Fatal("expected lists of different arity to differ")
	}
	// Shape is part of identity.
	if Equal(a, NewRecord(&Const{"int"}, &Const{"bool"})) {
		t.Fatal("expected a list and a record to differ")
	}
	if Equal(NewRecord(&Const{"int"}), NewVariant(&Const{"int"})) {
		t.Fatal("expected a record and a variant to differ")
	}
	// Nested sequences compare elementwise.
	if !Equal(list(list(&Const{"int"})), list(list(&Const{"int"}))) {
		t.Fatal("expected nested lists to be equal")
	}
}

func TestEqualValueList(t *testing.T) {
	if !Equal(values(1, 2, 3), values(1, 2, 3)) {
		t.Fatal("expected identical value lists to be equal")
	}
	if Equal(values(1, 2, 3), values(1, 2)) {
		t.Fatal("expected value lists of different arity to differ")
	}
	if Equal(values(1, 2, 3), values(1, 2, 4)) {
		t.Fatal("expected different value lists to differ")
	}
	if !Equal(values(), values()) {
		t.Fatal("expected empty value lists to be equal")
	}
}

func TestTypeString(t *testing.T) {
	if s := TypeString(list(&Const{"double"}, &Const{"char"})); s != "{double, char}" {
		t.Fatalf("list: %s", s)
	}
	if s := TypeString(EmptyTypeList); s != "{}" {
		t.Fatalf("empty list: %s", s)
	}
	if s := TypeString(NewRecord(&Const{"double"}, &Const{"char"})); s != "(double, char)" {
		t.Fatalf("record: %s", s)
	}
	if s := TypeString(NewVariant(&Const{"double"}, &Const{"char"})); s != "[double | char]" {
		t.Fatalf("variant: %s", s)
	}
	if s := TypeString(&Ptr{Elem: &Const{"double"}}); s != "*double" {
		t.Fatalf("ptr: %s", s)
	}
	if s := TypeString(Size(42)); s != "42" {
		t.Fatalf("size: %s", s)
	}
	if s := TypeString(&Go{Rep: reflect.TypeOf(float64(0))}); s != "float64" {
		t.Fatalf("go token: %s", s)
	}
	if s := TypeString(values(1, 2, 3)); s != "{1, 2, 3}" {
		t.Fatalf("value list: %s", s)
	}
	if s := TypeString(list(list(&Const{"char"}), values(7))); s != "{{char}, {7}}" {
		t.Fatalf("nested: %s", s)
	}
}

func TestValueListRejectsNegatives(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic appending a negative value")
		}
	}()
	b := NewValueListBuilder()
	b.Append(-1)
}

func TestGoType(t *testing.T) {
	f64 := &Go{Rep: reflect.TypeOf(float64(0))}
	rt, err := GoType(f64)
	if err != nil {
		t.Fatal(err)
	}
	if rt.Kind() != reflect.Float64 {
		t.Fatalf("kind: %s", rt.Kind())
	}

	rt, err = GoType(&Ptr{Elem: f64})
	if err != nil {
		t.Fatal(err)
	}
	if rt.String() != "*float64" {
		t.Fatalf("ptr type: %s", rt)
	}

	rt, err = GoType(Size(3))
	if err != nil {
		t.Fatal(err)
	}
	if rt.Kind() != reflect.Int {
		t.Fatalf("size kind: %s", rt.Kind())
	}

	if _, err = GoType(&Const{"double"}); err == nil {
		t.Fatal("expected an error for an abstract token")
	}
}

func TestStructOf(t *testing.T) {
	rec := NewRecord(
		&Go{Rep: reflect.TypeOf(float64(0))},
		&Go{Rep: reflect.TypeOf(int8(0))},
	)
	st, err := rec.StructOf()
	if err != nil {
		t.Fatal(err)
	}
	if st.NumField() != 2 {
		t.Fatalf("fields: %d", st.NumField())
	}
	if f := st.Field(0); f.Name != "F0" || f.Type.Kind() != reflect.Float64 {
		t.Fatalf("field 0: %s %s", f.Name, f.Type)
	}
	if f := st.Field(1); f.Name != "F1" || f.Type.Kind() != reflect.Int8 {
		t.Fatalf("field 1: %s %s", f.Name, f.Type)
	}

	if _, err = NewRecord(&Const{"double"}).StructOf(); err == nil {
		t.Fatal("expected an error for an abstract element")
	}
}
