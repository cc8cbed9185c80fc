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
)

// Type is the base interface for all type tokens. A token is opaque: the
// algebra never inspects it beyond identity and position.
type Type interface {
	TypeName() string
}

func (t *Const) TypeName() string    { return "Const" }
func (t Size) TypeName() string      { return "Size" }
func (t *Go) TypeName() string       { return "Go" }
func (t *Ptr) TypeName() string      { return "Ptr" }
func (l TypeList) TypeName() string  { return "List" }
func (l ValueList) TypeName() string { return "ValueList" }
func (t *Record) TypeName() string   { return "Record" }
func (t *Variant) TypeName() string  { return "Variant" }

// Seq is the interface for tagged sequence shapes: a shape (tag) plus an
// ordered element pack which can be matched apart and rebuilt. Any
// host-supplied sequence abstraction implementing Seq may flow through the
// algebra; producing operations rebuild their results through Make, so no
// concrete shape is privileged.
type Seq interface {
	Type
	Len() int
	// Get the element at position i. Panics when i is out of range.
	Get(i int) Type
	// Make a new sequence of the receiver's shape around an element pack.
	Make(elems []Type) Seq
}

// Type constant: `int` or `bool`
type Const struct {
	Name string
}

// Integer token: an integral constant carried as a type, bridging the type
// algebra and the value algebra.
type Size int

// Go token: a concrete Go type lifted into the algebra.
type Go struct {
	Rep reflect.Type
}

// Pointer-of token: `*float64`
type Ptr struct {
	Elem Type
}

// Record type: the fixed-arity heterogeneous product shape over an element
// pack, in order.
type Record struct {
	elems TypeList
}

func NewRecord(elems ...Type) *Record {
	b := NewTypeListBuilder()
	for _, t := range elems {
		b.Append(t)
	}
	return &Record{elems: b.Build()}
}

func (t *Record) Len() int              { return t.elems.Len() }
func (t *Record) Get(i int) Type        { return t.elems.Get(i) }
func (t *Record) Make(elems []Type) Seq { return NewRecord(elems...) }
func (t *Record) Elems() TypeList       { return t.elems }

// Variant type: the closed sum shape whose alternatives are an element pack,
// in order.
type Variant struct {
	elems TypeList
}

func NewVariant(elems ...Type) *Variant {
	b := NewTypeListBuilder()
	for _, t := range elems {
		b.Append(t)
	}
	return &Variant{elems: b.Build()}
}

func (t *Variant) Len() int              { return t.elems.Len() }
func (t *Variant) Get(i int) Type        { return t.elems.Get(i) }
func (t *Variant) Make(elems []Type) Seq { return NewVariant(elems...) }
func (t *Variant) Elems() TypeList       { return t.elems }

// Equal reports whether two tokens are identical. Identity is per token kind:
// constants by name, integer tokens by value, Go tokens by reflect.Type,
// pointer tokens by element, value sequences elementwise, and sequences by
// shape, arity and elementwise identity. Sequences must be acyclic.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Const:
		bc, ok := b.(*Const)
		return ok && a.Name == bc.Name
	case Size:
		bs, ok := b.(Size)
		return ok && a == bs
	case *Go:
		bg, ok := b.(*Go)
		return ok && a.Rep == bg.Rep
	case *Ptr:
		bp, ok := b.(*Ptr)
		return ok && Equal(a.Elem, bp.Elem)
	case ValueList:
		bv, ok := b.(ValueList)
		if !ok || a.Len() != bv.Len() {
			return false
		}
		eq := true
		a.Range(func(i, v int) bool {
			eq = bv.Get(i) == v
			return eq
		})
		return eq
	case Seq:
		bs, ok := b.(Seq)
		if !ok || reflect.TypeOf(a) != reflect.TypeOf(b) || a.Len() != bs.Len() {
			return false
		}
		for i, n := 0, a.Len(); i < n; i++ {
			if !Equal(a.Get(i), bs.Get(i)) {
				return false
			}
		}
		return true
	}
	return a == b
}
