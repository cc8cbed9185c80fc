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

// tuple materializes record shapes into runtime values through reflection.
package tuple

import (
	"errors"
	"reflect"
	"strconv"

	"github.com/typelist/typelist/types"
)

// Tuple is a runtime record value materialized from a record shape. Fields
// are laid out as F0..Fn-1, in element order.
type Tuple struct {
	rec *types.Record
	val reflect.Value // addressable struct value
}

// New allocates a zeroed record value for rec. Every element of rec must
// have a Go representation.
func New(rec *types.Record) (*Tuple, error) {
	st, err := rec.StructOf()
	if err != nil {
		return nil, err
	}
	return &Tuple{rec: rec, val: reflect.New(st).Elem()}, nil
}

// Of allocates a record value for rec and fills it with vals, in order. The
// arity of vals must match rec's, and each value must be assignable to its
// slot.
func Of(rec *types.Record, vals ...interface{}) (*Tuple, error) {
	t, err := New(rec)
	if err != nil {
		return nil, err
	}
	if len(vals) != t.Len() {
		return nil, errors.New("Expected " + strconv.Itoa(t.Len()) + " values, found " + strconv.Itoa(len(vals)))
	}
	for i, v := range vals {
		if err := t.Set(i, v); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tuple) Len() int              { return t.rec.Len() }
func (t *Tuple) Record() *types.Record { return t.rec }

// Get the value at position i. Panics when i is out of range.
func (t *Tuple) Get(i int) interface{} { return t.val.Field(i).Interface() }

// Field returns the addressable field value at position i. Panics when i is
// out of range.
func (t *Tuple) Field(i int) reflect.Value { return t.val.Field(i) }

// Interface returns the whole record as a struct value.
func (t *Tuple) Interface() interface{} { return t.val.Interface() }

// Set assigns v to position i.
func (t *Tuple) Set(i int, v interface{}) error {
	f := t.val.Field(i)
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || !rv.Type().AssignableTo(f.Type()) {
		return errors.New("Value " + strconv.Itoa(i) + " is not assignable to " + f.Type().String())
	}
	f.Set(rv)
	return nil
}

// Sub returns a materialized copy of the half-open range [begin, end) as a
// new tuple of that length. Panics when the range is invalid.
func Sub(t *Tuple, begin, end int) (*Tuple, error) {
	checkRange(t, begin, end, "tuple.Sub")
	sub, err := New(subRecord(t.rec, begin, end, false))
	if err != nil {
		return nil, err
	}
	for i := begin; i < end; i++ {
		sub.val.Field(i - begin).Set(t.val.Field(i))
	}
	return sub, nil
}

// Refs returns a pointer sub-view over the half-open range [begin, end): a
// pointer record whose slots address t's fields, so mutation through the
// view is visible in t. Panics when the range is invalid.
func Refs(t *Tuple, begin, end int) (*Tuple, error) {
	checkRange(t, begin, end, "tuple.Refs")
	view, err := New(subRecord(t.rec, begin, end, true))
	if err != nil {
		return nil, err
	}
	for i := begin; i < end; i++ {
		view.val.Field(i - begin).Set(t.val.Field(i).Addr())
	}
	return view, nil
}

// Equal reports whether two tuples hold the same record shape and
// elementwise-equal values. A shape or arity mismatch yields false, never a
// failure.
func Equal(a, b *Tuple) bool {
	if !types.Equal(a.rec, b.rec) {
		return false
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

func checkRange(t *Tuple, begin, end int, op string) {
	if begin < 0 || end < begin || end > t.Len() {
		panic(op + ": range [" + strconv.Itoa(begin) + ", " + strconv.Itoa(end) + ") out of bounds")
	}
}

func subRecord(rec *types.Record, begin, end int, refs bool) *types.Record {
	elems := make([]types.Type, 0, end-begin)
	for i := begin; i < end; i++ {
		if refs {
			elems = append(elems, &types.Ptr{Elem: rec.Get(i)})
		} else {
			elems = append(elems, rec.Get(i))
		}
	}
	return types.NewRecord(elems...)
}
