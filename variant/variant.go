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

// variant materializes closed-sum shapes into runtime values through
// reflection.
package variant

import (
	"errors"
	"reflect"
	"strconv"

	"github.com/typelist/typelist/types"
)

// Value is a runtime closed-sum value: it holds exactly one alternative of a
// variant shape at a time.
type Value struct {
	vt   *types.Variant
	alts []reflect.Type
	idx  int
	val  reflect.Value
}

// New returns a value over vt's alternatives, initialized to the zero value
// of alternative 0. The alternative set must be non-empty and every
// alternative must have a Go representation.
func New(vt *types.Variant) (*Value, error) {
	if vt.Len() == 0 {
		return nil, errors.New("Variant has no alternatives")
	}
	alts := make([]reflect.Type, vt.Len())
	for i := range alts {
		rt, err := types.GoType(vt.Get(i))
		if err != nil {
			return nil, err
		}
		alts[i] = rt
	}
	return &Value{vt: vt, alts: alts, val: reflect.New(alts[0]).Elem()}, nil
}

// Alternatives returns the variant shape the value ranges over.
func (v *Value) Alternatives() *types.Variant { return v.vt }

// Index returns the position of the alternative currently held.
func (v *Value) Index() int { return v.idx }

// Get the value of the alternative currently held.
func (v *Value) Get() interface{} { return v.val.Interface() }

// Set stores x in the first alternative x's Go type is assignable to, in
// order.
func (v *Value) Set(x interface{}) error {
	rv := reflect.ValueOf(x)
	if !rv.IsValid() {
		return errors.New("Variant value must not be nil")
	}
	for i, alt := range v.alts {
		if rv.Type().AssignableTo(alt) {
			store(v, i, rv)
			return nil
		}
	}
	return errors.New("No alternative matches " + rv.Type().String())
}

// SetIndex stores x as alternative i. Panics when i is out of range.
func (v *Value) SetIndex(i int, x interface{}) error {
	if i < 0 || i >= len(v.alts) {
		panic("variant.SetIndex: index " + strconv.Itoa(i) + " out of range [0, " + strconv.Itoa(len(v.alts)) + ")")
	}
	rv := reflect.ValueOf(x)
	if !rv.IsValid() || !rv.Type().AssignableTo(v.alts[i]) {
		return errors.New("Value is not assignable to alternative " + strconv.Itoa(i))
	}
	store(v, i, rv)
	return nil
}

func store(v *Value, i int, rv reflect.Value) {
	val := reflect.New(v.alts[i]).Elem()
	val.Set(rv)
	v.idx, v.val = i, val
}
