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
	"errors"
	"reflect"
	"strconv"
)

// GoType resolves the concrete Go representation of a token, when it has one.
// Go tokens carry their representation directly; pointer tokens resolve to
// pointers of their element's representation; integer tokens resolve to int;
// record shapes resolve through StructOf. All other tokens are abstract.
func GoType(t Type) (reflect.Type, error) {
	switch t := t.(type) {
	case *Go:
		return t.Rep, nil
	case *Ptr:
		elem, err := GoType(t.Elem)
		if err != nil {
			return nil, err
		}
		return reflect.PointerTo(elem), nil
	case Size:
		return reflect.TypeOf(int(0)), nil
	case *Record:
		return t.StructOf()
	}
	return nil, errors.New("No Go representation for " + TypeString(t))
}

// StructOf materializes the record shape as `struct{F0 T0; F1 T1; ...}`,
// fields in element order. Every element must have a Go representation.
func (t *Record) StructOf() (reflect.Type, error) {
	fields := make([]reflect.StructField, t.Len())
	for i := range fields {
		rt, err := GoType(t.Get(i))
		if err != nil {
			return nil, err
		}
		fields[i] = reflect.StructField{Name: "F" + strconv.Itoa(i), Type: rt}
	}
	return reflect.StructOf(fields), nil
}
