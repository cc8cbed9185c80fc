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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

type typePrinter struct {
	sb strings.Builder
}

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type: `{float64, int8}` for
// type sequences, `{1, 2, 3}` for value sequences, `(a, b)` for records,
// `[a | b]` for variants, `*a` for pointer tokens, bare digits for integer
// tokens.
func TypeString(t Type) string {
	p := printerPool.Get().(*typePrinter)
	typeString(p, t)
	s := p.sb.String()
	p.Release()
	return s
}

func typeString(p *typePrinter, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case Size:
		p.sb.WriteString(strconv.Itoa(int(t)))

	case *Go:
		p.sb.WriteString(t.Rep.String())

	case *Ptr:
		p.sb.WriteByte('*')
		typeString(p, t.Elem)

	case ValueList:
		p.sb.WriteByte('{')
		t.Range(func(i, v int) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(strconv.Itoa(v))
			return true
		})
		p.sb.WriteByte('}')

	case TypeList:
		seqString(p, t, "{", ", ", "}")

	case *Record:
		seqString(p, t, "(", ", ", ")")

	case *Variant:
		seqString(p, t, "[", " | ", "]")

	case Seq: // host-supplied shapes print as Name{...}
		p.sb.WriteString(t.TypeName())
		seqString(p, t, "{", ", ", "}")

	default:
		p.sb.WriteString(t.TypeName())
	}
}

func seqString(p *typePrinter, seq Seq, open, sep, close string) {
	p.sb.WriteString(open)
	for i, n := 0, seq.Len(); i < n; i++ {
		if i > 0 {
			p.sb.WriteString(sep)
		}
		typeString(p, seq.Get(i))
	}
	p.sb.WriteString(close)
}
