package types

import (
	"strconv"

	"github.com/benbjohnson/immutable"
)

var EmptyValueList = ValueList{emptyList}

// ValueList is an ordered, fixed-arity, persistent sequence of non-negative
// integers, structurally parallel to TypeList. A value sequence is itself a
// token, though not a sequence of tokens.
type ValueList struct {
	l *immutable.List
}

func NewValueList() ValueList { return ValueList{emptyList} }

func SingletonValueList(i int) ValueList {
	checkValue(i)
	return ValueList{emptyList.Append(i)}
}

func (l ValueList) Len() int                       { return l.list().Len() }
func (l ValueList) Get(i int) int                  { return l.list().Get(i).(int) }
func (l ValueList) Slice(start, end int) ValueList { return ValueList{l.list().Slice(start, end)} }

// If f returns false, iteration will be stopped.
func (l ValueList) Range(f func(int, int) bool) {
	iter := l.list().Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(int)) {
			return
		}
	}
}

func (l ValueList) Builder() ValueListBuilder {
	return ValueListBuilder{immutable.NewListBuilder(l.list())}
}

func (l ValueList) list() *immutable.List {
	if l.l == nil {
		return emptyList
	}
	return l.l
}

type ValueListBuilder struct {
	b *immutable.ListBuilder
}

func NewValueListBuilder() ValueListBuilder {
	return ValueListBuilder{immutable.NewListBuilder(emptyList)}
}

func (b ValueListBuilder) Len() int { return b.b.Len() }

func (b ValueListBuilder) Append(i int) {
	checkValue(i)
	b.b.Append(i)
}

func (b ValueListBuilder) Set(i, v int) {
	checkValue(v)
	b.b.Set(i, v)
}

func (b ValueListBuilder) Build() ValueList { return ValueList{b.b.List()} }

// Value sequences hold non-negative integers only.
func checkValue(i int) {
	if i < 0 {
		panic("types: negative value " + strconv.Itoa(i) + " in value sequence")
	}
}
