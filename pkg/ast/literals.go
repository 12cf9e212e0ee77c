package ast

import "github.com/OlgaLukovenkova/mython/pkg/runtime"

// NumericConst, StringConst, BoolConst, and NoneValue are the four literal
// node kinds from spec §3.4. The first three each hold a non-owning Share of
// a runtime value constructed once at parse time (NoneValue holds nothing),
// mirroring original_source
// /statement.cpp's NumericConst/StringConst/ValueStatement<T> nodes, which
// store the literal inline and hand out the same ObjectHolder on every
// Execute.

type NumericConst struct {
	holder runtime.ObjectHolder
}

func NewNumericConst(value int64) *NumericConst {
	return &NumericConst{holder: runtime.Share(runtime.NumberValue{Val: value})}
}

func (*NumericConst) Kind() Kind { return KindNumericConst }

func (n *NumericConst) Execute(*runtime.Scope, runtime.Context) (runtime.ObjectHolder, error) {
	return n.holder, nil
}

type StringConst struct {
	holder runtime.ObjectHolder
}

func NewStringConst(value string) *StringConst {
	return &StringConst{holder: runtime.Share(runtime.StringValue{Val: value})}
}

func (*StringConst) Kind() Kind { return KindStringConst }

func (n *StringConst) Execute(*runtime.Scope, runtime.Context) (runtime.ObjectHolder, error) {
	return n.holder, nil
}

type BoolConst struct {
	holder runtime.ObjectHolder
}

func NewBoolConst(value bool) *BoolConst {
	return &BoolConst{holder: runtime.Share(runtime.BoolValue{Val: value})}
}

func (*BoolConst) Kind() Kind { return KindBoolConst }

func (n *BoolConst) Execute(*runtime.Scope, runtime.Context) (runtime.ObjectHolder, error) {
	return n.holder, nil
}

// NoneValue is the literal `None` (spec §3.2, §3.5). It always evaluates to
// the empty holder, not a Share of some sentinel value.
type NoneValue struct{}

func NewNoneValue() *NoneValue { return &NoneValue{} }

func (*NoneValue) Kind() Kind { return KindNoneValue }

func (*NoneValue) Execute(*runtime.Scope, runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.None(), nil
}
