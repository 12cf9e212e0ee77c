package runtime

// holderState tracks the three-state ownership contract from spec §3.2 and
// §4.2. Go's garbage collector makes manual lifetime management
// unnecessary, but the distinction between an owning result and a
// non-owning share of `self`/a literal is still part of the object model's
// observable contract (e.g. "self is passed as a non-owning share"), so it
// is preserved here as provenance bookkeeping rather than as anything the
// GC needs.
type holderState int

const (
	holderEmpty holderState = iota
	holderOwning
	holderSharing
)

// ObjectHolder is the ownership handle described in spec §3.2: empty
// (None), owning, or sharing a runtime Value.
type ObjectHolder struct {
	state holderState
	value Value
}

// None returns the empty holder.
func None() ObjectHolder { return ObjectHolder{} }

// Own returns a holder that owns v — used for the result of evaluating an
// expression.
func Own(v Value) ObjectHolder { return ObjectHolder{state: holderOwning, value: v} }

// Share returns a holder that non-owningly borrows v — used for literal
// constants embedded in AST nodes and for `self` inside a method call
// (spec §3.6).
func Share(v Value) ObjectHolder { return ObjectHolder{state: holderSharing, value: v} }

// IsEmpty reports whether the holder represents None.
func (h ObjectHolder) IsEmpty() bool { return h.state == holderEmpty }

// Value returns the wrapped runtime value, or nil if the holder is empty.
// Callers that need a concrete value should check IsEmpty first, or use
// TryAs for the combined check-and-cast.
func (h ObjectHolder) Value() Value { return h.value }

// TryAs performs the runtime downcast described in spec §4.2
// ("try_as<Kind>() — runtime downcast returning an optional/nullable
// reference"), implemented with a Go generic type assertion instead of a
// dynamic_cast.
func TryAs[T Value](h ObjectHolder) (T, bool) {
	v, ok := h.value.(T)
	return v, ok
}

// IsTrue implements the truthiness coercion from spec §3.5.
func IsTrue(h ObjectHolder) bool {
	switch v := h.value.(type) {
	case BoolValue:
		return v.Val
	case NumberValue:
		return v.Val != 0
	case StringValue:
		return v.Val != ""
	default:
		return false
	}
}
