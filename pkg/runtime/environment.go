package runtime

// Scope is the "scope map" from spec §3.3: an ordered-insertion-irrelevant
// mapping from variable name to ObjectHolder, representing a single call
// frame. Unlike the teacher's own Environment, there is no parent-pointer
// chain here: spec §3.3 says a
// scope map "represents a single call frame" and spec §1's Non-goals rule
// out "closures capturing lexical environments beyond method self", and the
// original source backs that up literally — every ast::Statement::Execute
// takes a single `Closure&` passed through unchanged, including into
// IfElse/Compound bodies; only ClassInstance::Call ever constructs a new
// one. Flattening the teacher's Environment to match is a deliberate
// divergence, not an oversight (see DESIGN.md).
type Scope struct {
	vars map[string]ObjectHolder
}

// NewScope creates an empty call frame.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]ObjectHolder)}
}

// Define inserts or overwrites a binding in this scope.
func (s *Scope) Define(name string, value ObjectHolder) {
	s.vars[name] = value
}

// Get retrieves a binding. ok is false if name is unbound in this frame —
// there is no outer scope to fall back to.
func (s *Scope) Get(name string) (ObjectHolder, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Has reports whether name is bound in this scope.
func (s *Scope) Has(name string) bool {
	_, ok := s.vars[name]
	return ok
}
