package internal

// Closure is the mapping from identifier to handle that serves as this
// language's only symbol-table form (§3). Unlike mliezun-grotsky's env
// (internal/env.go), which chains scopes through an `enclosing *env`
// pointer, Closure is deliberately flat: §5 states name resolution is
// explicit and "the evaluator sees exactly the closure it is handed" — there
// is no enclosing-scope walk. A method call constructs one fresh Closure
// (self + formal params); blocks (if/else bodies) execute directly against
// the closure they were handed, never creating a nested one.
type Closure struct {
	values map[string]Handle
}

// NewClosure returns an empty Closure.
func NewClosure() *Closure {
	return &Closure{values: make(map[string]Handle)}
}

// Get looks up name in this closure only (no chaining).
func (c *Closure) Get(name string) (Handle, bool) {
	h, ok := c.values[name]
	return h, ok
}

// Define binds (or rebinds) name to h. Used uniformly for assignment,
// class-definition binding, and parameter/self binding: a single "store"
// operation, since Closure has no nested scopes to distinguish define from
// assign.
func (c *Closure) Define(name string, h Handle) {
	c.values[name] = h
}
