package internal

// Executable is implemented by every AST node — statement and expression
// alike (§4.4: "Every AST node implements Execute(closure, context) ->
// handle. Returns an empty handle unless stated."). There is deliberately no
// separate visitor/accept pair as in mliezun-grotsky's internal/expr.go and
// internal/stmt.go: spec.md's literal contract is a direct Execute method per
// node, which this project honors rather than generalizing into a visitor.
type Executable interface {
	Execute(cl *Closure, ctx Context) (Handle, error)
}
