package internal

// handleState tags a Handle as empty, owning, or sharing (§3). Go's garbage
// collector already keeps any Object referenced by a live Handle alive, so
// unlike original_source's ObjectHolder (a shared_ptr with a no-op deleter
// for the sharing case), this Handle does not need reference counting to
// satisfy I1 — the state tag is kept purely for API fidelity to the spec's
// three-state model and to let callers express intent (e.g. "self" is always
// bound as sharing), not because Go needs it for memory safety. This
// simplification is recorded in DESIGN.md.
type handleState int

const (
	stateEmpty handleState = iota
	stateOwning
	stateSharing
)

// Handle is a polymorphic reference to an Object in one of the three states
// above (I1).
type Handle struct {
	obj   Object
	state handleState
}

// Empty returns the empty handle (the handle-level None, distinct from a
// wrapped None object — see object.go).
func Empty() Handle { return Handle{} }

// Own wraps obj in an owning handle.
func Own(obj Object) Handle { return Handle{obj: obj, state: stateOwning} }

// Share wraps obj in a sharing (non-owning) handle.
func Share(obj Object) Handle { return Handle{obj: obj, state: stateSharing} }

// IsEmpty reports whether h carries no object (I1: an empty handle's
// pointer is null).
func (h Handle) IsEmpty() bool { return h.obj == nil }

// Get returns the held Object, or nil for an empty handle.
func (h Handle) Get() Object { return h.obj }

// TryAs downcasts h to a concrete Object variant, mirroring
// ObjectHolder::TryAs<T> in original_source/src/runtime.h.
func TryAs[T Object](h Handle) (T, bool) {
	var zero T
	if h.obj == nil {
		return zero, false
	}
	v, ok := h.obj.(T)
	return v, ok
}

// IsType reports whether h holds a T.
func IsType[T Object](h Handle) bool {
	_, ok := TryAs[T](h)
	return ok
}
