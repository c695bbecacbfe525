// Released under an MIT license. See LICENSE.

package cell

// binding associates one name with one value. Bindings are kept in insertion
// order; lookup walks them newest-first so a redefinition shadows the older
// binding until the scope is released.
type binding struct {
	name  string
	value *T
}

// Scope is a frame of bindings linked to its parent. Scopes form a tree; the
// interpreter's current scope is a path from a leaf to the root. A scope
// holds one reference to its parent, each lambda that closes over a scope
// holds one reference to it, and the context holds one reference to the
// current scope.
type Scope struct {
	parent   *Scope
	heap     *Heap
	bindings []binding
	refs     int32
}

// NewScope creates a scope whose parent is parent. The parent, if any, is
// retained.
func (h *Heap) NewScope(parent *Scope) *Scope {
	parent.Retain()

	return &Scope{parent: parent, heap: h, refs: 1}
}

// Parent returns the enclosing scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Retain increments the reference count of s. A nil scope is tolerated.
func (s *Scope) Retain() {
	if s != nil {
		s.refs++
	}
}

// Release decrements the reference count of s. On reaching zero the scope's
// bindings are released and the reference it holds on its parent is dropped.
// A nil scope is tolerated.
func (s *Scope) Release() {
	for s != nil {
		s.refs--
		if s.refs > 0 {
			return
		}

		for _, b := range s.bindings {
			s.heap.Release(b.value)
		}

		s.bindings = nil

		parent := s.parent
		s.parent = nil

		s = parent
	}
}

// Define appends a binding for name to s, retaining value. Redefining a name
// adds a new binding that shadows the older one.
func (s *Scope) Define(name string, value *T) {
	s.heap.Retain(value)
	s.bindings = append(s.bindings, binding{name: name, value: value})
}

// Lookup searches s newest-first and then the parent chain. The returned
// value is not retained; ok distinguishes a name bound to nil from an
// unbound name.
func (s *Scope) Lookup(name string) (value *T, ok bool) {
	for ; s != nil; s = s.parent {
		for i := len(s.bindings) - 1; i >= 0; i-- {
			if s.bindings[i].name == name {
				return s.bindings[i].value, true
			}
		}
	}

	return nil, false
}

// Names appends the names visible from s to dst, innermost scope first.
// Shadowed duplicates are included; callers that care deduplicate.
func (s *Scope) Names(dst []string) []string {
	for ; s != nil; s = s.parent {
		for i := len(s.bindings) - 1; i >= 0; i-- {
			dst = append(dst, s.bindings[i].name)
		}
	}

	return dst
}
