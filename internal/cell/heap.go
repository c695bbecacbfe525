// Released under an MIT license. See LICENSE.

package cell

// Heap allocates values for one context and recycles released cells through
// a free-list. A heap is not safe for concurrent use; a context is a
// sequential object.
type Heap struct {
	free *T
}

// NewHeap creates an empty heap.
func NewHeap() *Heap {
	return &Heap{}
}

func (h *Heap) alloc(tag Tag) *T {
	c := h.free
	if c == nil {
		c = &T{}
	} else {
		h.free = c.next
		*c = T{}
	}

	c.tag = tag
	c.refs = 1

	return c
}

// NewNumber creates a Number cell.
func (h *Heap) NewNumber(f float64) *T {
	c := h.alloc(Number)
	c.num = f

	return c
}

// NewString creates a String cell.
func (h *Heap) NewString(s string) *T {
	c := h.alloc(String)
	c.text = s

	return c
}

// NewVariable creates a Variable cell.
func (h *Heap) NewVariable(name string) *T {
	c := h.alloc(Variable)
	c.text = name

	return c
}

// NewList creates a List cell wrapping the chain starting at head. The
// caller's reference to head transfers to the new cell.
func (h *Heap) NewList(head *T) *T {
	c := h.alloc(List)
	c.head = head

	return c
}

// NewLambda creates a Lambda cell. The caller's references to the captured
// scope and to the parameter/body chain transfer to the new cell.
func (h *Heap) NewLambda(captured *Scope, body *T) *T {
	c := h.alloc(Lambda)
	c.scope = captured
	c.head = body

	return c
}

// NewSpecial creates a Special cell for the host operation fn.
func (h *Heap) NewSpecial(fn Func) *T {
	c := h.alloc(Special)
	c.fn = fn

	return c
}

// Retain increments the reference count of c. A nil cell is tolerated.
func (h *Heap) Retain(c *T) {
	if c != nil {
		c.refs++
	}
}

// Release decrements the reference count of c and, on reaching zero, frees
// the payload and returns the cell to the free-list. Releasing a cell whose
// count reaches zero continues down its next chain iteratively, so releasing
// a long list does not grow the stack with its length. A nil cell is
// tolerated.
func (h *Heap) Release(c *T) {
	for c != nil {
		c.refs--
		if c.refs > 0 {
			return
		}

		next := c.next

		switch c.tag {
		case List:
			h.Release(c.head)
		case Lambda:
			c.scope.Release()
			h.Release(c.head)
		}

		*c = T{next: h.free}
		h.free = c

		c = next
	}
}

// Copy returns a detached copy of c: same tag and payload, no successor,
// reference count one. List and Lambda payloads are shared and retained.
func (h *Heap) Copy(c *T) *T {
	if c == nil {
		return nil
	}

	fresh := h.alloc(c.tag)
	fresh.num = c.num
	fresh.text = c.text
	fresh.fn = c.fn

	switch c.tag {
	case List:
		fresh.head = c.head
		h.Retain(c.head)
	case Lambda:
		fresh.head = c.head
		fresh.scope = c.scope
		h.Retain(c.head)
		c.scope.Retain()
	}

	return fresh
}

// Reclaimable reports whether c is the next cell the heap would hand out.
// It exists so tests can observe free-list recycling.
func (h *Heap) Reclaimable(c *T) bool {
	return h.free == c
}
