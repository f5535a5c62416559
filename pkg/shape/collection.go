package shape

// Collection is the ordered list of shapes being authored. The index of a
// shape is its identity for selection purposes and shifts when an earlier
// shape is removed.
type Collection struct {
	shapes []*Shape
}

// NewCollection creates a collection holding the given shapes
func NewCollection(shapes ...*Shape) *Collection {
	c := &Collection{shapes: make([]*Shape, 0, len(shapes))}
	c.shapes = append(c.shapes, shapes...)
	return c
}

// Len returns the number of shapes
func (c *Collection) Len() int {
	return len(c.shapes)
}

// At returns shape i, or false when i is out of range
func (c *Collection) At(i int) (*Shape, bool) {
	if i < 0 || i >= len(c.shapes) {
		return nil, false
	}
	return c.shapes[i], true
}

// Shapes returns the underlying slice for iteration. Callers must not
// append to or reorder it.
func (c *Collection) Shapes() []*Shape {
	return c.shapes
}

// Append adds a shape at the end and returns its index
func (c *Collection) Append(s *Shape) int {
	c.shapes = append(c.shapes, s)
	return len(c.shapes) - 1
}

// Remove deletes shape i and reports whether it existed
func (c *Collection) Remove(i int) bool {
	if i < 0 || i >= len(c.shapes) {
		return false
	}
	copy(c.shapes[i:], c.shapes[i+1:])
	c.shapes[len(c.shapes)-1] = nil
	c.shapes = c.shapes[:len(c.shapes)-1]
	return true
}

// TotalPoints returns the number of points across all shapes
func (c *Collection) TotalPoints() int {
	total := 0
	for _, s := range c.shapes {
		total += s.Len()
	}
	return total
}

// Clone returns a deep copy
func (c *Collection) Clone() *Collection {
	clone := &Collection{shapes: make([]*Shape, len(c.shapes))}
	for i, s := range c.shapes {
		clone.shapes[i] = s.Clone()
	}
	return clone
}

// Restore replaces the contents with a deep copy of other. Pointers held
// by the caller to c stay valid; pointers to individual shapes do not.
func (c *Collection) Restore(other *Collection) {
	c.shapes = other.Clone().shapes
}
