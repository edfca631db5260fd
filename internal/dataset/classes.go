package dataset

// Classes maps class names to indices, in order of first appearance.
type Classes struct {
	names []string
	index map[string]int
}

// NewClasses creates an empty class mapping.
func NewClasses() *Classes {
	return &Classes{
		names: make([]string, 0),
		index: make(map[string]int),
	}
}

// Add adds the class if it is not known yet and returns its index.
func (c *Classes) Add(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	c.index[name] = len(c.names)
	c.names = append(c.names, name)
	return c.index[name]
}

// Index returns the index of the given class.
func (c *Classes) Index(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// Name returns the class name for the index, or an empty string if it is unknown.
func (c *Classes) Name(i int) string {
	if i < 0 || i >= len(c.names) {
		return ""
	}
	return c.names[i]
}

// Names returns all class names ordered by index.
func (c *Classes) Names() []string {
	return c.names
}

// Len returns the number of classes.
func (c *Classes) Len() int {
	return len(c.names)
}
