package render

// Attr is one named property handed to a Factory.
type Attr struct {
	Name  string
	Value string
}

// Props is the property bag of one output node. Key is always set.
type Props struct {
	Key   string
	Attrs []Attr
}

// Get returns the value of the named attribute.
func (p Props) Get(name string) (string, bool) {
	for _, a := range p.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Factory materializes output nodes. It is supplied by the host and used by
// every built-in and overriding renderer.
type Factory[T any] interface {
	// Element builds one element of shape tag wrapping children in order.
	Element(tag string, props Props, children ...T) T
	// Text builds a text node holding value verbatim.
	Text(value string) T
}
