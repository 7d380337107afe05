package poreader

// Header is one `name: value` property of the catalogue header.
type Header struct {
	Name  string
	Value string
}

// Properties is the ordered multi-valued collection of catalogue header
// properties. Repeated names are preserved in order of appearance.
type Properties struct {
	list []Header
}

func (p *Properties) add(name, value string) {
	p.list = append(p.list, Header{Name: name, Value: value})
}

// Get returns the first value recorded for name.
func (p *Properties) Get(name string) (string, bool) {
	for _, h := range p.list {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

// Values returns every value recorded for name, in order.
func (p *Properties) Values(name string) []string {
	var values []string
	for _, h := range p.list {
		if h.Name == name {
			values = append(values, h.Value)
		}
	}
	return values
}

// All returns every property in order of appearance.
func (p *Properties) All() []Header { return p.list }

// Len returns the number of recorded properties.
func (p *Properties) Len() int { return len(p.list) }
