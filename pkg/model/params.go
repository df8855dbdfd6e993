package model

// Param is one request parameter. Value may be a scalar, nil (sent with an
// empty value) or a slice (one term per element, nested slices flattened).
type Param struct {
	Name  string
	Value any
}

// Params is an ordered list of request parameters.
type Params []Param

// Get returns the value of the first parameter called name.
func (p Params) Get(name string) (any, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return nil, false
}

// Names returns the parameter names in order.
func (p Params) Names() []string {
	names := make([]string, len(p))
	for i, param := range p {
		names[i] = param.Name
	}
	return names
}
