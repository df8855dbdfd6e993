package model

import "slices"

// Primitive is a scalar cast target recognized by the cast registry.
type Primitive string

// Supported primitive cast targets.
const (
	Boolean  Primitive = "boolean"
	Integer  Primitive = "integer"
	Float    Primitive = "float"
	String   Primitive = "string"
	DateTime Primitive = "date-time"
	URI      Primitive = "uri"
	Decimal  Primitive = "decimal"
)

// CastTarget is the datatype of a Shape: either a Primitive or a Structured.
// The interface is closed; the response mapper switches on the concrete type.
type CastTarget interface {
	castTarget()
}

func (Primitive) castTarget()  {}
func (Structured) castTarget() {}

// Field is one named entry of an AttributeMap.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Shape Shape  `json:"shape" yaml:"shape"`
}

// AttributeMap is an ordered mapping from field name to sub-shape. The
// declared order is the positional order handed to a Constructor.
type AttributeMap []Field

// Names returns the field names in declared order.
func (m AttributeMap) Names() []string {
	names := make([]string, len(m))
	for i, f := range m {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the shape declared for name.
func (m AttributeMap) Lookup(name string) (Shape, bool) {
	for _, f := range m {
		if f.Name == name {
			return f.Shape, true
		}
	}
	return Shape{}, false
}

// Clone returns a deep copy of m.
func (m AttributeMap) Clone() AttributeMap {
	if m == nil {
		return nil
	}
	out := make(AttributeMap, len(m))
	for i, f := range m {
		out[i] = Field{Name: f.Name, Shape: f.Shape.Clone()}
	}
	return out
}

// Constructor reifies extracted fields into a concrete value. Attributes
// describes the fields; New receives their values positionally in the same
// order.
type Constructor interface {
	Attributes() AttributeMap
	New(values []any) (any, error)
}

// ConstructorFunc adapts a field list and a function to the Constructor
// interface.
type ConstructorFunc struct {
	Fields AttributeMap
	Build  func(values []any) (any, error)
}

// Attributes implements Constructor.
func (c ConstructorFunc) Attributes() AttributeMap { return c.Fields }

// New implements Constructor.
func (c ConstructorFunc) New(values []any) (any, error) { return c.Build(values) }

// Structured is a CastTarget extracting a record per matched node. Without a
// Constructor each node yields a Record; with one, the constructor's
// attribute map is authoritative and each node yields whatever New returns.
type Structured struct {
	Attributes  AttributeMap
	Constructor Constructor
}

// Reified returns a Structured target built by c.
func Reified(c Constructor) Structured {
	return Structured{Constructor: c}
}

// Fields returns the effective attribute map.
func (s Structured) Fields() AttributeMap {
	if s.Constructor != nil {
		return s.Constructor.Attributes()
	}
	return s.Attributes
}

// Clone returns a copy of s sharing no attribute maps with it. A
// ConstructorFunc is copied with its fields; other constructors are shared.
func (s Structured) Clone() Structured {
	s.Attributes = s.Attributes.Clone()
	if c, ok := s.Constructor.(ConstructorFunc); ok {
		c.Fields = c.Fields.Clone()
		s.Constructor = c
	}
	return s
}

// Record is the plain keyed result of a Structured target without a
// Constructor.
type Record map[string]any

// Shape describes how to extract one value (or list of values) from a node.
type Shape struct {
	// Selector addresses the nodes to read, relative to the current node.
	Selector string
	// Target is the datatype of each matched node. Nil behaves as an empty
	// Structured target.
	Target CastTarget
	// FirstChild collapses the result to its first element.
	FirstChild bool
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	if t, ok := s.Target.(Structured); ok {
		s.Target = t.Clone()
	}
	return s
}

// OperationDescriptor identifies one remote operation and how to read its
// response.
type OperationDescriptor struct {
	ServiceName   string
	OperationName string
	ParamNames    []string
	Shape         Shape
}

// Key is the identity of an operation inside a namespace.
type Key struct {
	Service   string
	Operation string
}

// String renders the key as "Service.Operation".
func (k Key) String() string {
	return k.Service + "." + k.Operation
}

// Key returns the descriptor identity.
func (d OperationDescriptor) Key() Key {
	return Key{Service: d.ServiceName, Operation: d.OperationName}
}

// Clone returns a copy that shares no slices with d.
func (d OperationDescriptor) Clone() OperationDescriptor {
	d.ParamNames = slices.Clone(d.ParamNames)
	d.Shape = d.Shape.Clone()
	return d
}
