// Package catalog reads operation descriptors from YAML documents and
// registers them in a binding namespace.
//
// A catalog lists services and their operations:
//
//	services:
//	  - name: InChI
//	    operations:
//	      - name: InChIKeyToCSID
//	        params: [inchi_key]
//	        response:
//	          selector: string
//	          datatype: integer
//	          first_child: true
//
// A response datatype is one of the primitive tags (boolean, integer, float,
// string, date-time, uri, decimal), the name of a registered constructor, or
// "record" together with an inline attributes list:
//
//	response:
//	  selector: ArrayOfExtRef ExtRef
//	  datatype: record
//	  attributes:
//	    - name: csid
//	      selector: CSID
//	      datatype: integer
//	      first_child: true
//
// An omitted datatype extracts empty records.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chemspider/chemspider-sdk-go/pkg/binding"
	"github.com/chemspider/chemspider-sdk-go/pkg/cast"
	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	"gopkg.in/yaml.v3"
)

// Record is the datatype naming an inline attribute list.
const Record = "record"

// Document is the YAML layout of a catalog.
type Document struct {
	Services []Service `yaml:"services"`
}

// Service groups the operations of one remote service.
type Service struct {
	Name       string      `yaml:"name"`
	Operations []Operation `yaml:"operations"`
}

// Operation declares one remote operation.
type Operation struct {
	Name     string    `yaml:"name"`
	Params   []string  `yaml:"params,omitempty"`
	Response ShapeSpec `yaml:"response"`
}

// ShapeSpec is the YAML form of a model.Shape.
type ShapeSpec struct {
	Selector   string      `yaml:"selector"`
	Datatype   string      `yaml:"datatype,omitempty"`
	FirstChild bool        `yaml:"first_child,omitempty"`
	Attributes []FieldSpec `yaml:"attributes,omitempty"`
}

// FieldSpec is one named attribute of a record datatype.
type FieldSpec struct {
	Name      string `yaml:"name"`
	ShapeSpec `yaml:",inline"`
}

// Parse decodes a catalog and resolves every datatype against the cast
// registry and types. Descriptors are returned in document order.
func Parse(data []byte, types map[string]model.Constructor) ([]model.OperationDescriptor, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return doc.Descriptors(types)
}

// ParseFile reads and parses the catalog stored at path.
func ParseFile(path string, types map[string]model.Constructor) ([]model.OperationDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	descs, err := Parse(data, types)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return descs, nil
}

// Descriptors converts the document into operation descriptors.
func (d Document) Descriptors(types map[string]model.Constructor) ([]model.OperationDescriptor, error) {
	var out []model.OperationDescriptor
	for _, svc := range d.Services {
		if svc.Name == "" {
			return nil, errors.New("service without name")
		}
		for _, op := range svc.Operations {
			if op.Name == "" {
				return nil, fmt.Errorf("service %s: operation without name", svc.Name)
			}
			shape, err := op.Response.Shape(types)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", svc.Name, op.Name, err)
			}
			out = append(out, model.OperationDescriptor{
				ServiceName:   svc.Name,
				OperationName: op.Name,
				ParamNames:    append([]string(nil), op.Params...),
				Shape:         shape,
			})
		}
	}
	return out, nil
}

// Shape resolves s into a model.Shape.
func (s ShapeSpec) Shape(types map[string]model.Constructor) (model.Shape, error) {
	shape := model.Shape{Selector: s.Selector, FirstChild: s.FirstChild}
	switch {
	case s.Datatype == "" && len(s.Attributes) == 0:
		return shape, nil
	case s.Datatype == "" || s.Datatype == Record:
		attrs := make(model.AttributeMap, 0, len(s.Attributes))
		for _, f := range s.Attributes {
			if f.Name == "" {
				return model.Shape{}, fmt.Errorf("attribute of %q without name", s.Selector)
			}
			fs, err := f.Shape(types)
			if err != nil {
				return model.Shape{}, fmt.Errorf("attribute %s: %w", f.Name, err)
			}
			attrs = append(attrs, model.Field{Name: f.Name, Shape: fs})
		}
		shape.Target = model.Structured{Attributes: attrs}
		return shape, nil
	}
	if len(s.Attributes) > 0 {
		return model.Shape{}, fmt.Errorf("datatype %q does not take attributes", s.Datatype)
	}
	if ctor, ok := types[s.Datatype]; ok {
		shape.Target = model.Reified(ctor)
		return shape, nil
	}
	p, err := cast.Parse(s.Datatype)
	if err != nil {
		return model.Shape{}, err
	}
	shape.Target = p
	return shape, nil
}

// Register defines every descriptor in ns and returns the bindings in the
// same order.
func Register(ns *binding.Namespace, descs []model.OperationDescriptor) []*binding.Binding {
	out := make([]*binding.Binding, len(descs))
	for i, d := range descs {
		out[i] = ns.DefineDescriptor(d)
	}
	return out
}

// Describe renders a cast target in catalog terms: the primitive tag, or
// "record(field, ...)" for structured targets.
func Describe(target model.CastTarget) string {
	switch t := target.(type) {
	case model.Primitive:
		return string(t)
	case model.Structured:
		names := t.Fields().Names()
		if len(names) == 0 {
			return Record
		}
		return Record + "(" + strings.Join(names, ", ") + ")"
	}
	return Record
}
