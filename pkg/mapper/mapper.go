// Package mapper extracts typed results from response documents by
// structural recursion over model.Shape.
package mapper

import (
	"fmt"

	"github.com/chemspider/chemspider-sdk-go/pkg/cast"
	"github.com/chemspider/chemspider-sdk-go/pkg/model"
)

// Extract selects the nodes addressed by shape.Selector below node and turns
// each one into a value:
//
//   - a Primitive target casts the node text through the cast registry;
//   - a Structured target extracts every field of its attribute map against
//     the node, producing a model.Record, and reifies it through the
//     Constructor when one is set.
//
// With shape.FirstChild the first value is returned, or nil when nothing
// matched; otherwise the result is a (possibly empty) []any in document
// order. Missing matches are never errors.
func Extract(node model.Node, shape model.Shape) (any, error) {
	var (
		values []any
		err    error
	)
	switch target := shape.Target.(type) {
	case model.Primitive:
		values, err = extractPrimitive(node, shape.Selector, target)
	case model.Structured:
		values, err = extractStructured(node, shape.Selector, target)
	case nil:
		values, err = extractStructured(node, shape.Selector, model.Structured{})
	default:
		return nil, &model.UnsupportedCastError{Target: fmt.Sprintf("%T", target)}
	}
	if err != nil {
		return nil, err
	}
	if shape.FirstChild {
		if len(values) == 0 {
			return nil, nil
		}
		return values[0], nil
	}
	return values, nil
}

func query(node model.Node, selector string) ([]model.Node, error) {
	nodes, err := node.Query(selector)
	if err != nil {
		return nil, &model.ExtractionError{Selector: selector, Err: err}
	}
	return nodes, nil
}

func extractPrimitive(node model.Node, selector string, target model.Primitive) ([]any, error) {
	fn, err := cast.For(target)
	if err != nil {
		return nil, err
	}
	nodes, err := query(node, selector)
	if err != nil {
		return nil, err
	}
	values := make([]any, 0, len(nodes))
	for _, n := range nodes {
		v, err := fn(n.Text())
		if err != nil {
			return nil, &model.ExtractionError{Selector: selector, Err: err}
		}
		values = append(values, v)
	}
	return values, nil
}

func extractStructured(node model.Node, selector string, target model.Structured) ([]any, error) {
	nodes, err := query(node, selector)
	if err != nil {
		return nil, err
	}
	fields := target.Fields()
	values := make([]any, 0, len(nodes))
	for _, n := range nodes {
		record := make(model.Record, len(fields))
		for _, f := range fields {
			v, err := Extract(n, f.Shape)
			if err != nil {
				return nil, withField(err, f.Name)
			}
			record[f.Name] = v
		}
		if target.Constructor == nil {
			values = append(values, record)
			continue
		}
		args := make([]any, len(fields))
		for i, f := range fields {
			args[i] = record[f.Name]
		}
		obj, err := target.Constructor.New(args)
		if err != nil {
			return nil, &model.ExtractionError{Selector: selector, Err: err}
		}
		values = append(values, obj)
	}
	return values, nil
}

// withField records the innermost failing field name on extraction errors.
func withField(err error, field string) error {
	if ee, ok := err.(*model.ExtractionError); ok && ee.Field == "" {
		return &model.ExtractionError{Selector: ee.Selector, Field: field, Err: ee.Err}
	}
	return err
}
